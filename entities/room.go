package entities

// RoomInfo 房间元信息，落在 Redis 中；对局状态本体见 ws 包的快照
type RoomInfo struct {
	RoomStatus bool       `json:"roomStatus"` // 双方是否已就绪
	GameStatus RoomStatus `json:"gameStatus"`
	UserID     string     `json:"userID"` // 房主
}

type RoomStatus string

const (
	RoomStatusWaiting RoomStatus = "waiting" // 等待玩家入座
	RoomStatusPlaying RoomStatus = "playing"
	RoomStatusEnd     RoomStatus = "end"
)
