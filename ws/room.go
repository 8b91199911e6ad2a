package ws

import (
	"sync"

	"jade-game/dto"
	"jade-game/engine"
	"jade-game/logger"
)

// Room 一间雅室：两个座位加一台规则引擎。
// 引擎自身不加锁，房间互斥量保证指令逐条执行。
type Room struct {
	mu       sync.Mutex
	Players  []dto.PlayerConn
	Engine   *engine.Engine
	Archived bool // 终局是否已归档
}

// Rooms 房间注册表（进程内权威，元信息另落 Redis）
var Rooms = make(map[string]*Room)
var roomLock sync.Mutex

// validateAndJoinRoom 校验座位并入座；已入座的玩家重连时只换连接
func validateAndJoinRoom(roomID, playerID string, conn dto.ConnInterface) bool {
	roomLock.Lock()
	defer roomLock.Unlock()

	room, ok := Rooms[roomID]
	if !ok {
		return false
	}
	for i, pc := range room.Players {
		if pc.PlayerID == playerID {
			room.Players[i].Conn = conn
			room.Players[i].Online = true
			logger.L.Infof("玩家 %s 重连房间 %s", playerID, roomID)
			return true
		}
	}
	if len(room.Players) >= 2 {
		return false
	}
	room.Players = append(room.Players, dto.PlayerConn{PlayerID: playerID, Conn: conn, Online: true})
	return true
}

// cleanupOnDisconnect 断线后标记离线，座位保留以便重连
func cleanupOnDisconnect(roomID, playerID string, conn dto.ConnInterface) {
	roomLock.Lock()
	room, ok := Rooms[roomID]
	if ok {
		for i, pc := range room.Players {
			if pc.PlayerID == playerID && pc.Conn == conn {
				room.Players[i].Online = false
				room.Players[i].Conn = nil
				logger.L.Infof("玩家 %s 标记为离线", playerID)
				break
			}
		}
	}
	roomLock.Unlock()

	if ok {
		BroadcastToRoom(roomID)
	}
}

// seatIndex 玩家的席位号，未入座返回 -1。
// 座位表统一由 roomLock 保护：入座/重连/断线与指令路径都经它读写
func seatIndex(room *Room, playerID string) int {
	roomLock.Lock()
	defer roomLock.Unlock()
	return seatIndexLocked(room, playerID)
}

func seatIndexLocked(room *Room, playerID string) int {
	for i, pc := range room.Players {
		if pc.PlayerID == playerID {
			return i
		}
	}
	return -1
}

func getRoom(roomID string) (*Room, bool) {
	roomLock.Lock()
	defer roomLock.Unlock()
	room, ok := Rooms[roomID]
	return room, ok
}

// RegisterRoom 建房时登记到注册表
func RegisterRoom(roomID string) {
	roomLock.Lock()
	defer roomLock.Unlock()
	Rooms[roomID] = &Room{}
}

func UnregisterRoom(roomID string) {
	roomLock.Lock()
	defer roomLock.Unlock()
	delete(Rooms, roomID)
}

func RoomIDs() []string {
	roomLock.Lock()
	defer roomLock.Unlock()
	ids := make([]string, 0, len(Rooms))
	for id := range Rooms {
		ids = append(ids, id)
	}
	return ids
}

// RoomSeats 座位列表的副本，房间列表接口用
func RoomSeats(roomID string) []dto.PlayerConn {
	roomLock.Lock()
	defer roomLock.Unlock()
	room, ok := Rooms[roomID]
	if !ok {
		return nil
	}
	return append([]dto.PlayerConn(nil), room.Players...)
}
