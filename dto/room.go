package dto

type RoomInfo struct {
	RoomID     string       `json:"roomID"`
	UserID     string       `json:"userID"`
	Status     bool         `json:"status"`
	RoomPlayer []RoomPlayer `json:"roomPlayer"`
}

type RoomPlayer struct {
	PlayerID string `json:"playerID"`
	Online   bool   `json:"online"`
}

type CreateRoomRequest struct {
	UserID string `json:"userID" binding:"required"`
}

type CreateRoomResponse struct {
	Room_id string `json:"room_id" binding:"required"`
}

type DeleteRoomRequest struct {
	RoomID string `json:"roomID" binding:"required"`
}

type GetRoomList struct {
	Rooms []RoomInfo `json:"rooms"`
}
