package dto

import "github.com/gorilla/websocket"

type ConnInterface interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type RealConn struct {
	*websocket.Conn
}

func (r *RealConn) WriteMessage(messageType int, data []byte) error {
	return r.Conn.WriteMessage(messageType, data)
}

func (r *RealConn) Close() error {
	return r.Conn.Close()
}

// 玩家连接对象结构体
type PlayerConn struct {
	PlayerID string
	Conn     ConnInterface
	Online   bool
	Ready    bool
}

// 以下为各指令的 payload，ws 层用 mapstructure 解出

type CellPayload struct {
	R int `json:"r"`
	C int `json:"c"`
}

type BuyCardPayload struct {
	CardID string `json:"cardID"`
	Source string `json:"source"` // market / reserve
	Tier   int    `json:"tier"`
}

type ReserveCardPayload struct {
	CardID string `json:"cardID"`
	Tier   int    `json:"tier"`
}

type DiscardPayload struct {
	Kind string `json:"kind"`
}

type PickBeautyPayload struct {
	BeautyID string `json:"beautyID"`
}
