package ws

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"jade-game/dto"
	"jade-game/logger"
)

// 读写接口，供真实客户端连接用，支持读取消息
type WriteOnlyConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type ReadWriteConn interface {
	WriteOnlyConn
	ReadMessage() (messageType int, p []byte, err error)
}

// 消息处理函数类型。返回 error 表示指令被引擎拒绝，状态未变
type messageHandler func(room *Room, playerID string, msgMap map[string]interface{}) error

// 消息处理函数映射
var messageHandlers = map[string]messageHandler{
	"ready":            handleReadyMessage,
	"toggle_token":     handleToggleTokenMessage,
	"commit_selection": handleCommitSelectionMessage,
	"replenish":        handleReplenishMessage,
	"buy_card":         handleBuyCardMessage,
	"reserve_card":     handleReserveCardMessage,
	"begin_privilege":  handleBeginPrivilegeMessage,
	"cancel_privilege": handleCancelPrivilegeMessage,
	"use_privilege":    handleUsePrivilegeMessage,
	"discard_token":    handleDiscardTokenMessage,
	"reset_discard":    handleResetDiscardMessage,
	"confirm_discard":  handleConfirmDiscardMessage,
	"pick_beauty":      handlePickBeautyMessage,
	"restart_game":     handleRestartGameMessage,
}

// 持续监听客户端消息并分发。指令成功则广播新快照，被拒则只回发给本人
func listenAndDispatchMessages(conn ReadWriteConn, roomID, playerID string) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			logger.L.Infof("读取消息失败: %v", err)
			break
		}
		msgMap := make(map[string]interface{})
		if err := json.Unmarshal(msg, &msgMap); err != nil {
			logger.L.Warnf("消息解析失败: %v", err)
			continue
		}
		msgMap["roomID"] = roomID
		msgType, ok := msgMap["type"].(string)
		if !ok {
			continue
		}
		handler, found := messageHandlers[msgType]
		if !found {
			logger.L.Warnf("⚠️ 未知的消息类型: %s", msgType)
			continue
		}

		room, ok := getRoom(roomID)
		if !ok {
			sendReject(conn, "房间不存在")
			return
		}
		room.mu.Lock()
		err = handler(room, playerID, msgMap)
		room.mu.Unlock()

		if err != nil {
			logger.L.Infof("❌ 指令 %s 被拒（%s）: %v", msgType, playerID, err)
			sendReject(conn, err.Error())
			continue
		}
		BroadcastToRoom(roomID)
	}
}

func sendReject(conn WriteOnlyConn, message string) {
	msg := map[string]string{"type": "reject", "message": message}
	data, _ := json.Marshal(msg)
	conn.WriteMessage(websocket.TextMessage, data)
}

// WebSocket 主入口（处理每个连接）
func HandleWebSocket(c *gin.Context) {
	conn, err := upgradeConnection(c)
	if err != nil {
		return
	}
	defer conn.Close()

	roomID := c.Query("roomID")
	if roomID == "" {
		logger.L.Warn("缺少 roomID")
		return
	}
	playerID := c.Query("userID")
	if playerID == "" {
		logger.L.Warn("缺少 userID")
		return
	}

	realConn := &dto.RealConn{Conn: conn}
	if ok := validateAndJoinRoom(roomID, playerID, realConn); !ok {
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"error","message":"房间已满或不存在"}`))
		return
	}
	BroadcastToRoom(roomID)
	defer cleanupOnDisconnect(roomID, playerID, realConn)

	listenAndDispatchMessages(realConn, roomID, playerID)
}

// requireSeat 指令必须出自当前行动席位
func requireSeat(room *Room, playerID string) (int, error) {
	if room.Engine == nil {
		return -1, fmt.Errorf("对局尚未开始")
	}
	seat := seatIndex(room, playerID)
	if seat < 0 {
		return -1, fmt.Errorf("玩家未入座")
	}
	if seat != room.Engine.ActingSeat() {
		return -1, fmt.Errorf("不是当前玩家的回合")
	}
	return seat, nil
}
