package ws

import (
	"encoding/json"
	"os"
	"path"
	"time"

	"github.com/gorilla/websocket"

	"jade-game/dto"
	"jade-game/engine"
	"jade-game/logger"
	"jade-game/utils"
)

// WriteGameLog 把一次同步的全量内容追加进房间的对局日志文件
func WriteGameLog(roomID string, snapshot engine.GameState) {
	go func() {
		logPath := getGameLogFilePath(roomID)

		if err := os.MkdirAll(path.Dir(logPath), 0755); err != nil {
			logger.L.Errorf("❌ 创建日志目录失败: %v", err)
			return
		}

		entry := map[string]interface{}{
			"timestamp": time.Now().Format("2006-01-02 15:04:05"),
			"roomID":    roomID,
			"phase":     snapshot.Phase,
			"current":   snapshot.CurrentPlayerIndex,
			"state":     snapshot,
		}
		jsonEntry, err := json.Marshal(entry)
		if err != nil {
			logger.L.Errorf("❌ 序列化日志 entry 失败: %v", err)
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger.L.Errorf("❌ 打开游戏日志文件失败: %v", err)
			return
		}
		defer f.Close()

		jsonEntry = append(jsonEntry, ',', '\n')
		if _, err := f.Write(jsonEntry); err != nil {
			logger.L.Errorf("❌ 写入日志失败: %v", err)
		}
	}()
}

// SyncRoomMessage 向单个客户端发送全量同步
func SyncRoomMessage(conn dto.ConnInterface, roomID, playerID string, snapshot engine.GameState) error {
	roomInfo, err := GetRoomInfo(roomID)
	if err != nil {
		return err
	}

	snapshot.Log = utils.SafeSlice(snapshot.Log, 50)
	msg := map[string]interface{}{
		"type":     "sync",
		"playerId": playerID,
		"roomInfo": roomInfo,
		"state":    snapshot,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

// BroadcastToRoom 向房间内所有在线玩家广播最新快照，并随手落盘
func BroadcastToRoom(roomID string) {
	room, ok := getRoom(roomID)
	if !ok {
		return
	}

	room.mu.Lock()
	var snapshot engine.GameState
	started := room.Engine != nil
	if started {
		snapshot = room.Engine.Snapshot()
	}
	needArchive := started && snapshot.Winner != nil && !room.Archived
	if needArchive {
		room.Archived = true
	}
	room.mu.Unlock()

	if !started {
		broadcastLobby(room, roomID)
		return
	}

	if err := SaveGameSnapshot(roomID, snapshot); err != nil {
		logger.L.Errorf("❌ 快照落盘失败: %v", err)
	}
	WriteGameLog(roomID, snapshot)
	if needArchive {
		finishGame(roomID, snapshot)
	}

	roomLock.Lock()
	players := append([]dto.PlayerConn(nil), room.Players...)
	roomLock.Unlock()

	for _, pc := range players {
		if !pc.Online || pc.Conn == nil {
			continue
		}
		if err := SyncRoomMessage(pc.Conn, roomID, pc.PlayerID, snapshot); err != nil {
			logger.L.Warnf("广播失败: %s", pc.PlayerID)
			pc.Conn.Close()
		}
	}
}

// broadcastLobby 开局前只同步座位与就绪状态
func broadcastLobby(room *Room, roomID string) {
	roomLock.Lock()
	players := append([]dto.PlayerConn(nil), room.Players...)
	roomLock.Unlock()

	seats := make([]map[string]interface{}, 0, len(players))
	for _, pc := range players {
		seats = append(seats, map[string]interface{}{
			"playerID": pc.PlayerID,
			"online":   pc.Online,
			"ready":    pc.Ready,
		})
	}
	msg := map[string]interface{}{"type": "lobby", "seats": seats}
	data, _ := json.Marshal(msg)
	for _, pc := range players {
		if pc.Online && pc.Conn != nil {
			pc.Conn.WriteMessage(websocket.TextMessage, data)
		}
	}
}
