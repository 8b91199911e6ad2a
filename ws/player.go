package ws

import (
	"fmt"
	"time"

	"jade-game/const_data"
	"jade-game/engine"
	"jade-game/entities"
	"jade-game/logger"
	"jade-game/repository"
)

func handleReadyMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	roomLock.Lock()
	seat := seatIndexLocked(room, playerID)
	if seat < 0 {
		roomLock.Unlock()
		return fmt.Errorf("玩家未入座")
	}
	room.Players[seat].Ready = true
	bothReady := len(room.Players) == 2 && room.Players[0].Ready && room.Players[1].Ready
	roomLock.Unlock()

	if bothReady && room.Engine == nil {
		startGame(room, msgMap["roomID"].(string))
	}
	return nil
}

// startGame 双方就绪后开局：洗牌种子取自墙钟，逐局不同
func startGame(room *Room, roomID string) {
	roomLock.Lock()
	nameA, nameB := room.Players[0].PlayerID, room.Players[1].PlayerID
	roomLock.Unlock()

	cfg := const_data.DefaultConfig(nameA, nameB)
	shuffler := engine.NewRandShuffler(uint64(time.Now().UnixNano()))
	room.Engine = engine.NewEngine(cfg, shuffler)
	room.Archived = false

	if err := SetRoomStatus(repository.Rdb, roomID, true); err != nil {
		logger.L.Errorf("❌ 更新房间状态失败: %v", err)
	}
	if err := SetGameStatus(repository.Rdb, roomID, entities.RoomStatusPlaying); err != nil {
		logger.L.Errorf("❌ 更新游戏状态失败: %v", err)
	}
	logger.L.Infof("✅ 房间 %s 开局", roomID)
}

func handleRestartGameMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if seatIndex(room, playerID) < 0 {
		return fmt.Errorf("玩家未入座")
	}
	if room.Engine != nil && room.Engine.Snapshot().Winner == nil {
		return fmt.Errorf("对局尚未结束，不能重开")
	}
	startGame(room, msgMap["roomID"].(string))
	return nil
}
