package ws

import (
	"time"

	"jade-game/engine"
	"jade-game/entities"
	"jade-game/logger"
	"jade-game/repository"
)

// finishGame 终局收尾：更新房间状态并把结果归档进 MySQL（未配置则跳过）
func finishGame(roomID string, snapshot engine.GameState) {
	if err := SetGameStatus(repository.Rdb, roomID, entities.RoomStatusEnd); err != nil {
		logger.L.Errorf("❌ 更新游戏状态失败: %v", err)
	}
	logger.L.Infof("✅ 对局结束，日志保存于: %s", getGameLogFilePath(roomID))

	if repository.DB == nil || snapshot.Winner == nil {
		return
	}
	winner := snapshot.Players[*snapshot.Winner]
	_, err := repository.DB.Exec(
		`INSERT INTO duel_results
		 (room_id, winner_seat, winner_name, score_a, score_b, seals_a, seals_b, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		roomID, *snapshot.Winner, winner.Name,
		snapshot.Players[0].Score, snapshot.Players[1].Score,
		snapshot.Players[0].Seals, snapshot.Players[1].Seals,
		time.Now(),
	)
	if err != nil {
		logger.L.Errorf("❌ 对局归档失败: %v", err)
		return
	}
	logger.L.Infof("✅ 对局归档成功: room=%s winner=%s", roomID, winner.Name)
}
