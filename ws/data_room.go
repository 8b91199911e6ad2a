package ws

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"jade-game/engine"
	"jade-game/entities"
	"jade-game/repository"
)

// SetRoomInfo 设置房间元信息（Hash）
func SetRoomInfo(rdb *redis.Client, roomID string, info entities.RoomInfo) error {
	roomKey := fmt.Sprintf("room:%s:roomInfo", roomID)

	data := map[string]interface{}{
		"gameStatus": string(info.GameStatus),
		"roomStatus": strconv.FormatBool(info.RoomStatus),
		"userID":     info.UserID,
	}
	if err := rdb.HSet(repository.Ctx, roomKey, data).Err(); err != nil {
		return fmt.Errorf("❌ 设置房间信息失败: %w", err)
	}
	return nil
}

// GetRoomInfo 获取房间元信息（Hash）
func GetRoomInfo(roomID string) (*entities.RoomInfo, error) {
	roomKey := fmt.Sprintf("room:%s:roomInfo", roomID)
	roomInfoMap, err := repository.Rdb.HGetAll(repository.Ctx, roomKey).Result()
	if err != nil {
		return nil, fmt.Errorf("❌ 获取房间信息失败: %w", err)
	}
	if len(roomInfoMap) == 0 {
		return nil, fmt.Errorf("房间信息为空")
	}

	roomStatus, err := strconv.ParseBool(roomInfoMap["roomStatus"])
	if err != nil {
		return nil, fmt.Errorf("roomStatus 字段解析失败: %w", err)
	}
	return &entities.RoomInfo{
		RoomStatus: roomStatus,
		GameStatus: entities.RoomStatus(roomInfoMap["gameStatus"]),
		UserID:     roomInfoMap["userID"],
	}, nil
}

func SetGameStatus(rdb *redis.Client, roomID string, status entities.RoomStatus) error {
	roomInfoKey := fmt.Sprintf("room:%s:roomInfo", roomID)
	if err := rdb.HSet(repository.Ctx, roomInfoKey, "gameStatus", string(status)).Err(); err != nil {
		return fmt.Errorf("更新房间状态失败: %w", err)
	}
	return nil
}

func SetRoomStatus(rdb *redis.Client, roomID string, status bool) error {
	roomInfoKey := fmt.Sprintf("room:%s:roomInfo", roomID)
	if err := rdb.HSet(repository.Ctx, roomInfoKey, "roomStatus", strconv.FormatBool(status)).Err(); err != nil {
		return fmt.Errorf("更新房间状态失败: %w", err)
	}
	return nil
}

// SaveGameSnapshot 每条指令后把全量快照落入 Redis，掉线重连时同步
func SaveGameSnapshot(roomID string, snapshot engine.GameState) error {
	key := fmt.Sprintf("room:%s:game", roomID)
	bytes, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("快照序列化失败: %w", err)
	}
	return repository.Rdb.Set(repository.Ctx, key, bytes, 0).Err()
}

func GetGameSnapshot(roomID string) (*engine.GameState, error) {
	key := fmt.Sprintf("room:%s:game", roomID)
	val, err := repository.Rdb.Get(repository.Ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("获取快照失败: %w", err)
	}
	var snapshot engine.GameState
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return nil, fmt.Errorf("快照反序列化失败: %w", err)
	}
	return &snapshot, nil
}
