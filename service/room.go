package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"jade-game/dto"
	"jade-game/entities"
	"jade-game/repository"
	"jade-game/ws"
)

func CreateRoom(params dto.CreateRoomRequest) (string, error) {
	// 生成唯一 Room ID（8位）
	uuidStr := uuid.New().String()
	roomID := strings.ReplaceAll(uuidStr, "-", "")[:8]

	err := ws.SetRoomInfo(repository.Rdb, roomID, entities.RoomInfo{
		RoomStatus: false,
		GameStatus: entities.RoomStatusWaiting,
		UserID:     params.UserID,
	})
	if err != nil {
		return "", fmt.Errorf("初始化房间信息失败: %w", err)
	}

	ws.RegisterRoom(roomID)
	return roomID, nil
}

func DeleteRoom(params dto.DeleteRoomRequest) error {
	ctx := repository.Ctx
	rdb := repository.Rdb

	// 用 SCAN 查找所有以 room:{RoomID}: 开头的 key
	prefix := fmt.Sprintf("room:%s:", params.RoomID)
	var cursor uint64
	var keysToDelete []string

	for {
		keys, cur, err := rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("扫描房间相关 key 失败: %w", err)
		}
		keysToDelete = append(keysToDelete, keys...)
		cursor = cur
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return fmt.Errorf("房间不存在或无相关数据")
	}

	if _, err := rdb.Del(ctx, keysToDelete...).Result(); err != nil {
		return fmt.Errorf("删除房间相关 key 失败: %w", err)
	}
	ws.UnregisterRoom(params.RoomID)

	return nil
}

func GetRoomList() ([]dto.RoomInfo, error) {
	var rooms []dto.RoomInfo
	for _, roomID := range ws.RoomIDs() {
		roomInfo, err := ws.GetRoomInfo(roomID)
		if err != nil {
			ws.UnregisterRoom(roomID)
			continue
		}

		roomPlayers := make([]dto.RoomPlayer, 0, 2)
		for _, player := range ws.RoomSeats(roomID) {
			roomPlayers = append(roomPlayers, dto.RoomPlayer{
				PlayerID: player.PlayerID,
				Online:   player.Online,
			})
		}
		rooms = append(rooms, dto.RoomInfo{
			RoomID:     roomID,
			UserID:     roomInfo.UserID,
			Status:     roomInfo.RoomStatus,
			RoomPlayer: roomPlayers,
		})
	}
	return rooms, nil
}
