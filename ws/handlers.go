package ws

import (
	"fmt"

	"jade-game/dto"
	"jade-game/engine"
)

// 各指令处理器。席位校验通过后直接转交引擎，引擎保证要么全部生效要么分毫不动。

func handleToggleTokenMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	var payload dto.CellPayload
	if err := decodePayload(msgMap["payload"], &payload); err != nil {
		return err
	}
	return room.Engine.ToggleTokenSelection(payload.R, payload.C)
}

func handleCommitSelectionMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	return room.Engine.CommitSelection()
}

func handleReplenishMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	return room.Engine.RequestReplenish()
}

func handleBuyCardMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	var payload dto.BuyCardPayload
	if err := decodePayload(msgMap["payload"], &payload); err != nil {
		return err
	}
	source := engine.CardSource(payload.Source)
	if source != engine.SourceMarket && source != engine.SourceReserve {
		return fmt.Errorf("未知的购卡来源: %s", payload.Source)
	}
	return room.Engine.BuyCard(payload.CardID, source, payload.Tier)
}

func handleReserveCardMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	var payload dto.ReserveCardPayload
	if err := decodePayload(msgMap["payload"], &payload); err != nil {
		return err
	}
	return room.Engine.ReserveCard(payload.CardID, payload.Tier)
}

func handleBeginPrivilegeMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	return room.Engine.BeginPrivilegeUse()
}

func handleCancelPrivilegeMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	return room.Engine.CancelPrivilegeUse()
}

func handleUsePrivilegeMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	var payload dto.CellPayload
	if err := decodePayload(msgMap["payload"], &payload); err != nil {
		return err
	}
	return room.Engine.UsePrivilegeOnCell(payload.R, payload.C)
}

func handleDiscardTokenMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	var payload dto.DiscardPayload
	if err := decodePayload(msgMap["payload"], &payload); err != nil {
		return err
	}
	return room.Engine.DiscardToken(engine.JadeType(payload.Kind))
}

func handleResetDiscardMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	return room.Engine.ResetDiscard()
}

func handleConfirmDiscardMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	return room.Engine.ConfirmDiscard()
}

func handlePickBeautyMessage(room *Room, playerID string, msgMap map[string]interface{}) error {
	if _, err := requireSeat(room, playerID); err != nil {
		return err
	}
	var payload dto.PickBeautyPayload
	if err := decodePayload(msgMap["payload"], &payload); err != nil {
		return err
	}
	return room.Engine.PickBeauty(payload.BeautyID)
}
