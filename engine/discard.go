package engine

import "fmt"

// DiscardToken 暂存一枚待弃玉石。此时只出库存、不入锦囊，确认前可悔
func (e *Engine) DiscardToken(kind JadeType) error {
	e.begin()
	s := e.state
	if s.Phase != PhaseDiscard {
		return ErrWrongPhase
	}
	player := s.current()
	if player.Inventory[kind] <= 0 {
		return ErrNothingToDiscard
	}
	player.Inventory[kind]--
	s.PendingDiscards[kind]++
	return nil
}

// ResetDiscard 整单悔弃：暂存的玉石全数退回库存
func (e *Engine) ResetDiscard() error {
	e.begin()
	s := e.state
	if s.Phase != PhaseDiscard {
		return ErrWrongPhase
	}
	player := s.current()
	for kind, n := range s.PendingDiscards {
		player.Inventory[kind] += n
	}
	s.PendingDiscards = make(map[JadeType]int)
	return nil
}

// ConfirmDiscard 库存降到十枚以内方可确认；暂存玉石落入锦囊，回合交给对手。
// 胜负在进入弃玉前已判过，此处不再判。
func (e *Engine) ConfirmDiscard() error {
	e.begin()
	s := e.state
	if s.Phase != PhaseDiscard {
		return ErrWrongPhase
	}
	player := s.current()
	if player.TotalTokens() > 10 {
		return ErrStillOverLimit
	}
	discarded := 0
	for kind, n := range s.PendingDiscards {
		for i := 0; i < n; i++ {
			s.Bag = append(s.Bag, kind)
		}
		discarded += n
	}
	s.addLog(fmt.Sprintf("%s 忍痛弃玉 %d 枚。", player.Name, discarded))
	e.passTurn()
	return nil
}

// PickBeauty 御宝跨过门槛后挑选美人：得分入账，能力即时生效，
// 所选美人从共享池中永久移除，随后回到回合结算。
func (e *Engine) PickBeauty(beautyID string) error {
	e.begin()
	s := e.state
	if s.Phase != PhasePickingBeauty {
		return ErrWrongPhase
	}
	idx := -1
	for i, b := range s.AvailableBeauties {
		if b.ID == beautyID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrBeautyNotFound
	}

	player := s.current()
	beauty := s.AvailableBeauties[idx]
	s.AvailableBeauties = append(s.AvailableBeauties[:idx], s.AvailableBeauties[idx+1:]...)
	player.Beauties = append(player.Beauties, beauty)
	player.Score += beauty.Points
	s.addLog(fmt.Sprintf("%s 获佳人 %s 垂青。", player.Name, beauty.Name))

	if beauty.Ability != "" {
		e.resolveAbility(beauty.Ability)
	}
	s.Phase = PhaseAction
	e.endTurn()
	return nil
}
