package engine

import "testing"

// enterDiscard 让甲超持并走完一次回合结算，停在弃玉阶段
func enterDiscard(t *testing.T, white, pearl int) *Engine {
	t.Helper()
	e := newBareEngine()
	s := e.state
	s.Players[0].Inventory[JadeWhite] = white
	s.Players[0].Inventory[JadePearl] = pearl
	s.Board[0][0] = JadeBlue
	s.Selection = []Cell{{0, 0}}
	if err := e.CommitSelection(); err != nil {
		t.Fatalf("结算采选失败: %v", err)
	}
	if s.Phase != PhaseDiscard {
		t.Fatalf("应进入弃玉阶段，实际 %v", s.Phase)
	}
	return e
}

func TestDiscardFlow(t *testing.T) {
	e := enterDiscard(t, 10, 1) // 采选一枚后共 12
	s := e.state
	p := s.Players[0]

	if err := e.DiscardToken(JadeWhite); err != nil {
		t.Fatalf("暂存弃玉失败: %v", err)
	}
	if err := e.DiscardToken(JadePearl); err != nil {
		t.Fatalf("暂存弃玉失败: %v", err)
	}
	if p.Inventory[JadeWhite] != 9 || p.Inventory[JadePearl] != 0 {
		t.Errorf("暂存应即时出库存: %v", p.Inventory)
	}
	if len(s.Bag) != 0 {
		t.Errorf("确认前锦囊不应入账")
	}

	if err := e.ConfirmDiscard(); err != nil {
		t.Fatalf("确认弃玉失败: %v", err)
	}
	if len(s.Bag) != 2 {
		t.Errorf("弃玉应落入锦囊，实际 %d", len(s.Bag))
	}
	if p.TotalTokens() != 10 {
		t.Errorf("确认后库存应为 10，实际 %d", p.TotalTokens())
	}
	if s.CurrentPlayerIndex != 1 || s.Phase != PhaseAction {
		t.Errorf("确认后回合应交给对手")
	}
	if s.PendingDiscards != nil {
		t.Errorf("换人后暂存区应清空")
	}
}

func TestDiscardReset(t *testing.T) {
	e := enterDiscard(t, 11, 0)
	s := e.state
	p := s.Players[0]

	if err := e.DiscardToken(JadeWhite); err != nil {
		t.Fatalf("暂存失败: %v", err)
	}
	if err := e.DiscardToken(JadeWhite); err != nil {
		t.Fatalf("暂存失败: %v", err)
	}
	if err := e.ResetDiscard(); err != nil {
		t.Fatalf("悔弃失败: %v", err)
	}
	if p.Inventory[JadeWhite] != 11 {
		t.Errorf("悔弃应原数退回库存，实际 %d", p.Inventory[JadeWhite])
	}
	if len(s.PendingDiscards) != 0 {
		t.Errorf("悔弃后暂存区应为空")
	}
	if s.Phase != PhaseDiscard {
		t.Errorf("悔弃后仍应处于弃玉阶段")
	}
}

func TestConfirmWhileStillOverLimit(t *testing.T) {
	e := enterDiscard(t, 11, 0)
	if err := e.DiscardToken(JadeWhite); err != nil {
		t.Fatalf("暂存失败: %v", err)
	}
	// 12 - 1 = 11，仍超
	if err := e.ConfirmDiscard(); err != ErrStillOverLimit {
		t.Errorf("仍超持应拒绝确认，实际 %v", err)
	}
	if e.state.Phase != PhaseDiscard {
		t.Errorf("拒绝后应停留在弃玉阶段")
	}
}

func TestDiscardZeroInventoryKind(t *testing.T) {
	e := enterDiscard(t, 11, 0)
	if err := e.DiscardToken(JadeRed); err != ErrNothingToDiscard {
		t.Errorf("库存为零的种类应拒绝，实际 %v", err)
	}
}

func TestDiscardWrongPhase(t *testing.T) {
	e := newBareEngine()
	if err := e.DiscardToken(JadeWhite); err != ErrWrongPhase {
		t.Errorf("行动阶段不应允许弃玉，实际 %v", err)
	}
	if err := e.ConfirmDiscard(); err != ErrWrongPhase {
		t.Errorf("行动阶段不应允许确认弃玉，实际 %v", err)
	}
}
