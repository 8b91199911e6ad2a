package engine

import "testing"

// 旨意是封闭经济：池 -> 对手转移 -> 枯竭仅记日志
func TestGrantPrivilegeEconomy(t *testing.T) {
	e := newBareEngine()
	s := e.state
	a, b := s.Players[0], s.Players[1]

	e.grantPrivilege(a)
	e.grantPrivilege(a)
	if a.Privileges != 2 || s.PrivilegesOnBoard != 0 {
		t.Fatalf("前两次应取自共享池: a=%d 池=%d", a.Privileges, s.PrivilegesOnBoard)
	}

	// 池空，改为从持有者手中转移
	e.grantPrivilege(b)
	if b.Privileges != 1 || a.Privileges != 1 {
		t.Fatalf("池空应从对方转移: a=%d b=%d", a.Privileges, b.Privileges)
	}

	// 双方各一枚时继续互相转移
	e.grantPrivilege(a)
	if a.Privileges != 2 || b.Privileges != 0 {
		t.Fatalf("转移后: a=%d b=%d", a.Privileges, b.Privileges)
	}

	// 对 b 而言池空、a 有存量，照样转移；总量恒为 2
	e.grantPrivilege(b)
	if a.Privileges+b.Privileges+s.PrivilegesOnBoard != 2 {
		t.Fatalf("旨意总量应恒为 2")
	}
}

func TestPrivilegeUseFlow(t *testing.T) {
	e := newBareEngine()
	s := e.state
	p := s.Players[0]

	if err := e.BeginPrivilegeUse(); err != ErrNoPrivilege {
		t.Fatalf("无旨意应拒绝，实际 %v", err)
	}

	p.Privileges = 1
	s.Board[2][3] = JadeRed
	s.Board[2][4] = JadeGold
	if err := e.BeginPrivilegeUse(); err != nil {
		t.Fatalf("进入用旨阶段失败: %v", err)
	}
	if s.Phase != PhaseUsingPrivilege {
		t.Fatalf("阶段应为用旨，实际 %v", s.Phase)
	}

	if err := e.CancelPrivilegeUse(); err != nil {
		t.Fatalf("取消失败: %v", err)
	}
	if s.Phase != PhaseAction || p.Privileges != 1 {
		t.Fatalf("取消应无副作用")
	}

	if err := e.BeginPrivilegeUse(); err != nil {
		t.Fatalf("再次进入失败: %v", err)
	}
	if err := e.UsePrivilegeOnCell(2, 4); err != ErrGoldNotSelect {
		t.Fatalf("旨意不可取黄金，实际 %v", err)
	}
	if err := e.UsePrivilegeOnCell(0, 0); err != ErrEmptyCell {
		t.Fatalf("空格应拒绝，实际 %v", err)
	}
	if err := e.UsePrivilegeOnCell(2, 3); err != nil {
		t.Fatalf("用旨取玉失败: %v", err)
	}
	if p.Inventory[JadeRed] != 1 || s.Board[2][3] != "" {
		t.Errorf("玉石应入手且格子清空")
	}
	// 旨意回流共享池而非对手
	if p.Privileges != 0 || s.PrivilegesOnBoard != 3 {
		t.Errorf("旨意应回流池中: p=%d 池=%d", p.Privileges, s.PrivilegesOnBoard)
	}
	if s.Phase != PhaseAction || s.CurrentPlayerIndex != 0 {
		t.Errorf("用旨不应结束回合")
	}
}

// 用旨取走的格子若在采选中，应同步从选择里摘除
func TestPrivilegeClaimDropsSelectedCell(t *testing.T) {
	e := newBareEngine()
	s := e.state
	s.Players[0].Privileges = 1
	s.Board[1][1] = JadeBlue
	s.Board[1][2] = JadeBlue
	s.Selection = []Cell{{1, 1}, {1, 2}}

	if err := e.BeginPrivilegeUse(); err != nil {
		t.Fatalf("进入用旨阶段失败: %v", err)
	}
	if err := e.UsePrivilegeOnCell(1, 2); err != nil {
		t.Fatalf("用旨取玉失败: %v", err)
	}
	if len(s.Selection) != 1 || s.Selection[0] != (Cell{1, 1}) {
		t.Errorf("被取走的格子应从采选中摘除: %v", s.Selection)
	}
}

// 用旨取走三连线的中段后，剩余两格不再相邻，结算必须拒绝
func TestCommitRejectsLineBrokenByPrivilege(t *testing.T) {
	e := newBareEngine()
	s := e.state
	s.Players[0].Privileges = 1
	for c := 0; c <= 2; c++ {
		s.Board[1][c] = JadeBlue
		if err := e.ToggleTokenSelection(1, c); err != nil {
			t.Fatalf("选取 (1,%d) 失败: %v", c, err)
		}
	}

	if err := e.BeginPrivilegeUse(); err != nil {
		t.Fatalf("进入用旨阶段失败: %v", err)
	}
	if err := e.UsePrivilegeOnCell(1, 1); err != nil {
		t.Fatalf("用旨取玉失败: %v", err)
	}

	if err := e.CommitSelection(); err != ErrInvalidSelection {
		t.Fatalf("断裂的选择不应被结算，实际 %v", err)
	}
	p := s.Players[0]
	if p.Inventory[JadeBlue] != 1 {
		t.Errorf("拒绝后只应有用旨取得的一枚蓝宝，实际 %d", p.Inventory[JadeBlue])
	}
	if s.Board[1][0] != JadeBlue || s.Board[1][2] != JadeBlue {
		t.Errorf("拒绝后两端玉石应留在棋盘上")
	}
	if s.CurrentPlayerIndex != 0 || s.Phase != PhaseAction {
		t.Errorf("拒绝后回合不应推进")
	}
}

func TestUsePrivilegeWrongPhase(t *testing.T) {
	e := newBareEngine()
	if err := e.UsePrivilegeOnCell(0, 0); err != ErrWrongPhase {
		t.Errorf("行动阶段直接用旨应拒绝，实际 %v", err)
	}
	if err := e.CancelPrivilegeUse(); err != ErrWrongPhase {
		t.Errorf("行动阶段取消用旨应拒绝，实际 %v", err)
	}
}
