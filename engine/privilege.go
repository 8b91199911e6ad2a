package engine

import "fmt"

// grantPrivilege 颁赐旨意：共享池有余则取自池；否则从另一位玩家手中转移；
// 两处都空时仅记日志，不凭空创造（旨意是封闭经济）。
func (e *Engine) grantPrivilege(target *Player) {
	s := e.state
	other := s.Players[(target.ID+1)%2]

	switch {
	case s.PrivilegesOnBoard > 0:
		s.PrivilegesOnBoard--
		target.Privileges++
		s.addLog(fmt.Sprintf("%s 获得一份旨意。", target.Name))
	case other.Privileges > 0:
		other.Privileges--
		target.Privileges++
		s.addLog(fmt.Sprintf("%s 获得一份旨意。", target.Name))
	default:
		s.addLog("旨意已尽，此番无赐。")
	}
}

// BeginPrivilegeUse 进入用旨阶段，需手中有旨意
func (e *Engine) BeginPrivilegeUse() error {
	e.begin()
	s := e.state
	if s.Phase != PhaseAction {
		return ErrWrongPhase
	}
	if s.current().Privileges == 0 {
		return ErrNoPrivilege
	}
	s.Phase = PhaseUsingPrivilege
	return nil
}

// CancelPrivilegeUse 取消用旨，无任何副作用
func (e *Engine) CancelPrivilegeUse() error {
	e.begin()
	if e.state.Phase != PhaseUsingPrivilege {
		return ErrWrongPhase
	}
	e.state.Phase = PhaseAction
	return nil
}

// UsePrivilegeOnCell 凭旨意绕过采选规则直取一枚非黄金玉石。
// 消耗的旨意回流共享池而非对手，回合不结束。
func (e *Engine) UsePrivilegeOnCell(r, c int) error {
	e.begin()
	s := e.state
	if s.Phase != PhaseUsingPrivilege {
		return ErrWrongPhase
	}
	if r < 0 || r >= 5 || c < 0 || c >= 5 {
		return ErrEmptyCell
	}
	tile := s.Board[r][c]
	if tile == "" {
		return ErrEmptyCell
	}
	if tile == JadeGold {
		return ErrGoldNotSelect
	}

	player := s.current()
	player.Privileges--
	s.PrivilegesOnBoard++
	player.Inventory[tile]++
	s.Board[r][c] = ""
	// 被取走的格子若已在采选中，顺手摘掉，避免结算到空格
	for i, cell := range s.Selection {
		if cell.R == r && cell.C == c {
			s.Selection = append(s.Selection[:i], s.Selection[i+1:]...)
			break
		}
	}
	s.Phase = PhaseAction
	s.addLog(fmt.Sprintf("%s 凭旨意取走一枚%s。", player.Name, JadeLabels[tile]))
	return nil
}
