package engine

import "fmt"

// spiralPath 自中心向外的固定铺设顺序，开局与补充均按此路径
var spiralPath = []Cell{
	// 中心
	{2, 2},
	// 第一圈（下 -> 右 -> 上 -> 左）
	{3, 2}, {3, 3}, {2, 3}, {1, 3}, {1, 2}, {1, 1}, {2, 1}, {3, 1},
	// 第二圈（下 -> 右 -> 上 -> 左）
	{4, 1}, {4, 2}, {4, 3}, {4, 4}, {3, 4}, {2, 4}, {1, 4},
	{0, 4}, {0, 3}, {0, 2}, {0, 1}, {0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
}

// ToggleTokenSelection 选中/取消一格玉石。黄金与空格不可选；
// 加入后若不构成合法直线则拒绝且保持原选择。
func (e *Engine) ToggleTokenSelection(r, c int) error {
	e.begin()
	s := e.state
	if s.Phase != PhaseAction {
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

	for i, cell := range s.Selection {
		if cell.R == r && cell.C == c {
			s.Selection = append(s.Selection[:i], s.Selection[i+1:]...)
			return nil
		}
	}
	if len(s.Selection) >= 3 {
		return ErrSelectionLimit
	}
	candidate := append(append([]Cell(nil), s.Selection...), Cell{r, c})
	if !isValidSelection(candidate, &s.Board) {
		return ErrInvalidSelection
	}
	s.Selection = candidate
	return nil
}

// RequestReplenish 重新充盈珍宝阁：沿螺旋路径补空格，受锦囊余量约束，
// 不结束回合，但对手获得一份旨意作为代价。
func (e *Engine) RequestReplenish() error {
	e.begin()
	s := e.state
	if s.Phase != PhaseAction {
		return ErrWrongPhase
	}
	if len(s.Bag) == 0 {
		return ErrBagEmpty
	}

	for _, cell := range spiralPath {
		if len(s.Bag) == 0 {
			break
		}
		if s.Board[cell.R][cell.C] != "" {
			continue
		}
		s.Board[cell.R][cell.C] = s.Bag[len(s.Bag)-1]
		s.Bag = s.Bag[:len(s.Bag)-1]
	}

	e.grantPrivilege(s.opponent())
	s.addLog("珍宝阁已重新充盈。")
	return nil
}

// CommitSelection 结算当前采选：玉石入库、清空格子，然后结束回合。
// 三枚同色或两枚以上明珠属于高效采选，对手获赐一份旨意。
func (e *Engine) CommitSelection() error {
	e.begin()
	s := e.state
	if s.Phase != PhaseAction {
		return ErrWrongPhase
	}
	if len(s.Selection) == 0 {
		return ErrEmptySelection
	}
	// 选择集在本回合内可能被用旨取玉掏空中段，结算前重新校验
	if !isValidSelection(s.Selection, &s.Board) {
		return ErrInvalidSelection
	}

	if selectionTriggersPenalty(s.Selection, &s.Board) {
		e.grantPrivilege(s.opponent())
	}

	player := s.current()
	for _, cell := range s.Selection {
		tile := s.Board[cell.R][cell.C]
		player.Inventory[tile]++
		s.Board[cell.R][cell.C] = ""
	}
	s.Selection = nil
	s.addLog(fmt.Sprintf("%s 采选了连续的玉石。", player.Name))
	e.endTurn()
	return nil
}

// selectionTriggersPenalty 结算前检查：三枚同色，或明珠两枚及以上
func selectionTriggersPenalty(selection []Cell, board *[5][5]JadeType) bool {
	pearls := 0
	counts := make(map[JadeType]int, 3)
	for _, cell := range selection {
		tile := board[cell.R][cell.C]
		counts[tile]++
		if tile == JadePearl {
			pearls++
		}
	}
	if pearls >= 2 {
		return true
	}
	for _, n := range counts {
		if n == 3 {
			return true
		}
	}
	return false
}
