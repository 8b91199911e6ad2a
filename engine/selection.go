package engine

import "sort"

// isValidSelection 判定一组坐标是否构成合法采选。
// 0 或 1 格恒合法；2-3 格按行列排序后，前两格的行列差须为八向单位步，
// 其后每一格都必须沿同一方向连续，且每格都得有玉石（不能隔空）。
// 判定与传入顺序无关。
func isValidSelection(selection []Cell, board *[5][5]JadeType) bool {
	if len(selection) <= 1 {
		return true
	}
	sorted := append([]Cell(nil), selection...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].R != sorted[j].R {
			return sorted[i].R < sorted[j].R
		}
		return sorted[i].C < sorted[j].C
	})

	dr := sorted[1].R - sorted[0].R
	dc := sorted[1].C - sorted[0].C
	if dr < -1 || dr > 1 || dc < -1 || dc > 1 || (dr == 0 && dc == 0) {
		return false
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].R-sorted[i-1].R != dr || sorted[i].C-sorted[i-1].C != dc {
			return false
		}
		if board[sorted[i].R][sorted[i].C] == "" {
			return false
		}
	}
	return true
}
