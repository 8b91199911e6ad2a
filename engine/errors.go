package engine

import "errors"

// 指令被拒绝时返回可区分的错误，状态保持原样，绝无半途写入
var (
	ErrWrongPhase       = errors.New("当前阶段不允许该操作")
	ErrEmptySelection   = errors.New("尚未选中任何玉石")
	ErrInvalidSelection = errors.New("采选不合法：须为横、竖、斜直线且相邻之玉")
	ErrSelectionLimit   = errors.New("一次最多采选三枚玉石")
	ErrEmptyCell        = errors.New("该格没有玉石")
	ErrGoldNotSelect    = errors.New("黄金不可直接采选")
	ErrInsufficientGold = errors.New("玉石余额不足")
	ErrNoGoldOnBoard    = errors.New("阁内已无黄金，无法保留")
	ErrReserveFull      = errors.New("最多保留3张")
	ErrBagEmpty         = errors.New("锦囊已空，无玉可补")
	ErrCardNotFound     = errors.New("卡牌不存在")
	ErrBeautyNotFound   = errors.New("美人不存在或已被选走")
	ErrNoPrivilege      = errors.New("手中没有旨意")
	ErrNothingToDiscard = errors.New("该种玉石库存为零")
	ErrStillOverLimit   = errors.New("库存仍超过十枚，不能结束弃玉")
)
