package engine

// 玉石种类：五色玉 + 明珠 + 黄金（万能替代，不可直接采选）
type JadeType string

const (
	JadeWhite  JadeType = "WHITE"  // 白玉
	JadeGreen  JadeType = "GREEN"  // 翠玉
	JadeBlue   JadeType = "BLUE"   // 蓝宝
	JadeRed    JadeType = "RED"    // 赤瑙
	JadePurple JadeType = "PURPLE" // 紫翡
	JadePearl  JadeType = "PEARL"  // 明珠
	JadeGold   JadeType = "GOLD"   // 黄金
)

// BonusColors 按声明顺序排列的五种奖励色（窃玉等能力按此顺序遍历）
var BonusColors = []JadeType{JadeWhite, JadeGreen, JadeBlue, JadeRed, JadePurple}

// AllTypes 全部玉石种类，遍历库存时使用
var AllTypes = []JadeType{JadeWhite, JadeGreen, JadeBlue, JadeRed, JadePurple, JadePearl, JadeGold}

// JadeLabels 中文名，仅用于日志
var JadeLabels = map[JadeType]string{
	JadeWhite:  "白玉",
	JadeGreen:  "翠玉",
	JadeBlue:   "蓝宝",
	JadeRed:    "赤瑙",
	JadePurple: "紫翡",
	JadePearl:  "明珠",
	JadeGold:   "黄金",
}

// Cost 卡牌费用，数量为 0 的种类省略
type Cost map[JadeType]int

// 卡牌/美人能力
type Ability string

const (
	AbilityExtraTurn          Ability = "EXTRA_TURN"            // 再弈
	AbilityTakeTokenSameColor Ability = "TAKE_TOKEN_SAME_COLOR" // 同泽（规则未定，见 Resolve）
	AbilityMatchColor         Ability = "MATCH_COLOR"           // 幻色（规则未定，见 Resolve）
	AbilityPrivilege          Ability = "PRIVILEGE"             // 旨意
	AbilityStealToken         Ability = "STEAL_TOKEN"           // 窃玉
)

// JadeCard 珍玩卡牌。Bonus 为空表示无色（幻色类卡），Ability 为空表示无能力
type JadeCard struct {
	ID      string   `json:"id"`
	Tier    int      `json:"tier"` // 1/2/3
	Points  int      `json:"points"`
	Seals   int      `json:"seals"`
	Bonus   JadeType `json:"bonus,omitempty"`
	Cost    Cost     `json:"cost"`
	Ability Ability  `json:"ability,omitempty"`
}

// Beauty 美人卡，御宝（seal）累计跨过 3 和 6 时各可选取一张
type Beauty struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Points      int     `json:"points"`
	Description string  `json:"description"`
	Ability     Ability `json:"ability,omitempty"`
}

// Player 玩家账簿，只能经由 Engine 的指令修改
type Player struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Score          int              `json:"score"`
	Seals          int              `json:"seals"`
	Inventory      map[JadeType]int `json:"inventory"`
	Bonuses        map[JadeType]int `json:"bonuses"`
	Privileges     int              `json:"privileges"`
	ReservedCards  []JadeCard       `json:"reservedCards"`
	PurchasedCards []JadeCard       `json:"purchasedCards"`
	Beauties       []Beauty         `json:"beauties"`
}

// TotalTokens 库存总数（含明珠、黄金），超过 10 触发弃玉
func (p *Player) TotalTokens() int {
	total := 0
	for _, n := range p.Inventory {
		total += n
	}
	return total
}

// 游戏阶段
type Phase string

const (
	PhaseAction         Phase = "ACTION"
	PhaseUsingPrivilege Phase = "USING_PRIVILEGE"
	PhaseDiscard        Phase = "DISCARD"
	PhasePickingBeauty  Phase = "PICKING_BEAUTY"
	PhaseGameOver       Phase = "GAME_OVER"
)

// Cell 棋盘坐标
type Cell struct {
	R int `json:"r"`
	C int `json:"c"`
}

// CardSource 购卡来源
type CardSource string

const (
	SourceMarket  CardSource = "market"
	SourceReserve CardSource = "reserve"
)

// Market 各品级可见卡位，容量 5/4/3
type Market struct {
	Tier1 []JadeCard `json:"tier1"`
	Tier2 []JadeCard `json:"tier2"`
	Tier3 []JadeCard `json:"tier3"`
}

// Decks 各品级待抽牌堆
type Decks struct {
	Tier1 []JadeCard `json:"tier1"`
	Tier2 []JadeCard `json:"tier2"`
	Tier3 []JadeCard `json:"tier3"`
}

// GameState 对局全量状态。Board 中空串表示空格
type GameState struct {
	Board              [5][5]JadeType   `json:"board"`
	Bag                []JadeType       `json:"bag"`
	Market             Market           `json:"market"`
	Decks              Decks            `json:"decks"`
	AvailableBeauties  []Beauty         `json:"availableBeauties"`
	Players            [2]*Player       `json:"players"`
	CurrentPlayerIndex int              `json:"currentPlayerIndex"`
	PrivilegesOnBoard  int              `json:"privilegesOnBoard"`
	Log                []string         `json:"log"` // 最新在前
	Selection          []Cell           `json:"selection"`
	Winner             *int             `json:"winner"`
	Phase              Phase            `json:"phase"`
	PendingDiscards    map[JadeType]int `json:"pendingDiscards,omitempty"`
}

func (s *GameState) current() *Player {
	return s.Players[s.CurrentPlayerIndex]
}

func (s *GameState) opponent() *Player {
	return s.Players[(s.CurrentPlayerIndex+1)%2]
}

func (s *GameState) addLog(msg string) {
	s.Log = append([]string{msg}, s.Log...)
}
