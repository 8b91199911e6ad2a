package engine

import "fmt"

// Config 开局配置，牌堆与锦囊传入时尚未打乱
type Config struct {
	PlayerNames [2]string
	Decks       Decks
	Beauties    []Beauty
	Bag         []JadeType
}

// Engine 规则引擎。全部状态变更只经由其指令方法，外部拿到的永远是完整快照。
// 引擎自身不加锁，调用方（房间）需保证指令串行。
type Engine struct {
	state *GameState

	// 再弈等延迟效果排队于此，在下一条指令分发前同步排空
	followUps []func(*GameState)
}

func NewEngine(cfg Config, shuffler Shuffler) *Engine {
	d1 := shuffledCards(cfg.Decks.Tier1, shuffler)
	d2 := shuffledCards(cfg.Decks.Tier2, shuffler)
	d3 := shuffledCards(cfg.Decks.Tier3, shuffler)

	bag := make([]JadeType, len(cfg.Bag))
	copy(bag, cfg.Bag)
	shuffler.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })

	state := &GameState{
		Bag:               bag,
		AvailableBeauties: append([]Beauty(nil), cfg.Beauties...),
		Players: [2]*Player{
			newPlayer(0, cfg.PlayerNames[0]),
			newPlayer(1, cfg.PlayerNames[1]),
		},
		CurrentPlayerIndex: 0,
		PrivilegesOnBoard:  2,
		Log:                []string{"雅室初开。两袖清风，唯玉可解。"},
		Phase:              PhaseAction,
	}

	// 沿螺旋路径自中心向外铺满棋盘，玉石从锦囊尾部取出
	for _, cell := range spiralPath {
		if len(state.Bag) == 0 {
			break
		}
		state.Board[cell.R][cell.C] = state.Bag[len(state.Bag)-1]
		state.Bag = state.Bag[:len(state.Bag)-1]
	}

	state.Market.Tier1, state.Decks.Tier1 = splitMarket(d1, 5)
	state.Market.Tier2, state.Decks.Tier2 = splitMarket(d2, 4)
	state.Market.Tier3, state.Decks.Tier3 = splitMarket(d3, 3)

	return &Engine{state: state}
}

func newPlayer(id int, name string) *Player {
	if name == "" {
		name = fmt.Sprintf("玩家%d", id+1)
	}
	inv := make(map[JadeType]int, len(AllTypes))
	bonuses := make(map[JadeType]int, len(AllTypes))
	for _, t := range AllTypes {
		inv[t] = 0
		bonuses[t] = 0
	}
	return &Player{
		ID:             id,
		Name:           name,
		Inventory:      inv,
		Bonuses:        bonuses,
		ReservedCards:  []JadeCard{},
		PurchasedCards: []JadeCard{},
		Beauties:       []Beauty{},
	}
}

func shuffledCards(cards []JadeCard, shuffler Shuffler) []JadeCard {
	out := make([]JadeCard, len(cards))
	copy(out, cards)
	shuffler.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func splitMarket(deck []JadeCard, size int) (market, rest []JadeCard) {
	if size > len(deck) {
		size = len(deck)
	}
	return deck[:size], deck[size:]
}

// begin 在每条指令进入时调用：先排空挂起的延迟效果。
// 只排本轮已挂起的那批，效果自身可以重新入队等待下一次分发
func (e *Engine) begin() {
	pending := e.followUps
	e.followUps = nil
	for _, fn := range pending {
		fn(e.state)
	}
}

// ActingSeat 当前行动席位。先排空延迟效果，保证再弈生效后归属正确
func (e *Engine) ActingSeat() int {
	e.begin()
	return e.state.CurrentPlayerIndex
}

// endTurn 回合结算的唯一入口：先判胜负，再判弃玉，最后才换人
func (e *Engine) endTurn() {
	s := e.state
	player := s.current()

	if checkVictory(player) {
		winner := s.CurrentPlayerIndex
		s.Winner = &winner
		s.Phase = PhaseGameOver
		s.addLog(fmt.Sprintf("%s 技压群芳，赢得雅室争艳！", player.Name))
		return
	}

	if player.TotalTokens() > 10 {
		s.Phase = PhaseDiscard
		s.PendingDiscards = make(map[JadeType]int)
		s.addLog(fmt.Sprintf("%s 玉石过盈，须弃至十枚。", player.Name))
		return
	}

	e.passTurn()
}

// passTurn 换人。弃玉确认后也由此收尾（彼时胜负已判过）
func (e *Engine) passTurn() {
	s := e.state
	s.CurrentPlayerIndex = (s.CurrentPlayerIndex + 1) % 2
	s.Selection = nil
	s.PendingDiscards = nil
	s.Phase = PhaseAction
}

// checkVictory 胜利条件：总分 20、御宝 10，或单色卡牌分累计 10
func checkVictory(player *Player) bool {
	if player.Score >= 20 {
		return true
	}
	if player.Seals >= 10 {
		return true
	}
	for _, color := range BonusColors {
		points := 0
		for _, card := range player.PurchasedCards {
			if card.Bonus == color {
				points += card.Points
			}
		}
		if points >= 10 {
			return true
		}
	}
	return false
}

// Snapshot 返回深拷贝的全量状态，供渲染或落盘。
// 先排空延迟效果，广播出去的行动席位才是准的
func (e *Engine) Snapshot() GameState {
	e.begin()
	s := e.state
	snap := GameState{
		Board:              s.Board,
		Bag:                append([]JadeType(nil), s.Bag...),
		AvailableBeauties:  append([]Beauty(nil), s.AvailableBeauties...),
		CurrentPlayerIndex: s.CurrentPlayerIndex,
		PrivilegesOnBoard:  s.PrivilegesOnBoard,
		Log:                append([]string(nil), s.Log...),
		Selection:          append([]Cell(nil), s.Selection...),
		Phase:              s.Phase,
	}
	snap.Market = Market{
		Tier1: copyCards(s.Market.Tier1),
		Tier2: copyCards(s.Market.Tier2),
		Tier3: copyCards(s.Market.Tier3),
	}
	snap.Decks = Decks{
		Tier1: copyCards(s.Decks.Tier1),
		Tier2: copyCards(s.Decks.Tier2),
		Tier3: copyCards(s.Decks.Tier3),
	}
	for i, p := range s.Players {
		snap.Players[i] = copyPlayer(p)
	}
	if s.Winner != nil {
		w := *s.Winner
		snap.Winner = &w
	}
	if s.PendingDiscards != nil {
		snap.PendingDiscards = make(map[JadeType]int, len(s.PendingDiscards))
		for k, v := range s.PendingDiscards {
			snap.PendingDiscards[k] = v
		}
	}
	return snap
}

func copyPlayer(p *Player) *Player {
	cp := &Player{
		ID:             p.ID,
		Name:           p.Name,
		Score:          p.Score,
		Seals:          p.Seals,
		Privileges:     p.Privileges,
		Inventory:      make(map[JadeType]int, len(p.Inventory)),
		Bonuses:        make(map[JadeType]int, len(p.Bonuses)),
		ReservedCards:  copyCards(p.ReservedCards),
		PurchasedCards: copyCards(p.PurchasedCards),
		Beauties:       append([]Beauty(nil), p.Beauties...),
	}
	for k, v := range p.Inventory {
		cp.Inventory[k] = v
	}
	for k, v := range p.Bonuses {
		cp.Bonuses[k] = v
	}
	return cp
}

// copyCards 连同费用表一并拷贝，快照里的卡牌与引擎内不共享任何 map
func copyCards(cards []JadeCard) []JadeCard {
	out := make([]JadeCard, len(cards))
	for i, card := range cards {
		cost := make(Cost, len(card.Cost))
		for k, v := range card.Cost {
			cost[k] = v
		}
		card.Cost = cost
		out[i] = card
	}
	return out
}
