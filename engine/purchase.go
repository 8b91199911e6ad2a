package engine

import "fmt"

// BuyCard 购买市场或保留区的卡牌。支付不足时整单拒绝，分毫不动。
func (e *Engine) BuyCard(cardID string, source CardSource, tier int) error {
	e.begin()
	s := e.state
	if s.Phase != PhaseAction {
		return ErrWrongPhase
	}
	player := s.current()

	var card JadeCard
	var marketIdx, reserveIdx int
	switch source {
	case SourceMarket:
		market, _, err := e.tierSlices(tier)
		if err != nil {
			return err
		}
		marketIdx = indexOfCard(*market, cardID)
		if marketIdx < 0 {
			return ErrCardNotFound
		}
		card = (*market)[marketIdx]
	case SourceReserve:
		reserveIdx = indexOfCard(player.ReservedCards, cardID)
		if reserveIdx < 0 {
			return ErrCardNotFound
		}
		card = player.ReservedCards[reserveIdx]
	default:
		return ErrCardNotFound
	}

	payment, err := planPayment(player, card.Cost)
	if err != nil {
		return err
	}

	// 支付的玉石（含明珠、黄金）全数回流锦囊，这是锦囊唯一的补给来源
	for jade, amount := range payment {
		if amount == 0 {
			continue
		}
		player.Inventory[jade] -= amount
		for i := 0; i < amount; i++ {
			s.Bag = append(s.Bag, jade)
		}
	}

	prevSeals := player.Seals
	player.Score += card.Points
	player.Seals += card.Seals
	if card.Bonus != "" {
		player.Bonuses[card.Bonus]++
	}
	player.PurchasedCards = append(player.PurchasedCards, card)

	if source == SourceMarket {
		market, deck, _ := e.tierSlices(card.Tier)
		refillMarket(market, marketIdx, deck)
	} else {
		player.ReservedCards = append(player.ReservedCards[:reserveIdx], player.ReservedCards[reserveIdx+1:]...)
	}

	s.addLog(fmt.Sprintf("%s 购得一品珍玩。", player.Name))

	if card.Ability != "" {
		e.resolveAbility(card.Ability)
	}
	if crossedSealThreshold(prevSeals, player.Seals) && len(s.AvailableBeauties) > 0 {
		s.Phase = PhasePickingBeauty
	}
	if s.Phase == PhaseAction {
		e.endTurn()
	}
	return nil
}

// ReserveCard 保留市场卡牌：消耗阁中首枚黄金（行优先扫描），黄金入手，
// 卡入私藏，随后结束回合。
func (e *Engine) ReserveCard(cardID string, tier int) error {
	e.begin()
	s := e.state
	if s.Phase != PhaseAction {
		return ErrWrongPhase
	}
	player := s.current()

	goldCell := findGold(&s.Board)
	if goldCell == nil {
		return ErrNoGoldOnBoard
	}
	if len(player.ReservedCards) >= 3 {
		return ErrReserveFull
	}
	market, deck, err := e.tierSlices(tier)
	if err != nil {
		return err
	}
	idx := indexOfCard(*market, cardID)
	if idx < 0 {
		return ErrCardNotFound
	}

	player.Inventory[JadeGold]++
	s.Board[goldCell.R][goldCell.C] = ""
	player.ReservedCards = append(player.ReservedCards, (*market)[idx])
	refillMarket(market, idx, deck)

	s.addLog(fmt.Sprintf("%s 黄金入手，珍藏卡牌。", player.Name))
	e.endTurn()
	return nil
}

// planPayment 计算一笔购卡的实际支付。
// 各色净需求 = max(0, 标价 - 永久奖励)；库存不足的缺口折算为黄金。
// 明珠同理但无奖励可抵；黄金标价全额计入，不受任何折扣。
func planPayment(player *Player, cost Cost) (map[JadeType]int, error) {
	payment := make(map[JadeType]int, len(cost)+1)
	goldNeeded := cost[JadeGold]

	for _, color := range BonusColors {
		net := cost[color] - player.Bonuses[color]
		if net < 0 {
			net = 0
		}
		pay := net
		if player.Inventory[color] < net {
			pay = player.Inventory[color]
			goldNeeded += net - pay
		}
		payment[color] = pay
	}

	pearlReq := cost[JadePearl]
	pearlPay := pearlReq
	if player.Inventory[JadePearl] < pearlReq {
		pearlPay = player.Inventory[JadePearl]
		goldNeeded += pearlReq - pearlPay
	}
	payment[JadePearl] = pearlPay

	if player.Inventory[JadeGold] < goldNeeded {
		return nil, ErrInsufficientGold
	}
	payment[JadeGold] = goldNeeded
	return payment, nil
}

func crossedSealThreshold(prev, now int) bool {
	return (prev < 3 && now >= 3) || (prev < 6 && now >= 6)
}

// tierSlices 返回指定品级的市场与牌堆
func (e *Engine) tierSlices(tier int) (market, deck *[]JadeCard, err error) {
	switch tier {
	case 1:
		return &e.state.Market.Tier1, &e.state.Decks.Tier1, nil
	case 2:
		return &e.state.Market.Tier2, &e.state.Decks.Tier2, nil
	case 3:
		return &e.state.Market.Tier3, &e.state.Decks.Tier3, nil
	default:
		return nil, nil, ErrCardNotFound
	}
}

// refillMarket 空出的卡位立即从牌堆补上；牌堆耗尽则市场收缩一位
func refillMarket(market *[]JadeCard, idx int, deck *[]JadeCard) {
	if len(*deck) > 0 {
		(*market)[idx] = (*deck)[0]
		*deck = (*deck)[1:]
		return
	}
	*market = append((*market)[:idx], (*market)[idx+1:]...)
}

func indexOfCard(cards []JadeCard, id string) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// findGold 行优先扫描阁中首枚黄金
func findGold(board *[5][5]JadeType) *Cell {
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if board[r][c] == JadeGold {
				return &Cell{r, c}
			}
		}
	}
	return nil
}
