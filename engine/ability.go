package engine

import "fmt"

// resolveAbility 卡牌/美人能力的即时结算，归属于当前玩家
func (e *Engine) resolveAbility(ability Ability) {
	s := e.state
	player := s.current()
	opponent := s.opponent()

	switch ability {
	case AbilityExtraTurn:
		// 不在此处改回合归属：排一个延迟效果，在下一条指令分发前
		// 把行动权拨回本人，避免打乱胜负/弃玉的结算顺序
		s.addLog("触发能力：流连忘返（额外回合）！")
		acquirer := s.CurrentPlayerIndex
		var fn func(*GameState)
		fn = func(state *GameState) {
			if state.Winner != nil {
				return
			}
			// 选美、弃玉等插入阶段尚未走完时放回队列，回到行动阶段再生效
			if state.Phase != PhaseAction {
				e.followUps = append(e.followUps, fn)
				return
			}
			state.CurrentPlayerIndex = acquirer
		}
		e.followUps = append(e.followUps, fn)

	case AbilityPrivilege:
		s.addLog("触发能力：获赐旨意。")
		e.grantPrivilege(player)

	case AbilityStealToken:
		// 按声明顺序找对手第一种有存量的非黄金玉石
		for _, jade := range append(append([]JadeType(nil), BonusColors...), JadePearl) {
			if opponent.Inventory[jade] > 0 {
				opponent.Inventory[jade]--
				player.Inventory[jade]++
				s.addLog(fmt.Sprintf("触发能力：窃得 %s。", JadeLabels[jade]))
				break
			}
		}

	case AbilityTakeTokenSameColor, AbilityMatchColor:
		// 这两种能力的具体规则尚未定稿，结算时不产生任何效果
	}
}
