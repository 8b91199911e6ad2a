package const_data

import "jade-game/engine"

// InitialBag 默认锦囊：五色各 4、明珠 2、黄金 3，共 25 枚，恰好铺满棋盘
var InitialBag = buildBag()

func buildBag() []engine.JadeType {
	bag := make([]engine.JadeType, 0, 25)
	for _, color := range []engine.JadeType{
		engine.JadeWhite, engine.JadeGreen, engine.JadeBlue, engine.JadeRed, engine.JadePurple,
	} {
		for i := 0; i < 4; i++ {
			bag = append(bag, color)
		}
	}
	bag = append(bag, engine.JadePearl, engine.JadePearl)
	bag = append(bag, engine.JadeGold, engine.JadeGold, engine.JadeGold)
	return bag
}

// 下品 · 璞玉待琢
var Tier1Cards = []engine.JadeCard{
	{ID: "t1-1", Tier: 1, Points: 0, Seals: 0, Bonus: engine.JadePurple, Cost: engine.Cost{engine.JadeRed: 1, engine.JadeGreen: 1, engine.JadeBlue: 1, engine.JadeWhite: 1}},
	{ID: "t1-2", Tier: 1, Points: 0, Seals: 0, Bonus: engine.JadeRed, Ability: engine.AbilityExtraTurn, Cost: engine.Cost{engine.JadePearl: 1, engine.JadeBlue: 2, engine.JadeWhite: 2}},
	{ID: "t1-3", Tier: 1, Points: 0, Seals: 0, Bonus: engine.JadeGreen, Ability: engine.AbilityTakeTokenSameColor, Cost: engine.Cost{engine.JadeRed: 2, engine.JadeGreen: 2}},
	{ID: "t1-4", Tier: 1, Points: 1, Seals: 0, Bonus: engine.JadeBlue, Cost: engine.Cost{engine.JadeGreen: 3, engine.JadeBlue: 2}},
	{ID: "t1-5", Tier: 1, Points: 0, Seals: 1, Bonus: engine.JadeWhite, Cost: engine.Cost{engine.JadeWhite: 3}},
	{ID: "t1-6", Tier: 1, Points: 0, Seals: 0, Bonus: engine.JadePurple, Cost: engine.Cost{engine.JadeWhite: 2, engine.JadeGreen: 1}},
	{ID: "t1-7", Tier: 1, Points: 0, Seals: 0, Bonus: engine.JadeBlue, Cost: engine.Cost{engine.JadeWhite: 2, engine.JadePurple: 2}},
	{ID: "t1-8", Tier: 1, Points: 0, Seals: 1, Bonus: engine.JadeRed, Cost: engine.Cost{engine.JadeBlue: 3}},
	{ID: "t1-9", Tier: 1, Points: 1, Seals: 0, Bonus: engine.JadeGreen, Cost: engine.Cost{engine.JadePurple: 3, engine.JadeGreen: 2}},
	{ID: "t1-10", Tier: 1, Points: 0, Seals: 0, Bonus: engine.JadeWhite, Ability: engine.AbilityStealToken, Cost: engine.Cost{engine.JadeRed: 2, engine.JadePearl: 1}},
	{ID: "t1-j1", Tier: 1, Points: 1, Seals: 0, Ability: engine.AbilityMatchColor, Cost: engine.Cost{engine.JadePearl: 1, engine.JadePurple: 4}},
}

// 中品 · 琳琅佳品
var Tier2Cards = []engine.JadeCard{
	{ID: "t2-1", Tier: 2, Points: 1, Seals: 0, Bonus: engine.JadePurple, Ability: engine.AbilityStealToken, Cost: engine.Cost{engine.JadeGreen: 3, engine.JadeWhite: 4}},
	{ID: "t2-2", Tier: 2, Points: 1, Seals: 0, Bonus: engine.JadeRed, Ability: engine.AbilityPrivilege, Cost: engine.Cost{engine.JadeBlue: 2, engine.JadeWhite: 5}},
	{ID: "t2-3", Tier: 2, Points: 2, Seals: 1, Bonus: engine.JadeBlue, Cost: engine.Cost{engine.JadePearl: 1, engine.JadeRed: 2, engine.JadeGreen: 2, engine.JadeBlue: 2}},
	{ID: "t2-4", Tier: 2, Points: 2, Seals: 0, Bonus: engine.JadeGreen, Ability: engine.AbilityTakeTokenSameColor, Cost: engine.Cost{engine.JadeBlue: 4, engine.JadeRed: 2}},
	{ID: "t2-5", Tier: 2, Points: 3, Seals: 0, Bonus: engine.JadeWhite, Cost: engine.Cost{engine.JadePurple: 5, engine.JadeGold: 1}},
	{ID: "t2-6", Tier: 2, Points: 1, Seals: 1, Bonus: engine.JadeRed, Cost: engine.Cost{engine.JadeGreen: 3, engine.JadeBlue: 2}},
	{ID: "t2-7", Tier: 2, Points: 2, Seals: 0, Bonus: engine.JadePurple, Cost: engine.Cost{engine.JadePearl: 1, engine.JadeRed: 4, engine.JadeGreen: 2}},
	{ID: "t2-8", Tier: 2, Points: 1, Seals: 2, Bonus: engine.JadeBlue, Cost: engine.Cost{engine.JadeWhite: 2, engine.JadeBlue: 2, engine.JadeRed: 2}},
	{ID: "t2-j1", Tier: 2, Points: 2, Seals: 0, Ability: engine.AbilityMatchColor, Cost: engine.Cost{engine.JadePearl: 1, engine.JadeWhite: 6}},
}

// 上品 · 旷世重器
var Tier3Cards = []engine.JadeCard{
	{ID: "t3-1", Tier: 3, Points: 3, Seals: 2, Bonus: engine.JadeGreen, Cost: engine.Cost{engine.JadePearl: 1, engine.JadeRed: 3, engine.JadeGreen: 5, engine.JadeWhite: 3}},
	{ID: "t3-2", Tier: 3, Points: 4, Seals: 0, Bonus: engine.JadeBlue, Ability: engine.AbilityExtraTurn, Cost: engine.Cost{engine.JadeWhite: 6, engine.JadeRed: 6}},
	{ID: "t3-3", Tier: 3, Points: 3, Seals: 1, Bonus: engine.JadeRed, Ability: engine.AbilityPrivilege, Cost: engine.Cost{engine.JadePearl: 1, engine.JadeBlue: 5, engine.JadeWhite: 3}},
	{ID: "t3-4", Tier: 3, Points: 5, Seals: 0, Bonus: engine.JadePurple, Cost: engine.Cost{engine.JadeGreen: 7, engine.JadeBlue: 3}},
	{ID: "t3-p1", Tier: 3, Points: 6, Seals: 0, Cost: engine.Cost{engine.JadeWhite: 8}},
	{ID: "t3-p2", Tier: 3, Points: 6, Seals: 0, Cost: engine.Cost{engine.JadeGreen: 8}},
	{ID: "t3-j1", Tier: 3, Points: 1, Seals: 3, Ability: engine.AbilityMatchColor, Cost: engine.Cost{engine.JadePurple: 8}},
}

// Beauties 绝代佳人，御宝累计跨过 3 与 6 时各可择一
var Beauties = []engine.Beauty{
	{ID: "b1", Name: "西施", Points: 2, Description: "浣纱溪畔，鱼见其貌而沉底。越女传信，获赐恩旨。", Ability: engine.AbilityPrivilege},
	{ID: "b2", Name: "王昭君", Points: 3, Description: "琵琶一曲，雁闻其音而落沙。远嫁塞外，万世流芳。"},
	{ID: "b3", Name: "貂蝉", Points: 2, Description: "凤仪亭前，月见其颜而隐云。巧施连环，偷香窃玉。", Ability: engine.AbilityStealToken},
	{ID: "b4", Name: "杨玉环", Points: 2, Description: "华清池深，花见其美而含羞。霓裳羽衣，梦回盛唐。", Ability: engine.AbilityExtraTurn},
}

// DefaultConfig 组装默认开局配置
func DefaultConfig(nameA, nameB string) engine.Config {
	return engine.Config{
		PlayerNames: [2]string{nameA, nameB},
		Decks: engine.Decks{
			Tier1: Tier1Cards,
			Tier2: Tier2Cards,
			Tier3: Tier3Cards,
		},
		Beauties: Beauties,
		Bag:      InitialBag,
	}
}
