package const_data

import (
	"testing"

	"jade-game/engine"
)

func TestInitialBagComposition(t *testing.T) {
	if len(InitialBag) != 25 {
		t.Fatalf("锦囊应为 25 枚，实际 %d", len(InitialBag))
	}
	counts := make(map[engine.JadeType]int)
	for _, jade := range InitialBag {
		counts[jade]++
	}
	for _, color := range engine.BonusColors {
		if counts[color] != 4 {
			t.Errorf("%s 应为 4 枚，实际 %d", color, counts[color])
		}
	}
	if counts[engine.JadePearl] != 2 {
		t.Errorf("明珠应为 2 枚，实际 %d", counts[engine.JadePearl])
	}
	if counts[engine.JadeGold] != 3 {
		t.Errorf("黄金应为 3 枚，实际 %d", counts[engine.JadeGold])
	}
}

func TestCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	total := 0
	for tier, cards := range map[int][]engine.JadeCard{1: Tier1Cards, 2: Tier2Cards, 3: Tier3Cards} {
		for _, card := range cards {
			total++
			if seen[card.ID] {
				t.Errorf("卡牌 ID 重复: %s", card.ID)
			}
			seen[card.ID] = true
			if card.Tier != tier {
				t.Errorf("卡牌 %s 品级标注 %d，应为 %d", card.ID, card.Tier, tier)
			}
			if len(card.Cost) == 0 {
				t.Errorf("卡牌 %s 缺少费用", card.ID)
			}
		}
	}
	if total != len(Tier1Cards)+len(Tier2Cards)+len(Tier3Cards) {
		t.Fatalf("目录统计不一致")
	}
	// 各品级须足以铺满市场卡位
	if len(Tier1Cards) < 5 || len(Tier2Cards) < 4 || len(Tier3Cards) < 3 {
		t.Errorf("目录不足以铺满市场: %d/%d/%d", len(Tier1Cards), len(Tier2Cards), len(Tier3Cards))
	}

	beautyIDs := make(map[string]bool)
	for _, b := range Beauties {
		if beautyIDs[b.ID] {
			t.Errorf("美人 ID 重复: %s", b.ID)
		}
		beautyIDs[b.ID] = true
		if b.Points <= 0 || b.Name == "" {
			t.Errorf("美人 %s 数据不完整", b.ID)
		}
	}
}

// 默认目录开局应直接可用：满盘、满市场、锦囊清空
func TestDefaultConfigBoots(t *testing.T) {
	e := engine.NewEngine(DefaultConfig("甲", "乙"), engine.NopShuffler{})
	snap := e.Snapshot()

	filled := 0
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if snap.Board[r][c] != "" {
				filled++
			}
		}
	}
	if filled != 25 {
		t.Errorf("棋盘应铺满，实际 %d", filled)
	}
	if len(snap.Bag) != 0 {
		t.Errorf("开局后锦囊应为空，实际 %d", len(snap.Bag))
	}
	if len(snap.Market.Tier1) != 5 || len(snap.Market.Tier2) != 4 || len(snap.Market.Tier3) != 3 {
		t.Errorf("市场卡位不足: %d/%d/%d",
			len(snap.Market.Tier1), len(snap.Market.Tier2), len(snap.Market.Tier3))
	}
	if len(snap.AvailableBeauties) != len(Beauties) {
		t.Errorf("美人池应完整传入")
	}
}
