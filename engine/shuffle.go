package engine

import "golang.org/x/exp/rand"

// Shuffler 洗牌能力由外部注入，测试时可替换为固定排列
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// RandShuffler 生产环境实现
type RandShuffler struct {
	rng *rand.Rand
}

func NewRandShuffler(seed uint64) *RandShuffler {
	return &RandShuffler{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandShuffler) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// NopShuffler 不打乱，保持目录顺序，测试专用
type NopShuffler struct{}

func (NopShuffler) Shuffle(n int, swap func(i, j int)) {}
