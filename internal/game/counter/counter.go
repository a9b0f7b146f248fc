package counter

import "github.com/palemoky/tien-len/internal/game/card"

// Counter 记牌器：统计还没出现在出牌堆里的各点数张数
type Counter struct {
	remaining map[card.Rank]int
	deck      card.Deck
}

// New 以整副牌的构成初始化记牌器
func New(deck card.Deck) *Counter {
	c := &Counter{deck: deck}
	c.Reset()
	return c
}

// Reset 恢复到整副牌
func (c *Counter) Reset() {
	c.remaining = make(map[card.Rank]int)
	for _, cd := range c.deck {
		c.remaining[cd.Rank]++
	}
}

// Deduct 扣除打出的牌
func (c *Counter) Deduct(cards []card.Card) {
	for _, cd := range cards {
		if c.remaining[cd.Rank] > 0 {
			c.remaining[cd.Rank]--
		}
	}
}

// Remaining 返回某个点数还剩几张
func (c *Counter) Remaining(r card.Rank) int {
	return c.remaining[r]
}

// Total 返回剩余总张数
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.remaining {
		total += n
	}
	return total
}

// Ranks 返回牌里出现过的点数，按强度降序，便于展示
func (c *Counter) Ranks() []card.Rank {
	var ranks []card.Rank
	for r := card.RankRedJoker; r >= card.Rank3; r-- {
		if _, ok := c.remaining[r]; ok {
			ranks = append(ranks, r)
		}
	}
	return ranks
}
