package rule

import (
	"slices"

	"github.com/palemoky/tien-len/internal/game/card"
)

// CanBeatWithHand 检查一个玩家的整手牌中是否存在任何可以打过 active 的组合
func CanBeatWithHand(hand []card.Card, active Combination) bool {
	return FindSmallestBeatingCards(hand, active) != nil
}

// FindSmallestBeatingCards 找到能打过 active 的最小牌组，找不到时返回 nil。
// 新一轮时返回最小的单张。优先同牌型，其次炸弹，最后三连对。
func FindSmallestBeatingCards(hand []card.Card, active Combination) []card.Card {
	sorted := slices.Clone(hand)
	card.SortHand(sorted)
	if len(sorted) == 0 {
		return nil
	}
	if active.IsEmpty() {
		return sorted[:1]
	}

	var result []card.Card
	switch active.Type {
	case Single:
		result = findBeatingOfAKind(sorted, 1, active)
	case Pair:
		result = findBeatingOfAKind(sorted, 2, active)
	case Triple:
		result = findBeatingOfAKind(sorted, 3, active)
	case FourOfAKind:
		result = findBeatingOfAKind(sorted, 4, active)
	case Straight:
		result = findBeatingStraight(sorted, active)
	case SixBomb:
		result = findBeatingSixBomb(sorted, active)
	}
	if result != nil {
		return result
	}

	if !active.Type.IsBomb() {
		if bomb := findBeatingOfAKind(sorted, 4, Combination{}); bomb != nil {
			return bomb
		}
	}
	if active.Type != SixBomb {
		return findBeatingSixBomb(sorted, Combination{})
	}
	return nil
}

// groupByRank 已排序手牌按点数分组，王不参与组合
func groupByRank(sorted []card.Card) [][]card.Card {
	var groups [][]card.Card
	for _, c := range sorted {
		if c.Rank.IsJoker() {
			continue
		}
		if n := len(groups); n > 0 && groups[n-1][0].Rank == c.Rank {
			groups[n-1] = append(groups[n-1], c)
			continue
		}
		groups = append(groups, []card.Card{c})
	}
	return groups
}

// findBeatingOfAKind 找到最小的 size 张同点数组合，active 为空时只要求凑齐张数。
// 同点数内选花色最小的，若不够大则换成该点数最大的几张。
func findBeatingOfAKind(sorted []card.Card, size int, active Combination) []card.Card {
	if size == 1 {
		for _, c := range sorted {
			if active.IsEmpty() || active.Strength.Less(c.Value()) {
				return []card.Card{c}
			}
		}
		return nil
	}

	for _, g := range groupByRank(sorted) {
		if len(g) < size {
			continue
		}
		low := g[:size]
		if active.IsEmpty() || active.Strength.Less(low[size-1].Value()) {
			return slices.Clone(low)
		}
		high := g[len(g)-size:]
		if active.Strength.Less(high[size-1].Value()) {
			return slices.Clone(high)
		}
	}
	return nil
}

// findBeatingStraight 滑动窗口查找等长且更大的顺子
func findBeatingStraight(sorted []card.Card, active Combination) []card.Card {
	groups := groupByRank(sorted)
	length := active.Length

	for i := 0; i+length <= len(groups); i++ {
		window := groups[i : i+length]
		ranks := make([]card.Rank, length)
		for j, g := range window {
			ranks[j] = g[0].Rank
		}
		if !isContinuous(ranks) {
			continue
		}
		// 前面取每个点数最小的，最后一张取最大花色以争取压过
		straight := make([]card.Card, 0, length)
		for _, g := range window[:length-1] {
			straight = append(straight, g[0])
		}
		last := window[length-1]
		for _, top := range last {
			if active.Strength.Less(top.Value()) {
				return append(straight, top)
			}
		}
	}
	return nil
}

// findBeatingSixBomb 查找三连对
func findBeatingSixBomb(sorted []card.Card, active Combination) []card.Card {
	var pairs [][]card.Card
	for _, g := range groupByRank(sorted) {
		if len(g) >= 2 {
			pairs = append(pairs, g)
		}
	}

	for i := 0; i+3 <= len(pairs); i++ {
		window := pairs[i : i+3]
		if !isContinuous([]card.Rank{window[0][0].Rank, window[1][0].Rank, window[2][0].Rank}) {
			continue
		}
		bomb := slices.Concat(window[0][:2], window[1][:2])
		top := window[2]
		for j := 0; j+2 <= len(top); j++ {
			candidate := slices.Concat(bomb, top[j:j+2])
			if active.IsEmpty() || active.Strength.Less(candidate[5].Value()) {
				return candidate
			}
		}
	}
	return nil
}
