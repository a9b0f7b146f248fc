package rule

import (
	"fmt"
	"slices"

	"github.com/palemoky/tien-len/internal/apperrors"
	"github.com/palemoky/tien-len/internal/game/card"
)

// PlayType 定义牌型
type PlayType int

const (
	Invalid     PlayType = iota
	Single               // 单张
	Pair                 // 对子
	Triple               // 三张
	Straight             // 顺子（3 张或以上连续单张）
	FourOfAKind          // 炸弹（四张相同）
	SixBomb              // 三连对（六张）
)

// playTypeNames 牌型名称映射表
var playTypeNames = map[PlayType]string{
	Single:      "单张",
	Pair:        "对子",
	Triple:      "三张",
	Straight:    "顺子",
	FourOfAKind: "炸弹",
	SixBomb:     "三连对",
}

func (p PlayType) String() string {
	if name, ok := playTypeNames[p]; ok {
		return name
	}
	return "无效"
}

// IsBomb 炸弹类牌型可以压过非炸弹牌型
func (p PlayType) IsBomb() bool {
	return p == FourOfAKind || p == SixBomb
}

// Combination 解析后的出牌，用于比较
type Combination struct {
	Type     PlayType
	Length   int         // 牌数，顺子必须等长才能比较
	Strength card.Value  // 最大那张牌的比较键
	Cards    []card.Card // 升序排列
}

func (c Combination) IsEmpty() bool {
	return c.Type == Invalid
}

// Describe 返回类似 "对子 5♠ 5♥" 的描述
func (c Combination) Describe() string {
	if c.IsEmpty() {
		return "无"
	}
	if c.Type == Straight {
		return fmt.Sprintf("%d张%s %s", c.Length, c.Type, card.Format(c.Cards))
	}
	return fmt.Sprintf("%s %s", c.Type, card.Format(c.Cards))
}

// sameRank 检查所有牌点数相同
func sameRank(cards []card.Card) bool {
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

// isContinuous 检查已排序的点数是否逐一递增，不能包含 2 和王
func isContinuous(ranks []card.Rank) bool {
	for i, r := range ranks {
		if r >= card.Rank2 {
			return false
		}
		if i > 0 && ranks[i-1]+1 != r {
			return false
		}
	}
	return true
}

func ranksOf(cards []card.Card) []card.Rank {
	ranks := make([]card.Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	return ranks
}

// isSixBomb 已排序的六张牌：0-1、2-3、4-5 各成对且三对点数相连
func isSixBomb(sorted []card.Card) bool {
	if len(sorted) != 6 {
		return false
	}
	pairRanks := make([]card.Rank, 0, 3)
	for i := 0; i < 6; i += 2 {
		if sorted[i].Rank != sorted[i+1].Rank {
			return false
		}
		pairRanks = append(pairRanks, sorted[i].Rank)
	}
	return isContinuous(pairRanks)
}

func isStraight(sorted []card.Card) bool {
	return len(sorted) >= 3 && isContinuous(ranksOf(sorted))
}

func hasJoker(cards []card.Card) bool {
	return slices.ContainsFunc(cards, func(c card.Card) bool { return c.Rank.IsJoker() })
}

// classifyType 按张数判断牌型，输入必须已升序排列
func classifyType(sorted []card.Card) PlayType {
	n := len(sorted)
	if n == 1 {
		return Single
	}
	// 王只能单出
	if hasJoker(sorted) {
		return Invalid
	}

	switch {
	case n == 2 && sameRank(sorted):
		return Pair
	case n == 3 && sameRank(sorted):
		return Triple
	case n == 4 && sameRank(sorted):
		return FourOfAKind
	case n == 6:
		// 六张只能是三连对，不存在六张顺子
		if isSixBomb(sorted) {
			return SixBomb
		}
		return Invalid
	case isStraight(sorted):
		return Straight
	}
	return Invalid
}

// Classify 判断一组打出的牌的牌型和比较键，不合法时返回 ErrIllegalPlay
func Classify(cards []card.Card) (Combination, error) {
	if len(cards) == 0 {
		return Combination{}, fmt.Errorf("%w: 不能出空牌", apperrors.ErrIllegalPlay)
	}

	sorted := slices.Clone(cards)
	card.SortHand(sorted)

	t := classifyType(sorted)
	if t == Invalid {
		return Combination{}, fmt.Errorf("%w: 不支持的牌型 %s", apperrors.ErrIllegalPlay, card.Format(sorted))
	}

	return Combination{
		Type:     t,
		Length:   len(sorted),
		Strength: sorted[len(sorted)-1].Value(),
		Cards:    sorted,
	}, nil
}

// CanBeat 判断 next 是否能大过 active
func CanBeat(next, active Combination) bool {
	if next.IsEmpty() {
		return false
	}
	if active.IsEmpty() {
		return true
	}

	// 三连对压过炸弹和所有非炸弹牌型
	if next.Type == SixBomb && active.Type != SixBomb {
		return true
	}
	// 炸弹可以大过任何非炸弹牌型
	if next.Type == FourOfAKind && !active.Type.IsBomb() {
		return true
	}

	if next.Type != active.Type || next.Length != active.Length {
		return false
	}
	return active.Strength.Less(next.Strength)
}
