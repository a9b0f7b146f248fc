package card

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/palemoky/tien-len/internal/apperrors"
)

// SortHand 按比较键升序原地排序（点数优先，花色次之）
func SortHand(hand []Card) {
	slices.SortStableFunc(hand, func(a, b Card) int {
		return a.Value().Compare(b.Value())
	})
}

// IsSorted 检查手牌是否已按比较键升序
func IsSorted(hand []Card) bool {
	return slices.IsSortedFunc(hand, func(a, b Card) int {
		return a.Value().Compare(b.Value())
	})
}

// Highest 返回比较键最大的牌
func Highest(cards []Card) Card {
	return slices.MaxFunc(cards, func(a, b Card) int {
		return a.Value().Compare(b.Value())
	})
}

// CheckIndices 校验出牌下标：非空、在范围内、不重复
func CheckIndices(handSize int, indices []int) error {
	if len(indices) == 0 {
		return fmt.Errorf("%w: 不能出空牌", apperrors.ErrIllegalPlay)
	}
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= handSize {
			return fmt.Errorf("%w: 下标 %d 超出手牌范围 [0,%d)", apperrors.ErrIllegalPlay, idx, handSize)
		}
		if seen[idx] {
			return fmt.Errorf("%w: 下标 %d 重复", apperrors.ErrIllegalPlay, idx)
		}
		seen[idx] = true
	}
	return nil
}

// PickCards 按下标取出对应的牌，不修改手牌
func PickCards(hand []Card, indices []int) []Card {
	picked := make([]Card, 0, len(indices))
	for _, idx := range indices {
		picked = append(picked, hand[idx])
	}
	return picked
}

// RemoveIndices 按下标从大到小移除，保持其余牌的相对顺序。
// 调用方需先通过 CheckIndices 校验。
func RemoveIndices(hand []Card, indices []int) []Card {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	out := slices.Clone(hand)
	for i := len(sorted) - 1; i >= 0; i-- {
		out = slices.Delete(out, sorted[i], sorted[i]+1)
	}
	return out
}

// IndicesOf 找出 cards 在手牌中的下标，同样的牌按出现顺序匹配
func IndicesOf(hand, cards []Card) ([]int, bool) {
	used := make([]bool, len(hand))
	indices := make([]int, 0, len(cards))
	for _, c := range cards {
		found := false
		for i, h := range hand {
			if !used[i] && h.Rank == c.Rank && h.Suit == c.Suit {
				used[i] = true
				indices = append(indices, i)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return indices, true
}

// ParseIndices 解析以空格或逗号分隔的下标，例如 "0 1 2" 或 "3,4"
func ParseIndices(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: 请至少选择一张牌", apperrors.ErrIllegalPlay)
	}
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		idx, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: 无法识别的下标 %q", apperrors.ErrIllegalPlay, f)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// Format 以空格拼接牌面
func Format(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
