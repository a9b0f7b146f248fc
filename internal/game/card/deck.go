package card

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/palemoky/tien-len/internal/apperrors"
)

// DefaultShufflePasses 未指定洗牌次数时使用的默认遍数
const DefaultShufflePasses = 5

// Deck 定义一副（或多副）牌
type Deck []Card

// NewDeck 返回按点数、花色升序排列的标准 52 张牌
func NewDeck() Deck {
	deck, _ := Build(StandardSuits(), StandardRanks(), 1, false, 0)
	return deck
}

// Build 按 ranks×suits 生成 deckCount 副牌，useJokers 时在末尾追加 jokerCount 张王
func Build(suits []Suit, ranks []Rank, deckCount int, useJokers bool, jokerCount int) (Deck, error) {
	if deckCount < 1 {
		return nil, fmt.Errorf("%w: deck count %d < 1", apperrors.ErrInvalidConfiguration, deckCount)
	}
	if len(suits) == 0 || len(ranks) == 0 {
		return nil, fmt.Errorf("%w: empty rank or suit table", apperrors.ErrInvalidConfiguration)
	}
	if useJokers && jokerCount < 0 {
		return nil, fmt.Errorf("%w: joker count %d < 0", apperrors.ErrInvalidConfiguration, jokerCount)
	}
	for _, s := range suits {
		if _, err := SuitStrength(s); err != nil || s == Joker {
			return nil, fmt.Errorf("%w: suit %d", apperrors.ErrInvalidSymbol, int(s))
		}
	}
	for _, r := range ranks {
		if _, err := RankStrength(r); err != nil || r.IsJoker() {
			return nil, fmt.Errorf("%w: rank %d", apperrors.ErrInvalidSymbol, int(r))
		}
	}

	size := deckCount * len(ranks) * len(suits)
	if useJokers {
		size += jokerCount
	}
	deck := make(Deck, 0, size)
	for range deckCount {
		for _, r := range ranks {
			for _, s := range suits {
				deck = append(deck, New(r, s))
			}
		}
	}
	if useJokers {
		for i := range jokerCount {
			if i%2 == 0 {
				deck = append(deck, New(RankBlackJoker, Joker))
			} else {
				deck = append(deck, New(RankRedJoker, Joker))
			}
		}
	}
	return deck, nil
}

// NewRand 返回以当前时间为种子的随机源
func NewRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle 返回洗好的副本。每一遍访问所有位置并与 [0,n) 内随机位置交换；
// passes <= 0 时使用 DefaultShufflePasses，rng 为 nil 时使用时间种子。
func Shuffle(d Deck, passes int, rng *rand.Rand) Deck {
	if passes <= 0 {
		passes = DefaultShufflePasses
	}
	if rng == nil {
		rng = NewRand()
	}
	out := make(Deck, len(d))
	copy(out, d)
	n := len(out)
	for range passes {
		for i := range n {
			j := rng.IntN(n)
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
