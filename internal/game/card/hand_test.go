package card

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tien-len/internal/apperrors"
)

func TestSortHand(t *testing.T) {
	t.Parallel()

	hand := MustParseCards("2S KH 3H 3S 10D AC 3C")
	SortHand(hand)

	assert.Equal(t, MustParseCards("3S 3C 3H 10D KH AC 2S"), hand)
	assert.True(t, IsSorted(hand))
}

func TestSortHand_ShuffledDeckIsOrdered(t *testing.T) {
	t.Parallel()

	hand := Shuffle(NewDeck(), 1, rand.New(rand.NewPCG(11, 12)))
	SortHand(hand)

	for i := 1; i < len(hand); i++ {
		assert.False(t, hand[i].Value().Less(hand[i-1].Value()), "%s before %s", hand[i-1], hand[i])
	}
	assert.Equal(t, NewDeck(), Deck(hand))
}

func TestCheckIndices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		indices  []int
		hasError bool
	}{
		{name: "Valid", indices: []int{0, 2, 4}},
		{name: "Empty", indices: nil, hasError: true},
		{name: "Negative", indices: []int{-1}, hasError: true},
		{name: "Out of range", indices: []int{5}, hasError: true},
		{name: "Duplicate", indices: []int{1, 1}, hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CheckIndices(5, tt.indices)
			if tt.hasError {
				assert.ErrorIs(t, err, apperrors.ErrIllegalPlay)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRemoveIndices_PreservesOrder(t *testing.T) {
	t.Parallel()

	hand := MustParseCards("3S 4S 5S 6S 7S")
	// 下标顺序无关，先删大的不影响小的
	rest := RemoveIndices(hand, []int{1, 3})

	assert.Equal(t, MustParseCards("3S 5S 7S"), rest)
	assert.Equal(t, MustParseCards("3S 4S 5S 6S 7S"), hand, "input must not be mutated")

	rest = RemoveIndices(hand, []int{4, 0})
	assert.Equal(t, MustParseCards("4S 5S 6S"), rest)
}

func TestPickCardsAndIndicesOf(t *testing.T) {
	t.Parallel()

	hand := MustParseCards("3S 3C 5D 9H 2H")
	picked := PickCards(hand, []int{4, 0})
	assert.Equal(t, MustParseCards("2H 3S"), picked)

	indices, ok := IndicesOf(hand, MustParseCards("5D 3C"))
	require.True(t, ok)
	assert.Equal(t, []int{2, 1}, indices)

	_, ok = IndicesOf(hand, MustParseCards("KD"))
	assert.False(t, ok)

	_, ok = IndicesOf(hand, MustParseCards("3S 3S"))
	assert.False(t, ok, "a card can only be matched once")
}

func TestParseIndices(t *testing.T) {
	t.Parallel()

	indices, err := ParseIndices("0 2,5")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 5}, indices)

	_, err = ParseIndices("  ")
	assert.ErrorIs(t, err, apperrors.ErrIllegalPlay)

	_, err = ParseIndices("1 x")
	assert.ErrorIs(t, err, apperrors.ErrIllegalPlay)
}

func TestHighestAndFormat(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("5H 5S 5D")
	assert.Equal(t, New(Rank5, Heart), Highest(cards))
	assert.Equal(t, "5♥ 5♠ 5♦", Format(cards))
}
