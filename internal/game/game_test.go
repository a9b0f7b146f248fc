package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tien-len/internal/apperrors"
	"github.com/palemoky/tien-len/internal/game/card"
)

// interleave 生成一副牌，使轮流发牌后各玩家恰好拿到 hands
func interleave(hands ...[]card.Card) card.Deck {
	var deck card.Deck
	for i := range hands[0] {
		for _, h := range hands {
			deck = append(deck, h[i])
		}
	}
	return deck
}

func TestNew_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
	}{
		{name: "One player", opts: Options{PlayerCount: 1, DeckCount: 1}},
		{name: "No deck", opts: Options{PlayerCount: 4, DeckCount: 0}},
		{name: "Negative shuffles", opts: Options{PlayerCount: 4, DeckCount: 1, TimesShuffled: -1}},
		{name: "Negative jokers", opts: Options{PlayerCount: 4, DeckCount: 1, JokerCount: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := New(tt.opts)
			assert.ErrorIs(t, err, apperrors.ErrInvalidConfiguration)
			assert.Nil(t, g)
		})
	}
}

func TestStart_FourPlayerDeal(t *testing.T) {
	t.Parallel()

	g, err := New(DefaultOptions())
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, PhaseNotStarted, g.Phase())

	require.NoError(t, g.Start(rand.New(rand.NewPCG(42, 42))))

	var all []card.Card
	for i := range g.PlayerCount() {
		hand := g.Hand(i)
		assert.Len(t, hand, 13)
		assert.True(t, card.IsSorted(hand), "hand %d should be ordered", i)
		all = append(all, hand...)
	}
	assert.Len(t, all, 52)
	assert.ElementsMatch(t, card.NewDeck(), all, "hands must be disjoint and cover the deck")

	assert.Equal(t, PhaseInProgress, g.Phase())
	snap := g.Snapshot()
	assert.Equal(t, 1, snap.Turn)
	assert.Nil(t, snap.Active)
	assert.Empty(t, snap.Pile)
	assert.Equal(t, 0, snap.Leftover)

	// 持有黑桃 3 的玩家先出
	head := g.Current()
	assert.Equal(t, card.New(card.Rank3, card.Spade), g.Hand(head)[0])
	assert.Len(t, snap.Order, 4)
	for i, p := range snap.Order {
		assert.Equal(t, (head+i)%4, p)
	}
}

func TestBegin_DealingMismatch(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.PlayerCount = 3
	g, err := New(opts)
	require.NoError(t, err)

	err = g.Begin(card.NewDeck())
	require.ErrorIs(t, err, apperrors.ErrDealingMismatch)
	assert.Equal(t, PhaseNotStarted, g.Phase())

	g, err = New(DefaultOptions())
	require.NoError(t, err)
	err = g.Begin(card.NewDeck()[:40])
	require.ErrorIs(t, err, apperrors.ErrDealingMismatch)
}

func TestBegin_Twice(t *testing.T) {
	t.Parallel()

	g, err := New(DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, g.Begin(card.NewDeck()))
	assert.ErrorIs(t, g.Begin(card.NewDeck()), apperrors.ErrGameStarted)
}

func TestBegin_JokersStayUndealt(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.UseJokers = true
	g, err := New(opts)
	require.NoError(t, err)
	require.NoError(t, g.Start(rand.New(rand.NewPCG(1, 1))))

	snap := g.Snapshot()
	assert.Equal(t, 2, snap.Leftover)
	assert.Equal(t, []int{13, 13, 13, 13}, snap.HandSizes)
}

func TestBegin_AnchorHolderLeads(t *testing.T) {
	t.Parallel()

	opts := Options{
		PlayerCount: 2,
		DeckCount:   1,
		Ranks:       []card.Rank{card.Rank3, card.Rank4},
		Suits:       card.StandardSuits(),
	}
	g, err := New(opts)
	require.NoError(t, err)

	p0 := card.MustParseCards("4H 3H 4S 3D")
	p1 := card.MustParseCards("3C 4C 3S 4D")
	require.NoError(t, g.Begin(interleave(p0, p1)))

	assert.Equal(t, 1, g.Current())
	assert.Equal(t, []int{1, 0}, g.Snapshot().Order)
	assert.Equal(t, card.MustParseCards("3D 3H 4S 4H"), g.Hand(0))
	assert.Equal(t, card.MustParseCards("3S 3C 4C 4D"), g.Hand(1))
}

func TestNotStarted(t *testing.T) {
	t.Parallel()

	g, err := New(DefaultOptions())
	require.NoError(t, err)

	_, err = g.SubmitPlay(0, []int{0})
	assert.ErrorIs(t, err, apperrors.ErrGameNotStarted)
	_, err = g.Pass(0)
	assert.ErrorIs(t, err, apperrors.ErrGameNotStarted)
	_, err = g.Prompt()
	assert.ErrorIs(t, err, apperrors.ErrGameNotStarted)
	assert.Equal(t, -1, g.Current())
}
