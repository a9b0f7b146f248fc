package game

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"github.com/palemoky/tien-len/internal/apperrors"
	"github.com/palemoky/tien-len/internal/game/card"
)

// Options 牌局参数
type Options struct {
	TimesShuffled int
	UseJokers     bool
	JokerCount    int
	DeckCount     int
	PlayerCount   int
	Ranks         []card.Rank // 为空时使用标准点数表
	Suits         []card.Suit // 为空时使用标准花色表
}

// DefaultOptions 一副牌、四名玩家、不带王、洗五遍
func DefaultOptions() Options {
	return Options{
		TimesShuffled: card.DefaultShufflePasses,
		JokerCount:    2,
		DeckCount:     1,
		PlayerCount:   4,
	}
}

// Validate 校验参数，失败时返回 ErrInvalidConfiguration
func (o Options) Validate() error {
	switch {
	case o.PlayerCount < 2:
		return fmt.Errorf("%w: player count %d < 2", apperrors.ErrInvalidConfiguration, o.PlayerCount)
	case o.DeckCount < 1:
		return fmt.Errorf("%w: deck count %d < 1", apperrors.ErrInvalidConfiguration, o.DeckCount)
	case o.TimesShuffled < 0:
		return fmt.Errorf("%w: times shuffled %d < 0", apperrors.ErrInvalidConfiguration, o.TimesShuffled)
	case o.JokerCount < 0:
		return fmt.Errorf("%w: joker count %d < 0", apperrors.ErrInvalidConfiguration, o.JokerCount)
	}
	return nil
}

func (o Options) ranks() []card.Rank {
	if len(o.Ranks) == 0 {
		return card.StandardRanks()
	}
	return o.Ranks
}

func (o Options) suits() []card.Suit {
	if len(o.Suits) == 0 {
		return card.StandardSuits()
	}
	return o.Suits
}

// dealtCards 参与发牌的张数：每副 |ranks|×|suits| 张，王不参与发牌
func (o Options) dealtCards() int {
	return o.DeckCount * len(o.ranks()) * len(o.suits())
}

// Game 牌局状态，所有修改都经过 Begin/SubmitPlay/Pass
type Game struct {
	ID string

	opts     Options
	phase    Phase
	players  []*Player
	order    []int // 出牌顺序，order[0] 为当前玩家
	turn     int
	active   *Play
	pile     []Play
	passes   int // 上次出牌后连续过牌的人数
	ranking  []int
	leftover card.Deck
}

// New 创建一个尚未发牌的牌局
func New(opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	players := make([]*Player, opts.PlayerCount)
	for i := range players {
		players[i] = &Player{Index: i}
	}
	return &Game{
		ID:      uuid.NewString(),
		opts:    opts,
		players: players,
	}, nil
}

// Options 返回牌局参数
func (g *Game) Options() Options {
	return g.opts
}

// BuildDeck 按牌局参数生成一副未洗的牌
func (g *Game) BuildDeck() (card.Deck, error) {
	return card.Build(g.opts.suits(), g.opts.ranks(), g.opts.DeckCount, g.opts.UseJokers, g.opts.JokerCount)
}

// Start 生成、洗牌并发牌。rng 为 nil 时使用时间种子。
func (g *Game) Start(rng *rand.Rand) error {
	deck, err := g.BuildDeck()
	if err != nil {
		return err
	}
	return g.Begin(card.Shuffle(deck, g.opts.TimesShuffled, rng))
}

// Begin 轮流发牌，持有最小牌的玩家先出，整理所有手牌，进入进行中状态
func (g *Game) Begin(deck card.Deck) error {
	if g.phase != PhaseNotStarted {
		return apperrors.ErrGameStarted
	}

	total := g.opts.dealtCards()
	n := len(g.players)
	if total%n != 0 {
		return fmt.Errorf("%w: %d 张牌无法平分给 %d 名玩家", apperrors.ErrDealingMismatch, total, n)
	}
	if len(deck) < total {
		return fmt.Errorf("%w: 牌堆只有 %d 张，需要 %d 张", apperrors.ErrDealingMismatch, len(deck), total)
	}

	perPlayer := total / n
	for _, p := range g.players {
		p.Hand = make([]card.Card, 0, perPlayer)
	}
	for i := range total {
		p := g.players[i%n]
		p.Hand = append(p.Hand, deck[i])
	}
	g.leftover = slices.Clone(deck[total:])

	for _, p := range g.players {
		card.SortHand(p.Hand)
	}

	first := g.anchorHolder()
	g.order = make([]int, 0, n)
	for i := range n {
		g.order = append(g.order, (first+i)%n)
	}

	g.phase = PhaseInProgress
	g.turn = 1
	return nil
}

// anchorHolder 返回持有最小牌（标准牌为黑桃 3）的玩家，并列时取座位靠前者
func (g *Game) anchorHolder() int {
	holder := 0
	var lowest card.Card
	found := false
	for _, p := range g.players {
		for _, c := range p.Hand {
			if !found || c.Value().Less(lowest.Value()) {
				lowest, holder, found = c, p.Index, true
			}
		}
	}
	return holder
}

// Phase 当前阶段
func (g *Game) Phase() Phase {
	return g.phase
}

// IsFinished 牌局是否已结束
func (g *Game) IsFinished() bool {
	return g.phase == PhaseFinished
}

// PlayerCount 玩家人数
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// Hand 返回玩家手牌的副本
func (g *Game) Hand(player int) []card.Card {
	if player < 0 || player >= len(g.players) {
		return nil
	}
	return slices.Clone(g.players[player].Hand)
}

// Current 当前应出牌的玩家，牌局不在进行中时返回 -1
func (g *Game) Current() int {
	if g.phase != PhaseInProgress || len(g.order) == 0 {
		return -1
	}
	return g.order[0]
}

// Active 当前需要压过的牌，nil 表示自由出牌
func (g *Game) Active() *Play {
	if g.active == nil {
		return nil
	}
	p := clonePlay(*g.active)
	return &p
}

// clonePlay 复制 Play，Cards 不与牌局内部共享底层数组
func clonePlay(p Play) Play {
	p.Cards = slices.Clone(p.Cards)
	return p
}

// Ranking 出完牌的顺序，牌局结束时包含所有玩家
func (g *Game) Ranking() []int {
	return slices.Clone(g.ranking)
}

// Snapshot 返回当前状态的副本
func (g *Game) Snapshot() Snapshot {
	sizes := make([]int, len(g.players))
	for i, p := range g.players {
		sizes[i] = len(p.Hand)
	}
	pile := make([]Play, len(g.pile))
	for i, p := range g.pile {
		pile[i] = clonePlay(p)
	}
	return Snapshot{
		ID:        g.ID,
		Phase:     g.phase,
		Turn:      g.turn,
		Order:     slices.Clone(g.order),
		Active:    g.Active(),
		Pile:      pile,
		HandSizes: sizes,
		Ranking:   slices.Clone(g.ranking),
		Leftover:  len(g.leftover),
	}
}
