// Package ui implements the hot-seat terminal shell: a bubbletea model for
// interactive play and a line-mode chooser for plain terminals.
package ui

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/tien-len/internal/game"
	"github.com/palemoky/tien-len/internal/game/card"
	"github.com/palemoky/tien-len/internal/game/counter"
	"github.com/palemoky/tien-len/internal/logger"
	"github.com/palemoky/tien-len/internal/sound"
)

// dealDelay 洗牌动画的最短展示时间
const dealDelay = 800 * time.Millisecond

// Phase 界面阶段
type Phase int

const (
	PhaseDealing Phase = iota
	PhasePlaying
	PhaseGameOver
)

// dealtMsg 洗牌完成
type dealtMsg struct {
	deck card.Deck
	err  error
}

// Options 界面参数
type Options struct {
	TurnTimeout time.Duration  // 0 表示不限时
	Sound       *sound.Manager // nil 表示静音
	Rand        *rand.Rand     // nil 表示时间种子
}

// Model 热座模式：所有玩家轮流使用同一个终端
type Model struct {
	game    *game.Game
	counter *counter.Counter
	sound   *sound.Manager
	rng     *rand.Rand

	phase      Phase
	err        string
	fatal      error
	lastAction string

	// 手牌选择
	cursor   int
	selected map[int]bool

	input       textinput.Model
	spinner     spinner.Model
	timer       timer.Model
	turnTimeout time.Duration

	showCounter bool
	showHelp    bool
	width       int
	height      int
}

func NewModel(g *game.Game, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "输入下标，如 0 1 2"
	ti.CharLimit = 60
	ti.Width = 30
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = currentStyle

	rng := opts.Rand
	if rng == nil {
		rng = card.NewRand()
	}

	return &Model{
		game:        g,
		sound:       opts.Sound,
		rng:         rng,
		phase:       PhaseDealing,
		selected:    make(map[int]bool),
		input:       ti,
		spinner:     sp,
		turnTimeout: opts.TurnTimeout,
		showCounter: true,
	}
}

// Err 返回导致界面退出的错误
func (m *Model) Err() error {
	return m.fatal
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.deal(), textinput.Blink)
}

// deal 在后台洗牌，至少展示 dealDelay
func (m *Model) deal() tea.Cmd {
	g, rng := m.game, m.rng
	return tea.Tick(dealDelay, func(time.Time) tea.Msg {
		deck, err := g.BuildDeck()
		if err != nil {
			return dealtMsg{err: err}
		}
		return dealtMsg{deck: card.Shuffle(deck, g.Options().TimesShuffled, rng)}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case dealtMsg:
		return m, m.handleDealt(msg)

	case spinner.TickMsg:
		if m.phase != PhaseDealing {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		if m.phase == PhasePlaying && msg.ID == m.timer.ID() {
			player := m.game.Current()
			logger.LogInfo("game %s: player %d timed out", m.game.ID, player+1)
			return m, m.apply(m.game.AutoMove(player))
		}
		return m, nil
	}

	if m.phase == PhasePlaying && m.turnTimeout > 0 {
		m.timer, cmd = m.timer.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleDealt(msg dealtMsg) tea.Cmd {
	err := msg.err
	if err == nil {
		err = m.game.Begin(msg.deck)
	}
	if err != nil {
		logger.LogError("发牌失败: %v", err)
		m.fatal = err
		return tea.Quit
	}

	// 没发出去的牌不参与记牌
	dealt := len(msg.deck) - m.game.Snapshot().Leftover
	m.counter = counter.New(msg.deck[:dealt])
	m.phase = PhasePlaying
	logger.LogInfo("game %s dealt, player %d leads", m.game.ID, m.game.Current()+1)
	return m.startTurn()
}

// startTurn 清空选择，重新开始计时
func (m *Model) startTurn() tea.Cmd {
	m.cursor = 0
	m.selected = make(map[int]bool)
	m.input.SetValue("")
	if m.turnTimeout <= 0 {
		return nil
	}
	m.timer = timer.NewWithInterval(m.turnTimeout, time.Second)
	return m.timer.Start()
}

// apply 处理一次出牌或过牌的结果
func (m *Model) apply(ev game.Event, err error) tea.Cmd {
	if err != nil {
		m.err = err.Error()
		m.input.SetValue("")
		logger.LogError("game %s: %v", m.game.ID, err)
		return nil
	}

	m.err = ""
	if ev.Play != nil {
		m.counter.Deduct(ev.Play.Cards)
	}
	if m.sound != nil {
		m.sound.PlayEvent(ev)
	}
	m.lastAction = describeEvent(ev)
	logger.LogInfo("game %s turn %d: %s", m.game.ID, ev.Turn, m.lastAction)

	if ev.Finished {
		m.phase = PhaseGameOver
		logger.LogInfo("game %s finished, ranking %v", m.game.ID, m.game.Ranking())
		return nil
	}
	return m.startTurn()
}
