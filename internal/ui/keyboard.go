package ui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/tien-len/internal/game/card"
	"github.com/palemoky/tien-len/internal/game/rule"
)

// handleKeyPress 处理按键
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		// 先关闭帮助
		if m.showHelp {
			m.showHelp = false
			return nil
		}
		return tea.Quit
	}

	switch m.phase {
	case PhaseGameOver:
		if msg.Type == tea.KeyEnter || msg.String() == "q" {
			return tea.Quit
		}
		return nil
	case PhasePlaying:
		return m.handlePlayingKey(msg)
	}
	return nil
}

func (m *Model) handlePlayingKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "?":
		m.showHelp = !m.showHelp
		return nil
	case "c":
		m.showCounter = !m.showCounter
		return nil
	}
	if m.showHelp {
		return nil
	}

	switch key {
	case "left":
		m.moveCursor(-1)
	case "right":
		m.moveCursor(1)
	case " ":
		// 正在输入下标时空格是分隔符
		if m.input.Value() != "" {
			return m.updateInput(msg)
		}
		m.toggleSelected(m.cursor)
	case "enter":
		return m.submit()
	case "p":
		return m.apply(m.game.Pass(m.game.Current()))
	case "h":
		m.hint()
	case "backspace":
		return m.updateInput(msg)
	default:
		if isIndexKey(key) {
			return m.updateInput(msg)
		}
	}
	return nil
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// isIndexKey 只有数字和逗号进入下标输入框
func isIndexKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if (r < '0' || r > '9') && r != ',' {
			return false
		}
	}
	return true
}

func (m *Model) moveCursor(delta int) {
	n := len(m.game.Hand(m.game.Current()))
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) toggleSelected(i int) {
	if m.selected[i] {
		delete(m.selected, i)
		return
	}
	m.selected[i] = true
}

// selection 输入框优先，否则使用光标选中的牌
func (m *Model) selection() ([]int, error) {
	if strings.TrimSpace(m.input.Value()) != "" {
		return card.ParseIndices(m.input.Value())
	}
	indices := make([]int, 0, len(m.selected))
	for i := range m.selected {
		indices = append(indices, i)
	}
	slices.Sort(indices)
	return indices, nil
}

func (m *Model) submit() tea.Cmd {
	indices, err := m.selection()
	if err != nil {
		m.err = err.Error()
		m.input.SetValue("")
		return nil
	}
	return m.apply(m.game.SubmitPlay(m.game.Current(), indices))
}

// hint 选中能压过上家的最小组合
func (m *Model) hint() {
	player := m.game.Current()
	hand := m.game.Hand(player)

	var active rule.Combination
	if play := m.game.Active(); play != nil {
		active = play.Combination
	}
	cards := rule.FindSmallestBeatingCards(hand, active)
	if cards == nil {
		m.err = "没有能压过的牌，按 p 过"
		return
	}

	indices, _ := card.IndicesOf(hand, cards)
	m.input.SetValue("")
	m.selected = make(map[int]bool, len(indices))
	for _, i := range indices {
		m.selected[i] = true
	}
	m.cursor = indices[0]
	m.err = ""
}
