package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/tien-len/internal/game"
	"github.com/palemoky/tien-len/internal/game/card"
	"github.com/palemoky/tien-len/internal/game/counter"
)

func (m *Model) View() string {
	var content string
	switch m.phase {
	case PhaseDealing:
		content = fmt.Sprintf("%s 正在洗牌 (%d 遍)...", m.spinner.View(), m.game.Options().TimesShuffled)
	case PhaseGameOver:
		content = m.gameOverView()
	default:
		if m.showHelp {
			content = renderRules()
		} else {
			content = m.gameView()
		}
	}

	if m.width == 0 {
		return docStyle.Render(content)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) gameView() string {
	snap := m.game.Snapshot()
	current := m.game.Current()

	var sb strings.Builder
	sb.WriteString(titleStyle(fmt.Sprintf("🃏 Tiến Lên  第 %d 手", snap.Turn)))
	sb.WriteString("\n\n")

	top := renderPlayers(snap, current)
	if m.showCounter && m.counter != nil {
		top = lipgloss.JoinHorizontal(lipgloss.Top, top, "  ", renderCardCounter(m.counter))
	}
	sb.WriteString(top)
	sb.WriteString("\n")

	sb.WriteString(renderActive(snap.Active, m.lastAction))
	sb.WriteString("\n")

	sb.WriteString(renderHand(m.game.Hand(current), m.cursor, m.selected, current))
	sb.WriteString("\n")

	sb.WriteString(m.renderPrompt(current))
	return sb.String()
}

// renderPlayers 每个玩家一个框，当前玩家高亮，已出完的显示名次
func renderPlayers(snap game.Snapshot, current int) string {
	parts := make([]string, 0, len(snap.HandSizes))
	for i, n := range snap.HandSizes {
		name := fmt.Sprintf("%s 玩家 %d", PlayerIcon, i+1)
		if i == current {
			name = currentStyle.Render(TurnIcon + " 玩家 " + fmt.Sprint(i+1))
		}
		status := fmt.Sprintf("🃏 %d张", n)
		if place := slices.Index(snap.Ranking, i); place >= 0 {
			status = fmt.Sprintf("%s 第 %d 名", WinnerIcon, place+1)
		}
		parts = append(parts, boxStyle.Width(14).Render(name+"\n"+status))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderActive(active *game.Play, lastAction string) string {
	view := "自由出牌"
	if active != nil {
		cards := make([]string, len(active.Cards))
		for i, c := range active.Cards {
			cards[i] = cardStyle(c, false).Render(c.String())
		}
		view = fmt.Sprintf("玩家 %d: %s\n%s", active.Player+1, strings.Join(cards, " "), active.Type)
	}
	if lastAction != "" {
		view += "\n" + dimStyle.Render(lastAction)
	}
	return boxStyle.Width(40).Render(view)
}

// renderCardCounter 记牌器，只统计还没打出的牌
func renderCardCounter(c *counter.Counter) string {
	ranks := c.Ranks()
	names := make([]string, len(ranks))
	counts := make([]string, len(ranks))
	for i, r := range ranks {
		names[i] = fmt.Sprintf("%-2s", r.String())
		counts[i] = fmt.Sprintf("%-2d", c.Remaining(r))
	}
	return boxStyle.Render(strings.Join(names, "│") + "\n" + strings.Join(counts, "│"))
}

// renderHand 三行：下标、牌面、光标
func renderHand(hand []card.Card, cursor int, selected map[int]bool, player int) string {
	if len(hand) == 0 {
		return boxStyle.Render("(无手牌)")
	}

	var idxRow, cardRow, cursorRow strings.Builder
	for i, c := range hand {
		cell := lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
		idxRow.WriteString(cell.Render(dimStyle.Render(fmt.Sprint(i))))
		cardRow.WriteString(cell.Render(cardStyle(c, selected[i]).Render(c.String())))
		marker := " "
		if i == cursor {
			marker = "^"
		}
		cursorRow.WriteString(cell.Render(marker))
	}

	title := fmt.Sprintf("玩家 %d 的手牌 (%d张)", player+1, len(hand))
	content := lipgloss.JoinVertical(lipgloss.Center, title, idxRow.String(), cardRow.String(), cursorRow.String())
	return boxStyle.Render(content)
}

func (m *Model) renderPrompt(current int) string {
	var sb strings.Builder

	if m.turnTimeout > 0 {
		fmt.Fprintf(&sb, "⏳ %s | ", m.timer.View())
	}
	fmt.Fprintf(&sb, "轮到玩家 %d 出牌\n", current+1)
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("←/→ 移动  空格 选牌  回车 出牌  P 过  H 提示  C 记牌器  ? 规则  ESC 退出"))

	if m.err != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(m.err))
	}
	return promptStyle.Render(sb.String())
}

func (m *Model) gameOverView() string {
	var sb strings.Builder
	sb.WriteString("🎮 游戏结束!\n\n")
	for place, p := range m.game.Ranking() {
		icon := "  "
		if place == 0 {
			icon = WinnerIcon
		}
		fmt.Fprintf(&sb, "%s 第 %d 名: 玩家 %d\n", icon, place+1, p+1)
	}
	sb.WriteString("\n按回车退出")
	return boxStyle.Render(sb.String())
}

// describeEvent 一行描述最近一次操作
func describeEvent(ev game.Event) string {
	var desc string
	if ev.Passed() {
		desc = fmt.Sprintf("玩家 %d 过", ev.Player+1)
	} else {
		desc = fmt.Sprintf("玩家 %d 出 %s", ev.Player+1, ev.Play.Describe())
	}
	switch {
	case ev.Finished:
		desc += "，游戏结束"
	case ev.WentOut:
		desc += "，出完了"
	case ev.TrickClosed:
		desc += fmt.Sprintf("，本轮结束，玩家 %d 自由出牌", ev.NextPlayer+1)
	}
	return desc
}

func renderRules() string {
	var sb strings.Builder
	sb.WriteString("📖 Tiến Lên 规则\n")
	sb.WriteString(strings.Repeat("─", 50) + "\n\n")

	sb.WriteString("【大小】\n")
	sb.WriteString("点数 3 < 4 < … < A < 2，同点数比花色 ♠ < ♣ < ♦ < ♥\n\n")

	sb.WriteString("【牌型】\n")
	sb.WriteString("• 单张、对子、三张：点数相同\n")
	sb.WriteString("• 顺子：三张或更多连续的牌（六张除外），不能带 2 和王\n")
	sb.WriteString("• 炸弹：四张点数相同的牌，可以压任何非炸弹牌型\n")
	sb.WriteString("• 三连对：三个连续的对子，可以压炸弹\n")
	sb.WriteString("• 王只能当单张出\n\n")

	sb.WriteString("【出牌】\n")
	sb.WriteString("1. 持有最小牌（♠3）的玩家先出\n")
	sb.WriteString("2. 之后必须出同牌型、同张数且更大的牌，或者过\n")
	sb.WriteString("3. 其余玩家都过后，最后出牌的玩家自由出牌\n")
	sb.WriteString("4. 先出完牌的玩家名次靠前\n\n")

	sb.WriteString("按 ? 或 ESC 返回")
	return boxStyle.Render(sb.String())
}
