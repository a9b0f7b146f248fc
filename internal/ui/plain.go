package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/palemoky/tien-len/internal/game"
	"github.com/palemoky/tien-len/internal/game/card"
)

// LineChooser 行模式：打印出牌请求，从输入读取一行选择
type LineChooser struct {
	out   io.Writer
	lines chan string
}

func NewLineChooser(in io.Reader, out io.Writer) *LineChooser {
	c := &LineChooser{out: out, lines: make(chan string)}
	go c.readLoop(in)
	return c
}

func (c *LineChooser) readLoop(in io.Reader) {
	defer close(c.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		c.lines <- scanner.Text()
	}
}

// Choose 输入 p 或 pass 表示过，其余按下标解析
func (c *LineChooser) Choose(ctx context.Context, prompt game.TurnPrompt) (game.PlayerChoice, error) {
	c.printPrompt(prompt)

	select {
	case <-ctx.Done():
		return game.PlayerChoice{}, ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return game.PlayerChoice{}, io.EOF
		}
		return parseChoice(line)
	}
}

func parseChoice(line string) (game.PlayerChoice, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "p", "pass":
		return game.PlayerChoice{Pass: true}, nil
	}
	indices, err := card.ParseIndices(line)
	if err != nil {
		return game.PlayerChoice{}, err
	}
	return game.PlayerChoice{CardIndices: indices}, nil
}

func (c *LineChooser) printPrompt(prompt game.TurnPrompt) {
	if prompt.LastError != nil {
		fmt.Fprintf(c.out, "✗ %v\n", prompt.LastError)
	}
	fmt.Fprintf(c.out, "\n第 %d 手 | 玩家 %d | 上家: %s\n", prompt.Turn, prompt.Player+1, prompt.ActiveDescription())

	cells := make([]string, len(prompt.Hand))
	for i, cd := range prompt.Hand {
		cells[i] = fmt.Sprintf("[%d]%s", i, cd)
	}
	fmt.Fprintln(c.out, strings.Join(cells, " "))

	switch {
	case prompt.MustLead:
		fmt.Fprint(c.out, "出牌 (下标): ")
	case !prompt.CanBeat:
		fmt.Fprint(c.out, "没有能压过的牌，输入 p 过: ")
	default:
		fmt.Fprint(c.out, "出牌 (下标) 或 p 过: ")
	}
}

// Announce 打印一次操作结果，作为 match.WithEventHandler 的回调
func (c *LineChooser) Announce(ev game.Event) {
	fmt.Fprintln(c.out, describeEvent(ev))
}

// AnnounceRanking 打印最终名次
func (c *LineChooser) AnnounceRanking(ranking []int) {
	fmt.Fprintln(c.out, "\n🎮 游戏结束!")
	for place, p := range ranking {
		fmt.Fprintf(c.out, "第 %d 名: 玩家 %d\n", place+1, p+1)
	}
}
