package game

import (
	"fmt"
	"slices"

	"github.com/palemoky/tien-len/internal/apperrors"
	"github.com/palemoky/tien-len/internal/game/card"
	"github.com/palemoky/tien-len/internal/game/rule"
)

// checkTurn 只有当前玩家可以操作
func (g *Game) checkTurn(player int) error {
	switch g.phase {
	case PhaseNotStarted:
		return apperrors.ErrGameNotStarted
	case PhaseFinished:
		return apperrors.ErrGameFinished
	}
	if player != g.order[0] {
		return fmt.Errorf("%w: 当前是玩家 %d 的回合，玩家 %d 不能操作", apperrors.ErrOutOfTurn, g.order[0]+1, player+1)
	}
	return nil
}

// Prompt 生成当前玩家的出牌请求
func (g *Game) Prompt() (TurnPrompt, error) {
	switch g.phase {
	case PhaseNotStarted:
		return TurnPrompt{}, apperrors.ErrGameNotStarted
	case PhaseFinished:
		return TurnPrompt{}, apperrors.ErrGameFinished
	}

	player := g.order[0]
	hand := g.Hand(player)
	prompt := TurnPrompt{
		Player:   player,
		Turn:     g.turn,
		Hand:     hand,
		Active:   g.Active(),
		MustLead: g.active == nil,
		CanBeat:  true,
	}
	if g.active != nil {
		prompt.CanBeat = rule.CanBeatWithHand(hand, g.active.Combination)
	}
	return prompt, nil
}

// SubmitPlay 当前玩家按手牌下标出牌。先校验牌型和大小，全部通过后才修改手牌。
func (g *Game) SubmitPlay(player int, indices []int) (Event, error) {
	if err := g.checkTurn(player); err != nil {
		return Event{}, err
	}

	p := g.players[player]
	if err := card.CheckIndices(len(p.Hand), indices); err != nil {
		return Event{}, err
	}

	combo, err := rule.Classify(card.PickCards(p.Hand, indices))
	if err != nil {
		return Event{}, err
	}
	if g.active != nil && !rule.CanBeat(combo, g.active.Combination) {
		return Event{}, fmt.Errorf("%w: %s 大不过 %s", apperrors.ErrIllegalPlay, combo.Describe(), g.active.Describe())
	}

	p.Hand = card.RemoveIndices(p.Hand, indices)
	play := Play{Combination: combo, Player: player, Turn: g.turn}
	g.pile = append(g.pile, play)
	g.active = &play
	g.passes = 0
	g.turn++

	ev := Event{Player: player, Turn: play.Turn, Play: &play}
	if len(p.Hand) == 0 {
		ev.WentOut = true
		g.goOut()
	} else {
		g.rotate()
	}
	ev.Finished = g.phase == PhaseFinished
	ev.NextPlayer = g.Current()
	return ev, nil
}

// Pass 当前玩家不出。自由出牌时不能过。
func (g *Game) Pass(player int) (Event, error) {
	if err := g.checkTurn(player); err != nil {
		return Event{}, err
	}
	if g.active == nil {
		return Event{}, fmt.Errorf("%w: 轮到你出牌，不能PASS", apperrors.ErrIllegalPlay)
	}

	ev := Event{Player: player, Turn: g.turn}
	g.passes++
	g.turn++
	g.rotate()

	if g.passes >= g.passesToClose() {
		g.closeTrick()
		ev.TrickClosed = true
	}
	ev.NextPlayer = g.Current()
	return ev, nil
}

// Resolve 处理交互层返回的选择
func (g *Game) Resolve(player int, choice PlayerChoice) (Event, error) {
	if choice.Pass {
		return g.Pass(player)
	}
	return g.SubmitPlay(player, choice.CardIndices)
}

// AutoMove 超时处理：有牌要压时自动过，自由出牌时出最小的一张
func (g *Game) AutoMove(player int) (Event, error) {
	if g.phase == PhaseInProgress && g.active == nil {
		return g.SubmitPlay(player, []int{0})
	}
	return g.Pass(player)
}

// rotate 当前玩家移到队尾
func (g *Game) rotate() {
	g.order = append(g.order[1:], g.order[0])
}

// goOut 当前玩家出完牌，移出出牌顺序；只剩一人有牌时牌局结束
func (g *Game) goOut() {
	g.ranking = append(g.ranking, g.order[0])
	g.order = slices.Delete(g.order, 0, 1)

	if len(g.order) <= 1 {
		g.ranking = append(g.ranking, g.order...)
		g.order = nil
		g.active = nil
		g.phase = PhaseFinished
	}
}

// passesToClose 关闭本轮所需的连续过牌数：除最后出牌者外的所有在场玩家
func (g *Game) passesToClose() int {
	if slices.Contains(g.order, g.active.Player) {
		return len(g.order) - 1
	}
	return len(g.order)
}

// closeTrick 其余玩家都已过牌。最后出牌者此时正好轮到；若其已出完，则由其下家自由出牌。
func (g *Game) closeTrick() {
	g.active = nil
	g.passes = 0
}
