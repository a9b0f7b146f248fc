// Package match drives a game turn by turn: it hands each turn's prompt to a
// Chooser and applies the answer, re-prompting on rejected moves.
package match

import (
	"context"
	"errors"
	"time"

	"github.com/palemoky/tien-len/internal/apperrors"
	"github.com/palemoky/tien-len/internal/game"
	"github.com/palemoky/tien-len/internal/game/card"
	"github.com/palemoky/tien-len/internal/logger"
)

// Chooser resolves a turn prompt into a player choice. It may block until the
// player answers; it must return ctx.Err() once ctx is done.
type Chooser interface {
	Choose(ctx context.Context, prompt game.TurnPrompt) (game.PlayerChoice, error)
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(ctx context.Context, prompt game.TurnPrompt) (game.PlayerChoice, error)

func (f ChooserFunc) Choose(ctx context.Context, prompt game.TurnPrompt) (game.PlayerChoice, error) {
	return f(ctx, prompt)
}

// Option configures a Runner.
type Option func(*Runner)

// WithTurnTimeout sets a per-turn deadline; on expiry the game's AutoMove is applied.
func WithTurnTimeout(d time.Duration) Option {
	return func(r *Runner) { r.turnTimeout = d }
}

// WithEventHandler registers a callback for every accepted play or pass.
func WithEventHandler(fn func(game.Event)) Option {
	return func(r *Runner) { r.onEvent = fn }
}

// Runner owns the turn loop for one game.
type Runner struct {
	game        *game.Game
	chooser     Chooser
	turnTimeout time.Duration
	onEvent     func(game.Event)
}

func NewRunner(g *game.Game, c Chooser, opts ...Option) *Runner {
	r := &Runner{game: g, chooser: c}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run loops until the game finishes and returns the finishing order.
func (r *Runner) Run(ctx context.Context) ([]int, error) {
	var lastErr error
	for !r.game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prompt, err := r.game.Prompt()
		if err != nil {
			return nil, err
		}
		prompt.LastError = lastErr

		ev, err := r.takeTurn(ctx, prompt)
		if err != nil {
			if apperrors.IsRecoverable(err) {
				logger.LogError("game %s turn %d: player %d rejected: %v", r.game.ID, prompt.Turn, prompt.Player+1, err)
				lastErr = err
				continue
			}
			return nil, err
		}

		lastErr = nil
		r.logEvent(ev)
		if r.onEvent != nil {
			r.onEvent(ev)
		}
	}

	ranking := r.game.Ranking()
	logger.LogInfo("game %s finished, ranking %v", r.game.ID, ranking)
	return ranking, nil
}

func (r *Runner) takeTurn(ctx context.Context, prompt game.TurnPrompt) (game.Event, error) {
	turnCtx := ctx
	if r.turnTimeout > 0 {
		var cancel context.CancelFunc
		turnCtx, cancel = context.WithTimeout(ctx, r.turnTimeout)
		defer cancel()
	}

	choice, err := r.chooser.Choose(turnCtx, prompt)
	switch {
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		logger.LogInfo("game %s turn %d: player %d timed out", r.game.ID, prompt.Turn, prompt.Player+1)
		return r.game.AutoMove(prompt.Player)
	case err != nil:
		return game.Event{}, err
	}
	return r.game.Resolve(prompt.Player, choice)
}

func (r *Runner) logEvent(ev game.Event) {
	snap := r.game.Snapshot()
	if ev.Passed() {
		logger.LogInfo("game %s turn %d: player %d passed (trick closed: %t), hands %v",
			snap.ID, ev.Turn, ev.Player+1, ev.TrickClosed, snap.HandSizes)
		return
	}
	logger.LogInfo("game %s turn %d: player %d played %s [%s], hands %v",
		snap.ID, ev.Turn, ev.Player+1, ev.Play.Type, card.Format(ev.Play.Cards), snap.HandSizes)
	if ev.WentOut {
		logger.LogInfo("game %s: player %d went out", snap.ID, ev.Player+1)
	}
}
