package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/tien-len/internal/apperrors"
	"github.com/palemoky/tien-len/internal/game/card"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
deck:
  times_shuffled: 7
  use_jokers: true
  joker_count: 4
  deck_count: 2
  players: 4
  ranks: ["3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"]
  suits: ["S", "C", "D", "H"]

game:
  turn_timeout: 45
  seed: 99

ui:
  mute: true

log:
  dir: "/tmp/tien-len"
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 7, *cfg.Deck.TimesShuffled)
	assert.True(t, cfg.Deck.UseJokers)
	assert.Equal(t, 4, *cfg.Deck.JokerCount)
	assert.Equal(t, 2, *cfg.Deck.DeckCount)
	assert.Equal(t, 4, *cfg.Deck.Players)
	assert.Len(t, cfg.Deck.Ranks, 13)
	assert.Equal(t, 45, cfg.Game.TurnTimeout)
	assert.Equal(t, uint64(99), cfg.Game.Seed)
	assert.True(t, cfg.UI.Mute)
	assert.Equal(t, "/tmp/tien-len", cfg.Log.Dir)

	opts, err := cfg.GameOptions()
	require.NoError(t, err)
	assert.Equal(t, card.StandardRanks(), opts.Ranks)
	assert.Equal(t, card.StandardSuits(), opts.Suits)
	assert.Equal(t, 2, opts.DeckCount)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "game:\n  turn_timeout: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, card.DefaultShufflePasses, *cfg.Deck.TimesShuffled)
	assert.Equal(t, 2, *cfg.Deck.JokerCount)
	assert.Equal(t, 1, *cfg.Deck.DeckCount)
	assert.Equal(t, 4, *cfg.Deck.Players)
	assert.False(t, cfg.Deck.UseJokers)
	assert.Equal(t, time.Duration(0), cfg.Game.TurnTimeoutDuration())
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "deck: [unclosed"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		target  error
	}{
		{name: "One player", content: "deck:\n  players: 1\n", target: apperrors.ErrInvalidConfiguration},
		{name: "Negative decks", content: "deck:\n  deck_count: -1\n", target: apperrors.ErrInvalidConfiguration},
		{name: "Explicit zero decks", content: "deck:\n  deck_count: 0\n", target: apperrors.ErrInvalidConfiguration},
		{name: "Explicit zero players", content: "deck:\n  players: 0\n", target: apperrors.ErrInvalidConfiguration},
		{name: "Negative timeout", content: "game:\n  turn_timeout: -5\n", target: apperrors.ErrInvalidConfiguration},
		{name: "Unknown rank", content: "deck:\n  ranks: [\"3\", \"X\"]\n", target: apperrors.ErrInvalidSymbol},
		{name: "Joker as rank", content: "deck:\n  ranks: [\"BJ\"]\n", target: apperrors.ErrInvalidSymbol},
		{name: "Unknown suit", content: "deck:\n  suits: [\"S\", \"Z\"]\n", target: apperrors.ErrInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.target)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_ExplicitZeroJokers(t *testing.T) {
	t.Parallel()

	// 显式 0 不应被默认值覆盖
	cfg, err := Load(writeConfig(t, "deck:\n  use_jokers: true\n  joker_count: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Deck.JokerCount)
	assert.Equal(t, 0, *cfg.Deck.JokerCount)

	opts, err := cfg.GameOptions()
	require.NoError(t, err)
	assert.True(t, opts.UseJokers)
	assert.Equal(t, 0, opts.JokerCount)
}

func TestTurnTimeoutDuration(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Game.TurnTimeout = 30
	assert.Equal(t, 30*time.Second, cfg.Game.TurnTimeoutDuration())
}
