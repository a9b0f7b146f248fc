package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/palemoky/tien-len/internal/apperrors"
	"github.com/palemoky/tien-len/internal/game"
	"github.com/palemoky/tien-len/internal/game/card"
)

// Config 客户端配置
type Config struct {
	Deck DeckConfig `yaml:"deck"`
	Game GameConfig `yaml:"game"`
	UI   UIConfig   `yaml:"ui"`
	Log  LogConfig  `yaml:"log"`
}

// DeckConfig 牌堆配置
type DeckConfig struct {
	// 数值字段用指针区分“未配置”与显式的 0，显式 0 交给 Validate 处理
	TimesShuffled *int     `yaml:"times_shuffled"` // 未配置时默认 5 遍
	UseJokers     bool     `yaml:"use_jokers"`
	JokerCount    *int     `yaml:"joker_count"`
	DeckCount     *int     `yaml:"deck_count"`
	Players       *int     `yaml:"players"`
	Ranks         []string `yaml:"ranks"` // 为空时使用 3..2 全部点数
	Suits         []string `yaml:"suits"` // 为空时使用 S C D H
}

// GameConfig 游戏配置
type GameConfig struct {
	TurnTimeout int    `yaml:"turn_timeout"` // 出牌超时（秒），0 表示不限时
	Seed        uint64 `yaml:"seed"`         // 洗牌种子，0 表示随机
}

// UIConfig 界面配置
type UIConfig struct {
	Mute     bool   `yaml:"mute"`
	SoundDir string `yaml:"sound_dir"` // 为空时使用 assets/sounds
}

// LogConfig 日志配置
type LogConfig struct {
	Dir string `yaml:"dir"` // 为空时使用 ~/.tien-len
}

// TurnTimeoutDuration 返回出牌超时时长
func (c *GameConfig) TurnTimeoutDuration() time.Duration {
	return time.Duration(c.TurnTimeout) * time.Second
}

// Load 加载配置文件，填充默认值并校验
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 只为未配置的字段设置默认值
func (c *Config) applyDefaults() {
	setDefault(&c.Deck.TimesShuffled, card.DefaultShufflePasses)
	setDefault(&c.Deck.JokerCount, 2)
	setDefault(&c.Deck.DeckCount, 1)
	setDefault(&c.Deck.Players, 4)
}

func setDefault(field **int, v int) {
	if *field == nil {
		*field = &v
	}
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Validate 校验配置，数值错误返回 ErrInvalidConfiguration，符号错误返回 ErrInvalidSymbol
func (c *Config) Validate() error {
	if c.Game.TurnTimeout < 0 {
		return fmt.Errorf("%w: turn_timeout %d < 0", apperrors.ErrInvalidConfiguration, c.Game.TurnTimeout)
	}
	_, err := c.GameOptions()
	return err
}

// GameOptions 转换为牌局参数
func (c *Config) GameOptions() (game.Options, error) {
	opts := game.Options{
		TimesShuffled: intValue(c.Deck.TimesShuffled),
		UseJokers:     c.Deck.UseJokers,
		JokerCount:    intValue(c.Deck.JokerCount),
		DeckCount:     intValue(c.Deck.DeckCount),
		PlayerCount:   intValue(c.Deck.Players),
	}
	for _, s := range c.Deck.Ranks {
		r, err := card.ParseRank(s)
		if err != nil || r.IsJoker() {
			return game.Options{}, fmt.Errorf("%w: rank %q", apperrors.ErrInvalidSymbol, s)
		}
		opts.Ranks = append(opts.Ranks, r)
	}
	for _, s := range c.Deck.Suits {
		suit, err := card.ParseSuit(s)
		if err != nil {
			return game.Options{}, err
		}
		opts.Suits = append(opts.Suits, suit)
	}
	if err := opts.Validate(); err != nil {
		return game.Options{}, err
	}
	return opts, nil
}
