package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/tien-len/internal/config"
	"github.com/palemoky/tien-len/internal/game"
	"github.com/palemoky/tien-len/internal/game/card"
	"github.com/palemoky/tien-len/internal/game/match"
	"github.com/palemoky/tien-len/internal/logger"
	"github.com/palemoky/tien-len/internal/sound"
	"github.com/palemoky/tien-len/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	plain := flag.Bool("plain", false, "行模式，不使用全屏界面")
	flag.Parse()

	// 加载配置，文件不存在时使用默认配置
	cfg, err := config.Load(*configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("配置文件不存在，使用默认配置: %s", *configPath)
		cfg = config.Default()
	case err != nil:
		log.Fatalf("加载配置文件失败: %v", err)
	}

	opts, err := cfg.GameOptions()
	if err != nil {
		log.Fatalf("牌局配置错误: %v", err)
	}
	g, err := game.New(opts)
	if err != nil {
		log.Fatalf("创建牌局失败: %v", err)
	}

	// 日志写入文件，终端只留给界面
	if err := logger.Init(cfg.Log.Dir); err != nil {
		log.Printf("无法初始化日志: %v", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()
	logger.LogInfo("game %s created: %+v", g.ID, opts)

	rng := newRand(cfg.Game.Seed)
	if *plain {
		err = runPlain(g, rng, cfg)
	} else {
		err = runTUI(g, rng, cfg)
	}
	if err != nil {
		logger.LogError("game %s: %v", g.ID, err)
		logger.Close()
		log.Fatalf("游戏异常结束: %v", err)
	}
}

// newRand seed 为 0 时使用时间种子
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return card.NewRand()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func runTUI(g *game.Game, rng *rand.Rand, cfg *config.Config) error {
	var sm *sound.Manager
	if !cfg.UI.Mute {
		sm = sound.NewManager(cfg.UI.SoundDir)
		if err := sm.Init(); err != nil {
			logger.LogError("音效不可用: %v", err)
			sm = nil
		} else {
			defer sm.Close()
		}
	}

	model := ui.NewModel(g, ui.Options{
		TurnTimeout: cfg.Game.TurnTimeoutDuration(),
		Sound:       sm,
		Rand:        rng,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM)
	go func() {
		<-quit
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("启动界面时出错: %w", err)
	}
	return model.Err()
}

func runPlain(g *game.Game, rng *rand.Rand, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("🃏 Tiến Lên: 洗牌 %d 遍，%d 名玩家\n", g.Options().TimesShuffled, g.PlayerCount())
	if err := g.Start(rng); err != nil {
		return err
	}

	chooser := ui.NewLineChooser(os.Stdin, os.Stdout)
	runner := match.NewRunner(g, chooser,
		match.WithTurnTimeout(cfg.Game.TurnTimeoutDuration()),
		match.WithEventHandler(chooser.Announce),
	)
	ranking, err := runner.Run(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Println("\n已退出")
		return nil
	}
	if err != nil {
		return err
	}
	chooser.AnnounceRanking(ranking)
	return nil
}
