package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/thoxyHub/JavIsland/internal/agent"
	"github.com/thoxyHub/JavIsland/internal/config"
	"github.com/thoxyHub/JavIsland/internal/engine"
	"github.com/thoxyHub/JavIsland/internal/network"
	"github.com/thoxyHub/JavIsland/internal/server"
	"github.com/thoxyHub/JavIsland/internal/version"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var (
		configPath string
		seed       int64
		mapPath    string
		port       int
		debug      bool
		autopilot  bool
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config (configs/island.yaml)")
	// 0 - взять из конфига или случайный
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for config/random)")
	flag.StringVar(&mapPath, "map", "", "Island map file (empty for config/procedural)")
	flag.IntVar(&port, "port", 0, "HTTP port (0 for config)")
	flag.BoolVar(&debug, "debug", false, "Enable admin commands and /debug routes")
	flag.BoolVar(&autopilot, "bot", false, "Let the built-in bot play the session")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}

	// Флаги сильнее файла и окружения
	if seed != 0 {
		cfg.Game.Seed = seed
	}
	if mapPath != "" {
		cfg.Game.MapPath = mapPath
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if debug {
		cfg.Server.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Log.WithError(err).Fatal("Invalid config")
	}

	logger.Configure(cfg.Log.Level, cfg.Log.Format)
	logger.Log.Info(version.String())

	if err := run(cfg, autopilot); err != nil {
		logger.Log.WithError(err).Error("Server stopped with error")
		os.Exit(1)
	}
	logger.Log.Info("Done.")
}

func run(cfg config.Config, autopilot bool) error {
	engineCfg := cfg.EngineConfig()

	session, err := engine.NewSession(engineCfg)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	mapSource := engineCfg.MapPath
	if mapSource == "" {
		mapSource = "procedural"
	}
	logger.Log.WithFields(logrus.Fields{
		"seed":  engineCfg.Seed,
		"map":   mapSource,
		"tps":   engineCfg.TicksPerSec,
		"debug": engineCfg.Debug,
	}).Info("Island ready")

	loop := engine.NewLoop(session, network.NewBroadcaster(), engineCfg)
	srv := server.New(loop, cfg.Addr(), cfg.Server.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loop.Run(ctx) })
	g.Go(func() error { return srv.Run(ctx) })
	if autopilot {
		bot := agent.NewBot(loop)
		g.Go(func() error { return bot.Run(ctx) })
	}

	err = g.Wait()
	logger.Log.Info("Shutting down...")
	return err
}
