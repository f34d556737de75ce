package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rhushya/Kloudmate/internal/config"
	"github.com/Rhushya/Kloudmate/internal/logger"
	"github.com/Rhushya/Kloudmate/internal/metrics"
	"github.com/Rhushya/Kloudmate/internal/pid"
	"github.com/Rhushya/Kloudmate/internal/sampler"
	"github.com/Rhushya/Kloudmate/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, cfg.Debug, cfg.Verbose, logger.IsService())
	logger.Debug().Msg("Config loaded")

	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to write pid file")
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Error().Err(err).Msg("failed to remove pid file")
		}
	}()

	st, err := store.New(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize store")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	s := sampler.New(
		metrics.NewHostSource(),
		st,
		time.Duration(cfg.Interval)*time.Second,
		cfg.Hostname,
	)

	if err := s.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("error in sampler loop")
		os.Exit(1)
	}

	logger.Info().Msg("Exiting...")
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
