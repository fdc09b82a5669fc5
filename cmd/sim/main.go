package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"marketsim/internal/agent"
	"marketsim/internal/config"
	"marketsim/internal/engine"
	"marketsim/internal/market"
	"marketsim/internal/policy"
	"marketsim/internal/viz"
	"marketsim/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	runID := generateRunID()
	decisions, err := engine.NewDecisionLogger(cfg.DecisionsPath, runID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open decision log")
	}
	defer func() {
		if err := decisions.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close decision log")
		}
	}()

	rng := rand.New(rand.NewSource(cfg.Seed))
	env := market.NewEnvironment(market.Params{
		InitialPrice: cfg.InitialPrice,
		InitialStock: cfg.InitialStock,
		NoiseSigma:   cfg.NoiseSigma,
	}, rng, log)
	manager := policy.Manager{
		DiscountThreshold: cfg.DiscountThreshold,
		LowStockLimit:     cfg.LowStockLimit,
		BaseOrderQty:      cfg.BaseOrderQty,
		RestockQty:        cfg.RestockQty,
	}
	agt := agent.New(cfg.InitialPrice, cfg.Smoothing, manager, log)
	sim := engine.New(env, agt, decisions, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalChan
		log.Info().Msg("shutdown signal received")
		cancel()
	}()

	log.Info().
		Str("run_id", runID).
		Int("steps", cfg.Steps).
		Uint64("seed", cfg.Seed).
		Msg("starting simulation")

	if err := sim.Run(ctx, cfg.Steps); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn().Msg("simulation interrupted")
			return
		}
		log.Fatal().Err(err).Msg("simulation failed")
	}

	if !cfg.NoChart {
		viz.NewRenderer(os.Stdout).Render(agt, env)
	}

	log.Info().
		Str("total_spent", agt.TotalSpent().StringFixed(2)).
		Float64("average_price", agt.AveragePrice()).
		Msg("simulation complete")
}

func generateRunID() string {
	timestamp := time.Now().UTC().Format("20060102T150405")
	return timestamp + "-" + uuid.NewString()[:8]
}
