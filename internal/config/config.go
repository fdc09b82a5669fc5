// Package config assembles run configuration from a .env file, the
// environment, and command-line flags. Flags win over environment values,
// environment values win over envconfig defaults.
package config

import (
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Steps             int     `envconfig:"SIM_STEPS" default:"20"`
	Seed              uint64  `envconfig:"SIM_SEED" default:"42"`
	InitialPrice      float64 `envconfig:"SIM_INITIAL_PRICE" default:"600"`
	InitialStock      float64 `envconfig:"SIM_INITIAL_STOCK" default:"50"`
	NoiseSigma        float64 `envconfig:"SIM_NOISE_SIGMA" default:"5"`
	Smoothing         float64 `envconfig:"SIM_SMOOTHING" default:"0.1"`
	DiscountThreshold float64 `envconfig:"SIM_DISCOUNT_THRESHOLD" default:"0.2"`
	LowStockLimit     float64 `envconfig:"SIM_LOW_STOCK_LIMIT" default:"10"`
	BaseOrderQty      int     `envconfig:"SIM_BASE_ORDER_QTY" default:"20"`
	RestockQty        int     `envconfig:"SIM_RESTOCK_QTY" default:"15"`
	DecisionsPath     string  `envconfig:"SIM_DECISIONS_PATH" default:"decisions.ndjson"`
	LogLevel          string  `envconfig:"SIM_LOG_LEVEL" default:"info"`
	LogPretty         bool    `envconfig:"SIM_LOG_PRETTY" default:"true"`
	NoChart           bool    `envconfig:"SIM_NO_CHART" default:"false"`
}

// Load builds the configuration. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("process environment: %w", err)
	}

	// Run parameters are also exposed as flags, with the env-derived
	// values as defaults.
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "number of simulation steps")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "pseudo-random seed")
	flag.StringVar(&cfg.DecisionsPath, "decisions-path", cfg.DecisionsPath, "path to decisions log")
	flag.BoolVar(&cfg.NoChart, "no-chart", cfg.NoChart, "skip chart rendering after the run")
	flag.Parse()

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be > 0")
	}
	if cfg.InitialStock < 0 {
		return fmt.Errorf("initial stock must be >= 0")
	}
	if cfg.NoiseSigma < 0 {
		return fmt.Errorf("noise sigma must be >= 0")
	}
	if cfg.Smoothing <= 0 || cfg.Smoothing > 1 {
		return fmt.Errorf("smoothing must be in (0, 1]")
	}
	if cfg.DiscountThreshold < 0 || cfg.DiscountThreshold >= 1 {
		return fmt.Errorf("discount threshold must be in [0, 1)")
	}
	if cfg.LowStockLimit < 0 {
		return fmt.Errorf("low stock limit must be >= 0")
	}
	if cfg.BaseOrderQty <= 0 {
		return fmt.Errorf("base order qty must be > 0")
	}
	if cfg.RestockQty <= 0 {
		return fmt.Errorf("restock qty must be > 0")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	return nil
}
