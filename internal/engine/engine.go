// Package engine drives the simulation loop and records one structured
// decision per step.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"marketsim/internal/agent"
	"marketsim/internal/market"
	"marketsim/internal/policy"
)

type Engine struct {
	env       *market.Environment
	agent     *agent.Agent
	decisions *DecisionLogger
	log       zerolog.Logger
}

func New(env *market.Environment, agt *agent.Agent, decisions *DecisionLogger, log zerolog.Logger) *Engine {
	return &Engine{
		env:       env,
		agent:     agt,
		decisions: decisions,
		log:       log.With().Str("component", "engine").Logger(),
	}
}

// Run alternates agent decisions and environment updates for exactly
// steps iterations. There is no convergence check and no early exit other
// than context cancellation between steps or a sampler failure, which
// aborts the run.
func (e *Engine) Run(ctx context.Context, steps int) error {
	state := e.env.Initialize()

	for step := 0; step < steps; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		action, decision := e.agent.Decide(state)

		record := Record{
			RunID:        e.decisions.RunID(),
			Timestamp:    time.Now().UTC(),
			Step:         step,
			Price:        state.Price,
			Stock:        state.Stock,
			AveragePrice: e.agent.AveragePrice(),
			Rule:         decision.Rule,
			Qty:          decision.Qty,
		}
		if decision.Rule == policy.RuleDiscountBuy {
			record.DiscountRatio = decision.DiscountRatio
		}
		e.decisions.Append(record)

		next, err := e.env.Advance(action)
		if err != nil {
			return fmt.Errorf("advance step %d: %w", step, err)
		}
		state = next
	}

	e.log.Info().Int("steps", steps).Msg("run complete")
	return nil
}
