// Package agent implements the purchasing agent: an exponentially
// weighted average price estimate, the ordering policy, and the running
// record of what it bought and spent.
package agent

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"marketsim/internal/market"
	"marketsim/internal/policy"
)

// Agent observes market snapshots and decides purchase quantities.
// Spend accounting uses decimals so repeated accumulation stays exact.
type Agent struct {
	manager      policy.Manager
	smoothing    float64
	averagePrice float64
	purchases    []int
	totalSpent   decimal.Decimal
	log          zerolog.Logger
}

// New seeds the average price estimate at the environment's initial price.
func New(initialPrice, smoothing float64, manager policy.Manager, log zerolog.Logger) *Agent {
	return &Agent{
		manager:      manager,
		smoothing:    smoothing,
		averagePrice: initialPrice,
		totalSpent:   decimal.Zero,
		log:          log.With().Str("component", "agent").Logger(),
	}
}

// Decide updates the average price estimate first, so the discount check
// below sees the just-updated value, then consults the policy manager and
// books the order against the current (not average) price.
func (a *Agent) Decide(state market.State) (market.Action, policy.Decision) {
	a.averagePrice += (state.Price - a.averagePrice) * a.smoothing

	decision := a.manager.Evaluate(state, a.averagePrice)

	cost := decimal.NewFromFloat(state.Price).Mul(decimal.NewFromInt(int64(decision.Qty)))
	a.totalSpent = a.totalSpent.Add(cost)
	a.purchases = append(a.purchases, decision.Qty)

	event := a.log.Info().
		Int("step", len(a.purchases)).
		Float64("price", state.Price).
		Float64("stock", state.Stock).
		Float64("average_price", a.averagePrice).
		Str("rule", string(decision.Rule)).
		Int("order", decision.Qty)
	if decision.Rule == policy.RuleDiscountBuy {
		event = event.Float64("discount_ratio", decision.DiscountRatio)
	}
	event.Msg("decision")

	return market.Action{Purchase: decision.Qty}, decision
}

// AveragePrice returns the current smoothed price estimate.
func (a *Agent) AveragePrice() float64 {
	return a.averagePrice
}

// PurchaseLog returns a copy of the per-step order quantities.
func (a *Agent) PurchaseLog() []int {
	return append([]int(nil), a.purchases...)
}

// TotalSpent returns the cumulative amount spent. It can decrease when the
// price goes negative; the environment enforces no price floor.
func (a *Agent) TotalSpent() decimal.Decimal {
	return a.totalSpent
}
