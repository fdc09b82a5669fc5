// Package policy holds the agent's ordering rules: two pure predicates
// over market state and a manager that folds them into an order quantity.
// Evaluation is side-effect free; callers decide how to present the
// resulting rule tag.
package policy

import (
	"math"

	"marketsim/internal/market"
)

// Rule tags why a decision ordered what it did.
type Rule string

const (
	RuleDiscountBuy Rule = "discount_buy"
	RuleRestock     Rule = "low_stock_restock"
	RuleHold        Rule = "no_action"
)

// IsDiscountAvailable reports whether price sits far enough below the
// agent's current average. The average is passed by value so the predicate
// always sees the caller's live estimate, never a stale snapshot.
func IsDiscountAvailable(price, averagePrice, threshold float64) bool {
	return price < (1-threshold)*averagePrice
}

// IsStockDepleted reports whether stock has fallen under the low-stock limit.
func IsStockDepleted(stock, lowLimit float64) bool {
	return stock < lowLimit
}

// Decision is a pure evaluation result. DiscountRatio is only meaningful
// when Rule is RuleDiscountBuy.
type Decision struct {
	Qty           int
	Rule          Rule
	DiscountRatio float64
}

// Manager combines the predicates into a priority-ordered decision table.
type Manager struct {
	DiscountThreshold float64
	LowStockLimit     float64
	BaseOrderQty      int
	RestockQty        int
}

// NewManager returns a manager with the default thresholds.
func NewManager() Manager {
	return Manager{
		DiscountThreshold: 0.2,
		LowStockLimit:     10,
		BaseOrderQty:      20,
		RestockQty:        15,
	}
}

// Evaluate walks the decision table in priority order:
//
//  1. discount available and stock not depleted: order scales with how deep
//     the discount is, floor(base * (1 + ratio));
//  2. stock depleted (discount or not): fixed restock quantity — when both
//     conditions hold the restock rule wins even though it may order less
//     than the discount formula would;
//  3. otherwise hold.
func (m Manager) Evaluate(state market.State, averagePrice float64) Decision {
	discount := IsDiscountAvailable(state.Price, averagePrice, m.DiscountThreshold)
	depleted := IsStockDepleted(state.Stock, m.LowStockLimit)

	if discount && !depleted {
		ratio := (averagePrice - state.Price) / averagePrice
		return Decision{
			Qty:           int(math.Floor(float64(m.BaseOrderQty) * (1 + ratio))),
			Rule:          RuleDiscountBuy,
			DiscountRatio: ratio,
		}
	}
	if depleted {
		return Decision{Qty: m.RestockQty, Rule: RuleRestock}
	}
	return Decision{Rule: RuleHold}
}
