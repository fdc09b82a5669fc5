package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketsim/internal/market"
)

func TestIsDiscountAvailable(t *testing.T) {
	testCases := []struct {
		name     string
		price    float64
		average  float64
		expected bool
	}{
		{"well below threshold", 400, 600, true},
		{"just above threshold", 481, 600, false},
		{"exactly at threshold", 480, 600, false},
		{"just below threshold", 479.99, 600, true},
		{"no discount", 590, 600, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsDiscountAvailable(tc.price, tc.average, 0.2))
		})
	}
}

func TestIsStockDepleted(t *testing.T) {
	assert.True(t, IsStockDepleted(5, 10))
	assert.True(t, IsStockDepleted(9.99, 10))
	assert.False(t, IsStockDepleted(10, 10))
	assert.False(t, IsStockDepleted(50, 10))
}

func TestEvaluateRestockBeatsDiscount(t *testing.T) {
	mgr := NewManager()

	// Discount holds (400 < 480) and stock is depleted (5 < 10); the fixed
	// restock order wins over the larger discount order.
	decision := mgr.Evaluate(market.State{Price: 400, Stock: 5}, 600)

	assert.Equal(t, RuleRestock, decision.Rule)
	assert.Equal(t, 15, decision.Qty)
}

func TestEvaluateDiscountOnly(t *testing.T) {
	mgr := NewManager()

	decision := mgr.Evaluate(market.State{Price: 400, Stock: 50}, 600)

	assert.Equal(t, RuleDiscountBuy, decision.Rule)
	assert.Equal(t, 26, decision.Qty)
	assert.InDelta(t, 1.0/3.0, decision.DiscountRatio, 1e-9)
}

func TestEvaluateNoAction(t *testing.T) {
	mgr := NewManager()

	decision := mgr.Evaluate(market.State{Price: 590, Stock: 50}, 600)

	assert.Equal(t, RuleHold, decision.Rule)
	assert.Equal(t, 0, decision.Qty)
}

func TestEvaluateRestockWithoutDiscount(t *testing.T) {
	mgr := NewManager()

	decision := mgr.Evaluate(market.State{Price: 600, Stock: 3}, 600)

	assert.Equal(t, RuleRestock, decision.Rule)
	assert.Equal(t, 15, decision.Qty)
}
