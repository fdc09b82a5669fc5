// Package market owns the synthetic environment state: a fluctuating
// price and a stock level that is drawn down by random daily demand and
// topped up by the agent's purchases.
package market

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"marketsim/internal/sample"
)

// State is an immutable snapshot of the environment at a point in time.
type State struct {
	Price float64
	Stock float64
}

// Action is the agent's order for the next transition.
type Action struct {
	Purchase int
}

// DefaultDemand is the daily demand distribution. Order matters: the
// sampler resolves cumulative boundaries in slice order.
var DefaultDemand = []sample.Outcome{
	{Value: 3, Prob: 0.2},
	{Value: 5, Prob: 0.3},
	{Value: 7, Prob: 0.3},
	{Value: 10, Prob: 0.2},
}

// fluctuationCycle is the deterministic component of the price walk,
// indexed by the step counter mod 10.
var fluctuationCycle = [10]float64{10, -15, 5, 20, -10, -25, 15, 5, -5, 0}

// Params configures a new environment.
type Params struct {
	InitialPrice float64
	InitialStock float64
	NoiseSigma   float64
}

// Environment advances price and stock one step at a time. Histories are
// seeded with the initial values, so after N steps each holds N+1 entries.
// Price is unbounded and can go negative; stock is clamped at zero.
type Environment struct {
	clock        int
	price        float64
	stock        float64
	priceHistory []float64
	stockHistory []float64
	demand       []sample.Outcome
	noise        distuv.Normal
	rng          *rand.Rand
	log          zerolog.Logger
}

func NewEnvironment(p Params, rng *rand.Rand, log zerolog.Logger) *Environment {
	return &Environment{
		price:        p.InitialPrice,
		stock:        p.InitialStock,
		priceHistory: []float64{p.InitialPrice},
		stockHistory: []float64{p.InitialStock},
		demand:       DefaultDemand,
		noise:        distuv.Normal{Mu: 0, Sigma: p.NoiseSigma, Src: rng},
		rng:          rng,
		log:          log.With().Str("component", "market").Logger(),
	}
}

// Initialize returns the current snapshot without mutating anything.
// Callable any number of times.
func (e *Environment) Initialize() State {
	return State{Price: e.price, Stock: e.stock}
}

// Advance applies one transition: sample demand, settle stock, step the
// clock, move the price, and record both series. The only failure mode is
// a malformed demand distribution surfacing from the sampler.
func (e *Environment) Advance(a Action) (State, error) {
	demand, err := sample.Categorical(e.rng, e.demand)
	if err != nil {
		return State{}, fmt.Errorf("market: sample demand: %w", err)
	}

	e.stock = math.Max(0, e.stock+float64(a.Purchase)-float64(demand))
	e.clock++
	e.price += fluctuationCycle[e.clock%10] + e.noise.Rand()

	e.priceHistory = append(e.priceHistory, e.price)
	e.stockHistory = append(e.stockHistory, e.stock)

	e.log.Debug().
		Int("step", e.clock).
		Int("demand", demand).
		Int("purchase", a.Purchase).
		Float64("price", e.price).
		Float64("stock", e.stock).
		Msg("advanced")

	return State{Price: e.price, Stock: e.stock}, nil
}

// Clock returns the number of steps taken so far.
func (e *Environment) Clock() int {
	return e.clock
}

// PriceHistory returns a copy of the recorded price series.
func (e *Environment) PriceHistory() []float64 {
	return append([]float64(nil), e.priceHistory...)
}

// StockHistory returns a copy of the recorded stock series.
func (e *Environment) StockHistory() []float64 {
	return append([]float64(nil), e.stockHistory...)
}
