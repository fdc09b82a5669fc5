// Package sample draws discrete outcomes from finite categorical
// distributions. Distributions are explicit ordered slices so that
// cumulative-boundary selection is deterministic and reproducible.
package sample

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

// Outcome pairs a discrete value with its probability mass.
// Probabilities across a distribution are expected to sum to 1;
// that is the caller's responsibility.
type Outcome struct {
	Value int
	Prob  float64
}

// ErrExhausted is returned when the cumulative probability mass of a
// distribution never exceeds the uniform draw. It indicates a malformed
// distribution (mass summing to less than 1) and is not recoverable.
var ErrExhausted = errors.New("cumulative probability never exceeded draw")

// Categorical consumes one uniform draw from rng and returns the first
// outcome, in slice order, whose cumulative probability strictly exceeds
// the draw.
func Categorical(rng *rand.Rand, outcomes []Outcome) (int, error) {
	return pick(rng.Float64(), outcomes)
}

func pick(draw float64, outcomes []Outcome) (int, error) {
	cumulative := 0.0
	for _, o := range outcomes {
		cumulative += o.Prob
		if cumulative > draw {
			return o.Value, nil
		}
	}
	return 0, fmt.Errorf("sample: %w (draw=%.6f, mass=%.6f)", ErrExhausted, draw, cumulative)
}
