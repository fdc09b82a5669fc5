package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var demand = []Outcome{
	{Value: 3, Prob: 0.2},
	{Value: 5, Prob: 0.3},
	{Value: 7, Prob: 0.3},
	{Value: 10, Prob: 0.2},
}

func TestPickCumulativeBoundaries(t *testing.T) {
	testCases := []struct {
		draw     float64
		expected int
	}{
		{0.0, 3},
		{0.15, 3},
		{0.45, 5},
		{0.75, 7},
		{0.95, 10},
	}

	for _, tc := range testCases {
		value, err := pick(tc.draw, demand)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, value, "draw %.2f", tc.draw)
	}
}

func TestPickStrictlyExceeds(t *testing.T) {
	// A draw landing exactly on a cumulative boundary selects the next
	// outcome: cumulative 0.2 does not strictly exceed a draw of 0.2.
	value, err := pick(0.2, demand)
	require.NoError(t, err)
	assert.Equal(t, 5, value)
}

func TestPickMalformedDistribution(t *testing.T) {
	short := []Outcome{
		{Value: 1, Prob: 0.2},
		{Value: 2, Prob: 0.2},
	}

	_, err := pick(0.9, short)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestCategoricalConsumesOneDraw(t *testing.T) {
	first := rand.New(rand.NewSource(7))
	second := rand.New(rand.NewSource(7))

	value, err := Categorical(first, demand)
	require.NoError(t, err)

	expected, err := pick(second.Float64(), demand)
	require.NoError(t, err)
	assert.Equal(t, expected, value)
}

func TestCategoricalDeterministicForSeed(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		va, err := Categorical(a, demand)
		require.NoError(t, err)
		vb, err := Categorical(b, demand)
		require.NoError(t, err)
		assert.Equal(t, va, vb)
	}
}
