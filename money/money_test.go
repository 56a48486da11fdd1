package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, 10.0, Round2(10.0))
	assert.Equal(t, 0.0, Round2(0.004))
}

func TestRound4(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 173.3333, Round4(173.33333333))
	assert.Equal(t, 0.1235, Round4(0.12345))
}

func TestTotal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1700.00, Total(10, 170.00))
	assert.Equal(t, 900.00, Total(5, 180.00))
	assert.Equal(t, 1.01, Total(3, 0.335))
	assert.Equal(t, 0.0, Total(0, 170.00))
}

func TestWeightedAvgCost(t *testing.T) {
	t.Parallel()

	// (170*10 + 900) / 15 = 173.3333...
	assert.Equal(t, 173.3333, WeightedAvgCost(170.00, 10, 900.00, 5))
	// Averaging with itself changes nothing.
	assert.Equal(t, 42.0, WeightedAvgCost(42.00, 3, 126.00, 3))
}
