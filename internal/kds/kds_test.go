package kds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactor(t *testing.T) {
	combo := StrengthCombinations[1] // 1.2D + 1.6L
	assert.InDelta(t, 1.2*17.28+1.6*9.0, combo.Factor(17.28, 9.0), 1e-9)
}

func TestGoverning(t *testing.T) {
	// Dead-only: 1.4D governs over 1.2D.
	u, combo := Governing(10, 0, StrengthCombinations)
	assert.InDelta(t, 14.0, u, 1e-9)
	assert.Equal(t, "1.4D", combo.Description)

	// With live load 1.2D + 1.6L takes over.
	u, combo = Governing(10, 10, StrengthCombinations)
	assert.InDelta(t, 28.0, u, 1e-9)
	assert.Equal(t, "1.2D + 1.6L", combo.Description)

	// Zero effects still pick a combination.
	_, combo = Governing(0, 0, StrengthCombinations)
	assert.NotEmpty(t, combo.ID)
}
