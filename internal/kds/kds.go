// Package kds holds the KDS 41 strength-design constants and load
// combinations used for construction-stage checks of temporary steel
// composite members.
package kds

// Steel constants
const (
	// Es is the modulus of elasticity for structural steel (MPa)
	Es = 200000.0

	// ShearYieldRatio reduces the yield stress for uniform shear
	// (von Mises criterion, 1/√3 ≈ 0.6)
	ShearYieldRatio = 0.6
)

// LoadCombination represents a strength-design load combination for
// construction-stage gravity loads.
type LoadCombination struct {
	ID          string
	Description string
	// Load factors
	Dead float64 // D - dead load (self-weight of slab and formwork)
	Live float64 // L - construction live load
}

// StrengthCombinations are the gravity combinations governing a
// temporary support beam during concrete placement.
var StrengthCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// Factor applies the combination to unfactored dead and live effects.
// The effects may be line loads, moments or shears; the factors are
// linear either way.
func (lc LoadCombination) Factor(dead, live float64) float64 {
	return lc.Dead*dead + lc.Live*live
}

// Governing returns the maximum factored effect over the given
// combinations together with the combination that produced it.
func Governing(dead, live float64, combinations []LoadCombination) (float64, LoadCombination) {
	var max float64
	var governing LoadCombination

	for i, combo := range combinations {
		u := combo.Factor(dead, live)
		if i == 0 || u > max {
			max = u
			governing = combo
		}
	}

	return max, governing
}
