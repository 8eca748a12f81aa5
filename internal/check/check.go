// Package check compares demand against capacity per limit state and
// runs the full construction-load check for a temporary composite
// support beam.
package check

import (
	"fmt"

	"github.com/alexchoi94/tscheck/internal/calcerr"
)

// Verdict classifies a demand/capacity ratio.
type Verdict int

const (
	OK Verdict = iota
	Marginal
	Fail
)

func (v Verdict) String() string {
	switch v {
	case OK:
		return "OK"
	case Marginal:
		return "MARGINAL OK"
	case Fail:
		return "FAIL"
	}
	return "unknown"
}

// Result holds one demand-vs-capacity comparison. Direction and limit
// state only label the record; they never change the arithmetic.
type Result struct {
	Direction  string  // "X" or "Y"
	LimitState string  // "flexure" or "shear"
	Demand     float64
	Capacity   float64
	Ratio      float64
	Verdict    Verdict
}

// Fields exposes the result as named scalars for report formatting.
func (r Result) Fields() map[string]float64 {
	return map[string]float64{
		"demand":   r.Demand,
		"capacity": r.Capacity,
		"ratio":    r.Ratio,
	}
}

func (r Result) Label() string {
	return fmt.Sprintf("%s-dir %s", r.Direction, r.LimitState)
}

// Evaluator classifies ratios with a configurable marginal band:
//
//	ratio < 1 − tol   → OK
//	1 − tol ≤ ratio ≤ 1 → MARGINAL OK
//	ratio > 1         → FAIL
type Evaluator struct {
	// Tolerance is the width of the marginal band below ratio 1.0.
	Tolerance float64
}

// DefaultTolerance keeps a utilization that prints as 1.00 on the
// marginal side instead of a hard failure.
const DefaultTolerance = 0.005

// NewEvaluator returns an Evaluator with the default marginal band.
func NewEvaluator() Evaluator {
	return Evaluator{Tolerance: DefaultTolerance}
}

// Evaluate builds the check record for one (direction × limit state)
// pair. Demand is a magnitude; capacity must be positive.
func (e Evaluator) Evaluate(direction, limitState string, demand, capacity float64) (Result, error) {
	if capacity <= 0 {
		return Result{}, calcerr.InvalidGeometry.Here().
			WithMessagef("%s %s capacity must be positive, got %g", direction, limitState, capacity).
			WithValue("capacity", capacity)
	}
	if demand < 0 {
		return Result{}, calcerr.InvalidLoad.Here().
			WithMessagef("%s %s demand must be a non-negative magnitude, got %g", direction, limitState, demand).
			WithValue("demand", demand)
	}

	r := Result{
		Direction:  direction,
		LimitState: limitState,
		Demand:     demand,
		Capacity:   capacity,
		Ratio:      demand / capacity,
	}

	switch {
	case r.Ratio < 1-e.Tolerance:
		r.Verdict = OK
	case r.Ratio <= 1:
		r.Verdict = Marginal
	default:
		r.Verdict = Fail
	}
	return r, nil
}
