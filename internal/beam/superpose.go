package beam

import (
	"math"

	"github.com/alexchoi94/tscheck/internal/calcerr"
)

// spanMatchRelTol bounds how far component spans may drift apart before
// superposition is rejected.
const spanMatchRelTol = 1e-9

// Superpose combines the results of independent load cases on the same
// span and support condition into one field-wise sum. MomentAt of the
// combined result sums the component contributions, so the summed MF
// field is only the governing field moment when all components share a
// load point; use MomentAt to probe other positions.
func Superpose(results ...*DemandResult) (*DemandResult, error) {
	if len(results) == 0 {
		return nil, calcerr.InvalidLoad.Here().
			WithMessage("superposition requires at least one load case")
	}

	first := results[0]
	combined := &DemandResult{
		Support:        first.Support,
		Pattern:        first.Pattern,
		Span:           first.Span,
		EndMomentsZero: first.EndMomentsZero,
	}

	for _, r := range results {
		if r.Support != first.Support {
			return nil, calcerr.InvalidGeometry.Here().
				WithMessagef("cannot superpose %s and %s cases", first.Support, r.Support)
		}
		if math.Abs(r.Span-first.Span) > spanMatchRelTol*math.Max(first.Span, 1) {
			return nil, calcerr.InvalidGeometry.Here().
				WithMessagef("cannot superpose spans L=%g and L=%g", first.Span, r.Span)
		}

		combined.MA += r.MA
		combined.MB += r.MB
		combined.MF += r.MF
		combined.RA += r.RA
		combined.RB += r.RB
		combined.cases = append(combined.cases, r.cases...)
	}

	if len(results) == 2 && first.Pattern == SinglePoint && results[1].Pattern == SinglePoint {
		combined.Pattern = TwoPoint
	}
	return combined, nil
}

// SuperposePointLoads evaluates a single point load of magnitude f at
// each of the given offsets and superposes the results. This is the
// general N-load combinator; the two-point helpers are thin wrappers.
func SuperposePointLoads(support SupportCondition, f, l float64, offsets ...float64) (*DemandResult, error) {
	if len(offsets) == 0 {
		return nil, calcerr.InvalidLoad.Here().
			WithMessage("at least one load offset is required")
	}

	results := make([]*DemandResult, 0, len(offsets))
	for _, a := range offsets {
		r, err := solvePointLoad(support, f, a, l)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return Superpose(results...)
}

// FixedFixedTwoPointLoad solves a fixed-fixed beam with two equal point
// loads f at offsets a1 and a2. There is no independent two-point
// formula; the result is the superposition of two single-point cases.
func FixedFixedTwoPointLoad(f, a1, a2, l float64) (*DemandResult, error) {
	return SuperposePointLoads(FixedFixed, f, l, a1, a2)
}

// PinnedPinnedTwoPointLoad solves a pinned-pinned beam with two equal
// point loads f at offsets a1 and a2 by superposition.
func PinnedPinnedTwoPointLoad(f, a1, a2, l float64) (*DemandResult, error) {
	return SuperposePointLoads(PinnedPinned, f, l, a1, a2)
}

func solvePointLoad(support SupportCondition, f, a, l float64) (*DemandResult, error) {
	switch support {
	case FixedFixed:
		return FixedFixedPointLoad(f, a, l)
	case PinnedPinned:
		return PinnedPinnedPointLoad(f, a, l)
	}
	return nil, calcerr.InvalidGeometry.Here().
		WithMessagef("unknown support condition %d", support)
}

// Load bundles the numeric load inputs for the Evaluate dispatcher.
// F is the point load magnitude (SinglePoint, TwoPoint), Q the line
// load intensity (UniformDistributed) and Offsets the point load
// positions from support A.
type Load struct {
	F       float64
	Q       float64
	Offsets []float64
}

// Evaluate dispatches over the (SupportCondition × LoadPattern)
// combinations to the matching solver.
func Evaluate(support SupportCondition, pattern LoadPattern, ld Load, l float64) (*DemandResult, error) {
	switch pattern {
	case SinglePoint:
		if len(ld.Offsets) != 1 {
			return nil, calcerr.InvalidLoad.Here().
				WithMessagef("single point load requires exactly one offset, got %d", len(ld.Offsets))
		}
		return solvePointLoad(support, ld.F, ld.Offsets[0], l)

	case TwoPoint:
		if len(ld.Offsets) != 2 {
			return nil, calcerr.InvalidLoad.Here().
				WithMessagef("two point loads require exactly two offsets, got %d", len(ld.Offsets))
		}
		return SuperposePointLoads(support, ld.F, l, ld.Offsets...)

	case UniformDistributed:
		switch support {
		case FixedFixed:
			return FixedFixedUniformLoad(ld.Q, l)
		case PinnedPinned:
			return PinnedPinnedUniformLoad(ld.Q, l)
		}
	}
	return nil, calcerr.InvalidGeometry.Here().
		WithMessagef("unsupported case: %s, %s", support, pattern)
}
