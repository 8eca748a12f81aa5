// Package beam computes demand (bending moments, shear reactions) for a
// single-span beam under the four classical support/load configurations
// used in construction-stage checks.
//
// Sign convention, fixed across the package:
//   - Load magnitudes are non-negative and act downward.
//   - Reactions are positive upward.
//   - Moments are positive sagging (bottom-fiber tension); fixed-end
//     moments therefore come out negative (hogging).
//
// The package is unit-agnostic: consistent force and length units in
// give the same units out (kN and m throughout this tool).
package beam

import (
	"math"

	"github.com/alexchoi94/tscheck/internal/calcerr"
)

// equilibriumRelTol is the relative tolerance for the reaction-sum
// assertion R_A + R_B == ΣF.
const equilibriumRelTol = 1e-9

// DemandResult holds end moments, the load-point (or mid-span) moment
// and the support reactions for one load case, or the field-wise sum of
// several superposed cases. Values are immutable once returned.
type DemandResult struct {
	Support SupportCondition
	Pattern LoadPattern
	Span    float64 // L

	MA float64 // end moment at support A (zero for pinned ends)
	MB float64 // end moment at support B (zero for pinned ends)
	MF float64 // moment at the load point, or at mid-span for uniform load
	RA float64 // reaction at support A
	RB float64 // reaction at support B

	// EndMomentsZero records that MA and MB are structurally zero for
	// this support condition, not merely computed as zero.
	EndMomentsZero bool

	cases []loadCase
}

// loadCase keeps the parameters needed to evaluate the bending moment
// at an arbitrary position for one elementary load case.
type loadCase struct {
	pattern LoadPattern
	f       float64 // point load magnitude
	q       float64 // line load intensity
	a       float64 // point load offset from support A
	ma      float64
	mf      float64
	ra      float64
}

// Fields exposes the result as named scalars so a reporting caller can
// format a table without depending on the struct layout.
func (r *DemandResult) Fields() map[string]float64 {
	return map[string]float64{
		"M_A": r.MA,
		"M_B": r.MB,
		"M_F": r.MF,
		"R_A": r.RA,
		"R_B": r.RB,
	}
}

// MomentAt evaluates the bending moment at position x from support A,
// 0 ≤ x ≤ L. For superposed results the contributions of all component
// load cases are summed.
//
// For a point load the moment is piecewise linear:
//
//	M(x) = M_A + R_A·x             for x ≤ a
//	M(x) = M_F + (R_A − F)·(x − a) for x ≥ a
//
// For a uniform load M(x) = M_A + R_A·x − q·x²/2.
func (r *DemandResult) MomentAt(x float64) (float64, error) {
	if x < 0 || x > r.Span {
		return 0, calcerr.InvalidGeometry.Here().
			WithMessagef("position x=%g outside span [0, %g]", x, r.Span).
			WithValue("x", x)
	}

	var m float64
	for _, c := range r.cases {
		switch c.pattern {
		case UniformDistributed:
			m += c.ma + c.ra*x - c.q*x*x/2
		default:
			if x <= c.a {
				m += c.ma + c.ra*x
			} else {
				m += c.mf + (c.ra-c.f)*(x-c.a)
			}
		}
	}
	return m, nil
}

// checkPointLoadDomain validates the shared (F, a, L) domain for the
// single point load cases.
func checkPointLoadDomain(f, a, l float64) error {
	if l <= 0 {
		return calcerr.InvalidGeometry.Here().
			WithMessagef("span must be positive, got L=%g", l).
			WithValue("L", l)
	}
	if a <= 0 || a >= l {
		return calcerr.InvalidGeometry.Here().
			WithMessagef("load offset must satisfy 0 < a < L, got a=%g, L=%g", a, l).
			WithValue("a", a).
			WithValue("L", l)
	}
	if f < 0 {
		return calcerr.InvalidLoad.Here().
			WithMessagef("point load magnitude must be non-negative, got F=%g", f).
			WithValue("F", f)
	}
	return nil
}

// checkUniformLoadDomain validates the shared (q, L) domain for the
// uniform load cases.
func checkUniformLoadDomain(q, l float64) error {
	if l <= 0 {
		return calcerr.InvalidGeometry.Here().
			WithMessagef("span must be positive, got L=%g", l).
			WithValue("L", l)
	}
	if q < 0 {
		return calcerr.InvalidLoad.Here().
			WithMessagef("line load intensity must be non-negative, got q=%g", q).
			WithValue("q", q)
	}
	return nil
}

// checkEquilibrium asserts R_A + R_B equals the total applied load.
// A violation is an engine defect, not a recoverable input condition.
func checkEquilibrium(ra, rb, total float64) error {
	tol := equilibriumRelTol * math.Max(math.Abs(total), 1)
	if math.Abs(ra+rb-total) > tol {
		return calcerr.EquilibriumViolation.Here().
			WithMessagef("R_A + R_B = %g does not balance applied load %g", ra+rb, total).
			WithValue("R_A", ra).
			WithValue("R_B", rb)
	}
	return nil
}

// FixedFixedPointLoad solves a fixed-fixed beam with a single point
// load F at offset a from support A.
//
//	M_A = −F·a·b²/L²   M_B = −F·a²·b/L²   M_F = 2·F·a²·b²/L³
//	R_A = F·(3a+b)·b²/L³   R_B = F·(a+3b)·a²/L³
func FixedFixedPointLoad(f, a, l float64) (*DemandResult, error) {
	if err := checkPointLoadDomain(f, a, l); err != nil {
		return nil, err
	}

	b := l - a
	r := &DemandResult{
		Support: FixedFixed,
		Pattern: SinglePoint,
		Span:    l,
		MA:      -f * a * b * b / (l * l),
		MB:      -f * a * a * b / (l * l),
		MF:      2 * f * a * a * b * b / (l * l * l),
		RA:      f * (3*a + b) * b * b / (l * l * l),
		RB:      f * (a + 3*b) * a * a / (l * l * l),
	}
	if err := checkEquilibrium(r.RA, r.RB, f); err != nil {
		return nil, err
	}

	r.cases = []loadCase{{pattern: SinglePoint, f: f, a: a, ma: r.MA, mf: r.MF, ra: r.RA}}
	return r, nil
}

// FixedFixedUniformLoad solves a fixed-fixed beam under a uniform line
// load q over the full span.
//
//	M_A = M_B = −q·L²/12   M_center = q·L²/24   R_A = R_B = q·L/2
func FixedFixedUniformLoad(q, l float64) (*DemandResult, error) {
	if err := checkUniformLoadDomain(q, l); err != nil {
		return nil, err
	}

	r := &DemandResult{
		Support: FixedFixed,
		Pattern: UniformDistributed,
		Span:    l,
		MA:      -q * l * l / 12,
		MB:      -q * l * l / 12,
		MF:      q * l * l / 24,
		RA:      q * l / 2,
		RB:      q * l / 2,
	}
	r.cases = []loadCase{{pattern: UniformDistributed, q: q, ma: r.MA, mf: r.MF, ra: r.RA}}
	return r, nil
}

// PinnedPinnedPointLoad solves a pinned-pinned beam with a single point
// load F at offset a from support A. End moments are identically zero
// by the statics of a pinned support; they are asserted by construction,
// not computed.
//
//	M_F = F·a·b/L   R_A = F·b/L   R_B = F·a/L
func PinnedPinnedPointLoad(f, a, l float64) (*DemandResult, error) {
	if err := checkPointLoadDomain(f, a, l); err != nil {
		return nil, err
	}

	b := l - a
	r := &DemandResult{
		Support:        PinnedPinned,
		Pattern:        SinglePoint,
		Span:           l,
		MF:             f * a * b / l,
		RA:             f * b / l,
		RB:             f * a / l,
		EndMomentsZero: true,
	}
	if err := checkEquilibrium(r.RA, r.RB, f); err != nil {
		return nil, err
	}

	r.cases = []loadCase{{pattern: SinglePoint, f: f, a: a, mf: r.MF, ra: r.RA}}
	return r, nil
}

// PinnedPinnedUniformLoad solves a pinned-pinned beam under a uniform
// line load q over the full span.
//
//	M_center = q·L²/8   R_A = R_B = q·L/2
func PinnedPinnedUniformLoad(q, l float64) (*DemandResult, error) {
	if err := checkUniformLoadDomain(q, l); err != nil {
		return nil, err
	}

	r := &DemandResult{
		Support:        PinnedPinned,
		Pattern:        UniformDistributed,
		Span:           l,
		MF:             q * l * l / 8,
		RA:             q * l / 2,
		RB:             q * l / 2,
		EndMomentsZero: true,
	}
	r.cases = []loadCase{{pattern: UniformDistributed, q: q, mf: r.MF, ra: r.RA}}
	return r, nil
}
