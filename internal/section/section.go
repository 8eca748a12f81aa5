// Package section computes capacity for the temporary composite
// support-beam cross-section: two pairs of equal-leg steel angles
// forming the top and bottom flanges, joined by a bilateral rebar web.
//
// All formulas are closed-form; there is no iteration. Dimensions are
// in mm, stresses in MPa. Moment capacities come back in kN·m and shear
// capacities in kN.
package section

import (
	"github.com/alexchoi94/tscheck/internal/calcerr"
	"github.com/alexchoi94/tscheck/internal/kds"
)

// Angle describes one equal-leg angle of the flange group.
type Angle struct {
	Leg       float64 // b - leg length (mm)
	Thickness float64 // t - leg thickness (mm)
}

// Area returns the cross-sectional area of a single angle, with the
// corner overlap of the two legs counted once: A = 2·b·t − t².
func (a Angle) Area() float64 {
	return 2*a.Leg*a.Thickness - a.Thickness*a.Thickness
}

// CentroidOffset returns the distance from the outer leg face to the
// angle centroid: c = t·[(b−t)·(t/2) + b·(b/2)] / A.
func (a Angle) CentroidOffset() float64 {
	b, t := a.Leg, a.Thickness
	return t * ((b-t)*(t/2) + b*(b/2)) / a.Area()
}

// Composite describes the full composite section. Two angles per
// flange, upper and lower flanges symmetric, web formed by rebar pairs
// at a constant spacing.
type Composite struct {
	Angle        Angle
	ClearHeight  float64 // h_clear - clear distance between flange angle groups (mm)
	RebarArea    float64 // A_b - area of one rebar web leg (mm²)
	RebarSpacing float64 // s - longitudinal rebar spacing (mm)
	Fy           float64 // yield strength (MPa)
	Es           float64 // elastic modulus (MPa); reserved for deflection checks
}

// Validate checks the section inputs.
func (c Composite) Validate() error {
	switch {
	case c.Angle.Leg <= 0:
		return calcerr.InvalidGeometry.Here().
			WithMessagef("angle leg length must be positive, got b=%g", c.Angle.Leg).
			WithValue("b", c.Angle.Leg)
	case c.Angle.Thickness <= 0:
		return calcerr.InvalidGeometry.Here().
			WithMessagef("angle thickness must be positive, got t=%g", c.Angle.Thickness).
			WithValue("t", c.Angle.Thickness)
	case c.Angle.Thickness >= c.Angle.Leg:
		return calcerr.InvalidGeometry.Here().
			WithMessagef("angle thickness t=%g must be less than leg length b=%g", c.Angle.Thickness, c.Angle.Leg)
	case c.ClearHeight <= 0:
		return calcerr.InvalidGeometry.Here().
			WithMessagef("clear web height must be positive, got h=%g", c.ClearHeight).
			WithValue("h_clear", c.ClearHeight)
	case c.RebarArea <= 0:
		return calcerr.InvalidGeometry.Here().
			WithMessagef("rebar area must be positive, got A_b=%g", c.RebarArea).
			WithValue("A_b", c.RebarArea)
	case c.RebarSpacing <= 0:
		return calcerr.InvalidGeometry.Here().
			WithMessagef("rebar spacing must be positive, got s=%g", c.RebarSpacing).
			WithValue("s", c.RebarSpacing)
	case c.Fy <= 0:
		return calcerr.InvalidGeometry.Here().
			WithMessagef("yield strength must be positive, got Fy=%g", c.Fy).
			WithValue("Fy", c.Fy)
	}
	return nil
}

// Properties holds the derived section quantities. They are computed
// once from the geometry and never mutated afterwards.
type Properties struct {
	AngleArea      float64 // A_angle - single angle area (mm²)
	FlangeArea     float64 // A_f - two angles per flange (mm²)
	Centroid       float64 // c - centroid offset from outer leg face (mm)
	CentroidInner  float64 // c_inner = c − t (mm)
	LeverArm       float64 // d - centroid-to-centroid flange distance (mm)
	PlasticModulus float64 // Z_x = A_f·d, flange-dominated (mm³)
	WebThickness   float64 // t_w = 2·A_b/s - equivalent web thickness (mm)
	WebArea        float64 // A_w = t_w·h_clear (mm²)
}

// Fields exposes the properties as named scalars for report formatting.
func (p *Properties) Fields() map[string]float64 {
	return map[string]float64{
		"A_angle": p.AngleArea,
		"A_f":     p.FlangeArea,
		"c":       p.Centroid,
		"c_inner": p.CentroidInner,
		"d":       p.LeverArm,
		"Z_x":     p.PlasticModulus,
		"t_w":     p.WebThickness,
		"A_w":     p.WebArea,
	}
}

// Properties derives the section quantities from the geometry.
// The web contribution to the plastic modulus is neglected: the flange
// angles dominate and the equivalent rebar web is thin.
func (c Composite) Properties() (*Properties, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	p := &Properties{}
	p.AngleArea = c.Angle.Area()
	p.FlangeArea = 2 * p.AngleArea
	p.Centroid = c.Angle.CentroidOffset()
	p.CentroidInner = p.Centroid - c.Angle.Thickness
	p.LeverArm = c.ClearHeight + 2*p.CentroidInner
	p.PlasticModulus = p.FlangeArea * p.LeverArm
	p.WebThickness = 2 * c.RebarArea / c.RebarSpacing
	p.WebArea = p.WebThickness * c.ClearHeight
	return p, nil
}

// CapacityResult holds the flexural and shear capacities of the section.
type CapacityResult struct {
	Props *Properties

	Mn float64 // nominal plastic moment capacity (kN·m)
	Vn float64 // web yield shear capacity (kN)
}

// Fields exposes the capacities as named scalars for report formatting.
func (r *CapacityResult) Fields() map[string]float64 {
	return map[string]float64{
		"M_n": r.Mn,
		"V_n": r.Vn,
	}
}

// Capacity computes the flexural and shear capacities.
//
//	M_n = F_y·Z_x          (plastic moment, flange couple)
//	V_n = 0.6·F_y·A_w      (uniform web shear at von Mises yield)
func (c Composite) Capacity() (*CapacityResult, error) {
	props, err := c.Properties()
	if err != nil {
		return nil, err
	}

	return &CapacityResult{
		Props: props,
		Mn:    c.Fy * props.PlasticModulus / 1e6, // N·mm → kN·m
		Vn:    kds.ShearYieldRatio * c.Fy * props.WebArea / 1e3, // N → kN
	}, nil
}

// WeldDemand holds the flange-to-web interface forces derived from a
// caller-supplied shear demand. These are reference values for the
// downstream weld design; the section engine renders no verdict on them.
type WeldDemand struct {
	ShearFlow       float64 // q = V_u/d - longitudinal force per unit length (kN/mm)
	TransverseForce float64 // T_b = q·s - force per rebar connector (kN)
}

// WeldShear computes the interface shear flow and per-connector force
// for the given shear demand vu (kN).
func (c Composite) WeldShear(vu float64) (*WeldDemand, error) {
	if vu < 0 {
		return nil, calcerr.InvalidLoad.Here().
			WithMessagef("shear demand must be non-negative, got Vu=%g", vu).
			WithValue("Vu", vu)
	}
	props, err := c.Properties()
	if err != nil {
		return nil, err
	}

	q := vu / props.LeverArm
	return &WeldDemand{
		ShearFlow:       q,
		TransverseForce: q * c.RebarSpacing,
	}, nil
}
