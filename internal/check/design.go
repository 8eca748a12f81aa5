package check

import (
	"math"

	"github.com/powerman/structlog"

	"github.com/alexchoi94/tscheck/internal/beam"
	"github.com/alexchoi94/tscheck/internal/config"
	"github.com/alexchoi94/tscheck/internal/kds"
	"github.com/alexchoi94/tscheck/internal/section"
)

var log = structlog.New()

// DesignReport is the full record of one construction-load check run,
// consumed by the report renderers.
type DesignReport struct {
	Inputs *config.DesignInputs

	// Load takedown
	TributaryWidth float64             // m
	DeadLine       float64             // unfactored dead line load on a Y girder (kN/m)
	LiveLine       float64             // unfactored live line load on a Y girder (kN/m)
	FactoredLine   float64             // governing factored line load w (kN/m)
	Combination    kds.LoadCombination // combination that governed w
	PointLoad      float64             // P per X-girder load point (kN)
	PointPositions []float64           // load positions along the X span (m)

	// Demand
	YDemand *beam.DemandResult
	XDemand *beam.DemandResult
	MuY     float64 // governing flexural demand magnitude, Y girder (kN·m)
	VuY     float64 // governing shear demand, Y girder (kN)
	MuX     float64 // governing flexural demand magnitude, X girder (kN·m)
	VuX     float64 // governing shear demand, X girder (kN)

	// Capacity
	Capacity *section.CapacityResult

	// Weld interface reference values from the governing shear
	Weld *section.WeldDemand

	Checks []Result
	AllOK  bool
}

// Composite builds the section model from the input document.
func Composite(in *config.DesignInputs) section.Composite {
	return section.Composite{
		Angle: section.Angle{
			Leg:       in.Angle.Leg,
			Thickness: in.Angle.Thickness,
		},
		ClearHeight:  in.Web.ClearHeight,
		RebarArea:    in.Web.RebarArea,
		RebarSpacing: in.Web.RebarSpacing,
		Fy:           in.Angle.Fy,
		Es:           in.Angle.Es,
	}
}

// Run performs the construction-load check: load takedown, demand per
// direction, section capacity and the four (direction × limit state)
// comparisons. Both directions use the same composite section.
func Run(in *config.DesignInputs) (*DesignReport, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rep := &DesignReport{Inputs: in}

	// Load takedown: the Y girders carry slab strips of equal tributary
	// width; the X girders carry the Y girder reactions as point loads.
	n := in.NumYGirders
	rep.TributaryWidth = in.XSpan / float64(n+1)
	rep.DeadLine = in.SlabThickness * in.ConcreteDensity * rep.TributaryWidth
	rep.LiveLine = in.ConstructionLiveLoad * rep.TributaryWidth
	rep.FactoredLine, rep.Combination = kds.Governing(rep.DeadLine, rep.LiveLine, kds.StrengthCombinations)
	log.Info("load takedown",
		"tributary_m", rep.TributaryWidth,
		"w_kN_per_m", rep.FactoredLine,
		"combination", rep.Combination.Description)

	ySupport, err := beam.ParseSupportCondition(in.YSupportCondition)
	if err != nil {
		return nil, err
	}
	xSupport, err := beam.ParseSupportCondition(in.XSupportCondition)
	if err != nil {
		return nil, err
	}

	// Y girder: uniform factored line load over the Y span.
	rep.YDemand, err = beam.Evaluate(ySupport, beam.UniformDistributed,
		beam.Load{Q: rep.FactoredLine}, in.YSpan)
	if err != nil {
		return nil, err
	}
	rep.MuY, err = governingMoment(rep.YDemand, nil)
	if err != nil {
		return nil, err
	}
	rep.VuY = math.Max(rep.YDemand.RA, rep.YDemand.RB)

	// X girder: one point load per Y girder at i·L/(n+1). Upper and
	// lower Y girders frame in symmetrically, so each load carries the
	// full Y span of line load.
	rep.PointLoad = rep.FactoredLine * in.YSpan
	rep.PointPositions = make([]float64, n)
	for i := 1; i <= n; i++ {
		rep.PointPositions[i-1] = float64(i) * in.XSpan / float64(n+1)
	}

	rep.XDemand, err = beam.SuperposePointLoads(xSupport, rep.PointLoad, in.XSpan, rep.PointPositions...)
	if err != nil {
		return nil, err
	}
	rep.MuX, err = governingMoment(rep.XDemand, rep.PointPositions)
	if err != nil {
		return nil, err
	}
	rep.VuX = math.Max(rep.XDemand.RA, rep.XDemand.RB)
	log.Info("demand",
		"Mu_y_kNm", rep.MuY, "Vu_y_kN", rep.VuY,
		"Mu_x_kNm", rep.MuX, "Vu_x_kN", rep.VuX)

	// Capacity is demand-independent.
	composite := Composite(in)
	rep.Capacity, err = composite.Capacity()
	if err != nil {
		return nil, err
	}

	// Weld interface reference values from the governing shear of both
	// directions; the weld verdict itself belongs to the weld design.
	rep.Weld, err = composite.WeldShear(math.Max(rep.VuX, rep.VuY))
	if err != nil {
		return nil, err
	}

	eval := NewEvaluator()
	pairs := []struct {
		direction, limitState string
		demand, capacity      float64
	}{
		{"Y", "flexure", rep.MuY, rep.Capacity.Mn},
		{"Y", "shear", rep.VuY, rep.Capacity.Vn},
		{"X", "flexure", rep.MuX, rep.Capacity.Mn},
		{"X", "shear", rep.VuX, rep.Capacity.Vn},
	}

	rep.AllOK = true
	for _, p := range pairs {
		r, err := eval.Evaluate(p.direction, p.limitState, p.demand, p.capacity)
		if err != nil {
			return nil, err
		}
		rep.Checks = append(rep.Checks, r)
		if r.Verdict == Fail {
			rep.AllOK = false
		}
		log.Info("check", "limit", r.Label(), "ratio", r.Ratio, "verdict", r.Verdict.String())
	}

	return rep, nil
}

// governingMoment probes the bending moment at both ends, mid-span and
// every load position, and returns the largest magnitude. The section
// is symmetric, so sagging and hogging are checked against the same
// capacity.
func governingMoment(r *beam.DemandResult, positions []float64) (float64, error) {
	probes := append([]float64{0, r.Span / 2, r.Span}, positions...)

	var governing float64
	for _, x := range probes {
		m, err := r.MomentAt(x)
		if err != nil {
			return 0, err
		}
		governing = math.Max(governing, math.Abs(m))
	}
	return governing, nil
}
