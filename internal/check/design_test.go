package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchoi94/tscheck/internal/config"
)

// referenceInputs is the worked example: 10.8 m × 10.2 m bay, 200 mm
// slab, two Y girders framing into fixed-ended X girders.
func referenceInputs() *config.DesignInputs {
	return &config.DesignInputs{
		Project:              "reference bay",
		XSpan:                10.8,
		YSpan:                10.2,
		SlabThickness:        0.2,
		ConstructionLiveLoad: 2.5,
		ConcreteDensity:      24.0,
		NumYGirders:          2,
		XSupportCondition:    "fixed",
		YSupportCondition:    "pinned",
		Angle:                config.AngleInputs{Leg: 100, Thickness: 10, Fy: 235, Es: 200000},
		Web:                  config.WebInputs{ClearHeight: 500, RebarArea: 112.64, RebarSpacing: 100},
	}
}

func TestRunReferenceBay(t *testing.T) {
	rep, err := Run(referenceInputs())
	require.NoError(t, err)

	// Load takedown: tributary 10.8/3 m, D = 0.2·24·3.6, L = 2.5·3.6,
	// governing w = 1.2D + 1.6L.
	assert.InDelta(t, 3.6, rep.TributaryWidth, 1e-9)
	assert.InDelta(t, 17.28, rep.DeadLine, 1e-9)
	assert.InDelta(t, 9.0, rep.LiveLine, 1e-9)
	assert.Equal(t, "1.2D + 1.6L", rep.Combination.Description)
	assert.InDelta(t, 35.136, rep.FactoredLine, 1e-6)

	// Y girder, pinned, uniform: M = wL²/8, V = wL/2.
	assert.InDelta(t, 456.94, rep.MuY, 0.01)
	assert.InDelta(t, 179.19, rep.VuY, 0.01)

	// X girder: P = w·y_span at the third points of a fixed-fixed span.
	assert.InDelta(t, 358.39, rep.PointLoad, 0.01)
	require.Len(t, rep.PointPositions, 2)
	assert.InDelta(t, 3.6, rep.PointPositions[0], 1e-9)
	assert.InDelta(t, 7.2, rep.PointPositions[1], 1e-9)

	// Governing X moment is the hogging end moment, 2.4·P for the
	// symmetric third-point arrangement; mid-span sagging is P·L/9.
	assert.InDelta(t, 860.13, rep.MuX, 0.01)
	mid, err := rep.XDemand.MomentAt(10.8 / 2)
	require.NoError(t, err)
	assert.InDelta(t, rep.PointLoad*10.8/9, mid, 1e-6)
	assert.InDelta(t, 358.39, rep.VuX, 0.01)

	// Capacity, Fy = 235: M_n = 235·Z_x, V_n = 0.6·235·A_w.
	assert.InDelta(t, 479.87, rep.Capacity.Mn, 0.1)
	assert.InDelta(t, 158.82, rep.Capacity.Vn, 0.1)

	// Weld reference values from the governing shear (X girder).
	assert.InDelta(t, rep.VuX/rep.Capacity.Props.LeverArm, rep.Weld.ShearFlow, 1e-9)
	assert.InDelta(t, rep.Weld.ShearFlow*100, rep.Weld.TransverseForce, 1e-9)

	// Four checks, in (Y flexure, Y shear, X flexure, X shear) order.
	require.Len(t, rep.Checks, 4)
	assert.Equal(t, OK, rep.Checks[0].Verdict)   // 456.94/479.87
	assert.Equal(t, Fail, rep.Checks[1].Verdict) // 179.19/158.82
	assert.Equal(t, Fail, rep.Checks[2].Verdict) // 860.13/479.87
	assert.Equal(t, Fail, rep.Checks[3].Verdict) // 358.39/158.82
	assert.False(t, rep.AllOK)
}

func TestRunSmallBayAllOK(t *testing.T) {
	in := &config.DesignInputs{
		XSpan:                3.0,
		YSpan:                3.0,
		SlabThickness:        0.15,
		ConstructionLiveLoad: 1.5,
		ConcreteDensity:      24.0,
		NumYGirders:          1,
		XSupportCondition:    "pinned",
		YSupportCondition:    "pinned",
		Angle:                config.AngleInputs{Leg: 100, Thickness: 10, Fy: 355, Es: 200000},
		Web:                  config.WebInputs{ClearHeight: 500, RebarArea: 112.64, RebarSpacing: 100},
	}

	rep, err := Run(in)
	require.NoError(t, err)

	// w = 1.2·(0.15·24·1.5) + 1.6·(1.5·1.5) = 10.08 kN/m
	assert.InDelta(t, 10.08, rep.FactoredLine, 1e-9)
	// Single girder: one point load at mid-span.
	require.Len(t, rep.PointPositions, 1)
	assert.InDelta(t, 1.5, rep.PointPositions[0], 1e-9)
	// Pinned single point at center: M = P·L/4.
	assert.InDelta(t, rep.PointLoad*3.0/4, rep.MuX, 1e-6)

	for _, c := range rep.Checks {
		assert.Equal(t, OK, c.Verdict, c.Label())
	}
	assert.True(t, rep.AllOK)
}

func TestRunGeneralizesGirderCount(t *testing.T) {
	in := referenceInputs()
	in.NumYGirders = 4

	rep, err := Run(in)
	require.NoError(t, err)

	require.Len(t, rep.PointPositions, 4)
	assert.InDelta(t, 10.8/5, rep.PointPositions[0], 1e-9)
	assert.InDelta(t, 4*10.8/5, rep.PointPositions[3], 1e-9)
	// Four equal loads: total reaction 4P split symmetrically.
	assert.InDelta(t, 2*rep.PointLoad, rep.VuX, 1e-6)
}

func TestRunRejectsInvalidInputs(t *testing.T) {
	in := referenceInputs()
	in.XSpan = 0
	_, err := Run(in)
	assert.Error(t, err)

	in = referenceInputs()
	in.XSupportCondition = "cantilever"
	_, err = Run(in)
	assert.Error(t, err)
}
