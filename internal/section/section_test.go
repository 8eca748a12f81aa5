package section

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchoi94/tscheck/internal/calcerr"
)

// L100x10 flange angles, 500 mm clear web, D12 rebar pairs at 100 mm.
func testComposite() Composite {
	return Composite{
		Angle:        Angle{Leg: 100, Thickness: 10},
		ClearHeight:  500,
		RebarArea:    112.64,
		RebarSpacing: 100,
		Fy:           355,
		Es:           200000,
	}
}

func TestAngle(t *testing.T) {
	a := Angle{Leg: 100, Thickness: 10}

	// A = 2·100·10 − 10² = 1900 mm²
	assert.InDelta(t, 1900.0, a.Area(), 1e-9)
	// c = 10·[(90)(5) + 100·50]/1900 = 54500/1900
	assert.InDelta(t, 28.684, a.CentroidOffset(), 0.001)
}

func TestProperties(t *testing.T) {
	props, err := testComposite().Properties()
	require.NoError(t, err)

	assert.InDelta(t, 1900.0, props.AngleArea, 0.01)
	assert.InDelta(t, 3800.0, props.FlangeArea, 0.01)
	assert.InDelta(t, 28.684, props.Centroid, 0.001)
	assert.InDelta(t, 18.684, props.CentroidInner, 0.001)
	// d = 500 + 2·18.684
	assert.InDelta(t, 537.368, props.LeverArm, 0.001)
	// Z_x = 3800·537.368
	assert.InDelta(t, 2.042e6, props.PlasticModulus, 1e3)
	// t_w = 2·112.64/100
	assert.InDelta(t, 2.2528, props.WebThickness, 1e-6)
	// A_w = 2.2528·500
	assert.InDelta(t, 1126.4, props.WebArea, 1e-3)
}

func TestCapacity(t *testing.T) {
	result, err := testComposite().Capacity()
	require.NoError(t, err)

	// M_n = 355·2.042e6 N·mm
	assert.InDelta(t, 724.9, result.Mn, 0.1)
	// V_n = 0.6·355·1126.4 N
	assert.InDelta(t, 239.9, result.Vn, 0.1)

	fields := result.Fields()
	assert.Equal(t, result.Mn, fields["M_n"])
	assert.Equal(t, result.Vn, fields["V_n"])
}

func TestCapacityIndependentOfDemand(t *testing.T) {
	c := testComposite()
	first, err := c.Capacity()
	require.NoError(t, err)
	second, err := c.Capacity()
	require.NoError(t, err)

	assert.Equal(t, *first.Props, *second.Props)
	assert.Equal(t, first.Mn, second.Mn)
	assert.Equal(t, first.Vn, second.Vn)
}

func TestWeldShear(t *testing.T) {
	c := testComposite()

	weld, err := c.WeldShear(100)
	require.NoError(t, err)
	// q = 100/537.368 kN/mm, T_b = q·100
	assert.InDelta(t, 0.18609, weld.ShearFlow, 1e-4)
	assert.InDelta(t, 18.609, weld.TransverseForce, 1e-2)

	zero, err := c.WeldShear(0)
	require.NoError(t, err)
	assert.Zero(t, zero.ShearFlow)

	_, err = c.WeldShear(-1)
	assert.True(t, merry.Is(err, calcerr.InvalidLoad))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Composite)
	}{
		{"zero leg", func(c *Composite) { c.Angle.Leg = 0 }},
		{"negative thickness", func(c *Composite) { c.Angle.Thickness = -1 }},
		{"thickness ge leg", func(c *Composite) { c.Angle.Thickness = 100 }},
		{"zero clear height", func(c *Composite) { c.ClearHeight = 0 }},
		{"zero rebar area", func(c *Composite) { c.RebarArea = 0 }},
		{"zero spacing", func(c *Composite) { c.RebarSpacing = 0 }},
		{"zero fy", func(c *Composite) { c.Fy = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testComposite()
			tc.mutate(&c)

			err := c.Validate()
			assert.True(t, merry.Is(err, calcerr.InvalidGeometry))
			_, err = c.Properties()
			assert.Error(t, err)
			_, err = c.Capacity()
			assert.Error(t, err)
		})
	}
}

func TestPropertiesFields(t *testing.T) {
	props, err := testComposite().Properties()
	require.NoError(t, err)

	fields := props.Fields()
	assert.Len(t, fields, 8)
	assert.Equal(t, props.LeverArm, fields["d"])
	assert.Equal(t, props.PlasticModulus, fields["Z_x"])
}
