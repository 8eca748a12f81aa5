// Package config loads and validates the design-input document for a
// construction-stage check. The document is YAML; every fault found in
// one pass is reported together.
package config

import (
	"os"

	"github.com/ansel1/merry"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// DesignInputs is the design-variables document. Spans in m, loads in
// kN and kN/m², section dimensions in mm, stresses in MPa.
type DesignInputs struct {
	Project string `yaml:"project"`

	// Design conditions
	XSpan                float64 `yaml:"x_span"`                 // column-to-column span in X direction (m)
	YSpan                float64 `yaml:"y_span"`                 // column-to-column span in Y direction (m)
	SlabThickness        float64 `yaml:"slab_thickness"`         // m
	ConstructionLiveLoad float64 `yaml:"construction_live_load"` // kN/m²
	ConcreteDensity      float64 `yaml:"concrete_density"`       // kN/m³

	// Framing
	NumYGirders       int    `yaml:"num_y_girders"`       // Y-direction girder count; sets tributary width and X point loads
	XSupportCondition string `yaml:"x_support_condition"` // "pinned" or "fixed"
	YSupportCondition string `yaml:"y_support_condition"` // "pinned" or "fixed"

	// Composite section
	Angle AngleInputs `yaml:"angle"`
	Web   WebInputs   `yaml:"web"`
}

// AngleInputs describes the flange angles.
type AngleInputs struct {
	Leg       float64 `yaml:"leg"`       // mm
	Thickness float64 `yaml:"thickness"` // mm
	Fy        float64 `yaml:"fy"`        // MPa
	Es        float64 `yaml:"es"`        // MPa; reserved for deflection checks
}

// WebInputs describes the rebar web between the flange angle groups.
type WebInputs struct {
	ClearHeight  float64 `yaml:"clear_height"`  // mm
	RebarArea    float64 `yaml:"rebar_area"`    // mm² per web leg
	RebarSpacing float64 `yaml:"rebar_spacing"` // mm
}

func validSupport(s string) bool {
	return s == "pinned" || s == "fixed"
}

// Validate reports every invalid field at once.
func (in *DesignInputs) Validate() error {
	var result *multierror.Error

	if in.XSpan <= 0 {
		result = multierror.Append(result, merry.Errorf("x_span must be positive, got %g", in.XSpan))
	}
	if in.YSpan <= 0 {
		result = multierror.Append(result, merry.Errorf("y_span must be positive, got %g", in.YSpan))
	}
	if in.SlabThickness <= 0 {
		result = multierror.Append(result, merry.Errorf("slab_thickness must be positive, got %g", in.SlabThickness))
	}
	if in.ConstructionLiveLoad < 0 {
		result = multierror.Append(result, merry.Errorf("construction_live_load must be non-negative, got %g", in.ConstructionLiveLoad))
	}
	if in.ConcreteDensity <= 0 {
		result = multierror.Append(result, merry.Errorf("concrete_density must be positive, got %g", in.ConcreteDensity))
	}
	if in.NumYGirders < 1 {
		result = multierror.Append(result, merry.Errorf("num_y_girders must be at least 1, got %d", in.NumYGirders))
	}
	if !validSupport(in.XSupportCondition) {
		result = multierror.Append(result, merry.Errorf("x_support_condition must be 'pinned' or 'fixed', got %q", in.XSupportCondition))
	}
	if !validSupport(in.YSupportCondition) {
		result = multierror.Append(result, merry.Errorf("y_support_condition must be 'pinned' or 'fixed', got %q", in.YSupportCondition))
	}
	if in.Angle.Leg <= 0 {
		result = multierror.Append(result, merry.Errorf("angle.leg must be positive, got %g", in.Angle.Leg))
	}
	if in.Angle.Thickness <= 0 {
		result = multierror.Append(result, merry.Errorf("angle.thickness must be positive, got %g", in.Angle.Thickness))
	}
	if in.Angle.Fy <= 0 {
		result = multierror.Append(result, merry.Errorf("angle.fy must be positive, got %g", in.Angle.Fy))
	}
	if in.Web.ClearHeight <= 0 {
		result = multierror.Append(result, merry.Errorf("web.clear_height must be positive, got %g", in.Web.ClearHeight))
	}
	if in.Web.RebarArea <= 0 {
		result = multierror.Append(result, merry.Errorf("web.rebar_area must be positive, got %g", in.Web.RebarArea))
	}
	if in.Web.RebarSpacing <= 0 {
		result = multierror.Append(result, merry.Errorf("web.rebar_spacing must be positive, got %g", in.Web.RebarSpacing))
	}

	return result.ErrorOrNil()
}

// Parse unmarshals and validates a design-input document.
func Parse(data []byte) (*DesignInputs, error) {
	var in DesignInputs
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, merry.Wrap(err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}

// Load reads a design-input document from a file.
func Load(path string) (*DesignInputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, merry.Wrap(err)
	}
	return Parse(data)
}
