package beam

import "github.com/alexchoi94/tscheck/internal/calcerr"

// SupportCondition identifies the end-support condition of a span.
type SupportCondition int

const (
	// FixedFixed - both ends restrained against rotation, ends carry moment
	FixedFixed SupportCondition = iota
	// PinnedPinned - both ends free to rotate, end moments identically zero
	PinnedPinned
)

func (s SupportCondition) String() string {
	switch s {
	case FixedFixed:
		return "fixed-fixed"
	case PinnedPinned:
		return "pinned-pinned"
	}
	return "unknown"
}

// ParseSupportCondition maps the input-file spelling to a SupportCondition.
func ParseSupportCondition(s string) (SupportCondition, error) {
	switch s {
	case "fixed", "fixed-fixed":
		return FixedFixed, nil
	case "pinned", "pinned-pinned":
		return PinnedPinned, nil
	}
	return 0, calcerr.InvalidGeometry.Here().
		WithMessagef("support condition must be 'fixed' or 'pinned', got %q", s)
}

// LoadPattern identifies the load arrangement on a span.
type LoadPattern int

const (
	// SinglePoint - one concentrated load at offset a from support A
	SinglePoint LoadPattern = iota
	// TwoPoint - two concentrated loads, always evaluated by
	// superposition of two SinglePoint cases
	TwoPoint
	// UniformDistributed - constant line load over the full span
	UniformDistributed
)

func (p LoadPattern) String() string {
	switch p {
	case SinglePoint:
		return "single point load"
	case TwoPoint:
		return "two point loads"
	case UniformDistributed:
		return "uniform distributed load"
	}
	return "unknown"
}
