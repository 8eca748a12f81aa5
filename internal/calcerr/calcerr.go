// Package calcerr defines the error taxonomy shared by the calculation
// engines. Every engine failure is one of these classes, carrying the
// offending input via merry values so callers can report it without
// parsing messages.
package calcerr

import "github.com/ansel1/merry"

var (
	// InvalidGeometry: non-positive span, load offset outside (0, L),
	// non-positive thickness, leg length or clear height.
	InvalidGeometry = merry.New("invalid geometry")

	// InvalidLoad: negative load magnitude. The engines take downward
	// loads as non-negative magnitudes; direction is fixed by convention.
	InvalidLoad = merry.New("invalid load")

	// EquilibriumViolation signals an internal consistency assertion
	// failure (reactions not summing to the applied load). It indicates
	// an engine defect, never bad input, and is never silently corrected.
	EquilibriumViolation = merry.New("equilibrium violation")
)
