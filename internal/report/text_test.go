package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchoi94/tscheck/internal/check"
	"github.com/alexchoi94/tscheck/internal/config"
)

func testReport(t *testing.T) *check.DesignReport {
	t.Helper()
	rep, err := check.Run(&config.DesignInputs{
		Project:              "unit test bay",
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
	})
	require.NoError(t, err)
	return rep
}

func TestWriteText(t *testing.T) {
	rep := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, rep))

	out := buf.String()
	assert.Contains(t, out, "CONSTRUCTION LOAD CHECK")
	assert.Contains(t, out, "unit test bay")
	assert.Contains(t, out, "1.2D + 1.6L")
	assert.Contains(t, out, "Y-dir flexure")
	assert.Contains(t, out, "X-dir shear")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "Shear flow")
}

func TestWritePDF(t *testing.T) {
	rep := testReport(t)

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, WritePDF(path, rep))
	assert.FileExists(t, path)
}

func TestWriteXLSX(t *testing.T) {
	rep := testReport(t)

	path := filepath.Join(t.TempDir(), "results.xlsx")
	require.NoError(t, WriteXLSX(path, rep))
	assert.FileExists(t, path)
}
