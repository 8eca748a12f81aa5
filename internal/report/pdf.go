package report

import (
	"fmt"
	"time"

	"github.com/ansel1/merry"
	"github.com/phpdave11/gofpdf"
	"github.com/powerman/structlog"

	"github.com/alexchoi94/tscheck/internal/check"
)

var log = structlog.New()

// WritePDF renders the check report as an A4 PDF document.
func WritePDF(path string, rep *check.DesignReport) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Temporary Composite Beam - Construction Load Check")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if rep.Inputs.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", rep.Inputs.Project))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	line := func(format string, args ...interface{}) {
		pdf.Cell(0, 5, fmt.Sprintf(format, args...))
		pdf.Ln(5)
	}

	in := rep.Inputs
	section("Input Data")
	line("X span: %.2f m (%s), Y span: %.2f m (%s)", in.XSpan, in.XSupportCondition, in.YSpan, in.YSupportCondition)
	line("Slab %.3f m, live load %.2f kN/m2, density %.1f kN/m3, %d Y girders",
		in.SlabThickness, in.ConstructionLiveLoad, in.ConcreteDensity, in.NumYGirders)
	line("Angle L%.0fx%.0f, Fy = %.0f MPa; web h = %.0f mm, Ab = %.1f mm2 @ %.0f mm",
		in.Angle.Leg, in.Angle.Thickness, in.Angle.Fy,
		in.Web.ClearHeight, in.Web.RebarArea, in.Web.RebarSpacing)
	pdf.Ln(4)

	section("Factored Loads")
	line("Tributary width %.3f m, D = %.2f kN/m, L = %.2f kN/m", rep.TributaryWidth, rep.DeadLine, rep.LiveLine)
	line("Governing combination %s: w = %.2f kN/m, P = %.2f kN", rep.Combination.Description, rep.FactoredLine, rep.PointLoad)
	pdf.Ln(4)

	section("Demand and Capacity")
	line("Y girder: Mu = %.2f kN-m, Vu = %.2f kN", rep.MuY, rep.VuY)
	line("X girder: Mu = %.2f kN-m, Vu = %.2f kN", rep.MuX, rep.VuX)
	line("Section: Mn = %.2f kN-m, Vn = %.2f kN (d = %.1f mm, Zx = %.0f mm3)",
		rep.Capacity.Mn, rep.Capacity.Vn, rep.Capacity.Props.LeverArm, rep.Capacity.Props.PlasticModulus)
	pdf.Ln(4)

	section("Checks")
	for _, c := range rep.Checks {
		line("%-16s demand %.2f / capacity %.2f = %.3f  %s",
			c.Label(), c.Demand, c.Capacity, c.Ratio, c.Verdict)
	}
	pdf.Ln(4)

	section("Weld Interface (reference)")
	line("Shear flow q = %.4f kN/mm, force per connector Tb = %.2f kN",
		rep.Weld.ShearFlow, rep.Weld.TransverseForce)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return merry.Wrap(err)
	}
	log.Info("report written", "path", path)
	return nil
}
