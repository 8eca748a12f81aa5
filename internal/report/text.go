// Package report renders a construction-load check record as a text,
// PDF or spreadsheet document. It consumes the result records only;
// the engines stay free of I/O.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexchoi94/tscheck/internal/check"
)

const rule = "───────────────────────────────────────────────────────────────"

// WriteText renders the check report as plain text tables.
func WriteText(w io.Writer, rep *check.DesignReport) error {
	in := rep.Inputs

	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w, "     TEMPORARY COMPOSITE BEAM - CONSTRUCTION LOAD CHECK")
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)

	if in.Project != "" {
		fmt.Fprintf(w, "Project: %s\n\n", in.Project)
	}

	fmt.Fprintln(w, "INPUT DATA:")
	fmt.Fprintln(w, rule)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  X span:\t%.2f m (%s)\n", in.XSpan, in.XSupportCondition)
	fmt.Fprintf(tw, "  Y span:\t%.2f m (%s)\n", in.YSpan, in.YSupportCondition)
	fmt.Fprintf(tw, "  Slab thickness:\t%.3f m\n", in.SlabThickness)
	fmt.Fprintf(tw, "  Construction live load:\t%.2f kN/m²\n", in.ConstructionLiveLoad)
	fmt.Fprintf(tw, "  Concrete density:\t%.1f kN/m³\n", in.ConcreteDensity)
	fmt.Fprintf(tw, "  Y girders:\t%d\n", in.NumYGirders)
	fmt.Fprintf(tw, "  Angle:\tL%.0fx%.0f, Fy = %.0f MPa\n", in.Angle.Leg, in.Angle.Thickness, in.Angle.Fy)
	fmt.Fprintf(tw, "  Web:\th = %.0f mm, A_b = %.1f mm² @ %.0f mm\n",
		in.Web.ClearHeight, in.Web.RebarArea, in.Web.RebarSpacing)
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "FACTORED LOADS:")
	fmt.Fprintln(w, rule)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Tributary width:\t%.3f m\n", rep.TributaryWidth)
	fmt.Fprintf(tw, "  Dead line load (D):\t%.2f kN/m\n", rep.DeadLine)
	fmt.Fprintf(tw, "  Live line load (L):\t%.2f kN/m\n", rep.LiveLine)
	fmt.Fprintf(tw, "  Governing combination:\t%s\n", rep.Combination.Description)
	fmt.Fprintf(tw, "  Factored line load (w):\t%.2f kN/m\n", rep.FactoredLine)
	fmt.Fprintf(tw, "  X girder point load (P):\t%.2f kN\n", rep.PointLoad)
	fmt.Fprintf(tw, "  Load positions:\t")
	for i, p := range rep.PointPositions {
		if i > 0 {
			fmt.Fprintf(tw, ", ")
		}
		fmt.Fprintf(tw, "%.2f m", p)
	}
	fmt.Fprintln(tw)
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "DEMAND:")
	fmt.Fprintln(w, rule)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Y girder Mu:\t%.2f kN·m\n", rep.MuY)
	fmt.Fprintf(tw, "  Y girder Vu:\t%.2f kN\n", rep.VuY)
	fmt.Fprintf(tw, "  X girder Mu:\t%.2f kN·m\n", rep.MuX)
	fmt.Fprintf(tw, "  X girder Vu:\t%.2f kN\n", rep.VuX)
	tw.Flush()
	fmt.Fprintln(w)

	props := rep.Capacity.Props
	fmt.Fprintln(w, "SECTION PROPERTIES:")
	fmt.Fprintln(w, rule)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Angle area (A_angle):\t%.1f mm²\n", props.AngleArea)
	fmt.Fprintf(tw, "  Flange area (A_f):\t%.1f mm²\n", props.FlangeArea)
	fmt.Fprintf(tw, "  Centroid offset (c):\t%.2f mm\n", props.Centroid)
	fmt.Fprintf(tw, "  Lever arm (d):\t%.2f mm\n", props.LeverArm)
	fmt.Fprintf(tw, "  Plastic modulus (Z_x):\t%.0f mm³\n", props.PlasticModulus)
	fmt.Fprintf(tw, "  Equivalent web (t_w):\t%.3f mm\n", props.WebThickness)
	fmt.Fprintf(tw, "  Web area (A_w):\t%.1f mm²\n", props.WebArea)
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "CAPACITY:")
	fmt.Fprintln(w, rule)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Flexural capacity (M_n):\t%.2f kN·m\n", rep.Capacity.Mn)
	fmt.Fprintf(tw, "  Shear capacity (V_n):\t%.2f kN\n", rep.Capacity.Vn)
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "CHECKS:")
	fmt.Fprintln(w, rule)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Limit state\tDemand\tCapacity\tRatio\tVerdict\n")
	for _, c := range rep.Checks {
		fmt.Fprintf(tw, "  %s\t%.2f\t%.2f\t%.3f\t%s\n",
			c.Label(), c.Demand, c.Capacity, c.Ratio, c.Verdict)
	}
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "WELD INTERFACE (reference for weld design):")
	fmt.Fprintln(w, rule)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Shear flow (q):\t%.4f kN/mm\n", rep.Weld.ShearFlow)
	fmt.Fprintf(tw, "  Force per connector (T_b):\t%.2f kN\n", rep.Weld.TransverseForce)
	tw.Flush()
	fmt.Fprintln(w)

	status := "ALL CHECKS SATISFIED"
	if !rep.AllOK {
		status = "ONE OR MORE CHECKS FAILED"
	}
	fmt.Fprintf(w, "  ╔═════════════════════════════════════════╗\n")
	fmt.Fprintf(w, "  ║  %s\n", status)
	fmt.Fprintf(w, "  ╚═════════════════════════════════════════╝\n")
	fmt.Fprintln(w)

	return nil
}
