package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexchoi94/tscheck/internal/kds"
	"github.com/alexchoi94/tscheck/internal/section"
)

var (
	capLeg       float64
	capThickness float64
	capFy        float64
	capEs        float64
	capHeight    float64
	capRebarArea float64
	capSpacing   float64
	capVu        float64
)

var sectionCapacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Section properties and capacities of the composite section",
	Long: `Compute the derived section properties, the plastic moment capacity
and the web shear capacity of the composite angle/rebar section.
With --vu the weld interface shear flow for that demand is reported.

Examples:
  # L100x10 angles, Fy 355, 500 mm clear web, D12 pairs @ 100 mm
  tscheck section capacity --leg 100 --thickness 10 --fy 355 \
      --clear-height 500 --rebar-area 112.64 --spacing 100

  # Also report shear flow for Vu = 180 kN
  tscheck section capacity --leg 100 --thickness 10 --fy 355 \
      --clear-height 500 --rebar-area 112.64 --spacing 100 --vu 180`,
	RunE: runSectionCapacity,
}

func init() {
	sectionCmd.AddCommand(sectionCapacityCmd)

	sectionCapacityCmd.Flags().Float64VarP(&capLeg, "leg", "b", 0, "Angle leg length b (mm) [required]")
	sectionCapacityCmd.Flags().Float64VarP(&capThickness, "thickness", "t", 0, "Angle thickness t (mm) [required]")
	sectionCapacityCmd.Flags().Float64Var(&capFy, "fy", 235, "Steel yield strength Fy (MPa)")
	sectionCapacityCmd.Flags().Float64Var(&capEs, "es", kds.Es, "Steel elastic modulus Es (MPa)")
	sectionCapacityCmd.Flags().Float64Var(&capHeight, "clear-height", 0, "Clear web height h (mm) [required]")
	sectionCapacityCmd.Flags().Float64Var(&capRebarArea, "rebar-area", 0, "Web rebar area per leg A_b (mm²) [required]")
	sectionCapacityCmd.Flags().Float64Var(&capSpacing, "spacing", 0, "Web rebar spacing s (mm) [required]")
	sectionCapacityCmd.Flags().Float64Var(&capVu, "vu", 0, "Optional shear demand Vu (kN) for weld shear flow")

	sectionCapacityCmd.MarkFlagRequired("leg")
	sectionCapacityCmd.MarkFlagRequired("thickness")
	sectionCapacityCmd.MarkFlagRequired("clear-height")
	sectionCapacityCmd.MarkFlagRequired("rebar-area")
	sectionCapacityCmd.MarkFlagRequired("spacing")
}

func runSectionCapacity(cmd *cobra.Command, args []string) error {
	composite := section.Composite{
		Angle:        section.Angle{Leg: capLeg, Thickness: capThickness},
		ClearHeight:  capHeight,
		RebarArea:    capRebarArea,
		RebarSpacing: capSpacing,
		Fy:           capFy,
		Es:           capEs,
	}

	result, err := composite.Capacity()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COMPOSITE ANGLE/REBAR SECTION CAPACITY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Angle:\tL%.0fx%.0f\n", capLeg, capThickness)
	fmt.Fprintf(w, "  Fy:\t%.1f MPa\n", capFy)
	fmt.Fprintf(w, "  Clear web height:\t%.0f mm\n", capHeight)
	fmt.Fprintf(w, "  Web rebar:\tA_b = %.2f mm² @ %.0f mm\n", capRebarArea, capSpacing)
	w.Flush()
	fmt.Println()

	props := result.Props
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Angle area (A_angle):\t%.1f mm²\n", props.AngleArea)
	fmt.Fprintf(w, "  Flange area (A_f):\t%.1f mm²\n", props.FlangeArea)
	fmt.Fprintf(w, "  Centroid offset (c):\t%.2f mm\n", props.Centroid)
	fmt.Fprintf(w, "  Inner offset (c_inner):\t%.2f mm\n", props.CentroidInner)
	fmt.Fprintf(w, "  Lever arm (d):\t%.2f mm\n", props.LeverArm)
	fmt.Fprintf(w, "  Plastic modulus (Z_x):\t%.0f mm³\n", props.PlasticModulus)
	fmt.Fprintf(w, "  Equivalent web (t_w):\t%.3f mm\n", props.WebThickness)
	fmt.Fprintf(w, "  Web area (A_w):\t%.1f mm²\n", props.WebArea)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  M_n = %.2f kN·m\n", result.Mn)
	fmt.Printf("  ║  V_n = %.2f kN\n", result.Vn)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if capVu > 0 {
		weld, err := composite.WeldShear(capVu)
		if err != nil {
			return err
		}
		fmt.Println("WELD INTERFACE (reference for weld design):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Shear demand (V_u):\t%.2f kN\n", capVu)
		fmt.Fprintf(w, "  Shear flow (q):\t%.4f kN/mm\n", weld.ShearFlow)
		fmt.Fprintf(w, "  Force per connector (T_b):\t%.2f kN\n", weld.TransverseForce)
		w.Flush()
		fmt.Println()
	}

	return nil
}
