package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexchoi94/tscheck/internal/beam"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Beam demand analysis (moments and reactions)",
	Long: `Compute end moments, field moment and support reactions for a
single-span beam.

Subcommands:
  point     - single point load
  twopoint  - two point loads (superposition of two single-load cases)
  udl       - uniform distributed load

Sign convention: load magnitudes are non-negative and act downward,
reactions are positive upward, moments are positive sagging.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}

// printDemand renders a DemandResult the same way for all beam
// subcommands, with optional M(x) samples.
func printDemand(title string, r *beam.DemandResult, at []float64) error {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if r.EndMomentsZero {
		fmt.Fprintf(w, "  End moments (M_A, M_B):\tzero (pinned supports)\n")
	} else {
		fmt.Fprintf(w, "  End moment at A (M_A):\t%.2f kN·m\n", r.MA)
		fmt.Fprintf(w, "  End moment at B (M_B):\t%.2f kN·m\n", r.MB)
	}
	fmt.Fprintf(w, "  Field moment (M_F):\t%.2f kN·m\n", r.MF)
	fmt.Fprintf(w, "  Reaction at A (R_A):\t%.2f kN\n", r.RA)
	fmt.Fprintf(w, "  Reaction at B (R_B):\t%.2f kN\n", r.RB)
	w.Flush()

	if len(at) > 0 {
		fmt.Println()
		fmt.Println("BENDING MOMENT AT REQUESTED POSITIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, x := range at {
			m, err := r.MomentAt(x)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  M(x = %.2f m):\t%.2f kN·m\n", x, m)
		}
		w.Flush()
	}
	fmt.Println()
	return nil
}

func parseSupportFlag(s string) (beam.SupportCondition, error) {
	return beam.ParseSupportCondition(s)
}
