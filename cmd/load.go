package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexchoi94/tscheck/internal/kds"
)

var (
	loadDead float64
	loadLive float64
	loadAll  bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Calculate the factored construction load",
	Long: `Apply the construction-stage strength-design combinations
(1.4D and 1.2D + 1.6L) to unfactored dead and live effects and report
the governing value. The inputs may be line loads, moments or shears;
the factors are linear either way.

Examples:
  # Factored line load from 17.28 kN/m dead and 9.0 kN/m live
  tscheck load --dead 17.28 --live 9.0

  # Show every combination
  tscheck load --dead 17.28 --live 9.0 --all`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Unfactored dead effect (D)")
	loadCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Unfactored live effect (L)")
	loadCmd.Flags().BoolVarP(&loadAll, "all", "a", false, "Show all load combination results")
}

func runLoad(cmd *cobra.Command, args []string) error {
	if loadDead == 0 && loadLive == 0 {
		fmt.Println("Error: Please provide at least one unfactored effect.")
		fmt.Println("Use 'tscheck load --help' for usage information.")
		return nil
	}

	governing, combo := kds.Governing(loadDead, loadLive, kds.StrengthCombinations)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          FACTORED CONSTRUCTION LOAD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED EFFECTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Dead (D):\t%.2f\n", loadDead)
	fmt.Fprintf(w, "  Live (L):\t%.2f\n", loadLive)
	w.Flush()
	fmt.Println()

	if loadAll {
		fmt.Println("ALL COMBINATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, c := range kds.StrengthCombinations {
			marker := ""
			if c.ID == combo.ID {
				marker = "  ◄ governing"
			}
			fmt.Fprintf(w, "  %s:\t%s\t= %.2f%s\n", c.ID, c.Description, c.Factor(loadDead, loadLive), marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  GOVERNING (%s): %.2f\n", combo.Description, governing)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	return nil
}
