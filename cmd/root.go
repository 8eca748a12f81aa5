package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexchoi94/tscheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tscheck",
	Short: "Temporary Composite Support Beam Checker",
	Long: `tscheck - Temporary Steel Composite Beam Checker

A CLI tool for construction-stage strength checks of temporary
composite support beams (angle-steel flanges joined by a rebar web)
carrying fresh concrete during placement.

This tool helps structural engineers perform:
  - Beam demand analysis (fixed-fixed and pinned-pinned spans,
    point / two-point / uniform loads, superposition)
  - Composite angle/rebar section capacity (plastic moment, web shear)
  - Demand vs. capacity checks per direction and limit state
  - Weld interface shear-flow reference values`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   tscheck v%-47s║\n", version.Version)
		fmt.Println("  ║   Temporary Composite Support Beam Checker                ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Construction-stage strength checks for temporary composite")
		fmt.Println("  support beams carrying fresh concrete.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored construction loads (1.4D, 1.2D + 1.6L)")
		fmt.Println("    • End/field moments and reactions for four support/load cases")
		fmt.Println("    • Composite angle-rebar section capacity")
		fmt.Println("    • Full check run from a YAML input document")
		fmt.Println()
		fmt.Println("  Use 'tscheck --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
