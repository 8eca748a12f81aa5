package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Composite angle/rebar section capacity",
	Long: `Derived properties and capacities of the composite cross-section:
two pairs of equal-leg angles forming the flanges, joined by a bilateral
rebar web.

Subcommands:
  capacity - section properties, plastic moment and web shear capacity`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
