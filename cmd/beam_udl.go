package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexchoi94/tscheck/internal/beam"
)

var (
	udlSupport string
	udlLoad    float64
	udlSpan    float64
	udlAt      []float64
)

var beamUdlCmd = &cobra.Command{
	Use:   "udl",
	Short: "Uniform distributed load on a single span",
	Long: `Compute end moments, mid-span moment and reactions for a uniform
downward line load q over the full span.

Examples:
  # Fixed-fixed beam, 5 kN/m over a 6 m span
  tscheck beam udl --support fixed --udl 5 --span 6`,
	RunE: runBeamUdl,
}

func init() {
	beamCmd.AddCommand(beamUdlCmd)

	beamUdlCmd.Flags().StringVarP(&udlSupport, "support", "s", "fixed", "Support condition: fixed or pinned")
	beamUdlCmd.Flags().Float64VarP(&udlLoad, "udl", "q", 0, "Line load intensity q, downward (kN/m) [required]")
	beamUdlCmd.Flags().Float64VarP(&udlSpan, "span", "l", 0, "Span length L (m) [required]")
	beamUdlCmd.Flags().Float64SliceVar(&udlAt, "at", nil, "Extra positions x to report M(x) at (repeatable)")

	beamUdlCmd.MarkFlagRequired("udl")
	beamUdlCmd.MarkFlagRequired("span")
}

func runBeamUdl(cmd *cobra.Command, args []string) error {
	support, err := parseSupportFlag(udlSupport)
	if err != nil {
		return err
	}

	r, err := beam.Evaluate(support, beam.UniformDistributed, beam.Load{Q: udlLoad}, udlSpan)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s BEAM - UNIFORM DISTRIBUTED LOAD", strTitle(support))
	return printDemand(title, r, udlAt)
}
