package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexchoi94/tscheck/internal/beam"
)

var (
	pointSupport string
	pointLoad    float64
	pointOffset  float64
	pointSpan    float64
	pointAt      []float64
)

var beamPointCmd = &cobra.Command{
	Use:   "point",
	Short: "Single point load on a single span",
	Long: `Compute end moments, load-point moment and reactions for a single
downward point load F at offset a from support A.

Examples:
  # Fixed-fixed beam, 10 kN at 2 m of a 6 m span
  tscheck beam point --support fixed --load 10 --offset 2 --span 6

  # Pinned beam, sample the moment at extra positions
  tscheck beam point --support pinned --load 10 --offset 2 --span 6 --at 1.5 --at 3`,
	RunE: runBeamPoint,
}

func init() {
	beamCmd.AddCommand(beamPointCmd)

	beamPointCmd.Flags().StringVarP(&pointSupport, "support", "s", "fixed", "Support condition: fixed or pinned")
	beamPointCmd.Flags().Float64VarP(&pointLoad, "load", "f", 0, "Point load magnitude F, downward (kN) [required]")
	beamPointCmd.Flags().Float64VarP(&pointOffset, "offset", "a", 0, "Load offset a from support A (m) [required]")
	beamPointCmd.Flags().Float64VarP(&pointSpan, "span", "l", 0, "Span length L (m) [required]")
	beamPointCmd.Flags().Float64SliceVar(&pointAt, "at", nil, "Extra positions x to report M(x) at (repeatable)")

	beamPointCmd.MarkFlagRequired("load")
	beamPointCmd.MarkFlagRequired("offset")
	beamPointCmd.MarkFlagRequired("span")
}

func runBeamPoint(cmd *cobra.Command, args []string) error {
	support, err := parseSupportFlag(pointSupport)
	if err != nil {
		return err
	}

	r, err := beam.Evaluate(support, beam.SinglePoint,
		beam.Load{F: pointLoad, Offsets: []float64{pointOffset}}, pointSpan)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s BEAM - SINGLE POINT LOAD", strTitle(support))
	return printDemand(title, r, pointAt)
}

func strTitle(s beam.SupportCondition) string {
	if s == beam.FixedFixed {
		return "FIXED-FIXED"
	}
	return "PINNED-PINNED"
}
