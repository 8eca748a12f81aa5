package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alexchoi94/tscheck/internal/check"
	"github.com/alexchoi94/tscheck/internal/config"
	"github.com/alexchoi94/tscheck/internal/report"
)

var (
	checkPDF  string
	checkXLSX string
)

var checkCmd = &cobra.Command{
	Use:   "check <inputs.yaml>",
	Short: "Run the full construction-load check from a YAML input document",
	Long: `Run the complete construction-load check: load takedown from the
slab to the Y girders and X girders, demand per direction, composite
section capacity and the four (direction × limit state) comparisons.

The input document carries spans, support conditions, slab and live
loads, girder count and the composite section; see examples/bay.yaml.

Examples:
  tscheck check inputs.yaml
  tscheck check inputs.yaml --pdf report.pdf --xlsx results.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkPDF, "pdf", "", "Write a PDF report to the given path")
	checkCmd.Flags().StringVar(&checkXLSX, "xlsx", "", "Write a spreadsheet export to the given path")
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputs, err := config.Load(args[0])
	if err != nil {
		return err
	}

	rep, err := check.Run(inputs)
	if err != nil {
		return err
	}

	if err := report.WriteText(os.Stdout, rep); err != nil {
		return err
	}
	if checkPDF != "" {
		if err := report.WritePDF(checkPDF, rep); err != nil {
			return err
		}
	}
	if checkXLSX != "" {
		if err := report.WriteXLSX(checkXLSX, rep); err != nil {
			return err
		}
	}

	if !rep.AllOK {
		os.Exit(1)
	}
	return nil
}
