package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexchoi94/tscheck/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tscheck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tscheck v%s\n", version.Version)
		fmt.Println("Temporary Composite Support Beam Checker")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
