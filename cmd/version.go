package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gochemics/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gochemics",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gochemics v%s\n", version.Version)
		fmt.Fprintf(out, "Built %s from commit %s\n", version.BuildTime, version.GitCommit)
		fmt.Fprintln(out, "Proximate analysis, bubble rise velocity and sphere drag calculators")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
