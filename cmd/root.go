package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rangecalc",
	Short: "Continuous range algebra from the command line",
	Long: `rangecalc evaluates set algebra over continuous ranges written in the
"[start, end)" notation. Endpoints are integers, floats or inf/-inf, and
each side of a range is independently inclusive or exclusive:

  rangecalc union "[0, 5)" "[3, 8]"
  rangecalc complement "[2, 7)"`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
