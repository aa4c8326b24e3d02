package cmd

import (
	"github.com/fatih/color"
	"github.com/henderiw/contrange/pkg/ranges"
	"github.com/spf13/cobra"
)

func runBinary(op func(a ranges.Range, b ranges.Set) (ranges.Set, error)) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := ranges.Parse(args[0])
		if err != nil {
			color.Red("%v", err)
			return
		}
		b, err := ranges.Parse(args[1])
		if err != nil {
			color.Red("%v", err)
			return
		}
		res, err := op(a, b)
		if err != nil {
			color.Red("%v", err)
			return
		}
		color.Green("%s", res)
	}
}

// unionCmd represents the union command
var unionCmd = &cobra.Command{
	Use:   "union RANGE RANGE",
	Short: "Union of two ranges",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary(ranges.Range.Union),
}

// intersectCmd represents the intersect command
var intersectCmd = &cobra.Command{
	Use:   "intersect RANGE RANGE",
	Short: "Intersection of two ranges",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary(ranges.Range.Intersect),
}

// xorCmd represents the xor command
var xorCmd = &cobra.Command{
	Use:   "xor RANGE RANGE",
	Short: "Symmetric difference of two ranges",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary(ranges.Range.SymDiff),
}

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff RANGE RANGE",
	Short: "Difference of two ranges",
	Args:  cobra.ExactArgs(2),
	Run:   runBinary(ranges.Range.Diff),
}

// complementCmd represents the complement command
var complementCmd = &cobra.Command{
	Use:   "complement RANGE",
	Short: "Complement of a range",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := ranges.Parse(args[0])
		if err != nil {
			color.Red("%v", err)
			return
		}
		res, err := a.Complement()
		if err != nil {
			color.Red("%v", err)
			return
		}
		color.Green("%s", res)
	},
}

func init() {
	rootCmd.AddCommand(unionCmd)
	rootCmd.AddCommand(intersectCmd)
	rootCmd.AddCommand(xorCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(complementCmd)
}
