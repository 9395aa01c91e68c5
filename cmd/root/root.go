package root

import (
	"github.com/spf13/cobra"

	"github.com/nonet-solver/nonet/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nonet",
		Short: "Nonet is a constraint-propagation Sudoku solver",
		Long: `A Sudoku engine combining naked-single and hidden-single deduction
with minimum-remaining-candidates backtracking search.`,
	}

	rootCmd.AddCommand(solve.NewSolveCommand())

	return rootCmd
}
