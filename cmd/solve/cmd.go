package solve

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nonet-solver/nonet/internal/sat"
	"github.com/nonet-solver/nonet/pkg/nonet"
	"github.com/nonet-solver/nonet/pkg/nonet/board"
	"github.com/nonet-solver/nonet/pkg/nonet/solver"
)

func NewSolveCommand() *cobra.Command {
	var verify bool
	var trace bool

	cmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Solves a Sudoku board read from a file",
		Long: `Solves a Sudoku board read from a file. The file holds one row per
line, using digits 1-9 and '.' for unknown tiles. Blank lines and lines
starting with '#' are ignored. For instance:

# an easy board
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd.Context(), args[0], verify, trace)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the result with an independent SAT encoding and report uniqueness")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every speculative assignment made during search")

	return cmd
}

func solve(ctx context.Context, path string, verify, trace bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	boardFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening board file (%s): %w", path, err)
	}
	defer boardFile.Close()

	rows, err := ParseBoard(boardFile)
	if err != nil {
		return fmt.Errorf("error parsing board file (%s): %w", path, err)
	}

	cfg := nonet.Standard()
	b, err := board.New(cfg)
	if err != nil {
		return err
	}
	if err := b.SetTiles(rows); err != nil {
		return err
	}

	var options []solver.Option
	if trace {
		options = append(options, solver.WithListener(nonet.ListenerFunc(func(event nonet.TileEvent) {
			if event.Kind == nonet.TileGuessed {
				fmt.Printf("guess %s at (%d,%d)\n", event.Value, event.Row, event.Col)
			}
		})))
	}

	so := solver.New(b, options...)
	solved, err := so.Solve(ctx)
	if err != nil {
		return err
	}
	if !solved {
		return fmt.Errorf("no solution found")
	}

	fmt.Println(b)

	if verify {
		return crossCheck(ctx, cfg, rows, b.Snapshot())
	}
	return nil
}

// crossCheck confirms the propagation engine's answer against the SAT
// encoding and reports whether the board had a unique solution.
func crossCheck(ctx context.Context, cfg nonet.Config, givens, solution []string) error {
	count, err := sat.CountSolutions(ctx, cfg, givens, 2)
	if err != nil {
		return fmt.Errorf("error verifying solution: %w", err)
	}
	switch count {
	case 0:
		return fmt.Errorf("verification failed: SAT encoding reports no solution")
	case 1:
		fmt.Println("verified: solution is unique")
	default:
		fmt.Println("verified: board has multiple solutions")
	}

	if count == 1 {
		independent, err := sat.Solve(ctx, cfg, givens)
		if err != nil {
			return fmt.Errorf("error verifying solution: %w", err)
		}
		for i := range solution {
			if independent[i] != solution[i] {
				return fmt.Errorf("verification failed: SAT solution disagrees at row %d", i)
			}
		}
	}
	return nil
}
