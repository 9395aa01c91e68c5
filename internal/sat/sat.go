// Package sat solves boards by a route entirely independent of the
// propagation engine: the board is encoded as CNF and handed to gini.
// It backs the CLI's --verify flag and the cross-checking tests, and
// can count solutions to report uniqueness.
package sat

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/nonet-solver/nonet/pkg/nonet"
	"github.com/nonet-solver/nonet/pkg/nonet/board"
)

// ErrUnsatisfiable is returned when a board has no completion.
var ErrUnsatisfiable = errors.New("board has no solution")

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// encoding maps (row, col, choice) triples onto SAT variables for one
// board shape.
type encoding struct {
	cfg nonet.Config
	dim int
	g   *gini.Gini
}

// lit returns the literal meaning "the tile at (row, col) holds the
// symbol at alphabet position k".
func (e *encoding) lit(row, col, k int) z.Lit {
	n := k
	n += col * e.dim
	n += row * e.dim * e.dim
	return z.Var(n + 1).Pos()
}

// newEncoding builds the CNF for the board's shape and givens: every
// tile holds some value, no group repeats a value, and each known tile
// is pinned with a unit clause.
func newEncoding(b *board.Board) *encoding {
	e := &encoding{
		cfg: b.Config(),
		dim: b.Dim(),
		g:   gini.New(),
	}

	// every tile holds at least one value
	for row := 0; row < e.dim; row++ {
		for col := 0; col < e.dim; col++ {
			for k := 0; k < e.dim; k++ {
				e.g.Add(e.lit(row, col, k))
			}
			e.g.Add(z.LitNull)
		}
	}

	// no tile holds two values
	for row := 0; row < e.dim; row++ {
		for col := 0; col < e.dim; col++ {
			for a := 0; a < e.dim; a++ {
				for bb := a + 1; bb < e.dim; bb++ {
					e.conflict(e.lit(row, col, a), e.lit(row, col, bb))
				}
			}
		}
	}

	// no group repeats a value; Groups covers blocks, rows, and columns
	for _, group := range b.Groups() {
		for k := 0; k < e.dim; k++ {
			for a := 0; a < len(group); a++ {
				for bb := a + 1; bb < len(group); bb++ {
					e.conflict(
						e.lit(group[a].Row(), group[a].Col(), k),
						e.lit(group[bb].Row(), group[bb].Col(), k),
					)
				}
			}
		}
	}

	// pin the givens
	for row := 0; row < e.dim; row++ {
		for col := 0; col < e.dim; col++ {
			if k, ok := e.cfg.Index(b.Tile(row, col).Value()); ok {
				e.g.Add(e.lit(row, col, k))
				e.g.Add(z.LitNull)
			}
		}
	}

	return e
}

func (e *encoding) conflict(a, b z.Lit) {
	e.g.Add(a.Not())
	e.g.Add(b.Not())
	e.g.Add(z.LitNull)
}

// model reads the solved assignment back into row strings.
func (e *encoding) model() ([]string, error) {
	rows := make([]string, e.dim)
	for row := 0; row < e.dim; row++ {
		line := make([]byte, e.dim)
		for col := 0; col < e.dim; col++ {
			found := false
			for k := 0; k < e.dim; k++ {
				if e.g.Value(e.lit(row, col, k)) {
					line[col] = byte(e.cfg.Choice(k))
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("internal solver failure: no value for tile (%d,%d)", row, col)
			}
		}
		rows[row] = string(line)
	}
	return rows, nil
}

// block forbids the current model, forcing the next Solve call to find
// a different completion.
func (e *encoding) block() {
	for row := 0; row < e.dim; row++ {
		for col := 0; col < e.dim; col++ {
			for k := 0; k < e.dim; k++ {
				m := e.lit(row, col, k)
				if e.g.Value(m) {
					e.g.Add(m.Not())
				}
			}
		}
	}
	e.g.Add(z.LitNull)
}

// loadBoard validates rows against cfg and returns a populated board.
func loadBoard(cfg nonet.Config, rows []string) (*board.Board, error) {
	b, err := board.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := b.SetTiles(rows); err != nil {
		return nil, err
	}
	return b, nil
}

// Solve finds one completion of the given rows, independent of the
// propagation engine. It returns ErrUnsatisfiable when none exists.
func Solve(ctx context.Context, cfg nonet.Config, rows []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := loadBoard(cfg, rows)
	if err != nil {
		return nil, err
	}
	e := newEncoding(b)
	switch e.g.Solve() {
	case satisfiable:
		return e.model()
	case unsatisfiable:
		return nil, ErrUnsatisfiable
	default:
		return nil, fmt.Errorf("internal solver failure: no outcome")
	}
}

// CountSolutions counts completions of the given rows up to limit by
// repeatedly blocking found models. A result of 0 means unsatisfiable,
// 1 a unique solution, and limit that at least limit completions
// exist.
func CountSolutions(ctx context.Context, cfg nonet.Config, rows []string, limit int) (int, error) {
	b, err := loadBoard(cfg, rows)
	if err != nil {
		return 0, err
	}
	e := newEncoding(b)
	count := 0
	for count < limit {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		outcome := e.g.Solve()
		if outcome == unsatisfiable {
			break
		}
		if outcome != satisfiable {
			return count, fmt.Errorf("internal solver failure: no outcome")
		}
		count++
		e.block()
	}
	return count, nil
}
