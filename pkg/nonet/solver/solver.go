// Package solver searches for a complete, consistent assignment of a
// board. Deterministic propagation runs first; when it stalls, the
// solver guesses on an undetermined tile with the fewest remaining
// candidates and backtracks by restoring whole-board snapshots.
package solver

import (
	"context"
	"errors"

	"github.com/nonet-solver/nonet/pkg/nonet"
	"github.com/nonet-solver/nonet/pkg/nonet/board"
	"github.com/nonet-solver/nonet/pkg/nonet/propagate"
)

// ErrCancelled is returned when the context expires before the search
// finishes.
var ErrCancelled = errors.New("search cancelled before completion")

// Solver runs propagation plus backtracking search over a single
// board. It mutates the board it was given: on success the board holds
// the solution, on failure it is restored to its state at the point
// Solve was entered.
type Solver struct {
	board *board.Board
}

// Option configures a Solver.
type Option func(s *Solver)

// WithListener subscribes l to the solver's board, so a presentation
// layer can observe propagation (TileChanged) and speculative
// assignments (TileGuessed).
func WithListener(l nonet.Listener) Option {
	return func(s *Solver) {
		s.board.Subscribe(l)
	}
}

// New returns a solver for b.
func New(b *board.Board, options ...Option) *Solver {
	s := &Solver{board: b}
	for _, option := range options {
		option(s)
	}
	return s
}

// Board returns the board the solver operates on.
func (s *Solver) Board() *board.Board {
	return s.board
}

// Solve searches for a completion of the board. It returns true when
// the board has been filled in completely and consistently, false when
// the position admits no solution. A false return is the normal
// backtracking path, not an error; the only error is ErrCancelled.
//
// On failure the board is restored to the exact state it held when
// Solve was called, including any mutations made by propagation.
func (s *Solver) Solve(ctx context.Context) (bool, error) {
	entry := s.board.Snapshot()
	solved, err := s.solve(ctx)
	if !solved {
		if rerr := s.board.SetTiles(entry); rerr != nil {
			return false, rerr
		}
	}
	return solved, err
}

// solve is the recursive search. Recursion depth is bounded by the
// number of undetermined tiles when guessing starts, at most Dim
// squared.
func (s *Solver) solve(ctx context.Context) (bool, error) {
	propagate.Propagate(s.board)
	if s.board.IsComplete() {
		return s.board.IsConsistent(), nil
	}
	if !s.board.IsConsistent() {
		return false, nil
	}

	saved := s.board.Snapshot()
	tile := s.board.MinCandidateTile()
	// The candidate list is captured up front: restoring the snapshot
	// resets the tile's candidate set to full.
	candidates := tile.Candidates().Positions()
	for _, i := range candidates {
		if ctx.Err() != nil {
			return false, ErrCancelled
		}
		s.board.Guess(tile, s.board.Config().Choice(i))
		solved, err := s.solve(ctx)
		if err != nil {
			return false, err
		}
		if solved {
			return true, nil
		}
		if err := s.board.SetTiles(saved); err != nil {
			return false, err
		}
	}
	return false, nil
}
