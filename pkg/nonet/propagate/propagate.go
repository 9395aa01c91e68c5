// Package propagate applies the deterministic deduction rules to a
// board: naked singles and hidden singles, repeated to fixpoint. The
// rules only shrink candidate sets or place forced values; they never
// guess, so running them is always sound.
package propagate

import (
	"github.com/nonet-solver/nonet/pkg/nonet/board"
)

// NakedSingle removes every value already placed in a group from the
// candidate sets of that group's undetermined tiles. Tiles whose
// candidates shrink to one are promoted by the tile itself. Returns
// true if any candidate set changed anywhere on the board.
func NakedSingle(b *board.Board) bool {
	cfg := b.Config()
	progress := false
	for _, group := range b.Groups() {
		var used board.CandidateSet
		for _, t := range group {
			if i, ok := cfg.Index(t.Value()); ok {
				used = used.With(i)
			}
		}
		for _, t := range group {
			if t.Known() {
				continue
			}
			if t.RemoveCandidates(used) {
				progress = true
			}
		}
	}
	return progress
}

// HiddenSingle places a symbol when exactly one tile in a group still
// admits it, even if that tile currently has several candidates. That
// is the rule's extra power over naked singles. Returns true if any
// value was placed.
func HiddenSingle(b *board.Board) bool {
	cfg := b.Config()
	progress := false
	for _, group := range b.Groups() {
		leftovers := board.Full(b.Dim())
		for _, t := range group {
			if i, ok := cfg.Index(t.Value()); ok {
				leftovers = leftovers.Without(board.Only(i))
			}
		}
		for _, i := range leftovers.Positions() {
			var only *board.Tile
			count := 0
			for _, t := range group {
				if t.Candidates().Has(i) {
					count++
					only = t
				}
			}
			if count == 1 {
				only.SetValue(cfg.Choice(i))
				progress = true
			}
		}
	}
	return progress
}

// Propagate runs both rules until neither makes progress.
// Hidden-single placements feed back into the next naked-single pass.
// Propagation is idempotent: a second call after a completed fixpoint
// changes nothing.
func Propagate(b *board.Board) {
	for progress := true; progress; {
		progress = NakedSingle(b)
		if HiddenSingle(b) {
			progress = true
		}
	}
}
