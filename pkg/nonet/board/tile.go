package board

import (
	"fmt"

	"github.com/nonet-solver/nonet/pkg/nonet"
)

// Tile is one position on the board. Value is either a symbol from the
// alphabet or the placeholder; Candidates is the set of alphabet
// positions still possible. When Value is a known symbol the candidate
// set is the singleton for that symbol. An empty candidate set on an
// undetermined tile means no value can be consistent with the rest of
// the grid.
//
// Tiles are owned by their Board and must only be mutated through
// SetValue and RemoveCandidates.
type Tile struct {
	row        int
	col        int
	value      nonet.Symbol
	candidates CandidateSet
	board      *Board
}

func (t *Tile) Row() int { return t.row }

func (t *Tile) Col() int { return t.col }

// Value returns the tile's symbol, or the board placeholder when the
// tile is undetermined.
func (t *Tile) Value() nonet.Symbol { return t.value }

// Known reports whether the tile holds a symbol from the alphabet.
func (t *Tile) Known() bool { return t.value != t.board.cfg.Unknown }

// Candidates returns the tile's current candidate set.
func (t *Tile) Candidates() CandidateSet { return t.candidates }

// CouldBe reports whether v is still a candidate for this tile.
func (t *Tile) CouldBe(v nonet.Symbol) bool {
	i, ok := t.board.cfg.Index(v)
	return ok && t.candidates.Has(i)
}

// SetValue assigns v to the tile. A symbol from the alphabet collapses
// the candidate set to that symbol; any other value makes the tile
// undetermined with the full candidate set. A TileChanged event fires
// either way.
func (t *Tile) SetValue(v nonet.Symbol) {
	if i, ok := t.board.cfg.Index(v); ok {
		t.value = v
		t.candidates = Only(i)
	} else {
		t.value = t.board.cfg.Unknown
		t.candidates = t.board.full
	}
	t.board.notify(nonet.TileEvent{Kind: nonet.TileChanged, Row: t.row, Col: t.col, Value: t.value})
}

// RemoveCandidates drops the used positions from the tile's candidate
// set. It returns false if nothing changed. If exactly one candidate
// remains the tile is promoted to that value through SetValue; if the
// set becomes empty the tile stays undetermined with zero candidates,
// which downstream consistency checks treat as a contradiction.
func (t *Tile) RemoveCandidates(used CandidateSet) bool {
	next := t.candidates.Without(used)
	if next == t.candidates {
		return false
	}
	t.candidates = next
	if i, ok := next.Single(); ok {
		t.SetValue(t.board.cfg.Choice(i))
		return true
	}
	t.board.notify(nonet.TileEvent{Kind: nonet.TileChanged, Row: t.row, Col: t.col, Value: t.value})
	return true
}

func (t *Tile) String() string {
	return fmt.Sprintf("Tile(%d,%d)=%s", t.row, t.col, t.value)
}
