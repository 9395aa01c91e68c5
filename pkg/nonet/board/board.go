package board

import (
	"fmt"
	"strings"

	"github.com/nonet-solver/nonet/pkg/nonet"
)

// Board holds an NxN matrix of tiles together with the fixed partition
// into groups (one per block, row, and column). Group membership is
// computed once at construction and never changes; only tile contents
// mutate. Each symbol must appear at most once per group, and exactly
// once per group on a completed board.
type Board struct {
	cfg    nonet.Config
	dim    int
	tiles  [][]*Tile
	groups [][]*Tile
	full   CandidateSet

	listeners []nonet.Listener
}

// New returns an empty board for the given configuration: every tile
// undetermined with the full candidate set.
func New(cfg nonet.Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid board configuration: %w", err)
	}
	dim := cfg.Dim()
	b := &Board{
		cfg:  cfg,
		dim:  dim,
		full: Full(dim),
	}
	b.tiles = make([][]*Tile, dim)
	for row := 0; row < dim; row++ {
		b.tiles[row] = make([]*Tile, dim)
		for col := 0; col < dim; col++ {
			b.tiles[row][col] = &Tile{
				row:        row,
				col:        col,
				value:      cfg.Unknown,
				candidates: b.full,
				board:      b,
			}
		}
	}
	b.groups = b.buildGroups()
	return b, nil
}

// buildGroups partitions the matrix into blocks, then rows, then
// columns. The order matters: MinCandidateTile scans groups in this
// order, and tests rely on the resulting deterministic tie-break.
func (b *Board) buildGroups() [][]*Tile {
	root := b.cfg.Root
	groups := make([][]*Tile, 0, 3*b.dim)
	for blockRow := 0; blockRow < root; blockRow++ {
		for blockCol := 0; blockCol < root; blockCol++ {
			group := make([]*Tile, 0, b.dim)
			for row := 0; row < root; row++ {
				for col := 0; col < root; col++ {
					group = append(group, b.tiles[root*blockRow+row][root*blockCol+col])
				}
			}
			groups = append(groups, group)
		}
	}
	for row := 0; row < b.dim; row++ {
		group := make([]*Tile, b.dim)
		copy(group, b.tiles[row])
		groups = append(groups, group)
	}
	for col := 0; col < b.dim; col++ {
		group := make([]*Tile, b.dim)
		for row := 0; row < b.dim; row++ {
			group[row] = b.tiles[row][col]
		}
		groups = append(groups, group)
	}
	return groups
}

// Config returns the board's fixed configuration.
func (b *Board) Config() nonet.Config { return b.cfg }

// Dim returns the board edge length.
func (b *Board) Dim() int { return b.dim }

// Tile returns the tile at the given position.
func (b *Board) Tile(row, col int) *Tile { return b.tiles[row][col] }

// Groups returns the board's groups: blocks, then rows, then columns.
// Callers must not mutate the returned slices.
func (b *Board) Groups() [][]*Tile { return b.groups }

// Subscribe attaches a listener for tile events. Listeners are
// notified synchronously in registration order.
func (b *Board) Subscribe(l nonet.Listener) {
	b.listeners = append(b.listeners, l)
}

func (b *Board) notify(event nonet.TileEvent) {
	for _, l := range b.listeners {
		l.Notify(event)
	}
}

// SetTiles loads the board from one string per row, each byte either an
// alphabet symbol or the placeholder. Malformed input is rejected with
// an *nonet.InvalidBoardError before any tile is touched. The same call
// restores a snapshot during backtracking.
func (b *Board) SetTiles(rows []string) error {
	if len(rows) != b.dim {
		return &nonet.InvalidBoardError{
			Row: -1, Col: -1,
			Reason: fmt.Sprintf("expected %d rows, got %d", b.dim, len(rows)),
		}
	}
	for row, line := range rows {
		if len(line) != b.dim {
			return &nonet.InvalidBoardError{
				Row: row, Col: -1,
				Reason: fmt.Sprintf("expected %d symbols, got %d", b.dim, len(line)),
			}
		}
		for col := 0; col < b.dim; col++ {
			s := nonet.Symbol(line[col])
			if _, ok := b.cfg.Index(s); !ok && s != b.cfg.Unknown {
				return &nonet.InvalidBoardError{
					Row: row, Col: col,
					Reason: fmt.Sprintf("symbol %q is not in the alphabet", line[col]),
				}
			}
		}
	}
	for row, line := range rows {
		for col := 0; col < b.dim; col++ {
			b.tiles[row][col].SetValue(nonet.Symbol(line[col]))
		}
	}
	return nil
}

// Snapshot returns the current tile values as one string per row, the
// placeholder standing in for undetermined tiles. The result is valid
// input to SetTiles and is the only form of saved state: the solver
// restores by reapplying a snapshot wholesale.
func (b *Board) Snapshot() []string {
	rows := make([]string, b.dim)
	var sb strings.Builder
	for row := 0; row < b.dim; row++ {
		sb.Reset()
		for col := 0; col < b.dim; col++ {
			sb.WriteByte(byte(b.tiles[row][col].value))
		}
		rows[row] = sb.String()
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.Snapshot(), "\n")
}

// IsConsistent reports whether no group contains a duplicate known
// value.
func (b *Board) IsConsistent() bool {
	for _, group := range b.groups {
		var seen CandidateSet
		for _, t := range group {
			i, ok := b.cfg.Index(t.value)
			if !ok {
				continue
			}
			if seen.Has(i) {
				return false
			}
			seen = seen.With(i)
		}
	}
	return true
}

// IsComplete reports whether no tile is undetermined. Completeness does
// not imply consistency; check both.
func (b *Board) IsComplete() bool {
	for _, row := range b.tiles {
		for _, t := range row {
			if !t.Known() {
				return false
			}
		}
	}
	return true
}

// MinCandidateTile returns an undetermined tile with the fewest
// candidates, scanning groups in construction order so ties resolve
// deterministically. Calling it on a complete board is a programming
// error and panics; check IsComplete first.
func (b *Board) MinCandidateTile() *Tile {
	var min *Tile
	for _, group := range b.groups {
		for _, t := range group {
			if t.Known() {
				continue
			}
			if min == nil || t.candidates.Len() < min.candidates.Len() {
				min = t
			}
		}
	}
	if min == nil {
		panic("nonet: MinCandidateTile called on a complete board")
	}
	return min
}

// Guess assigns v to t on behalf of the solver and fires a TileGuessed
// event after the usual TileChanged notification.
func (b *Board) Guess(t *Tile, v nonet.Symbol) {
	t.SetValue(v)
	b.notify(nonet.TileEvent{Kind: nonet.TileGuessed, Row: t.row, Col: t.col, Value: t.value})
}
