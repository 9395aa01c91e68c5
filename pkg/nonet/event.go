package nonet

// EventKind discriminates the notifications a board emits while it is
// being mutated.
type EventKind int

const (
	// TileChanged fires whenever a tile's value or candidate set is
	// mutated, including mutations caused by propagation.
	TileChanged EventKind = iota
	// TileGuessed fires when the solver speculatively assigns a value
	// during backtracking search.
	TileGuessed
)

func (k EventKind) String() string {
	switch k {
	case TileChanged:
		return "TileChanged"
	case TileGuessed:
		return "TileGuessed"
	default:
		return "Unknown"
	}
}

// TileEvent carries the position and resulting value of a mutated tile.
// Value is the board's placeholder when the tile became undetermined.
type TileEvent struct {
	Kind  EventKind
	Row   int
	Col   int
	Value Symbol
}

// Listener receives tile events from a board. Notification is
// fire-and-forget: boards work identically with zero listeners
// attached, and listeners must not mutate the board.
type Listener interface {
	Notify(event TileEvent)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(event TileEvent)

func (f ListenerFunc) Notify(event TileEvent) {
	f(event)
}
