package nonet

import (
	"fmt"
	"strings"
)

// Symbol is one value from a board's alphabet. The zero alphabet is
// "123456789", but any set of distinct single-byte symbols works.
type Symbol byte

func (s Symbol) String() string {
	return string(rune(s))
}

// Config fixes the shape of a board for the duration of a run: the block
// root, the symbol alphabet, and the placeholder used for undetermined
// tiles. The board edge is Root*Root and the alphabet must have exactly
// that many symbols.
type Config struct {
	Root    int
	Choices string
	Unknown Symbol
}

// Standard returns the usual 9x9 configuration with 3x3 blocks, digits
// 1-9, and '.' for undetermined tiles.
func Standard() Config {
	return Config{
		Root:    3,
		Choices: "123456789",
		Unknown: '.',
	}
}

// Dim returns the board edge length.
func (c Config) Dim() int {
	return c.Root * c.Root
}

// Validate reports whether the configuration describes a usable board.
// The candidate tracking holds at most 64 distinct symbols, so Root is
// capped at 8.
func (c Config) Validate() error {
	if c.Root < 2 || c.Root > 8 {
		return fmt.Errorf("block root must be between 2 and 8, got %d", c.Root)
	}
	if len(c.Choices) != c.Dim() {
		return fmt.Errorf("alphabet must have %d symbols for root %d, got %d", c.Dim(), c.Root, len(c.Choices))
	}
	for i := 0; i < len(c.Choices); i++ {
		if strings.IndexByte(c.Choices, c.Choices[i]) != i {
			return fmt.Errorf("alphabet contains duplicate symbol %q", c.Choices[i])
		}
	}
	if strings.IndexByte(c.Choices, byte(c.Unknown)) >= 0 {
		return fmt.Errorf("placeholder %q must not appear in the alphabet", byte(c.Unknown))
	}
	return nil
}

// Index returns the alphabet position of s, or false if s is not a
// valid symbol.
func (c Config) Index(s Symbol) (int, bool) {
	i := strings.IndexByte(c.Choices, byte(s))
	return i, i >= 0
}

// Choice returns the symbol at alphabet position i.
func (c Config) Choice(i int) Symbol {
	return Symbol(c.Choices[i])
}

// InvalidBoardError reports input that cannot describe a board: wrong
// row or column counts, or a symbol that is neither in the alphabet nor
// the placeholder. Row and Col are -1 when they do not apply.
type InvalidBoardError struct {
	Row    int
	Col    int
	Reason string
}

func (e *InvalidBoardError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("invalid board: %s", e.Reason)
	}
	if e.Col < 0 {
		return fmt.Sprintf("invalid board: row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("invalid board: row %d, column %d: %s", e.Row, e.Col, e.Reason)
}
