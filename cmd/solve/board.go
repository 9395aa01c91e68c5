package solve

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseBoard reads a board file into row strings. Each non-empty line
// that does not start with '#' is one row of symbols; whether the rows
// actually form a valid board is decided later by Board.SetTiles.
//
// Example for the standard 9x9 configuration:
//
//	# rows are strings of digits, '.' for unknown
//	53..7....
//	6..195...
//	...
func ParseBoard(boardReader io.Reader) ([]string, error) {
	reader := bufio.NewReader(boardReader)

	var rows []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error reading board data: %w", err)
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			rows = append(rows, trimmed)
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("invalid format: no board rows found")
	}
	return rows, nil
}
