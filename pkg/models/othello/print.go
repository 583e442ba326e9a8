package othello

import (
	"fmt"
	"io"
	"strings"
)

// Print writes the board one row per line, highest row first, with the token
// values of each row separated by spaces.
func (b *Board) Print(w io.Writer) error {
	_, err := io.WriteString(w, b.String())
	return err
}

func (b *Board) String() string {
	var builder strings.Builder
	for r := b.rows - 1; r >= 0; r-- {
		for c := 0; c < b.columns; c++ {
			if c > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteString(fmt.Sprint(int(b.cells[c][r])))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
