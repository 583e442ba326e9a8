package othello

import "fmt"

const (
	S          = 16
	squareMod  = 1 << S
	squareMask = squareMod - 1

	// MaxDimension is the largest column or row count a Square can address.
	MaxDimension = squareMod
)

// Square packs a (column, row) pair into one int.
type Square int

func NewSquare(column, row int) Square {
	return Square((column << S) + row)
}

func (s Square) Column() int {
	return int(s) >> S
}

func (s Square) Row() int {
	return int(s) & squareMask
}

func (s Square) String() string {
	return fmt.Sprintf("(%d, %d)", s.Column(), s.Row())
}
