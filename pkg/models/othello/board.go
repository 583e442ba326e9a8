package othello

import (
	"math"

	"github.com/pkg/errors"
)

// Board is an Othello board of columns x rows cells, indexed [column][row].
// Nothing mutates a Board after construction.
type Board struct {
	columns int
	rows    int
	cells   [][]Token
}

func newBlankBoard(columns, rows int) (*Board, error) {
	if columns <= 0 || rows <= 0 || columns > MaxDimension || rows > MaxDimension {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%d x %d", columns, rows)
	}

	cells := make([][]Token, columns)
	for i := range cells {
		cells[i] = make([]Token, rows)
	}

	return &Board{
		columns: columns,
		rows:    rows,
		cells:   cells,
	}, nil
}

// New returns a board with the four centre cells set to the starting position.
// With an odd dimension the ceiling and floor of the centre coincide and the
// later writes overwrite the earlier ones.
func New(columns, rows int) (*Board, error) {
	b, err := newBlankBoard(columns, rows)
	if err != nil {
		return nil, err
	}

	centerColumn := float64(columns-1) / 2
	centerRow := float64(rows-1) / 2

	hiC, loC := int(math.Ceil(centerColumn)), int(math.Floor(centerColumn))
	hiR, loR := int(math.Ceil(centerRow)), int(math.Floor(centerRow))

	b.cells[hiC][hiR] = Dark
	b.cells[hiC][loR] = Light
	b.cells[loC][hiR] = Light
	b.cells[loC][loR] = Dark

	return b, nil
}

// FromGrid builds a board from a column-major grid. The grid is copied.
func FromGrid(grid [][]Token) (*Board, error) {
	if len(grid) == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "empty grid")
	}

	b, err := newBlankBoard(len(grid), len(grid[0]))
	if err != nil {
		return nil, err
	}

	for c, column := range grid {
		if len(column) != b.rows {
			return nil, errors.Wrapf(ErrInvalidDimensions, "column %d has %d rows, want %d", c, len(column), b.rows)
		}
		for r, v := range column {
			if !v.Valid() && v != Blank {
				return nil, errors.Wrapf(ErrInvalidToken, "value %d at (%d, %d)", v, c, r)
			}
		}
		copy(b.cells[c], column)
	}

	return b, nil
}

func (b *Board) Columns() int {
	return b.columns
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) InBounds(column, row int) bool {
	return column >= 0 && row >= 0 && column < b.columns && row < b.rows
}

func (b *Board) At(column, row int) (Token, error) {
	if !b.InBounds(column, row) {
		return Blank, errors.Wrapf(ErrOutOfRange, "(%d, %d) on %d x %d board", column, row, b.columns, b.rows)
	}
	return b.cells[column][row], nil
}

// Column returns a copy of column i, ordered by row.
func (b *Board) Column(i int) ([]Token, error) {
	if i < 0 || i >= b.columns {
		return nil, errors.Wrapf(ErrOutOfRange, "column %d of %d", i, b.columns)
	}

	line := make([]Token, b.rows)
	copy(line, b.cells[i])
	return line, nil
}

// Row returns a copy of row i, ordered by column.
func (b *Board) Row(i int) ([]Token, error) {
	if i < 0 || i >= b.rows {
		return nil, errors.Wrapf(ErrOutOfRange, "row %d of %d", i, b.rows)
	}

	line := make([]Token, b.columns)
	for c := range b.cells {
		line[c] = b.cells[c][i]
	}
	return line, nil
}

// Grid returns a deep copy of the cells, indexed [column][row].
func (b *Board) Grid() [][]Token {
	grid := make([][]Token, b.columns)
	for c := range b.cells {
		grid[c] = make([]Token, b.rows)
		copy(grid[c], b.cells[c])
	}
	return grid
}

func (b *Board) Count(t Token) (count int) {
	for _, column := range b.cells {
		for _, v := range column {
			if v == t {
				count++
			}
		}
	}
	return
}

// IsLegal reports whether token may be placed at (column, row). Only the cell's
// row and column are searched for a capture.
func (b *Board) IsLegal(column, row int, token Token) (bool, error) {
	current, err := b.At(column, row)
	if err != nil {
		return false, err
	}

	if !token.Valid() {
		return false, errors.Wrapf(ErrInvalidToken, "%d", token)
	}

	if current != Blank {
		return false, nil
	}

	columnLine, err := b.Column(column)
	if err != nil {
		return false, err
	}

	if IsLegalInLine(row, token, columnLine) {
		return true, nil
	}

	rowLine, err := b.Row(row)
	if err != nil {
		return false, err
	}

	return IsLegalInLine(column, token, rowLine), nil
}
