package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/HuXin0817/othello/pkg/models/model"
	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/logrusorgru/aurora"
)

// Board renders an othello board to a terminal, highest row first.
type Board struct {
	*othello.Board
	Color model.Config
	Marks map[othello.Square]struct{}
	au    aurora.Aurora
}

func NewBoard(b *othello.Board, color model.Config) *Board {
	return &Board{
		Board: b,
		Color: color,
		Marks: make(map[othello.Square]struct{}),
		au:    aurora.NewAurora(bool(color)),
	}
}

// Mark flags squares to be drawn as candidates.
func (b *Board) Mark(squares ...othello.Square) {
	for _, s := range squares {
		b.Marks[s] = struct{}{}
	}
}

func (b *Board) cell(column, row int) string {
	if _, c := b.Marks[othello.NewSquare(column, row)]; c {
		return b.au.Yellow(fmt.Sprintf("%2s", "*")).String()
	}

	v, _ := b.At(column, row)
	s := fmt.Sprintf("%2d", v)
	switch v {
	case othello.Dark:
		return b.au.Cyan(s).String()
	case othello.Light:
		return b.au.Magenta(s).String()
	}
	return b.au.Faint(s).String()
}

func (b *Board) Render(w io.Writer) error {
	var builder strings.Builder
	for r := b.Rows() - 1; r >= 0; r-- {
		builder.WriteString(fmt.Sprintf("%3d |", r))
		for c := 0; c < b.Columns(); c++ {
			builder.WriteByte(' ')
			builder.WriteString(b.cell(c, r))
		}
		builder.WriteByte('\n')
	}

	builder.WriteString("    +")
	builder.WriteString(strings.Repeat("---", b.Columns()))
	builder.WriteString("\n     ")
	for c := 0; c < b.Columns(); c++ {
		builder.WriteString(fmt.Sprintf("%3d", c))
	}
	builder.WriteByte('\n')

	_, err := io.WriteString(w, builder.String())
	return err
}
