package assess

import (
	"sort"
	"sync"

	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/zeromicro/go-zero/core/logx"
)

func LegalMovesInRow(b *othello.Board, row int, token othello.Token) (moves []othello.Square, err error) {
	for c := range b.Columns() {
		legal, err := b.IsLegal(c, row, token)
		if err != nil {
			return nil, err
		}

		if legal {
			moves = append(moves, othello.NewSquare(c, row))
		}
	}

	return
}

// LegalMoves scans every row concurrently and returns the legal squares for
// token ordered by column, then row.
func LegalMoves(b *othello.Board, token othello.Token) ([]othello.Square, error) {
	rows := b.Rows()
	rowMoves := make([][]othello.Square, rows)
	rowErrs := make([]error, rows)

	var wg sync.WaitGroup
	wg.Add(rows)
	for r := range rows {
		go func(r int) {
			defer wg.Done()
			rowMoves[r], rowErrs[r] = LegalMovesInRow(b, r, token)
		}(r)
	}
	wg.Wait()

	var moves []othello.Square
	for r := range rows {
		if rowErrs[r] != nil {
			return nil, rowErrs[r]
		}
		moves = append(moves, rowMoves[r]...)
	}

	sort.Slice(moves, func(i, j int) bool { return moves[i] < moves[j] })

	logx.Debugf("%s has %d legal moves on %d x %d board", token, len(moves), b.Columns(), b.Rows())
	return moves, nil
}

func HasLegalMove(b *othello.Board, token othello.Token) (bool, error) {
	for r := range b.Rows() {
		moves, err := LegalMovesInRow(b, r, token)
		if err != nil {
			return false, err
		}

		if len(moves) > 0 {
			return true, nil
		}
	}

	return false, nil
}
