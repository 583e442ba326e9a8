package logic

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/HuXin0817/othello/console/internal/config"

	"github.com/HuXin0817/othello/pkg/assess"
	"github.com/HuXin0817/othello/pkg/models/message"
	"github.com/HuXin0817/othello/pkg/models/model"
	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/HuXin0817/othello/pkg/models/ui"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

type BoardLogic struct {
	ctx      context.Context
	config   config.Config
	out      io.Writer
	progress io.Writer
	uid      message.BoardUid
	board    *othello.Board
	color    model.Config
	logx.Logger
}

func NewBoardLogic(ctx context.Context, c config.Config, out, progress io.Writer) (*BoardLogic, error) {
	color, err := model.NewConfig(c.Color)
	if err != nil {
		return nil, errors.Wrap(err, "Color")
	}

	b, err := othello.New(c.Columns, c.Rows)
	if err != nil {
		return nil, err
	}

	l := &BoardLogic{
		ctx:      ctx,
		config:   c,
		out:      out,
		progress: progress,
		uid:      message.NewBoardUid(),
		board:    b,
		color:    color,
		Logger:   logx.WithContext(ctx),
	}
	l.Infof("new board %s, %d x %d", l.uid, b.Columns(), b.Rows())
	return l, nil
}

func (l *BoardLogic) Board() *othello.Board {
	return l.board
}

func (l *BoardLogic) Print() error {
	return l.board.Print(l.out)
}

func (l *BoardLogic) Query() (message.LegalityRecord, error) {
	token, err := othello.ParseToken(l.config.Query.Token)
	if err != nil {
		return message.LegalityRecord{}, err
	}

	record, err := message.NewLegalityRecord(l.uid, l.board, l.config.Query.Column, l.config.Query.Row, token)
	if err != nil {
		return message.LegalityRecord{}, err
	}

	l.Info(record.String())
	if _, err = fmt.Fprintf(l.out, "IsLegal(%d, %d, %s) = %t\n", record.Column, record.Row, record.Token, record.Legal); err != nil {
		return message.LegalityRecord{}, err
	}
	return record, nil
}

// Scan lists the legal squares of token row by row and draws them on the board.
func (l *BoardLogic) Scan(token othello.Token) ([]othello.Square, error) {
	ok, err := assess.HasLegalMove(l.board, token)
	if err != nil {
		return nil, err
	}

	if !ok {
		l.Infof("%s has no legal move", token)
	}

	bar := model.NewBar(l.progress, l.board.Rows(), fmt.Sprintf("Scanning %s...", token))
	defer bar.Close()

	var moves []othello.Square
	for r := range l.board.Rows() {
		rowMoves, err := assess.LegalMovesInRow(l.board, r, token)
		if err != nil {
			return nil, err
		}
		moves = append(moves, rowMoves...)
		bar.Add(1)
	}

	fmt.Fprintln(l.progress)
	sort.Slice(moves, func(i, j int) bool { return moves[i] < moves[j] })
	if _, err = fmt.Fprintf(l.out, "%s: %v\n", token, moves); err != nil {
		return nil, err
	}

	view := ui.NewBoard(l.board, l.color)
	view.Mark(moves...)
	return moves, view.Render(l.out)
}

func (l *BoardLogic) Snapshot() (message.Snapshot, error) {
	snapshot := message.NewSnapshot(l.uid, l.board)
	_, err := fmt.Fprintln(l.out, snapshot.String())
	return snapshot, err
}

// Run prints the board, answers the configured query and runs the optional
// scan and snapshot steps.
func (l *BoardLogic) Run() error {
	if err := l.Print(); err != nil {
		return err
	}

	if _, err := l.Query(); err != nil {
		return err
	}

	if l.config.Scan {
		for _, token := range []othello.Token{othello.Dark, othello.Light} {
			if _, err := l.Scan(token); err != nil {
				return err
			}
		}
	}

	if l.config.Json {
		if _, err := l.Snapshot(); err != nil {
			return err
		}
	}

	return nil
}
