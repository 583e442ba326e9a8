package message

import (
	"time"

	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// Snapshot is a serializable copy of a board. Cells is indexed [column][row].
type Snapshot struct {
	TimeStamp
	BoardUid
	Columns int
	Rows    int
	Cells   [][]othello.Token
}

func NewSnapshot(uid BoardUid, b *othello.Board) Snapshot {
	return Snapshot{
		TimeStamp: NewTimeStamp(time.Now()),
		BoardUid:  uid,
		Columns:   b.Columns(),
		Rows:      b.Rows(),
		Cells:     b.Grid(),
	}
}

func ParseSnapshot(str string) (snapshot Snapshot, err error) {
	if err = sonic.UnmarshalString(str, &snapshot); err != nil {
		return Snapshot{}, errors.Wrap(err, "parse snapshot")
	}
	return
}

func (s Snapshot) String() string {
	str, _ := sonic.MarshalString(s)
	return str
}

// Board rebuilds the board the snapshot was taken from.
func (s Snapshot) Board() (*othello.Board, error) {
	if len(s.Cells) != s.Columns {
		return nil, errors.Wrapf(othello.ErrInvalidDimensions, "snapshot has %d columns, header says %d", len(s.Cells), s.Columns)
	}
	for _, column := range s.Cells {
		if len(column) != s.Rows {
			return nil, errors.Wrapf(othello.ErrInvalidDimensions, "snapshot column has %d rows, header says %d", len(column), s.Rows)
		}
	}
	return othello.FromGrid(s.Cells)
}
