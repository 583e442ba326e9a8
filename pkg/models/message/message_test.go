package message

import (
	"strings"
	"testing"
	"time"

	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestoresBoard(t *testing.T) {
	b, err := othello.New(8, 6)
	require.NoError(t, err)

	uid := NewBoardUid()
	snapshot := NewSnapshot(uid, b)

	parsed, err := ParseSnapshot(snapshot.String())
	require.NoError(t, err)
	assert.Equal(t, uid, parsed.BoardUid)
	assert.Equal(t, 8, parsed.Columns)
	assert.Equal(t, 6, parsed.Rows)

	restored, err := parsed.Board()
	require.NoError(t, err)
	assert.Equal(t, b.Grid(), restored.Grid())
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	_, err := ParseSnapshot("{not json")
	assert.Error(t, err)

	s := Snapshot{Columns: 2, Rows: 2, Cells: [][]othello.Token{{0, 0}}}
	_, err = s.Board()
	assert.ErrorIs(t, err, othello.ErrInvalidDimensions)

	s = Snapshot{Columns: 1, Rows: 2, Cells: [][]othello.Token{{0, 5}}}
	_, err = s.Board()
	assert.ErrorIs(t, err, othello.ErrInvalidToken)
}

func TestLegalityRecord(t *testing.T) {
	b, err := othello.New(8, 8)
	require.NoError(t, err)

	uid := NewBoardUid()
	record, err := NewLegalityRecord(uid, b, 3, 5, othello.Dark)
	require.NoError(t, err)
	assert.True(t, record.Legal)
	assert.True(t, strings.Contains(record.String(), `"Legal":true`))
	assert.True(t, strings.Contains(record.String(), string(uid)))

	_, err = NewLegalityRecord(uid, b, 9, 5, othello.Dark)
	assert.ErrorIs(t, err, othello.ErrOutOfRange)
}

func TestBoardUidAndTimeStamp(t *testing.T) {
	assert.True(t, NewBoardUid().Valid())
	assert.False(t, BoardUid("board-1").Valid())
	assert.NotEqual(t, NewBoardUid(), NewBoardUid())

	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	parsed, err := NewTimeStamp(now).Time()
	require.NoError(t, err)
	assert.True(t, now.Equal(parsed))
}
