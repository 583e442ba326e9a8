package message

import (
	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/bytedance/sonic"
)

// LegalityRecord is the answer to one IsLegal query.
type LegalityRecord struct {
	BoardUid
	Column int
	Row    int
	Token  othello.Token
	Legal  bool
}

func NewLegalityRecord(uid BoardUid, b *othello.Board, column, row int, token othello.Token) (LegalityRecord, error) {
	legal, err := b.IsLegal(column, row, token)
	if err != nil {
		return LegalityRecord{}, err
	}

	return LegalityRecord{
		BoardUid: uid,
		Column:   column,
		Row:      row,
		Token:    token,
		Legal:    legal,
	}, nil
}

func (l LegalityRecord) String() string {
	str, _ := sonic.MarshalString(l)
	return str
}
