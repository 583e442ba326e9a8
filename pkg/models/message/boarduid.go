package message

import "github.com/google/uuid"

type BoardUid string

func NewBoardUid() BoardUid {
	return BoardUid(uuid.New().String())
}

func (u BoardUid) Valid() bool {
	_, err := uuid.Parse(string(u))
	return err == nil
}
