package message

import "time"

type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.UTC().Format(time.RFC3339))
}

func (ts TimeStamp) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, string(ts))
}
