package othello

import "github.com/pkg/errors"

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrOutOfRange        = errors.New("coordinate out of range")
	ErrInvalidToken      = errors.New("invalid token")
)
