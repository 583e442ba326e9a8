package othello

import (
	"strings"

	"github.com/pkg/errors"
)

type Token int8

const (
	Dark  Token = 1
	Light Token = -1
	Blank Token = 0
)

func (t Token) String() string {
	switch t {
	case Dark:
		return "Dark"
	case Light:
		return "Light"
	case Blank:
		return "Blank"
	}
	return ""
}

// Valid reports whether t is a player token.
func (t Token) Valid() bool {
	return t == Dark || t == Light
}

func (t Token) Opponent() Token {
	return -t
}

// relative is positive for t's own tokens, negative for the opponent's and
// zero for blanks.
func (t Token) relative(v Token) int {
	return int(v) * int(t)
}

var tokenName = map[string]Token{
	"dark":  Dark,
	"d":     Dark,
	"1":     Dark,
	"light": Light,
	"l":     Light,
	"-1":    Light,
	"blank": Blank,
	"0":     Blank,
}

func ParseToken(s string) (Token, error) {
	if t, c := tokenName[strings.ToLower(strings.TrimSpace(s))]; c {
		return t, nil
	}
	return Blank, errors.Wrapf(ErrInvalidToken, "parse %q", s)
}
