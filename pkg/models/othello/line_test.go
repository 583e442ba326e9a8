package othello

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	B = Blank
	D = Dark
	L = Light
)

func TestIsLegalInShortLine(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		line  []Token
		want  bool
	}{
		{"empty", D, nil, false},
		{"all blank", D, []Token{B, B, B}, false},
		{"own first", D, []Token{D, L, D}, false},
		{"one captured", D, []Token{L, D}, true},
		{"run captured", D, []Token{L, L, L, D, B}, true},
		{"gap before own", D, []Token{L, B, D}, false},
		{"runs off the edge", D, []Token{L, L}, false},
		{"light captures", L, []Token{D, D, L}, true},
		{"light own first", L, []Token{L, D, L}, false},
		{"blank token", B, []Token{L, D}, false},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, IsLegalInShortLine(test.token, test.line), test.name)
	}
}

func TestIsLegalInLine(t *testing.T) {
	tests := []struct {
		name     string
		position int
		token    Token
		line     []Token
		want     bool
	}{
		{"forward", 0, D, []Token{B, L, D}, true},
		{"backward", 2, D, []Token{D, L, B}, true},
		{"both open", 2, D, []Token{D, L, B, L, B}, true},
		{"occupied", 1, D, []Token{B, L, D}, false},
		{"interior blank neighbours", 2, D, []Token{D, B, B, B, D}, false},
		{"edge blank neighbour", 0, D, []Token{B, B, L, D}, false},
		{"last index", 3, L, []Token{L, D, D, B}, true},
		{"no closing token", 1, L, []Token{B, B, D, D}, false},
		{"position below line", -1, D, []Token{B, L, D}, false},
		{"position past line", 3, D, []Token{B, L, D}, false},
		{"single cell", 0, D, []Token{B}, false},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, IsLegalInLine(test.position, test.token, test.line), test.name)
	}
}

func TestIsLegalInLineLeavesLineUntouched(t *testing.T) {
	line := []Token{D, L, L, B, L, D}
	want := append([]Token(nil), line...)

	assert.True(t, IsLegalInLine(3, D, line))
	assert.Equal(t, want, line)
}

func TestTokenHelpers(t *testing.T) {
	assert.Equal(t, Light, Dark.Opponent())
	assert.Equal(t, Dark, Light.Opponent())
	assert.True(t, Dark.Valid())
	assert.True(t, Light.Valid())
	assert.False(t, Blank.Valid())
	assert.Equal(t, "Dark", Dark.String())
	assert.Equal(t, "Light", Light.String())

	for s, want := range map[string]Token{"dark": Dark, " Light ": Light, "-1": Light, "0": Blank} {
		got, err := ParseToken(s)
		assert.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	_, err := ParseToken("grey")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSquare(t *testing.T) {
	s := NewSquare(3, 5)
	assert.Equal(t, 3, s.Column())
	assert.Equal(t, 5, s.Row())
	assert.Equal(t, "(3, 5)", s.String())
	assert.Less(t, int(NewSquare(2, 7)), int(NewSquare(3, 0)))
}
