package othello

// IsLegalInLine reports whether placing token at line[position] captures in
// either direction along line.
//
// An interior position whose two neighbours are blank is rejected without
// scanning. Positions at either end of the line always take the full scan.
func IsLegalInLine(position int, token Token, line []Token) bool {
	if position < 0 || position >= len(line) {
		return false
	}

	if line[position] != Blank {
		return false
	}

	if position > 0 && position < len(line)-1 &&
		line[position-1] == Blank && line[position+1] == Blank {
		return false
	}

	if IsLegalInShortLine(token, line[position+1:]) {
		return true
	}

	backward := make([]Token, position)
	for i := range backward {
		backward[i] = line[position-1-i]
	}

	return IsLegalInShortLine(token, backward)
}

// IsLegalInShortLine walks line outward from the cell next to the candidate
// and reports whether a run of one or more opponent tokens is closed by one of
// token's own.
func IsLegalInShortLine(token Token, line []Token) bool {
	for i, v := range line {
		switch rel := token.relative(v); {
		case rel > 0:
			return i > 0
		case rel == 0:
			return false
		}
	}
	return false
}
