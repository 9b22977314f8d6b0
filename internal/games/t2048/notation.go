package t2048

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ErrUnknownMove is returned by ParseMoves for a token that names no
// direction.
var ErrUnknownMove = errors.New("unknown move")

var moveWords = map[string]engine.Direction{
	"up":    engine.DirUp,
	"down":  engine.DirDown,
	"left":  engine.DirLeft,
	"right": engine.DirRight,
}

var moveLetters = map[rune]engine.Direction{
	'u': engine.DirUp,
	'd': engine.DirDown,
	'l': engine.DirLeft,
	'r': engine.DirRight,
}

// FormatMoves encodes moves one letter each, e.g. "LLUR".
func FormatMoves(moves []engine.Direction) string {
	b := make([]byte, len(moves))
	for i, d := range moves {
		b[i] = d.Letter()
	}
	return string(b)
}

// ParseMoves decodes a move list. Tokens are separated by commas or spaces;
// a token is either a direction word ("left") or a run of letters ("LLUR").
// Case is ignored.
func ParseMoves(s string) ([]engine.Direction, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})

	var moves []engine.Direction
	for _, tok := range tokens {
		tok = strings.ToLower(tok)
		if d, ok := moveWords[tok]; ok {
			moves = append(moves, d)
			continue
		}
		if run, ok := parseLetters(tok); ok {
			moves = append(moves, run...)
			continue
		}
		return nil, unknownMove(tok)
	}
	return moves, nil
}

func parseLetters(tok string) ([]engine.Direction, bool) {
	out := make([]engine.Direction, 0, len(tok))
	for _, r := range tok {
		d, ok := moveLetters[r]
		if !ok {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}

func unknownMove(tok string) error {
	if s := suggestMove(tok); s != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownMove, tok, s)
	}
	return fmt.Errorf("%w %q", ErrUnknownMove, tok)
}

// suggestMove returns the direction word closest to tok, or "" when nothing
// is within two edits.
func suggestMove(tok string) string {
	best, bestDist := "", 3
	for _, w := range []string{"up", "down", "left", "right"} {
		if d := levenshtein.ComputeDistance(tok, w); d < bestDist {
			best, bestDist = w, d
		}
	}
	return best
}
