package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Play feeds moves into s until they run out or the game ends. It returns
// how many moves were applied. Moves left over after game over are not an
// error.
func Play(s *engine.Session, moves []engine.Direction) (int, error) {
	for i, d := range moves {
		if s.State() == engine.StateGameOver {
			return i, nil
		}
		if _, err := s.Move(d); err != nil {
			return i, fmt.Errorf("t2048: move %d (%s): %w", i+1, d, err)
		}
	}
	return len(moves), nil
}

// Replay starts a fresh session from seed and plays moves on it.
func Replay(seed int64, moves []engine.Direction, opts ...engine.Option) (*engine.Session, int, error) {
	s, err := engine.NewSession(seed, opts...)
	if err != nil {
		return nil, 0, err
	}
	n, err := Play(s, moves)
	return s, n, err
}
