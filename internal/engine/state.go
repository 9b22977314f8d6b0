package engine

// GameState is the turn state machine position.
type GameState int

const (
	StateInput GameState = iota
	StateCalculate
	StateMovement
	StateSpawn
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateInput:
		return "input"
	case StateCalculate:
		return "calculate"
	case StateMovement:
		return "movement"
	case StateSpawn:
		return "spawn"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// HasPossibleMerge reports whether two orthogonal neighbours share a rank.
func HasPossibleMerge(r Ranks) bool {
	for x := range Size {
		for y := range Size {
			v := r[x][y]
			if v == 0 {
				continue
			}
			if x < Size-1 && r[x+1][y] == v {
				return true
			}
			if y < Size-1 && r[x][y+1] == v {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether no move can change the board: every cell is
// filled and no orthogonal neighbours share a rank.
func IsGameOver(r Ranks) bool {
	return r.Count() == Size*Size && !HasPossibleMerge(r)
}
