package engine

// Snapshot is the read-only output boundary of a session.
type Snapshot struct {
	// Board holds the tile at every coordinate, indexed [x][y]. A zero Tile
	// (ID NoTile) is an empty cell.
	Board   [Size][Size]Tile
	Ranks   Ranks
	Score   int
	Best    int
	State   GameState
	Moves   int
	Seed    int64
	MaxRank int
	Last    MoveReport
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Ranks:   s.grid.Ranks(),
		Score:   s.ledger.Score(),
		Best:    s.ledger.Best(),
		State:   s.state,
		Moves:   s.moves,
		Seed:    s.seed,
		MaxRank: s.grid.MaxRank(),
		Last:    s.last,
	}
	for _, t := range s.grid.Tiles() {
		snap.Board[t.Pos.X][t.Pos.Y] = t
	}
	return snap
}
