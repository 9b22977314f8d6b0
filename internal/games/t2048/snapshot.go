package t2048

import "github.com/vovakirdan/tui-2048/internal/engine"

// GameStateType is the coarse state of the game as shown to the player.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game for determinism checks and the journal.
type Snapshot struct {
	Tick    uint64
	Seed    int64
	Score   int
	Best    int
	Moves   string // move notation
	Board   engine.Ranks
	MaxRank int
	State   GameStateType
	// Finished is set once the engine reached game over, whatever the
	// display state.
	Finished bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Tick: g.tick, Seed: g.seed, State: StatePlaying}
	}
	es := g.session.Snapshot()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.anim.active():
		state = StateAnimating
	case es.State == engine.StateGameOver:
		state = StateGameOver
	}

	return Snapshot{
		Tick:    g.tick,
		Seed:    g.seed,
		Score:   es.Score,
		Best:    es.Best,
		Moves:   FormatMoves(g.journal),
		Board:   es.Ranks,
		MaxRank: es.MaxRank,
		State:   state,

		Finished: es.State == engine.StateGameOver,
	}
}

