package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// MoveReport describes one completed move.
type MoveReport struct {
	Direction Direction
	Ops       []Operation
	Outcome   Outcome
	// Before is the board as it was when the move was accepted.
	Before Ranks
	// Slides holds the path of every tile that was on the board before the
	// move, in Coord order of the starting cell.
	Slides []Slide
	// Spawned is nil when the move changed nothing.
	Spawned *Spawned
}

// Slide is the path of one tile during a move.
type Slide struct {
	ID       TileID
	Rank     int // rank before the move
	From, To Coord
	// Merged is set on the survivor of a merge.
	Merged bool
	// Absorbed is set on a tile removed by a merge. To is the survivor's cell.
	Absorbed bool
}

// Changed reports whether the move altered the board.
func (r MoveReport) Changed() bool {
	return len(r.Ops) > 0
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPolicy replaces the default spawn policy.
func WithPolicy(p SpawnPolicy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

// WithRandSource replaces the seeded generator. The source is called with
// the seed on every Reset.
func WithRandSource(src func(seed int64) Rand) Option {
	return func(s *Session) {
		if src != nil {
			s.newRand = src
		}
	}
}

// Session is one game: the grid, the score ledger, the spawner and the turn
// state machine. It is not safe for concurrent use; one driver calls Submit
// and Tick.
type Session struct {
	logger  *log.Logger
	policy  SpawnPolicy
	newRand func(seed int64) Rand

	seed    int64
	grid    *Grid
	ledger  Ledger
	spawner *Spawner
	state   GameState
	moves   int

	pending    Direction
	hasPending bool
	ops        []Operation
	current    MoveReport
	last       MoveReport
}

// NewSession creates a session and resets it with seed.
func NewSession(seed int64, opts ...Option) (*Session, error) {
	s := &Session{
		logger: log.New(io.Discard),
		policy: DefaultSpawnPolicy(),
		newRand: func(seed int64) Rand {
			return NewRand(seed)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.policy.Validate(); err != nil {
		return nil, err
	}
	if err := s.Reset(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset starts a new game: empty grid, zero score, fresh generator from
// seed, the initial tiles spawned and the state at Input. The best score is
// kept.
func (s *Session) Reset(seed int64) error {
	spawner, err := NewSpawner(s.newRand(seed), s.policy)
	if err != nil {
		return err
	}
	s.seed = seed
	s.grid = NewGrid()
	s.ledger.Reset()
	s.spawner = spawner
	s.moves = 0
	s.hasPending = false
	s.ops = nil
	s.current = MoveReport{}
	s.last = MoveReport{}

	for range s.policy.InitialTiles {
		if _, err := s.spawner.Spawn(s.grid); err != nil {
			return fmt.Errorf("engine: reset: %w", err)
		}
	}
	s.state = StateInput
	if IsGameOver(s.grid.Ranks()) {
		s.state = StateGameOver
	}
	s.logger.Debug("session reset", "seed", seed, "tiles", s.grid.Len())
	return nil
}

// Submit offers a direction. It is accepted only in Input with no command
// already queued; anything else is dropped and false is returned.
func (s *Session) Submit(d Direction) bool {
	if !d.Valid() {
		s.logger.Debug("invalid direction dropped", "direction", int(d))
		return false
	}
	if s.state != StateInput || s.hasPending {
		s.logger.Debug("command dropped", "direction", d, "state", s.state)
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// Tick performs at most one state transition and returns the new state.
// A consistency fault aborts the move, returns the state to Input and is
// reported as the error.
func (s *Session) Tick() (GameState, error) {
	switch s.state {
	case StateInput:
		if !s.hasPending {
			return s.state, nil
		}
		s.hasPending = false
		s.current = MoveReport{Direction: s.pending, Before: s.grid.Ranks()}
		s.state = StateCalculate

	case StateCalculate:
		ops, err := ResolveMove(s.grid, s.current.Direction)
		if err != nil {
			return s.abort("calculate", err)
		}
		s.ops = ops
		s.state = StateMovement

	case StateMovement:
		next := s.grid.Clone()
		outcome, err := ApplyAll(next, s.ops)
		if err != nil {
			return s.abort("movement", err)
		}
		s.current.Slides = slides(s.grid, next, s.ops)
		s.grid = next
		s.ledger.Add(outcome.Gained)
		s.current.Ops = s.ops
		s.current.Outcome = outcome
		s.ops = nil
		s.state = StateSpawn

	case StateSpawn:
		if s.current.Changed() {
			spawned, err := s.spawner.Spawn(s.grid)
			switch {
			case errors.Is(err, ErrBoardFull):
				s.logger.Warn("spawn requested on a full board", "direction", s.current.Direction)
			case err != nil:
				return s.abort("spawn", err)
			default:
				s.current.Spawned = &spawned
			}
		}
		s.moves++
		s.last = s.current
		s.current = MoveReport{}
		s.state = StateInput
		if IsGameOver(s.grid.Ranks()) {
			s.state = StateGameOver
			s.logger.Info("game over", "score", s.ledger.Score(), "moves", s.moves)
		}

	case StateGameOver:
	}
	return s.state, nil
}

func (s *Session) abort(stage string, err error) (GameState, error) {
	s.logger.Error("move aborted", "stage", stage, "direction", s.current.Direction, "err", err)
	s.ops = nil
	s.current = MoveReport{}
	s.state = StateInput
	return s.state, fmt.Errorf("engine: %s: %w", stage, err)
}

// Move submits d and ticks until the state machine settles in Input or
// GameOver. It is the headless driver used by replays and tests.
func (s *Session) Move(d Direction) (MoveReport, error) {
	if !s.Submit(d) {
		return MoveReport{}, fmt.Errorf("engine: move %s in state %s: %w", d, s.state, ErrCommandDropped)
	}
	for {
		state, err := s.Tick()
		if err != nil {
			return MoveReport{}, err
		}
		if state == StateInput || state == StateGameOver {
			return s.last, nil
		}
	}
}

// State returns the current state.
func (s *Session) State() GameState { return s.state }

// Score returns the session score.
func (s *Session) Score() int { return s.ledger.Score() }

// Best returns the best score seen by this session value.
func (s *Session) Best() int { return s.ledger.Best() }

// Seed returns the seed of the current game.
func (s *Session) Seed() int64 { return s.seed }

// Moves returns how many moves have completed in the current game.
func (s *Session) Moves() int { return s.moves }

// LastMove returns the report of the most recent completed move.
func (s *Session) LastMove() MoveReport { return s.last }

// Tile returns a live tile by handle.
func (s *Session) Tile(id TileID) (Tile, bool) { return s.grid.Tile(id) }

func slides(before, after *Grid, ops []Operation) []Slide {
	into := make(map[TileID]TileID)
	for _, op := range ops {
		if op.Kind == OpMerge {
			into[op.Absorbed] = op.Tile
		}
	}

	out := make([]Slide, 0, before.Len())
	for _, t := range before.Tiles() {
		sl := Slide{ID: t.ID, Rank: t.Rank, From: t.Pos, To: t.Pos}
		if now, ok := after.Tile(t.ID); ok {
			sl.To = now.Pos
			sl.Merged = now.Rank != t.Rank
		} else if survivor, ok := into[t.ID]; ok {
			sl.To, _ = after.Locate(survivor)
			sl.Absorbed = true
		}
		out = append(out, sl)
	}
	return out
}
