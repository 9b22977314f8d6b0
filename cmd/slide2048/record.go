package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Journal states for a recorded session.
const (
	recordGameOver  = "game_over"
	recordAbandoned = "abandoned"
)

// errReplayMismatch is returned when a replay does not reproduce the
// recorded board or score.
var errReplayMismatch = errors.New("replay does not match the journal")

// recordFromSnapshot builds a journal record for a finished game.
func recordFromSnapshot(snap t2048.Snapshot, rulesYAML string, started, ended time.Time) storage.SessionRecord {
	state := recordAbandoned
	if snap.Finished {
		state = recordGameOver
	}
	return storage.SessionRecord{
		GameID:    t2048.ID,
		Seed:      snap.Seed,
		Rules:     rulesYAML,
		Moves:     snap.Moves,
		MoveCount: len(snap.Moves),
		Score:     snap.Score,
		MaxRank:   snap.MaxRank,
		State:     state,
		Board:     snap.Board.Fingerprint(),
		StartedAt: started,
		EndedAt:   ended,
	}
}

// recordFromSession builds a journal record for a headless session.
func recordFromSession(s *engine.Session, moves []engine.Direction, rulesYAML string, started, ended time.Time) storage.SessionRecord {
	snap := s.Snapshot()
	state := recordAbandoned
	if snap.State == engine.StateGameOver {
		state = recordGameOver
	}
	notation := t2048.FormatMoves(moves)
	return storage.SessionRecord{
		GameID:    t2048.ID,
		Seed:      snap.Seed,
		Rules:     rulesYAML,
		Moves:     notation,
		MoveCount: len(notation),
		Score:     snap.Score,
		MaxRank:   snap.MaxRank,
		State:     state,
		Board:     snap.Ranks.Fingerprint(),
		StartedAt: started,
		EndedAt:   ended,
	}
}

// replayResult is the outcome of re-running a journal entry.
type replayResult struct {
	Session *engine.Session
	Applied int
	Board   string // fingerprint after replay
	Score   int
}

// verifyRecord replays rec under its stored rules and checks that the final
// board and score match. The result is filled in even on a mismatch.
func verifyRecord(rec storage.SessionRecord, opts ...engine.Option) (replayResult, error) {
	moves, err := t2048.ParseMoves(rec.Moves)
	if err != nil {
		return replayResult{}, fmt.Errorf("journal entry %s: %w", rec.ShortID(), err)
	}
	rules, err := config.ParseRules([]byte(rec.Rules))
	if err != nil {
		return replayResult{}, fmt.Errorf("journal entry %s: %w", rec.ShortID(), err)
	}

	opts = append([]engine.Option{engine.WithPolicy(rules.Policy())}, opts...)
	s, n, err := t2048.Replay(rec.Seed, moves, opts...)
	if err != nil {
		return replayResult{}, err
	}

	snap := s.Snapshot()
	res := replayResult{
		Session: s,
		Applied: n,
		Board:   snap.Ranks.Fingerprint(),
		Score:   snap.Score,
	}
	if res.Board != rec.Board || res.Score != rec.Score {
		return res, fmt.Errorf("%w: board %s score %d, recorded %s score %d",
			errReplayMismatch, res.Board, res.Score, rec.Board, rec.Score)
	}
	return res, nil
}

// formatBoard renders ranks as tile values, top row first.
func formatBoard(r engine.Ranks) string {
	var b strings.Builder
	for y := engine.Size - 1; y >= 0; y-- {
		for x := range engine.Size {
			if r[x][y] == 0 {
				fmt.Fprintf(&b, "%6s", ".")
			} else {
				fmt.Fprintf(&b, "%6d", engine.Value(r[x][y]))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// rulesText returns the YAML stored with each journal entry.
func rulesText(rules config.Rules) (string, error) {
	data, err := rules.YAML()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
