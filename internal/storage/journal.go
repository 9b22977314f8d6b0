package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no session matches an ID.
	ErrNotFound = errors.New("storage: session not found")
	// ErrAmbiguous is returned when an ID prefix matches several sessions.
	ErrAmbiguous = errors.New("storage: session id is ambiguous")
)

// minPrefix is the shortest ID prefix Session accepts.
const minPrefix = 4

// SessionRecord is one finished (or abandoned) game in the journal.
type SessionRecord struct {
	ID        string
	GameID    string
	Seed      int64
	Rules     string // rules YAML the session was played with
	Moves     string // move notation, one letter per completed move
	MoveCount int
	Score     int
	MaxRank   int
	State     string
	Board     string // rank fingerprint of the final board
	StartedAt time.Time
	EndedAt   time.Time
}

// ShortID returns the first eight characters of the ID.
func (r SessionRecord) ShortID() string {
	if len(r.ID) <= 8 {
		return r.ID
	}
	return r.ID[:8]
}

// Duration returns how long the session lasted.
func (r SessionRecord) Duration() time.Duration {
	if r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// SaveSession stores rec and returns its ID. An empty ID gets a fresh UUID;
// saving an existing ID replaces the stored record.
func (s *Store) SaveSession(rec SessionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.EndedAt.IsZero() {
		rec.EndedAt = time.Now().UTC()
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = rec.EndedAt
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions (id, game_id, seed, rules, moves, move_count, score, max_rank, state, board, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			moves = excluded.moves,
			move_count = excluded.move_count,
			score = excluded.score,
			max_rank = excluded.max_rank,
			state = excluded.state,
			board = excluded.board,
			ended_at = excluded.ended_at
	`, rec.ID, rec.GameID, rec.Seed, rec.Rules, rec.Moves, rec.MoveCount, rec.Score, rec.MaxRank,
		rec.State, rec.Board, rec.StartedAt.UTC(), rec.EndedAt.UTC())
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return rec.ID, nil
}

const sessionColumns = `id, game_id, seed, rules, moves, move_count, score, max_rank, state, board, started_at, ended_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (SessionRecord, error) {
	var rec SessionRecord
	var startedAt, endedAt any
	err := row.Scan(&rec.ID, &rec.GameID, &rec.Seed, &rec.Rules, &rec.Moves, &rec.MoveCount,
		&rec.Score, &rec.MaxRank, &rec.State, &rec.Board, &startedAt, &endedAt)
	if err != nil {
		return SessionRecord{}, err
	}
	rec.StartedAt = parseTime(startedAt)
	rec.EndedAt = parseTime(endedAt)
	return rec, nil
}

// Session looks a record up by full ID or by a unique prefix of at least
// four characters.
func (s *Store) Session(id string) (SessionRecord, error) {
	if len(id) < minPrefix {
		return SessionRecord{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	row := s.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	rec, err := scanSession(row)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return SessionRecord{}, fmt.Errorf("storage: cannot query session: %w", err)
	}

	rows, err := s.db.Query(`SELECT `+sessionColumns+` FROM sessions WHERE id LIKE ? || '%' LIMIT 2`, id)
	if err != nil {
		return SessionRecord{}, fmt.Errorf("storage: cannot query session: %w", err)
	}
	defer rows.Close()

	var matches []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return SessionRecord{}, fmt.Errorf("storage: cannot scan session: %w", err)
		}
		matches = append(matches, rec)
	}
	if err := rows.Err(); err != nil {
		return SessionRecord{}, fmt.Errorf("storage: error iterating sessions: %w", err)
	}

	switch len(matches) {
	case 0:
		return SessionRecord{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return SessionRecord{}, fmt.Errorf("%w: %q", ErrAmbiguous, id)
	}
}

// RecentSessions returns up to limit sessions, most recently ended first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY ended_at DESC, id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan session: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating sessions: %w", err)
	}
	return records, nil
}

// DeleteSession removes a session by full ID.
func (s *Store) DeleteSession(id string) error {
	res, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return nil
}
