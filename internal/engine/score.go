package engine

import "fmt"

// Ledger accumulates the score of the current session and remembers the
// best score seen by this process.
type Ledger struct {
	score int
	best  int
}

// Add credits delta points. Negative deltas panic.
func (l *Ledger) Add(delta int) {
	if delta < 0 {
		panic(fmt.Sprintf("engine: negative score delta %d", delta))
	}
	l.score += delta
	l.best = max(l.best, l.score)
}

// Score returns the current session score.
func (l *Ledger) Score() int { return l.score }

// Best returns the highest score seen so far.
func (l *Ledger) Best() int { return l.best }

// Reset zeroes the session score and keeps the best.
func (l *Ledger) Reset() { l.score = 0 }
