package engine

import "testing"

// board builds a rank table from visual rows, top row first.
func board(rows [Size][Size]int) Ranks {
	var r Ranks
	for row := range Size {
		y := Size - 1 - row
		for x := range Size {
			r[x][y] = rows[row][x]
		}
	}
	return r
}

// slide resolves and applies one move on a fresh grid built from rows.
func slide(t *testing.T, rows [Size][Size]int, d Direction) (Ranks, Outcome) {
	t.Helper()
	g := FromRanks(board(rows))
	ops, err := ResolveMove(g, d)
	if err != nil {
		t.Fatalf("ResolveMove(%s) error: %v", d, err)
	}
	out, err := ApplyAll(g, ops)
	if err != nil {
		t.Fatalf("ApplyAll(%s) error: %v", d, err)
	}
	return g.Ranks(), out
}

// seqRand replays a fixed sequence of draws, reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

type rankMap map[TileID]int

func (m rankMap) Rank(id TileID) (int, error) {
	if r, ok := m[id]; ok {
		return r, nil
	}
	return 0, ErrTileNotFound
}
