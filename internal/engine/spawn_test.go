package engine

import (
	"errors"
	"testing"
)

func TestSpawnerPicksEmptyCellAndRank(t *testing.T) {
	g := FromRanks(board([Size][Size]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 0, 1},
		{1, 0, 1, 1},
	}))
	// Empty cells in Coord order: (1,0), (2,1). Draw index 1, then rank roll 9.
	s, err := NewSpawner(&seqRand{vals: []int{1, 9}}, DefaultSpawnPolicy())
	if err != nil {
		t.Fatalf("NewSpawner error: %v", err)
	}

	got, err := s.Spawn(g)
	if err != nil {
		t.Fatalf("Spawn error: %v", err)
	}
	if got.Pos != C(2, 1) {
		t.Errorf("Spawn position = %v, want (2,1)", got.Pos)
	}
	if got.Rank != 2 {
		t.Errorf("Spawn rank = %d, want 2", got.Rank)
	}
	if r, _ := g.Rank(got.ID); r != 2 {
		t.Errorf("placed tile rank = %d, want 2", r)
	}
}

func TestSpawnerWeights(t *testing.T) {
	s, err := NewSpawner(&seqRand{vals: []int{0}}, DefaultSpawnPolicy())
	if err != nil {
		t.Fatalf("NewSpawner error: %v", err)
	}
	tests := []struct {
		roll int
		want int
	}{
		{0, 1},
		{8, 1},
		{9, 2},
	}
	for _, tt := range tests {
		s.rng = &seqRand{vals: []int{tt.roll}}
		if got := s.pickRank(); got != tt.want {
			t.Errorf("pickRank() with roll %d = %d, want %d", tt.roll, got, tt.want)
		}
	}
}

func TestSpawnOnFullBoard(t *testing.T) {
	var full Ranks
	for x := range Size {
		for y := range Size {
			full[x][y] = 1
		}
	}
	g := FromRanks(full)
	s, _ := NewSpawner(NewRand(1), DefaultSpawnPolicy())

	if _, err := s.Spawn(g); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Spawn on full board error = %v, want ErrBoardFull", err)
	}
	if g.Len() != Size*Size {
		t.Errorf("Len() = %d after failed spawn, want %d", g.Len(), Size*Size)
	}
}

func TestSpawnPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		policy  SpawnPolicy
		wantErr bool
	}{
		{"default", DefaultSpawnPolicy(), false},
		{"no initial tiles", SpawnPolicy{InitialTiles: 0, Weights: []RankWeight{{1, 1}}}, true},
		{"too many initial tiles", SpawnPolicy{InitialTiles: Size*Size + 1, Weights: []RankWeight{{1, 1}}}, true},
		{"no weights", SpawnPolicy{InitialTiles: 2}, true},
		{"zero weight", SpawnPolicy{InitialTiles: 2, Weights: []RankWeight{{1, 0}}}, true},
		{"rank zero", SpawnPolicy{InitialTiles: 2, Weights: []RankWeight{{0, 5}}}, true},
		{"single rank", SpawnPolicy{InitialTiles: 1, Weights: []RankWeight{{3, 1}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLedger(t *testing.T) {
	var l Ledger
	l.Add(4)
	l.Add(0)
	l.Add(8)
	if l.Score() != 12 || l.Best() != 12 {
		t.Errorf("Score, Best = %d, %d, want 12, 12", l.Score(), l.Best())
	}

	l.Reset()
	l.Add(4)
	if l.Score() != 4 {
		t.Errorf("Score after Reset = %d, want 4", l.Score())
	}
	if l.Best() != 12 {
		t.Errorf("Best after Reset = %d, want 12", l.Best())
	}

	defer func() {
		if recover() == nil {
			t.Error("Add with negative delta should panic")
		}
	}()
	l.Add(-1)
}
