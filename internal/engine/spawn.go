package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Rand is the randomness the spawner needs. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns the default seeded generator.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// RankWeight is one entry of the spawn table.
type RankWeight struct {
	Rank   int `yaml:"rank"`
	Weight int `yaml:"weight"`
}

// SpawnPolicy controls how tiles enter the board.
type SpawnPolicy struct {
	InitialTiles int
	Weights      []RankWeight
}

// DefaultSpawnPolicy starts with two tiles and spawns rank 1 nine times out
// of ten, rank 2 otherwise.
func DefaultSpawnPolicy() SpawnPolicy {
	return SpawnPolicy{
		InitialTiles: 2,
		Weights: []RankWeight{
			{Rank: 1, Weight: 9},
			{Rank: 2, Weight: 1},
		},
	}
}

// Validate checks the policy can be used by a Spawner.
func (p SpawnPolicy) Validate() error {
	if p.InitialTiles < 1 || p.InitialTiles > Size*Size {
		return fmt.Errorf("engine: initial tiles must be in [1, %d], got %d", Size*Size, p.InitialTiles)
	}
	if len(p.Weights) == 0 {
		return errors.New("engine: spawn weights are empty")
	}
	for _, w := range p.Weights {
		if w.Rank < 1 {
			return fmt.Errorf("engine: spawn rank must be >= 1, got %d", w.Rank)
		}
		if w.Weight <= 0 {
			return fmt.Errorf("engine: spawn weight for rank %d must be positive, got %d", w.Rank, w.Weight)
		}
	}
	return nil
}

// Spawned describes a tile added by the spawner.
type Spawned struct {
	ID   TileID
	Pos  Coord
	Rank int
}

// Spawner places new tiles on uniformly chosen empty cells.
type Spawner struct {
	rng     Rand
	weights []RankWeight
	total   int
}

// NewSpawner binds rng to a validated policy.
func NewSpawner(rng Rand, policy SpawnPolicy) (*Spawner, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	s := &Spawner{rng: rng, weights: append([]RankWeight(nil), policy.Weights...)}
	for _, w := range s.weights {
		s.total += w.Weight
	}
	return s, nil
}

// Spawn adds one tile to g. The cell is drawn first, then the rank.
func (s *Spawner) Spawn(g *Grid) (Spawned, error) {
	empty := g.Empty()
	if len(empty) == 0 {
		return Spawned{}, fmt.Errorf("engine: spawn: %w", ErrBoardFull)
	}
	pos := empty[s.rng.IntN(len(empty))]
	rank := s.pickRank()
	id, err := g.Place(pos, rank)
	if err != nil {
		return Spawned{}, fmt.Errorf("engine: spawn: %w", err)
	}
	return Spawned{ID: id, Pos: pos, Rank: rank}, nil
}

func (s *Spawner) pickRank() int {
	r := s.rng.IntN(s.total)
	for _, w := range s.weights {
		if r < w.Weight {
			return w.Rank
		}
		r -= w.Weight
	}
	return s.weights[len(s.weights)-1].Rank
}
