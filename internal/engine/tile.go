package engine

import "fmt"

// TileID is a stable tile handle. IDs are assigned in creation order and
// are never reused within a session.
type TileID int

// NoTile is the empty handle.
const NoTile TileID = 0

// Tile is one numbered tile. Its displayed value is 2^Rank.
type Tile struct {
	ID   TileID
	Rank int
	Pos  Coord
}

// Value returns 2^Rank.
func (t Tile) Value() int {
	return Value(t.Rank)
}

// String returns "#id r<rank>@(x,y)".
func (t Tile) String() string {
	return fmt.Sprintf("#%d r%d@%v", t.ID, t.Rank, t.Pos)
}

// Value returns the face value of a tile of the given rank.
func Value(rank int) int {
	if rank <= 0 {
		return 0
	}
	return 1 << rank
}
