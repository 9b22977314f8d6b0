package engine

import (
	"fmt"
	"strings"
)

// Cells is a raw coordinate-to-handle table indexed [x][y].
type Cells [Size][Size]TileID

// Ranks is a value snapshot of a board indexed [x][y]. Zero means empty.
type Ranks [Size][Size]int

// Grid maps every coordinate to an optional tile and owns the arena the
// tiles live in. A live tile sits at exactly one coordinate and no two live
// tiles share one.
type Grid struct {
	cells Cells
	arena []Tile // arena[id-1]
	alive []bool
	live  int
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// FromRanks builds a grid from a rank table. Tiles are created in Coord
// order, so handles are deterministic for a given table.
func FromRanks(r Ranks) *Grid {
	g := NewGrid()
	for _, c := range AllCoords() {
		if rank := r[c.X][c.Y]; rank > 0 {
			if _, err := g.Place(c, rank); err != nil {
				panic(err)
			}
		}
	}
	return g
}

// Get returns the handle at c. Panics if c is off the board.
func (g *Grid) Get(c Coord) (TileID, bool) {
	mustInBounds(c)
	id := g.cells[c.X][c.Y]
	return id, id != NoTile
}

// Set stores id at c. Setting NoTile clears the cell and retires the tile it
// held. Setting a live tile moves it from wherever it was. Overwriting a
// different live tile is an invariant violation and panics.
func (g *Grid) Set(c Coord, id TileID) {
	mustInBounds(c)
	cur := g.cells[c.X][c.Y]
	if cur == id {
		return
	}
	if id == NoTile {
		g.retire(cur)
		return
	}
	if !g.isLive(id) {
		panic(fmt.Sprintf("engine: set %v: tile %d is not live", c, id))
	}
	if cur != NoTile {
		panic(fmt.Sprintf("engine: set %v: cell already holds tile %d", c, cur))
	}
	old := g.arena[id-1].Pos
	g.cells[old.X][old.Y] = NoTile
	g.cells[c.X][c.Y] = id
	g.arena[id-1].Pos = c
}

// Occupied returns the coordinates holding a tile, in Coord order.
func (g *Grid) Occupied() []Coord {
	var out []Coord
	for _, c := range AllCoords() {
		if g.cells[c.X][c.Y] != NoTile {
			out = append(out, c)
		}
	}
	return out
}

// Empty returns the coordinates holding no tile, in Coord order.
func (g *Grid) Empty() []Coord {
	var out []Coord
	for _, c := range AllCoords() {
		if g.cells[c.X][c.Y] == NoTile {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of live tiles.
func (g *Grid) Len() int {
	return g.live
}

// Place creates a new tile of the given rank at c.
func (g *Grid) Place(c Coord, rank int) (TileID, error) {
	mustInBounds(c)
	if rank < 1 {
		return NoTile, fmt.Errorf("engine: place %v: invalid rank %d", c, rank)
	}
	if cur := g.cells[c.X][c.Y]; cur != NoTile {
		return NoTile, fmt.Errorf("engine: place %v: holds tile %d: %w", c, cur, ErrCellOccupied)
	}
	id := TileID(len(g.arena) + 1)
	g.arena = append(g.arena, Tile{ID: id, Rank: rank, Pos: c})
	g.alive = append(g.alive, true)
	g.cells[c.X][c.Y] = id
	g.live++
	return id, nil
}

// Tile returns the live tile with the given handle.
func (g *Grid) Tile(id TileID) (Tile, bool) {
	if !g.isLive(id) {
		return Tile{}, false
	}
	return g.arena[id-1], true
}

// Locate returns where a live tile sits.
func (g *Grid) Locate(id TileID) (Coord, bool) {
	t, ok := g.Tile(id)
	return t.Pos, ok
}

// Rank returns the rank of a live tile.
func (g *Grid) Rank(id TileID) (int, error) {
	t, ok := g.Tile(id)
	if !ok {
		return 0, fmt.Errorf("engine: rank of tile %d: %w", id, ErrTileNotFound)
	}
	return t.Rank, nil
}

// Move relocates a live tile to an empty cell.
func (g *Grid) Move(id TileID, to Coord) error {
	mustInBounds(to)
	if !g.isLive(id) {
		return fmt.Errorf("engine: move tile %d: %w", id, ErrTileNotFound)
	}
	if cur := g.cells[to.X][to.Y]; cur != NoTile && cur != id {
		return fmt.Errorf("engine: move tile %d to %v: holds tile %d: %w", id, to, cur, ErrCellOccupied)
	}
	g.Set(to, id)
	return nil
}

// Remove retires a live tile and clears its cell.
func (g *Grid) Remove(id TileID) error {
	if !g.isLive(id) {
		return fmt.Errorf("engine: remove tile %d: %w", id, ErrTileNotFound)
	}
	g.retire(id)
	return nil
}

// Promote doubles a live tile and returns its new rank.
func (g *Grid) Promote(id TileID) (int, error) {
	if !g.isLive(id) {
		return 0, fmt.Errorf("engine: promote tile %d: %w", id, ErrTileNotFound)
	}
	g.arena[id-1].Rank++
	return g.arena[id-1].Rank, nil
}

// Cells returns a copy of the coordinate-to-handle table.
func (g *Grid) Cells() Cells {
	return g.cells
}

// Ranks returns a value snapshot of the board.
func (g *Grid) Ranks() Ranks {
	var r Ranks
	for x := range Size {
		for y := range Size {
			if id := g.cells[x][y]; id != NoTile {
				r[x][y] = g.arena[id-1].Rank
			}
		}
	}
	return r
}

// Tiles returns the live tiles in Coord order.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, 0, g.live)
	for _, c := range AllCoords() {
		if id := g.cells[c.X][c.Y]; id != NoTile {
			out = append(out, g.arena[id-1])
		}
	}
	return out
}

// MaxRank returns the highest rank on the board, or 0 when empty.
func (g *Grid) MaxRank() int {
	best := 0
	for _, t := range g.Tiles() {
		best = max(best, t.Rank)
	}
	return best
}

// Clone returns a deep copy. Handles stay valid in the copy.
func (g *Grid) Clone() *Grid {
	return &Grid{
		cells: g.cells,
		arena: append([]Tile(nil), g.arena...),
		alive: append([]bool(nil), g.alive...),
		live:  g.live,
	}
}

func (g *Grid) isLive(id TileID) bool {
	return id > NoTile && int(id) <= len(g.arena) && g.alive[id-1]
}

func (g *Grid) retire(id TileID) {
	if !g.isLive(id) {
		return
	}
	p := g.arena[id-1].Pos
	g.cells[p.X][p.Y] = NoTile
	g.alive[id-1] = false
	g.live--
}

// String renders the board top row first, one rank per cell, "." for empty.
func (r Ranks) String() string {
	var b strings.Builder
	for y := Size - 1; y >= 0; y-- {
		for x := range Size {
			if x > 0 {
				b.WriteByte(' ')
			}
			if r[x][y] == 0 {
				b.WriteByte('.')
			} else {
				fmt.Fprintf(&b, "%d", r[x][y])
			}
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Fingerprint encodes the board as Size*Size base-36 digits, top row first,
// with '.' for empty cells. Ranks above 35 are written as '+'.
func (r Ranks) Fingerprint() string {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 0, Size*Size)
	for y := Size - 1; y >= 0; y-- {
		for x := range Size {
			switch v := r[x][y]; {
			case v == 0:
				b = append(b, '.')
			case v < len(digits):
				b = append(b, digits[v])
			default:
				b = append(b, '+')
			}
		}
	}
	return string(b)
}

// Count returns the number of occupied cells.
func (r Ranks) Count() int {
	n := 0
	for x := range Size {
		for y := range Size {
			if r[x][y] != 0 {
				n++
			}
		}
	}
	return n
}
