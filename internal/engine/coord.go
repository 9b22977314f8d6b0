package engine

import "fmt"

// Size is the board dimension N. The board is always Size x Size.
const Size = 4

// Coord addresses one cell. X grows to the right, Y grows upward, so a
// downward slide compacts toward Y = 0.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders coordinates by X, then Y.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// AllCoords returns every board coordinate in Coord order.
func AllCoords() []Coord {
	out := make([]Coord, 0, Size*Size)
	for x := range Size {
		for y := range Size {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}

func mustInBounds(c Coord) {
	if !c.InBounds() {
		panic(fmt.Sprintf("engine: coordinate %v out of range", c))
	}
}
