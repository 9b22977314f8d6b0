package engine

import "fmt"

// QuarterTurn is a rotation by a multiple of 90 degrees. Every direction is
// resolved as "slide toward view row index 0" in the rotated view.
type QuarterTurn int

const (
	Deg000 QuarterTurn = iota
	Deg090
	Deg180
	Deg270
)

// Map returns the grid coordinate shown at view cell (i, j).
func (k QuarterTurn) Map(i, j int) Coord {
	switch k.norm() {
	case Deg090:
		return Coord{X: j, Y: Size - 1 - i}
	case Deg180:
		return Coord{X: Size - 1 - i, Y: Size - 1 - j}
	case Deg270:
		return Coord{X: Size - 1 - j, Y: i}
	default:
		return Coord{X: i, Y: j}
	}
}

// Unmap returns the view cell that shows grid coordinate c.
func (k QuarterTurn) Unmap(c Coord) (i, j int) {
	v := k.Inverse().Map(c.X, c.Y)
	return v.X, v.Y
}

// Inverse returns the turn that undoes k.
func (k QuarterTurn) Inverse() QuarterTurn {
	return (4 - k.norm()) % 4
}

// Then returns the turn equivalent to k followed by o.
func (k QuarterTurn) Then(o QuarterTurn) QuarterTurn {
	return (k.norm() + o.norm()) % 4
}

// DownwardUnit is the grid delta of one step toward view row index 0.
func (k QuarterTurn) DownwardUnit() (dx, dy int) {
	switch k.norm() {
	case Deg090:
		return -1, 0
	case Deg180:
		return 0, 1
	case Deg270:
		return 1, 0
	default:
		return 0, -1
	}
}

// String returns the angle in degrees.
func (k QuarterTurn) String() string {
	return fmt.Sprintf("%d°", int(k.norm())*90)
}

func (k QuarterTurn) norm() QuarterTurn {
	return ((k % 4) + 4) % 4
}

// Rotate returns the view of cells under turn k: out[i][j] is the value at
// k.Map(i, j). Each out[i] is one slice, with j = 0 at the compaction end.
func Rotate[T any](cells [Size][Size]T, k QuarterTurn) [Size][Size]T {
	var out [Size][Size]T
	for i := range Size {
		for j := range Size {
			c := k.Map(i, j)
			out[i][j] = cells[c.X][c.Y]
		}
	}
	return out
}
