package engine

import "fmt"

// Direction is a move command.
type Direction int

// Declaration order matches the quarter-turn table.
const (
	DirDown Direction = iota
	DirLeft
	DirUp
	DirRight
)

// Directions lists every direction in display order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Turn returns the rotation that makes d point toward view row index 0.
func (d Direction) Turn() QuarterTurn {
	return QuarterTurn(d)
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirDown && d <= DirRight
}

// Letter returns the single-letter notation for d.
func (d Direction) Letter() byte {
	switch d {
	case DirUp:
		return 'U'
	case DirDown:
		return 'D'
	case DirLeft:
		return 'L'
	case DirRight:
		return 'R'
	}
	return '?'
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
