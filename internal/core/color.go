package core

// Color is a semantic colour for a screen cell. The front end maps each
// value to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFrame
	ColorText
	ColorMuted
	ColorAccent
	ColorAlert
	ColorHighlight

	// ColorTile1 .. ColorTile11 colour tiles of rank 1 (2) through 11 (2048).
	ColorTile1
	ColorTile2
	ColorTile3
	ColorTile4
	ColorTile5
	ColorTile6
	ColorTile7
	ColorTile8
	ColorTile9
	ColorTile10
	ColorTile11
	// ColorTileSuper colours every tile beyond 2048.
	ColorTileSuper
)

// TileColor returns the colour for a tile of the given rank.
func TileColor(rank int) Color {
	switch {
	case rank <= 0:
		return ColorMuted
	case rank > 11:
		return ColorTileSuper
	default:
		return ColorTile1 + Color(rank-1)
	}
}
