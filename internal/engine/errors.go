package engine

import "errors"

var (
	// ErrConsistency marks a broken internal model: an operation or resolver
	// pass referenced state that does not exist. A pass that hits it is
	// aborted without touching the grid.
	ErrConsistency = errors.New("model consistency fault")

	// ErrTileNotFound is returned when a tile handle is not live in the grid.
	ErrTileNotFound = errors.New("tile not found")

	// ErrCellOccupied is returned when a tile is placed or moved onto a cell
	// that already holds another tile.
	ErrCellOccupied = errors.New("cell occupied")

	// ErrBoardFull is returned when a spawn is requested with no empty cell.
	ErrBoardFull = errors.New("board full")

	// ErrCommandDropped is returned by Session.Move when the session is not
	// accepting input.
	ErrCommandDropped = errors.New("command dropped")
)

// fault wraps err so that errors.Is matches both err and ErrConsistency.
type fault struct {
	err error
}

func (f fault) Error() string { return ErrConsistency.Error() + ": " + f.err.Error() }

func (f fault) Unwrap() []error { return []error{ErrConsistency, f.err} }

func consistencyFault(err error) error {
	if err == nil || errors.Is(err, ErrConsistency) {
		return err
	}
	return fault{err: err}
}
