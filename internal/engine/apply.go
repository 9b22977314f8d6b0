package engine

import "fmt"

// Outcome summarises the effect of a batch of operations.
type Outcome struct {
	Steps  int
	Merges int
	Gained int
}

// Apply performs one operation on g. A Merge returns the points it earned.
// Any failure is a consistency fault.
func (g *Grid) Apply(op Operation) (int, error) {
	switch op.Kind {
	case OpStep:
		return 0, g.applyStep(op)
	case OpMerge:
		return g.applyMerge(op)
	default:
		return 0, consistencyFault(fmt.Errorf("engine: unknown operation kind %d", op.Kind))
	}
}

func (g *Grid) applyStep(op Operation) error {
	from, ok := g.Locate(op.Tile)
	if !ok {
		return consistencyFault(fmt.Errorf("engine: step tile %d: %w", op.Tile, ErrTileNotFound))
	}
	dx, dy := op.Turn.DownwardUnit()
	to := from.Add(dx, dy)
	if !to.InBounds() {
		return consistencyFault(fmt.Errorf("engine: step tile %d off the board from %v", op.Tile, from))
	}
	if cur, taken := g.Get(to); taken {
		return consistencyFault(fmt.Errorf("engine: step tile %d to %v: holds tile %d: %w", op.Tile, to, cur, ErrCellOccupied))
	}
	return consistencyFault(g.Move(op.Tile, to))
}

func (g *Grid) applyMerge(op Operation) (int, error) {
	survivor, ok := g.Tile(op.Tile)
	if !ok {
		return 0, consistencyFault(fmt.Errorf("engine: merge survivor %d: %w", op.Tile, ErrTileNotFound))
	}
	absorbed, ok := g.Tile(op.Absorbed)
	if !ok {
		return 0, consistencyFault(fmt.Errorf("engine: merge absorbed %d: %w", op.Absorbed, ErrTileNotFound))
	}
	if survivor.Rank != absorbed.Rank {
		return 0, consistencyFault(fmt.Errorf("engine: merge #%d r%d with #%d r%d: rank mismatch",
			survivor.ID, survivor.Rank, absorbed.ID, absorbed.Rank))
	}
	if err := g.Remove(op.Absorbed); err != nil {
		return 0, consistencyFault(err)
	}
	rank, err := g.Promote(op.Tile)
	if err != nil {
		return 0, consistencyFault(err)
	}
	return Value(rank), nil
}

// ApplyAll performs ops in order and stops at the first failure. On error g
// may be partially updated; callers apply to a clone.
func ApplyAll(g *Grid, ops []Operation) (Outcome, error) {
	var out Outcome
	for n, op := range ops {
		gained, err := g.Apply(op)
		if err != nil {
			return out, fmt.Errorf("engine: apply op %d %v: %w", n, op, err)
		}
		if op.Kind == OpMerge {
			out.Merges++
			out.Gained += gained
		} else {
			out.Steps++
		}
	}
	return out, nil
}
