package engine

import "fmt"

// RankSource reports the rank of a live tile. *Grid implements it.
type RankSource interface {
	Rank(id TileID) (int, error)
}

// ResolveSlice computes the operations that compact one view row toward
// index 0. Equal neighbours merge once; a merged survivor is final for the
// pass. Every handle in the slice must be live in ranks, even one that is
// never compared. The slice itself is not modified.
func ResolveSlice(slice []TileID, turn QuarterTurn, ranks RankSource) ([]Operation, error) {
	for _, id := range slice {
		if id == NoTile {
			continue
		}
		if _, err := ranks.Rank(id); err != nil {
			return nil, consistencyFault(err)
		}
	}

	queue := append([]TileID(nil), slice...)
	var ops []Operation

	for len(queue) > 0 {
		front := queue[0]
		queue = queue[1:]

		if front == NoTile {
			ops = appendSteps(ops, queue, turn)
			continue
		}
		if len(queue) == 0 {
			break
		}

		second := queue[0]
		queue = queue[1:]

		if second == NoTile {
			// Close the gap and look at front again.
			ops = appendSteps(ops, queue, turn)
			queue = append([]TileID{front}, queue...)
			continue
		}

		ra, err := ranks.Rank(front)
		if err != nil {
			return nil, consistencyFault(err)
		}
		rb, err := ranks.Rank(second)
		if err != nil {
			return nil, consistencyFault(err)
		}

		if ra == rb {
			ops = append(ops, Merge(front, second, turn))
			ops = appendSteps(ops, queue, turn)
			continue
		}
		queue = append([]TileID{second}, queue...)
	}

	return ops, nil
}

func appendSteps(ops []Operation, rest []TileID, turn QuarterTurn) []Operation {
	for _, id := range rest {
		if id != NoTile {
			ops = append(ops, Step(id, turn))
		}
	}
	return ops
}

// ResolveMove resolves every slice of g for direction d. The grid is only
// read.
func ResolveMove(g *Grid, d Direction) ([]Operation, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("engine: resolve: invalid direction %d", int(d))
	}
	turn := d.Turn()
	view := Rotate(g.Cells(), turn)

	var ops []Operation
	for i := range Size {
		row, err := ResolveSlice(view[i][:], turn, g)
		if err != nil {
			return nil, fmt.Errorf("engine: resolve %s row %d: %w", d, i, err)
		}
		ops = append(ops, row...)
	}
	return ops, nil
}
