package engine

import "fmt"

// OpKind tells a Step from a Merge.
type OpKind int

const (
	OpStep OpKind = iota
	OpMerge
)

// Operation is one atomic board change. Operations are applied in the
// order the resolver emitted them.
type Operation struct {
	Kind OpKind
	// Tile moves one cell on a Step and survives a Merge.
	Tile TileID
	// Absorbed is the tile removed by a Merge.
	Absorbed TileID
	Turn     QuarterTurn
}

// Step builds a one-cell move toward the compaction end.
func Step(id TileID, turn QuarterTurn) Operation {
	return Operation{Kind: OpStep, Tile: id, Turn: turn}
}

// Merge builds a merge of absorbed into survivor.
func Merge(survivor, absorbed TileID, turn QuarterTurn) Operation {
	return Operation{Kind: OpMerge, Tile: survivor, Absorbed: absorbed, Turn: turn}
}

func (o Operation) String() string {
	if o.Kind == OpMerge {
		return fmt.Sprintf("merge(#%d<-#%d, %v)", o.Tile, o.Absorbed, o.Turn)
	}
	return fmt.Sprintf("step(#%d, %v)", o.Tile, o.Turn)
}

// CountMerges returns how many operations in ops are merges.
func CountMerges(ops []Operation) int {
	n := 0
	for _, op := range ops {
		if op.Kind == OpMerge {
			n++
		}
	}
	return n
}
