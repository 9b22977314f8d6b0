package engine

import (
	"errors"
	"testing"
)

func TestResolveSlice(t *testing.T) {
	tests := []struct {
		name  string
		slice []TileID
		ranks rankMap
		want  []Operation
	}{
		{
			name:  "empty row",
			slice: []TileID{0, 0, 0, 0},
			want:  nil,
		},
		{
			name:  "tile at far end steps three times",
			slice: []TileID{0, 0, 0, 1},
			ranks: rankMap{1: 1},
			want:  []Operation{Step(1, Deg000), Step(1, Deg000), Step(1, Deg000)},
		},
		{
			name:  "merge then trailing step",
			slice: []TileID{1, 2, 3, 0},
			ranks: rankMap{1: 2, 2: 2, 3: 4},
			want:  []Operation{Merge(1, 2, Deg000), Step(3, Deg000)},
		},
		{
			name:  "no merge possible",
			slice: []TileID{1, 2, 3, 4},
			ranks: rankMap{1: 1, 2: 2, 3: 3, 4: 4},
			want:  nil,
		},
		{
			name:  "gap inside pair",
			slice: []TileID{1, 0, 2, 0},
			ranks: rankMap{1: 1, 2: 1},
			want:  []Operation{Step(2, Deg000), Merge(1, 2, Deg000)},
		},
		{
			name:  "leading gap and inner gap",
			slice: []TileID{0, 1, 0, 2},
			ranks: rankMap{1: 1, 2: 1},
			want: []Operation{
				Step(1, Deg000), Step(2, Deg000),
				Step(2, Deg000),
				Merge(1, 2, Deg000),
			},
		},
		{
			name:  "four equal tiles make two merges",
			slice: []TileID{1, 2, 3, 4},
			ranks: rankMap{1: 2, 2: 2, 3: 2, 4: 2},
			want: []Operation{
				Merge(1, 2, Deg000), Step(3, Deg000), Step(4, Deg000),
				Merge(3, 4, Deg000),
			},
		},
		{
			name:  "survivor does not merge again",
			slice: []TileID{1, 2, 3, 0},
			ranks: rankMap{1: 1, 2: 1, 3: 2},
			want:  []Operation{Merge(1, 2, Deg000), Step(3, Deg000)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSlice(tt.slice, Deg000, tt.ranks)
			if err != nil {
				t.Fatalf("ResolveSlice error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ResolveSlice(%v) = %v, want %v", tt.slice, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("op %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveSliceMissingTile(t *testing.T) {
	tests := []struct {
		name  string
		slice []TileID
	}{
		{"compared pair", []TileID{1, 7, 0, 0}},
		{"lone tile at the front", []TileID{7, 0, 0, 0}},
		{"tile behind a gap", []TileID{0, 0, 0, 7}},
		{"tile behind a finalized pair", []TileID{1, 2, 0, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := ResolveSlice(tt.slice, Deg000, rankMap{1: 1, 2: 2})
			if !errors.Is(err, ErrConsistency) {
				t.Errorf("ResolveSlice(%v) error = %v, want ErrConsistency", tt.slice, err)
			}
			if !errors.Is(err, ErrTileNotFound) {
				t.Errorf("ResolveSlice(%v) error = %v, want ErrTileNotFound", tt.slice, err)
			}
			if ops != nil {
				t.Errorf("ResolveSlice(%v) ops = %v, want none", tt.slice, ops)
			}
		})
	}
}

func TestResolveSliceDoesNotModifyInput(t *testing.T) {
	slice := []TileID{0, 1, 0, 2}
	if _, err := ResolveSlice(slice, Deg000, rankMap{1: 1, 2: 1}); err != nil {
		t.Fatalf("ResolveSlice error: %v", err)
	}
	want := []TileID{0, 1, 0, 2}
	for i := range want {
		if slice[i] != want[i] {
			t.Errorf("slice[%d] = %d after resolve, want %d", i, slice[i], want[i])
		}
	}
}

func TestSlideLeft(t *testing.T) {
	got, out := slide(t, [Size][Size]int{
		{1, 1, 0, 0},
		{2, 0, 2, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 1},
	}, DirLeft)

	want := board([Size][Size]int{
		{2, 0, 0, 0},
		{3, 0, 0, 0},
		{2, 2, 0, 0},
		{1, 0, 0, 0},
	})
	if got != want {
		t.Errorf("slide left: got\n%v\nwant\n%v", got, want)
	}
	if out.Gained != 4+8+4+4 {
		t.Errorf("slide left gained = %d, want 20", out.Gained)
	}
	if out.Merges != 4 {
		t.Errorf("slide left merges = %d, want 4", out.Merges)
	}
}

func TestSlideRight(t *testing.T) {
	got, _ := slide(t, [Size][Size]int{
		{1, 1, 0, 0},
		{2, 0, 2, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 1},
	}, DirRight)

	want := board([Size][Size]int{
		{0, 0, 0, 2},
		{0, 0, 0, 3},
		{0, 0, 2, 2},
		{0, 0, 0, 1},
	})
	if got != want {
		t.Errorf("slide right: got\n%v\nwant\n%v", got, want)
	}
}

func TestSlideUp(t *testing.T) {
	got, _ := slide(t, [Size][Size]int{
		{1, 2, 1, 0},
		{1, 0, 1, 0},
		{0, 2, 1, 0},
		{0, 0, 1, 1},
	}, DirUp)

	want := board([Size][Size]int{
		{2, 3, 2, 1},
		{0, 0, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if got != want {
		t.Errorf("slide up: got\n%v\nwant\n%v", got, want)
	}
}

func TestSlideDown(t *testing.T) {
	got, _ := slide(t, [Size][Size]int{
		{1, 2, 1, 1},
		{1, 0, 1, 0},
		{0, 2, 1, 0},
		{0, 0, 1, 0},
	}, DirDown)

	want := board([Size][Size]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 2, 0},
		{2, 3, 2, 1},
	})
	if got != want {
		t.Errorf("slide down: got\n%v\nwant\n%v", got, want)
	}
}

func TestMergePriorityFollowsDirection(t *testing.T) {
	row := [Size][Size]int{{1, 1, 1, 0}}

	left, _ := slide(t, row, DirLeft)
	if want := board([Size][Size]int{{2, 1, 0, 0}}); left != want {
		t.Errorf("left: got\n%v\nwant\n%v", left, want)
	}

	right, _ := slide(t, row, DirRight)
	if want := board([Size][Size]int{{0, 0, 1, 2}}); right != want {
		t.Errorf("right: got\n%v\nwant\n%v", right, want)
	}
}

func TestMergeAndStepScenario(t *testing.T) {
	got, out := slide(t, [Size][Size]int{{2, 2, 4, 0}}, DirLeft)
	if want := board([Size][Size]int{{3, 4, 0, 0}}); got != want {
		t.Errorf("got\n%v\nwant\n%v", got, want)
	}
	if out.Merges != 1 {
		t.Errorf("merges = %d, want 1", out.Merges)
	}
	if out.Gained != 8 {
		t.Errorf("gained = %d, want 8", out.Gained)
	}
}

func TestSingleTileCrossesRow(t *testing.T) {
	g := FromRanks(board([Size][Size]int{{0, 0, 0, 1}}))
	ops, err := ResolveMove(g, DirLeft)
	if err != nil {
		t.Fatalf("ResolveMove error: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("ops = %v, want 3 steps", ops)
	}
	for i, op := range ops {
		if op.Kind != OpStep {
			t.Errorf("op %d kind = %v, want step", i, op.Kind)
		}
	}
	if _, err := ApplyAll(g, ops); err != nil {
		t.Fatalf("ApplyAll error: %v", err)
	}
	if want := board([Size][Size]int{{1, 0, 0, 0}}); g.Ranks() != want {
		t.Errorf("got\n%v\nwant\n%v", g.Ranks(), want)
	}
}

func TestNoChangeNoOps(t *testing.T) {
	g := FromRanks(board([Size][Size]int{
		{2, 1, 0, 0},
		{1, 0, 0, 0},
	}))
	ops, err := ResolveMove(g, DirLeft)
	if err != nil {
		t.Fatalf("ResolveMove error: %v", err)
	}
	if len(ops) != 0 {
		t.Errorf("ResolveMove on left-aligned board = %v, want no ops", ops)
	}
}

func TestApplyStaleOperation(t *testing.T) {
	g := FromRanks(board([Size][Size]int{{0, 1, 0, 0}}))
	id, _ := g.Get(C(1, Size-1))

	tests := []struct {
		name string
		op   Operation
	}{
		{"unknown tile", Step(99, Deg090)},
		{"off the board", Step(id, Deg180)},
		{"merge with missing tile", Merge(id, 99, Deg090)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Clone().Apply(tt.op)
			if !errors.Is(err, ErrConsistency) {
				t.Errorf("Apply(%v) error = %v, want ErrConsistency", tt.op, err)
			}
		})
	}
}

func TestApplyStepIntoOccupiedCell(t *testing.T) {
	g := FromRanks(board([Size][Size]int{{1, 2, 0, 0}}))
	id, _ := g.Get(C(1, Size-1))
	_, err := g.Apply(Step(id, Deg090))
	if !errors.Is(err, ErrCellOccupied) || !errors.Is(err, ErrConsistency) {
		t.Errorf("error = %v, want ErrCellOccupied and ErrConsistency", err)
	}
}
