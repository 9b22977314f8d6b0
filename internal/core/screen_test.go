package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorAccent)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorAccent {
		t.Errorf("GetCell(5, 5) = %+v, expected X in accent", got)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorText)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorText {
			t.Errorf("DrawText: expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "··")

	x := (20 - 2) / 2
	if s.Get(x, 2) != '·' || s.Get(x+1, 2) != '·' {
		t.Errorf("centered text not at x=%d: %q", x, s.Row(2))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), Cell{Rune: '#', Color: ColorTile3})

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorTile3 {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColored(NewRect(1, 1, 5, 4), ColorFrame)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorFrame {
		t.Error("box should carry its colour")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, expected := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", row)
	}

	s.Resize(15, 8)
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") || len(row) != 15 {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", row)
	}
}

func TestScreenRuns(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColored(2, 0, "ab", ColorTile1)
	s.DrawTextColored(4, 0, "c", ColorTile2)

	runs := s.Runs(0)
	expected := []Run{
		{Text: "  ", Color: ColorDefault},
		{Text: "ab", Color: ColorTile1},
		{Text: "c", Color: ColorTile2},
		{Text: "   ", Color: ColorDefault},
	}
	if len(runs) != len(expected) {
		t.Fatalf("Runs(0) = %+v, expected %+v", runs, expected)
	}
	for i := range expected {
		if runs[i] != expected[i] {
			t.Errorf("run %d = %+v, expected %+v", i, runs[i], expected[i])
		}
	}
	if s.Runs(5) != nil {
		t.Error("Runs off screen should be nil")
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		rank     int
		expected Color
	}{
		{0, ColorMuted},
		{1, ColorTile1},
		{11, ColorTile11},
		{12, ColorTileSuper},
		{30, ColorTileSuper},
	}
	for _, tc := range tests {
		if got := TileColor(tc.rank); got != tc.expected {
			t.Errorf("TileColor(%d) = %d, expected %d", tc.rank, got, tc.expected)
		}
	}
}

func TestInputFrameFirst(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}
	f.Set(ActionRight)
	f.Set(ActionUp)

	got, ok := f.First(ActionUp, ActionDown, ActionLeft, ActionRight)
	if !ok || got != ActionUp {
		t.Errorf("First() = %v, %v, expected Up, true", got, ok)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) || !clone.Has(ActionUp) {
		t.Error("Clear should not affect a clone")
	}
}
