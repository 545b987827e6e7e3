package maze

import (
	"sort"
	"testing"
)

// gridTiles builds a cols x rows slate of tiles using pattern(col,
// row) to choose a connector, all carrying the same placeholder gem
// pair -- the gems never matter for slide/reachability tests.
func gridTiles(cols, rows int, pattern func(c, r int) Connector) []Tile {
	tiles := make([]Tile, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tiles = append(tiles, Tile{Connector: pattern(c, r), Gems: GemPair{A: GemZircon, B: GemZircon}})
		}
	}
	return tiles
}

// allCrossBoard returns a 7x7 board where every tile (including the
// spare) is a cross connector, so every tile connects to every
// neighbour and reachability is bounded only by board extent.
func allCrossBoard(t *testing.T) *Board {
	t.Helper()
	tiles := gridTiles(7, 7, func(c, r int) Connector { return CrossConnector() })
	spare := Tile{Connector: CrossConnector(), Gems: GemPair{A: GemZircon, B: GemZircon}}
	b, err := NewBoard(7, 7, tiles, spare)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func coordsSorted(cs []Coordinate) []Coordinate {
	out := append([]Coordinate(nil), cs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func TestReachableIncludesStart(t *testing.T) {
	b := allCrossBoard(t)
	reach := b.Reachable(Coordinate{Column: 3, Row: 3})
	found := false
	for _, c := range reach {
		if c == (Coordinate{Column: 3, Row: 3}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("Reachable(start) must include start itself")
	}
	if len(reach) != 49 {
		t.Fatalf("expected all 49 tiles reachable on an all-cross board, got %d", len(reach))
	}
}

func TestSlideUndoRejected(t *testing.T) {
	b := allCrossBoard(t)
	first := Slide{Slot: 0, Direction: North}
	if err := b.SlideAndInsert(first, nil); err != nil {
		t.Fatalf("first slide: %v", err)
	}
	undo := Slide{Slot: 0, Direction: South}
	if err := b.SlideAndInsert(undo, &first); err == nil {
		t.Fatalf("expected undo slide to be rejected")
	}
	other := Slide{Slot: 2, Direction: South}
	if err := b.SlideAndInsert(other, &first); err != nil {
		t.Fatalf("slide on a different slot after a slide should succeed: %v", err)
	}
}

func TestMovePositionWrapsAlongSlidStrip(t *testing.T) {
	b := allCrossBoard(t)
	// A player on the tile pushed off row 0's west edge is carried
	// round to the east edge, onto the newly inserted spare, when that
	// row is slid West.
	p := Coordinate{Column: 0, Row: 0}
	moved := b.MovePosition(Slide{Slot: 0, Direction: West}, p)
	if moved.Row != 0 {
		t.Fatalf("expected player to stay on row 0, got %s", moved)
	}
	if moved.Column != b.Columns()-1 {
		t.Fatalf("expected player carried to the east (entering) column, got %s", moved)
	}
}

func TestRotateSpareIsPeriodic(t *testing.T) {
	b := allCrossBoard(t)
	before := b.Spare()
	b.RotateSpare(4)
	after := b.Spare()
	if before != after {
		t.Fatalf("four quarter turns should return the spare to its original orientation")
	}
}

func TestMaxSlotMatchesFloorHalf(t *testing.T) {
	b := allCrossBoard(t)
	if got := b.MaxSlot(true); got != 3 {
		t.Fatalf("MaxSlot(true) on a 7-tall board = %d, want 3", got)
	}
	if got := b.MaxSlot(false); got != 3 {
		t.Fatalf("MaxSlot(false) on a 7-wide board = %d, want 3", got)
	}
}

func TestValidSlideRejectsOutOfRangeSlot(t *testing.T) {
	b := allCrossBoard(t)
	if b.ValidSlide(Slide{Slot: 10, Direction: North}) {
		t.Fatalf("slot 10 should be out of range on a 7x7 board")
	}
	if !b.ValidSlide(Slide{Slot: 0, Direction: North}) {
		t.Fatalf("slot 0 should be a valid slide")
	}
}
