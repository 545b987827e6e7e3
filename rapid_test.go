package maze

import (
	"testing"

	"pgregory.net/rapid"
)

func genConnector(t *rapid.T) Connector {
	switch rapid.IntRange(0, 3).Draw(t, "kind") {
	case 0:
		o := Horizontal
		if rapid.Bool().Draw(t, "vertical") {
			o = Vertical
		}
		return PathConnector(o)
	case 1:
		return CornerConnector(Direction(rapid.IntRange(0, 3).Draw(t, "dir")))
	case 2:
		return ForkConnector(Direction(rapid.IntRange(0, 3).Draw(t, "dir")))
	default:
		return CrossConnector()
	}
}

// Four quarter turns return any connector shape to where it started.
func TestRapidRotationIsPeriodic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := genConnector(t)
		got := c
		for i := 0; i < 4; i++ {
			got = got.RotateClockwise()
		}
		if got != c {
			t.Fatalf("four rotations of %+v produced %+v", c, got)
		}
	})
}

// A slide's opposite is an involution: undoing the undo restores the
// original slide.
func TestRapidSlideOppositeIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := Slide{
			Slot:      rapid.IntRange(0, 10).Draw(t, "slot"),
			Direction: Direction(rapid.IntRange(0, 3).Draw(t, "dir")),
		}
		if got := s.Opposite().Opposite(); got != s {
			t.Fatalf("Opposite twice: got %+v, want %+v", got, s)
		}
	})
}

func oddBoardSize(t *rapid.T, label string) int {
	return 2*rapid.IntRange(1, 4).Draw(t, label) + 1
}

func allCrossBoardOfSize(t *rapid.T, cols, rows int) *Board {
	tiles := make([]Tile, cols*rows)
	for i := range tiles {
		tiles[i] = Tile{Connector: CrossConnector(), Gems: GemPair{A: GemZircon, B: GemZircon}}
	}
	spare := Tile{Connector: CrossConnector(), Gems: GemPair{A: GemZircon, B: GemZircon}}
	b, err := NewBoard(cols, rows, tiles, spare)
	if err != nil {
		t.Fatalf("NewBoard(%d, %d): %v", cols, rows, err)
	}
	return b
}

// Every tile is reachable from every other tile on a fully-connected
// board, and reachability always includes the starting tile itself.
func TestRapidReachableIncludesStartOnFullyConnectedBoard(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cols := oddBoardSize(t, "cols")
		rows := oddBoardSize(t, "rows")
		board := allCrossBoardOfSize(t, cols, rows)

		start := Coordinate{
			Column: rapid.IntRange(0, cols-1).Draw(t, "col"),
			Row:    rapid.IntRange(0, rows-1).Draw(t, "row"),
		}
		reachable := board.Reachable(start)

		found := false
		for _, c := range reachable {
			if c == start {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Reachable(%s) did not include the start tile: %v", start, reachable)
		}
		if len(reachable) != cols*rows {
			t.Fatalf("expected every tile reachable on an all-cross board, got %d of %d", len(reachable), cols*rows)
		}
	})
}

// Sliding a strip and then immediately sliding it back (bypassing the
// state-level undo rule, which lives above Board) restores every tile
// on the board, including the held spare, to its exact prior
// arrangement — the displacement is a pure rotation of a cyclic list.
func TestRapidSlideThenOppositeRestoresBoard(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cols := oddBoardSize(t, "cols")
		rows := oddBoardSize(t, "rows")
		board := allCrossBoardOfSize(t, cols, rows)

		// Distinguish tiles by orientation so a misplacement would be
		// detectable even though every connector started out a cross.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pos := Coordinate{Column: c, Row: r}
				o := Horizontal
				if (c+r)%2 == 1 {
					o = Vertical
				}
				board.grid.Set(pos, Tile{Connector: PathConnector(o), Gems: GemPair{A: Gem(c), B: Gem(r)}})
			}
		}
		board.spare = Tile{Connector: CrossConnector(), Gems: GemPair{A: GemZircon, B: GemZoisite}}

		before := make([]Tile, cols*rows)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				before[r*cols+c] = board.TileAt(Coordinate{Column: c, Row: r})
			}
		}
		beforeSpare := board.spare

		slot := rapid.IntRange(0, board.MaxSlot(true)).Draw(t, "slot")
		dir := []Direction{East, West}[rapid.IntRange(0, 1).Draw(t, "dir")]
		if rapid.Bool().Draw(t, "column") {
			slot = rapid.IntRange(0, board.MaxSlot(false)).Draw(t, "colSlot")
			dir = []Direction{North, South}[rapid.IntRange(0, 1).Draw(t, "colDir")]
		}
		s := Slide{Slot: slot, Direction: dir}

		if err := board.SlideAndInsert(s, nil); err != nil {
			t.Fatalf("first slide: %v", err)
		}
		if err := board.SlideAndInsert(s.Opposite(), nil); err != nil {
			t.Fatalf("undo slide: %v", err)
		}

		if board.spare != beforeSpare {
			t.Fatalf("spare not restored: got %+v, want %+v", board.spare, beforeSpare)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				got := board.TileAt(Coordinate{Column: c, Row: r})
				want := before[r*cols+c]
				if got != want {
					t.Fatalf("tile (%d,%d) not restored: got %+v, want %+v", c, r, got, want)
				}
			}
		}
	})
}

// ValidSlide accepts exactly the even strips within [0, MaxSlot] and
// rejects everything else, regardless of board size.
func TestRapidValidSlideMatchesSlotBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cols := oddBoardSize(t, "cols")
		rows := oddBoardSize(t, "rows")
		board := allCrossBoardOfSize(t, cols, rows)

		s := Slide{
			Slot:      rapid.IntRange(-2, 8).Draw(t, "slot"),
			Direction: Direction(rapid.IntRange(0, 3).Draw(t, "dir")),
		}
		want := s.Slot >= 0 && s.Slot <= board.MaxSlot(s.IsRow())
		if got := board.ValidSlide(s); got != want {
			t.Fatalf("ValidSlide(%+v) on a %dx%d board = %v, want %v", s, cols, rows, got, want)
		}
	})
}
