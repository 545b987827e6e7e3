package maze

import (
	"errors"
	"testing"
)

func newFullPlayer(pos, home, goal Coordinate, colour Colour) PlayerInfoFull {
	return PlayerInfoFull{
		PlayerInfoPublic: PlayerInfoPublic{Position: pos, Home: home, Colour: colour},
		Goal:             goal,
	}
}

func TestStateNextAndRemovePlayer(t *testing.T) {
	b := allCrossBoard(t)
	a := newFullPlayer(Coordinate{0, 0}, Coordinate{1, 1}, Coordinate{3, 3}, "red")
	c := newFullPlayer(Coordinate{2, 2}, Coordinate{3, 3}, Coordinate{1, 1}, "blue")
	s := NewState(b, []PlayerInfoFull{a, c})

	if s.ActivePlayer().Colour != "red" {
		t.Fatalf("expected red active first")
	}
	s.NextPlayer()
	if s.ActivePlayer().Colour != "blue" {
		t.Fatalf("expected blue active after NextPlayer")
	}

	removed, err := s.RemovePlayer()
	if err != nil || removed.Colour != "blue" {
		t.Fatalf("RemovePlayer: got %+v, %v", removed, err)
	}
	if len(s.Players) != 1 {
		t.Fatalf("expected 1 player left, got %d", len(s.Players))
	}

	if _, err := NewState(b, []PlayerInfoFull{}).RemovePlayer(); err != ErrNoPlayersLeft {
		t.Fatalf("expected ErrNoPlayersLeft on an empty queue, got %v", err)
	}
}

func TestStateSlideAndInsertRejectsUndo(t *testing.T) {
	b := allCrossBoard(t)
	a := newFullPlayer(Coordinate{0, 0}, Coordinate{1, 1}, Coordinate{3, 3}, "red")
	s := NewState(b, []PlayerInfoFull{a})

	if err := s.SlideAndInsert(Slide{Slot: 0, Direction: North}); err != nil {
		t.Fatalf("first slide: %v", err)
	}
	if err := s.SlideAndInsert(Slide{Slot: 0, Direction: South}); err == nil {
		t.Fatalf("expected the undo slide to be rejected")
	}
}

func TestMovePlayerRejectsOwnPosition(t *testing.T) {
	b := allCrossBoard(t)
	a := newFullPlayer(Coordinate{3, 3}, Coordinate{1, 1}, Coordinate{5, 5}, "red")
	s := NewState(b, []PlayerInfoFull{a})

	if err := s.MovePlayer(Coordinate{3, 3}); !errors.Is(err, ErrPositionUnreachable) {
		t.Fatalf("moving to one's own position must fail, got %v", err)
	}
	if err := s.MovePlayer(Coordinate{5, 5}); err != nil {
		t.Fatalf("moving to a reachable tile should succeed: %v", err)
	}
	if s.Players[0].Position != (Coordinate{5, 5}) {
		t.Fatalf("player did not move")
	}
}

func TestIsValidMoveAndTryMoveRoundTrip(t *testing.T) {
	b := allCrossBoard(t)
	a := newFullPlayer(Coordinate{0, 0}, Coordinate{1, 1}, Coordinate{6, 6}, "red")
	s := NewState(b, []PlayerInfoFull{a})

	slide := Slide{Slot: 0, Direction: South}
	if !s.IsValidMove(slide, 1, Coordinate{6, 6}) {
		t.Fatalf("expected move to be valid on an all-cross board")
	}

	before := s.Clone()
	if err := s.TryMove(slide, 1, Coordinate{6, 6}); err != nil {
		t.Fatalf("TryMove: %v", err)
	}
	if s.Players[0].Position != (Coordinate{6, 6}) {
		t.Fatalf("TryMove did not move the active player")
	}
	if s.ActivePlayer().Colour != before.ActivePlayer().Colour {
		t.Fatalf("TryMove must not advance the active player")
	}

	// The slide that would undo the one just applied is never valid,
	// regardless of destination.
	if s.IsValidMove(Slide{Slot: 0, Direction: North}, 0, s.Players[0].Position) {
		t.Fatalf("a slide undoing the previous one must be invalid")
	}
}

func TestUpdateCurrentPlayerGoalFallsBackToHome(t *testing.T) {
	b := allCrossBoard(t)
	home := Coordinate{1, 1}
	goal := Coordinate{3, 3}
	a := newFullPlayer(goal, home, goal, "red")
	s := NewState(b, []PlayerInfoFull{a})

	var remaining []Coordinate
	if !s.UpdateCurrentPlayerGoal(&remaining) {
		t.Fatalf("expected the goal to be considered reached")
	}
	if s.Players[0].Goal != home {
		t.Fatalf("expected goal to fall back to home once no goals remain, got %s", s.Players[0].Goal)
	}
	if s.Players[0].GoalsReached != 1 {
		t.Fatalf("expected GoalsReached to be incremented")
	}

	// Walk onto the new goal (home) so the next update counts as reached.
	s.Players[0].Position = home
	next := Coordinate{5, 5}
	remaining = []Coordinate{next}
	if !s.UpdateCurrentPlayerGoal(&remaining) {
		t.Fatalf("expected a second goal-reached update")
	}
	if s.Players[0].Goal != next {
		t.Fatalf("expected the next queued goal to be assigned, got %s", s.Players[0].Goal)
	}
}

func TestPublicViewHidesGoals(t *testing.T) {
	b := allCrossBoard(t)
	a := newFullPlayer(Coordinate{0, 0}, Coordinate{1, 1}, Coordinate{3, 3}, "red")
	s := NewState(b, []PlayerInfoFull{a})

	// PlayerInfoPublic has no goal field, so the projection cannot
	// carry a goal; what is checked here is that the public fields
	// survive it.
	view := s.PublicView()
	if len(view.Players) != 1 {
		t.Fatalf("expected 1 player in the public view")
	}
	if view.Players[0].Colour != "red" || view.Players[0].Home != (Coordinate{1, 1}) {
		t.Fatalf("public view dropped or mangled public fields: %+v", view.Players[0])
	}
}
