package proxy

import (
	"net"
	"testing"

	"maze"
	"maze/player"
)

func allCrossBoard(t *testing.T) *maze.Board {
	t.Helper()
	tiles := make([]maze.Tile, 0, 9)
	for i := 0; i < 9; i++ {
		tiles = append(tiles, maze.Tile{Connector: maze.CrossConnector(), Gems: maze.GemPair{A: maze.GemZircon, B: maze.GemZircon}})
	}
	spare := maze.Tile{Connector: maze.CrossConnector(), Gems: maze.GemPair{A: maze.GemZircon, B: maze.GemZircon}}
	b, err := maze.NewBoard(3, 3, tiles, spare)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func TestRemoteAndServeRoundTrip(t *testing.T) {
	refSide, playerSide := net.Pipe()
	defer refSide.Close()

	local := player.NewLocal("Ada", fixedStrategy{})
	go Serve(playerSide, local, nil)

	remote := NewRemote("Ada", refSide)

	board := allCrossBoard(t)
	state := maze.PublicState{
		Board: board,
		Players: []maze.PlayerInfoPublic{
			{Position: maze.Coordinate{Column: 0, Row: 0}, Home: maze.Coordinate{Column: 0, Row: 0}, Colour: "red"},
		},
	}
	goal := maze.Coordinate{Column: 2, Row: 2}
	if err := remote.Setup(&state, goal); err != nil {
		t.Fatalf("Setup: %v", err)
	}

	action := remote.TakeTurn(state)
	if action.IsPass() {
		t.Fatalf("expected a move reply, got a pass")
	}
	if action.Move.Destination != goal {
		t.Fatalf("expected the scripted destination %s, got %s", goal, action.Move.Destination)
	}

	if err := remote.Won(true); err != nil {
		t.Fatalf("Won: %v", err)
	}
}

// fixedStrategy always proposes the same move regardless of state, so
// the round trip test doesn't depend on board search behaviour.
type fixedStrategy struct{}

func (fixedStrategy) FindMove(state maze.PublicState, goal maze.Coordinate) maze.Action {
	return maze.MoveAction(maze.Move{
		Slide:       maze.Slide{Slot: 0, Direction: maze.North},
		Rotations:   0,
		Destination: goal,
	})
}
