package observer

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"maze"
	"maze/proto"
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

func TestHubBroadcastsToConnectedSpectator(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	// give the registration goroutine a chance to run before we
	// broadcast, since registration happens asynchronously.
	time.Sleep(20 * time.Millisecond)

	state := maze.PublicState{
		Board: allCrossBoard(t),
		Players: []maze.PlayerInfoPublic{
			{Position: maze.Coordinate{Column: 1, Row: 1}, Home: maze.Coordinate{Column: 0, Row: 0}, Colour: "red"},
		},
	}
	hub.Broadcast(state)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}

	var wire proto.State
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshalling broadcast state: %v", err)
	}
	got, err := wire.ToPublicState()
	if err != nil {
		t.Fatalf("ToPublicState: %v", err)
	}
	if len(got.Players) != 1 || got.Players[0].Colour != "red" {
		t.Fatalf("unexpected broadcast payload: %+v", got)
	}
}
