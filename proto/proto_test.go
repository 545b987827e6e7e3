package proto

import (
	"encoding/json"
	"testing"

	"maze"
)

func TestChoicePassRoundTrip(t *testing.T) {
	data, err := json.Marshal(FromChoice(maze.Pass))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"PASS"` {
		t.Fatalf("expected literal PASS, got %s", data)
	}

	var c Choice
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !c.Action.IsPass() {
		t.Fatalf("expected a pass action after round trip")
	}
}

func TestChoiceMoveRoundTrip(t *testing.T) {
	move := maze.MoveAction(maze.Move{
		Slide:       maze.Slide{Slot: 1, Direction: maze.South},
		Rotations:   2,
		Destination: maze.Coordinate{Column: 3, Row: 5},
	})
	data, err := json.Marshal(FromChoice(move))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var c Choice
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("Unmarshal(%s): %v", data, err)
	}
	if c.Action.IsPass() {
		t.Fatalf("expected a move action after round trip")
	}
	if *c.Action.Move != *move.Move {
		t.Fatalf("round trip mismatch: got %+v, want %+v", c.Action.Move, move.Move)
	}
}

func TestActionNullRoundTrip(t *testing.T) {
	data, err := json.Marshal(FromAction(nil))
	if err != nil || string(data) != "null" {
		t.Fatalf("Marshal(nil) = %s, %v; want null, nil", data, err)
	}

	var a Action
	if err := json.Unmarshal(data, &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if a.ToDomain() != nil {
		t.Fatalf("expected a nil slide after round trip")
	}
}

func TestPlayerSpecUnmarshal(t *testing.T) {
	var spec PlayerSpec
	if err := json.Unmarshal([]byte(`["Alice", "Euclid"]`), &spec); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if spec.Name != "Alice" || spec.Strategy != "Euclid" || spec.Misbehaves() {
		t.Fatalf("unexpected spec: %+v", spec)
	}

	var misbehaving PlayerSpec
	if err := json.Unmarshal([]byte(`["Bob", "Riemann", "takeTurn", 3]`), &misbehaving); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !misbehaving.Misbehaves() || !misbehaving.Counted() || misbehaving.N != 3 {
		t.Fatalf("unexpected misbehaving spec: %+v", misbehaving)
	}

	var invalidName PlayerSpec
	if err := json.Unmarshal([]byte(`["bad name!", "Euclid"]`), &invalidName); err == nil {
		t.Fatalf("expected an invalid name to be rejected")
	}
}

func TestFunctionCallRoundTrip(t *testing.T) {
	wonArg, _ := json.Marshal(true)
	fc := FunctionCall{Method: MethodWin, Args: []json.RawMessage{wonArg}}
	data, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out FunctionCall
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal(%s): %v", data, err)
	}
	if out.Method != MethodWin || len(out.Args) != 1 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestReplyRoundTrip(t *testing.T) {
	data, err := json.Marshal(VoidReply())
	if err != nil || string(data) != `"void"` {
		t.Fatalf("Marshal(void) = %s, %v", data, err)
	}

	var r Reply
	if err := json.Unmarshal(data, &r); err != nil || r.Choice != nil {
		t.Fatalf("Unmarshal(void): %+v, %v", r, err)
	}

	choiceData, err := json.Marshal(ChoiceReply(FromChoice(maze.Pass)))
	if err != nil {
		t.Fatalf("Marshal(choice): %v", err)
	}
	var r2 Reply
	if err := json.Unmarshal(choiceData, &r2); err != nil || r2.Choice == nil {
		t.Fatalf("Unmarshal(choice): %+v, %v", r2, err)
	}
}
