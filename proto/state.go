// Wire encoding of states and function calls
//
// Copyright (c) 2021  Philip Kaludercic
//
// This file is part of go-kgp.
//
// go-kgp is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-kgp is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-kgp. If not, see
// <http://www.gnu.org/licenses/>

package proto

import (
	"encoding/json"
	"fmt"

	"maze"
)

// PlayerPublic is the wire shape of a maze.PlayerInfoPublic: no
// goal, no goals-reached count.
type PlayerPublic struct {
	Current Coordinate  `json:"current"`
	Home    Coordinate  `json:"home"`
	Color   maze.Colour `json:"color"`
}

func FromPlayerPublic(p maze.PlayerInfoPublic) PlayerPublic {
	return PlayerPublic{Current: FromCoordinate(p.Position), Home: FromCoordinate(p.Home), Color: p.Colour}
}

func (p PlayerPublic) ToDomain() maze.PlayerInfoPublic {
	return maze.PlayerInfoPublic{Position: p.Current.ToDomain(), Home: p.Home.ToDomain(), Colour: p.Color}
}

// State is the wire shape of a maze.PublicState: the board, the
// spare tile, every seat in turn order (plmt, short for placement),
// and the previous slide.
type State struct {
	Board     Board          `json:"board"`
	SpareConn string         `json:"spare"`
	SpareGems [2]string      `json:"spare-gems"`
	Plmt      []PlayerPublic `json:"plmt"`
	Last      Action         `json:"last"`
}

func FromPublicState(s maze.PublicState) State {
	spare := s.Board.Spare()
	plmt := make([]PlayerPublic, len(s.Players))
	for i, p := range s.Players {
		plmt[i] = FromPlayerPublic(p)
	}
	return State{
		Board:     FromBoard(s.Board),
		SpareConn: string(spare.Connector.Glyph()),
		SpareGems: [2]string{spare.Gems.A.String(), spare.Gems.B.String()},
		Plmt:      plmt,
		Last:      FromAction(s.PreviousSlide),
	}
}

func (s State) ToPublicState() (maze.PublicState, error) {
	board, err := s.Board.ToBoard(s.SpareConn, s.SpareGems)
	if err != nil {
		return maze.PublicState{}, err
	}
	players := make([]maze.PlayerInfoPublic, len(s.Plmt))
	for i, p := range s.Plmt {
		players[i] = p.ToDomain()
	}
	return maze.PublicState{Board: board, Players: players, PreviousSlide: s.Last.ToDomain()}, nil
}

// StateOrFalse is the wire shape of setup's first argument: either
// the false literal (no board yet assigned) or a State.
type StateOrFalse struct {
	State *State
}

func (s StateOrFalse) MarshalJSON() ([]byte, error) {
	if s.State == nil {
		return []byte("false"), nil
	}
	return json.Marshal(s.State)
}

func (s *StateOrFalse) UnmarshalJSON(data []byte) error {
	if string(data) == "false" {
		s.State = nil
		return nil
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("proto: malformed state-or-false: %w", err)
	}
	s.State = &st
	return nil
}

// FunctionCall is a referee-to-player call: [method_name, [arg,...]].
type FunctionCall struct {
	Method string
	Args   []json.RawMessage
}

const (
	MethodSetup    = "setup"
	MethodTakeTurn = "take-turn"
	MethodWin      = "win"
)

func NewSetupCall(state *State, goal maze.Coordinate) (FunctionCall, error) {
	stateArg, err := json.Marshal(StateOrFalse{State: state})
	if err != nil {
		return FunctionCall{}, err
	}
	goalArg, err := json.Marshal(FromCoordinate(goal))
	if err != nil {
		return FunctionCall{}, err
	}
	return FunctionCall{Method: MethodSetup, Args: []json.RawMessage{stateArg, goalArg}}, nil
}

func NewTakeTurnCall(state State) (FunctionCall, error) {
	stateArg, err := json.Marshal(state)
	if err != nil {
		return FunctionCall{}, err
	}
	return FunctionCall{Method: MethodTakeTurn, Args: []json.RawMessage{stateArg}}, nil
}

func NewWinCall(won bool) (FunctionCall, error) {
	wonArg, err := json.Marshal(won)
	if err != nil {
		return FunctionCall{}, err
	}
	return FunctionCall{Method: MethodWin, Args: []json.RawMessage{wonArg}}, nil
}

func (f FunctionCall) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{f.Method, f.Args})
}

func (f *FunctionCall) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("proto: malformed function call: %w", err)
	}
	if err := json.Unmarshal(pair[0], &f.Method); err != nil {
		return fmt.Errorf("proto: malformed function call method: %w", err)
	}
	if err := json.Unmarshal(pair[1], &f.Args); err != nil {
		return fmt.Errorf("proto: malformed function call arguments: %w", err)
	}
	return nil
}

// Reply is a player-to-referee response: either the literal string
// "void" (setup/win) or a Choice (take-turn).
type Reply struct {
	Choice *Choice
}

func VoidReply() Reply { return Reply{} }

func ChoiceReply(c Choice) Reply { return Reply{Choice: &c} }

func (r Reply) MarshalJSON() ([]byte, error) {
	if r.Choice == nil {
		return json.Marshal("void")
	}
	return json.Marshal(r.Choice)
}

func (r *Reply) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil && asString == "void" {
		r.Choice = nil
		return nil
	}
	var c Choice
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("proto: malformed reply: %w", err)
	}
	r.Choice = &c
	return nil
}
