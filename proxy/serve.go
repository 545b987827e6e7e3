// Player-side referee proxy
//
// Copyright (c) 2021, 2022  Philip Kaludercic
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

package proxy

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"maze"
	"maze/player"
	"maze/proto"
)

// Serve reads a concatenated stream of proto.FunctionCall values
// from conn, dispatches each to p, and writes back one proto.Reply
// per call, until conn is closed or a malformed call is received.
// It is the loop a player binary runs against its referee
// connection; it never initiates a call itself.
func Serve(conn io.ReadWriteCloser, p player.Player, debug *log.Logger) error {
	defer conn.Close()

	enc := json.NewEncoder(conn)
	dec := json.NewDecoder(conn)

	for {
		var fc proto.FunctionCall
		if err := dec.Decode(&fc); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("proxy: reading function call: %w", err)
		}

		reply, err := dispatch(p, fc)
		if err != nil {
			if debug != nil {
				debug.Printf("proxy: %s: %v", fc.Method, err)
			}
			return err
		}
		if err := enc.Encode(reply); err != nil {
			return fmt.Errorf("proxy: writing %s reply: %w", fc.Method, err)
		}
	}
}

func dispatch(p player.Player, fc proto.FunctionCall) (proto.Reply, error) {
	switch fc.Method {
	case proto.MethodSetup:
		return dispatchSetup(p, fc)
	case proto.MethodTakeTurn:
		return dispatchTakeTurn(p, fc)
	case proto.MethodWin:
		return dispatchWin(p, fc)
	default:
		return proto.Reply{}, fmt.Errorf("unrecognised method %q", fc.Method)
	}
}

func dispatchSetup(p player.Player, fc proto.FunctionCall) (proto.Reply, error) {
	if len(fc.Args) != 2 {
		return proto.Reply{}, fmt.Errorf("setup expects 2 arguments, got %d", len(fc.Args))
	}
	var wireState proto.StateOrFalse
	if err := json.Unmarshal(fc.Args[0], &wireState); err != nil {
		return proto.Reply{}, fmt.Errorf("malformed setup state: %w", err)
	}
	var wireGoal proto.Coordinate
	if err := json.Unmarshal(fc.Args[1], &wireGoal); err != nil {
		return proto.Reply{}, fmt.Errorf("malformed setup goal: %w", err)
	}

	var state *maze.PublicState
	if wireState.State != nil {
		s, err := wireState.State.ToPublicState()
		if err != nil {
			return proto.Reply{}, fmt.Errorf("malformed setup state: %w", err)
		}
		state = &s
	}

	if err := p.Setup(state, wireGoal.ToDomain()); err != nil {
		return proto.Reply{}, err
	}
	return proto.VoidReply(), nil
}

func dispatchTakeTurn(p player.Player, fc proto.FunctionCall) (proto.Reply, error) {
	if len(fc.Args) != 1 {
		return proto.Reply{}, fmt.Errorf("take-turn expects 1 argument, got %d", len(fc.Args))
	}
	var wireState proto.State
	if err := json.Unmarshal(fc.Args[0], &wireState); err != nil {
		return proto.Reply{}, fmt.Errorf("malformed take-turn state: %w", err)
	}
	state, err := wireState.ToPublicState()
	if err != nil {
		return proto.Reply{}, fmt.Errorf("malformed take-turn state: %w", err)
	}
	action := p.TakeTurn(state)
	return proto.ChoiceReply(proto.FromChoice(action)), nil
}

func dispatchWin(p player.Player, fc proto.FunctionCall) (proto.Reply, error) {
	if len(fc.Args) != 1 {
		return proto.Reply{}, fmt.Errorf("win expects 1 argument, got %d", len(fc.Args))
	}
	var won bool
	if err := json.Unmarshal(fc.Args[0], &won); err != nil {
		return proto.Reply{}, fmt.Errorf("malformed win argument: %w", err)
	}
	if err := p.Won(won); err != nil {
		return proto.Reply{}, err
	}
	return proto.VoidReply(), nil
}
