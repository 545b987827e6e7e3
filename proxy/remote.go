// Referee-side remote player proxy
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

// Package proxy turns a network connection in either direction into
// the in-process player.Player contract: Remote is the referee's
// handle on a socket it drives with calls, Serve is the player
// side's loop that answers them.
package proxy

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"maze"
	"maze/proto"
)

// Remote is a player.Player backed by a JSON connection to a
// separate process. Calls are serialised under a lock: the protocol
// has no request IDs, so at most one function call may be in flight
// at a time.
type Remote struct {
	name string
	conn io.ReadWriteCloser
	enc  *json.Encoder
	dec  *json.Decoder

	mu        sync.Mutex
	lastState *proto.State
}

// NewRemote wraps conn as a player named name. The wire format is a
// concatenated stream of JSON values with no length prefix or
// delimiter, which json.Decoder consumes natively one value at a
// time.
func NewRemote(name string, conn io.ReadWriteCloser) *Remote {
	return &Remote{
		name: name,
		conn: conn,
		enc:  json.NewEncoder(conn),
		dec:  json.NewDecoder(conn),
	}
}

func (r *Remote) Name() string { return r.name }

// ProposeBoard is part of the player.Player contract but unused by
// the reference referee.
func (r *Remote) ProposeBoard() *maze.Board { return nil }

func (r *Remote) call(fc proto.FunctionCall) (proto.Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.enc.Encode(fc); err != nil {
		return proto.Reply{}, fmt.Errorf("proxy: writing %s call: %w", fc.Method, err)
	}
	var reply proto.Reply
	if err := r.dec.Decode(&reply); err != nil {
		return proto.Reply{}, fmt.Errorf("proxy: reading %s reply: %w", fc.Method, err)
	}
	return reply, nil
}

func (r *Remote) Setup(state *maze.PublicState, goal maze.Coordinate) error {
	var wireState *proto.State
	if state != nil {
		s := proto.FromPublicState(*state)
		wireState = &s
		r.lastState = &s
	}
	fc, err := proto.NewSetupCall(wireState, goal)
	if err != nil {
		return fmt.Errorf("proxy: encoding setup call: %w", err)
	}
	_, err = r.call(fc)
	return err
}

func (r *Remote) TakeTurn(state maze.PublicState) maze.Action {
	wireState := proto.FromPublicState(state)
	r.lastState = &wireState
	fc, err := proto.NewTakeTurnCall(wireState)
	if err != nil {
		return maze.Pass
	}
	reply, err := r.call(fc)
	if err != nil || reply.Choice == nil {
		return maze.Pass
	}
	return reply.Choice.Action
}

func (r *Remote) Won(won bool) error {
	fc, err := proto.NewWinCall(won)
	if err != nil {
		return fmt.Errorf("proxy: encoding win call: %w", err)
	}
	_, err = r.call(fc)
	return err
}

// Close releases the underlying connection.
func (r *Remote) Close() error { return r.conn.Close() }
