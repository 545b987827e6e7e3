// Misbehaving test-harness players
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

package player

import "maze"

// Method names a misbehaving harness may target, matching the wire
// vocabulary of PlayerSpec's bad_method field.
type Method string

const (
	SetUp    Method = "setUp"
	TakeTurn Method = "takeTurn"
	Win      Method = "win"
)

// Thrower wraps a Player and panics every time the named method is
// invoked, simulating a player program that crashes.
type Thrower struct {
	Player
	Method Method
}

func (t *Thrower) Setup(state *maze.PublicState, goal maze.Coordinate) error {
	if t.Method == SetUp {
		panic("misbehaving player: setUp")
	}
	return t.Player.Setup(state, goal)
}

func (t *Thrower) TakeTurn(state maze.PublicState) maze.Action {
	if t.Method == TakeTurn {
		panic("misbehaving player: takeTurn")
	}
	return t.Player.TakeTurn(state)
}

func (t *Thrower) Won(won bool) error {
	if t.Method == Win {
		panic("misbehaving player: win")
	}
	return t.Player.Won(won)
}

// Looper wraps a Player and blocks forever on the Nth invocation
// (1-based) of the named method, simulating a player program that
// hangs. Earlier and later invocations behave normally.
type Looper struct {
	Player
	Method Method
	N      int

	setupCalls    int
	takeTurnCalls int
	winCalls      int
}

func (l *Looper) Setup(state *maze.PublicState, goal maze.Coordinate) error {
	l.setupCalls++
	if l.Method == SetUp && l.setupCalls == l.N {
		select {}
	}
	return l.Player.Setup(state, goal)
}

func (l *Looper) TakeTurn(state maze.PublicState) maze.Action {
	l.takeTurnCalls++
	if l.Method == TakeTurn && l.takeTurnCalls == l.N {
		select {}
	}
	return l.Player.TakeTurn(state)
}

func (l *Looper) Won(won bool) error {
	l.winCalls++
	if l.Method == Win && l.winCalls == l.N {
		select {}
	}
	return l.Player.Won(won)
}
