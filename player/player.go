// Player API
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

// Package player defines the capability set the referee calls
// against every seat, local or remote, and a local implementation
// backed by a strategy.Strategy.
package player

import (
	"maze"
	"maze/strategy"
)

// Player is the capability set a referee calls against every seat:
// dynamic dispatch erases local players and remote proxies to this
// one handle at the referee boundary.
type Player interface {
	Name() string
	ProposeBoard() *maze.Board
	Setup(state *maze.PublicState, goal maze.Coordinate) error
	TakeTurn(state maze.PublicState) maze.Action
	Won(won bool) error
}

// Local is a player driven by a local strategy rather than a remote
// proxy.
type Local struct {
	name     string
	strategy strategy.Strategy
	goal     maze.Coordinate
}

// NewLocal builds a local player with the given name and strategy.
func NewLocal(name string, s strategy.Strategy) *Local {
	return &Local{name: name, strategy: s}
}

func (l *Local) Name() string { return l.name }

// ProposeBoard is part of the Player contract but unused by the
// reference referee, which always plays its default board.
func (l *Local) ProposeBoard() *maze.Board { return maze.DefaultBoard() }

func (l *Local) Setup(state *maze.PublicState, goal maze.Coordinate) error {
	l.goal = goal
	return nil
}

func (l *Local) TakeTurn(state maze.PublicState) maze.Action {
	return l.strategy.FindMove(state, l.goal)
}

func (l *Local) Won(won bool) error { return nil }
