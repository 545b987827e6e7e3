// Player actions
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

package maze

// Move is the move half of a player's reply: rotate the spare by
// Rotations quarter turns, perform Slide, then walk to Destination.
type Move struct {
	Slide       Slide
	Rotations   int
	Destination Coordinate
}

// Action is a player's reply to take_turn: either a pass (Move is
// nil) or a move to attempt.
type Action struct {
	Move *Move
}

// Pass is the zero-value action representing a passed turn.
var Pass = Action{}

// IsPass reports whether a is a pass.
func (a Action) IsPass() bool { return a.Move == nil }

// MoveAction wraps m as a non-pass action.
func MoveAction(m Move) Action { return Action{Move: &m} }
