// Reference player strategies
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

// Package strategy implements the two naive reference move-search
// algorithms a local player may use: Riemann, which tries candidate
// targets in row-major order, and Euclid, which tries them ordered
// by distance to the assigned goal.
package strategy

import (
	"sort"

	"maze"
)

// Strategy searches a public state for a feasible move towards goal.
type Strategy interface {
	FindMove(state maze.PublicState, goal maze.Coordinate) maze.Action
}

var allDirections = [4]maze.Direction{maze.North, maze.South, maze.East, maze.West}
var allRotations = [4]int{0, 1, 2, 3}

// candidates is shared search plumbing: given an ordered list of
// target positions, try every (slot, direction, rotations) in fixed
// order against each target and return the first feasible move.
func candidates(state maze.PublicState, self maze.Coordinate, targets []maze.Coordinate) maze.Action {
	board := state.Board
	maxSlot := board.MaxSlot(true)
	if cols := board.MaxSlot(false); cols > maxSlot {
		maxSlot = cols
	}
	for _, τ := range targets {
		if τ == self {
			continue
		}
		for slot := 0; slot <= maxSlot; slot++ {
			for _, δ := range allDirections {
				σ := maze.Slide{Slot: slot, Direction: δ}
				if !board.ValidSlide(σ) {
					continue
				}
				if state.PreviousSlide != nil && σ == state.PreviousSlide.Opposite() {
					continue
				}
				for _, ρ := range allRotations {
					if maze.ReachableAfterMove(board, σ, ρ, self, τ) {
						return maze.MoveAction(maze.Move{
							Slide:       σ,
							Rotations:   ρ,
							Destination: τ,
						})
					}
				}
			}
		}
	}
	return maze.Pass
}

// Riemann orders candidate targets as: the assigned goal first, then
// every position in row-major order.
type Riemann struct{}

func (Riemann) FindMove(state maze.PublicState, goal maze.Coordinate) maze.Action {
	self := state.Players[0].Position
	targets := []maze.Coordinate{goal}
	board := state.Board
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Columns(); c++ {
			p := maze.Coordinate{Column: c, Row: r}
			if p != goal {
				targets = append(targets, p)
			}
		}
	}
	return candidates(state, self, targets)
}

// Euclid orders candidate targets as: the assigned goal first, then
// every position sorted by ascending squared Euclidean distance to
// the goal, ties broken row-major.
type Euclid struct{}

func (Euclid) FindMove(state maze.PublicState, goal maze.Coordinate) maze.Action {
	self := state.Players[0].Position
	board := state.Board

	rest := make([]maze.Coordinate, 0, board.Columns()*board.Rows()-1)
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Columns(); c++ {
			p := maze.Coordinate{Column: c, Row: r}
			if p != goal {
				rest = append(rest, p)
			}
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		di, dj := squaredDistance(rest[i], goal), squaredDistance(rest[j], goal)
		if di != dj {
			return di < dj
		}
		return rest[i].Less(rest[j])
	})

	targets := append([]maze.Coordinate{goal}, rest...)
	return candidates(state, self, targets)
}

func squaredDistance(a, b maze.Coordinate) int {
	dc := a.Column - b.Column
	dr := a.Row - b.Row
	return dc*dc + dr*dr
}
