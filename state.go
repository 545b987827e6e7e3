// Game state
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

import (
	"errors"
	"fmt"
)

// ErrSlideUndo, ErrPositionUnreachable, ErrNoPlayersLeft and
// ErrInvalidMove are the distinct state-mutation failures a caller
// may want to tell apart. ErrNoPlayersLeft and ErrInvalidMove are
// returned as they are; the others are wrapped by fmt.Errorf with
// detail, so compare them with errors.Is.
var (
	ErrSlideUndo           = errors.New("slide undoes the previous slide")
	ErrPositionUnreachable = errors.New("player cannot reach that position")
	ErrNoPlayersLeft       = errors.New("no more players are in the game")
	ErrInvalidMove         = errors.New("the provided move was invalid")
)

// PlayerInfoPublic is everything about a seat that may be broadcast
// to every player: position, home, and colour.
type PlayerInfoPublic struct {
	Position Coordinate
	Home     Coordinate
	Colour   Colour
}

// ReachedHome reports whether the player currently sits on their
// home tile.
func (p PlayerInfoPublic) ReachedHome() bool { return p.Position == p.Home }

// PlayerInfoFull is the referee's private view of a seat: the public
// fields plus the current goal and a running reached-goal count.
// Projected down to PlayerInfoPublic at the broadcast boundary so a
// player's goal is never leaked to an opponent.
type PlayerInfoFull struct {
	PlayerInfoPublic
	Goal         Coordinate
	GoalsReached int
}

// ReachedGoal reports whether the player currently sits on their
// assigned goal tile.
func (p PlayerInfoFull) ReachedGoal() bool { return p.Position == p.Goal }

// Public projects away the private goal and goals-reached count.
func (p PlayerInfoFull) Public() PlayerInfoPublic { return p.PlayerInfoPublic }

// State is a board, the ordered queue of seated players (the head is
// the active player), and the slide that produced the current
// position, if any.
type State struct {
	Board         *Board
	Players       []PlayerInfoFull
	PreviousSlide *Slide
}

// NewState builds a state from a board and an initial player order.
func NewState(board *Board, players []PlayerInfoFull) *State {
	ps := make([]PlayerInfoFull, len(players))
	copy(ps, players)
	return &State{Board: board, Players: ps}
}

// RotateSpare applies quarterTurns mod 4 clockwise rotations to the
// board's held spare.
func (s *State) RotateSpare(quarterTurns int) {
	s.Board.RotateSpare(quarterTurns)
}

func (s *State) slidePlayers(slide Slide) {
	for i := range s.Players {
		s.Players[i].Position = s.Board.MovePosition(slide, s.Players[i].Position)
	}
}

// SlideAndInsert performs the slide on the board, carries every
// seated player along with the affected strip, and records slide as
// the new previous slide. Fails with ErrSlideUndo/ErrInvalidSlide
// without mutating anything if slide undoes the previous one or
// names an unmovable strip.
func (s *State) SlideAndInsert(slide Slide) error {
	if s.PreviousSlide != nil && slide == s.PreviousSlide.Opposite() {
		return fmt.Errorf("%w: %+v", ErrSlideUndo, slide)
	}
	if err := s.Board.SlideAndInsert(slide, s.PreviousSlide); err != nil {
		return err
	}
	s.slidePlayers(slide)
	prev := slide
	s.PreviousSlide = &prev
	return nil
}

// ActivePlayer returns a pointer to the head of the player queue, the
// seat whose turn it is.
func (s *State) ActivePlayer() *PlayerInfoFull {
	return &s.Players[0]
}

// ReachableByActivePlayer returns every position the active player
// could walk to from their current position, source included.
func (s *State) ReachableByActivePlayer() []Coordinate {
	return s.Board.Reachable(s.Players[0].Position)
}

// CanReach reports whether target lies in the active player's
// connected component (including their own tile).
func (s *State) CanReach(target Coordinate) bool {
	for _, c := range s.ReachableByActivePlayer() {
		if c == target {
			return true
		}
	}
	return false
}

// MovePlayer walks the active player to destination. Fails with
// ErrPositionUnreachable, without mutation, if destination is
// unreachable or equal to the player's current position.
func (s *State) MovePlayer(destination Coordinate) error {
	active := &s.Players[0]
	if active.Position == destination || !s.CanReach(destination) {
		return fmt.Errorf("%w: %s", ErrPositionUnreachable, destination)
	}
	active.Position = destination
	return nil
}

// AddPlayer appends a seat to the tail of the queue.
func (s *State) AddPlayer(p PlayerInfoFull) {
	s.Players = append(s.Players, p)
}

// NextPlayer rotates the queue by one, making the second seat active.
func (s *State) NextPlayer() {
	if len(s.Players) == 0 {
		return
	}
	s.Players = append(s.Players[1:], s.Players[0])
}

// RemovePlayer pops the active seat off the front of the queue.
func (s *State) RemovePlayer() (PlayerInfoFull, error) {
	if len(s.Players) == 0 {
		return PlayerInfoFull{}, ErrNoPlayersLeft
	}
	p := s.Players[0]
	s.Players = s.Players[1:]
	return p, nil
}

// PlayerReachedHome reports whether the active player sits on their
// home tile.
func (s *State) PlayerReachedHome() bool {
	return s.Players[0].ReachedHome()
}

// PlayerReachedGoal reports whether the active player sits on their
// goal tile.
func (s *State) PlayerReachedGoal() bool {
	return s.Players[0].ReachedGoal()
}

// Clone returns an independent deep copy of the state.
func (s *State) Clone() *State {
	players := make([]PlayerInfoFull, len(s.Players))
	copy(players, s.Players)
	var prev *Slide
	if s.PreviousSlide != nil {
		v := *s.PreviousSlide
		prev = &v
	}
	return &State{Board: s.Board.Clone(), Players: players, PreviousSlide: prev}
}

// IsValidMove reports whether the active player could legally
// perform rotate_spare(rotations); slide_and_insert(slide) and then
// walk to destination, without mutating s.
func (s *State) IsValidMove(slide Slide, rotations int, destination Coordinate) bool {
	clone := s.Clone()
	clone.RotateSpare(rotations)
	if err := clone.SlideAndInsert(slide); err != nil {
		return false
	}
	start := clone.Players[0].Position
	if destination == start {
		return false
	}
	return clone.MovePlayer(destination) == nil
}

// TryMove validates the move via IsValidMove and, if legal, applies
// rotate_spare(rotations); slide_and_insert(slide); move_player(destination)
// to s. On failure s is left completely unchanged. TryMove does not
// advance the active player.
func (s *State) TryMove(slide Slide, rotations int, destination Coordinate) error {
	if !s.IsValidMove(slide, rotations, destination) {
		return ErrInvalidMove
	}
	s.RotateSpare(rotations)
	if err := s.SlideAndInsert(slide); err != nil {
		panic(fmt.Sprintf("validated move rejected on apply: %v", err))
	}
	if err := s.MovePlayer(destination); err != nil {
		panic(fmt.Sprintf("validated destination rejected on apply: %v", err))
	}
	return nil
}

// ReachableAfterMove reports whether, after rotating the spare by
// rotations and performing slide, a player walking from start could
// reach destination. It does not mutate s; it is used by strategies
// to search for a feasible move without committing to it.
func (s *State) ReachableAfterMove(slide Slide, rotations int, destination, start Coordinate) bool {
	return ReachableAfterMove(s.Board, slide, rotations, start, destination)
}

// PublicState is the projection of a State a player sees: the board,
// every seat's public info in turn order with the active seat at the
// head, and the previous slide. Goals and reached counts are never
// included.
type PublicState struct {
	Board         *Board
	Players       []PlayerInfoPublic
	PreviousSlide *Slide
}

// PublicView projects s down to what a take_turn/setup call may
// disclose to the active player.
func (s *State) PublicView() PublicState {
	players := make([]PlayerInfoPublic, len(s.Players))
	for i, p := range s.Players {
		players[i] = p.Public()
	}
	return PublicState{Board: s.Board, Players: players, PreviousSlide: s.PreviousSlide}
}

// UpdateCurrentPlayerGoal is the multi-goal treasure-hunt update: if
// the active player sits on their goal, their reached count is
// incremented and they receive the next goal from remainingGoals (or
// their home, if the queue is empty). Returns true iff a goal was
// reached on this call.
func (s *State) UpdateCurrentPlayerGoal(remainingGoals *[]Coordinate) bool {
	if !s.PlayerReachedGoal() {
		return false
	}
	active := s.ActivePlayer()
	active.GoalsReached++
	if len(*remainingGoals) > 0 {
		active.Goal = (*remainingGoals)[0]
		*remainingGoals = (*remainingGoals)[1:]
	} else {
		active.Goal = active.Home
	}
	return true
}
