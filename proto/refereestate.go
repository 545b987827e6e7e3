// Wire encoding of RefereeState documents and validation errors
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
	"errors"
	"fmt"

	"maze"
)

// ValidationErrorKind closes the taxonomy of problems a RefereeState
// document may have.
type ValidationErrorKind string

const (
	PositionOutOfBounds    ValidationErrorKind = "PositionOutOfBounds"
	NonUniqueColors        ValidationErrorKind = "NonUniqueColors"
	NonUniqueHomes         ValidationErrorKind = "NonUniqueHomes"
	NotEnoughHomes         ValidationErrorKind = "NotEnoughHomes"
	HomeMoveableTile       ValidationErrorKind = "HomeMoveableTile"
	GoalMoveableTile       ValidationErrorKind = "GoalMoveableTile"
	PlayerGoalMoveableTile ValidationErrorKind = "PlayerGoalMoveableTile"
	InvalidSlide           ValidationErrorKind = "InvalidSlide"
)

// ValidationError reports one closed-taxonomy problem found while
// validating a RefereeState document, naming the offending player
// index where applicable.
type ValidationError struct {
	Kind        ValidationErrorKind
	PlayerIndex int
	Detail      string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// JsonRefereePlayer is the full wire shape of a seat inside a
// RefereeState document: public fields plus the private goal.
type JsonRefereePlayer struct {
	Current Coordinate  `json:"current"`
	Home    Coordinate  `json:"home"`
	Goal    Coordinate  `json:"goto"`
	Color   maze.Colour `json:"color"`
}

func (p JsonRefereePlayer) ToDomain() maze.PlayerInfoFull {
	return maze.PlayerInfoFull{
		PlayerInfoPublic: maze.PlayerInfoPublic{
			Position: p.Current.ToDomain(),
			Home:     p.Home.ToDomain(),
			Colour:   p.Color,
		},
		Goal: p.Goal.ToDomain(),
	}
}

func FromPlayerFull(p maze.PlayerInfoFull) JsonRefereePlayer {
	return JsonRefereePlayer{
		Current: FromCoordinate(p.Position),
		Home:    FromCoordinate(p.Home),
		Goal:    FromCoordinate(p.Goal),
		Color:   p.Colour,
	}
}

// RefereeState is the document the CLI observer harness reads from
// standard input: a board, its spare, the full seating order
// including private goals, the previous slide, and an optional
// multi-goal remaining-goals queue.
type RefereeState struct {
	Board     Board               `json:"board"`
	SpareConn string              `json:"spare"`
	SpareGems [2]string           `json:"spare-gems"`
	Plmt      []JsonRefereePlayer `json:"plmt"`
	Last      Action              `json:"last"`
	Goals     []Coordinate        `json:"goals,omitempty"`
}

// ToState validates the document against the closed error taxonomy
// and, if it passes, converts it to a domain state plus the
// remaining-goals queue (nil if the document omitted it).
func (r RefereeState) ToState() (*maze.State, []maze.Coordinate, error) {
	board, err := r.Board.ToBoard(r.SpareConn, r.SpareGems)
	if err != nil {
		return nil, nil, err
	}

	players := make([]maze.PlayerInfoFull, len(r.Plmt))
	seenColours := map[maze.Colour]bool{}
	seenHomes := map[maze.Coordinate]bool{}
	for i, jp := range r.Plmt {
		p := jp.ToDomain()
		players[i] = p

		if !board.InBounds(p.Position) || !board.InBounds(p.Home) || !board.InBounds(p.Goal) {
			return nil, nil, &ValidationError{Kind: PositionOutOfBounds, PlayerIndex: i}
		}
		if seenColours[p.Colour] {
			return nil, nil, &ValidationError{Kind: NonUniqueColors, PlayerIndex: i}
		}
		seenColours[p.Colour] = true
		if seenHomes[p.Home] {
			return nil, nil, &ValidationError{Kind: NonUniqueHomes, PlayerIndex: i}
		}
		seenHomes[p.Home] = true
		if !board.IsPossibleHome(p.Home) {
			return nil, nil, &ValidationError{Kind: HomeMoveableTile, PlayerIndex: i}
		}
		if !board.IsPossibleHome(p.Goal) {
			return nil, nil, &ValidationError{Kind: PlayerGoalMoveableTile, PlayerIndex: i}
		}
	}
	if len(players) > len(board.PossibleHomes()) {
		return nil, nil, &ValidationError{Kind: NotEnoughHomes}
	}

	for _, g := range r.Goals {
		if !board.IsPossibleHome(g.ToDomain()) {
			return nil, nil, &ValidationError{Kind: GoalMoveableTile}
		}
	}

	state := maze.NewState(board, players)
	if slide := r.Last.ToDomain(); slide != nil {
		state.PreviousSlide = slide
		if !board.ValidSlide(*slide) {
			return nil, nil, &ValidationError{Kind: InvalidSlide}
		}
	}

	var goals []maze.Coordinate
	if r.Goals != nil {
		goals = make([]maze.Coordinate, len(r.Goals))
		for i, g := range r.Goals {
			goals[i] = g.ToDomain()
		}
	}
	return state, goals, nil
}

// AsValidationError reports whether err is (or wraps) a
// *ValidationError, mirroring errors.As for callers that only care
// about the kind.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
