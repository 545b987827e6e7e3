// Wire encoding of directions, actions, and move replies
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

// directionToWire and wireToDirection implement the protocol's
// LEFT/RIGHT/UP/DOWN naming, which maps to W/E/N/S respectively.
func directionToWire(d maze.Direction) string {
	switch d {
	case maze.West:
		return "LEFT"
	case maze.East:
		return "RIGHT"
	case maze.North:
		return "UP"
	case maze.South:
		return "DOWN"
	default:
		panic(fmt.Sprintf("proto: illegal direction: %d", d))
	}
}

func directionFromWire(s string) (maze.Direction, error) {
	switch s {
	case "LEFT":
		return maze.West, nil
	case "RIGHT":
		return maze.East, nil
	case "UP":
		return maze.North, nil
	case "DOWN":
		return maze.South, nil
	default:
		return 0, fmt.Errorf("proto: unrecognised direction %q", s)
	}
}

// Action is the wire shape of State.PreviousSlide: null, or
// [slot_index, direction].
type Action struct {
	Slide *maze.Slide
}

func FromAction(s *maze.Slide) Action { return Action{Slide: s} }

func (a Action) ToDomain() *maze.Slide { return a.Slide }

func (a Action) MarshalJSON() ([]byte, error) {
	if a.Slide == nil {
		return []byte("null"), nil
	}
	return json.Marshal([2]interface{}{a.Slide.Slot, directionToWire(a.Slide.Direction)})
}

func (a *Action) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		a.Slide = nil
		return nil
	}
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("proto: malformed action: %w", err)
	}
	var slot int
	if err := json.Unmarshal(pair[0], &slot); err != nil {
		return fmt.Errorf("proto: malformed action slot: %w", err)
	}
	var wireDir string
	if err := json.Unmarshal(pair[1], &wireDir); err != nil {
		return fmt.Errorf("proto: malformed action direction: %w", err)
	}
	dir, err := directionFromWire(wireDir)
	if err != nil {
		return err
	}
	a.Slide = &maze.Slide{Slot: slot, Direction: dir}
	return nil
}

// degreesToRotations and rotationsToDegrees convert between the
// on-wire degree value and the quarter-turn count try_move expects.
func degreesToRotations(degrees int) (int, error) {
	if degrees%90 != 0 {
		return 0, fmt.Errorf("proto: degree value %d is not a multiple of 90", degrees)
	}
	return (degrees / 90) % 4, nil
}

func rotationsToDegrees(rotations int) int { return (rotations % 4) * 90 }

// Choice is a player's reply to take-turn: either the literal string
// "PASS" or a [slot_index, direction, degree, destination] array.
type Choice struct {
	Action maze.Action
}

func FromChoice(a maze.Action) Choice { return Choice{Action: a} }

func (c Choice) MarshalJSON() ([]byte, error) {
	if c.Action.IsPass() {
		return json.Marshal("PASS")
	}
	m := c.Action.Move
	return json.Marshal([4]interface{}{
		m.Slide.Slot,
		directionToWire(m.Slide.Direction),
		rotationsToDegrees(m.Rotations),
		FromCoordinate(m.Destination),
	})
}

func (c *Choice) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString != "PASS" {
			return fmt.Errorf("proto: unrecognised choice string %q", asString)
		}
		c.Action = maze.Pass
		return nil
	}

	var tuple [4]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("proto: malformed choice: %w", err)
	}
	var slot, degree int
	var wireDir string
	var dest Coordinate
	if err := json.Unmarshal(tuple[0], &slot); err != nil {
		return fmt.Errorf("proto: malformed choice slot: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &wireDir); err != nil {
		return fmt.Errorf("proto: malformed choice direction: %w", err)
	}
	if err := json.Unmarshal(tuple[2], &degree); err != nil {
		return fmt.Errorf("proto: malformed choice degree: %w", err)
	}
	if err := json.Unmarshal(tuple[3], &dest); err != nil {
		return fmt.Errorf("proto: malformed choice destination: %w", err)
	}
	dir, err := directionFromWire(wireDir)
	if err != nil {
		return err
	}
	rotations, err := degreesToRotations(degree)
	if err != nil {
		return err
	}
	c.Action = maze.MoveAction(maze.Move{
		Slide:       maze.Slide{Slot: slot, Direction: dir},
		Rotations:   rotations,
		Destination: dest.ToDomain(),
	})
	return nil
}
