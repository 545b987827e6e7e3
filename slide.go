// Slides
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

// Slide names a strip to displace: Slot is the externally-numbered
// even-strip index (0..floor(N/2)), which maps to strip 2*Slot, and
// Direction names which way the strip moves. East/West slide a row;
// North/South slide a column.
type Slide struct {
	Slot      int
	Direction Direction
}

// Strip returns the underlying even row or column index this slide
// refers to.
func (s Slide) Strip() int { return s.Slot * 2 }

// Opposite returns the slide that would exactly undo s: same slot,
// opposite direction.
func (s Slide) Opposite() Slide {
	return Slide{Slot: s.Slot, Direction: s.Direction.Opposite()}
}

// IsRow reports whether this slide displaces a row (moves East or
// West) as opposed to a column.
func (s Slide) IsRow() bool {
	return s.Direction == East || s.Direction == West
}
