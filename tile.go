// Tiles
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

// GemPair is the unordered pair of gems a tile bears. Equality is
// order-independent.
type GemPair struct {
	A, B Gem
}

// Equal reports whether two gem pairs contain the same two gems,
// ignoring order.
func (p GemPair) Equal(q GemPair) bool {
	if p.A == q.A && p.B == q.B {
		return true
	}
	return p.A == q.B && p.B == q.A
}

// Tile is a single board cell: a connector shape plus the treasure
// it carries. Tile identity for test equality is structural.
type Tile struct {
	Connector Connector
	Gems      GemPair
}

// RotateClockwise returns the tile rotated 90 degrees clockwise. The
// gems travel with the tile unchanged.
func (t Tile) RotateClockwise() Tile {
	return Tile{Connector: t.Connector.RotateClockwise(), Gems: t.Gems}
}

// Connects reports whether t and other may be crossed in direction
// d, from t towards other.
func (t Tile) Connects(other Tile, d Direction) bool {
	return t.Connector.Connects(other.Connector, d)
}
