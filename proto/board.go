// Wire encoding of boards and coordinates
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

// Package proto implements the JSON wire format exchanged between a
// referee and player proxies: boards, states, actions, function
// calls and replies, and the PlayerSpec/RefereeState documents the
// CLI observer harness reads from standard input.
package proto

import (
	"fmt"

	"maze"
)

// Coordinate is the wire shape of a maze.Coordinate: a row/column
// pair compared row-major, with the literal field names the
// protocol uses.
type Coordinate struct {
	Row    int `json:"row#"`
	Column int `json:"column#"`
}

// FromCoordinate converts a domain coordinate to its wire form.
func FromCoordinate(c maze.Coordinate) Coordinate {
	return Coordinate{Row: c.Row, Column: c.Column}
}

// ToDomain converts a wire coordinate to its domain form.
func (c Coordinate) ToDomain() maze.Coordinate {
	return maze.Coordinate{Column: c.Column, Row: c.Row}
}

// Board is the wire shape of a maze.Board: a grid of single-glyph
// connector strings and a parallel grid of [gem, gem] pairs.
type Board struct {
	Connectors [][]string   `json:"connectors"`
	Treasures  [][][2]string `json:"treasures"`
}

// FromBoard serialises a domain board. The held spare is not part of
// this shape; callers needing it encode it separately.
func FromBoard(b *maze.Board) Board {
	conn := make([][]string, b.Rows())
	treas := make([][][2]string, b.Rows())
	for r := 0; r < b.Rows(); r++ {
		conn[r] = make([]string, b.Columns())
		treas[r] = make([][2]string, b.Columns())
		for c := 0; c < b.Columns(); c++ {
			t := b.TileAt(maze.Coordinate{Column: c, Row: r})
			conn[r][c] = string(t.Connector.Glyph())
			treas[r][c] = [2]string{t.Gems.A.String(), t.Gems.B.String()}
		}
	}
	return Board{Connectors: conn, Treasures: treas}
}

// ToBoard deserialises a board and a separately supplied spare tile
// glyph + gem pair into a domain board.
func (b Board) ToBoard(spareGlyph string, spareGems [2]string) (*maze.Board, error) {
	rows := len(b.Connectors)
	if rows == 0 || len(b.Treasures) != rows {
		return nil, fmt.Errorf("proto: malformed board: mismatched row counts")
	}
	cols := len(b.Connectors[0])

	tiles := make([]maze.Tile, 0, rows*cols)
	for r := 0; r < rows; r++ {
		if len(b.Connectors[r]) != cols || len(b.Treasures[r]) != cols {
			return nil, fmt.Errorf("proto: malformed board: row %d has inconsistent width", r)
		}
		for c := 0; c < cols; c++ {
			glyph := []rune(b.Connectors[r][c])
			if len(glyph) != 1 {
				return nil, fmt.Errorf("proto: malformed connector glyph %q", b.Connectors[r][c])
			}
			conn, ok := maze.ConnectorFromGlyph(glyph[0])
			if !ok {
				return nil, fmt.Errorf("proto: unrecognised connector glyph %q", b.Connectors[r][c])
			}
			a, ok := maze.GemFromName(b.Treasures[r][c][0])
			if !ok {
				return nil, fmt.Errorf("proto: unrecognised gem %q", b.Treasures[r][c][0])
			}
			g, ok := maze.GemFromName(b.Treasures[r][c][1])
			if !ok {
				return nil, fmt.Errorf("proto: unrecognised gem %q", b.Treasures[r][c][1])
			}
			tiles = append(tiles, maze.Tile{Connector: conn, Gems: maze.GemPair{A: a, B: g}})
		}
	}

	spareGlyphRunes := []rune(spareGlyph)
	if len(spareGlyphRunes) != 1 {
		return nil, fmt.Errorf("proto: malformed spare glyph %q", spareGlyph)
	}
	spareConn, ok := maze.ConnectorFromGlyph(spareGlyphRunes[0])
	if !ok {
		return nil, fmt.Errorf("proto: unrecognised spare glyph %q", spareGlyph)
	}
	spareA, ok := maze.GemFromName(spareGems[0])
	if !ok {
		return nil, fmt.Errorf("proto: unrecognised spare gem %q", spareGems[0])
	}
	spareB, ok := maze.GemFromName(spareGems[1])
	if !ok {
		return nil, fmt.Errorf("proto: unrecognised spare gem %q", spareGems[1])
	}
	spare := maze.Tile{Connector: spareConn, Gems: maze.GemPair{A: spareA, B: spareB}}

	return maze.NewBoard(cols, rows, tiles, spare)
}
