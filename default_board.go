// Reference default board
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

// defaultGlyphs is the row-major connector pattern of the reference
// 7x7 board, all tiles bearing (amethyst, garnet).
const defaultGlyphs = "─│└┌┐┘┴" +
	"├┬┤┼─│└" +
	"┌┐┘┴├┬┤" +
	"┼─│└┌┐┘" +
	"┴├┬┤┼─│" +
	"└┌┐┘┴├┬" +
	"┤┼─│└┌┐"

// DefaultBoard returns the 7x7 reference board used throughout the
// worked examples: a fixed repeating connector pattern, every tile
// bearing (amethyst, garnet), and a cross spare.
func DefaultBoard() *Board {
	glyphs := []rune(defaultGlyphs)
	gems := GemPair{A: GemAmethyst, B: GemGarnet}
	tiles := make([]Tile, len(glyphs))
	for i, r := range glyphs {
		conn, ok := ConnectorFromGlyph(r)
		if !ok {
			panic("illegal glyph in default board pattern")
		}
		tiles[i] = Tile{Connector: conn, Gems: gems}
	}
	spare, _ := ConnectorFromGlyph('┼')
	b, err := NewBoard(7, 7, tiles, Tile{Connector: spare, Gems: gems})
	if err != nil {
		panic(err)
	}
	return b
}
