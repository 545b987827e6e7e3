// Generic two-dimensional grid
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

import "fmt"

// Coordinate identifies a cell by column and row, both 0-based.
// Comparison is row-major: a Coordinate orders before another if its
// row is smaller, or the rows are equal and its column is smaller.
type Coordinate struct {
	Column, Row int
}

// Less implements the row-major ordering used throughout the wire
// protocol and the strategies.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Column < o.Column
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}

// Grid is a generic N columns by M rows container, indexed
// (column, row). It can shift a single row or column either with
// wrap semantics (ShiftRowWrap/ShiftColumnWrap) or by displacement,
// inserting a caller-supplied value and returning the dislodged one
// (ShiftRowDisplace/ShiftColumnDisplace); the Board layer uses only
// displacement.
type Grid[T any] struct {
	cols, rows int
	cells      []T
}

// NewGrid builds a cols x rows grid, populating every cell with
// init(column, row).
func NewGrid[T any](cols, rows int, init func(col, row int) T) *Grid[T] {
	g := &Grid[T]{cols: cols, rows: rows, cells: make([]T, cols*rows)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[r*cols+c] = init(c, r)
		}
	}
	return g
}

func (g *Grid[T]) Columns() int { return g.cols }
func (g *Grid[T]) Rows() int    { return g.rows }

// InBounds reports whether c lies within the grid.
func (g *Grid[T]) InBounds(c Coordinate) bool {
	return c.Column >= 0 && c.Column < g.cols && c.Row >= 0 && c.Row < g.rows
}

func (g *Grid[T]) index(c Coordinate) int { return c.Row*g.cols + c.Column }

// At returns the value at c.
func (g *Grid[T]) At(c Coordinate) T {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("coordinate out of bounds: %s", c))
	}
	return g.cells[g.index(c)]
}

// Set writes v at c.
func (g *Grid[T]) Set(c Coordinate, v T) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("coordinate out of bounds: %s", c))
	}
	g.cells[g.index(c)] = v
}

// Clone returns an independent deep-ish copy (element-wise copy;
// elements themselves are copied by value).
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{cols: g.cols, rows: g.rows, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// ShiftRowWrap rotates row by one cell in direction East or West,
// wrapping the edge cell around to the opposite side, and returns
// the value that was dislodged (the value that fell off the
// trailing edge before wrapping).
func (g *Grid[T]) ShiftRowWrap(row int, dir Direction) (dislodged T) {
	if dir != East && dir != West {
		panic("ShiftRowWrap requires East or West")
	}
	if dir == East {
		dislodged = g.At(Coordinate{Column: g.cols - 1, Row: row})
		for c := g.cols - 1; c > 0; c-- {
			g.Set(Coordinate{Column: c, Row: row}, g.At(Coordinate{Column: c - 1, Row: row}))
		}
		g.Set(Coordinate{Column: 0, Row: row}, dislodged)
	} else {
		dislodged = g.At(Coordinate{Column: 0, Row: row})
		for c := 0; c < g.cols-1; c++ {
			g.Set(Coordinate{Column: c, Row: row}, g.At(Coordinate{Column: c + 1, Row: row}))
		}
		g.Set(Coordinate{Column: g.cols - 1, Row: row}, dislodged)
	}
	return dislodged
}

// ShiftColumnWrap is the column analogue of ShiftRowWrap, for
// direction North or South.
func (g *Grid[T]) ShiftColumnWrap(col int, dir Direction) (dislodged T) {
	if dir != North && dir != South {
		panic("ShiftColumnWrap requires North or South")
	}
	if dir == South {
		dislodged = g.At(Coordinate{Column: col, Row: g.rows - 1})
		for r := g.rows - 1; r > 0; r-- {
			g.Set(Coordinate{Column: col, Row: r}, g.At(Coordinate{Column: col, Row: r - 1}))
		}
		g.Set(Coordinate{Column: col, Row: 0}, dislodged)
	} else {
		dislodged = g.At(Coordinate{Column: col, Row: 0})
		for r := 0; r < g.rows-1; r++ {
			g.Set(Coordinate{Column: col, Row: r}, g.At(Coordinate{Column: col, Row: r + 1}))
		}
		g.Set(Coordinate{Column: col, Row: g.rows - 1}, dislodged)
	}
	return dislodged
}

// ShiftRowDisplace shifts row by one cell toward dir (East or
// West), discarding the trailing-edge value and inserting newEdge
// at the leading edge. It returns the discarded value. Unlike
// ShiftRowWrap, the vacated cell is not filled by wrap-around but by
// the caller-supplied tile — this is the primitive the board uses
// for strip displacement.
func (g *Grid[T]) ShiftRowDisplace(row int, dir Direction, newEdge T) (dislodged T) {
	if dir != East && dir != West {
		panic("ShiftRowDisplace requires East or West")
	}
	if dir == East {
		dislodged = g.At(Coordinate{Column: g.cols - 1, Row: row})
		for c := g.cols - 1; c > 0; c-- {
			g.Set(Coordinate{Column: c, Row: row}, g.At(Coordinate{Column: c - 1, Row: row}))
		}
		g.Set(Coordinate{Column: 0, Row: row}, newEdge)
	} else {
		dislodged = g.At(Coordinate{Column: 0, Row: row})
		for c := 0; c < g.cols-1; c++ {
			g.Set(Coordinate{Column: c, Row: row}, g.At(Coordinate{Column: c + 1, Row: row}))
		}
		g.Set(Coordinate{Column: g.cols - 1, Row: row}, newEdge)
	}
	return dislodged
}

// ShiftColumnDisplace is the column analogue of ShiftRowDisplace,
// for direction North or South.
func (g *Grid[T]) ShiftColumnDisplace(col int, dir Direction, newEdge T) (dislodged T) {
	if dir != North && dir != South {
		panic("ShiftColumnDisplace requires North or South")
	}
	if dir == South {
		dislodged = g.At(Coordinate{Column: col, Row: g.rows - 1})
		for r := g.rows - 1; r > 0; r-- {
			g.Set(Coordinate{Column: col, Row: r}, g.At(Coordinate{Column: col, Row: r - 1}))
		}
		g.Set(Coordinate{Column: col, Row: 0}, newEdge)
	} else {
		dislodged = g.At(Coordinate{Column: col, Row: 0})
		for r := 0; r < g.rows-1; r++ {
			g.Set(Coordinate{Column: col, Row: r}, g.At(Coordinate{Column: col, Row: r + 1}))
		}
		g.Set(Coordinate{Column: col, Row: g.rows - 1}, newEdge)
	}
	return dislodged
}

// Each calls fn for every cell, visiting rows top to bottom and,
// within a row, columns left to right.
func (g *Grid[T]) Each(fn func(c Coordinate, v T)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			fn(Coordinate{Column: c, Row: r}, g.cells[r*g.cols+c])
		}
	}
}
