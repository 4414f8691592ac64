package world

import (
	"errors"
	"fmt"
	"strings"
)

// Grid errors reported by Validate
var (
	ErrInvalidDimensions = errors.New("grid has invalid dimensions")
	ErrBorderCarved      = errors.New("grid border cell is not a wall")
)

// Grid is a fixed width×height array of cells stored row-major.
type Grid struct {
	cells  [][]Cell
	width  int
	height int
}

// OddDimension bumps an even size to the next odd value so that rooms sit on
// odd coordinates and walls between them on integer midpoints.
func OddDimension(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// NewGrid creates a new all-wall grid with the given dimensions
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions, every cell a wall
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsInterior checks if a position is strictly inside the border
func (g *Grid) IsInterior(p Position) bool {
	return p.X > 0 && p.X < g.width-1 && p.Y > 0 && p.Y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(p Position) bool {
	return g.InBounds(p) && !g.IsInterior(p)
}

// Cell returns the cell at p. Accessing outside the grid is a programming
// error and panics; guard with InBounds.
func (g *Grid) Cell(p Position) Cell {
	g.mustBeInBounds(p)
	return g.cells[p.Y][p.X]
}

// TypeAt returns the type of the cell at p
func (g *Grid) TypeAt(p Position) CellType {
	return g.Cell(p).Type
}

// SetCell overwrites the cell at p
func (g *Grid) SetCell(p Position, c Cell) {
	g.mustBeInBounds(p)
	g.cells[p.Y][p.X] = c
}

// SetType changes the type of the cell at p, leaving Visited untouched
func (g *Grid) SetType(p Position, t CellType) {
	g.mustBeInBounds(p)
	g.cells[p.Y][p.X].Type = t
}

func (g *Grid) mustBeInBounds(p Position) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid access out of bounds: %v not in %dx%d", p, g.width, g.height))
	}
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(p Position, cell Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Position{X: x, Y: y}, g.cells[y][x])
		}
	}
}

// CellsOfType returns the positions of every cell of type t, in row-major order
func (g *Grid) CellsOfType(t CellType) []Position {
	var out []Position
	g.ForEachCell(func(p Position, cell Cell) {
		if cell.Type == t {
			out = append(out, p)
		}
	})
	return out
}

// CountType returns how many cells have type t
func (g *Grid) CountType(t CellType) int {
	n := 0
	g.ForEachCell(func(_ Position, cell Cell) {
		if cell.Type == t {
			n++
		}
	})
	return n
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([][]Cell, g.height)}
	for y := range g.cells {
		c.cells[y] = append([]Cell(nil), g.cells[y]...)
	}
	return c
}

// Validate checks the grid for structural issues
func (g *Grid) Validate() error {
	if g.width <= 0 || g.height <= 0 || len(g.cells) != g.height {
		return ErrInvalidDimensions
	}

	var err error
	g.ForEachCell(func(p Position, cell Cell) {
		if err == nil && g.IsOnPerimeter(p) && cell.Type != Wall {
			err = fmt.Errorf("%w: %v is %v", ErrBorderCarved, p, cell.Type)
		}
	})
	return err
}

// String renders the grid with '#' for walls and '.' for anything walkable
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].Type == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
