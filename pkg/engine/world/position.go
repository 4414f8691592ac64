package world

import "fmt"

// Position is an integer grid coordinate. X is the column, Y the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos is shorthand for Position{X: x, Y: y}
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns "(x, y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Step returns the position one cell away in the given direction
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance between two positions
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// IsAdjacent reports whether o is exactly one step away along an axis.
// Diagonal neighbours and p itself are not adjacent.
func (p Position) IsAdjacent(o Position) bool {
	return p.Manhattan(o) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
