// Package generator carves maze topologies into empty grids.
package generator

import (
	"mazelott/pkg/engine/world"
)

// MinDimension is the smallest side that still has one interior room at (1,1).
const MinDimension = 3

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(width, height int) *world.Grid
	Name() string
}

// Dimensions normalizes requested sizes: anything below MinDimension is raised
// to it and even values are bumped to the next odd value.
func Dimensions(width, height int) (int, int) {
	return world.OddDimension(max(width, MinDimension)), world.OddDimension(max(height, MinDimension))
}

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = NewBacktracker(nil)
