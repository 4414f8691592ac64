// Package placement furnishes a carved maze: it marks the start, hides the
// treasure, opens the exit and scatters guiding and misleading waypoints.
package placement

import (
	"errors"
	"fmt"
	"math/rand"

	"mazelott/pkg/engine/pathfind"
	"mazelott/pkg/engine/world"
)

// Placement errors. ErrTooFewPathCells and ErrNoExit leave the maze
// unfurnished; ErrNoRoute leaves treasure and exit placed but no waypoints.
var (
	ErrTooFewPathCells = errors.New("too few path cells to furnish the maze")
	ErrNoExit          = errors.New("no path cell near the far corner for an exit")
	ErrNoRoute         = errors.New("optimal route unavailable")
)

// Placement constants
const (
	MinPathCells  = 5
	ExitWindow    = 6
	GoodWaypoints = 3
	BadWaypoints  = 2
)

// Waypoint is a marked cell that surfaces a one-shot hint on first visit.
type Waypoint struct {
	Pos    world.Position `json:"pos"`
	Hint   string         `json:"hint"` // translation key, see package hints
	Used   bool           `json:"used"`
	IsGood bool           `json:"isGood"`
}

// Layout is the content placed into a maze
type Layout struct {
	Start     world.Position  `json:"start"`
	Treasure  *world.Position `json:"treasure,omitempty"`
	Exit      *world.Position `json:"exit,omitempty"`
	Route     world.Route     `json:"route,omitempty"`
	Waypoints []*Waypoint     `json:"waypoints,omitempty"`
}

// Furnished reports whether both treasure and exit were placed
func (l *Layout) Furnished() bool {
	return l != nil && l.Treasure != nil && l.Exit != nil
}

// UnusedWaypointAt returns the unused waypoint at p, or nil
func (l *Layout) UnusedWaypointAt(p world.Position) *Waypoint {
	if l == nil {
		return nil
	}
	for _, w := range l.Waypoints {
		if w.Pos == p && !w.Used {
			return w
		}
	}
	return nil
}

// CountWaypoints returns the number of good and bad waypoints
func (l *Layout) CountWaypoints() (good, bad int) {
	for _, w := range l.Waypoints {
		if w.IsGood {
			good++
		} else {
			bad++
		}
	}
	return good, bad
}

// ResetWaypoints marks every waypoint unused again
func (l *Layout) ResetWaypoints() {
	for _, w := range l.Waypoints {
		w.Used = false
	}
}

// Place furnishes grid in place, starting from start. The returned layout is
// never nil; on error it holds whatever was placed before the failing step.
func Place(grid *world.Grid, start world.Position, rng *rand.Rand) (*Layout, error) {
	layout := &Layout{Start: start}

	pathCells := interiorPathCells(grid)
	if len(pathCells) < MinPathCells {
		return layout, fmt.Errorf("%w: %d < %d", ErrTooFewPathCells, len(pathCells), MinPathCells)
	}

	exit, ok := findExit(grid, start)
	if !ok {
		return layout, ErrNoExit
	}
	grid.SetType(exit, world.Exit)
	layout.Exit = &exit

	treasure, ok := treasureOnRoute(grid, start, exit)
	if !ok {
		treasure, ok = farthestFrom(pathCells, start, exit)
		if !ok {
			grid.SetType(exit, world.Path)
			layout.Exit = nil
			return layout, fmt.Errorf("%w: no cell left for the treasure", ErrTooFewPathCells)
		}
	}
	grid.SetType(treasure, world.TreasureHidden)
	layout.Treasure = &treasure

	grid.SetType(start, world.Start)

	route, err := fullRoute(grid, start, treasure, exit)
	if err != nil {
		return layout, fmt.Errorf("%w: %w", ErrNoRoute, err)
	}
	layout.Route = route

	layout.Waypoints = append(layout.Waypoints, placeGoodWaypoints(grid, route, rng)...)
	layout.Waypoints = append(layout.Waypoints, placeBadWaypoints(grid, route, rng)...)

	return layout, nil
}

// interiorPathCells returns all path cells inside the border, row-major
func interiorPathCells(grid *world.Grid) []world.Position {
	var cells []world.Position
	for y := 1; y < grid.Height()-1; y++ {
		for x := 1; x < grid.Width()-1; x++ {
			p := world.Pos(x, y)
			if grid.TypeAt(p) == world.Path {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// findExit picks the path cell closest to the far corner inside a small window
// near it. Ties go to the first cell in row-major order.
func findExit(grid *world.Grid, start world.Position) (world.Position, bool) {
	w, h := grid.Width(), grid.Height()
	corner := world.Pos(w-1, h-1)

	var best world.Position
	found := false
	for y := max(1, h-ExitWindow); y < h-1; y++ {
		for x := max(1, w-ExitWindow); x < w-1; x++ {
			p := world.Pos(x, y)
			if p == start || grid.TypeAt(p) != world.Path {
				continue
			}
			if !found || p.Manhattan(corner) < best.Manhattan(corner) {
				best = p
				found = true
			}
		}
	}
	return best, found
}

// treasureOnRoute returns the midpoint of the shortest start→exit route, when
// that route is long enough for the midpoint to differ from both ends.
func treasureOnRoute(grid *world.Grid, start, exit world.Position) (world.Position, bool) {
	route, err := pathfind.FindPath(grid, start, exit)
	if err != nil || route.Len() <= 2 {
		return world.Position{}, false
	}
	return route[route.Len()/2], true
}

// farthestFrom returns the cell with the greatest Manhattan distance from
// start, skipping start and exclude. Ties go to the first cell.
func farthestFrom(cells []world.Position, start, exclude world.Position) (world.Position, bool) {
	var best world.Position
	bestDist := 0
	for _, c := range cells {
		if c == start || c == exclude {
			continue
		}
		if d := c.Manhattan(start); d > bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist > 0
}

// fullRoute is start→treasure joined with treasure→exit
func fullRoute(grid *world.Grid, start, treasure, exit world.Position) (world.Route, error) {
	toTreasure, err := pathfind.FindPath(grid, start, treasure)
	if err != nil {
		return nil, fmt.Errorf("start to treasure: %w", err)
	}
	toExit, err := pathfind.FindPath(grid, treasure, exit)
	if err != nil {
		return nil, fmt.Errorf("treasure to exit: %w", err)
	}
	return toTreasure.Join(toExit), nil
}
