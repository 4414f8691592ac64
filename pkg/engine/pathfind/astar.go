// Package pathfind finds shortest routes across a maze grid.
package pathfind

import (
	"errors"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"mazelott/pkg/engine/world"
)

// ErrNoRoute is returned when the goal cannot be reached from the start.
var ErrNoRoute = errors.New("no route found")

// Traversable reports whether a cell of type t can be walked through during a
// search. TreasureFound is included so a session can be re-searched after pickup.
func Traversable(t world.CellType) bool {
	switch t {
	case world.Path, world.Start, world.TreasureHidden, world.TreasureFound, world.Waypoint, world.Exit:
		return true
	default:
		return false
	}
}

// node is an open-set entry. seq orders entries with equal f by discovery.
type node struct {
	pos world.Position
	f   int
	seq int
}

// Manhattan is the search heuristic: admissible and consistent on a 4-connected uniform-cost grid.
func Manhattan(a, b world.Position) int {
	return a.Manhattan(b)
}

// FindPath runs A* from start to goal and returns the route including both
// endpoints. Start and goal must be traversable in-bounds cells, otherwise
// ErrNoRoute is returned.
func FindPath(grid *world.Grid, start, goal world.Position) (world.Route, error) {
	if !grid.InBounds(start) || !grid.InBounds(goal) {
		return nil, ErrNoRoute
	}
	if !Traversable(grid.TypeAt(start)) || !Traversable(grid.TypeAt(goal)) {
		return nil, ErrNoRoute
	}

	open := heap.New[node](func(a, b node) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})
	closed := mapset.New[world.Position]()
	cameFrom := make(map[world.Position]world.Position)
	gScore := map[world.Position]int{start: 0}

	seq := 0
	open.Push(node{pos: start, f: Manhattan(start, goal), seq: seq})

	for open.Size() > 0 {
		current, _ := open.Pop()
		if closed.Has(current.pos) {
			// stale entry superseded by a cheaper push
			continue
		}

		if current.pos == goal {
			return reconstruct(cameFrom, start, goal), nil
		}
		closed.Put(current.pos)

		for _, dir := range world.AllDirections() {
			next := current.pos.Step(dir)
			if !grid.InBounds(next) || !Traversable(grid.TypeAt(next)) || closed.Has(next) {
				continue
			}

			tentative := gScore[current.pos] + 1
			if old, seen := gScore[next]; seen && tentative >= old {
				continue
			}
			cameFrom[next] = current.pos
			gScore[next] = tentative
			seq++
			open.Push(node{pos: next, f: tentative + Manhattan(next, goal), seq: seq})
		}
	}

	return nil, ErrNoRoute
}

// reconstruct walks back-pointers from goal to start
func reconstruct(cameFrom map[world.Position]world.Position, start, goal world.Position) world.Route {
	route := world.Route{goal}
	for p := goal; p != start; {
		p = cameFrom[p]
		route = append(route, p)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

// Distance returns the number of steps on the shortest route, or ErrNoRoute
func Distance(grid *world.Grid, start, goal world.Position) (int, error) {
	route, err := FindPath(grid, start, goal)
	if err != nil {
		return 0, err
	}
	return route.Len() - 1, nil
}
