package placement

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/hints"
)

// placeGoodWaypoints marks the route's quarter points. Indices landing on
// either end of the route, or on a cell that is not plain path (treasure,
// an earlier waypoint), are skipped.
func placeGoodWaypoints(grid *world.Grid, route world.Route, rng *rand.Rand) []*Waypoint {
	var placed []*Waypoint
	n := route.Len()
	for i := 1; i <= GoodWaypoints; i++ {
		index := n * i / (GoodWaypoints + 1)
		if index <= 0 || index >= n-1 {
			continue
		}
		p := route[index]
		if grid.TypeAt(p) != world.Path {
			continue
		}
		grid.SetType(p, world.Waypoint)
		placed = append(placed, &Waypoint{
			Pos:    p,
			Hint:   hints.Pick(rng, hints.WaypointGood),
			IsGood: true,
		})
	}
	return placed
}

// placeBadWaypoints marks random path cells off the route
func placeBadWaypoints(grid *world.Grid, route world.Route, rng *rand.Rand) []*Waypoint {
	onRoute := mapset.New[world.Position]()
	for _, p := range route {
		onRoute.Put(p)
	}

	var candidates []world.Position
	for _, p := range interiorPathCells(grid) {
		if !onRoute.Has(p) {
			candidates = append(candidates, p)
		}
	}

	var placed []*Waypoint
	for i := 0; i < BadWaypoints && len(candidates) > 0; i++ {
		k := rng.Intn(len(candidates))
		p := candidates[k]
		candidates = append(candidates[:k], candidates[k+1:]...)

		grid.SetType(p, world.Waypoint)
		placed = append(placed, &Waypoint{
			Pos:    p,
			Hint:   hints.Pick(rng, hints.WaypointBad),
			IsGood: false,
		})
	}
	return placed
}
