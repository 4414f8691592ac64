package placement

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazelott/pkg/engine/pathfind"
	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/generator"
)

var start = world.Pos(1, 1)

// carved returns a freshly carved maze for a seed.
func carved(t *testing.T, w, h int, seed int64) *world.Grid {
	t.Helper()
	return generator.NewBacktracker(rand.New(rand.NewSource(seed))).Generate(w, h)
}

// gridFromRows builds a grid from rows of '#' (wall) and '.' (path).
func gridFromRows(t *testing.T, rows ...string) *world.Grid {
	t.Helper()
	g := world.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '.' {
				g.SetType(world.Pos(x, y), world.Path)
			}
		}
	}
	return g
}

func TestPlace_EndToEnd7x7(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		grid := carved(t, 7, 7, seed)
		layout, err := Place(grid, start, rand.New(rand.NewSource(seed)))
		require.NoError(t, err, "seed %d", seed)

		assert.Equal(t, world.Start, grid.TypeAt(start))
		assert.Equal(t, 1, grid.CountType(world.Exit))
		assert.Equal(t, 1, grid.CountType(world.TreasureHidden))
		assert.GreaterOrEqual(t, layout.Route.Len(), 2)
		assert.True(t, layout.Furnished())
		assert.NoError(t, grid.Validate())
	}
}

func TestPlace_RouteIsTraversableAndJoined(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		grid := carved(t, 21, 15, seed)
		layout, err := Place(grid, start, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		route := layout.Route
		assert.Equal(t, start, route.First())
		assert.Equal(t, *layout.Exit, route.Last())
		assert.True(t, route.Contains(*layout.Treasure))
		assert.True(t, route.IsContiguous())
		for _, p := range route {
			assert.True(t, pathfind.Traversable(grid.TypeAt(p)))
		}

		seen := map[world.Position]bool{}
		for _, p := range route {
			assert.False(t, seen[p], "a perfect maze route never revisits %v", p)
			seen[p] = true
		}
	}
}

func TestPlace_TreasureAtRouteMidpoint(t *testing.T) {
	grid := carved(t, 15, 15, 9)
	layout, err := Place(grid, start, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	// in a perfect maze start→treasure→exit is the start→exit route itself
	assert.Equal(t, layout.Route[layout.Route.Len()/2], *layout.Treasure)
	assert.NotEqual(t, start, *layout.Treasure)
	assert.NotEqual(t, *layout.Exit, *layout.Treasure)
}

func TestPlace_ExitNearFarCorner(t *testing.T) {
	grid := carved(t, 11, 9, 4)
	layout, err := Place(grid, start, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	// the far room is always carved, and it is the closest cell to the corner
	assert.Equal(t, world.Pos(9, 7), *layout.Exit)
}

func TestPlace_WaypointInvariants(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		grid := carved(t, 15, 11, seed)
		layout, err := Place(grid, start, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		good, bad := layout.CountWaypoints()
		assert.LessOrEqual(t, good, GoodWaypoints)
		assert.LessOrEqual(t, bad, BadWaypoints)
		if layout.Route.Len() < 8 {
			assert.Less(t, good, GoodWaypoints)
		}

		for _, w := range layout.Waypoints {
			assert.Equal(t, world.Waypoint, grid.TypeAt(w.Pos))
			assert.NotEqual(t, start, w.Pos)
			assert.NotEqual(t, *layout.Treasure, w.Pos)
			assert.NotEqual(t, *layout.Exit, w.Pos)
			assert.False(t, w.Used)
			assert.NotEmpty(t, w.Hint)
			assert.Equal(t, w.IsGood, layout.Route.Contains(w.Pos), "good waypoints sit on the route, bad ones off it")
		}
		assert.Equal(t, len(layout.Waypoints), grid.CountType(world.Waypoint))
	}
}

func TestPlace_BadWaypointsNeedOffRouteCells(t *testing.T) {
	// a single corridor has no off-route cells at all
	grid := gridFromRows(t,
		"###########",
		"#.........#",
		"###########",
	)
	layout, err := Place(grid, start, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	good, bad := layout.CountWaypoints()
	assert.Equal(t, 0, bad)
	assert.Equal(t, 2, good, "the middle quarter point is the treasure")
	assert.Equal(t, world.Pos(9, 1), *layout.Exit)
	assert.Equal(t, world.Pos(5, 1), *layout.Treasure)
}

func TestPlace_TooFewPathCells(t *testing.T) {
	grid := carved(t, 3, 3, 1)
	layout, err := Place(grid, start, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrTooFewPathCells)
	require.NotNil(t, layout)
	assert.False(t, layout.Furnished())
	assert.Nil(t, layout.Exit)
	assert.Nil(t, layout.Treasure)
	assert.Empty(t, layout.Waypoints)
	assert.Equal(t, world.Path, grid.TypeAt(start), "nothing is marked")
}

func TestPlace_NoExitInWindow(t *testing.T) {
	// enough path, all of it far from the bottom-right corner
	grid := gridFromRows(t,
		"###########",
		"#.....#####",
		"###########",
		"###########",
		"###########",
		"###########",
		"###########",
		"###########",
		"###########",
		"###########",
	)
	layout, err := Place(grid, start, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoExit)
	assert.False(t, layout.Furnished())
	assert.Equal(t, 0, grid.CountType(world.Exit))
	assert.Equal(t, 0, grid.CountType(world.TreasureHidden))
}

func TestPlace_DisconnectedDegrades(t *testing.T) {
	// the exit window only reaches the right-hand pocket
	grid := gridFromRows(t,
		"###########",
		"#....###..#",
		"###########",
	)
	layout, err := Place(grid, start, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoRoute)
	assert.ErrorIs(t, err, pathfind.ErrNoRoute)
	require.True(t, layout.Furnished(), "treasure and exit are still placed")
	assert.Equal(t, world.Pos(9, 1), *layout.Exit)
	assert.Equal(t, world.Pos(8, 1), *layout.Treasure, "falls back to the farthest cell from start")
	assert.Nil(t, layout.Route)
	assert.Empty(t, layout.Waypoints)
}

func TestPlace_ShortRouteFallsBackToFarthestCell(t *testing.T) {
	grid := gridFromRows(t,
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	// the exit lands right next to this start
	from := world.Pos(3, 2)
	layout, err := Place(grid, from, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, world.Pos(3, 3), *layout.Exit)
	assert.Equal(t, world.Pos(1, 1), *layout.Treasure)
	assert.Equal(t, world.Start, grid.TypeAt(from))
	assert.Equal(t, from, layout.Route.First())
	assert.Equal(t, world.Pos(3, 3), layout.Route.Last())
	assert.True(t, layout.Route.IsContiguous())
}

func TestLayout_UnusedWaypointAt(t *testing.T) {
	w := &Waypoint{Pos: world.Pos(3, 1), Hint: "HINT_GOOD_1", IsGood: true}
	l := &Layout{Waypoints: []*Waypoint{w}}

	assert.Same(t, w, l.UnusedWaypointAt(world.Pos(3, 1)))
	assert.Nil(t, l.UnusedWaypointAt(world.Pos(1, 3)))

	w.Used = true
	assert.Nil(t, l.UnusedWaypointAt(world.Pos(3, 1)))

	l.ResetWaypoints()
	assert.False(t, w.Used)

	var none *Layout
	assert.Nil(t, none.UnusedWaypointAt(world.Pos(3, 1)))
	assert.False(t, none.Furnished())
}
