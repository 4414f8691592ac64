package devtools

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/placement"
	"mazelott/pkg/game/state"
)

func corridorGame(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame()
	g.Grid = world.NewGrid(6, 3)
	for x := 1; x <= 4; x++ {
		g.Grid.SetType(world.Pos(x, 1), world.Path)
	}
	g.Grid.SetType(world.Pos(1, 1), world.Start)
	g.Grid.SetType(world.Pos(3, 1), world.TreasureHidden)
	g.Grid.SetType(world.Pos(4, 1), world.Exit)
	treasure, exit := world.Pos(3, 1), world.Pos(4, 1)
	g.Layout = &placement.Layout{
		Start:    world.Pos(1, 1),
		Treasure: &treasure,
		Exit:     &exit,
		Route:    world.Route{world.Pos(1, 1), world.Pos(2, 1), treasure, exit},
		Waypoints: []*placement.Waypoint{
			{Pos: world.Pos(2, 1), Hint: "HINT_GOOD_2", IsGood: true},
		},
	}
	g.ResetProgress()
	return g
}

func TestWriteMapDump(t *testing.T) {
	g := corridorGame(t)
	g.Seed = 42

	var sb strings.Builder
	require.NoError(t, WriteMapDump(&sb, g))
	out := sb.String()

	assert.Contains(t, out, "seed: 42")
	assert.Contains(t, out, "width: 6")
	assert.Contains(t, out, "furnished: true")
	assert.Contains(t, out, "route_length: 4")
	assert.Contains(t, out, "######\n#@.TE#\n######\n")
	assert.Contains(t, out, "######\n#@*TE#\n######\n")
	assert.Contains(t, out, `x: 2 y: 1 good: true used: false hint: "HINT_GOOD_2"`)
}

func TestWriteMapDump_NoGrid(t *testing.T) {
	var sb strings.Builder
	assert.ErrorIs(t, WriteMapDump(&sb, state.NewGame()), ErrNoGrid)

	_, err := DumpMapToFile(state.NewGame())
	assert.ErrorIs(t, err, ErrNoGrid)
}

func TestDumpMapToFile(t *testing.T) {
	t.Chdir(t.TempDir())

	path, err := DumpMapToFile(corridorGame(t))
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "=== MAP DUMP DEBUG"))
}

func TestCellSymbol(t *testing.T) {
	assert.Equal(t, '#', CellSymbol(world.Wall))
	assert.Equal(t, 'W', CellSymbol(world.Waypoint))
	assert.Equal(t, '?', CellSymbol(world.CellType(99)))
}
