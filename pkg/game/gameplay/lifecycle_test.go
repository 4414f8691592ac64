package gameplay

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/placement"
	"mazelott/pkg/game/state"
)

func TestBuildGame(t *testing.T) {
	g := BuildGame(Options{Width: 7, Height: 7, Seed: 3, AdvisoryDuration: time.Second})

	require.NoError(t, g.PlaceErr)
	assert.Equal(t, int64(3), g.Seed)
	assert.Equal(t, 7, g.Grid.Width())
	assert.Equal(t, 7, g.Grid.Height())
	assert.Equal(t, world.Start, g.Grid.TypeAt(world.Pos(1, 1)))
	assert.Equal(t, 1, g.Grid.CountType(world.Exit))
	assert.Equal(t, 1, g.Grid.CountType(world.TreasureHidden))
	assert.GreaterOrEqual(t, g.Route().Len(), 2)
	assert.True(t, g.Furnished())
	assert.Equal(t, state.PhasePlaying, g.Phase)
	assert.Equal(t, world.Pos(1, 1), g.Player)
	assert.Equal(t, time.Second, g.AdvisoryDuration)
}

func TestBuildGame_EvenSizesBumped(t *testing.T) {
	g := BuildGame(Options{Width: 10, Height: 8, Seed: 1})
	assert.Equal(t, 11, g.Grid.Width())
	assert.Equal(t, 9, g.Grid.Height())
}

func TestBuildGame_SameSeedSameMaze(t *testing.T) {
	a := BuildGame(Options{Width: 15, Height: 15, Seed: 77})
	b := BuildGame(Options{Width: 15, Height: 15, Seed: 77})
	assert.Equal(t, a.Grid.String(), b.Grid.String())
	assert.Equal(t, a.Route(), b.Route())
}

func TestNewMaze_TooSmall(t *testing.T) {
	g := state.NewGame()
	err := NewMaze(g, 3, 3, 1)

	assert.ErrorIs(t, err, placement.ErrTooFewPathCells)
	assert.ErrorIs(t, g.PlaceErr, placement.ErrTooFewPathCells)
	assert.False(t, g.Furnished())
	assert.NotNil(t, g.Grid, "the carved grid is kept")
	assert.NotEmpty(t, g.Messages)
}

func TestBuildGame_TooSmallRejectsMoves(t *testing.T) {
	g := BuildGame(Options{Width: 5, Height: 3, Seed: 1})

	require.True(t, IsConfigurationError(g.PlaceErr))
	assert.False(t, g.Furnished())
	assert.Equal(t, state.PhaseIdle, g.Phase)

	for _, dir := range world.AllDirections() {
		result := Move(g, dir)
		assert.False(t, result.Accepted, dir.String())
	}
	assert.False(t, AttemptMove(g, world.Pos(2, 1)).Accepted)
	assert.Zero(t, g.Steps)
	assert.Equal(t, world.Pos(1, 1), g.Player)
}

func TestNewMaze_TimeSeedWhenZero(t *testing.T) {
	g := state.NewGame()
	require.NoError(t, NewMaze(g, 9, 9, 0))
	assert.NotZero(t, g.Seed)
}

func TestReset_KeepsTopology(t *testing.T) {
	g := makeCorridorGame(t)
	before := g.Grid.String()

	walkEast(t, g, 2)
	require.NoError(t, ConfirmTreasure(g, true))
	g.ShowRoute = true

	Reset(g)

	assert.Equal(t, before, g.Grid.String())
	assert.Equal(t, world.TreasureHidden, g.Grid.TypeAt(world.Pos(3, 1)))
	assert.Equal(t, world.Pos(1, 1), g.Player)
	assert.Zero(t, g.Steps)
	assert.Zero(t, g.WaypointsCrossed)
	assert.False(t, g.HasTreasure)
	assert.Equal(t, state.PhasePlaying, g.Phase)
	assert.True(t, g.ShowRoute, "display preferences survive a restart")
	for _, w := range g.Layout.Waypoints {
		assert.False(t, w.Used)
	}

	// waypoints and treasure trigger again
	walkEast(t, g, 1)
	assert.Equal(t, 1, g.WaypointsCrossed)
	assert.True(t, Move(g, world.East).TreasureOffered)
}

func TestReset_AfterWin(t *testing.T) {
	g := makeCorridorGame(t)
	walkEast(t, g, 2)
	require.NoError(t, ConfirmTreasure(g, true))
	walkEast(t, g, 4)
	require.True(t, g.Won)

	Reset(g)
	assert.False(t, g.Won)
	assert.True(t, Move(g, world.East).Accepted)
}

func TestRegenerate(t *testing.T) {
	g := BuildGame(Options{Width: 11, Height: 9, Seed: 5})
	walkSomewhere(g)

	require.NoError(t, Regenerate(g))
	assert.Equal(t, 11, g.Grid.Width())
	assert.Equal(t, 9, g.Grid.Height())
	assert.NotEqual(t, int64(5), g.Seed)
	assert.Zero(t, g.Steps)

	idle := state.NewGame()
	assert.ErrorIs(t, Regenerate(idle), placement.ErrTooFewPathCells)
}

// walkSomewhere takes the first open step from the start
func walkSomewhere(g *state.Game) {
	for _, dir := range world.AllDirections() {
		if Move(g, dir).Accepted {
			return
		}
	}
}

func TestIsConfigurationError(t *testing.T) {
	assert.True(t, IsConfigurationError(placement.ErrTooFewPathCells))
	assert.True(t, IsConfigurationError(fmt.Errorf("place: %w", placement.ErrNoExit)))
	assert.False(t, IsConfigurationError(placement.ErrNoRoute))
	assert.False(t, IsConfigurationError(nil))
}
