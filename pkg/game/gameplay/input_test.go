package gameplay

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineinput "mazelott/pkg/engine/input"
	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/devtools"
	"mazelott/pkg/game/hints"
	"mazelott/pkg/game/state"
)

func intent(a engineinput.Action) engineinput.Intent {
	return engineinput.Intent{Action: a}
}

func TestProcessIntent_Moves(t *testing.T) {
	g := makeCorridorGame(t)

	ProcessIntent(g, intent(engineinput.ActionMoveEast))
	assert.Equal(t, world.Pos(2, 1), g.Player)

	ProcessIntent(g, intent(engineinput.ActionMoveNorth))
	assert.Equal(t, world.Pos(2, 1), g.Player, "wall")

	ProcessIntent(g, engineinput.MoveTo(world.Pos(1, 1)))
	assert.Equal(t, world.Pos(1, 1), g.Player)

	ProcessIntent(g, intent(engineinput.ActionMoveSouth))
	assert.Equal(t, world.Pos(1, 2), g.Player)
	assert.Equal(t, 3, g.Steps)
}

func TestProcessIntent_TreasureAnswers(t *testing.T) {
	g := makeCorridorGame(t)
	ProcessIntent(g, intent(engineinput.ActionAccept))
	assert.False(t, g.HasTreasure, "no offer yet")

	walkEast(t, g, 2)
	ProcessIntent(g, intent(engineinput.ActionDecline))
	assert.Equal(t, state.PhasePlaying, g.Phase)
	assert.False(t, g.HasTreasure)

	g = makeCorridorGame(t)
	walkEast(t, g, 2)
	ProcessIntent(g, intent(engineinput.ActionAccept))
	assert.True(t, g.HasTreasure)
}

func TestProcessIntent_MetaActions(t *testing.T) {
	g := makeCorridorGame(t)

	ProcessIntent(g, intent(engineinput.ActionToggleRoute))
	assert.True(t, g.ShowRoute)
	ProcessIntent(g, intent(engineinput.ActionToggleRoute))
	assert.False(t, g.ShowRoute)

	walkEast(t, g, 1)
	ProcessIntent(g, intent(engineinput.ActionReset))
	assert.Zero(t, g.Steps)

	ProcessIntent(g, intent(engineinput.ActionQuit))
	assert.True(t, g.QuitRequested)

	ProcessIntent(g, intent(engineinput.ActionNone))
	n := len(g.Messages)
	ProcessIntent(g, intent(engineinput.Action(99)))
	assert.Len(t, g.Messages, min(n+1, 5))
}

func TestProcessIntent_NewMaze(t *testing.T) {
	g := BuildGame(Options{Width: 9, Height: 9, Seed: 2})
	ProcessIntent(g, intent(engineinput.ActionNewMaze))
	assert.NotEqual(t, int64(2), g.Seed)
	assert.Equal(t, 9, g.Grid.Width())
}

func TestProcessIntent_DumpMap(t *testing.T) {
	t.Chdir(t.TempDir())
	g := makeCorridorGame(t)

	ProcessIntent(g, intent(engineinput.ActionDumpMap))

	_, err := os.Stat("map.txt")
	require.NoError(t, err)
	assert.NotEmpty(t, g.Messages)
}

func TestProcessIntent_DumpMapFailure(t *testing.T) {
	t.Chdir(t.TempDir())
	g := state.NewGame()
	_, want := devtools.DumpMapToFile(g)
	require.Error(t, want)

	ProcessIntent(g, intent(engineinput.ActionDumpMap))

	require.NotEmpty(t, g.Messages)
	assert.Equal(t, hints.Textf(hints.MapDumpFailed, want), g.Messages[len(g.Messages)-1])
}

func TestProcessIntent_MovesIgnoredAfterWin(t *testing.T) {
	g := makeCorridorGame(t)
	walkEast(t, g, 2)
	ProcessIntent(g, intent(engineinput.ActionAccept))
	walkEast(t, g, 4)
	require.True(t, g.Won)

	ProcessIntent(g, intent(engineinput.ActionMoveWest))
	assert.Equal(t, world.Pos(7, 1), g.Player)
}
