package state

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/placement"
)

func makeGameWithGrid(t *testing.T) *Game {
	t.Helper()
	g := NewGame()
	g.Grid = world.NewGrid(5, 3)
	for x := 1; x <= 3; x++ {
		g.Grid.SetType(world.Pos(x, 1), world.Path)
	}
	g.Grid.SetType(world.Pos(1, 1), world.Start)
	g.Grid.SetType(world.Pos(3, 1), world.Exit)
	exit := world.Pos(3, 1)
	treasure := world.Pos(2, 1)
	g.Layout = &placement.Layout{
		Start:    world.Pos(1, 1),
		Exit:     &exit,
		Treasure: &treasure,
		Route:    world.Route{world.Pos(1, 1), treasure, exit},
	}
	g.ResetProgress()
	return g
}

func TestNewGame_Idle(t *testing.T) {
	g := NewGame()
	assert.Equal(t, PhaseIdle, g.Phase)
	assert.False(t, g.Furnished())
	assert.Nil(t, g.Route())
	assert.Equal(t, world.Pos(1, 1), g.Start())
	assert.Equal(t, DefaultAdvisoryDuration, g.AdvisoryDuration)
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame()
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		g.AddMessage(m)
	}
	assert.Equal(t, []string{"c", "d", "e", "f", "g"}, g.Messages)

	g.ClearMessages()
	assert.Empty(t, g.Messages)
}

func TestAdvisory_Expires(t *testing.T) {
	g := NewGame()
	now := time.Unix(1000, 0)

	_, ok := g.Advisory(now)
	assert.False(t, ok)

	g.SetAdvisory("first", now)
	msg, ok := g.Advisory(now.Add(time.Second))
	assert.True(t, ok)
	assert.Equal(t, "first", msg)

	_, ok = g.Advisory(now.Add(DefaultAdvisoryDuration))
	assert.False(t, ok, "expired exactly at the deadline")

	g.SetAdvisory("second", now.Add(2*time.Second))
	msg, _ = g.Advisory(now.Add(5 * time.Second))
	assert.Equal(t, "second", msg, "a newer advisory replaces and extends")

	g.ClearAdvisory()
	_, ok = g.Advisory(now.Add(5 * time.Second))
	assert.False(t, ok)
}

func TestResetProgress(t *testing.T) {
	g := makeGameWithGrid(t)
	g.Player = world.Pos(3, 1)
	g.Steps = 7
	g.WaypointsCrossed = 2
	g.HasTreasure = true
	g.Won = true
	g.Phase = PhaseWon
	g.LastHint = "HINT_GOOD_1"
	g.MarkVisited(world.Pos(2, 1))
	g.AddMessage("done")
	g.SetAdvisory("won", time.Now())

	g.ResetProgress()

	assert.Equal(t, world.Pos(1, 1), g.Player)
	assert.Zero(t, g.Steps)
	assert.Zero(t, g.WaypointsCrossed)
	assert.False(t, g.HasTreasure)
	assert.False(t, g.Won)
	assert.Equal(t, PhasePlaying, g.Phase)
	assert.Empty(t, g.LastHint)
	assert.Empty(t, g.Messages)
	assert.True(t, g.IsVisited(world.Pos(1, 1)))
	assert.False(t, g.IsVisited(world.Pos(2, 1)))
	assert.Equal(t, 1, g.Visited.Size())
	_, ok := g.Advisory(time.Now())
	assert.False(t, ok)
}

func TestResetProgress_NoGridStaysIdle(t *testing.T) {
	g := NewGame()
	g.ResetProgress()
	assert.Equal(t, PhaseIdle, g.Phase)
	assert.Zero(t, g.Visited.Size())
}

func TestResetProgress_UnfurnishedStaysIdle(t *testing.T) {
	g := NewGame()
	g.Grid = world.NewGrid(5, 3)
	for x := 1; x <= 3; x++ {
		g.Grid.SetType(world.Pos(x, 1), world.Path)
	}
	g.Layout = &placement.Layout{Start: world.Pos(1, 1)}

	g.ResetProgress()

	assert.Equal(t, PhaseIdle, g.Phase)
	assert.False(t, g.Phase.AcceptsMoves())
	assert.Equal(t, world.Pos(1, 1), g.Player)
}

func TestSnapshot(t *testing.T) {
	g := makeGameWithGrid(t)
	g.MarkVisited(world.Pos(2, 1))
	now := time.Unix(50, 0)
	g.SetAdvisory("hello", now)

	s := g.Snapshot(now)

	assert.Equal(t, 5, s.Width)
	assert.Equal(t, 3, s.Height)
	require.Len(t, s.Cells, 3)
	require.Len(t, s.Cells[0], 5)
	assert.Equal(t, "start", s.Cells[1][1])
	assert.Equal(t, "path", s.Cells[1][2])
	assert.Equal(t, "exit", s.Cells[1][3])
	assert.Equal(t, "wall", s.Cells[0][0])
	assert.Equal(t, []world.Position{world.Pos(1, 1), world.Pos(2, 1)}, s.Visited)
	assert.Equal(t, "hello", s.Advisory)
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.True(t, s.Furnished)
	assert.Equal(t, g.Route(), s.Route)

	s.Route[0] = world.Pos(9, 9)
	assert.Equal(t, world.Pos(1, 1), g.Route()[0], "snapshot route is a copy")

	assert.Empty(t, g.Snapshot(now.Add(time.Hour)).Advisory)
}

func TestSnapshot_JSON(t *testing.T) {
	g := makeGameWithGrid(t)
	b, err := json.Marshal(g.Snapshot(time.Now()))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "playing", decoded["phase"])
	assert.Equal(t, map[string]any{"x": float64(1), "y": float64(1)}, decoded["player"])

	var back Snapshot
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, PhasePlaying, back.Phase)
}

func TestPhase(t *testing.T) {
	tests := []struct {
		phase Phase
		name  string
		moves bool
	}{
		{PhaseIdle, "idle", false},
		{PhasePlaying, "playing", true},
		{PhaseTreasureOffered, "treasure-offered", false},
		{PhaseTreasureHeld, "treasure-held", true},
		{PhaseWon, "won", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.phase.String())
			assert.Equal(t, tt.moves, tt.phase.AcceptsMoves())
		})
	}
	assert.Equal(t, "Phase(42)", Phase(42).String())

	var p Phase
	assert.Error(t, p.UnmarshalText([]byte("flying")))
}
