package gameplay

import (
	"errors"
	"math/rand"
	"time"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/generator"
	"mazelott/pkg/game/hints"
	"mazelott/pkg/game/placement"
	"mazelott/pkg/game/state"
)

// Options configures a new session
type Options struct {
	Width, Height int
	// Seed drives carving and placement; 0 picks a time-based seed
	Seed int64

	ReofferDeclinedTreasure bool
	AdvisoryDuration        time.Duration
}

// BuildGame creates a session and carves its first maze. A maze that could
// not be fully furnished is still returned; check Game.Furnished or PlaceErr.
func BuildGame(opts Options) *state.Game {
	g := state.NewGame()
	g.ReofferDeclinedTreasure = opts.ReofferDeclinedTreasure
	if opts.AdvisoryDuration > 0 {
		g.AdvisoryDuration = opts.AdvisoryDuration
	}
	_ = NewMaze(g, opts.Width, opts.Height, opts.Seed)
	return g
}

// NewMaze carves and furnishes a fresh maze for g and puts the player on its
// start. Even sizes are bumped to the next odd value.
func NewMaze(g *state.Game, width, height int, seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := generator.NewBacktracker(rng).Generate(width, height)
	layout, err := placement.Place(grid, generator.StartRoom, rng)

	g.Seed = seed
	g.Grid = grid
	g.Layout = layout
	g.PlaceErr = err
	g.ResetProgress()

	if IsConfigurationError(err) {
		announce(g, hints.MazeTooSmall)
	} else {
		announce(g, hints.MazeWelcome)
	}
	return err
}

// IsConfigurationError reports whether err means the maze is too small to
// hold a start, a treasure and an exit. A larger size is the only fix.
func IsConfigurationError(err error) bool {
	return errors.Is(err, placement.ErrTooFewPathCells) || errors.Is(err, placement.ErrNoExit)
}

// Regenerate carves a fresh maze of the same size with a new seed
func Regenerate(g *state.Game) error {
	width, height := generator.MinDimension, generator.MinDimension
	if g.Grid != nil {
		width, height = g.Grid.Width(), g.Grid.Height()
	}
	return NewMaze(g, width, height, 0)
}

// Reset restarts the current maze: the topology and placed content stay,
// the treasure is hidden again and every waypoint can trigger once more.
func Reset(g *state.Game) {
	if g.Grid == nil {
		return
	}
	for _, p := range g.Grid.CellsOfType(world.TreasureFound) {
		g.Grid.SetType(p, world.TreasureHidden)
	}
	if g.Layout != nil {
		g.Layout.ResetWaypoints()
	}
	g.ResetProgress()
	announce(g, hints.MazeReset)
}
