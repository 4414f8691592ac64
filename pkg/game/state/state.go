// Package state holds a single maze session: the carved grid, its placed
// content and the player's progress through it.
package state

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/placement"
)

// DefaultAdvisoryDuration is how long a transient advisory stays visible
const DefaultAdvisoryDuration = 4 * time.Second

const maxMessages = 5

// Game represents one maze session
type Game struct {
	Grid   *world.Grid
	Layout *placement.Layout

	// PlaceErr is the error placement returned for the current grid, if any
	PlaceErr error

	Player           world.Position
	Steps            int
	WaypointsCrossed int
	HasTreasure      bool
	Won              bool
	Phase            Phase

	Visited mapset.Set[world.Position]

	// LastHint is the hint key surfaced by the last accepted move
	LastHint string

	Messages []string

	ShowRoute bool

	// ReofferDeclinedTreasure re-offers a declined treasure when the player
	// steps back onto it
	ReofferDeclinedTreasure bool

	AdvisoryDuration time.Duration
	advisory         string
	advisoryUntil    time.Time

	Seed int64

	// QuitRequested is set when the player asks to leave
	QuitRequested bool
}

// NewGame creates an idle session with no maze
func NewGame() *Game {
	return &Game{
		Visited:          mapset.New[world.Position](),
		Messages:         make([]string, 0),
		AdvisoryDuration: DefaultAdvisoryDuration,
		Phase:            PhaseIdle,
	}
}

// AddMessage adds a message to the session's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// SetAdvisory shows msg until now plus the advisory duration. A newer
// advisory replaces the current one.
func (g *Game) SetAdvisory(msg string, now time.Time) {
	g.advisory = msg
	g.advisoryUntil = now.Add(g.AdvisoryDuration)
}

// Advisory returns the advisory text if it is still showing at now
func (g *Game) Advisory(now time.Time) (string, bool) {
	if g.advisory == "" || !now.Before(g.advisoryUntil) {
		return "", false
	}
	return g.advisory, true
}

// ClearAdvisory hides the current advisory
func (g *Game) ClearAdvisory() {
	g.advisory = ""
	g.advisoryUntil = time.Time{}
}

// Furnished reports whether the maze has a treasure and an exit
func (g *Game) Furnished() bool {
	return g.Grid != nil && g.Layout.Furnished()
}

// Route returns the optimal start→treasure→exit route, or nil
func (g *Game) Route() world.Route {
	if g.Layout == nil {
		return nil
	}
	return g.Layout.Route
}

// Start returns where the player begins
func (g *Game) Start() world.Position {
	if g.Layout != nil {
		return g.Layout.Start
	}
	return world.Pos(1, 1)
}

// MarkVisited records p as visited
func (g *Game) MarkVisited(p world.Position) {
	g.Visited.Put(p)
}

// IsVisited reports whether the player has stood on p
func (g *Game) IsVisited(p world.Position) bool {
	return g.Visited.Has(p)
}

// ResetProgress puts the player back on the start with zeroed counters.
// The grid and its content are left untouched. A maze without a treasure
// and an exit stays idle, so no move is accepted on it.
func (g *Game) ResetProgress() {
	g.Player = g.Start()
	g.Steps = 0
	g.WaypointsCrossed = 0
	g.HasTreasure = false
	g.Won = false
	g.LastHint = ""
	g.Visited = mapset.New[world.Position]()
	g.ClearMessages()
	g.ClearAdvisory()

	if g.Grid == nil {
		g.Phase = PhaseIdle
		return
	}
	g.MarkVisited(g.Player)
	if !g.Furnished() {
		g.Phase = PhaseIdle
		return
	}
	g.Phase = PhasePlaying
}
