// Package gameplay provides core game logic for player movement and the
// maze session lifecycle.
package gameplay

import (
	"errors"
	"time"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/hints"
	"mazelott/pkg/game/placement"
	"mazelott/pkg/game/state"
)

// ErrNoOffer is returned when a treasure answer arrives with no offer pending
var ErrNoOffer = errors.New("no treasure offer pending")

// clock is swapped in tests
var clock = time.Now

// MoveResult describes what a move request did
type MoveResult struct {
	Accepted bool           `json:"accepted"`
	From     world.Position `json:"from"`
	To       world.Position `json:"to"`

	Waypoint        *placement.Waypoint `json:"waypoint,omitempty"`
	TreasureOffered bool                `json:"treasureOffered,omitempty"`
	ReachedExit     bool                `json:"reachedExit,omitempty"`
	Won             bool                `json:"won,omitempty"`
}

// CanEnter reports whether the player may step from its position onto target
func CanEnter(g *state.Game, target world.Position) bool {
	if g.Grid == nil || !g.Phase.AcceptsMoves() {
		return false
	}
	if !g.Grid.InBounds(target) || !g.Player.IsAdjacent(target) {
		return false
	}
	return !g.Grid.Cell(target).IsWall()
}

// AttemptMove steps the player onto target. Requests that are not a single
// orthogonal step onto a non-wall cell, or that arrive while the session is
// not accepting moves, are ignored.
func AttemptMove(g *state.Game, target world.Position) MoveResult {
	result := MoveResult{From: g.Player, To: g.Player}
	if !CanEnter(g, target) {
		return result
	}

	g.Player = target
	g.Steps++
	g.MarkVisited(target)
	g.LastHint = ""
	result.Accepted = true
	result.To = target

	switch g.Grid.TypeAt(target) {
	case world.Waypoint:
		if w := g.Layout.UnusedWaypointAt(target); w != nil {
			w.Used = true
			g.WaypointsCrossed++
			g.LastHint = w.Hint
			announce(g, w.Hint)
			result.Waypoint = w
		}

	case world.TreasureHidden:
		if !g.HasTreasure {
			g.Grid.SetType(target, world.TreasureFound)
			offerTreasure(g)
			result.TreasureOffered = true
		}

	case world.TreasureFound:
		if g.ReofferDeclinedTreasure && !g.HasTreasure {
			offerTreasure(g)
			result.TreasureOffered = true
		}

	case world.Exit:
		result.ReachedExit = true
		if g.HasTreasure {
			win(g)
			result.Won = true
		} else {
			announce(g, hints.ExitWithoutLoot)
		}
	}

	return result
}

// Move steps the player one cell in dir
func Move(g *state.Game, dir world.Direction) MoveResult {
	return AttemptMove(g, g.Player.Step(dir))
}

// ConfirmTreasure answers a pending treasure offer
func ConfirmTreasure(g *state.Game, accept bool) error {
	if g.Phase != state.PhaseTreasureOffered {
		return ErrNoOffer
	}
	if accept {
		g.HasTreasure = true
		g.Phase = state.PhaseTreasureHeld
		announce(g, hints.TreasureTaken)
		return nil
	}
	g.Phase = state.PhasePlaying
	announce(g, hints.TreasureDeclined)
	return nil
}

func offerTreasure(g *state.Game) {
	g.Phase = state.PhaseTreasureOffered
	announce(g, hints.TreasureOffer)
}

func win(g *state.Game) {
	g.Won = true
	g.Phase = state.PhaseWon
	announce(g, hints.MissionComplete)
	g.AddMessage(hints.Textf(hints.MissionSummary, g.Steps, g.WaypointsCrossed))
}

// announce logs the translated message and shows it as the advisory
func announce(g *state.Game, key string) {
	text := hints.Text(key)
	g.AddMessage(text)
	g.SetAdvisory(text, clock())
}
