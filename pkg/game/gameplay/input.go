package gameplay

import (
	engineinput "mazelott/pkg/engine/input"
	"mazelott/pkg/game/devtools"
	"mazelott/pkg/game/hints"
	"mazelott/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if dir, ok := engineinput.DirectionFor(intent.Action); ok {
		Move(g, dir)
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionMoveTo:
		AttemptMove(g, intent.Target)
		return

	case engineinput.ActionAccept, engineinput.ActionDecline:
		// answers outside an offer are ignored
		_ = ConfirmTreasure(g, intent.Action == engineinput.ActionAccept)
		return

	case engineinput.ActionToggleRoute:
		g.ShowRoute = !g.ShowRoute
		return

	case engineinput.ActionReset:
		Reset(g)
		return

	case engineinput.ActionNewMaze:
		_ = Regenerate(g)
		return

	case engineinput.ActionDumpMap:
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			g.AddMessage(hints.Textf(hints.MapDumpFailed, err))
		} else {
			g.AddMessage(hints.Textf(hints.MapDumped, path))
		}
		return

	case engineinput.ActionQuit:
		g.QuitRequested = true
		return
	}

	g.AddMessage(hints.Text(hints.UnknownCommand))
}
