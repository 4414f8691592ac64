package gameplay

import (
	engineinput "mazelott/pkg/engine/input"
	"mazelott/pkg/game/hints"
	"mazelott/pkg/game/overworld"
)

// Kingdom is the overworld run that precedes the maze
type Kingdom struct {
	Map      *overworld.Map
	Messages []string
	Quit     bool
}

// ProcessOverworldIntent handles an intent on the kingdom map. Select visits
// a marker, Accept goes through the entrance once every marker was visited.
func ProcessOverworldIntent(k *Kingdom, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionSelect:
		msg, ok := k.Map.Visit(intent.Index)
		if !ok {
			return
		}
		k.Messages = append(k.Messages, msg)
		if k.Map.EntranceOpen() {
			k.Messages = append(k.Messages, hints.Text(hints.EntranceOpen))
		}
	case engineinput.ActionAccept:
		k.Map.Enter()
	case engineinput.ActionQuit:
		k.Quit = true
	}
}

// Done reports whether the kingdom phase is over, by entering or quitting
func (k *Kingdom) Done() bool {
	return k.Quit || k.Map.Entered()
}
