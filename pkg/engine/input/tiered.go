package input

import (
	"sort"
	"time"

	"mazelott/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
	DeviceNetwork
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast
	ActionMoveTo // Step onto Intent.Target (mouse click, network)

	// Treasure offer
	ActionAccept
	ActionDecline

	// Meta / UI
	ActionToggleRoute
	ActionReset   // Restart the current maze
	ActionNewMaze // Carve a fresh maze
	ActionDumpMap
	ActionQuit

	ActionSelect // Pick the numbered entry Intent.Index (overworld markers)
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
	Target world.Position // only meaningful for ActionMoveTo
	Index  int            // only meaningful for ActionSelect
}

// MoveTo returns an intent to step onto p
func MoveTo(p world.Position) Intent {
	return Intent{Action: ActionMoveTo, Target: p}
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "enter").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten and the terminal reader already deliver one event per key press, so
// this only drops the timestamp.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"north":       ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"south":       ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"h":           ActionMoveWest,
	"west":        ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,
	"l":           ActionMoveEast,
	"east":        ActionMoveEast,

	// Treasure offer (English and French answers)
	"y":     ActionAccept,
	"o":     ActionAccept,
	"enter": ActionAccept,
	"n":     ActionDecline,

	"p":  ActionToggleRoute,
	"r":  ActionReset,
	"f5": ActionReset,
	"m":  ActionNewMaze,
	"f9": ActionDumpMap,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	if len(ev.Code) == 1 && ev.Code[0] >= '1' && ev.Code[0] <= '9' {
		return Intent{Action: ActionSelect, Index: int(ev.Code[0] - '1')}
	}
	return Intent{Action: ActionNone}
}

// DirectionFor returns the direction a movement action points to
func DirectionFor(a Action) (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveEast:
		return world.East, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	default:
		return 0, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionMoveTo:
		return "Move To"
	case ActionAccept:
		return "Take Treasure"
	case ActionDecline:
		return "Leave Treasure"
	case ActionToggleRoute:
		return "Toggle Route"
	case ActionReset:
		return "Restart Maze"
	case ActionNewMaze:
		return "New Maze"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	case ActionSelect:
		return "Select"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
