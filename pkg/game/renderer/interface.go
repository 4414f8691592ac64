package renderer

import (
	"mazelott/pkg/engine/input"
	"mazelott/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StylePath
	StyleVisited
	StyleRoute
	StylePlayer
	StyleStart
	StyleExit
	StyleTreasure
	StyleTreasureFound
	StyleWaypoint
	StyleAdvisory
	StyleSubtle
	StyleAction
)

// Renderer defines the interface for game rendering backends.
// Renderers only read snapshots and turn device input into intents.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete maze frame
	RenderFrame(s state.Snapshot)

	// RenderOverworld renders the kingdom map
	RenderOverworld(v OverworldView)

	// GetInput blocks until the player does something
	GetInput() input.Intent

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(s state.Snapshot) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}

// RenderOverworld renders the kingdom map
func RenderOverworld(v OverworldView) {
	if Current != nil {
		Current.RenderOverworld(v)
	}
}

// GetInput gets user input from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionQuit}
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
