package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "mazelott/pkg/engine/input"
	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/renderer"
	"mazelott/pkg/game/state"
)

// frame is what the game loop last asked to draw
type frame struct {
	valid     bool
	overworld bool
	maze      state.Snapshot
	kingdom   renderer.OverworldView
}

// keyRepeatInfo tracks the repeat state for a key
type keyRepeatInfo struct {
	firstPressed int64 // milliseconds
	lastRepeat   int64 // milliseconds
}

// mapGeometry is where the map was last drawn, for mouse picking
type mapGeometry struct {
	originX, originY int
	startX, startY   int
	cols, rows       int
}

// EbitenRenderer is the Ebiten-based graphical renderer. The game loop runs
// on its own goroutine: it pushes frames through RenderFrame/RenderOverworld
// and blocks in GetInput, while Ebiten drives Update/Draw on the main thread.
type EbitenRenderer struct {
	tileSize int

	face *text.GoXFace

	current    frame
	frameMutex sync.RWMutex

	geometry      mapGeometry
	geometryMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	keyRepeatState map[string]keyRepeatInfo

	messages      []string
	messagesMutex sync.RWMutex

	windowOpenedLogged bool
	quit               bool
}

// visibleCell reports whether p falls inside the last drawn map window
func (g mapGeometry) visibleCell(p world.Position) bool {
	return p.X >= g.startX && p.X < g.startX+g.cols && p.Y >= g.startY && p.Y < g.startY+g.rows
}
