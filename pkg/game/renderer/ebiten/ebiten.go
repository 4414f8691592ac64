package ebiten

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	engineinput "mazelott/pkg/engine/input"
	"mazelott/pkg/game/renderer"
	"mazelott/pkg/game/state"
)

const maxMessages = 8

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		tileSize:       defaultTileSize,
		inputChan:      make(chan engineinput.Intent, 16),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init sets up the window and the UI font
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Maze'Lott")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	e.face = text.NewGoXFace(basicfont.Face7x13)
}

// Clear is a no-op: every Draw starts from a filled background
func (e *EbitenRenderer) Clear() {}

// RenderFrame hands a maze snapshot to the draw loop
func (e *EbitenRenderer) RenderFrame(s state.Snapshot) {
	e.frameMutex.Lock()
	e.current = frame{valid: true, maze: s}
	e.frameMutex.Unlock()
}

// RenderOverworld hands the kingdom map to the draw loop
func (e *EbitenRenderer) RenderOverworld(v renderer.OverworldView) {
	e.frameMutex.Lock()
	e.current = frame{valid: true, overworld: true, kingdom: v}
	e.frameMutex.Unlock()
}

// GetInput blocks until the window produces an intent
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	return <-e.inputChan
}

// ShowMessage adds a line to the on-screen message log
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.messagesMutex.Lock()
	defer e.messagesMutex.Unlock()
	e.messages = append(e.messages, msg)
	if len(e.messages) > maxMessages {
		e.messages = e.messages[len(e.messages)-maxMessages:]
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Stop ends the Ebiten loop on the next Update
func (e *EbitenRenderer) Stop() {
	e.frameMutex.Lock()
	e.quit = true
	e.frameMutex.Unlock()
}

// Run starts the Ebiten game loop. It must be called from the main goroutine
// and returns when the window closes or Stop is called.
func (e *EbitenRenderer) Run() error {
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		log.Printf("[GUI] [ERROR] %v", err)
	}
	return err
}
