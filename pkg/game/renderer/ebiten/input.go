package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazelott/pkg/engine/input"
	"mazelott/pkg/game/overworld"
	"mazelott/pkg/game/renderer"
)

// repeatKeys are movement keys that repeat while held, with their binding codes
var repeatKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
}

// pressKeys fire once per press
var pressKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyY, "y"},
	{ebiten.KeyO, "o"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyNumpadEnter, "enter"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyF5, "f5"},
	{ebiten.KeyM, "m"},
	{ebiten.KeyF9, "f9"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.Key1, "1"},
	{ebiten.Key2, "2"},
	{ebiten.Key3, "3"},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("[GUI] [INFO] Main window opened (%dx%d)", w, h)
	}

	e.frameMutex.RLock()
	quit := e.quit
	e.frameMutex.RUnlock()
	if quit {
		return ebiten.Termination
	}

	e.handleZoom()

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	} else if intent := e.checkMouse(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	}
	return nil
}

// send forwards an intent to the game loop, dropping it when the loop is busy
func (e *EbitenRenderer) send(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
	}
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.tileSize = min(e.tileSize+tileSizeStep, maxTileSize)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.tileSize = max(e.tileSize-tileSizeStep, minTileSize)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		e.tileSize = defaultTileSize
	}
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string) bool {
	now := time.Now().UnixMilli()
	info, exists := e.keyRepeatState[code]

	if !pressed {
		delete(e.keyRepeatState, code)
		return false
	}
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-info.firstPressed >= keyRepeatInitialDelay && now-info.lastRepeat >= keyRepeatInterval {
		info.lastRepeat = now
		e.keyRepeatState[code] = info
		return true
	}
	return false
}

// checkInput maps keyboard state to an intent through the shared bindings
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	// every key's repeat state is updated, the first one firing wins
	fired := ""
	for _, k := range repeatKeys {
		if e.shouldRepeatKey(ebiten.IsKeyPressed(k.key), k.code) && fired == "" {
			fired = k.code
		}
	}
	if fired != "" {
		return keyIntent(fired)
	}
	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			return keyIntent(k.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

func keyIntent(code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// checkMouse turns a left click into a move onto the clicked cell, or a
// marker visit on the kingdom map
func (e *EbitenRenderer) checkMouse() engineinput.Intent {
	none := engineinput.Intent{Action: engineinput.ActionNone}
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return none
	}
	x, y := ebiten.CursorPosition()

	e.frameMutex.RLock()
	f := e.current
	e.frameMutex.RUnlock()
	if !f.valid {
		return none
	}

	if f.overworld {
		return e.overworldClick(f, x, y)
	}

	e.geometryMutex.RLock()
	geo := e.geometry
	e.geometryMutex.RUnlock()

	p, ok := renderer.CellAt(x, y, geo.originX, geo.originY, e.tileSize, geo.startX, geo.startY)
	if !ok || !geo.visibleCell(p) {
		return none
	}
	return engineinput.MoveTo(p)
}

func (e *EbitenRenderer) overworldClick(f frame, x, y int) engineinput.Intent {
	mx, my := x-frameBorder, y-frameBorder-headerHeight
	if f.kingdom.EntranceOpen {
		dx, dy := mx-overworld.Entrance.X, my-overworld.Entrance.Y
		if dx*dx+dy*dy <= entranceSize*entranceSize {
			return engineinput.Intent{Action: engineinput.ActionAccept}
		}
	}
	m := overworld.Map{}
	for i := range f.kingdom.Markers {
		m.Markers = append(m.Markers, &f.kingdom.Markers[i])
	}
	if i := m.MarkerNear(mx, my, markerRadius); i >= 0 {
		return engineinput.Intent{Action: engineinput.ActionSelect, Index: i}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}
