package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/hints"
	"mazelott/pkg/game/overworld"
	"mazelott/pkg/game/renderer"
	"mazelott/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.frameMutex.RLock()
	f := e.current
	e.frameMutex.RUnlock()

	if !f.valid {
		e.drawCenteredText(screen, "Maze'Lott", 0, 0, screen.Bounds().Dx(), screen.Bounds().Dy(), colorText)
		e.drawMessages(screen)
		return
	}

	if f.overworld {
		e.drawOverworld(screen, f.kingdom)
	} else {
		e.drawMaze(screen, f.maze)
	}
	e.drawMessages(screen)
}

// drawMaze draws the header, the map viewport and the status panel
func (e *EbitenRenderer) drawMaze(screen *ebiten.Image, s state.Snapshot) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	e.drawColoredText(screen, fmt.Sprintf("Maze'Lott %dx%d", s.Width, s.Height), frameBorder, frameBorder, colorAction)

	mapX, mapY := frameBorder, frameBorder+headerHeight
	mapW := max(sw-panelWidth-frameBorder*3, e.tileSize)
	mapH := max(sh-headerHeight-frameBorder*2, e.tileSize)
	vector.DrawFilledRect(screen, float32(mapX), float32(mapY), float32(mapW), float32(mapH), colorMapBackground, false)

	if s.Width > 0 {
		e.drawGrid(screen, s, mapX, mapY, mapW/e.tileSize, mapH/e.tileSize)
	}
	e.drawStatusPanel(screen, s, sw-panelWidth-frameBorder, mapY)
}

// drawGrid draws the cells inside the rows×cols window around the player
// and records the geometry for mouse picking
func (e *EbitenRenderer) drawGrid(screen *ebiten.Image, s state.Snapshot, originX, originY, cols, rows int) {
	visited, route := renderer.Lookups(s)
	startX, startY := renderer.Viewport(s.Width, s.Height, rows, cols, s.Player)

	e.geometryMutex.Lock()
	e.geometry = mapGeometry{
		originX: originX, originY: originY,
		startX: startX, startY: startY,
		cols: min(cols, s.Width), rows: min(rows, s.Height),
	}
	e.geometryMutex.Unlock()

	ts := e.tileSize
	for y := startY; y < min(startY+rows, s.Height); y++ {
		for x := startX; x < min(startX+cols, s.Width); x++ {
			style := renderer.CellStyle(s, world.Pos(x, y), visited, route)
			px := originX + (x-startX)*ts
			py := originY + (y-startY)*ts
			vector.DrawFilledRect(screen, float32(px+1), float32(py+1), float32(ts-2), float32(ts-2), colorFor(style), false)
			if style != renderer.StylePath && style != renderer.StyleWall && style != renderer.StyleVisited {
				e.drawCenteredText(screen, renderer.Icon(style), px, py, ts, ts, colorBackground)
			}
		}
	}
}

// drawStatusPanel draws counters, the last hint and the advisory
func (e *EbitenRenderer) drawStatusPanel(screen *ebiten.Image, s state.Snapshot, x, y int) {
	h := screen.Bounds().Dy() - y - frameBorder
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(panelWidth), float32(h), colorPanel, false)

	ty := y + frameBorder
	for _, line := range renderer.StatusLines(s) {
		e.drawColoredText(screen, line, x+frameBorder, ty, colorText)
		ty += lineHeight
	}
	ty += lineHeight
	if s.LastHint != "" {
		e.drawColoredText(screen, s.LastHint, x+frameBorder, ty, colorWaypoint)
		ty += lineHeight
	}
	if s.Advisory != "" && (s.AdvisoryUntil == nil || time.Now().Before(*s.AdvisoryUntil)) {
		e.drawColoredText(screen, ">> "+s.Advisory+" <<", x+frameBorder, ty, colorAdvisory)
		ty += lineHeight
	}
	ty += lineHeight
	for _, msg := range s.Messages {
		e.drawColoredText(screen, msg, x+frameBorder, ty, colorSubtle)
		ty += lineHeight
	}
	e.drawColoredText(screen, hints.Text(hints.LabelControls), x+frameBorder, y+h-lineHeight-frameBorder, colorSubtle)
}

// drawOverworld draws the kingdom markers and, once open, the maze entrance
func (e *EbitenRenderer) drawOverworld(screen *ebiten.Image, v renderer.OverworldView) {
	e.drawColoredText(screen, fmt.Sprintf("%s: %d/%d", overworld.Home, v.Visited, len(v.Markers)), frameBorder, frameBorder, colorAction)

	ox, oy := frameBorder, frameBorder+headerHeight
	for i, m := range v.Markers {
		col := colorWaypoint
		if m.Visited {
			col = colorTreasureFound
		}
		cx, cy := float32(ox+m.X), float32(oy+m.Y)
		vector.DrawFilledCircle(screen, cx, cy, markerRadius, col, true)
		e.drawCenteredText(screen, fmt.Sprint(i+1), ox+m.X-markerRadius, oy+m.Y-markerRadius, markerRadius*2, markerRadius*2, colorBackground)
		e.drawColoredText(screen, m.Name, ox+m.X+markerRadius+4, oy+m.Y-lineHeight/2, colorText)
	}

	if v.EntranceOpen {
		ex, ey := ox+overworld.Entrance.X, oy+overworld.Entrance.Y
		vector.DrawFilledRect(screen, float32(ex-entranceSize/2), float32(ey-entranceSize/2), entranceSize, entranceSize, colorExit, false)
		e.drawCenteredText(screen, renderer.IconEntrance, ex-entranceSize/2, ey-entranceSize/2, entranceSize, entranceSize, colorText)
		e.drawColoredText(screen, overworld.Entrance.Name+" [enter]", ex+entranceSize, ey-lineHeight/2, colorAction)
	}

	ty := screen.Bounds().Dy() - frameBorder - lineHeight*(len(v.Messages)+1)
	for _, msg := range v.Messages {
		e.drawColoredText(screen, msg, frameBorder, ty, colorSubtle)
		ty += lineHeight
	}
}

// drawMessages draws lines pushed through ShowMessage in the bottom-left corner
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image) {
	e.messagesMutex.RLock()
	msgs := append([]string(nil), e.messages...)
	e.messagesMutex.RUnlock()

	y := screen.Bounds().Dy() - frameBorder - lineHeight*len(msgs)
	for _, msg := range msgs {
		e.drawColoredText(screen, msg, frameBorder*2, y, colorText)
		y += lineHeight
	}
}
