package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawColoredText draws a line of UI text with its top-left corner at (x, y)
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	if e.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.face, op)
}

// drawCenteredText draws str centered in the box starting at (x, y)
func (e *EbitenRenderer) drawCenteredText(screen *ebiten.Image, str string, x, y, w, h int, col color.Color) {
	if e.face == nil {
		return
	}
	tw, th := text.Measure(str, e.face, 0)
	e.drawColoredText(screen, str, x+int((float64(w)-tw)/2), y+int((float64(h)-th)/2), col)
}
