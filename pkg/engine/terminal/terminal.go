// Package terminal reports the size of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// sizeOf is swapped in tests
var sizeOf = term.GetSize

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := sizeOf(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Fits reports whether a grid of cols×rows single-width glyphs fits the
// terminal once reserved columns and rows are taken off. Larger mazes are
// still playable, the renderer scrolls around the player.
func Fits(cols, rows, reservedCols, reservedRows int) bool {
	width, height := GetSize()
	return cols <= width-reservedCols && rows <= height-reservedRows
}
