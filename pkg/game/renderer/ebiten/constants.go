// Package ebiten provides an Ebiten-based 2D graphical renderer for Maze'Lott.
package ebiten

import (
	"image/color"

	"mazelott/pkg/game/renderer"
)

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWall          = color.RGBA{60, 60, 80, 255}    // Wall tiles
	colorFloor         = color.RGBA{40, 40, 56, 255}    // Unvisited path
	colorFloorVisited  = color.RGBA{70, 70, 100, 255}   // Visited path
	colorRoute         = color.RGBA{60, 140, 200, 255}  // Optimal route overlay
	colorStart         = color.RGBA{0, 160, 90, 255}    // Start cell
	colorExit          = color.RGBA{220, 70, 70, 255}   // Exit cell
	colorTreasure      = color.RGBA{255, 210, 60, 255}  // Hidden treasure
	colorTreasureFound = color.RGBA{140, 120, 50, 255}  // Found treasure
	colorWaypoint      = color.RGBA{200, 120, 255, 255} // Waypoint
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction        = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorAdvisory      = color.RGBA{255, 220, 100, 255} // Yellow
	colorPanel         = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Tile sizing (adjustable with +/-)
const (
	defaultTileSize = 24
	minTileSize     = 12
	maxTileSize     = 48
	tileSizeStep    = 4
)

// Layout
const (
	windowWidth  = 1024
	windowHeight = 768
	frameBorder  = 10
	headerHeight = 30
	panelWidth   = 300
	lineHeight   = 16
	markerRadius = 14
	entranceSize = 28
)

// Key repeat timings (milliseconds)
const (
	keyRepeatInitialDelay = 250
	keyRepeatInterval     = 90
)

var styleColors = map[renderer.TextStyle]color.Color{
	renderer.StyleWall:          colorWall,
	renderer.StylePath:          colorFloor,
	renderer.StyleVisited:       colorFloorVisited,
	renderer.StyleRoute:         colorRoute,
	renderer.StylePlayer:        colorPlayer,
	renderer.StyleStart:         colorStart,
	renderer.StyleExit:          colorExit,
	renderer.StyleTreasure:      colorTreasure,
	renderer.StyleTreasureFound: colorTreasureFound,
	renderer.StyleWaypoint:      colorWaypoint,
}

// colorFor returns the fill color of a tile style
func colorFor(style renderer.TextStyle) color.Color {
	if c, ok := styleColors[style]; ok {
		return c
	}
	return colorFloor
}
