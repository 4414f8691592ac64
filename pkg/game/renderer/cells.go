package renderer

import (
	"fmt"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/hints"
	"mazelott/pkg/game/overworld"
	"mazelott/pkg/game/state"
)

// Icons shared by the renderers
const (
	PlayerIcon      = "@"
	IconWall        = "▒"
	IconPath        = " "
	IconVisited     = "·"
	IconRoute       = "•"
	IconStart       = "S"
	IconExit        = "⌂"
	IconTreasure    = "$"
	IconTreasureOff = "¤"
	IconWaypoint    = "✦"
	IconMarker      = "⛨"
	IconEntrance    = "♜"
)

// CellStyle classifies the cell at p for drawing. The player wins over
// everything, the route overlay only paints plain path cells.
func CellStyle(s state.Snapshot, p world.Position, visited map[world.Position]bool, route map[world.Position]bool) TextStyle {
	if p == s.Player {
		return StylePlayer
	}
	switch s.Cells[p.Y][p.X] {
	case world.Wall.String():
		return StyleWall
	case world.Start.String():
		return StyleStart
	case world.Exit.String():
		return StyleExit
	case world.TreasureHidden.String():
		return StyleTreasure
	case world.TreasureFound.String():
		return StyleTreasureFound
	case world.Waypoint.String():
		return StyleWaypoint
	}
	if s.ShowRoute && route[p] {
		return StyleRoute
	}
	if visited[p] {
		return StyleVisited
	}
	return StylePath
}

// Icon returns the glyph drawn for a style
func Icon(style TextStyle) string {
	switch style {
	case StylePlayer:
		return PlayerIcon
	case StyleWall:
		return IconWall
	case StyleStart:
		return IconStart
	case StyleExit:
		return IconExit
	case StyleTreasure:
		return IconTreasure
	case StyleTreasureFound:
		return IconTreasureOff
	case StyleWaypoint:
		return IconWaypoint
	case StyleRoute:
		return IconRoute
	case StyleVisited:
		return IconVisited
	default:
		return IconPath
	}
}

// Lookups builds position sets for the visited cells and the route
func Lookups(s state.Snapshot) (visited, route map[world.Position]bool) {
	visited = make(map[world.Position]bool, len(s.Visited))
	for _, p := range s.Visited {
		visited[p] = true
	}
	route = make(map[world.Position]bool, len(s.Route))
	for _, p := range s.Route {
		route[p] = true
	}
	return visited, route
}

// StatusLines returns the translated status panel for a snapshot
func StatusLines(s state.Snapshot) []string {
	treasure := hints.Text(hints.LabelTreasureHidden)
	if s.HasTreasure {
		treasure = hints.Text(hints.LabelTreasureHeld)
	}
	progress := hints.Text(hints.LabelPlaying)
	if s.Won {
		progress = hints.Text(hints.LabelWon)
	}
	return []string{
		fmt.Sprintf("%s: %d,%d", hints.Text(hints.LabelPosition), s.Player.X, s.Player.Y),
		fmt.Sprintf("%s: %d", hints.Text(hints.LabelSteps), s.Steps),
		fmt.Sprintf("%s: %d", hints.Text(hints.LabelWaypoints), s.WaypointsCrossed),
		treasure,
		progress,
	}
}

// Viewport returns the top-left cell of a rows×cols window over a
// width×height grid, centered on the player where the grid allows it.
func Viewport(width, height, rows, cols int, player world.Position) (startX, startY int) {
	startX = clampStart(player.X-cols/2, width, cols)
	startY = clampStart(player.Y-rows/2, height, rows)
	return startX, startY
}

func clampStart(start, size, window int) int {
	if window >= size || start < 0 {
		return 0
	}
	if start+window > size {
		return size - window
	}
	return start
}

// OverworldView is what renderers need to draw the kingdom map
type OverworldView struct {
	Markers      []overworld.Marker
	Visited      int
	EntranceOpen bool
	Messages     []string
}

// OverworldViewOf copies the renderable state of m
func OverworldViewOf(m *overworld.Map, messages []string) OverworldView {
	v := OverworldView{
		Visited:      m.VisitedCount(),
		EntranceOpen: m.EntranceOpen(),
		Messages:     append([]string(nil), messages...),
	}
	for _, marker := range m.Markers {
		v.Markers = append(v.Markers, *marker)
	}
	return v
}

// CellAt maps a pixel to the grid cell drawn there, for a map whose top-left
// tile (startX, startY) is drawn at (originX, originY) with square tiles.
func CellAt(px, py, originX, originY, tile, startX, startY int) (world.Position, bool) {
	if tile <= 0 || px < originX || py < originY {
		return world.Position{}, false
	}
	return world.Pos(startX+(px-originX)/tile, startY+(py-originY)/tile), true
}
