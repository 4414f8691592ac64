// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// ErrNoGrid is returned when there is no maze to dump
var ErrNoGrid = errors.New("no grid")

var cellSymbols = map[world.CellType]rune{
	world.Wall:           '#',
	world.Path:           '.',
	world.Start:          'S',
	world.Exit:           'E',
	world.TreasureHidden: 'T',
	world.TreasureFound:  't',
	world.Waypoint:       'W',
}

// CellSymbol returns the single-character symbol for a cell type
func CellSymbol(t world.CellType) rune {
	if r, ok := cellSymbols[t]; ok {
		return r
	}
	return '?'
}

// writeMapGrid writes the grid with the player and, optionally, the route overlaid.
func writeMapGrid(w io.Writer, g *state.Game, withRoute bool) {
	route := g.Route()
	g.Grid.ForEachCell(func(p world.Position, cell world.Cell) {
		switch {
		case p == g.Player:
			fmt.Fprint(w, "@")
		case withRoute && cell.Type == world.Path && route.Contains(p):
			fmt.Fprint(w, "*")
		default:
			fmt.Fprintf(w, "%c", CellSymbol(cell.Type))
		}
		if p.X == g.Grid.Width()-1 {
			fmt.Fprintln(w)
		}
	})
}

// WriteMapDump writes a debug dump of the session: metadata, the map with and
// without the optimal route, and the waypoint table.
func WriteMapDump(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return ErrNoGrid
	}

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, route, waypoints) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "width: %d\n", g.Grid.Width())
	fmt.Fprintf(w, "height: %d\n", g.Grid.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "player: %d,%d\n", g.Player.X, g.Player.Y)
	fmt.Fprintf(w, "phase: %s\n", g.Phase)
	fmt.Fprintf(w, "steps: %d\n", g.Steps)
	fmt.Fprintf(w, "waypoints_crossed: %d\n", g.WaypointsCrossed)
	fmt.Fprintf(w, "has_treasure: %v\n", g.HasTreasure)
	fmt.Fprintf(w, "furnished: %v\n", g.Furnished())
	if g.PlaceErr != nil {
		fmt.Fprintf(w, "placement_error: %v\n", g.PlaceErr)
	}
	fmt.Fprintf(w, "route_length: %d\n", g.Route().Len())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, "# = wall  . = path  S = start  E = exit  T = hidden treasure  t = found treasure  W = waypoint  * = route  @ = player")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, g, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (optimal route) ---")
	writeMapGrid(w, g, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Waypoints:")
	if g.Layout != nil {
		for _, wp := range g.Layout.Waypoints {
			fmt.Fprintf(w, "  x: %d y: %d good: %v used: %v hint: %q\n", wp.Pos.X, wp.Pos.Y, wp.IsGood, wp.Used, wp.Hint)
		}
	}
	return nil
}

// DumpMapToFile writes WriteMapDump output to map.txt in the working
// directory and returns its absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", ErrNoGrid
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
