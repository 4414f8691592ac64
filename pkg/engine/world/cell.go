// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based maze game.
package world

// CellType classifies what occupies a grid cell.
type CellType int

// Cell types. The zero value is Wall so a fresh grid is solid rock.
const (
	Wall CellType = iota
	Path
	Start
	Exit
	TreasureHidden
	TreasureFound
	Waypoint
)

// String returns the wire name of a cell type
func (t CellType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Start:
		return "start"
	case Exit:
		return "exit"
	case TreasureHidden:
		return "treasure-hidden"
	case TreasureFound:
		return "treasure-found"
	case Waypoint:
		return "waypoint"
	default:
		return "unknown"
	}
}

// IsValid returns true if t is one of the known cell types
func (t CellType) IsValid() bool {
	return t >= Wall && t <= Waypoint
}

// Cell represents a single cell/tile in the grid.
type Cell struct {
	Type CellType

	// Visited is carve-time bookkeeping only; nothing reads it after generation.
	Visited bool
}

// IsWall returns true if the cell blocks movement
func (c Cell) IsWall() bool {
	return c.Type == Wall
}
