package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// ParseDirection maps a case-sensitive lowercase name ("north", "east", ...) to a Direction.
func ParseDirection(name string) (Direction, bool) {
	switch name {
	case "north", "up":
		return North, true
	case "east", "right":
		return East, true
	case "south", "down":
		return South, true
	case "west", "left":
		return West, true
	default:
		return North, false
	}
}

// Delta returns the x and y offsets for this direction. North is towards y=0.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
