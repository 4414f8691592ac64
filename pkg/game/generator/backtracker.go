package generator

import (
	"math/rand"
	"time"

	"mazelott/pkg/engine/world"
)

// StartRoom is the room the carver begins from and the player spawns on.
var StartRoom = world.Pos(1, 1)

// CarveStats describes one carving run
type CarveStats struct {
	// Steps is the number of links carved (one room plus the wall in front of it).
	Steps int
	// Rooms is the number of odd-coordinate rooms opened, including the start.
	Rooms int
	// MaxStack is the deepest the backtracking stack grew.
	MaxStack int
}

// BacktrackerGenerator carves perfect mazes with a randomized depth-first
// backtracker over the odd-coordinate room sub-grid.
type BacktrackerGenerator struct {
	rng *rand.Rand
}

// NewBacktracker creates a backtracker using rng, or a time-seeded source when rng is nil
func NewBacktracker(rng *rand.Rand) *BacktrackerGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &BacktrackerGenerator{rng: rng}
}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// Generate creates a new carved grid. Sizes are normalized with Dimensions.
func (g *BacktrackerGenerator) Generate(width, height int) *world.Grid {
	grid, _ := g.Carve(width, height)
	return grid
}

// Carve creates a new carved grid and reports what the run did
func (g *BacktrackerGenerator) Carve(width, height int) (*world.Grid, CarveStats) {
	width, height = Dimensions(width, height)
	grid := world.NewGrid(width, height)

	stats := CarveStats{Rooms: 1, MaxStack: 1}
	grid.SetCell(StartRoom, world.Cell{Type: world.Path, Visited: true})
	stack := []world.Position{StartRoom}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		neighbors := unvisitedRooms(grid, current)

		if len(neighbors) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := neighbors[g.rng.Intn(len(neighbors))]
		between := world.Pos(current.X+(next.X-current.X)/2, current.Y+(next.Y-current.Y)/2)

		grid.SetCell(next, world.Cell{Type: world.Path, Visited: true})
		grid.SetCell(between, world.Cell{Type: world.Path, Visited: true})
		stack = append(stack, next)

		stats.Steps++
		stats.Rooms++
		stats.MaxStack = max(stats.MaxStack, len(stack))
	}

	return grid, stats
}

// unvisitedRooms returns the rooms two cells away from p that are strictly
// inside the border and not yet visited, in North, East, South, West order.
func unvisitedRooms(grid *world.Grid, p world.Position) []world.Position {
	var rooms []world.Position
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		n := world.Pos(p.X+2*dx, p.Y+2*dy)
		if grid.IsInterior(n) && !grid.Cell(n).Visited {
			rooms = append(rooms, n)
		}
	}
	return rooms
}
