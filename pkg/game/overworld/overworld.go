// Package overworld is the kingdom map the player crosses before entering
// the maze: a few points of interest hand out hints, and the maze entrance
// opens once all of them have been visited.
package overworld

import (
	"fmt"
	"math/rand"

	"mazelott/pkg/game/hints"
)

// Feature is a named point of interest on the kingdom map
type Feature struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Home is where the player starts; it never carries a marker
const Home = "Kaamelott"

// Markers is how many features get a marker on each map
const Markers = 3

// Kingdom lists every feature of the map in map pixels
var Kingdom = []Feature{
	{Name: Home, Hex: "q10_r10", X: 200, Y: 200},
	{Name: "castle of the villain", Hex: "q12_r21", X: 400, Y: 450},
	{Name: "Lost", Hex: "q15_r14", X: 500, Y: 300},
	{Name: "Bourgade des Gueux", Hex: "q14_r18", X: 450, Y: 380},
	{Name: "Stonehedge", Hex: "q13_r12", X: 420, Y: 280},
	{Name: "Taverne", Hex: "q10_r15", X: 320, Y: 350},
	{Name: "Merlin'Dolmen", Hex: "q15_r9", X: 520, Y: 220},
	{Name: "Land of the Broutche", Hex: "q11_r16", X: 350, Y: 360},
}

// Entrance is where the maze entrance appears once it opens
var Entrance = Feature{Name: "Maze'Lott", X: 500, Y: 200}

// Marker is a feature selected for this map
type Marker struct {
	Feature
	IsGood  bool `json:"isGood"`
	Visited bool `json:"visited"`
}

// Map is one overworld run
type Map struct {
	Markers []*Marker
	visited int
	entered bool
	rng     *rand.Rand
}

// New picks Markers distinct features at random, Home excluded, each giving
// good or misleading advice with equal odds.
func New(rng *rand.Rand) *Map {
	var candidates []Feature
	for _, f := range Kingdom {
		if f.Name != Home {
			candidates = append(candidates, f)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	m := &Map{rng: rng}
	for _, f := range candidates[:min(Markers, len(candidates))] {
		m.Markers = append(m.Markers, &Marker{Feature: f, IsGood: rng.Float64() < 0.5})
	}
	return m
}

// Visit visits marker i. The first visit returns "<feature>: <hint>"; later
// visits and unknown indices return ok=false.
func (m *Map) Visit(i int) (message string, ok bool) {
	if i < 0 || i >= len(m.Markers) || m.Markers[i].Visited {
		return "", false
	}
	marker := m.Markers[i]
	marker.Visited = true
	m.visited++

	pool := hints.OverworldBad
	if marker.IsGood {
		pool = hints.OverworldGood
	}
	return fmt.Sprintf("%s: %s", marker.Name, hints.Text(hints.Pick(m.rng, pool))), true
}

// VisitedCount returns how many markers have been visited
func (m *Map) VisitedCount() int {
	return m.visited
}

// EntranceOpen reports whether every marker has been visited
func (m *Map) EntranceOpen() bool {
	return m.visited >= len(m.Markers)
}

// Enter walks into the maze entrance. It only succeeds once it is open.
func (m *Map) Enter() bool {
	if !m.EntranceOpen() {
		return false
	}
	m.entered = true
	return true
}

// Entered reports whether the player went through the entrance
func (m *Map) Entered() bool {
	return m.entered
}

// MarkerNear returns the index of the first marker within radius map pixels
// of (x, y), or -1
func (m *Map) MarkerNear(x, y, radius int) int {
	for i, marker := range m.Markers {
		dx, dy := marker.X-x, marker.Y-y
		if dx*dx+dy*dy <= radius*radius {
			return i
		}
	}
	return -1
}
