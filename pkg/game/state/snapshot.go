package state

import (
	"time"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/hints"
)

// Snapshot is a read-only view of a session for renderers and clients
type Snapshot struct {
	Width            int              `json:"width"`
	Height           int              `json:"height"`
	Cells            [][]string       `json:"cells"`
	Player           world.Position   `json:"player"`
	Steps            int              `json:"steps"`
	WaypointsCrossed int              `json:"waypointsCrossed"`
	HasTreasure      bool             `json:"hasTreasure"`
	Won              bool             `json:"won"`
	Phase            Phase            `json:"phase"`
	Route            world.Route      `json:"route,omitempty"`
	ShowRoute        bool             `json:"showRoute"`
	Visited          []world.Position `json:"visited"`
	LastHint         string           `json:"lastHint,omitempty"`
	Advisory         string           `json:"advisory,omitempty"`
	AdvisoryUntil    *time.Time       `json:"advisoryUntil,omitempty"`
	Messages         []string         `json:"messages,omitempty"`
	Furnished        bool             `json:"furnished"`
}

// Snapshot copies the session state as seen at now
func (g *Game) Snapshot(now time.Time) Snapshot {
	s := Snapshot{
		Player:           g.Player,
		Steps:            g.Steps,
		WaypointsCrossed: g.WaypointsCrossed,
		HasTreasure:      g.HasTreasure,
		Won:              g.Won,
		Phase:            g.Phase,
		ShowRoute:        g.ShowRoute,
		LastHint:         hints.Text(g.LastHint),
		Furnished:        g.Furnished(),
		Visited:          make([]world.Position, 0, g.Visited.Size()),
	}
	if advisory, ok := g.Advisory(now); ok {
		until := g.advisoryUntil
		s.Advisory = advisory
		s.AdvisoryUntil = &until
	}
	if len(g.Messages) > 0 {
		s.Messages = append([]string(nil), g.Messages...)
	}
	if route := g.Route(); route != nil {
		s.Route = append(world.Route(nil), route...)
	}
	if g.Grid == nil {
		return s
	}

	s.Width, s.Height = g.Grid.Width(), g.Grid.Height()
	s.Cells = make([][]string, s.Height)
	for y := range s.Cells {
		s.Cells[y] = make([]string, s.Width)
	}
	g.Grid.ForEachCell(func(p world.Position, cell world.Cell) {
		s.Cells[p.Y][p.X] = cell.Type.String()
		if g.Visited.Has(p) {
			s.Visited = append(s.Visited, p)
		}
	})
	return s
}
