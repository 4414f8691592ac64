package server

import (
	"github.com/google/uuid"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/gameplay"
	"mazelott/pkg/game/state"
)

// CreateMazeRequest asks for a new session. Sides are bounded to 1..101.
type CreateMazeRequest struct {
	Width  int   `json:"width" binding:"required,min=1,max=101"`
	Height int   `json:"height" binding:"required,min=1,max=101"`
	Seed   int64 `json:"seed"`
}

// MoveRequest targets either an adjacent cell or a direction name
type MoveRequest struct {
	X         *int   `json:"x"`
	Y         *int   `json:"y"`
	Direction string `json:"direction"`
}

// TreasureRequest answers a pending treasure offer
type TreasureRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// MazeResponse carries a session id and its state
type MazeResponse struct {
	ID       uuid.UUID      `json:"id"`
	Snapshot state.Snapshot `json:"snapshot"`
}

// MoveResponse reports a move and the resulting state
type MoveResponse struct {
	Result   gameplay.MoveResult `json:"result"`
	Snapshot state.Snapshot      `json:"snapshot"`
}

// RouteResponse is the optimal route of a session
type RouteResponse struct {
	Route world.Route `json:"route"`
}

// wsMessage is a client frame on the live socket
type wsMessage struct {
	Type      string `json:"type"` // move, treasure, reset, route
	Direction string `json:"direction,omitempty"`
	X         *int   `json:"x,omitempty"`
	Y         *int   `json:"y,omitempty"`
	Accept    *bool  `json:"accept,omitempty"`
}

// wsFrame is a server frame on the live socket
type wsFrame struct {
	Type     string               `json:"type"` // snapshot or error
	Result   *gameplay.MoveResult `json:"result,omitempty"`
	Snapshot *state.Snapshot      `json:"snapshot,omitempty"`
	Error    string               `json:"error,omitempty"`
}
