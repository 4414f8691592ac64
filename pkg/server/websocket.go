package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"mazelott/pkg/game/gameplay"
	"mazelott/pkg/game/state"
)

var wsUpgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// live upgrades to a WebSocket and answers every client frame with the
// session state after applying it.
func (mc *MazeController) live(ctx *gin.Context) {
	session, ok := mc.session(ctx)
	if !ok {
		return
	}

	conn, err := wsUpgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("[SERVER] [ERROR] websocket upgrade for %s: %v", session.ID, err)
		return
	}
	defer conn.Close()

	var snap state.Snapshot
	session.Do(func(g *state.Game) { snap = g.Snapshot(mc.now()) })
	if err := conn.WriteJSON(wsFrame{Type: "snapshot", Snapshot: &snap}); err != nil {
		return
	}

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[SERVER] [INFO] websocket for %s closed: %v", session.ID, err)
			}
			return
		}
		if err := conn.WriteJSON(mc.handleFrame(session, msg)); err != nil {
			log.Printf("[SERVER] [ERROR] websocket write for %s: %v", session.ID, err)
			return
		}
	}
}

// handleFrame applies one client frame under the session lock
func (mc *MazeController) handleFrame(session *Session, msg wsMessage) wsFrame {
	var (
		frame wsFrame
		err   error
	)
	session.Do(func(g *state.Game) {
		switch msg.Type {
		case "move":
			var result gameplay.MoveResult
			result, err = applyMove(g, msg.X, msg.Y, msg.Direction)
			frame.Result = &result
		case "treasure":
			if msg.Accept == nil {
				err = ErrNoAnswer
				break
			}
			err = gameplay.ConfirmTreasure(g, *msg.Accept)
		case "reset":
			gameplay.Reset(g)
		case "route":
			g.ShowRoute = !g.ShowRoute
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownFrame, msg.Type)
		}
		snap := g.Snapshot(mc.now())
		frame.Snapshot = &snap
	})

	if err != nil {
		frame.Type = "error"
		frame.Error = err.Error()
		if errors.Is(err, ErrUnknownFrame) {
			frame.Snapshot = nil
		}
		return frame
	}
	frame.Type = "snapshot"
	return frame
}
