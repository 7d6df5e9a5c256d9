package bridge

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/t-rays/Blackijecky/pkg/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Same posture as the CORS middleware: the bridge is a LAN service.
	CheckOrigin: func(*http.Request) bool { return true },
}

const wsWriteTimeout = 10 * time.Second

// handleWS streams a session's events over a WebSocket as JSON text
// messages, the same payloads the SSE stream carries. Idle periods are
// bridged with ping control frames.
func (a *API) handleWS(w http.ResponseWriter, r *http.Request) {
	s, ok := a.session(w, params(r))
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// Discard inbound messages; the socket exists so the browser can
	// notice disconnects and so pong frames flow back.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	writeEvent := func(e Event) bool {
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		return conn.WriteJSON(e) == nil
	}

	if !writeEvent(Event{Result: game.NotOver, ResultName: "NOT_OVER", State: s.Snapshot()}) {
		return
	}

	ctx := r.Context()
	for {
		event, ok := s.Outbox().Next(keepAliveInterval)
		if ok {
			if !writeEvent(event) {
				return
			}
			continue
		}
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-s.Done():
			if s.Outbox().Len() == 0 {
				return
			}
		default:
		}
	}
}
