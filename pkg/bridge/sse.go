package bridge

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/t-rays/Blackijecky/pkg/game"
)

// keepAliveInterval is how long an event-stream consumer waits before
// emitting a keep-alive instead of terminating.
const keepAliveInterval = time.Second

// handleEvents streams a session's events as Server-Sent Events. The
// stream opens with the current snapshot, then forwards outbox events as
// they arrive, with keep-alive comments on idle. It ends when the
// browser goes away or the session is done and drained.
func (a *API) handleEvents(w http.ResponseWriter, r *http.Request) {
	s, ok := a.session(w, params(r))
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	writeSSE := func(e Event) bool {
		data, err := json.Marshal(e)
		if err != nil {
			return false
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	// Initial snapshot so a late-joining consumer starts coherent.
	if !writeSSE(Event{Result: game.NotOver, ResultName: "NOT_OVER", State: s.Snapshot()}) {
		return
	}

	ctx := r.Context()
	for {
		event, ok := s.Outbox().Next(keepAliveInterval)
		if ok {
			if !writeSSE(event) {
				return
			}
			continue
		}
		// Idle: keep-alive rather than terminating the consumer.
		if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
			return
		}
		flusher.Flush()

		select {
		case <-ctx.Done():
			return
		case <-s.Done():
			// Receiver gone; drain whatever is queued, then stop.
			if s.Outbox().Len() == 0 {
				return
			}
		default:
		}
	}
}
