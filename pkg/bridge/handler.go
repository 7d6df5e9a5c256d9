package bridge

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/t-rays/Blackijecky/internal/config"
	"github.com/t-rays/Blackijecky/pkg/client"
	"github.com/t-rays/Blackijecky/pkg/protocol"
)

const tracerName = "blackjack/bridge"

// API serves the bridge's HTTP surface: discovery, session lifecycle,
// decisions, and the three ways of consuming events (polling, SSE,
// WebSocket).
type API struct {
	cfg      config.Bridge
	registry *Registry
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewAPI creates the bridge API.
func NewAPI(cfg config.Bridge) *API {
	return &API{
		cfg:      cfg,
		registry: NewRegistry(),
		logger:   slog.Default().With("component", "bridge"),
		tracer:   otel.Tracer(tracerName),
	}
}

// Registry exposes the session registry, mainly for tests and shutdown.
func (a *API) Registry() *Registry { return a.registry }

// Router builds the chi router for the API.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Use(a.traceMiddleware)

	r.Get("/api/discover", a.handleDiscover)
	r.Get("/api/session/create", a.handleCreate)
	r.Post("/api/session/create", a.handleCreate)
	r.Get("/api/session/state", a.handleState)
	r.Get("/api/session/decision", a.handleDecision)
	r.Post("/api/session/decision", a.handleDecision)
	r.Get("/api/session/receive", a.handleReceive)
	r.Post("/api/session/close", a.handleClose)
	r.Get("/api/session/events", a.handleEvents)
	r.Get("/api/session/ws", a.handleWS)

	r.Handle("/metrics", promhttp.Handler())
	return r
}

// corsMiddleware allows browser pages served from anywhere to talk to
// the bridge. The bridge runs on a LAN and has no credentials to leak.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *API) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "blackjack.http "+r.URL.Path,
			trace.WithAttributes(attribute.String("http.method", r.Method)))
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// params merges query parameters with a JSON body, body winning, so
// every endpoint accepts both styles the way the web client uses them.
func params(r *http.Request) map[string]string {
	out := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	if r.Method == http.MethodPost && r.Body != nil {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			for k, v := range body {
				out[k] = fmt.Sprint(v)
			}
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func failure(w http.ResponseWriter, msg string) {
	writeJSON(w, map[string]any{"success": false, "error": msg})
}

func (a *API) handleDiscover(w http.ResponseWriter, r *http.Request) {
	info, err := client.Discover(r.Context(), a.cfg.UDPPort, a.cfg.DiscoveryTimeout)
	if err != nil {
		failure(w, "No server found")
		return
	}
	writeJSON(w, map[string]any{
		"success":     true,
		"server_ip":   info.IP.String(),
		"tcp_port":    info.TCPPort,
		"server_name": info.Name,
	})
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	p := params(r)
	serverIP := p["server_ip"]
	tcpPort, _ := strconv.Atoi(p["tcp_port"])
	numRounds, _ := strconv.Atoi(p["num_rounds"])
	clientName := p["client_name"]
	if clientName == "" {
		clientName = "WebPlayer"
	}
	if numRounds < 1 {
		numRounds = 1
	}
	if numRounds > protocol.MaxRounds {
		// The wire field is one byte; a larger count would silently wrap
		// in the request frame and desync the session from the server.
		failure(w, fmt.Sprintf("num_rounds must be at most %d", protocol.MaxRounds))
		return
	}
	if serverIP == "" || tcpPort == 0 {
		failure(w, "server_ip and tcp_port are required")
		return
	}

	addr := net.JoinHostPort(serverIP, strconv.Itoa(tcpPort))
	session := a.registry.Create(addr, clientName, numRounds, a.cfg.SessionTimeout)
	a.logger.Info("session created",
		"session", session.ID(), "server", addr, "rounds", numRounds, "client", clientName)

	if err := session.Connect(); err != nil {
		a.logger.Warn("session connect failed", "session", session.ID(), "error", err)
		failure(w, err.Error())
		return
	}
	writeJSON(w, map[string]any{"success": true, "session_id": session.ID()})
}

func (a *API) session(w http.ResponseWriter, p map[string]string) (*Session, bool) {
	id := p["session_id"]
	if id == "" {
		failure(w, "No session_id provided")
		return nil, false
	}
	s, ok := a.registry.Get(id)
	if !ok {
		failure(w, "Session not found")
		return nil, false
	}
	return s, true
}

func (a *API) handleState(w http.ResponseWriter, r *http.Request) {
	s, ok := a.session(w, params(r))
	if !ok {
		return
	}
	writeJSON(w, map[string]any{"success": true, "state": s.Snapshot()})
}

func (a *API) handleDecision(w http.ResponseWriter, r *http.Request) {
	p := params(r)
	s, ok := a.session(w, p)
	if !ok {
		return
	}
	if err := s.SendDecision(p["decision"]); err != nil {
		failure(w, err.Error())
		return
	}
	writeJSON(w, map[string]any{"success": true})
}

// handleReceive is the polling fallback: pop at most one queued event.
func (a *API) handleReceive(w http.ResponseWriter, r *http.Request) {
	s, ok := a.session(w, params(r))
	if !ok {
		return
	}
	event, ok := s.Outbox().Poll()
	resp := map[string]any{"success": true, "state": s.Snapshot()}
	if ok {
		resp["card_data"] = event
	} else {
		resp["card_data"] = nil
	}
	writeJSON(w, resp)
}

func (a *API) handleClose(w http.ResponseWriter, r *http.Request) {
	p := params(r)
	id := p["session_id"]
	if id == "" {
		failure(w, "No session_id provided")
		return
	}
	if !a.registry.Remove(id) {
		failure(w, "Session not found")
		return
	}
	writeJSON(w, map[string]any{"success": true})
}
