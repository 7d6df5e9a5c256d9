// Package server implements the discoverable blackjack game server: a
// TCP accept loop playing fixed-size protocol rounds against concurrent
// clients, and a UDP broadcaster advertising the TCP endpoint.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/t-rays/Blackijecky/internal/config"
	"github.com/t-rays/Blackijecky/pkg/deck"
	"github.com/t-rays/Blackijecky/pkg/game"
	"github.com/t-rays/Blackijecky/pkg/protocol"
)

const tracerName = "blackjack/server"

// Server hosts blackjack sessions. One goroutine handles each accepted
// connection; the accept loop and the offer broadcaster run as
// independent long-lived goroutines.
type Server struct {
	cfg    config.Server
	stats  *Stats
	logger *slog.Logger
	tracer trace.Tracer

	// drawDelay paces dealer draws so terminal clients can follow along.
	drawDelay time.Duration

	ln      net.Listener
	udp     net.PacketConn
	done    chan struct{}
	wg      sync.WaitGroup
	stopped sync.Once
}

// New creates a server from the given configuration.
func New(cfg config.Server) *Server {
	return &Server{
		cfg:       cfg,
		stats:     &Stats{},
		logger:    slog.Default().With("component", "server"),
		tracer:    otel.Tracer(tracerName),
		drawDelay: 100 * time.Millisecond,
		done:      make(chan struct{}),
	}
}

// Start binds the TCP listener and begins broadcasting and accepting.
// It returns once both loops are running.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.TCPPort))
	if err != nil {
		return fmt.Errorf("listen tcp: %w", err)
	}
	s.ln = ln

	udp, err := net.ListenPacket("udp4", ":0")
	if err != nil {
		ln.Close()
		return fmt.Errorf("open broadcast socket: %w", err)
	}
	s.udp = udp

	s.logger.Info("server started",
		"name", s.cfg.Name,
		"tcp_port", s.Port(),
		"udp_port", s.cfg.UDPPort)

	s.wg.Add(2)
	go s.broadcastOffers()
	go s.acceptClients()
	return nil
}

// Port returns the bound TCP port.
func (s *Server) Port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Stats returns a snapshot of the aggregate round counters.
func (s *Server) Stats() StatsSnapshot {
	return s.stats.Snapshot()
}

// Stop closes the listeners and waits for the long-lived loops to exit.
// In-flight client connections finish on their own deadlines.
func (s *Server) Stop() {
	s.stopped.Do(func() {
		close(s.done)
		if s.ln != nil {
			s.ln.Close()
		}
		if s.udp != nil {
			s.udp.Close()
		}
	})
	s.wg.Wait()
}

func (s *Server) acceptClients() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
			}
			s.logger.Error("accept failed", "error", err)
			return
		}
		s.logger.Info("client connected", "remote", conn.RemoteAddr())
		go s.handleClient(conn)
	}
}

// handleClient plays a full session with one client: read the request,
// play the requested rounds over a deck that persists across them, tally.
func (s *Server) handleClient(conn net.Conn) {
	defer conn.Close()
	logger := s.logger.With("remote", conn.RemoteAddr())

	conn.SetReadDeadline(time.Now().Add(s.cfg.ClientTimeout))
	raw, err := protocol.ReadExact(conn, protocol.RequestSize)
	if err != nil {
		logger.Warn("connection closed during request", "error", err)
		return
	}
	req, err := protocol.DecodeRequest(raw)
	if err != nil {
		logger.Warn("invalid request frame", "error", err)
		return
	}
	logger = logger.With("client", req.Name)
	logger.Info("session start", "rounds", req.NumRounds)

	d := deck.New()
	var wins, losses, ties int
	for round := 1; round <= int(req.NumRounds); round++ {
		result, err := s.playRound(conn, d)
		if err != nil {
			logger.Warn("round aborted", "round", round, "error", err)
			break
		}
		s.stats.RecordRound(result)
		switch result {
		case game.Win:
			wins++
		case game.Loss:
			losses++
		case game.Tie:
			ties++
		}
		logger.Info("round resolved", "round", round, "result", result.String())
	}

	snap := s.stats.Snapshot()
	logger.Info("session end",
		"client_wins", wins, "client_losses", losses, "client_ties", ties,
		"server_wins", snap.Wins, "server_losses", snap.Losses,
		"server_ties", snap.Ties, "total_games", snap.Games)
}

// playRound drives one round on the wire. The returned result is the
// client's; any I/O failure or malformed decision aborts the round and
// the caller closes the connection.
func (s *Server) playRound(conn net.Conn, d *deck.Deck) (game.Result, error) {
	_, span := s.tracer.Start(context.Background(), "blackjack.round")
	defer span.End()

	round := game.NewRound(d)
	p1, p2, dealerUp, err := round.Deal()
	if err != nil {
		return game.NotOver, err
	}

	// Initial deal: two player cards, then the dealer's visible card.
	for _, c := range []game.Card{p1, p2, dealerUp} {
		if err := s.writeFrame(conn, protocol.EncodePayload(game.NotOver, c)); err != nil {
			return game.NotOver, err
		}
	}

	// Player's turn: decision, then optionally a drawn card.
	for round.State() == game.PlayerTurn {
		conn.SetReadDeadline(time.Now().Add(s.cfg.ClientTimeout))
		raw, err := protocol.ReadExact(conn, protocol.DecisionSize)
		if err != nil {
			return game.NotOver, fmt.Errorf("read decision: %w", err)
		}
		decision, err := protocol.DecodeDecision(raw)
		if err != nil {
			return game.NotOver, fmt.Errorf("decode decision: %w", err)
		}

		if decision == protocol.DecisionStand {
			if err := round.Stand(); err != nil {
				return game.NotOver, err
			}
			break
		}

		c, _, bust, err := round.Hit()
		if err != nil {
			return game.NotOver, err
		}
		if bust {
			// Terminal bust: the loss rides on the card frame and the
			// dealer's turn is skipped entirely.
			if err := s.writeFrame(conn, protocol.EncodePayload(game.Loss, c)); err != nil {
				return game.NotOver, err
			}
			span.SetAttributes(attribute.String("blackjack.result", game.Loss.String()))
			return game.Loss, nil
		}
		if err := s.writeFrame(conn, protocol.EncodePayload(game.NotOver, c)); err != nil {
			return game.NotOver, err
		}
	}

	// Dealer's turn: reveal the hole card, then draw to the threshold.
	if err := s.writeFrame(conn, protocol.EncodePayload(game.NotOver, round.HoleCard())); err != nil {
		return game.NotOver, err
	}
	drawn, err := round.DealerPlay()
	if err != nil {
		return game.NotOver, err
	}
	for _, c := range drawn {
		if err := s.writeFrame(conn, protocol.EncodePayload(game.NotOver, c)); err != nil {
			return game.NotOver, err
		}
		if s.drawDelay > 0 {
			time.Sleep(s.drawDelay)
		}
	}

	result := round.Outcome()
	if err := s.writeFrame(conn, protocol.EncodeResult(result)); err != nil {
		return game.NotOver, err
	}
	span.SetAttributes(attribute.String("blackjack.result", result.String()))
	return result, nil
}

func (s *Server) writeFrame(conn net.Conn, frame []byte) error {
	conn.SetWriteDeadline(time.Now().Add(s.cfg.ClientTimeout))
	if _, err := conn.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
