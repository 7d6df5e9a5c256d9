package bridge

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/t-rays/Blackijecky/pkg/game"
	"github.com/t-rays/Blackijecky/pkg/protocol"
)

// Session errors.
var (
	ErrNotConnected = errors.New("bridge: session not connected")
	ErrBadDecision  = errors.New("bridge: invalid decision")
	ErrBadRounds    = errors.New("bridge: round count out of range")
)

// Session owns one game connection on behalf of a web consumer and
// reconstructs round state from the frames flowing over it.
//
// All mutable fields are written only by the receiver goroutine (plus
// SendDecision's phase flip); readers take lock-protected snapshots.
type Session struct {
	id         string
	addr       string
	clientName string
	numRounds  int
	timeout    time.Duration
	logger     *slog.Logger

	conn   net.Conn
	outbox *Outbox
	closed atomic.Bool
	done   chan struct{}

	mu           sync.Mutex
	currentRound int
	player       game.Hand
	dealer       game.Hand
	playerTotal  int
	dealerTotal  int
	phase        Phase
	roundResult  string
	wins         int
	losses       int
	ties         int
	lastErr      string
}

// NewSession creates a session targeting the given server endpoint. It
// does not touch the network until Connect.
func NewSession(id, addr, clientName string, numRounds int, timeout time.Duration) *Session {
	return &Session{
		id:           id,
		addr:         addr,
		clientName:   clientName,
		numRounds:    numRounds,
		timeout:      timeout,
		logger:       slog.Default().With("component", "bridge", "session", id),
		outbox:       newOutbox(),
		done:         make(chan struct{}),
		currentRound: 1,
		phase:        PhaseDisconnected,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Outbox returns the session's event queue.
func (s *Session) Outbox() *Outbox { return s.outbox }

// Done is closed when the receiver goroutine has exited.
func (s *Session) Done() <-chan struct{} { return s.done }

// Connect dials the game server, sends the request frame, and starts the
// background receiver. On failure the session is left in the error phase
// with the cause recorded.
func (s *Session) Connect() error {
	// NumRounds is a single byte on the wire; out-of-range counts would
	// wrap in the request frame and desync the session from the server.
	if s.numRounds < 1 || s.numRounds > protocol.MaxRounds {
		s.mu.Lock()
		s.phase = PhaseError
		s.lastErr = fmt.Sprintf("round count %d out of range", s.numRounds)
		s.mu.Unlock()
		close(s.done)
		return fmt.Errorf("%w: %d", ErrBadRounds, s.numRounds)
	}

	conn, err := net.DialTimeout("tcp", s.addr, s.timeout)
	if err != nil {
		s.mu.Lock()
		s.phase = PhaseError
		s.lastErr = err.Error()
		s.mu.Unlock()
		close(s.done)
		return fmt.Errorf("connect %s: %w", s.addr, err)
	}

	conn.SetWriteDeadline(time.Now().Add(s.timeout))
	if _, err := conn.Write(protocol.EncodeRequest(protocol.Request{
		NumRounds: uint8(s.numRounds),
		Name:      s.clientName,
	})); err != nil {
		conn.Close()
		s.mu.Lock()
		s.phase = PhaseError
		s.lastErr = err.Error()
		s.mu.Unlock()
		close(s.done)
		return fmt.Errorf("send request: %w", err)
	}

	s.conn = conn
	s.mu.Lock()
	s.phase = PhasePlaying
	s.mu.Unlock()
	go s.receive()
	return nil
}

// receive is the session's single writer: it reads payload frames until
// the socket closes and feeds each one through the inference rules.
func (s *Session) receive() {
	defer close(s.done)
	for {
		s.conn.SetReadDeadline(time.Now().Add(s.timeout))
		raw, err := protocol.ReadExact(s.conn, protocol.PayloadSize)
		if err != nil {
			if s.closed.Load() {
				return
			}
			var nerr net.Error
			if errors.As(err, &nerr) && nerr.Timeout() {
				continue
			}
			s.handleClosure(err)
			return
		}
		p, err := protocol.DecodePayload(raw)
		if err != nil {
			// Soft parse failure: drop the frame, keep the stream.
			s.logger.Warn("invalid payload frame", "error", err)
			continue
		}
		s.apply(p)
	}
}

// handleClosure classifies the end of the stream. Closure with all
// requested rounds finished is the normal end of a session; anything
// else produces an error event.
func (s *Session) handleClosure(err error) {
	s.mu.Lock()
	expected := s.currentRound >= s.numRounds && s.phase == PhaseFinished
	if !expected {
		if errors.Is(err, io.EOF) {
			s.lastErr = "connection closed"
		} else {
			s.lastErr = err.Error()
		}
	}
	snap := s.snapshotLocked()
	lastErr := s.lastErr
	s.mu.Unlock()

	if expected {
		s.logger.Info("connection closed after final round")
		return
	}
	s.logger.Warn("connection lost mid-session", "error", err)
	s.outbox.Push(Event{Error: lastErr, State: snap})
}

// apply runs one decoded frame through the reconstruction rules and
// emits the post-update snapshot as an event.
//
// Card routing, applied in order with the first match winning:
//  1. finished phase + fresh non-terminal card: a new round is starting.
//  2. player hand below two cards: the card is the player's.
//  3. empty dealer hand: the dealer's visible card; dealing is complete.
//  4. waiting for a decision: a hit for the player.
//  5. dealer's turn: the dealer drew.
//  6. ambiguous: dealer if the dealer has cards, else player.
//
// A terminal result without a card is the authoritative round end. A
// terminal result with a card is a bust notification: the card lands in
// the player hand (rule 4) before the phase is finalized. Terminal
// results arriving while the phase is already dealer_turn or finished
// carry a placeholder card that belongs to no hand.
func (s *Session) apply(p protocol.Payload) {
	s.mu.Lock()

	// Rule 1: a fresh card after a finished round opens the next one.
	if s.phase == PhaseFinished && p.HasCard && p.Result == game.NotOver {
		if s.currentRound < s.numRounds {
			s.currentRound++
		}
		s.player = nil
		s.dealer = nil
		s.playerTotal = 0
		s.dealerTotal = 0
		s.roundResult = ""
		s.phase = PhasePlaying
	}

	// A terminal result after the dealer has played carries a filler
	// card for frame-size reasons only. A bust card, by contrast,
	// arrives while the phase is still waiting_decision and is real.
	finalPlaceholder := p.Result.Terminal() &&
		(s.phase == PhaseDealerTurn || s.phase == PhaseFinished)

	if p.HasCard && !finalPlaceholder {
		switch {
		case len(s.player) < 2:
			s.player.Add(p.Card)
		case len(s.dealer) == 0:
			s.dealer.Add(p.Card)
		case s.phase == PhaseWaitingDecision:
			s.player.Add(p.Card)
		case s.phase == PhaseDealerTurn:
			s.dealer.Add(p.Card)
		case len(s.player) >= 2 && len(s.dealer) >= 1:
			s.dealer.Add(p.Card)
		case len(s.dealer) > 0:
			s.dealer.Add(p.Card)
		default:
			s.player.Add(p.Card)
		}
		s.playerTotal = s.player.Total(game.Card.FlexValue)
		s.dealerTotal = s.dealer.Total(game.Card.FlexValue)
	}

	switch p.Result {
	case game.Loss:
		s.finishRoundLocked("LOSS")
	case game.Win:
		s.finishRoundLocked("WIN")
	case game.Tie:
		s.finishRoundLocked("TIE")
	case game.NotOver:
		pc, dc := len(s.player), len(s.dealer)
		switch {
		case pc == 2 && dc == 1:
			// Initial deal complete.
			s.phase = PhaseWaitingDecision
		case s.phase == PhaseWaitingDecision:
			if s.playerTotal > game.BustLimit {
				s.finishRoundLocked("LOSS")
			}
		case dc > 1:
			s.phase = PhaseDealerTurn
		case pc < 2 || dc < 1:
			s.phase = PhasePlaying
		default:
			s.phase = PhaseDealerTurn
		}
	}

	event := Event{
		Result:     p.Result,
		ResultName: resultName(p.Result),
		State:      s.snapshotLocked(),
	}
	if p.HasCard {
		event.Card = newCardInfo(p.Card)
	}
	phase := s.phase
	s.mu.Unlock()

	s.logger.Debug("frame applied",
		"result", p.Result.String(),
		"has_card", p.HasCard,
		"phase", string(phase))
	s.outbox.Push(event)
	eventsEmitted.Inc()
}

// finishRoundLocked finalizes the phase and records the outcome once.
func (s *Session) finishRoundLocked(outcome string) {
	s.phase = PhaseFinished
	s.roundResult = outcome
	switch outcome {
	case "WIN":
		s.wins++
		bridgeRounds.WithLabelValues("win").Inc()
	case "LOSS":
		s.losses++
		bridgeRounds.WithLabelValues("loss").Inc()
	case "TIE":
		s.ties++
		bridgeRounds.WithLabelValues("tie").Inc()
	}
}

func resultName(r game.Result) string {
	switch r {
	case game.NotOver:
		return "NOT_OVER"
	case game.Tie:
		return "TIE"
	case game.Loss:
		return "LOSS"
	case game.Win:
		return "WIN"
	default:
		return "UNKNOWN"
	}
}

// SendDecision writes a hit/stand frame on behalf of the web player. A
// Stand moves the phase to dealer_turn immediately; the server does not
// echo the decision back.
func (s *Session) SendDecision(decision string) error {
	if decision != protocol.DecisionHit && decision != protocol.DecisionStand {
		return fmt.Errorf("%w: %q", ErrBadDecision, decision)
	}
	if s.conn == nil {
		return ErrNotConnected
	}
	frame, err := protocol.EncodeDecision(decision)
	if err != nil {
		return err
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.timeout))
	if _, err := s.conn.Write(frame); err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return fmt.Errorf("send decision: %w", err)
	}
	if decision == protocol.DecisionStand {
		s.mu.Lock()
		s.phase = PhaseDealerTurn
		s.mu.Unlock()
	}
	return nil
}

// Snapshot returns a copy of the reconstructed state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		SessionID:     s.id,
		GameState:     s.phase,
		CurrentRound:  s.currentRound,
		NumRounds:     s.numRounds,
		PlayerHand:    handInfo(s.player),
		DealerHand:    handInfo(s.dealer),
		PlayerTotal:   s.playerTotal,
		DealerTotal:   s.dealerTotal,
		RoundResult:   s.roundResult,
		SessionWins:   s.wins,
		SessionLosses: s.losses,
		SessionTies:   s.ties,
		ErrorMessage:  s.lastErr,
	}
}

func handInfo(h game.Hand) []CardInfo {
	out := make([]CardInfo, len(h))
	for i, c := range h {
		out[i] = *newCardInfo(c)
	}
	return out
}

// Close shuts the game connection. The receiver goroutine observes the
// closure and exits; waiting on Done distinguishes an in-flight read
// from a reclaimed session.
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	if s.conn != nil {
		s.conn.Close()
	}
}
