package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/t-rays/Blackijecky/internal/config"
	"github.com/t-rays/Blackijecky/pkg/game"
	"github.com/t-rays/Blackijecky/pkg/protocol"
)

// Round failure sentinel. Any frame outside the expected sequence or a
// short read is a hard round failure, not recoverable mid-round.
var ErrRoundFailed = errors.New("client: round failed")

// Tally counts round outcomes from the client's perspective.
type Tally struct {
	Wins   int
	Losses int
	Ties   int
	Rounds int
}

// WinRate returns the percentage of rounds won.
func (t Tally) WinRate() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Rounds) * 100
}

func (t *Tally) add(r game.Result) {
	t.Rounds++
	switch r {
	case game.Win:
		t.Wins++
	case game.Loss:
		t.Losses++
	case game.Tie:
		t.Ties++
	}
}

// Session plays rounds against a discovered server. It consumes frames
// in the exact fixed sequence the server produces them and drives
// decisions from its policy. Totals use the flexible valuation (Ace=1).
type Session struct {
	name     string
	timeout  time.Duration
	policy   Policy
	reporter Reporter
	logger   *slog.Logger

	lifetime Tally
}

// NewSession creates a session configured for the given client role.
func NewSession(cfg config.Client) *Session {
	return &Session{
		name:     cfg.Name,
		timeout:  cfg.SessionTimeout,
		policy:   FixedPolicy,
		reporter: nopReporter{},
		logger:   slog.Default().With("component", "client"),
	}
}

// SetReporter installs a presentation sink for round-by-round progress.
func (s *Session) SetReporter(r Reporter) {
	if r == nil {
		r = nopReporter{}
	}
	s.reporter = r
}

// SetPolicy overrides the decision policy.
func (s *Session) SetPolicy(p Policy) {
	if p != nil {
		s.policy = p
	}
}

// Lifetime returns the running tally across all sessions played.
func (s *Session) Lifetime() Tally {
	return s.lifetime
}

// Play connects to the server, sends the request frame once, and plays
// the given number of rounds. It returns the session tally; a mid-round
// failure returns the rounds resolved so far along with the error.
func (s *Session) Play(ctx context.Context, addr string, rounds uint8) (Tally, error) {
	dialer := net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return Tally{}, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	s.logger.Info("connected", "addr", addr, "rounds", rounds)

	conn.SetWriteDeadline(time.Now().Add(s.timeout))
	if _, err := conn.Write(protocol.EncodeRequest(protocol.Request{
		NumRounds: rounds,
		Name:      s.name,
	})); err != nil {
		return Tally{}, fmt.Errorf("send request: %w", err)
	}

	var tally Tally
	for round := 1; round <= int(rounds); round++ {
		s.reporter.RoundStart(round, int(rounds))
		result, err := s.playRound(conn)
		if err != nil {
			s.lifetime = addTally(s.lifetime, tally)
			return tally, fmt.Errorf("round %d: %w", round, err)
		}
		tally.add(result)
		s.reporter.RoundResult(result)
	}

	s.lifetime = addTally(s.lifetime, tally)
	s.reporter.SessionDone(tally, s.lifetime)
	return tally, nil
}

func addTally(a, b Tally) Tally {
	return Tally{
		Wins:   a.Wins + b.Wins,
		Losses: a.Losses + b.Losses,
		Ties:   a.Ties + b.Ties,
		Rounds: a.Rounds + b.Rounds,
	}
}

// playRound consumes one round's frame sequence: three initial cards,
// decision/card pairs while hitting, then the dealer's cards and the
// final result frame.
func (s *Session) playRound(conn net.Conn) (game.Result, error) {
	var player, dealer game.Hand

	// Initial deal: two player cards, then the dealer's visible card.
	for i := 0; i < 3; i++ {
		p, err := s.readPayload(conn)
		if err != nil {
			return game.NotOver, err
		}
		if !p.HasCard {
			return game.NotOver, fmt.Errorf("%w: initial frame without card", ErrRoundFailed)
		}
		if i < 2 {
			player.Add(p.Card)
			s.reporter.PlayerCard(p.Card, player.Total(game.Card.FlexValue))
		} else {
			dealer.Add(p.Card)
			s.reporter.DealerCard(p.Card, false)
		}
	}

	// Player's turn.
	for {
		total := player.Total(game.Card.FlexValue)
		decision := s.policy(total, dealer[0])
		s.reporter.Decision(decision, total)
		if err := s.writeDecision(conn, decision); err != nil {
			return game.NotOver, err
		}
		if decision == protocol.DecisionStand {
			break
		}

		p, err := s.readPayload(conn)
		if err != nil {
			return game.NotOver, err
		}
		if p.HasCard {
			player.Add(p.Card)
			s.reporter.PlayerCard(p.Card, player.Total(game.Card.FlexValue))
		}
		if p.Result == game.Loss {
			// Bust: terminal, the dealer's turn never happens.
			s.reporter.Bust(player.Total(game.Card.FlexValue))
			return game.Loss, nil
		}
	}

	// Dealer's turn: revealed hole card, zero or more draws, then the
	// final result frame whose card field is a placeholder.
	for {
		p, err := s.readPayload(conn)
		if err != nil {
			return game.NotOver, err
		}
		if p.Result != game.NotOver {
			if !p.Result.Terminal() {
				return game.NotOver, fmt.Errorf("%w: unexpected result code %d", ErrRoundFailed, p.Result)
			}
			s.reporter.FinalTotals(player.Total(game.Card.FlexValue), dealer.Total(game.Card.FlexValue))
			return p.Result, nil
		}
		if p.HasCard {
			dealer.Add(p.Card)
			s.reporter.DealerCard(p.Card, true)
		}
	}
}

func (s *Session) readPayload(conn net.Conn) (protocol.Payload, error) {
	conn.SetReadDeadline(time.Now().Add(s.timeout))
	raw, err := protocol.ReadExact(conn, protocol.PayloadSize)
	if err != nil {
		return protocol.Payload{}, fmt.Errorf("%w: %v", ErrRoundFailed, err)
	}
	p, err := protocol.DecodePayload(raw)
	if err != nil {
		return protocol.Payload{}, fmt.Errorf("%w: %v", ErrRoundFailed, err)
	}
	return p, nil
}

func (s *Session) writeDecision(conn net.Conn, decision string) error {
	frame, err := protocol.EncodeDecision(decision)
	if err != nil {
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(s.timeout))
	if _, err := conn.Write(frame); err != nil {
		return fmt.Errorf("%w: %v", ErrRoundFailed, err)
	}
	return nil
}
