package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/t-rays/Blackijecky/pkg/game"
)

var roundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "blackjack",
	Subsystem: "server",
	Name:      "rounds_total",
	Help:      "Resolved rounds by outcome, from the server's perspective.",
}, []string{"outcome"})

// Stats aggregates round outcomes across all client connections, from
// the server's perspective: the server wins when a client loses. A
// single mutex guards the struct; increments happen once per fully
// resolved round, never speculatively.
type Stats struct {
	mu     sync.Mutex
	games  uint64
	wins   uint64
	losses uint64
	ties   uint64
}

// StatsSnapshot is a point-in-time copy of the aggregate counters.
type StatsSnapshot struct {
	Games  uint64
	Wins   uint64
	Losses uint64
	Ties   uint64
}

// RecordRound tallies one resolved round. The result is the client's, as
// sent on the wire; it is inverted into the server's ledger here.
func (s *Stats) RecordRound(clientResult game.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games++
	switch clientResult {
	case game.Loss:
		s.wins++
		roundsTotal.WithLabelValues("win").Inc()
	case game.Win:
		s.losses++
		roundsTotal.WithLabelValues("loss").Inc()
	case game.Tie:
		s.ties++
		roundsTotal.WithLabelValues("tie").Inc()
	}
}

// Snapshot returns a copy of the current totals.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatsSnapshot{Games: s.games, Wins: s.wins, Losses: s.losses, Ties: s.ties}
}
