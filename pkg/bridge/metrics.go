package bridge

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blackjack",
		Subsystem: "bridge",
		Name:      "sessions_created_total",
		Help:      "Bridge sessions created.",
	})

	eventsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blackjack",
		Subsystem: "bridge",
		Name:      "events_emitted_total",
		Help:      "Reconstructed state-change events pushed to session outboxes.",
	})

	bridgeRounds = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blackjack",
		Subsystem: "bridge",
		Name:      "rounds_total",
		Help:      "Rounds observed to finish, by outcome from the web player's perspective.",
	}, []string{"outcome"})
)
