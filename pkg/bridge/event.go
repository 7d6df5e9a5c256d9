package bridge

import (
	"time"

	"github.com/t-rays/Blackijecky/pkg/game"
)

// CardInfo is the JSON view of a card sent to web consumers.
type CardInfo struct {
	Rank       uint8  `json:"rank"`
	Suit       uint8  `json:"suit"`
	RankName   string `json:"rank_name"`
	SuitSymbol string `json:"suit_symbol"`
	Value      int    `json:"value"`
	Display    string `json:"display"`
}

func newCardInfo(c game.Card) *CardInfo {
	return &CardInfo{
		Rank:       c.Rank,
		Suit:       c.Suit,
		RankName:   c.RankName(),
		SuitSymbol: c.SuitSymbol(),
		Value:      c.FlexValue(),
		Display:    c.String(),
	}
}

// Snapshot is a point-in-time copy of a session's reconstructed state.
type Snapshot struct {
	SessionID     string     `json:"session_id"`
	GameState     Phase      `json:"game_state"`
	CurrentRound  int        `json:"current_round"`
	NumRounds     int        `json:"num_rounds"`
	PlayerHand    []CardInfo `json:"player_hand"`
	DealerHand    []CardInfo `json:"dealer_hand"`
	PlayerTotal   int        `json:"player_total"`
	DealerTotal   int        `json:"dealer_total"`
	RoundResult   string     `json:"round_result,omitempty"`
	SessionWins   int        `json:"session_wins"`
	SessionLosses int        `json:"session_losses"`
	SessionTies   int        `json:"session_ties"`
	ErrorMessage  string     `json:"error_message,omitempty"`
}

// Event is one reconstructed state change, carrying the post-update
// snapshot. Error events have Error set and no result name.
type Event struct {
	Result     game.Result `json:"result"`
	ResultName string      `json:"result_name,omitempty"`
	Card       *CardInfo   `json:"card"`
	Error      string      `json:"error,omitempty"`
	State      Snapshot    `json:"state"`
}

// outboxSize bounds the per-session event queue. A session produces at
// most a handful of frames per second, so consumers only ever see a full
// queue if nothing has drained it for minutes.
const outboxSize = 1024

// Outbox is the per-session FIFO event queue: one producer (the
// session's receiver goroutine), any number of polling or streaming
// consumers. Each event is delivered to exactly one consumer.
type Outbox struct {
	ch chan Event
}

func newOutbox() *Outbox {
	return &Outbox{ch: make(chan Event, outboxSize)}
}

// Push enqueues an event, dropping the oldest queued event if the queue
// is full so the producer never blocks indefinitely.
func (o *Outbox) Push(e Event) {
	for {
		select {
		case o.ch <- e:
			return
		default:
		}
		select {
		case <-o.ch:
		default:
		}
	}
}

// Poll dequeues without blocking.
func (o *Outbox) Poll() (Event, bool) {
	select {
	case e := <-o.ch:
		return e, true
	default:
		return Event{}, false
	}
}

// Next blocks up to the given duration for an event. A false return
// means the consumer should emit a keep-alive and try again.
func (o *Outbox) Next(timeout time.Duration) (Event, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case e := <-o.ch:
		return e, true
	case <-timer.C:
		return Event{}, false
	}
}

// Len returns the number of queued events.
func (o *Outbox) Len() int {
	return len(o.ch)
}
