package bridge

import (
	"sync"
	"testing"
	"time"

	"github.com/t-rays/Blackijecky/pkg/game"
)

func TestOutboxFIFO(t *testing.T) {
	o := newOutbox()
	for i := 1; i <= 3; i++ {
		o.Push(Event{State: Snapshot{CurrentRound: i}})
	}
	for i := 1; i <= 3; i++ {
		e, ok := o.Poll()
		if !ok || e.State.CurrentRound != i {
			t.Fatalf("poll %d = (%+v, %v)", i, e.State.CurrentRound, ok)
		}
	}
	if _, ok := o.Poll(); ok {
		t.Error("poll on empty outbox reported an event")
	}
}

func TestOutboxDropsOldestWhenFull(t *testing.T) {
	o := newOutbox()
	for i := 0; i < outboxSize+5; i++ {
		o.Push(Event{State: Snapshot{CurrentRound: i}})
	}
	if got := o.Len(); got != outboxSize {
		t.Fatalf("length = %d, want %d", got, outboxSize)
	}
	e, ok := o.Poll()
	if !ok || e.State.CurrentRound != 5 {
		t.Errorf("head = %d, want 5 (oldest five dropped)", e.State.CurrentRound)
	}
}

func TestOutboxNextBlocksAndTimesOut(t *testing.T) {
	o := newOutbox()
	if _, ok := o.Next(10 * time.Millisecond); ok {
		t.Error("Next on empty outbox returned an event")
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		o.Push(Event{Result: game.Win})
	}()
	e, ok := o.Next(time.Second)
	if !ok || e.Result != game.Win {
		t.Errorf("Next = (%v, %v), want queued win event", e.Result, ok)
	}
}

func TestOutboxConcurrentProducers(t *testing.T) {
	o := newOutbox()
	const producers, perProducer = 20, 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				o.Push(Event{Result: game.NotOver})
			}
		}()
	}
	wg.Wait()

	// Within capacity, nothing may be lost.
	if got := o.Len(); got != producers*perProducer {
		t.Errorf("queued = %d, want %d", got, producers*perProducer)
	}
}
