package server

import (
	"sync"
	"testing"

	"github.com/t-rays/Blackijecky/pkg/game"
)

func TestStatsRecordsFromServerPerspective(t *testing.T) {
	var s Stats
	s.RecordRound(game.Loss) // client lost, server won
	s.RecordRound(game.Win)
	s.RecordRound(game.Tie)
	s.RecordRound(game.Loss)

	snap := s.Snapshot()
	if snap.Games != 4 {
		t.Errorf("games = %d, want 4", snap.Games)
	}
	if snap.Wins != 2 || snap.Losses != 1 || snap.Ties != 1 {
		t.Errorf("snapshot = %+v, want 2W-1L-1T", snap)
	}
}

func TestStatsConcurrentIncrements(t *testing.T) {
	var s Stats
	const workers = 8
	const perWorker = 500

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(result game.Result) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				s.RecordRound(result)
			}
		}([]game.Result{game.Win, game.Loss, game.Tie, game.Win}[i%4])
	}
	wg.Wait()

	snap := s.Snapshot()
	if snap.Games != workers*perWorker {
		t.Errorf("games = %d, want %d", snap.Games, workers*perWorker)
	}
	if snap.Wins+snap.Losses+snap.Ties != snap.Games {
		t.Errorf("counters do not sum to games: %+v", snap)
	}
}
