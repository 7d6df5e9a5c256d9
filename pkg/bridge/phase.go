package bridge

// Phase is the bridge's inferred stage of a round, derived without
// server-side ground truth.
type Phase string

const (
	PhaseDisconnected Phase = "disconnected"

	// PhaseConnecting completes the published phase set for consumers;
	// Connect moves straight from disconnected to playing, so snapshots
	// never carry it today.
	PhaseConnecting      Phase = "connecting"
	PhasePlaying         Phase = "playing"
	PhaseWaitingDecision Phase = "waiting_decision"
	PhaseDealerTurn      Phase = "dealer_turn"
	PhaseFinished        Phase = "finished"
	PhaseError           Phase = "error"
)
