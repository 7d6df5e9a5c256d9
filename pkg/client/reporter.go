package client

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/t-rays/Blackijecky/pkg/game"
)

// Reporter receives round-by-round progress for presentation. The
// session calls it from its own goroutine only.
type Reporter interface {
	RoundStart(round, total int)
	PlayerCard(c game.Card, runningTotal int)
	DealerCard(c game.Card, drawn bool)
	Decision(decision string, runningTotal int)
	Bust(total int)
	FinalTotals(playerTotal, dealerTotal int)
	RoundResult(result game.Result)
	SessionDone(session Tally, lifetime Tally)
}

type nopReporter struct{}

func (nopReporter) RoundStart(int, int)        {}
func (nopReporter) PlayerCard(game.Card, int)  {}
func (nopReporter) DealerCard(game.Card, bool) {}
func (nopReporter) Decision(string, int)       {}
func (nopReporter) Bust(int)                   {}
func (nopReporter) FinalTotals(int, int)       {}
func (nopReporter) RoundResult(game.Result)    {}
func (nopReporter) SessionDone(Tally, Tally)   {}

// TermReporter renders progress to the terminal with pterm.
type TermReporter struct{}

func (TermReporter) RoundStart(round, total int) {
	pterm.DefaultSection.Printfln("Round %d/%d", round, total)
}

func (TermReporter) PlayerCard(c game.Card, runningTotal int) {
	pterm.Printfln("Your card: %s  (total %d)", pterm.LightCyan(c.String()), runningTotal)
}

func (TermReporter) DealerCard(c game.Card, drawn bool) {
	if drawn {
		pterm.Printfln("Dealer draws: %s", pterm.LightMagenta(c.String()))
	} else {
		pterm.Printfln("Dealer shows: %s", pterm.LightMagenta(c.String()))
	}
}

func (TermReporter) Decision(decision string, runningTotal int) {
	pterm.Printfln("Decision at %d: %s", runningTotal, pterm.Bold.Sprint(decision))
}

func (TermReporter) Bust(total int) {
	pterm.Warning.Printfln("BUST with %d", total)
}

func (TermReporter) FinalTotals(playerTotal, dealerTotal int) {
	pterm.Printfln("Final totals: you %d, dealer %d", playerTotal, dealerTotal)
}

func (TermReporter) RoundResult(result game.Result) {
	switch result {
	case game.Win:
		pterm.Success.Println("You WIN this round!")
	case game.Loss:
		pterm.Error.Println("You lose this round.")
	case game.Tie:
		pterm.Info.Println("It's a tie.")
	}
}

func (TermReporter) SessionDone(session Tally, lifetime Tally) {
	box := pterm.DefaultBox.WithTitle(pterm.LightYellow("SESSION")).WithTitleTopCenter()
	box.Println(fmt.Sprintf(
		"Played %d rounds, win rate %.1f%%\nSession: %dW-%dL-%dT\nOverall: %dW-%dL-%dT (%d total)",
		session.Rounds, session.WinRate(),
		session.Wins, session.Losses, session.Ties,
		lifetime.Wins, lifetime.Losses, lifetime.Ties, lifetime.Rounds,
	))
}
