package bot

import (
	"sort"

	"github.com/bastiscode/wizard-spiel/internal/cards"
	"github.com/bastiscode/wizard-spiel/internal/round"
	"github.com/bastiscode/wizard-spiel/internal/wizard"
)

// HeuristicPolicy picks bids and plays from hand-strength heuristics:
// Wizards, trump cards and void colors raise expected trick count (Jesters
// add nothing to it), and once a player has met their bid they switch from playing to win tricks to
// playing to avoid them.
type HeuristicPolicy struct{}

type handAnalysis struct {
	wizardCount int
	jesterCount int
	trumpCount  int
	voidColors  int
}

func analyzeHand(hand *cards.Hand, trump cards.Color) handAnalysis {
	var a handAnalysis
	colorCounts := map[cards.Color]int{}
	for _, c := range hand.Cards() {
		switch {
		case c.IsWizard():
			a.wizardCount++
		case c.IsJester():
			a.jesterCount++
		default:
			colorCounts[c.Color]++
			if c.IsTrump(trump) {
				a.trumpCount++
			}
		}
	}
	for _, col := range cards.Colors {
		if col != trump && colorCounts[col] == 0 {
			a.voidColors++
		}
	}
	return a
}

// expectedTricks estimates how many tricks a hand is likely to take: every
// Wizard is nearly a guaranteed trick, trump cards and void colors (which
// let a hand ruff in later) contribute partial credit, capped at hand size.
func expectedTricks(hand *cards.Hand, trump cards.Color) int {
	a := analyzeHand(hand, trump)
	est := a.wizardCount + (a.trumpCount+a.voidColors)/2
	if est > hand.Size() {
		est = hand.Size()
	}
	return est
}

// SelectAction returns a guess or a play, depending on the round's current
// phase. It must not be called at a chance node (dealing): chance outcomes
// are the host framework's concern, not a player policy's.
func (HeuristicPolicy) SelectAction(st *wizard.State) int {
	r := st.Round()
	switch r.Phase().(type) {
	case round.GuessingPhase:
		return selectGuess(st, r)
	case round.TrickingPhase:
		return selectPlay(st, r)
	default:
		panic("bot: SelectAction called outside Guessing/Tricking")
	}
}

func selectGuess(st *wizard.State, r *round.Round) int {
	hand := r.Hand(r.CurrentPlayer())
	target := expectedTricks(hand, r.TrumpColor())

	legal := st.LegalActions()
	best, bestDist := legal[0], -1
	for _, id := range legal {
		dist := id - target
		if dist < 0 {
			dist = -dist
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = id, dist
		}
	}
	return best
}

func selectPlay(st *wizard.State, r *round.Round) int {
	legal := append([]int(nil), st.LegalActions()...)
	guessOffset := round.GuessCount(r.RoundNr())
	trump := r.TrumpColor()

	sort.Slice(legal, func(i, j int) bool {
		ci := cards.FromIndex(legal[i] - guessOffset)
		cj := cards.FromIndex(legal[j] - guessOffset)
		return playStrength(ci, trump) > playStrength(cj, trump)
	})

	player := r.CurrentPlayer()
	guessed, _ := r.Guessed(player)
	if r.Tricks(player) < guessed {
		return legal[0] // behind on the bid: play to win
	}
	return legal[len(legal)-1] // bid already met: play to lose
}

func playStrength(c cards.Card, trump cards.Color) int {
	switch {
	case c.IsWizard():
		return 1000
	case c.IsJester():
		return -1000
	case c.IsTrump(trump):
		return 500 + c.Value
	default:
		return c.Value
	}
}
