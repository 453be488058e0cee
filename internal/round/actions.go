package round

import (
	"sort"

	"github.com/bastiscode/wizard-spiel/internal/cards"
)

// Action is the semantic (not wire-encoded) action type accepted by
// Round.Apply. Wire-encoding (card_index + offset) is a
// concern of the Public State facade (internal/wizard), not of Round itself.
type Action interface {
	isRoundAction()
}

// ChanceDeal deals the card at CardIndex: either a hand card during Dealing,
// or the trump card once N*R hand cards have been dealt.
type ChanceDeal struct {
	CardIndex int
}

// Guess records the current bidder's bid.
type Guess struct {
	N int
}

// Play plays the card at CardIndex from the current player's hand.
type Play struct {
	CardIndex int
}

func (ChanceDeal) isRoundAction() {}
func (Guess) isRoundAction()      {}
func (Play) isRoundAction()       {}

// LegalActions returns the legal actions for the current phase, as semantic
// Action values.
func (r *Round) LegalActions() []Action {
	switch r.phase.(type) {
	case DealingPhase:
		return r.legalDeals()
	case GuessingPhase:
		return r.legalGuesses()
	case TrickingPhase:
		return r.legalPlays()
	default: // FinalPhase
		return nil
	}
}

func (r *Round) legalDeals() []Action {
	phase := r.phase.(DealingPhase)
	handsTarget := r.numPlayers * r.roundNr

	if phase.DealtCount >= handsTarget && r.deck.Remaining() == 0 {
		// Final round, fully dealt: the only legal chance outcome is the
		// forced Jester meaning "no trump".
		return []Action{ChanceDeal{CardIndex: 0}}
	}

	counts := r.deck.Counts()
	actions := make([]Action, 0, cards.NumIdentities)
	for idx, c := range counts {
		if c > 0 {
			actions = append(actions, ChanceDeal{CardIndex: idx})
		}
	}
	return actions
}

func (r *Round) legalGuesses() []Action {
	partialSum := 0
	for p, set := range r.guessSet {
		if set {
			partialSum += r.guessed[p]
		}
	}
	excluded := -1
	if r.turn == r.stopTurn {
		excluded = r.roundNr - partialSum
	}

	actions := make([]Action, 0, r.roundNr+1)
	for n := 0; n <= r.roundNr; n++ {
		if n == excluded {
			continue
		}
		actions = append(actions, Guess{N: n})
	}
	return actions
}

func (r *Round) legalPlays() []Action {
	hand := r.hands[r.turn]
	leadColor, hasLead := r.leadColor()

	var indices []int
	if !hasLead || !hand.HasColor(leadColor) {
		indices = hand.DistinctIndices()
	} else {
		indices = append(hand.IndicesOfColor(leadColor), hand.IndicesOfColor(cards.White)...)
		indices = dedupSorted(indices)
	}

	actions := make([]Action, len(indices))
	for i, idx := range indices {
		actions[i] = Play{CardIndex: idx}
	}
	return actions
}

// leadColor scans the current table for the first non-Jester card and
// returns its color. ok is false if the table is empty or every card played
// so far is a Jester.
func (r *Round) leadColor() (color cards.Color, ok bool) {
	for _, played := range r.table {
		if !played.Card.IsJester() {
			return played.Card.Color, true
		}
	}
	return cards.White, false
}

func dedupSorted(indices []int) []int {
	sort.Ints(indices)
	out := indices[:0]
	var last int = -1
	for _, idx := range indices {
		if idx != last {
			out = append(out, idx)
			last = idx
		}
	}
	return out
}
