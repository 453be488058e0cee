// Package observer renders a round.Round into the two views a sequential
// game framework needs per player: a compact current-state Observation, and
// a full perfect-recall InformationState. Both come in a string form (for
// logging/debugging) and a dense []float32 tensor form (for function
// approximation).
//
// Neither view ever touches another player's hand: only the requesting
// player's own Hand(player) feeds the private-info section. Trump, guesses,
// tricks won, and the current/past trick tables are legitimately public in
// Wizard and are shared by every player's view.
package observer

import (
	"github.com/bastiscode/wizard-spiel/internal/cards"
)

// Spec fixes the dimensions a Game declares once at construction: NumPlayers
// and RoundNr are constant for the lifetime of a Game, so tensor shapes can
// be computed without inspecting any particular Round.
type Spec struct {
	NumPlayers int
	RoundNr    int
}

// numTrumpColors is the count of ordinary suits a trump can be: the trump
// one-hot is an all-zero vector when no trump color is in play, never a
// fifth "no trump" slot.
const numTrumpColors = 4

// ObservationShape returns the fixed tensor shape for Spec.ObservationTensor.
func (s Spec) ObservationShape() []int {
	return []int{s.observationLen()}
}

// commonLen is the length of the fields shared by both views: one-hot seat,
// private hand counts, round number, trump one-hot, guessed tricks.
func (s Spec) commonLen() int {
	n := s.NumPlayers
	return n + // one-hot seat
		cards.NumIdentities + // own hand counts
		1 + // round number
		numTrumpColors + // trump one-hot (zero vector: no trump)
		n // guessed tricks
}

func (s Spec) observationLen() int {
	n := s.NumPlayers
	return s.commonLen() +
		n + // current tricks
		n*cards.NumIdentities // current table, one row per seat
}

// InformationStateShape returns the fixed tensor shape for
// Spec.InformationStateTensor: every Observation field (the perfect-recall
// view is at least as informative as the Markov one) plus move_number and a
// zero-padded, fixed-length sequence recording every card played so far in
// the round, in play order, each row one-hot over the 54 identities.
func (s Spec) InformationStateShape() []int {
	maxPlays := s.NumPlayers * s.RoundNr
	return []int{s.observationLen() + 1 + maxPlays*cards.NumIdentities}
}

func colorIndex(c cards.Color) int {
	for i, col := range cards.Colors {
		if col == c {
			return i
		}
	}
	return -1 // White ("no trump"): no slot, one-hot stays all-zero
}
