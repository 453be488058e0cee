package wizard

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bastiscode/wizard-spiel/internal/cards"
	"github.com/bastiscode/wizard-spiel/internal/resample"
	"github.com/bastiscode/wizard-spiel/internal/round"
)

// State is the per-episode facade over a *round.Round. It holds a
// non-owning back-reference to the Game that created it (for action-space
// sizing and the observer.Spec), and a log of every action id applied so
// far (the acting seat is not recorded), exposed through History() and independent of what Resample needs
// (Resample reconstructs entirely from the Round's own fields).
type State struct {
	game    *Game
	round   *round.Round
	history []int
}

// ChanceOutcome pairs a chance action id with its probability.
type ChanceOutcome struct {
	Action      int
	Probability float64
}

func (s *State) CurrentPlayer() int    { return s.round.CurrentPlayer() }
func (s *State) IsTerminal() bool      { return s.round.IsTerminal() }
func (s *State) Returns() []float64    { return s.round.Returns() }
func (s *State) History() []int        { return append([]int(nil), s.history...) }
func (s *State) NumPlayers() int       { return s.game.NumPlayers() }
func (s *State) Round() *round.Round   { return s.round }

// LegalActions returns the legal encoded action ids for the current phase.
func (s *State) LegalActions() []int {
	actions := s.round.LegalActions()
	ids := make([]int, len(actions))
	for i, a := range actions {
		ids[i] = s.encodeAction(a)
	}
	return ids
}

// ChanceOutcomes returns the legal chance outcomes with probabilities,
// weighted by how many copies of each identity remain in the deck. Valid
// only while the round is Dealing.
func (s *State) ChanceOutcomes() ([]ChanceOutcome, error) {
	if _, ok := s.round.Phase().(round.DealingPhase); !ok {
		return nil, fmt.Errorf("wizard: ChanceOutcomes called outside the Dealing phase")
	}
	actions := s.round.LegalActions()
	if len(actions) == 1 {
		return []ChanceOutcome{{Action: s.encodeAction(actions[0]), Probability: 1}}, nil
	}
	total := 0
	counts := s.round.DeckCounts()
	for _, a := range actions {
		total += counts[a.(round.ChanceDeal).CardIndex]
	}
	out := make([]ChanceOutcome, len(actions))
	for i, a := range actions {
		idx := a.(round.ChanceDeal).CardIndex
		out[i] = ChanceOutcome{Action: idx, Probability: float64(counts[idx]) / float64(total)}
	}
	return out, nil
}

// ApplyAction decodes id according to the current phase and advances the
// round.
func (s *State) ApplyAction(id int) error {
	a, err := s.decodeAction(id)
	if err != nil {
		return err
	}
	if err := s.round.Apply(a); err != nil {
		return err
	}
	s.history = append(s.history, id)
	return nil
}

// ActionToString renders id as a human-readable label. player is accepted
// for interface parity with frameworks that render actions differently per
// observer, but Wizard's action labels do not depend on who is asking.
func (s *State) ActionToString(player int, id int) string {
	a, err := s.decodeAction(id)
	if err != nil {
		return fmt.Sprintf("<invalid action %d>", id)
	}
	switch v := a.(type) {
	case round.ChanceDeal:
		return "Deal" + cards.FromIndex(v.CardIndex).Label()
	case round.Guess:
		return fmt.Sprintf("Guess %d", v.N)
	case round.Play:
		return "Play" + cards.FromIndex(v.CardIndex).Label()
	default:
		return fmt.Sprintf("<unknown action %d>", id)
	}
}

// encodeAction maps a round.Action onto the shared action-id space: chance
// deals and card plays both use the 54 card-identity indices, but plays are
// shifted by GuessCount(roundNr) so they never collide with guess ids
// (which occupy [0, roundNr]).
func (s *State) encodeAction(a round.Action) int {
	switch v := a.(type) {
	case round.ChanceDeal:
		return v.CardIndex
	case round.Guess:
		return v.N
	case round.Play:
		return v.CardIndex + round.GuessCount(s.round.RoundNr())
	default:
		panic("wizard: unknown round.Action type")
	}
}

func (s *State) decodeAction(id int) (round.Action, error) {
	switch s.round.Phase().(type) {
	case round.DealingPhase:
		return round.ChanceDeal{CardIndex: id}, nil
	case round.GuessingPhase:
		return round.Guess{N: id}, nil
	case round.TrickingPhase:
		return round.Play{CardIndex: id - round.GuessCount(s.round.RoundNr())}, nil
	default:
		return nil, round.ErrTerminal
	}
}

// ObservationString renders the current-state view for player.
func (s *State) ObservationString(player int) string {
	return s.game.obs.ObservationString(s.round, player)
}

// ObservationTensor writes the current-state view for player into out,
// which must have length matching Game.ObservationShape().
func (s *State) ObservationTensor(player int, out []float32) {
	s.game.obs.ObservationTensor(s.round, player, out)
}

// InformationStateString renders the full perfect-recall view for player.
func (s *State) InformationStateString(player int) string {
	return s.game.obs.InformationStateString(s.round, player)
}

// InformationStateTensor writes the full perfect-recall view for player
// into out, which must have length matching Game.InformationStateShape().
func (s *State) InformationStateTensor(player int, out []float32) {
	s.game.obs.InformationStateTensor(s.round, player, out)
}

// ResampleFromInfostate draws a new State consistent with player's
// information state, with every other seat's hidden hand redrawn via rng.
func (s *State) ResampleFromInfostate(player int, rng *rand.Rand) (*State, error) {
	r, err := resample.Resample(s.round, player, rng)
	if err != nil {
		return nil, err
	}
	return &State{game: s.game, round: r}, nil
}

// Clone returns a deep, independent copy of s.
func (s *State) Clone() *State {
	return &State{game: s.game, round: s.round.Clone(), history: append([]int(nil), s.history...)}
}

// ToString renders a debugging dump of the full state, including every
// seat's hand: unlike Observation/InformationState, it makes no attempt to
// hide information a given player couldn't see.
func (s *State) ToString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "phase=%s trump=", s.round.Phase())
	if trump, set := s.round.Trump(); set {
		b.WriteString(trump.String())
	} else {
		b.WriteString("?")
	}
	fmt.Fprintf(&b, " lead=%d current=%d\n", s.round.Lead(), s.round.CurrentPlayer())
	for p := 0; p < s.game.NumPlayers(); p++ {
		guess := "-"
		if g, set := s.round.Guessed(p); set {
			guess = fmt.Sprintf("%d", g)
		}
		fmt.Fprintf(&b, "  p%d: hand=%v guess=%s tricks=%d\n", p, s.round.Hand(p).Cards(), guess, s.round.Tricks(p))
	}
	return b.String()
}
