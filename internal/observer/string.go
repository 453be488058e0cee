package observer

import (
	"fmt"
	"strings"

	"github.com/bastiscode/wizard-spiel/internal/cards"
	"github.com/bastiscode/wizard-spiel/internal/round"
)

// ObservationString renders the current-state view for player as a compact,
// human-readable line: seat, current player, round, N, guesses, tricks so
// far, phase, current-table contents with players, hand, trump, and the
// legal actions at this state.
func (s Spec) ObservationString(r *round.Round, player int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "p%d|current_player=%d|round=%d|n=%d|phase=%s", player, r.CurrentPlayer(), r.RoundNr(), s.NumPlayers, r.Phase())
	fmt.Fprintf(&b, "|trump=%s|hand=%s|guesses=%s|tricks=%s", trumpLabel(r), handLabel(r, player), guessesLabel(r, s.NumPlayers), tricksLabel(r, s.NumPlayers))
	fmt.Fprintf(&b, "|table=%s|legal_actions=%s", tableLabel(r), legalActionsLabel(r, player))
	return b.String()
}

// InformationStateString renders the full perfect-recall view for player:
// the observation line plus the complete play history for the round.
func (s Spec) InformationStateString(r *round.Round, player int) string {
	return s.ObservationString(r, player) + "|history=" + historyLabel(r)
}

func trumpLabel(r *round.Round) string {
	if trump, set := r.Trump(); set {
		return trump.String()
	}
	return "?"
}

func handLabel(r *round.Round, player int) string {
	indices := r.Hand(player).DistinctIndices()
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = cards.FromIndex(idx).String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func guessesLabel(r *round.Round, n int) string {
	parts := make([]string, n)
	for p := 0; p < n; p++ {
		if g, set := r.Guessed(p); set {
			parts[p] = fmt.Sprintf("%d", g)
		} else {
			parts[p] = "-"
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func tricksLabel(r *round.Round, n int) string {
	parts := make([]string, n)
	for p := 0; p < n; p++ {
		parts[p] = fmt.Sprintf("%d", r.Tricks(p))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func tableLabel(r *round.Round) string {
	plays := r.Table()
	parts := make([]string, len(plays))
	for i, pl := range plays {
		parts[i] = fmt.Sprintf("p%d:%s", pl.Player, pl.Card.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func historyLabel(r *round.Round) string {
	plays := r.HistoryPlayed()
	parts := make([]string, len(plays))
	for i, pl := range plays {
		parts[i] = fmt.Sprintf("p%d:%s", pl.Player, pl.Card.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// legalActionsLabel lists the legal actions at this state, but only from the
// viewpoint of the player about to act: showing another seat's real legal
// actions (derived from their actual hand) would leak hidden information
// about a hand the requesting player cannot see, and would make the
// observation string depend on information that resampling must not be
// able to change from the requester's point of view.
func legalActionsLabel(r *round.Round, player int) string {
	if r.CurrentPlayer() != player {
		return "[]"
	}
	actions := r.LegalActions()
	parts := make([]string, len(actions))
	for i, a := range actions {
		switch act := a.(type) {
		case round.ChanceDeal:
			parts[i] = cards.FromIndex(act.CardIndex).String()
		case round.Guess:
			parts[i] = fmt.Sprintf("%d", act.N)
		case round.Play:
			parts[i] = cards.FromIndex(act.CardIndex).String()
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}
