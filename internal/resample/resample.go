// Package resample reconstructs an alternate, equally-likely world
// consistent with one player's information state: that player's own hand
// and every publicly known fact (trump, guesses, tricks, play history) stay
// fixed, while every other seat's still-hidden hand is redrawn from the
// cards that player cannot distinguish between (the undealt deck and the
// other seats' hidden cards, pooled together).
package resample

import (
	"errors"
	"math/rand"

	"github.com/bastiscode/wizard-spiel/internal/cards"
	"github.com/bastiscode/wizard-spiel/internal/round"
)

// ErrNotResamplable is returned when resampling is requested before the
// round has left the Dealing phase: there is no settled information state
// to resample from while the chance actor is still dealing hands.
var ErrNotResamplable = errors.New("resample: round is still in the Dealing phase")

// Resample builds a new *round.Round that is indistinguishable from r in
// player's information state, but with every other seat's hidden hand
// redrawn via rng. The result is a fresh, independent Round; r is untouched.
func Resample(r *round.Round, player int, rng *rand.Rand) (*round.Round, error) {
	if _, dealing := r.Phase().(round.DealingPhase); dealing {
		return nil, ErrNotResamplable
	}

	n := r.NumPlayers()
	poolCounts := r.DeckCounts()
	for p := 0; p < n; p++ {
		if p == player {
			continue
		}
		hc := r.Hand(p).CountsArray()
		for i, c := range hc {
			poolCounts[i] += c
		}
	}

	pool := make([]int, 0, r.DeckRemaining()+sumOtherHandSizes(r, player))
	for idx, c := range poolCounts {
		for i := 0; i < c; i++ {
			pool = append(pool, idx)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	hiddenHand := make(map[int][]int, n)
	cursor := 0
	for p := 0; p < n; p++ {
		if p == player {
			continue
		}
		size := r.Hand(p).Size()
		hiddenHand[p] = pool[cursor : cursor+size]
		cursor += size
	}
	out, err := round.New(n, r.RoundNr(), r.StartPlayer(), r.RewardMode())
	if err != nil {
		return nil, err
	}

	dealSets := make([][]int, n)
	for p := 0; p < n; p++ {
		if p == player {
			dealSets[p] = append(alreadyPlayedBy(r, p), cardIndices(r.Hand(player).Cards())...)
			continue
		}
		dealSets[p] = append(alreadyPlayedBy(r, p), hiddenHand[p]...)
	}

	if err := replayDeal(out, dealSets); err != nil {
		return nil, err
	}
	if err := replayTrump(out, r); err != nil {
		return nil, err
	}
	if err := replayGuesses(out, r); err != nil {
		return nil, err
	}
	if err := replayPlays(out, r); err != nil {
		if errors.Is(err, round.ErrIllegalPlay) {
			// The draw gave some seat a card of a color that seat has shown
			// it does not hold; reject the draw and sample again.
			return Resample(r, player, rng)
		}
		return nil, err
	}

	return out, nil
}

func sumOtherHandSizes(r *round.Round, player int) int {
	total := 0
	for p := 0; p < r.NumPlayers(); p++ {
		if p != player {
			total += r.Hand(p).Size()
		}
	}
	return total
}

func alreadyPlayedBy(r *round.Round, player int) []int {
	indices := make([]int, 0)
	for _, play := range r.HistoryPlayed() {
		if play.Player == player {
			indices = append(indices, play.Card.ToIndex())
		}
	}
	for _, play := range r.Table() {
		if play.Player == player {
			indices = append(indices, play.Card.ToIndex())
		}
	}
	return indices
}

func cardIndices(cs []cards.Card) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.ToIndex()
	}
	return out
}

// replayDeal deals dealSets[p] cards to each seat p in the same round-robin
// order New's own chance actor uses, so the resulting Round's dealt-count
// bookkeeping matches a round freshly dealt to this exact hand composition.
func replayDeal(out *round.Round, dealSets [][]int) error {
	n := len(dealSets)
	cursors := make([]int, n)
	roundNr := len(dealSets[0])
	for i := 0; i < roundNr; i++ {
		for p := 0; p < n; p++ {
			idx := dealSets[p][cursors[p]]
			cursors[p]++
			if err := out.Apply(round.ChanceDeal{CardIndex: idx}); err != nil {
				return err
			}
		}
	}
	return nil
}

func replayTrump(out *round.Round, original *round.Round) error {
	trump, set := original.Trump()
	if !set {
		return nil
	}
	idx := trump.ToIndex()
	if out.DeckRemaining() == 0 {
		idx = 0 // forced no-trump, mirrors the original's exhausted deck
	}
	return out.Apply(round.ChanceDeal{CardIndex: idx})
}

func replayGuesses(out *round.Round, original *round.Round) error {
	n := original.NumPlayers()
	turn := out.StartPlayer()
	stop := (out.StartPlayer() - 1 + n) % n
	for {
		g, set := original.Guessed(turn)
		if !set {
			break
		}
		if err := out.Apply(round.Guess{N: g}); err != nil {
			return err
		}
		if turn == stop {
			break
		}
		turn = (turn + 1) % n
	}
	return nil
}

func replayPlays(out *round.Round, original *round.Round) error {
	plays := append(original.HistoryPlayed(), original.Table()...)
	for _, play := range plays {
		if err := out.Apply(round.Play{CardIndex: play.Card.ToIndex()}); err != nil {
			return err
		}
	}
	return nil
}
