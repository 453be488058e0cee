package round

import (
	"github.com/rs/zerolog/log"

	"github.com/bastiscode/wizard-spiel/internal/cards"
)

// Apply advances the round by one action. The action's concrete type must
// match the current phase's accepted class (ChanceDeal during Dealing, Guess
// during Guessing, Play during Tricking) and must be a member of
// LegalActions(); any mismatch returns an error rather than silently
// correcting the caller's mistake.
func (r *Round) Apply(a Action) error {
	if err := r.applyDispatch(a); err != nil {
		return err
	}
	r.moveCount++
	return nil
}

func (r *Round) applyDispatch(a Action) error {
	if r.IsTerminal() {
		log.Warn().Msg("round: apply_action called on a terminal round")
		return ErrTerminal
	}
	switch phase := r.phase.(type) {
	case DealingPhase:
		da, ok := a.(ChanceDeal)
		if !ok {
			log.Warn().Str("phase", "Dealing").Msg("round: wrong action class")
			return ErrWrongActionClass
		}
		return r.applyDeal(phase, da)
	case GuessingPhase:
		ga, ok := a.(Guess)
		if !ok {
			log.Warn().Str("phase", "Guessing").Msg("round: wrong action class")
			return ErrWrongActionClass
		}
		return r.applyGuess(ga)
	case TrickingPhase:
		pa, ok := a.(Play)
		if !ok {
			log.Warn().Str("phase", "Tricking").Msg("round: wrong action class")
			return ErrWrongActionClass
		}
		return r.applyPlay(pa)
	default:
		log.Error().Msg("round: apply_action reached an unhandled phase")
		return ErrTerminal
	}
}

func (r *Round) applyDeal(phase DealingPhase, a ChanceDeal) error {
	handsTarget := r.numPlayers * r.roundNr

	if phase.DealtCount < handsTarget {
		if r.deck.Count(a.CardIndex) <= 0 {
			log.Warn().Int("cardIndex", a.CardIndex).Msg("round: dealt a card with zero deck count")
			return ErrZeroDeckCount
		}
		card, err := r.deck.Deal(a.CardIndex)
		if err != nil {
			return err
		}
		recipient := phase.DealtCount % r.numPlayers
		r.hands[recipient].Add(card)
		r.phase = DealingPhase{DealtCount: phase.DealtCount + 1}
		return nil
	}

	// Trump deal. A fully exhausted deck (only possible when N divides 60
	// exactly at roundNr == RMax(N)) forces "no trump" without physically
	// dealing from an empty deck.
	if r.deck.Remaining() == 0 {
		if a.CardIndex != 0 {
			log.Warn().Int("cardIndex", a.CardIndex).Msg("round: exhausted deck forces Jester trump, got a different card index")
			return ErrZeroDeckCount
		}
		r.trump = cards.Jester()
		r.trumpSet = true
	} else {
		if r.deck.Count(a.CardIndex) <= 0 {
			log.Warn().Int("cardIndex", a.CardIndex).Msg("round: dealt trump from a card with zero deck count")
			return ErrZeroDeckCount
		}
		card, err := r.deck.Deal(a.CardIndex)
		if err != nil {
			return err
		}
		r.trump = card
		r.trumpSet = true
	}

	r.phase = GuessingPhase{}
	r.lead = r.startPlayer
	r.turn = r.startPlayer
	r.stopTurn = (r.startPlayer - 1 + r.numPlayers) % r.numPlayers
	return nil
}

func (r *Round) applyGuess(a Guess) error {
	if !r.guessLegal(a.N) {
		log.Warn().Int("player", r.turn).Int("guess", a.N).Msg("round: illegal guess")
		return ErrIllegalGuess
	}

	r.guessed[r.turn] = a.N
	r.guessSet[r.turn] = true

	if r.turn == r.stopTurn {
		r.phase = TrickingPhase{}
		r.turn = r.lead
		r.table = nil
		return nil
	}
	r.turn = (r.turn + 1) % r.numPlayers
	return nil
}

func (r *Round) guessLegal(n int) bool {
	for _, a := range r.legalGuesses() {
		if a.(Guess).N == n {
			return true
		}
	}
	return false
}

func (r *Round) applyPlay(a Play) error {
	hand := r.hands[r.turn]
	if !hand.Contains(a.CardIndex) {
		log.Warn().Int("player", r.turn).Int("cardIndex", a.CardIndex).Msg("round: played a card not held")
		return ErrCardNotHeld
	}
	if !r.playLegal(a.CardIndex) {
		log.Warn().Int("player", r.turn).Int("cardIndex", a.CardIndex).Msg("round: illegal play under lead-color rule")
		return ErrIllegalPlay
	}

	card := cards.FromIndex(a.CardIndex)
	if err := hand.Remove(a.CardIndex); err != nil {
		return err
	}
	r.table = append(r.table, Played{Player: r.turn, Card: card})

	if len(r.table) < r.numPlayers {
		r.turn = (r.turn + 1) % r.numPlayers
		return nil
	}
	r.resolveTrick()
	return nil
}

func (r *Round) playLegal(idx int) bool {
	for _, a := range r.legalPlays() {
		if a.(Play).CardIndex == idx {
			return true
		}
	}
	return false
}

func (r *Round) resolveTrick() {
	plays := make([]cards.Card, len(r.table))
	for i, p := range r.table {
		plays[i] = p.Card
	}
	winnerOffset := cards.Fold(plays, r.TrumpColor())
	winner := r.table[winnerOffset].Player

	r.tricks[winner]++
	r.historyPlayed = append(r.historyPlayed, r.table...)
	r.table = nil
	r.tricksCompleted++
	r.lead = winner
	r.turn = winner
	r.stopTurn = (winner - 1 + r.numPlayers) % r.numPlayers

	if r.tricksCompleted == r.roundNr {
		r.phase = FinalPhase{}
		r.turn = -1
	}
}
