// Package round implements the Wizard round state machine: dealing via a
// chance actor, per-player bidding, trick-taking with suit-follow
// constraints, trick resolution, and scoring under two reward regimes.
//
// A Round is parameterized by (numPlayers N ∈ [3,6], roundNr R ≥ 1,
// startPlayer S ∈ [0,N), reward mode). Its fields and invariants:
//
//	phase             Dealing / Guessing / Tricking / Final, strictly progresses
//	hands[p]          cards currently held by p
//	deck              remaining undealt cards
//	trump             the trump card; White means "no trump"; set once, end of Dealing
//	guessed[p]        p's bid for this round; set once per player during Guessing
//	tricks[p]         tricks won so far
//	table             ordered plays in the current trick; length < N until resolved
//	historyPlayed     all cards played in completed tricks, in play order
//	turn              whose turn it is
//	lead              lead of the current trick; rotates to previous trick's winner
//	stopTurn          the seat whose action closes the current sub-phase, (lead-1) mod N
//
// Conservation invariant: Σ|hands[p]| + |historyPlayed| + |table| +
// deckRemaining + (1 if trump dealt else 0) = 60.
package round

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/bastiscode/wizard-spiel/internal/cards"
)

// RewardMode selects the scoring regime applied at termination.
type RewardMode int

const (
	Normal RewardMode = iota
	Binary
)

// Played records one (player, card) play, either on the current table or in
// completed-trick history.
type Played struct {
	Player int
	Card   cards.Card
}

// Round is the mutable Wizard round state machine.
type Round struct {
	numPlayers int
	roundNr    int
	rewardMode RewardMode

	phase Phase

	deck  *cards.Deck
	hands []*cards.Hand

	trump    cards.Card
	trumpSet bool

	guessed []int
	guessSet []bool
	tricks  []int

	table         []Played
	historyPlayed []Played

	turn     int
	lead     int
	stopTurn int

	startPlayer     int
	tricksCompleted int
	moveCount       int
}

// RMax returns the maximum legal round size for n players: floor(60/n).
func RMax(n int) int {
	return 60 / n
}

// GuessCount returns the number of distinct guess values ([0,r]) for a round
// of size r: r+1.
func GuessCount(r int) int {
	return r + 1
}

// New constructs a Round in the Dealing phase. n must be in [3,6], r in
// [1, RMax(n)], s in [0,n).
func New(n, r, s int, mode RewardMode) (*Round, error) {
	if n < 3 || n > 6 {
		return nil, fmt.Errorf("round: numPlayers %d out of range [3,6]", n)
	}
	if r < 1 || r > RMax(n) {
		return nil, fmt.Errorf("round: roundNr %d out of range [1,%d]", r, RMax(n))
	}
	if s < 0 || s >= n {
		return nil, fmt.Errorf("round: startPlayer %d out of range [0,%d)", s, n)
	}

	hands := make([]*cards.Hand, n)
	for i := range hands {
		hands[i] = cards.NewHand()
	}

	return &Round{
		numPlayers:  n,
		roundNr:     r,
		rewardMode:  mode,
		phase:       DealingPhase{},
		deck:        cards.NewDeck(),
		hands:       hands,
		guessed:     make([]int, n),
		guessSet:    make([]bool, n),
		tricks:      make([]int, n),
		turn:        -1, // chance marker during Dealing
		lead:        s,
		stopTurn:    -1,
		startPlayer: s,
	}, nil
}

func (r *Round) NumPlayers() int    { return r.numPlayers }
func (r *Round) RoundNr() int       { return r.roundNr }
func (r *Round) RewardMode() RewardMode { return r.rewardMode }
func (r *Round) StartPlayer() int   { return r.startPlayer }
func (r *Round) Phase() Phase       { return r.phase }
func (r *Round) Lead() int          { return r.lead }
func (r *Round) StopTurn() int      { return r.stopTurn }
func (r *Round) TricksCompleted() int { return r.tricksCompleted }

// MoveNumber returns the count of actions successfully applied so far.
func (r *Round) MoveNumber() int { return r.moveCount }

// IsTerminal reports whether the round has reached the Final phase.
func (r *Round) IsTerminal() bool {
	_, ok := r.phase.(FinalPhase)
	return ok
}

// CurrentPlayer returns the seat whose turn it is, or -1 while a chance
// action (dealing) is expected.
func (r *Round) CurrentPlayer() int {
	if _, ok := r.phase.(DealingPhase); ok {
		return -1
	}
	return r.turn
}

// Hand returns the live hand for player p. Callers that need a snapshot
// should use Hand(p).Clone().
func (r *Round) Hand(p int) *cards.Hand {
	return r.hands[p]
}

// Trump returns the trump card and whether it has been dealt yet.
func (r *Round) Trump() (cards.Card, bool) {
	return r.trump, r.trumpSet
}

// TrumpColor returns the trump color, or White ("no trump") before the trump
// card has been dealt.
func (r *Round) TrumpColor() cards.Color {
	if !r.trumpSet {
		return cards.White
	}
	return r.trump.Color
}

// Guessed returns player p's bid and whether it has been recorded yet.
func (r *Round) Guessed(p int) (int, bool) {
	return r.guessed[p], r.guessSet[p]
}

// Tricks returns the number of tricks player p has won so far.
func (r *Round) Tricks(p int) int {
	return r.tricks[p]
}

// Table returns the plays made so far in the current trick, in play order.
func (r *Round) Table() []Played {
	out := make([]Played, len(r.table))
	copy(out, r.table)
	return out
}

// HistoryPlayed returns all cards played in completed tricks, in play order.
func (r *Round) HistoryPlayed() []Played {
	out := make([]Played, len(r.historyPlayed))
	copy(out, r.historyPlayed)
	return out
}

// DeckRemaining returns the number of undealt cards left in the deck.
func (r *Round) DeckRemaining() int {
	return r.deck.Remaining()
}

// DeckCounts returns a copy of the deck's per-identity remaining counts.
func (r *Round) DeckCounts() [cards.NumIdentities]int {
	return r.deck.Counts()
}

// CardsAccounted checks the conservation invariant:
// Σ|hands| + |historyPlayed| + |table| + deckRemaining + (1 if trump dealt)
// must equal 60.
func (r *Round) CardsAccounted() (total int, ok bool) {
	total = r.deck.Remaining() + len(r.historyPlayed) + len(r.table)
	for _, h := range r.hands {
		total += h.Size()
	}
	if r.trumpSet {
		total++
	}
	ok = total == 60
	if !ok {
		log.Warn().Int("total", total).Msg("round: card conservation invariant violated")
	}
	return total, ok
}

// Clone returns a deep, independent copy of r.
func (r *Round) Clone() *Round {
	clone := *r
	clone.deck = r.deck.Clone()
	clone.hands = make([]*cards.Hand, len(r.hands))
	for i, h := range r.hands {
		clone.hands[i] = h.Clone()
	}
	clone.guessed = append([]int(nil), r.guessed...)
	clone.guessSet = append([]bool(nil), r.guessSet...)
	clone.tricks = append([]int(nil), r.tricks...)
	clone.table = append([]Played(nil), r.table...)
	clone.historyPlayed = append([]Played(nil), r.historyPlayed...)
	return &clone
}
