package cards

// Compare implements the trick-winner semantics for the pair
// (current best a, challenger b). It returns true if b beats a, false if a
// remains the winner.
//
// Applying Compare left-to-right across a trick's plays, with a initialized to
// the first play, yields the trick winner (see Fold).
func Compare(a, b Card, trump Color) bool {
	switch {
	case a.IsWizard():
		// First Wizard played beats all; no challenger can beat it.
		return false
	case b.IsWizard():
		return true
	case a.IsJester() && !b.IsJester():
		// Jesters only "win" when the entire trick is Jesters.
		return true
	case a.IsTrump(trump) && !b.IsTrump(trump):
		return false
	case b.IsTrump(trump) && !a.IsTrump(trump):
		return true
	case a.Color != b.Color:
		// Off-suit challenger cannot beat the lead-color holder.
		return false
	default:
		// Same color, neither is a Wizard, and not a Jester/non-Jester pair
		// (either both Jesters, or both ordinary same-color cards). Higher
		// value wins; ties resolve to a (earlier play).
		return b.Value > a.Value
	}
}

// IsTrump reports whether c is a trump card given the trump color. The White
// color never counts as a suit match (White as trump means "no trump"), and
// the Wizard/Jester specials are handled by their own rules in Compare rather
// than by IsTrump, matching the intended ordering (Wizard/Jester rules run
// before the trump check).
func (c Card) IsTrump(trump Color) bool {
	if c.IsSpecial() {
		return false
	}
	return trump != White && c.Color == trump
}

// Fold runs Compare across an ordered list of plays (player index is carried
// by the caller; Fold only needs the cards) and returns the index of the
// winning play within plays.
func Fold(plays []Card, trump Color) int {
	if len(plays) == 0 {
		return -1
	}
	winner := 0
	best := plays[0]
	for i := 1; i < len(plays); i++ {
		if Compare(best, plays[i], trump) {
			winner = i
			best = plays[i]
		}
	}
	return winner
}
