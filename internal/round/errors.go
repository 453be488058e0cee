package round

import "errors"

// Errors are programming contract violations, never recoverable
// conditions: the caller is expected to have checked LegalActions/Phase
// first. The engine signals and aborts rather than retrying.
var (
	ErrZeroDeckCount     = errors.New("round: card has zero count remaining in deck")
	ErrBadCardLabel      = errors.New("round: card label has bad color or out-of-range value")
	ErrIllegalGuess      = errors.New("round: guess outside the legal set (includes hook-rule violations)")
	ErrCardNotHeld       = errors.New("round: card not held by the acting player")
	ErrIllegalPlay       = errors.New("round: card not legal under the lead-color rule")
	ErrTerminal          = errors.New("round: round is already terminal")
	ErrWrongActionClass  = errors.New("round: action class not accepted in the current phase")
	ErrNotCurrentPlayer  = errors.New("round: action submitted by a seat other than the current player")
	ErrInvariantViolated = errors.New("round: detected invariant violation")
)
