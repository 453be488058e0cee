// Package wizard assembles the card/round engine into the Game/State pair a
// sequential-game framework expects: Game is the immutable type descriptor
// (action-space size, chance bound, utility bounds, tensor shapes); State is
// the per-episode facade wrapping a *round.Round.
package wizard

import (
	"fmt"

	"github.com/bastiscode/wizard-spiel/internal/round"
)

// GameConfig parameterizes one Game instance. All four fields are fixed for
// the Game's lifetime; RoundNr and NumPlayers also fix every tensor shape
// the Game declares.
type GameConfig struct {
	NumPlayers  int
	RoundNr     int
	StartPlayer int
	RewardMode  round.RewardMode
}

// DefaultGameConfig returns a 4-player, 1-round, dealer-left-leads instance.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		NumPlayers:  4,
		RoundNr:     1,
		StartPlayer: 0,
		RewardMode:  round.Normal,
	}
}

func (c GameConfig) validate() error {
	if c.NumPlayers < 3 || c.NumPlayers > 6 {
		return fmt.Errorf("wizard: numPlayers %d out of range [3,6]", c.NumPlayers)
	}
	if c.RoundNr < 1 || c.RoundNr > round.RMax(c.NumPlayers) {
		return fmt.Errorf("wizard: roundNr %d out of range [1,%d]", c.RoundNr, round.RMax(c.NumPlayers))
	}
	if c.StartPlayer < 0 || c.StartPlayer >= c.NumPlayers {
		return fmt.Errorf("wizard: startPlayer %d out of range [0,%d)", c.StartPlayer, c.NumPlayers)
	}
	return nil
}
