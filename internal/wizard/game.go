package wizard

import (
	"github.com/bastiscode/wizard-spiel/internal/cards"
	"github.com/bastiscode/wizard-spiel/internal/observer"
	"github.com/bastiscode/wizard-spiel/internal/round"
)

// Game is the immutable type descriptor for one (NumPlayers, RoundNr,
// StartPlayer, RewardMode) configuration. It owns the observer.Spec used by
// every State it creates, constructed once so tensor shapes never drift
// across an episode.
type Game struct {
	config GameConfig
	obs    observer.Spec

	numDistinctActions int
}

// NewGame validates config and constructs a Game. It is also registered
// under the name "wizard" in the package's factory registry (registry.go),
// mirroring how the action-space size is derived once and reused for every
// State this Game produces.
func NewGame(config GameConfig) (*Game, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Game{
		config: config,
		obs:    observer.Spec{NumPlayers: config.NumPlayers, RoundNr: config.RoundNr},
		// Declared conservatively against RMax(N) rather than this instance's
		// RoundNr, so the action space stays valid across any RoundNr this
		// NumPlayers could be configured with.
		numDistinctActions: cards.NumIdentities + round.RMax(config.NumPlayers) + 1,
	}, nil
}

func (g *Game) NumPlayers() int { return g.config.NumPlayers }

// NumDistinctActions is the size of the action space a policy network
// output layer must cover: 54 card identities plus up to RMax(N)+1 guess
// values.
func (g *Game) NumDistinctActions() int { return g.numDistinctActions }

// MaxChanceOutcomes bounds the branching factor of any chance node: at most
// one outcome per card identity.
func (g *Game) MaxChanceOutcomes() int { return cards.NumIdentities }

// MaxGameLength is the number of player actions for this Game's
// configuration: N*R card plays plus N guesses. The N*R+1 chance deals are
// not counted.
func (g *Game) MaxGameLength() int {
	n, r := g.config.NumPlayers, g.config.RoundNr
	return n*r + n
}

func (g *Game) MinUtility() float64 { return round.MinUtility(g.config.NumPlayers, g.config.RewardMode) }
func (g *Game) MaxUtility() float64 { return round.MaxUtility(g.config.NumPlayers, g.config.RewardMode) }

func (g *Game) ObservationShape() []int      { return g.obs.ObservationShape() }
func (g *Game) InformationStateShape() []int { return g.obs.InformationStateShape() }

// NewInitialState returns a fresh State at the start of dealing.
func (g *Game) NewInitialState() (*State, error) {
	r, err := round.New(g.config.NumPlayers, g.config.RoundNr, g.config.StartPlayer, g.config.RewardMode)
	if err != nil {
		return nil, err
	}
	return &State{game: g, round: r}, nil
}
