package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiscode/wizard-spiel/internal/round"
)

func TestNewGameValidatesConfig(t *testing.T) {
	_, err := NewGame(GameConfig{NumPlayers: 2, RoundNr: 1, StartPlayer: 0})
	assert.Error(t, err, "numPlayers below range should fail validation")

	_, err = NewGame(DefaultGameConfig())
	require.NoError(t, err, "DefaultGameConfig should validate")
}

func TestNumDistinctActionsUsesRMaxNotRoundNr(t *testing.T) {
	g, err := NewGame(GameConfig{NumPlayers: 4, RoundNr: 1, StartPlayer: 0, RewardMode: round.Normal})
	require.NoError(t, err)

	want := 54 + round.RMax(4) + 1
	assert.Equal(t, want, g.NumDistinctActions(), "NumDistinctActions must be independent of configured RoundNr")
}

func TestMinMaxUtilityDelegatesToRound(t *testing.T) {
	g, err := NewGame(GameConfig{NumPlayers: 3, RoundNr: 2, StartPlayer: 0, RewardMode: round.Normal})
	require.NoError(t, err)

	assert.Equal(t, round.MaxUtility(3, round.Normal), g.MaxUtility())
	assert.Equal(t, round.MinUtility(3, round.Normal), g.MinUtility())
}

func TestRegistryLookup(t *testing.T) {
	factory, ok := Lookup("wizard")
	require.True(t, ok, "expected \"wizard\" to be registered")

	g, err := factory(DefaultGameConfig())
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumPlayers())
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("wizard", NewGame)
	}, "expected panic on duplicate registration")
}
