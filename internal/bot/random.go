// Package bot provides sample policies over wizard.State, useful for
// self-play, smoke-testing the engine, and driving tests to an interesting
// mid-game state without hand-authoring one action at a time.
package bot

import (
	"math/rand"

	"github.com/bastiscode/wizard-spiel/internal/wizard"
)

// RandomPolicy selects uniformly among the legal actions at each decision
// point. The rng is supplied by the caller rather than owned by the policy.
type RandomPolicy struct {
	Rng *rand.Rand
}

// SelectAction returns a uniformly random legal action id.
func (p RandomPolicy) SelectAction(st *wizard.State) int {
	legal := st.LegalActions()
	return legal[p.Rng.Intn(len(legal))]
}
