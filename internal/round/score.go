package round

// Returns computes each player's reward once the round has reached the
// Final phase. Before then it returns the all-zero vector of length N.
func (r *Round) Returns() []float64 {
	if !r.IsTerminal() {
		return make([]float64, r.numPlayers)
	}

	out := make([]float64, r.numPlayers)
	for p := 0; p < r.numPlayers; p++ {
		out[p] = r.playerReturn(p)
	}
	return out
}

func (r *Round) playerReturn(p int) float64 {
	guessed := r.guessed[p]
	won := r.tricks[p]
	hit := guessed == won

	switch r.rewardMode {
	case Binary:
		if hit {
			return 1
		}
		return -1
	default: // Normal
		if hit {
			return float64(20 + 10*won)
		}
		diff := guessed - won
		if diff < 0 {
			diff = -diff
		}
		return float64(-10 * diff)
	}
}

// MinUtility and MaxUtility bound the per-player return summed over a full
// match of rounds k=1..RMax(n): Max = sum(20+10k), Min = sum(-10k). They use
// RMax(n) rather than any one instance's roundNr because a game's declared
// utility bounds must hold for every roundNr it could be configured with,
// and the widest spread accumulates across the largest legal round size.
func MinUtility(n int, mode RewardMode) float64 {
	if mode == Binary {
		return -1
	}
	r := RMax(n)
	return float64(-5 * r * (r + 1))
}

func MaxUtility(n int, mode RewardMode) float64 {
	if mode == Binary {
		return 1
	}
	r := RMax(n)
	return float64(20*r + 5*r*(r+1))
}
