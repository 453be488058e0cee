package observer

import (
	"strings"
	"testing"

	"github.com/bastiscode/wizard-spiel/internal/cards"
	"github.com/bastiscode/wizard-spiel/internal/round"
)

func dealSimpleRound(t *testing.T) *round.Round {
	t.Helper()
	r, err := round.New(3, 1, 0, round.Normal)
	if err != nil {
		t.Fatal(err)
	}
	hands := [][]int{
		{cards.NewCard(cards.Blue, 1).ToIndex()},
		{cards.NewCard(cards.Red, 1).ToIndex()},
		{cards.NewCard(cards.Green, 1).ToIndex()},
	}
	for round := 0; round < 1; round++ {
		for p := 0; p < 3; p++ {
			if err := r.Apply(round2ChanceDeal(hands[p][round])); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := r.Apply(round2ChanceDeal(cards.NewCard(cards.Yellow, 5).ToIndex())); err != nil {
		t.Fatal(err)
	}
	return r
}

func round2ChanceDeal(idx int) round.Action { return round.ChanceDeal{CardIndex: idx} }

func TestObservationTensorShapeMatches(t *testing.T) {
	r := dealSimpleRound(t)
	s := Spec{NumPlayers: 3, RoundNr: 1}
	buf := make([]float32, s.ObservationShape()[0])
	s.ObservationTensor(r, 0, buf)

	sum := float32(0)
	for _, v := range buf {
		sum += v
	}
	if sum == 0 {
		t.Errorf("expected a non-zero observation tensor")
	}
}

func TestInformationStateTensorLargerThanObservation(t *testing.T) {
	s := Spec{NumPlayers: 3, RoundNr: 1}
	if s.InformationStateShape()[0] <= s.ObservationShape()[0] {
		t.Errorf("information state tensor should be larger than observation tensor")
	}
}

func TestObservationStringOnlyRevealsOwnHand(t *testing.T) {
	r := dealSimpleRound(t)
	s := Spec{NumPlayers: 3, RoundNr: 1}

	p0 := s.ObservationString(r, 0)
	if !strings.Contains(p0, "B1") {
		t.Errorf("p0's observation should mention its own B1, got %q", p0)
	}
	if strings.Contains(p0, "R1") || strings.Contains(p0, "G1") {
		t.Errorf("p0's observation should not reveal other hands, got %q", p0)
	}
}

func TestInformationStateTensorPanicsOnBadBufferSize(t *testing.T) {
	s := Spec{NumPlayers: 3, RoundNr: 1}
	r := dealSimpleRound(t)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for wrong buffer size")
		}
	}()
	s.InformationStateTensor(r, 0, make([]float32, 1))
}
