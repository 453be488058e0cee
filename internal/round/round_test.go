package round

import (
	"testing"

	"github.com/bastiscode/wizard-spiel/internal/cards"
)

func TestNewValidatesRanges(t *testing.T) {
	if _, err := New(2, 1, 0, Normal); err == nil {
		t.Error("expected error for numPlayers below range")
	}
	if _, err := New(3, RMax(3)+1, 0, Normal); err == nil {
		t.Error("expected error for roundNr above RMax")
	}
	if _, err := New(3, 1, 3, Normal); err == nil {
		t.Error("expected error for startPlayer out of range")
	}
}

func TestFullRoundLeadWinsNoTrumpTrick(t *testing.T) {
	r, err := New(3, 1, 0, Normal)
	if err != nil {
		t.Fatal(err)
	}
	dealKnownHands(t, r,
		[][]int{{cards.NewCard(cards.Blue, 1).ToIndex()}, {cards.NewCard(cards.Red, 1).ToIndex()}, {cards.NewCard(cards.Green, 1).ToIndex()}},
		cards.NewCard(cards.Yellow, 5).ToIndex())

	for p := 0; p < 3; p++ {
		if err := r.Apply(Guess{N: 0}); err != nil {
			t.Fatalf("guess p%d: %v", p, err)
		}
	}

	if err := r.Apply(Play{CardIndex: cards.NewCard(cards.Blue, 1).ToIndex()}); err != nil {
		t.Fatalf("p0 play: %v", err)
	}
	if err := r.Apply(Play{CardIndex: cards.NewCard(cards.Red, 1).ToIndex()}); err != nil {
		t.Fatalf("p1 play: %v", err)
	}
	if err := r.Apply(Play{CardIndex: cards.NewCard(cards.Green, 1).ToIndex()}); err != nil {
		t.Fatalf("p2 play: %v", err)
	}

	if !r.IsTerminal() {
		t.Fatalf("round should be terminal after 1 trick in a 1-round game")
	}
	if r.Tricks(0) != 1 {
		t.Errorf("p0 (lead, uncontested colors) should win the trick, tricks = %v", []int{r.Tricks(0), r.Tricks(1), r.Tricks(2)})
	}

	returns := r.Returns()
	want := []float64{-10, 20, 20}
	for p, w := range want {
		if returns[p] != w {
			t.Errorf("returns[%d] = %v, want %v", p, returns[p], w)
		}
	}

	if total, ok := r.CardsAccounted(); !ok {
		t.Errorf("card conservation invariant violated: total = %d", total)
	}
}

func TestApplyRejectsWrongActionClass(t *testing.T) {
	r, err := New(3, 1, 0, Normal)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Apply(Guess{N: 0}); err != ErrWrongActionClass {
		t.Errorf("Apply(Guess) during Dealing = %v, want ErrWrongActionClass", err)
	}
}

func TestApplyRejectsTerminalRound(t *testing.T) {
	r, err := New(3, 1, 0, Normal)
	if err != nil {
		t.Fatal(err)
	}
	dealKnownHands(t, r,
		[][]int{{cards.NewCard(cards.Blue, 1).ToIndex()}, {cards.NewCard(cards.Red, 1).ToIndex()}, {cards.NewCard(cards.Green, 1).ToIndex()}},
		cards.NewCard(cards.Yellow, 5).ToIndex())
	for p := 0; p < 3; p++ {
		_ = r.Apply(Guess{N: 0})
	}
	_ = r.Apply(Play{CardIndex: cards.NewCard(cards.Blue, 1).ToIndex()})
	_ = r.Apply(Play{CardIndex: cards.NewCard(cards.Red, 1).ToIndex()})
	_ = r.Apply(Play{CardIndex: cards.NewCard(cards.Green, 1).ToIndex()})

	if err := r.Apply(Play{CardIndex: 0}); err != ErrTerminal {
		t.Errorf("Apply after terminal = %v, want ErrTerminal", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	r, err := New(3, 1, 0, Normal)
	if err != nil {
		t.Fatal(err)
	}
	clone := r.Clone()
	if err := r.Apply(ChanceDeal{CardIndex: cards.NewCard(cards.Blue, 1).ToIndex()}); err != nil {
		t.Fatal(err)
	}
	if clone.Hand(0).Size() != 0 {
		t.Errorf("clone should be unaffected by mutation of the original")
	}
	if r.Hand(0).Size() != 1 {
		t.Errorf("original should reflect its own mutation")
	}
}
