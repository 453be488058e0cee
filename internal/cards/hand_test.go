package cards

import (
	"reflect"
	"testing"
)

func TestHandAddRemoveContains(t *testing.T) {
	h := NewHand()
	b7 := NewCard(Blue, 7)
	h.Add(b7)
	if !h.Contains(b7.ToIndex()) {
		t.Fatalf("hand should contain added card")
	}
	if h.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", h.Size())
	}
	if err := h.Remove(b7.ToIndex()); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if h.Contains(b7.ToIndex()) {
		t.Errorf("hand should not contain removed card")
	}
	if err := h.Remove(b7.ToIndex()); err == nil {
		t.Errorf("expected error removing a card not held")
	}
}

func TestHandDistinctIndicesDeduplicatesAndSorts(t *testing.T) {
	h := NewHand()
	h.Add(WizardCard())
	h.Add(WizardCard())
	h.Add(NewCard(Blue, 1))
	h.Add(Jester())

	got := h.DistinctIndices()
	want := []int{Jester().ToIndex(), WizardCard().ToIndex(), NewCard(Blue, 1).ToIndex()}
	// Expected ascending order: Jester=0, Wizard=1, Blue1=2.
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("DistinctIndices() = %v, want %v", got, want)
	}
	if h.Size() != 4 {
		t.Errorf("Size() = %d, want 4 (duplicates still counted)", h.Size())
	}
}

func TestHandIndicesOfColorAndHasColor(t *testing.T) {
	h := NewHand()
	h.Add(NewCard(Blue, 1))
	h.Add(NewCard(Blue, 2))
	h.Add(NewCard(Red, 3))

	if !h.HasColor(Blue) {
		t.Errorf("expected HasColor(Blue) true")
	}
	if h.HasColor(Green) {
		t.Errorf("expected HasColor(Green) false")
	}
	if got := len(h.IndicesOfColor(Blue)); got != 2 {
		t.Errorf("IndicesOfColor(Blue) len = %d, want 2", got)
	}
}

func TestHandCloneIndependent(t *testing.T) {
	h := NewHand()
	h.Add(NewCard(Blue, 1))
	clone := h.Clone()
	_ = h.Remove(NewCard(Blue, 1).ToIndex())
	if !clone.Contains(NewCard(Blue, 1).ToIndex()) {
		t.Errorf("clone should be unaffected by mutation of the original")
	}
}
