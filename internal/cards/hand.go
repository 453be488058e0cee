package cards

import (
	"fmt"
	"sort"
)

// Hand is a player's held cards, represented as a multiset keyed by card
// index rather than a slice plus a dedup pass: this lets legal-play
// derivation enumerate distinct playable cards directly, without a shadow
// "seen" set.
type Hand struct {
	counts [NumIdentities]int
	size   int
}

// NewHand returns an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// Add adds one copy of card to the hand.
func (h *Hand) Add(card Card) {
	h.counts[card.ToIndex()]++
	h.size++
}

// Remove removes one copy of the card at index from the hand. Fails if the
// hand holds no copy (playing a card not held is a contract
// violation).
func (h *Hand) Remove(index int) error {
	if h.counts[index] == 0 {
		return fmt.Errorf("cards: hand does not contain index %d", index)
	}
	h.counts[index]--
	h.size--
	return nil
}

// Contains reports whether the hand holds at least one copy of index.
func (h *Hand) Contains(index int) bool {
	return h.counts[index] > 0
}

// Count returns how many copies of index the hand holds.
func (h *Hand) Count(index int) int {
	return h.counts[index]
}

// Size returns the total number of cards held.
func (h *Hand) Size() int {
	return h.size
}

// DistinctIndices returns the sorted, deduplicated list of card indices
// present in the hand (each index appears once regardless of how many
// physical copies are held).
func (h *Hand) DistinctIndices() []int {
	indices := make([]int, 0, h.size)
	for i, c := range h.counts {
		if c > 0 {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	return indices
}

// IndicesOfColor returns the distinct indices in the hand whose card color
// equals color.
func (h *Hand) IndicesOfColor(color Color) []int {
	var indices []int
	for _, idx := range h.DistinctIndices() {
		if FromIndex(idx).Color == color {
			indices = append(indices, idx)
		}
	}
	return indices
}

// HasColor reports whether the hand holds any card of the given color.
func (h *Hand) HasColor(color Color) bool {
	for _, idx := range h.DistinctIndices() {
		if FromIndex(idx).Color == color {
			return true
		}
	}
	return false
}

// Cards expands the hand's multiset into a slice of Card values, one entry
// per physical copy, in ascending index order.
func (h *Hand) Cards() []Card {
	cards := make([]Card, 0, h.size)
	for i, c := range h.counts {
		for n := 0; n < c; n++ {
			cards = append(cards, FromIndex(i))
		}
	}
	return cards
}

// CountsArray returns a copy of the full per-identity count array.
func (h *Hand) CountsArray() [NumIdentities]int {
	return h.counts
}

// Clone returns a deep, independent copy of h.
func (h *Hand) Clone() *Hand {
	clone := &Hand{size: h.size}
	clone.counts = h.counts
	return clone
}
