package observer

import (
	"github.com/bastiscode/wizard-spiel/internal/cards"
	"github.com/bastiscode/wizard-spiel/internal/round"
)

// ObservationTensor writes the current-state view for player into a flat
// buffer matching Spec.ObservationShape(). Callers own the backing array
// (e.g. a pooled allocator from the host framework); this function only
// writes into it.
func (s Spec) ObservationTensor(r *round.Round, player int, out []float32) {
	if len(out) != s.observationLen() {
		panic("observer: ObservationTensor buffer size mismatch")
	}
	for i := range out {
		out[i] = 0
	}
	off := s.writeCommon(r, player, out)
	s.writeObservationFields(r, out[off:])
}

// InformationStateTensor writes the full perfect-recall view for player:
// every Observation field, then move_number, then every card played so far
// this round in play order, zero-padded to the fixed maximum of
// NumPlayers*RoundNr plays.
func (s Spec) InformationStateTensor(r *round.Round, player int, out []float32) {
	want := s.InformationStateShape()[0]
	if len(out) != want {
		panic("observer: InformationStateTensor buffer size mismatch")
	}
	for i := range out {
		out[i] = 0
	}
	off := s.writeCommon(r, player, out)
	s.writeObservationFields(r, out[off:off+s.observationLen()-s.commonLen()])
	off += s.observationLen() - s.commonLen()
	out[off] = float32(r.MoveNumber())
	off++
	s.writeHistory(r, out[off:])
}

// writeCommon fills the fields shared by both views and returns the offset
// just past them: one-hot seat, own hand counts, round number, trump
// one-hot, guessed tricks.
func (s Spec) writeCommon(r *round.Round, player int, out []float32) int {
	off := 0
	n := s.NumPlayers

	out[off+player] = 1
	off += n

	hand := r.Hand(player)
	counts := hand.CountsArray()
	for i, c := range counts {
		out[off+i] = float32(c)
	}
	off += len(counts)

	out[off] = float32(r.RoundNr())
	off++

	if trump, set := r.Trump(); set {
		if idx := colorIndex(trump.Color); idx >= 0 {
			out[off+idx] = 1
		}
	}
	off += numTrumpColors

	for p := 0; p < n; p++ {
		if g, set := r.Guessed(p); set {
			out[off+p] = float32(g)
		}
	}
	off += n

	return off
}

// writeObservationFields fills the Observation-only fields into out, which
// must start at the offset writeCommon returned: current tricks, then the
// current table as one one-hot row per seat.
func (s Spec) writeObservationFields(r *round.Round, out []float32) {
	off := 0
	n := s.NumPlayers

	for p := 0; p < n; p++ {
		out[off+p] = float32(r.Tricks(p))
	}
	off += n

	for _, play := range r.Table() {
		base := off + play.Player*cards.NumIdentities
		out[base+play.Card.ToIndex()] = 1
	}
}

func (s Spec) writeHistory(r *round.Round, out []float32) {
	entry := cards.NumIdentities
	for i, play := range append(r.HistoryPlayed(), r.Table()...) {
		base := i * entry
		if base+entry > len(out) {
			break
		}
		out[base+play.Card.ToIndex()] = 1
	}
}
