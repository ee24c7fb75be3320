package circuit

import (
	"errors"
	"fmt"
)

// ErrAlreadyPerformed is returned when a Verifier is used a second time.
var ErrAlreadyPerformed = errors.New("verifier already performed")

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithTracer reports every index operation, sweep line position, and crossing to t.
func WithTracer(t Tracer) VerifierOption {
	return func(v *Verifier) {
		v.tracer = t
	}
}

// Verifier finds crossing wires in a layer by sweeping a vertical line from left to right. Horizontal wires are kept in a RangeIndex keyed on their Y coordinate while the sweep line is within their X span, and every vertical wire queries the index for the horizontal wires within its Y span.
//
// A Verifier can either count or list the crossings, once.
type Verifier struct {
	events    sweepEvents
	tracer    Tracer
	performed bool
}

// NewVerifier returns a verifier for the wires of layer.
func NewVerifier(layer *Layer, opts ...VerifierOption) *Verifier {
	v := &Verifier{
		events: newSweepEvents(layer.Wires()),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// CountCrossings returns the number of pairs of wires that cross each other.
func (v *Verifier) CountCrossings() (int, error) {
	n := 0
	err := v.sweep(func(idx index, w *Wire) {
		// the index only holds wires spanning the sweep line, so all keys within the vertical span cross
		n += idx.Count(LowKey(w.Y1), HighKey(w.Y2))
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Crossings returns the pairs of wires that cross each other, in the order in which the sweep line encounters them.
func (v *Verifier) Crossings() (*ResultSet, error) {
	rs := NewResultSet()
	var res results = rs
	if v.tracer != nil {
		res = tracedResults{rs, v.tracer}
	}

	err := v.sweep(func(idx index, w *Wire) {
		for _, key := range idx.List(LowKey(w.Y1), HighKey(w.Y2)) {
			if w.Intersects(key.Wire) {
				res.Add(w, key.Wire)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (v *Verifier) sweep(query func(index, *Wire)) error {
	if v.performed {
		return ErrAlreadyPerformed
	}
	v.performed = true

	var idx index = NewRangeIndex()
	if v.tracer != nil {
		idx = tracedIndex{idx, v.tracer}
	}

	for 0 < len(v.events) {
		event := v.events.Pop()
		switch event.kind {
		case activateEvent:
			if err := idx.Insert(WireKey(event.wire)); err != nil {
				panic(fmt.Sprintf("activate %v: %v", event.wire, err))
			}
		case queryEvent:
			if v.tracer != nil {
				v.tracer.Sweep(event.X)
			}
			query(idx, event.wire)
		case deactivateEvent:
			if err := idx.Remove(WireKey(event.wire)); err != nil {
				panic(fmt.Sprintf("deactivate %v: %v", event.wire, err))
			}
		}
	}
	return nil
}
