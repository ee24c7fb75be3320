package circuit

import (
	"encoding/json"
	"io"
)

// Tracer observes the operations of a Verifier, for example to feed a visualizer. Tracers never change the outcome of the operations they observe.
type Tracer interface {
	Add(key Key)
	Delete(key Key)
	List(lo, hi Key, keys []Key)
	Count(lo, hi Key, n int)
	Crossing(a, b *Wire)
	Sweep(x float64)
}

// index is the part of the RangeIndex used by the verifier.
type index interface {
	Insert(Key) error
	Remove(Key) error
	List(lo, hi Key) []Key
	Count(lo, hi Key) int
}

type tracedIndex struct {
	index
	tracer Tracer
}

func (t tracedIndex) Insert(key Key) error {
	t.tracer.Add(key)
	return t.index.Insert(key)
}

func (t tracedIndex) Remove(key Key) error {
	t.tracer.Delete(key)
	return t.index.Remove(key)
}

func (t tracedIndex) List(lo, hi Key) []Key {
	keys := t.index.List(lo, hi)
	t.tracer.List(lo, hi, keys)
	return keys
}

func (t tracedIndex) Count(lo, hi Key) int {
	n := t.index.Count(lo, hi)
	t.tracer.Count(lo, hi, n)
	return n
}

// results is the part of the ResultSet used by the verifier.
type results interface {
	Add(a, b *Wire)
}

type tracedResults struct {
	results
	tracer Tracer
}

func (t tracedResults) Add(a, b *Wire) {
	t.tracer.Crossing(a, b)
	t.results.Add(a, b)
}

////////////////////////////////////////////////////////////////

// TraceEvent is a single step of a verification in the format read by the visualizer. The type field is one of add, delete, list, crossing, or sweep.
type TraceEvent map[string]any

// Trace is a Tracer that records all events.
type Trace []TraceEvent

func (t *Trace) Add(key Key) {
	*t = append(*t, TraceEvent{"type": "add", "id": key.Wire.Name})
}

func (t *Trace) Delete(key Key) {
	*t = append(*t, TraceEvent{"type": "delete", "id": key.Wire.Name})
}

func (t *Trace) List(lo, hi Key, keys []Key) {
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, key.Wire.Name)
	}
	*t = append(*t, TraceEvent{"type": "list", "from": lo.Y, "to": hi.Y, "ids": ids})
}

func (t *Trace) Count(lo, hi Key, n int) {
	*t = append(*t, TraceEvent{"type": "list", "from": lo.Y, "to": hi.Y, "count": n})
}

func (t *Trace) Crossing(a, b *Wire) {
	*t = append(*t, TraceEvent{"type": "crossing", "id1": a.Name, "id2": b.Name})
}

func (t *Trace) Sweep(x float64) {
	*t = append(*t, TraceEvent{"type": "sweep", "x": x})
}

// WriteJSONP writes the layer and the trace as a JSONP call to onJsonp, which is loaded by the visualizer.
func WriteJSONP(w io.Writer, layer *Layer, trace Trace) error {
	if trace == nil {
		trace = Trace{}
	}
	b, err := json.Marshal(struct {
		Layer *Layer `json:"layer"`
		Trace Trace  `json:"trace"`
	}{layer, trace})
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, "onJsonp("); err != nil {
		return err
	} else if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, ");\n")
	return err
}
