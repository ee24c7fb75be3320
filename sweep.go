package circuit

import (
	"fmt"
	"io"
	"strings"
)

type eventKind int

// at equal X, wires starting there are added before and wires ending there are removed after the queries, so that wires touching the sweep line are visible
const (
	activateEvent eventKind = iota
	queryEvent
	deactivateEvent
)

func (k eventKind) String() string {
	switch k {
	case activateEvent:
		return "activate"
	case queryEvent:
		return "query"
	case deactivateEvent:
		return "deactivate"
	}
	return fmt.Sprintf("eventKind(%d)", int(k))
}

type sweepEvent struct {
	X    float64
	kind eventKind
	wire *Wire
}

func (e sweepEvent) String() string {
	return fmt.Sprintf("%v %v %s", num(e.X), e.kind, e.wire.Name)
}

func (a sweepEvent) less(b sweepEvent) bool {
	if a.X != b.X {
		return a.X < b.X
	} else if a.kind != b.kind {
		return a.kind < b.kind
	}
	return a.wire.id < b.wire.id
}

// sweepEvents is a heap priority queue of sweep events.
type sweepEvents []sweepEvent

// newSweepEvents returns the queue of events for all wires in order of insertion into the layer.
func newSweepEvents(wires []*Wire) sweepEvents {
	q := make(sweepEvents, 0, 2*len(wires))
	for _, w := range wires {
		if w.IsHorizontal() {
			q = append(q, sweepEvent{w.X1, activateEvent, w}, sweepEvent{w.X2, deactivateEvent, w})
		} else {
			q = append(q, sweepEvent{w.X1, queryEvent, w})
		}
	}
	q.Init()
	return q
}

func (q sweepEvents) Less(i, j int) bool {
	return q[i].less(q[j])
}

func (q sweepEvents) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q sweepEvents) Init() {
	n := len(q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

func (q *sweepEvents) Pop() sweepEvent {
	n := len(*q) - 1
	q.Swap(0, n)
	q.down(0, n)

	item := (*q)[n]
	*q = (*q)[:n]
	return item
}

// from container/heap
func (q sweepEvents) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.Less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		i = j
	}
}

func (q sweepEvents) Print(w io.Writer) {
	q2 := make(sweepEvents, len(q))
	copy(q2, q)
	for k := 0; 0 < len(q2); k++ {
		fmt.Fprintln(w, k, q2.Pop())
	}
}

func (q sweepEvents) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
