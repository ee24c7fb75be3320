package circuit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
)

// ErrDuplicateWireName is returned when adding a wire whose name is already in use.
var ErrDuplicateWireName = errors.New("wire name not unique")

// Layer is the layout of one layer of wires in a chip. It hands out the wire identities, which are unique within the layer.
type Layer struct {
	wires  []*Wire
	names  map[string]*Wire
	nextID int
}

// NewLayer returns a layer without wires.
func NewLayer() *Layer {
	return &Layer{
		names: map[string]*Wire{},
	}
}

// AddWire adds a wire to the layer. It returns ErrInvalidGeometry if the wire is neither horizontal nor vertical and ErrDuplicateWireName if the name is taken, in which case the layer is left unchanged.
func (l *Layer) AddWire(name string, x1, y1, x2, y2 float64) (*Wire, error) {
	if _, ok := l.names[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateWireName, name)
	}
	w, err := NewWire(l.nextID, name, x1, y1, x2, y2)
	if err != nil {
		return nil, err
	}
	l.nextID++
	l.wires = append(l.wires, w)
	l.names[name] = w
	return w, nil
}

// Wires returns the wires in the order they were added.
func (l *Layer) Wires() []*Wire {
	return l.wires
}

// Wire returns the wire with the given name, or nil.
func (l *Layer) Wire(name string) *Wire {
	return l.names[name]
}

func (l *Layer) Len() int {
	return len(l.wires)
}

// Bound returns the bounding box of all wires. It is empty for an empty layer.
func (l *Layer) Bound() orb.Bound {
	if len(l.wires) == 0 {
		return orb.Bound{}
	}
	b := l.wires[0].Bound()
	for _, w := range l.wires[1:] {
		b = b.Union(w.Bound())
	}
	return b
}

type jsonWire struct {
	ID string     `json:"id"`
	X  [2]float64 `json:"x"`
	Y  [2]float64 `json:"y"`
}

func (l *Layer) MarshalJSON() ([]byte, error) {
	wires := make([]jsonWire, 0, len(l.wires))
	for _, w := range l.wires {
		wires = append(wires, jsonWire{w.Name, [2]float64{w.X1, w.X2}, [2]float64{w.Y1, w.Y2}})
	}
	return json.Marshal(struct {
		Wires []jsonWire `json:"wires"`
	}{wires})
}

// WriteTo writes the layer in the textual format read by ParseLayer.
func (l *Layer) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, wire := range l.wires {
		m, err := fmt.Fprintf(w, "wire %s %s %s %s %s\n", wire.Name, coord(wire.X1), coord(wire.Y1), coord(wire.X2), coord(wire.Y2))
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	m, err := io.WriteString(w, "done\n")
	return n + int64(m), err
}
