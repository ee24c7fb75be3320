package circuit

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ErrInvalidGeometry is returned for wires that are neither horizontal nor vertical.
var ErrInvalidGeometry = errors.New("wire is neither horizontal nor vertical")

// Wire is a straight wire in one layer of an on-chip circuit. Wires are immutable and are either horizontal or vertical. Endpoints are normalized so that X1 <= X2 and Y1 <= Y2.
type Wire struct {
	Name   string
	X1, Y1 float64
	X2, Y2 float64

	id int // unique within a layer, breaks ties between equal coordinates
}

// NewWire returns a wire between (x1,y1) and (x2,y2). The id must be unique amongst all wires that are verified together, it is usually handed out by a Layer.
func NewWire(id int, name string, x1, y1, x2, y2 float64) (*Wire, error) {
	for _, f := range [4]float64{x1, y1, x2, y2} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %s has a non-finite coordinate", ErrInvalidGeometry, name)
		}
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}

	w := &Wire{
		Name: name,
		X1:   x1,
		Y1:   y1,
		X2:   x2,
		Y2:   y2,
		id:   id,
	}
	if w.IsHorizontal() == w.IsVertical() {
		// either a point or a diagonal
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, w)
	}
	return w, nil
}

// ID returns the wire's numeric identity.
func (w *Wire) ID() int {
	return w.id
}

// IsHorizontal is true if the endpoints have the same Y coordinate.
func (w *Wire) IsHorizontal() bool {
	return w.Y1 == w.Y2
}

// IsVertical is true if the endpoints have the same X coordinate.
func (w *Wire) IsVertical() bool {
	return w.X1 == w.X2
}

// Intersects returns true if w crosses or touches o. Wires of the same orientation never intersect since wires may cross but never overlap.
func (w *Wire) Intersects(o *Wire) bool {
	if w.IsHorizontal() == o.IsHorizontal() {
		return false
	}

	h, v := w, o
	if !w.IsHorizontal() {
		h, v = o, w
	}
	return v.Y1 <= h.Y1 && h.Y1 <= v.Y2 && h.X1 <= v.X1 && v.X1 <= h.X2
}

// Bound returns the bounding box of the wire.
func (w *Wire) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{w.X1, w.Y1},
		Max: orb.Point{w.X2, w.Y2},
	}
}

func (w *Wire) String() string {
	return fmt.Sprintf("<wire %s (%v,%v)-(%v,%v)>", w.Name, num(w.X1), num(w.Y1), num(w.X2), num(w.Y2))
}
