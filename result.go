package circuit

import (
	"fmt"
	"io"
)

// Crossing is a pair of crossing wires. Names are ordered so that A < B, and (X,Y) is the point where they cross.
type Crossing struct {
	A, B string
	X, Y float64
}

// NewCrossing returns the crossing of a horizontal and a vertical wire, in either order.
func NewCrossing(a, b *Wire) Crossing {
	h, v := a, b
	if !a.IsHorizontal() {
		h, v = b, a
	}
	z := Crossing{A: a.Name, B: b.Name, X: v.X1, Y: h.Y1}
	if z.B < z.A {
		z.A, z.B = z.B, z.A
	}
	return z
}

func (z Crossing) String() string {
	return fmt.Sprintf("%s %s", z.A, z.B)
}

// ResultSet records the pairs of crossing wires in the order they were found.
type ResultSet struct {
	crossings []Crossing
}

func NewResultSet() *ResultSet {
	return &ResultSet{}
}

// Add records that wires a and b cross.
func (rs *ResultSet) Add(a, b *Wire) {
	rs.crossings = append(rs.crossings, NewCrossing(a, b))
}

func (rs *ResultSet) Len() int {
	return len(rs.crossings)
}

func (rs *ResultSet) Crossings() []Crossing {
	return rs.crossings
}

// WriteTo writes one line per crossing with both wire names separated by a space.
func (rs *ResultSet) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, z := range rs.crossings {
		m, err := fmt.Fprintln(w, z)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
