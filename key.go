package circuit

import (
	"cmp"
	"fmt"
	"math"
)

const (
	lowToken  = math.MinInt
	highToken = math.MaxInt
)

// Key is an element of the RangeIndex. Keys are ordered by their coordinate and, for equal coordinates, by the identity of their wire. Since wire identities are unique, keys of different wires never compare equal.
type Key struct {
	Y     float64
	Wire  *Wire // nil for sentinel keys
	token int
}

// WireKey returns the key of a horizontal wire, keyed by its Y coordinate.
func WireKey(w *Wire) Key {
	return Key{Y: w.Y1, Wire: w, token: w.id}
}

// LowKey returns a key that is smaller than all other keys with the same coordinate. It is used as the lower bound of range queries.
func LowKey(y float64) Key {
	return Key{Y: y, token: lowToken}
}

// HighKey returns a key that is larger than all other keys with the same coordinate. It is used as the upper bound of range queries.
func HighKey(y float64) Key {
	return Key{Y: y, token: highToken}
}

// Compare returns -1, 0, or +1 if a is less than, equal to, or greater than b respectively.
func Compare(a, b Key) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.token, b.token)
}

// Less returns true if a < b.
func (a Key) Less(b Key) bool {
	return Compare(a, b) < 0
}

func (a Key) String() string {
	switch {
	case a.Wire != nil:
		return fmt.Sprintf("%v:%s", num(a.Y), a.Wire.Name)
	case a.token == lowToken:
		return fmt.Sprintf("%v:low", num(a.Y))
	case a.token == highToken:
		return fmt.Sprintf("%v:high", num(a.Y))
	}
	return fmt.Sprintf("%v:%d", num(a.Y), a.token)
}
