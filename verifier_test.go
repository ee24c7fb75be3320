package circuit

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

type testWire struct {
	name           string
	x1, y1, x2, y2 float64
}

func newTestLayer(t *testing.T, wires []testWire) *Layer {
	t.Helper()
	layer := NewLayer()
	for _, w := range wires {
		_, err := layer.AddWire(w.name, w.x1, w.y1, w.x2, w.y2)
		test.Error(t, err)
	}
	return layer
}

func gridWires(n int) []testWire {
	wires := []testWire{}
	for i := 0; i < n; i++ {
		wires = append(wires, testWire{fmt.Sprintf("h%d", i), -1.0, float64(i), float64(n), float64(i)})
		wires = append(wires, testWire{fmt.Sprintf("v%d", i), float64(i), -1.0, float64(i), float64(n)})
	}
	return wires
}

func crossingNames(rs *ResultSet) [][2]string {
	names := [][2]string{}
	for _, z := range rs.Crossings() {
		names = append(names, [2]string{z.A, z.B})
	}
	return names
}

func TestVerifier(t *testing.T) {
	var tts = []struct {
		name      string
		wires     []testWire
		crossings [][2]string
	}{
		{"single", []testWire{
			{"h", 0.0, 0.0, 10.0, 0.0},
			{"v", 5.0, -5.0, 5.0, 5.0},
		}, [][2]string{{"h", "v"}}},
		{"parallel", []testWire{
			{"h1", 0.0, 0.0, 10.0, 0.0},
			{"h2", 0.0, 5.0, 10.0, 5.0},
			{"v", 3.0, -1.0, 3.0, 2.0},
		}, [][2]string{{"h1", "v"}}},
		{"touch right end", []testWire{
			{"h", 0.0, 0.0, 10.0, 0.0},
			{"v", 10.0, -5.0, 10.0, 5.0},
		}, [][2]string{{"h", "v"}}},
		{"touch left end", []testWire{
			{"h", 0.0, 0.0, 10.0, 0.0},
			{"v", 0.0, -5.0, 0.0, 5.0},
		}, [][2]string{{"h", "v"}}},
		{"touch vertical end", []testWire{
			{"h", 0.0, 5.0, 10.0, 5.0},
			{"v", 4.0, -5.0, 4.0, 5.0},
		}, [][2]string{{"h", "v"}}},
		{"disjoint", []testWire{
			{"h", 0.0, 0.0, 10.0, 0.0},
			{"v", 20.0, -5.0, 20.0, 5.0},
			{"h2", 30.0, 30.0, 40.0, 30.0},
		}, [][2]string{}},
		{"ended before query", []testWire{
			{"h", 0.0, 0.0, 4.0, 0.0},
			{"v", 5.0, -5.0, 5.0, 5.0},
		}, [][2]string{}},
		{"started after query", []testWire{
			{"h", 6.0, 0.0, 10.0, 0.0},
			{"v", 5.0, -5.0, 5.0, 5.0},
		}, [][2]string{}},
		{"canonical order", []testWire{
			{"b", 0.0, 0.0, 10.0, 0.0},
			{"a", 5.0, -5.0, 5.0, 5.0},
			{"c", 7.0, -5.0, 7.0, 5.0},
		}, [][2]string{{"a", "b"}, {"b", "c"}}},
		{"sweep order", []testWire{
			{"h1", 0.0, 0.0, 10.0, 0.0},
			{"h2", 0.0, 2.0, 10.0, 2.0},
			{"v2", 8.0, -1.0, 8.0, 3.0},
			{"v1", 1.0, -1.0, 1.0, 3.0},
		}, [][2]string{{"h1", "v1"}, {"h2", "v1"}, {"h1", "v2"}, {"h2", "v2"}}},
		{"empty", []testWire{}, [][2]string{}},
		{"only horizontal", []testWire{
			{"h1", 0.0, 0.0, 10.0, 0.0},
			{"h2", 0.0, 0.0, 10.0, 0.0},
		}, [][2]string{}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewVerifier(newTestLayer(t, tt.wires)).CountCrossings()
			test.Error(t, err)
			test.T(t, n, len(tt.crossings))

			rs, err := NewVerifier(newTestLayer(t, tt.wires)).Crossings()
			test.Error(t, err)
			test.T(t, crossingNames(rs), tt.crossings)
		})
	}
}

func TestVerifierGrid(t *testing.T) {
	layer := newTestLayer(t, gridWires(10))
	n, err := NewVerifier(layer).CountCrossings()
	test.Error(t, err)
	test.T(t, n, 100)

	rs, err := NewVerifier(layer).Crossings()
	test.Error(t, err)
	test.T(t, rs.Len(), 100)

	seen := map[[2]string]bool{}
	for _, z := range rs.Crossings() {
		test.That(t, z.A < z.B, z)
		test.That(t, !seen[[2]string{z.A, z.B}], "duplicate", z)
		test.That(t, !seen[[2]string{z.B, z.A}], "duplicate", z)
		seen[[2]string{z.A, z.B}] = true

		h, v := layer.Wire(z.A), layer.Wire(z.B)
		test.That(t, h.IsHorizontal() && v.IsVertical())
		test.Float(t, z.X, v.X1)
		test.Float(t, z.Y, h.Y1)
	}
}

func TestVerifierAlreadyPerformed(t *testing.T) {
	v := NewVerifier(newTestLayer(t, gridWires(2)))
	n, err := v.CountCrossings()
	test.Error(t, err)
	test.T(t, n, 4)

	_, err = v.Crossings()
	test.That(t, errors.Is(err, ErrAlreadyPerformed), err)
	_, err = v.CountCrossings()
	test.That(t, errors.Is(err, ErrAlreadyPerformed), err)

	v = NewVerifier(newTestLayer(t, gridWires(2)))
	_, err = v.Crossings()
	test.Error(t, err)
	_, err = v.Crossings()
	test.That(t, errors.Is(err, ErrAlreadyPerformed), err)
}

func TestVerifierRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for k := 0; k < 20; k++ {
		t.Run(fmt.Sprint(k), func(t *testing.T) {
			// small coordinate range to produce many touching and coinciding endpoints
			layer := NewLayer()
			for i := 0; i < 80; i++ {
				a, b, c := float64(r.IntN(15)), float64(r.IntN(15)), float64(r.IntN(15))
				if a == b {
					b++
				}
				var err error
				if r.IntN(2) == 0 {
					_, err = layer.AddWire(fmt.Sprintf("h%d", i), a, c, b, c)
				} else {
					_, err = layer.AddWire(fmt.Sprintf("v%d", i), c, a, c, b)
				}
				test.Error(t, err)
			}

			expected := [][2]string{}
			wires := layer.Wires()
			for i, a := range wires {
				for _, b := range wires[i+1:] {
					if a.Intersects(b) {
						z := NewCrossing(a, b)
						expected = append(expected, [2]string{z.A, z.B})
					}
				}
			}

			n, err := NewVerifier(layer).CountCrossings()
			test.Error(t, err)
			test.T(t, n, len(expected))

			rs, err := NewVerifier(layer).Crossings()
			test.Error(t, err)
			names := crossingNames(rs)
			cmp := func(a, b [2]string) int {
				if c := strings.Compare(a[0], b[0]); c != 0 {
					return c
				}
				return strings.Compare(a[1], b[1])
			}
			slices.SortFunc(names, cmp)
			slices.SortFunc(expected, cmp)
			test.T(t, names, expected)
		})
	}
}

func TestSweepEvents(t *testing.T) {
	layer := newTestLayer(t, []testWire{
		{"h", 0.0, 0.0, 5.0, 0.0},
		{"v", 5.0, -5.0, 5.0, 5.0},
		{"h2", 5.0, 1.0, 10.0, 1.0},
	})
	q := newSweepEvents(layer.Wires())
	test.String(t, q.String(), "0 0 activate h\n1 5 activate h2\n2 5 query v\n3 5 deactivate h\n4 10 deactivate h2")
	test.T(t, len(q), 5) // printing does not consume the queue
}
