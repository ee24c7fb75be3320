package circuit

import (
	"context"
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestCountLayers(t *testing.T) {
	layers := []*Layer{
		newTestLayer(t, gridWires(10)),
		newTestLayer(t, gridWires(3)),
		NewLayer(),
		newTestLayer(t, []testWire{
			{"h", 0.0, 0.0, 10.0, 0.0},
			{"v", 5.0, -5.0, 5.0, 5.0},
		}),
	}
	counts, err := CountLayers(context.Background(), layers)
	test.Error(t, err)
	test.T(t, counts, []int{100, 9, 0, 1})

	results, err := ListLayers(context.Background(), layers)
	test.Error(t, err)
	test.T(t, len(results), 4)
	for i, rs := range results {
		test.T(t, rs.Len(), counts[i])
	}
	test.T(t, results[3].Crossings(), []Crossing{{"h", "v", 5.0, 0.0}})
}

func TestCountLayersCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CountLayers(ctx, []*Layer{newTestLayer(t, gridWires(2))})
	test.That(t, errors.Is(err, context.Canceled), err)
}
