package circuit

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CountLayers counts the crossings of independent layers in parallel. Counts are returned in the order of layers.
func CountLayers(ctx context.Context, layers []*Layer) ([]int, error) {
	counts := make([]int, len(layers))
	err := eachLayer(ctx, layers, func(i int, layer *Layer) error {
		n, err := NewVerifier(layer).CountCrossings()
		counts[i] = n
		return err
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// ListLayers lists the crossings of independent layers in parallel. Result sets are returned in the order of layers.
func ListLayers(ctx context.Context, layers []*Layer) ([]*ResultSet, error) {
	results := make([]*ResultSet, len(layers))
	err := eachLayer(ctx, layers, func(i int, layer *Layer) error {
		rs, err := NewVerifier(layer).Crossings()
		results[i] = rs
		return err
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func eachLayer(ctx context.Context, layers []*Layer, f func(int, *Layer) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, layer := range layers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(i, layer)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
