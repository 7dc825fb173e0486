package svgtiles

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Extract flattens every tile of doc with the settings in cfg. Tiles are
// processed concurrently, at most cfg.Workers at a time, and returned in
// document order.
func Extract(ctx context.Context, doc *Svg, cfg Config) ([]TileChains, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fl, err := cfg.Flattener()
	if err != nil {
		return nil, err
	}

	out := make([]TileChains, len(doc.Tiles))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, t := range doc.Tiles {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tc, err := t.Chains(fl, cfg.TileWidth, cfg.TileHeight, cfg.Strict)
			if err != nil {
				return err
			}
			out[i] = tc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
