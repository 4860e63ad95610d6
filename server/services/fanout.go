package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mattermost/msteams-mcp-server/server/recovery"
)

// fanOut calls fn for every item with at most base.cfg.FanoutConcurrency calls in flight and
// returns the results in input order. The first failure cancels the calls not yet started.
func fanOut[T, R any](ctx context.Context, b *base, name string, items []T, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	limit := b.cfg.FanoutConcurrency
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, item := range items {
		g.Go(func() error {
			return recovery.Call(name, recovery.Logrus(b.logger), b.metrics, func() error {
				r, err := fn(gctx, item)
				if err != nil {
					return err
				}
				results[i] = r
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// chunk splits items into consecutive groups of at most size elements.
func chunk[T any](items []T, size int) [][]T {
	var chunks [][]T
	for size < len(items) {
		items, chunks = items[size:], append(chunks, items[:size])
	}
	if len(items) > 0 {
		chunks = append(chunks, items)
	}
	return chunks
}
