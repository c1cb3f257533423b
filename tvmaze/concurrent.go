package tvmaze

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of in-flight requests of batch helpers
// unless WithConcurrency says otherwise
const DefaultConcurrency = 5

// GetShows fetches several shows concurrently, each with its own GetShow call.
// Results are returned in the order of ids. The first error cancels the
// remaining calls and is returned.
func (c *Client) GetShows(ctx context.Context, ids []int, embed ...string) ([]*Show, error) {
	return fetchAll(ctx, c.limit, ids, func(ctx context.Context, id int) (*Show, error) {
		return c.GetShow(ctx, id, embed...)
	})
}

// GetEpisodes fetches several episodes concurrently, preserving the order of ids
func (c *Client) GetEpisodes(ctx context.Context, ids []int, embed ...string) ([]*Episode, error) {
	return fetchAll(ctx, c.limit, ids, func(ctx context.Context, id int) (*Episode, error) {
		return c.GetEpisode(ctx, id, embed...)
	})
}

func fetchAll[T any](ctx context.Context, limit int, ids []int, fetch func(context.Context, int) (T, error)) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	// each goroutine writes only its own slot
	results := make([]T, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			v, err := fetch(ctx, id)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
