package sortly

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultFetchConcurrency bounds the number of in-flight requests used
// by FetchItems.
const DefaultFetchConcurrency = 10

// FetchItems fetches several items concurrently with bounded
// concurrency. Missing items (404) are skipped rather than reported as
// errors, matching FetchItem. The result order is unspecified.
func (c *Client) FetchItems(ctx context.Context, ids []int) ([]*Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultFetchConcurrency)

	var mu sync.Mutex
	var items []*Item

	for _, id := range ids {
		id := id
		g.Go(func() error {
			item, err := c.FetchItem(ctx, id)
			if err != nil {
				return err
			}
			if item == nil {
				c.logger.Debug().Int("item_id", id).Msg("Item not found, skipping")
				return nil
			}

			mu.Lock()
			items = append(items, item)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
