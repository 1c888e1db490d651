package realm

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"realmctl/pkg/logging"
)

// DefaultRequestInterval is the minimum spacing between detail requests when
// the configuration does not override it. The upstream API enforces a
// request-rate limit, so detail fetches run strictly one at a time.
const DefaultRequestInterval = 50 * time.Millisecond

// ClusterFetcher retrieves one cluster's detail. *Client satisfies it; tests
// substitute fakes.
type ClusterFetcher interface {
	FetchCluster(ctx context.Context, id ClusterID) (ClusterStatus, error)
}

// Result is the orchestrator's output: successfully fetched clusters in
// fetch order, plus the ids that were skipped on per-item failure.
type Result struct {
	Clusters []ClusterStatus
	Skipped  []ClusterID
}

// FetchAll drives the detail fetcher over every id, sequentially and in
// input order, spacing request starts by at least interval. A TransportError
// or MalformedPayloadError on one id is logged and skipped; it never aborts
// the batch. The batch as a whole fails only when the context is cancelled
// or every id of a non-empty input was skipped.
func FetchAll(ctx context.Context, f ClusterFetcher, ids []ClusterID, interval time.Duration) (Result, error) {
	if interval <= 0 {
		interval = DefaultRequestInterval
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	var res Result
	for _, id := range ids {
		if err := limiter.Wait(ctx); err != nil {
			return Result{}, err
		}
		cs, err := f.FetchCluster(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return Result{}, ctx.Err()
			}
			logging.Warn("realm", "skipping cluster %s: %v", id, err)
			res.Skipped = append(res.Skipped, id)
			continue
		}
		res.Clusters = append(res.Clusters, cs)
	}

	if len(ids) > 0 && len(res.Clusters) == 0 {
		return Result{}, &AllFailedError{Attempted: len(ids)}
	}
	return res, nil
}

// FetchRows runs the full pipeline for one region: index, throttled detail
// fetches, flatten. It returns the flattened rows and the number of clusters
// skipped on per-item failure.
func FetchRows(ctx context.Context, p Params, interval time.Duration) ([]RealmRow, int, error) {
	client := NewClient(p)
	ids, err := client.FetchIndex(ctx)
	if err != nil {
		return nil, 0, err
	}
	res, err := FetchAll(ctx, client, ids, interval)
	if err != nil {
		return nil, 0, err
	}
	return Flatten(res.Clusters), len(res.Skipped), nil
}
