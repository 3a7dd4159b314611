package repositories

import "context"

// CleanupJob is one deferred cleanup step, currently always an asset destroy
// on the media host.
type CleanupJob struct {
	Kind     string `json:"kind"`
	AssetURL string `json:"asset_url"`
	Attempts int    `json:"attempts"`
}

// CleanupQueue makes the best-effort part of a cascade visible and
// retryable instead of silently swallowed.
type CleanupQueue interface {
	Enqueue(ctx context.Context, job CleanupJob) error
}
