package repositories

import "context"

// UploadResult is what the media host hands back after accepting an asset.
type UploadResult struct {
	URL      string
	Duration int64 // seconds; zero for images
}

// MediaStorage is the media-host adapter: it takes a local file and returns
// a durable URL. Destroy is best-effort; callers route failures to the
// cleanup queue instead of aborting.
type MediaStorage interface {
	Upload(ctx context.Context, localPath, folder string) (*UploadResult, error)
	Destroy(ctx context.Context, assetURL string) error
}
