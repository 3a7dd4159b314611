package constants

// Like target kinds. A like row references exactly one of these.
const (
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetTweet   = "tweet"
)

// Asset folders on the media host.
const (
	FolderVideos     = "videos"
	FolderThumbnails = "thumbnails"
	FolderAvatars    = "avatars"
	FolderCovers     = "covers"
)

// Cleanup queue job kinds.
const (
	JobDestroyAsset = "destroy_asset"
)

const (
	StatusOK = "ok"
)

// WatchHistoryLimit caps per-user watch history; older entries are evicted.
const WatchHistoryLimit = 100
