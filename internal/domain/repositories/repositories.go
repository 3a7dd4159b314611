package repositories

import (
	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
)

// Each repository owns one table plus the read models that hang off it.
// Aggregation methods take the viewer id ("" = anonymous) to compute the
// viewer-relative flags; anonymous viewers always get false.

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByUsernameOrEmail(username, email string) (*entities.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	UpdateRefreshToken(userID, token string) error

	// TouchWatchHistory records a watch: dedup move-to-front, capped.
	TouchWatchHistory(userID, videoID string) error
	WatchHistory(userID string) ([]dto.VideoSummary, error)
}

type VideoRepository interface {
	Create(video *entities.Video) error
	GetByID(id string) (*entities.Video, error)
	Save(video *entities.Video) error

	// Delete removes the video and, in the same transaction, its likes,
	// comments (and their likes), playlist references and history entries.
	Delete(id string) error

	// IncrementViews bumps the counter atomically in the store.
	IncrementViews(id string) error

	// Feed lists published videos only, joined with owner summaries.
	Feed(params dto.FeedParams) ([]dto.VideoSummary, int64, error)

	// Detail joins like count, subscriber count and the viewer flags.
	Detail(id, viewerID string) (*dto.VideoDetail, error)
}

type CommentRepository interface {
	Create(comment *entities.Comment) error
	GetByID(id string) (*entities.Comment, error)
	Save(comment *entities.Comment) error
	Delete(id string) error
	ListByVideo(videoID, viewerID string, page, limit int) ([]dto.CommentView, int64, error)
}

type LikeRepository interface {
	// Toggle flips the (user, target) edge and reports the new state.
	Toggle(userID, targetKind, targetID string) (liked bool, err error)
	LikedVideos(userID string) ([]dto.VideoSummary, error)
}

type SubscriptionRepository interface {
	// Toggle flips the (subscriber, channel) edge and reports the new state.
	Toggle(subscriberID, channelID string) (subscribed bool, err error)
	Subscribers(channelID string) ([]dto.SubscriberView, error)
	SubscribedChannels(subscriberID string) ([]dto.ChannelView, error)
}

type PlaylistRepository interface {
	Create(playlist *entities.Playlist) error
	GetByID(id string) (*entities.Playlist, error)
	Save(playlist *entities.Playlist) error
	Delete(id string) error

	AddVideo(playlistID, videoID string) error
	RemoveVideo(playlistID, videoID string) error

	Detail(playlistID string) (*dto.PlaylistDetail, error)
	ListByOwner(ownerID string) ([]dto.PlaylistDetail, error)

	// RemoveDanglingRefs drops membership rows whose video no longer exists
	// and returns how many were removed. Run by the sweeper.
	RemoveDanglingRefs() (int64, error)
}

type TweetRepository interface {
	Create(tweet *entities.Tweet) error
	GetByID(id string) (*entities.Tweet, error)
	Save(tweet *entities.Tweet) error
	Delete(id string) error
	ListByOwner(ownerID, viewerID string) ([]dto.TweetView, error)
}
