package repositories

import (
	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) repositories.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Toggle mirrors likeRepository.Toggle: delete-if-present, else insert
// guarded by the composite unique index.
func (r *subscriptionRepository) Toggle(subscriberID, channelID string) (bool, error) {
	res := r.db.Where("subscriber_id = ? AND channel_id = ?",
		subscriberID, channelID).Delete(&entities.Subscription{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	sub := entities.Subscription{
		ID:           uuid.NewString(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&sub).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// Subscribers lists everyone following the channel, each decorated with
// their own follower count (second-order join) and whether the channel
// follows them back.
func (r *subscriptionRepository) Subscribers(channelID string) ([]dto.SubscriberView, error) {
	var rows []struct {
		ID               string
		Username         string
		Avatar           string
		FullName         string
		SubscribersCount int64
		SubscribedBack   bool
	}
	err := r.db.Table("subscriptions").
		Select(`users.id, users.username, users.avatar, users.full_name,
			(SELECT COUNT(*) FROM subscriptions s2 WHERE s2.channel_id = users.id) AS subscribers_count,
			EXISTS(SELECT 1 FROM subscriptions s3 WHERE s3.subscriber_id = ? AND s3.channel_id = users.id) AS subscribed_back`,
			channelID).
		Joins("JOIN users ON users.id = subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelID).
		Order("subscriptions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]dto.SubscriberView, 0, len(rows))
	for _, row := range rows {
		views = append(views, dto.SubscriberView{
			ID:               row.ID,
			Username:         row.Username,
			Avatar:           row.Avatar,
			FullName:         row.FullName,
			SubscribersCount: row.SubscribersCount,
			SubscribedBack:   row.SubscribedBack,
		})
	}
	return views, nil
}

// SubscribedChannels lists the channels a user follows with their published
// video count and latest published video.
func (r *subscriptionRepository) SubscribedChannels(subscriberID string) ([]dto.ChannelView, error) {
	var rows []struct {
		ID          string
		Username    string
		Avatar      string
		FullName    string
		TotalVideos int64
	}
	err := r.db.Table("subscriptions").
		Select(`users.id, users.username, users.avatar, users.full_name,
			(SELECT COUNT(*) FROM videos WHERE videos.owner_id = users.id AND videos.is_published) AS total_videos`).
		Joins("JOIN users ON users.id = subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Order("subscriptions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []dto.ChannelView{}, nil
	}

	channelIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		channelIDs = append(channelIDs, row.ID)
	}

	// One pass for every channel's newest published video.
	var latest []videoRow
	err = r.db.Table("videos").
		Select("DISTINCT ON (videos.owner_id) " + videoRowSelect).
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("videos.owner_id IN ? AND videos.is_published = ?", channelIDs, true).
		Order("videos.owner_id, videos.created_at DESC").
		Scan(&latest).Error
	if err != nil {
		return nil, err
	}
	latestByOwner := make(map[string]dto.VideoSummary, len(latest))
	for _, summary := range toVideoSummaries(latest) {
		latestByOwner[summary.Owner.ID] = summary
	}

	views := make([]dto.ChannelView, 0, len(rows))
	for _, row := range rows {
		view := dto.ChannelView{
			ID:          row.ID,
			Username:    row.Username,
			Avatar:      row.Avatar,
			FullName:    row.FullName,
			TotalVideos: row.TotalVideos,
		}
		if summary, ok := latestByOwner[row.ID]; ok {
			view.LatestVideo = &summary
		}
		views = append(views, view)
	}
	return views, nil
}
