package repositories

import (
	"time"

	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	"videotube/pkg/constants"

	"gorm.io/gorm"
)

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) repositories.TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(tweet *entities.Tweet) error {
	return r.db.Create(tweet).Error
}

func (r *tweetRepository) GetByID(id string) (*entities.Tweet, error) {
	var tweet entities.Tweet
	if err := r.db.Take(&tweet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *tweetRepository) Save(tweet *entities.Tweet) error {
	return r.db.Save(tweet).Error
}

func (r *tweetRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?",
			constants.TargetTweet, id).Delete(&entities.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Tweet{}).Error
	})
}

func (r *tweetRepository) ListByOwner(ownerID, viewerID string) ([]dto.TweetView, error) {
	viewer := orAnon(viewerID)
	var rows []struct {
		ID            string
		Content       string
		CreatedAt     time.Time
		OwnerID       string
		OwnerUsername string
		OwnerAvatar   string
		LikesCount    int64
		IsLiked       bool
	}
	err := r.db.Table("tweets").
		Select(`tweets.id, tweets.content, tweets.created_at,
			users.id AS owner_id, users.username AS owner_username, users.avatar AS owner_avatar,
			(SELECT COUNT(*) FROM likes WHERE likes.target_kind = ? AND likes.target_id = tweets.id) AS likes_count,
			EXISTS(SELECT 1 FROM likes WHERE likes.target_kind = ? AND likes.target_id = tweets.id AND likes.liked_by_id = ?) AS is_liked`,
			constants.TargetTweet, constants.TargetTweet, viewer).
		Joins("JOIN users ON users.id = tweets.owner_id").
		Where("tweets.owner_id = ?", ownerID).
		Order("tweets.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]dto.TweetView, 0, len(rows))
	for _, row := range rows {
		views = append(views, dto.TweetView{
			ID:        row.ID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			Owner: dto.OwnerSummary{
				ID:       row.OwnerID,
				Username: row.OwnerUsername,
				Avatar:   row.OwnerAvatar,
			},
			LikesCount: row.LikesCount,
			IsLiked:    row.IsLiked,
		})
	}
	return views, nil
}
