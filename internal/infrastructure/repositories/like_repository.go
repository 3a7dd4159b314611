package repositories

import (
	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	"videotube/pkg/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) repositories.LikeRepository {
	return &likeRepository{db: db}
}

// Toggle deletes the edge if present, otherwise inserts it. The insert rides
// the composite unique index with ON CONFLICT DO NOTHING, so two racing
// toggles cannot produce duplicate edges.
func (r *likeRepository) Toggle(userID, targetKind, targetID string) (bool, error) {
	res := r.db.Where("liked_by_id = ? AND target_kind = ? AND target_id = ?",
		userID, targetKind, targetID).Delete(&entities.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	like := entities.Like{
		ID:         uuid.NewString(),
		LikedByID:  userID,
		TargetKind: targetKind,
		TargetID:   targetID,
	}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *likeRepository) LikedVideos(userID string) ([]dto.VideoSummary, error) {
	var rows []videoRow
	err := r.db.Table("likes").
		Select(videoRowSelect).
		Joins("JOIN videos ON videos.id = likes.target_id").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("likes.liked_by_id = ? AND likes.target_kind = ?", userID, constants.TargetVideo).
		Where("videos.is_published = ?", true).
		Order("likes.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toVideoSummaries(rows), nil
}
