package repositories

import (
	"time"

	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	"videotube/pkg/constants"

	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entities.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id string) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.Take(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Save(comment *entities.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?",
			constants.TargetComment, id).Delete(&entities.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Comment{}).Error
	})
}

func (r *commentRepository) ListByVideo(videoID, viewerID string, page, limit int) ([]dto.CommentView, int64, error) {
	var total int64
	err := r.db.Model(&entities.Comment{}).Where("video_id = ?", videoID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

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
	err = r.db.Table("comments").
		Select(`comments.id, comments.content, comments.created_at,
			users.id AS owner_id, users.username AS owner_username, users.avatar AS owner_avatar,
			(SELECT COUNT(*) FROM likes WHERE likes.target_kind = ? AND likes.target_id = comments.id) AS likes_count,
			EXISTS(SELECT 1 FROM likes WHERE likes.target_kind = ? AND likes.target_id = comments.id AND likes.liked_by_id = ?) AS is_liked`,
			constants.TargetComment, constants.TargetComment, viewer).
		Joins("JOIN users ON users.id = comments.owner_id").
		Where("comments.video_id = ?", videoID).
		Order("comments.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]dto.CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, dto.CommentView{
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
	return views, total, nil
}
