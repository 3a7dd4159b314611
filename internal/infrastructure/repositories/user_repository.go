package repositories

import (
	"time"

	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	"videotube/pkg/constants"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entities.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.Take(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsernameOrEmail(username, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.Take(&user, "username = ? OR email = ?", username, email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UpdateRefreshToken(userID, token string) error {
	return r.db.Model(&entities.User{}).Where("id = ?", userID).
		Update("refresh_token", token).Error
}

func (r *userRepository) TouchWatchHistory(userID, videoID string) error {
	entry := entities.WatchHistoryEntry{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"watched_at": entry.WatchedAt}),
	}).Create(&entry).Error
	if err != nil {
		return err
	}

	// Evict everything beyond the most recent entries.
	return r.db.Exec(`
		DELETE FROM watch_history
		WHERE user_id = ? AND id NOT IN (
			SELECT id FROM watch_history
			WHERE user_id = ?
			ORDER BY watched_at DESC
			LIMIT ?
		)`, userID, userID, constants.WatchHistoryLimit).Error
}

func (r *userRepository) WatchHistory(userID string) ([]dto.VideoSummary, error) {
	var rows []videoRow
	err := r.db.Table("watch_history").
		Select(videoRowSelect).
		Joins("JOIN videos ON videos.id = watch_history.video_id").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("watch_history.user_id = ?", userID).
		Where("videos.is_published = ? OR videos.owner_id = ?", true, userID).
		Order("watch_history.watched_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toVideoSummaries(rows), nil
}
