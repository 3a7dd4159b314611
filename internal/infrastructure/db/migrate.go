package db

import (
	"videotube/internal/domain/entities"

	"gorm.io/gorm"
)

// AutoMigrate is the dev-mode fallback; production schemas come from the
// goose migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.Video{},
		&entities.Comment{},
		&entities.Like{},
		&entities.Subscription{},
		&entities.Playlist{},
		&entities.PlaylistVideo{},
		&entities.Tweet{},
		&entities.WatchHistoryEntry{},
	)
}
