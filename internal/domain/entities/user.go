package entities

import "time"

type User struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	FullName     string `gorm:"size:255"`
	Password     string `gorm:"size:255;not null" json:"-"` // bcrypt hash
	Avatar       string `gorm:"size:500"`
	CoverImage   string `gorm:"size:500"`
	RefreshToken string `gorm:"size:500" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }

// WatchHistoryEntry records one video per user; re-watching moves the entry
// to the front instead of appending a duplicate.
type WatchHistoryEntry struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"type:uuid;uniqueIndex:idx_history_user_video;index;not null"`
	VideoID   string `gorm:"type:uuid;uniqueIndex:idx_history_user_video;not null"`
	WatchedAt time.Time
}

func (WatchHistoryEntry) TableName() string { return "watch_history" }
