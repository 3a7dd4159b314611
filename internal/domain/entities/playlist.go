package entities

import "time"

type Playlist struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	OwnerID     string `gorm:"type:uuid;index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Playlist) TableName() string { return "playlists" }

// PlaylistVideo keeps playlist membership ordered by Position.
type PlaylistVideo struct {
	ID         uint   `gorm:"primaryKey"`
	PlaylistID string `gorm:"type:uuid;uniqueIndex:idx_playlist_video;index;not null"`
	VideoID    string `gorm:"type:uuid;uniqueIndex:idx_playlist_video;index;not null"`
	Position   int    `gorm:"not null"`
	CreatedAt  time.Time
}

func (PlaylistVideo) TableName() string { return "playlist_videos" }
