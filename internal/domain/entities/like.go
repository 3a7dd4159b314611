package entities

import "time"

// Like is a single relation keyed by (liked_by, target_kind, target_id).
// The composite unique index makes toggling an upsert-or-delete instead of a
// find-then-branch, so racing toggles cannot leave duplicate edges.
type Like struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	LikedByID  string `gorm:"type:uuid;uniqueIndex:idx_like_target;not null"`
	TargetKind string `gorm:"size:16;uniqueIndex:idx_like_target;not null"` // video | comment | tweet
	TargetID   string `gorm:"type:uuid;uniqueIndex:idx_like_target;index;not null"`
	CreatedAt  time.Time
}

func (Like) TableName() string { return "likes" }
