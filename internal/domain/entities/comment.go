package entities

import "time"

type Comment struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Content   string `gorm:"type:text;not null"`
	VideoID   string `gorm:"type:uuid;index;not null"`
	OwnerID   string `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
