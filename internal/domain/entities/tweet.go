package entities

import "time"

type Tweet struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Content   string `gorm:"type:text;not null"`
	OwnerID   string `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Tweet) TableName() string { return "tweets" }
