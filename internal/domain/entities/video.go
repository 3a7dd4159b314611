package entities

import "time"

type Video struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	OwnerID     string `gorm:"type:uuid;index;not null"`
	VideoFile   string `gorm:"size:500;not null"` // durable URL on the media host
	Thumbnail   string `gorm:"size:500;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Duration    int64  `gorm:"not null"` // seconds
	Views       int64  `gorm:"not null;default:0"`
	IsPublished bool   `gorm:"not null;default:false;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (Video) TableName() string { return "videos" }
