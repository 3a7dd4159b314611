package entities

import "time"

// Subscription is an edge in the follower graph. The composite unique index
// gives toggle the same upsert-or-delete shape as likes.
type Subscription struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	SubscriberID string `gorm:"type:uuid;uniqueIndex:idx_sub_edge;not null"`
	ChannelID    string `gorm:"type:uuid;uniqueIndex:idx_sub_edge;index;not null"`
	CreatedAt    time.Time
}

func (Subscription) TableName() string { return "subscriptions" }
