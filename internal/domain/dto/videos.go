package dto

import "time"

// FeedParams are the video feed inputs. Page and Limit are normalized by the
// usecase; SortBy is restricted to a whitelist in the repository.
type FeedParams struct {
	Page     int
	Limit    int
	Query    string
	OwnerID  string
	SortBy   string
	SortDesc bool
}

type UpdateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// OwnerSummary is the joined owner projection embedded in view models.
type OwnerSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type VideoSummary struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Thumbnail   string       `json:"thumbnail"`
	Duration    int64        `json:"duration"`
	Views       int64        `json:"views"`
	CreatedAt   time.Time    `json:"createdAt"`
	Owner       OwnerSummary `json:"owner"`
}

type VideoDetail struct {
	VideoSummary
	VideoFile        string `json:"videoFile"`
	IsPublished      bool   `json:"isPublished"`
	LikesCount       int64  `json:"likesCount"`
	IsLiked          bool   `json:"isLiked"`
	SubscribersCount int64  `json:"subscribersCount"`
	IsSubscribed     bool   `json:"isSubscribed"`
}
