package dto

import "time"

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PlaylistVideoView struct {
	VideoSummary
	LikesCount int64 `json:"likesCount"`
}

type PlaylistDetail struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Owner       OwnerSummary        `json:"owner"`
	Videos      []PlaylistVideoView `json:"videos"`
	TotalVideos int64               `json:"totalVideos"`
	TotalViews  int64               `json:"totalViews"`
	CreatedAt   time.Time           `json:"createdAt"`
}
