package dto

// SubscriberView joins the subscriber's profile with a second-order
// subscriber count and whether that subscriber follows the queried channel
// back.
type SubscriberView struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Avatar           string `json:"avatar"`
	FullName         string `json:"fullName"`
	SubscribersCount int64  `json:"subscribersCount"`
	SubscribedBack   bool   `json:"subscribedBack"`
}

// ChannelView is one channel a user subscribes to, with its published video
// count and most recent published video.
type ChannelView struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`
	Avatar      string        `json:"avatar"`
	FullName    string        `json:"fullName"`
	TotalVideos int64         `json:"totalVideos"`
	LatestVideo *VideoSummary `json:"latestVideo,omitempty"`
}

type ToggleResult struct {
	Liked      *bool `json:"liked,omitempty"`
	Subscribed *bool `json:"subscribed,omitempty"`
}
