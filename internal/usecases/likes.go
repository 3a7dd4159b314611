package usecases

import (
	"videotube/internal/domain/dto"
	"videotube/internal/domain/repositories"
	"videotube/pkg/constants"
	apierrors "videotube/pkg/errors"
)

type LikeService interface {
	ToggleVideo(userID, videoID string) (bool, error)
	ToggleComment(userID, commentID string) (bool, error)
	ToggleTweet(userID, tweetID string) (bool, error)
	LikedVideos(userID string) ([]dto.VideoSummary, error)
}

type likeService struct {
	likes    repositories.LikeRepository
	videos   repositories.VideoRepository
	comments repositories.CommentRepository
	tweets   repositories.TweetRepository
}

func NewLikeService(
	likes repositories.LikeRepository,
	videos repositories.VideoRepository,
	comments repositories.CommentRepository,
	tweets repositories.TweetRepository,
) LikeService {
	return &likeService{likes: likes, videos: videos, comments: comments, tweets: tweets}
}

func (s *likeService) ToggleVideo(userID, videoID string) (bool, error) {
	if _, err := s.videos.GetByID(videoID); err != nil {
		return false, lookupErr(err, "video")
	}
	return s.toggle(userID, constants.TargetVideo, videoID)
}

func (s *likeService) ToggleComment(userID, commentID string) (bool, error) {
	if _, err := s.comments.GetByID(commentID); err != nil {
		return false, lookupErr(err, "comment")
	}
	return s.toggle(userID, constants.TargetComment, commentID)
}

func (s *likeService) ToggleTweet(userID, tweetID string) (bool, error) {
	if _, err := s.tweets.GetByID(tweetID); err != nil {
		return false, lookupErr(err, "tweet")
	}
	return s.toggle(userID, constants.TargetTweet, tweetID)
}

func (s *likeService) toggle(userID, kind, targetID string) (bool, error) {
	liked, err := s.likes.Toggle(userID, kind, targetID)
	if err != nil {
		return false, apierrors.Internal(err)
	}
	return liked, nil
}

func (s *likeService) LikedVideos(userID string) ([]dto.VideoSummary, error) {
	videos, err := s.likes.LikedVideos(userID)
	if err != nil {
		return nil, apierrors.Internal(err)
	}
	return videos, nil
}
