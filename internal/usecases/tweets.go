package usecases

import (
	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	apierrors "videotube/pkg/errors"
	"videotube/pkg/helper"

	"github.com/google/uuid"
)

type TweetService interface {
	Create(ownerID, content string) (*entities.Tweet, error)
	ListByUser(userID, viewerID string) ([]dto.TweetView, error)
	Update(tweetID, viewerID, content string) (*entities.Tweet, error)
	Delete(tweetID, viewerID string) error
}

type tweetService struct {
	tweets repositories.TweetRepository
	users  repositories.UserRepository
}

func NewTweetService(tweets repositories.TweetRepository, users repositories.UserRepository) TweetService {
	return &tweetService{tweets: tweets, users: users}
}

func (s *tweetService) Create(ownerID, content string) (*entities.Tweet, error) {
	if !helper.RequiredFields(content) {
		return nil, apierrors.Validation("content is required")
	}

	tweet := &entities.Tweet{
		ID:      uuid.NewString(),
		Content: content,
		OwnerID: ownerID,
	}
	if err := s.tweets.Create(tweet); err != nil {
		return nil, apierrors.Internal(err)
	}
	return tweet, nil
}

func (s *tweetService) ListByUser(userID, viewerID string) ([]dto.TweetView, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, lookupErr(err, "user")
	}
	tweets, err := s.tweets.ListByOwner(userID, viewerID)
	if err != nil {
		return nil, apierrors.Internal(err)
	}
	return tweets, nil
}

func (s *tweetService) Update(tweetID, viewerID, content string) (*entities.Tweet, error) {
	if !helper.RequiredFields(content) {
		return nil, apierrors.Validation("content is required")
	}

	tweet, err := s.tweets.GetByID(tweetID)
	if err != nil {
		return nil, lookupErr(err, "tweet")
	}
	if err := assertOwner(tweet.OwnerID, viewerID); err != nil {
		return nil, err
	}

	tweet.Content = content
	if err := s.tweets.Save(tweet); err != nil {
		return nil, apierrors.Internal(err)
	}
	return tweet, nil
}

func (s *tweetService) Delete(tweetID, viewerID string) error {
	tweet, err := s.tweets.GetByID(tweetID)
	if err != nil {
		return lookupErr(err, "tweet")
	}
	if err := assertOwner(tweet.OwnerID, viewerID); err != nil {
		return err
	}
	if err := s.tweets.Delete(tweetID); err != nil {
		return apierrors.Internal(err)
	}
	return nil
}
