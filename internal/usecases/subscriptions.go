package usecases

import (
	"videotube/internal/domain/dto"
	"videotube/internal/domain/repositories"
	apierrors "videotube/pkg/errors"
)

type SubscriptionService interface {
	Toggle(subscriberID, channelID string) (bool, error)
	Subscribers(channelID string) ([]dto.SubscriberView, error)
	Channels(subscriberID string) ([]dto.ChannelView, error)
}

type subscriptionService struct {
	subscriptions repositories.SubscriptionRepository
	users         repositories.UserRepository
}

func NewSubscriptionService(subscriptions repositories.SubscriptionRepository, users repositories.UserRepository) SubscriptionService {
	return &subscriptionService{subscriptions: subscriptions, users: users}
}

func (s *subscriptionService) Toggle(subscriberID, channelID string) (bool, error) {
	// The follower graph stays irreflexive.
	if subscriberID == channelID {
		return false, apierrors.Validation("cannot subscribe to your own channel")
	}
	if _, err := s.users.GetByID(channelID); err != nil {
		return false, lookupErr(err, "channel")
	}

	subscribed, err := s.subscriptions.Toggle(subscriberID, channelID)
	if err != nil {
		return false, apierrors.Internal(err)
	}
	return subscribed, nil
}

func (s *subscriptionService) Subscribers(channelID string) ([]dto.SubscriberView, error) {
	if _, err := s.users.GetByID(channelID); err != nil {
		return nil, lookupErr(err, "channel")
	}
	subscribers, err := s.subscriptions.Subscribers(channelID)
	if err != nil {
		return nil, apierrors.Internal(err)
	}
	return subscribers, nil
}

func (s *subscriptionService) Channels(subscriberID string) ([]dto.ChannelView, error) {
	if _, err := s.users.GetByID(subscriberID); err != nil {
		return nil, lookupErr(err, "user")
	}
	channels, err := s.subscriptions.SubscribedChannels(subscriberID)
	if err != nil {
		return nil, apierrors.Internal(err)
	}
	return channels, nil
}
