package usecases

import (
	"testing"

	infra_repo "videotube/internal/infrastructure/repositories"
	apierrors "videotube/pkg/errors"
)

func newSubscriptionFixture(t *testing.T) (*infra_repo.MemoryStore, SubscriptionService) {
	t.Helper()
	store := infra_repo.NewMemoryStore()
	svc := NewSubscriptionService(store.Subscriptions(), store.Users())
	return store, svc
}

func TestToggleSubscriptionIsInvolutive(t *testing.T) {
	t.Parallel()
	store, svc := newSubscriptionFixture(t)
	channel := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")

	subscribed, err := svc.Toggle(fan.ID, channel.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !subscribed {
		t.Fatal("first toggle must subscribe")
	}

	subscribers, err := svc.Subscribers(channel.ID)
	if err != nil {
		t.Fatalf("subscribers failed: %v", err)
	}
	if len(subscribers) != 1 || subscribers[0].ID != fan.ID {
		t.Fatalf("expected one subscriber, got %d", len(subscribers))
	}

	subscribed, err = svc.Toggle(fan.ID, channel.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if subscribed {
		t.Fatal("second toggle must unsubscribe")
	}

	subscribers, _ = svc.Subscribers(channel.ID)
	if len(subscribers) != 0 {
		t.Fatalf("expected no subscribers, got %d", len(subscribers))
	}
}

func TestSelfSubscriptionRejected(t *testing.T) {
	t.Parallel()
	store, svc := newSubscriptionFixture(t)
	user := seedUser(t, store, "alice")

	_, err := svc.Toggle(user.ID, user.ID)
	wantCode(t, err, apierrors.CodeValidation)
}

func TestToggleSubscriptionMissingChannel(t *testing.T) {
	t.Parallel()
	store, svc := newSubscriptionFixture(t)
	fan := seedUser(t, store, "bob")

	_, err := svc.Toggle(fan.ID, "no-such-channel")
	wantCode(t, err, apierrors.CodeNotFound)
}

func TestSubscriberViewCarriesSecondOrderCounts(t *testing.T) {
	t.Parallel()
	store, svc := newSubscriptionFixture(t)
	channel := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	fanOfFan := seedUser(t, store, "carol")

	if _, err := svc.Toggle(fan.ID, channel.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := svc.Toggle(fanOfFan.ID, fan.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	// The channel follows its fan back.
	if _, err := svc.Toggle(channel.ID, fan.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	subscribers, err := svc.Subscribers(channel.ID)
	if err != nil {
		t.Fatalf("subscribers failed: %v", err)
	}
	if len(subscribers) != 1 {
		t.Fatalf("expected one subscriber, got %d", len(subscribers))
	}
	view := subscribers[0]
	if view.SubscribersCount != 2 {
		t.Fatalf("expected the fan's own subscriber count 2, got %d", view.SubscribersCount)
	}
	if !view.SubscribedBack {
		t.Fatal("expected subscribedBack=true when the channel follows the fan")
	}
}

func TestSubscribedChannelsIncludeLatestVideo(t *testing.T) {
	t.Parallel()
	store, svc := newSubscriptionFixture(t)
	channel := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	seedVideo(t, store, channel.ID, "older", true)
	latest := seedVideo(t, store, channel.ID, "newer", true)
	seedVideo(t, store, channel.ID, "draft", false)

	if _, err := svc.Toggle(fan.ID, channel.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	channels, err := svc.Channels(fan.ID)
	if err != nil {
		t.Fatalf("channels failed: %v", err)
	}
	if len(channels) != 1 {
		t.Fatalf("expected one channel, got %d", len(channels))
	}
	view := channels[0]
	if view.TotalVideos != 2 {
		t.Fatalf("drafts must not count, expected 2 videos, got %d", view.TotalVideos)
	}
	if view.LatestVideo == nil || view.LatestVideo.ID != latest.ID {
		t.Fatal("expected the most recent published video")
	}
}
