package usecases

import (
	"testing"

	infra_repo "videotube/internal/infrastructure/repositories"
	apierrors "videotube/pkg/errors"
)

func newLikeFixture(t *testing.T) (*infra_repo.MemoryStore, LikeService) {
	t.Helper()
	store := infra_repo.NewMemoryStore()
	svc := NewLikeService(store.Likes(), store.Videos(), store.Comments(), store.Tweets())
	return store, svc
}

func TestToggleVideoLikeIsInvolutive(t *testing.T) {
	t.Parallel()
	store, svc := newLikeFixture(t)
	owner := seedUser(t, store, "alice")
	viewer := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.ID, "likable", true)

	liked, err := svc.ToggleVideo(viewer.ID, video.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !liked {
		t.Fatal("first toggle must like")
	}

	detail, err := store.Videos().Detail(video.ID, viewer.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if detail.LikesCount != 1 || !detail.IsLiked {
		t.Fatalf("expected likesCount=1 isLiked=true, got %d/%v", detail.LikesCount, detail.IsLiked)
	}

	liked, err = svc.ToggleVideo(viewer.ID, video.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if liked {
		t.Fatal("second toggle must unlike")
	}

	detail, _ = store.Videos().Detail(video.ID, viewer.ID)
	if detail.LikesCount != 0 || detail.IsLiked {
		t.Fatalf("expected likesCount=0 isLiked=false, got %d/%v", detail.LikesCount, detail.IsLiked)
	}
}

func TestToggleLikeMissingTarget(t *testing.T) {
	t.Parallel()
	store, svc := newLikeFixture(t)
	viewer := seedUser(t, store, "bob")

	_, err := svc.ToggleVideo(viewer.ID, "no-such-video")
	wantCode(t, err, apierrors.CodeNotFound)

	_, err = svc.ToggleComment(viewer.ID, "no-such-comment")
	wantCode(t, err, apierrors.CodeNotFound)

	_, err = svc.ToggleTweet(viewer.ID, "no-such-tweet")
	wantCode(t, err, apierrors.CodeNotFound)
}

func TestLikeFlagsAreViewerRelative(t *testing.T) {
	t.Parallel()
	store, svc := newLikeFixture(t)
	owner := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	passerby := seedUser(t, store, "carol")
	video := seedVideo(t, store, owner.ID, "likable", true)

	if _, err := svc.ToggleVideo(fan.ID, video.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	forFan, _ := store.Videos().Detail(video.ID, fan.ID)
	forPasserby, _ := store.Videos().Detail(video.ID, passerby.ID)
	forAnon, _ := store.Videos().Detail(video.ID, "")

	if !forFan.IsLiked {
		t.Fatal("liker must see isLiked=true")
	}
	if forPasserby.IsLiked || forAnon.IsLiked {
		t.Fatal("other viewers must see isLiked=false")
	}
	for _, d := range []int64{forFan.LikesCount, forPasserby.LikesCount, forAnon.LikesCount} {
		if d != 1 {
			t.Fatalf("likesCount must be viewer independent, got %d", d)
		}
	}
}

func TestLikedVideosListsOnlyPublished(t *testing.T) {
	t.Parallel()
	store, svc := newLikeFixture(t)
	owner := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	pub := seedVideo(t, store, owner.ID, "public", true)
	draft := seedVideo(t, store, owner.ID, "draft", false)

	if _, err := svc.ToggleVideo(fan.ID, pub.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := svc.ToggleVideo(fan.ID, draft.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	liked, err := svc.LikedVideos(fan.ID)
	if err != nil {
		t.Fatalf("liked videos failed: %v", err)
	}
	if len(liked) != 1 || liked[0].ID != pub.ID {
		t.Fatalf("expected only the published video, got %d entries", len(liked))
	}
}
