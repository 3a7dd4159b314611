package usecases

import (
	"testing"

	"videotube/internal/domain/dto"
	infra_repo "videotube/internal/infrastructure/repositories"
	"videotube/pkg/constants"
	apierrors "videotube/pkg/errors"
)

func newPlaylistFixture(t *testing.T) (*infra_repo.MemoryStore, PlaylistService) {
	t.Helper()
	store := infra_repo.NewMemoryStore()
	svc := NewPlaylistService(store.Playlists(), store.Videos(), store.Users())
	return store, svc
}

func TestPlaylistLifecycle(t *testing.T) {
	t.Parallel()
	store, svc := newPlaylistFixture(t)
	owner := seedUser(t, store, "alice")

	playlist, err := svc.Create(owner.ID, dto.CreatePlaylistRequest{
		Name:        "favorites",
		Description: "the good stuff",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(playlist.ID, owner.ID, dto.UpdatePlaylistRequest{Name: "renamed"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "renamed" || updated.Description != "the good stuff" {
		t.Fatalf("partial update went wrong: %+v", updated)
	}

	if err := svc.Delete(playlist.ID, owner.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, err = svc.Get(playlist.ID)
	wantCode(t, err, apierrors.CodeNotFound)
}

func TestPlaylistCreateValidation(t *testing.T) {
	t.Parallel()
	store, svc := newPlaylistFixture(t)
	owner := seedUser(t, store, "alice")

	_, err := svc.Create(owner.ID, dto.CreatePlaylistRequest{Name: "no description"})
	wantCode(t, err, apierrors.CodeValidation)
}

func TestPlaylistMembership(t *testing.T) {
	t.Parallel()
	store, svc := newPlaylistFixture(t)
	owner := seedUser(t, store, "alice")
	first := seedVideo(t, store, owner.ID, "first", true)
	second := seedVideo(t, store, owner.ID, "second", true)

	playlist, err := svc.Create(owner.ID, dto.CreatePlaylistRequest{Name: "mix", Description: "d"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.AddVideo(playlist.ID, first.ID, owner.ID); err != nil {
		t.Fatalf("add video failed: %v", err)
	}
	detail, err := svc.AddVideo(playlist.ID, second.ID, owner.ID)
	if err != nil {
		t.Fatalf("add video failed: %v", err)
	}
	if detail.TotalVideos != 2 {
		t.Fatalf("expected 2 videos, got %d", detail.TotalVideos)
	}
	if detail.Videos[0].ID != first.ID || detail.Videos[1].ID != second.ID {
		t.Fatal("expected insertion order to be preserved")
	}

	// Re-adding is a no-op, not an error.
	detail, err = svc.AddVideo(playlist.ID, first.ID, owner.ID)
	if err != nil {
		t.Fatalf("duplicate add failed: %v", err)
	}
	if detail.TotalVideos != 2 {
		t.Fatalf("duplicate add changed membership, got %d videos", detail.TotalVideos)
	}

	detail, err = svc.RemoveVideo(playlist.ID, first.ID, owner.ID)
	if err != nil {
		t.Fatalf("remove video failed: %v", err)
	}
	if detail.TotalVideos != 1 || detail.Videos[0].ID != second.ID {
		t.Fatalf("unexpected membership after removal: %+v", detail.Videos)
	}
}

func TestPlaylistMutationsOwnerOnly(t *testing.T) {
	t.Parallel()
	store, svc := newPlaylistFixture(t)
	owner := seedUser(t, store, "alice")
	intruder := seedUser(t, store, "mallory")
	video := seedVideo(t, store, owner.ID, "clip", true)

	playlist, err := svc.Create(owner.ID, dto.CreatePlaylistRequest{Name: "mine", Description: "d"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(playlist.ID, intruder.ID, dto.UpdatePlaylistRequest{Name: "stolen"})
	wantCode(t, err, apierrors.CodeForbidden)

	_, err = svc.AddVideo(playlist.ID, video.ID, intruder.ID)
	wantCode(t, err, apierrors.CodeForbidden)

	err = svc.Delete(playlist.ID, intruder.ID)
	wantCode(t, err, apierrors.CodeForbidden)

	// Anyone may read.
	if _, err := svc.Get(playlist.ID); err != nil {
		t.Fatalf("read failed: %v", err)
	}
}

func TestPlaylistAddMissingVideo(t *testing.T) {
	t.Parallel()
	store, svc := newPlaylistFixture(t)
	owner := seedUser(t, store, "alice")

	playlist, err := svc.Create(owner.ID, dto.CreatePlaylistRequest{Name: "mix", Description: "d"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.AddVideo(playlist.ID, "no-such-video", owner.ID)
	wantCode(t, err, apierrors.CodeNotFound)
}

func TestPlaylistAggregates(t *testing.T) {
	t.Parallel()
	store, svc := newPlaylistFixture(t)
	owner := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.ID, "hit", true)

	for i := 0; i < 3; i++ {
		if err := store.Videos().IncrementViews(video.ID); err != nil {
			t.Fatalf("views failed: %v", err)
		}
	}
	if _, err := store.Likes().Toggle(fan.ID, constants.TargetVideo, video.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	playlist, err := svc.Create(owner.ID, dto.CreatePlaylistRequest{Name: "mix", Description: "d"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	detail, err := svc.AddVideo(playlist.ID, video.ID, owner.ID)
	if err != nil {
		t.Fatalf("add video failed: %v", err)
	}

	if detail.TotalViews != 3 {
		t.Fatalf("expected totalViews=3, got %d", detail.TotalViews)
	}
	if detail.Videos[0].LikesCount != 1 {
		t.Fatalf("expected likesCount=1 on the member video, got %d", detail.Videos[0].LikesCount)
	}
}

func TestListPlaylistsByUser(t *testing.T) {
	t.Parallel()
	store, svc := newPlaylistFixture(t)
	owner := seedUser(t, store, "alice")
	otherUser := seedUser(t, store, "bob")

	if _, err := svc.Create(owner.ID, dto.CreatePlaylistRequest{Name: "a", Description: "d"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(owner.ID, dto.CreatePlaylistRequest{Name: "b", Description: "d"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	mine, err := svc.ListByUser(owner.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 playlists, got %d", len(mine))
	}

	theirs, err := svc.ListByUser(otherUser.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("expected no playlists, got %d", len(theirs))
	}

	_, err = svc.ListByUser("no-such-user")
	wantCode(t, err, apierrors.CodeNotFound)
}
