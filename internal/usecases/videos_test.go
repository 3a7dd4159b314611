package usecases

import (
	"context"
	"path/filepath"
	"testing"

	"videotube/internal/domain/dto"
	infra_repo "videotube/internal/infrastructure/repositories"
	"videotube/pkg/constants"
	apierrors "videotube/pkg/errors"
)

func newVideoFixture(t *testing.T) (*infra_repo.MemoryStore, VideoService, *fakeQueue) {
	t.Helper()
	store := infra_repo.NewMemoryStore()
	queue := &fakeQueue{}
	svc := NewVideoService(store.Videos(), store.Users(), &fakeStorage{}, queue)
	return store, svc, queue
}

func TestCreateVideoStartsUnpublished(t *testing.T) {
	t.Parallel()
	store, svc, _ := newVideoFixture(t)
	owner := seedUser(t, store, "alice")

	thumb := writeTestImage(t)
	video, err := svc.Create(context.Background(), owner.ID, "first upload", "a description",
		filepath.Join(t.TempDir(), "clip.mp4"), thumb)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if video.IsPublished {
		t.Fatal("new videos must start unpublished")
	}
	if video.Duration != 42 {
		t.Fatalf("expected probed duration 42, got %d", video.Duration)
	}

	page, err := svc.Feed(dto.FeedParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if page.TotalCount != 0 {
		t.Fatalf("unpublished video leaked into the feed, total=%d", page.TotalCount)
	}

	published, err := svc.TogglePublish(video.ID, owner.ID)
	if err != nil {
		t.Fatalf("toggle publish failed: %v", err)
	}
	if !published {
		t.Fatal("expected publish toggle to report published")
	}

	page, err = svc.Feed(dto.FeedParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if page.TotalCount != 1 {
		t.Fatalf("published video missing from the feed, total=%d", page.TotalCount)
	}
}

func TestCreateVideoValidation(t *testing.T) {
	t.Parallel()
	store, svc, _ := newVideoFixture(t)
	owner := seedUser(t, store, "alice")

	_, err := svc.Create(context.Background(), owner.ID, "", "", "clip.mp4", "thumb.jpg")
	wantCode(t, err, apierrors.CodeValidation)

	_, err = svc.Create(context.Background(), owner.ID, "title", "", "clip.exe", "thumb.jpg")
	wantCode(t, err, apierrors.CodeValidation)
}

func TestCreateVideoCleansUpAfterThumbnailFailure(t *testing.T) {
	t.Parallel()
	store := infra_repo.NewMemoryStore()
	queue := &fakeQueue{}
	storage := &fakeStorage{failFolder: constants.FolderThumbnails}
	svc := NewVideoService(store.Videos(), store.Users(), storage, queue)
	owner := seedUser(t, store, "alice")

	thumb := writeTestImage(t)
	_, err := svc.Create(context.Background(), owner.ID, "half-done", "",
		filepath.Join(t.TempDir(), "clip.mp4"), thumb)
	wantCode(t, err, apierrors.CodeUpstream)

	// The already-uploaded video asset must be handed to the cleanup queue.
	if queue.len() != 1 {
		t.Fatalf("expected 1 queued destroy for the orphaned asset, got %d", queue.len())
	}
}

func TestUnpublishedDetailHiddenFromOthers(t *testing.T) {
	t.Parallel()
	store, svc, _ := newVideoFixture(t)
	owner := seedUser(t, store, "alice")
	other := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.ID, "draft", false)

	if _, err := svc.Detail(video.ID, owner.ID); err != nil {
		t.Fatalf("owner should see their unpublished video: %v", err)
	}

	_, err := svc.Detail(video.ID, other.ID)
	wantCode(t, err, apierrors.CodeNotFound)

	_, err = svc.Detail(video.ID, "")
	wantCode(t, err, apierrors.CodeNotFound)
}

func TestDetailCountsViewsAndRecordsHistory(t *testing.T) {
	t.Parallel()
	store, svc, _ := newVideoFixture(t)
	owner := seedUser(t, store, "alice")
	viewer := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.ID, "watchme", true)

	detail, err := svc.Detail(video.ID, viewer.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if detail.Views != 1 {
		t.Fatalf("expected 1 view, got %d", detail.Views)
	}

	// Watching twice bumps views but keeps one history entry.
	if _, err := svc.Detail(video.ID, viewer.ID); err != nil {
		t.Fatalf("second detail failed: %v", err)
	}
	history, err := store.Users().WatchHistory(viewer.ID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected deduplicated history, got %d entries", len(history))
	}
	if history[0].Views != 2 {
		t.Fatalf("expected 2 views after rewatch, got %d", history[0].Views)
	}
}

func TestAnonymousAndOwnerViewsDoNotCount(t *testing.T) {
	t.Parallel()
	store, svc, _ := newVideoFixture(t)
	owner := seedUser(t, store, "alice")
	video := seedVideo(t, store, owner.ID, "watchme", true)

	if _, err := svc.Detail(video.ID, ""); err != nil {
		t.Fatalf("anonymous detail failed: %v", err)
	}
	if _, err := svc.Detail(video.ID, owner.ID); err != nil {
		t.Fatalf("owner detail failed: %v", err)
	}

	stored, err := store.Videos().GetByID(video.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Views != 0 {
		t.Fatalf("expected 0 views, got %d", stored.Views)
	}
}

func TestUpdateVideoOwnerOnly(t *testing.T) {
	t.Parallel()
	store, svc, _ := newVideoFixture(t)
	owner := seedUser(t, store, "alice")
	other := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.ID, "original", true)

	_, err := svc.Update(context.Background(), video.ID, other.ID,
		dto.UpdateVideoRequest{Title: "hijacked"}, "")
	wantCode(t, err, apierrors.CodeForbidden)

	stored, _ := store.Videos().GetByID(video.ID)
	if stored.Title != "original" {
		t.Fatalf("rejected update must not change the record, title=%q", stored.Title)
	}

	updated, err := svc.Update(context.Background(), video.ID, owner.ID,
		dto.UpdateVideoRequest{Title: "renamed"}, "")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "renamed" {
		t.Fatalf("expected renamed title, got %q", updated.Title)
	}
}

func TestDeleteVideoCascadesAndQueuesDestroys(t *testing.T) {
	t.Parallel()
	store, svc, queue := newVideoFixture(t)
	owner := seedUser(t, store, "alice")
	commenter := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.ID, "doomed", true)

	commentSvc := NewCommentService(store.Comments(), store.Videos())
	comment, err := commentSvc.Add(video.ID, commenter.ID, "nice video")
	if err != nil {
		t.Fatalf("comment failed: %v", err)
	}
	likeSvc := NewLikeService(store.Likes(), store.Videos(), store.Comments(), store.Tweets())
	if _, err := likeSvc.ToggleVideo(commenter.ID, video.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if _, err := likeSvc.ToggleComment(owner.ID, comment.ID); err != nil {
		t.Fatalf("comment like failed: %v", err)
	}

	if err := svc.Delete(context.Background(), video.ID, owner.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	_, err = svc.Detail(video.ID, owner.ID)
	wantCode(t, err, apierrors.CodeNotFound)

	if _, err := store.Comments().GetByID(comment.ID); err == nil {
		t.Fatal("comment survived the cascade")
	}

	liked, err := store.Likes().LikedVideos(commenter.ID)
	if err != nil {
		t.Fatalf("liked videos failed: %v", err)
	}
	if len(liked) != 0 {
		t.Fatalf("likes survived the cascade, got %d", len(liked))
	}

	if queue.len() != 2 {
		t.Fatalf("expected 2 queued asset destroys, got %d", queue.len())
	}
}

func TestDeleteVideoForbiddenForNonOwner(t *testing.T) {
	t.Parallel()
	store, svc, queue := newVideoFixture(t)
	owner := seedUser(t, store, "alice")
	intruder := seedUser(t, store, "mallory")
	video := seedVideo(t, store, owner.ID, "keepme", true)

	err := svc.Delete(context.Background(), video.ID, intruder.ID)
	wantCode(t, err, apierrors.CodeForbidden)

	if _, err := store.Videos().GetByID(video.ID); err != nil {
		t.Fatalf("video must survive a rejected delete: %v", err)
	}
	if queue.len() != 0 {
		t.Fatalf("no destroys may be queued for a rejected delete, got %d", queue.len())
	}
}

func TestFeedFiltersAndPaginates(t *testing.T) {
	t.Parallel()
	store, svc, _ := newVideoFixture(t)
	owner := seedUser(t, store, "alice")
	seedVideo(t, store, owner.ID, "go tutorial", true)
	seedVideo(t, store, owner.ID, "rust tutorial", true)
	seedVideo(t, store, owner.ID, "cooking show", true)

	page, err := svc.Feed(dto.FeedParams{Page: 1, Limit: 10, Query: "tutorial"})
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if page.TotalCount != 2 {
		t.Fatalf("expected 2 matches, got %d", page.TotalCount)
	}

	page, err = svc.Feed(dto.FeedParams{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if page.TotalCount != 3 || page.TotalPages != 2 {
		t.Fatalf("expected total=3 pages=2, got total=%d pages=%d", page.TotalCount, page.TotalPages)
	}
	items := page.Items.([]dto.VideoSummary)
	if len(items) != 1 {
		t.Fatalf("expected 1 item on the last page, got %d", len(items))
	}
}
