package usecases

import (
	"fmt"
	"testing"

	"videotube/internal/domain/dto"
	infra_repo "videotube/internal/infrastructure/repositories"
	apierrors "videotube/pkg/errors"
)

func newCommentFixture(t *testing.T) (*infra_repo.MemoryStore, CommentService) {
	t.Helper()
	store := infra_repo.NewMemoryStore()
	svc := NewCommentService(store.Comments(), store.Videos())
	return store, svc
}

func TestCommentRoundTrip(t *testing.T) {
	t.Parallel()
	store, svc := newCommentFixture(t)
	owner := seedUser(t, store, "alice")
	commenter := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.ID, "discussable", true)

	comment, err := svc.Add(video.ID, commenter.ID, "first!")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	page, err := svc.List(video.ID, commenter.ID, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.TotalCount != 1 {
		t.Fatalf("expected 1 comment, got %d", page.TotalCount)
	}
	views := page.Items.([]dto.CommentView)
	view := views[0]
	if view.ID != comment.ID || view.Content != "first!" {
		t.Fatalf("unexpected comment view: %+v", view)
	}
	if view.Owner.Username != "bob" {
		t.Fatalf("expected joined owner summary, got %+v", view.Owner)
	}
	if view.LikesCount != 0 || view.IsLiked {
		t.Fatalf("fresh comment must have likesCount=0 isLiked=false, got %d/%v",
			view.LikesCount, view.IsLiked)
	}
}

func TestCommentsNewestFirstAndPaginated(t *testing.T) {
	t.Parallel()
	store, svc := newCommentFixture(t)
	owner := seedUser(t, store, "alice")
	video := seedVideo(t, store, owner.ID, "busy", true)

	for i := 0; i < 15; i++ {
		if _, err := svc.Add(video.ID, owner.ID, fmt.Sprintf("comment %d", i)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	page, err := svc.List(video.ID, "", 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.TotalCount != 15 || page.TotalPages != 2 {
		t.Fatalf("expected total=15 pages=2, got total=%d pages=%d", page.TotalCount, page.TotalPages)
	}
	views := page.Items.([]dto.CommentView)
	if len(views) != 10 {
		t.Fatalf("expected 10 items, got %d", len(views))
	}
	if views[0].Content != "comment 14" {
		t.Fatalf("expected newest first, got %q", views[0].Content)
	}
}

func TestCommentOnMissingVideo(t *testing.T) {
	t.Parallel()
	store, svc := newCommentFixture(t)
	commenter := seedUser(t, store, "bob")

	_, err := svc.Add("no-such-video", commenter.ID, "hello?")
	wantCode(t, err, apierrors.CodeNotFound)

	_, err = svc.List("no-such-video", "", 1, 10)
	wantCode(t, err, apierrors.CodeNotFound)
}

func TestCommentUpdateAndDeleteOwnerOnly(t *testing.T) {
	t.Parallel()
	store, svc := newCommentFixture(t)
	owner := seedUser(t, store, "alice")
	commenter := seedUser(t, store, "bob")
	intruder := seedUser(t, store, "mallory")
	video := seedVideo(t, store, owner.ID, "discussable", true)

	comment, err := svc.Add(video.ID, commenter.ID, "original")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	_, err = svc.Update(comment.ID, intruder.ID, "defaced")
	wantCode(t, err, apierrors.CodeForbidden)

	stored, _ := store.Comments().GetByID(comment.ID)
	if stored.Content != "original" {
		t.Fatalf("rejected update must not change the record, content=%q", stored.Content)
	}

	err = svc.Delete(comment.ID, intruder.ID)
	wantCode(t, err, apierrors.CodeForbidden)

	updated, err := svc.Update(comment.ID, commenter.ID, "edited")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("expected edited content, got %q", updated.Content)
	}

	if err := svc.Delete(comment.ID, commenter.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := store.Comments().GetByID(comment.ID); err == nil {
		t.Fatal("comment must be gone after delete")
	}
}

func TestEmptyCommentRejected(t *testing.T) {
	t.Parallel()
	store, svc := newCommentFixture(t)
	owner := seedUser(t, store, "alice")
	video := seedVideo(t, store, owner.ID, "discussable", true)

	_, err := svc.Add(video.ID, owner.ID, "")
	wantCode(t, err, apierrors.CodeValidation)
}
