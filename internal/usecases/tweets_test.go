package usecases

import (
	"testing"

	infra_repo "videotube/internal/infrastructure/repositories"
	apierrors "videotube/pkg/errors"
)

func newTweetFixture(t *testing.T) (*infra_repo.MemoryStore, TweetService) {
	t.Helper()
	store := infra_repo.NewMemoryStore()
	svc := NewTweetService(store.Tweets(), store.Users())
	return store, svc
}

func TestTweetLifecycle(t *testing.T) {
	t.Parallel()
	store, svc := newTweetFixture(t)
	author := seedUser(t, store, "alice")

	tweet, err := svc.Create(author.ID, "hello world")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	tweets, err := svc.ListByUser(author.ID, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tweets) != 1 || tweets[0].Content != "hello world" {
		t.Fatalf("unexpected listing: %+v", tweets)
	}
	if tweets[0].LikesCount != 0 || tweets[0].IsLiked {
		t.Fatal("fresh tweet must have likesCount=0 isLiked=false")
	}

	if _, err := svc.Update(tweet.ID, author.ID, "edited"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := svc.Delete(tweet.ID, author.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	tweets, _ = svc.ListByUser(author.ID, "")
	if len(tweets) != 0 {
		t.Fatalf("expected empty listing after delete, got %d", len(tweets))
	}
}

func TestTweetMutationsOwnerOnly(t *testing.T) {
	t.Parallel()
	store, svc := newTweetFixture(t)
	author := seedUser(t, store, "alice")
	intruder := seedUser(t, store, "mallory")

	tweet, err := svc.Create(author.ID, "untouchable")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(tweet.ID, intruder.ID, "defaced")
	wantCode(t, err, apierrors.CodeForbidden)

	err = svc.Delete(tweet.ID, intruder.ID)
	wantCode(t, err, apierrors.CodeForbidden)

	stored, err := store.Tweets().GetByID(tweet.ID)
	if err != nil {
		t.Fatalf("tweet must survive rejected mutations: %v", err)
	}
	if stored.Content != "untouchable" {
		t.Fatalf("rejected update must not change the record, content=%q", stored.Content)
	}
}

func TestEmptyTweetRejected(t *testing.T) {
	t.Parallel()
	store, svc := newTweetFixture(t)
	author := seedUser(t, store, "alice")

	_, err := svc.Create(author.ID, "")
	wantCode(t, err, apierrors.CodeValidation)

	_, err = svc.Create(author.ID, "   ")
	wantCode(t, err, apierrors.CodeValidation)
}

func TestTweetListMissingUser(t *testing.T) {
	t.Parallel()
	_, svc := newTweetFixture(t)

	_, err := svc.ListByUser("no-such-user", "")
	wantCode(t, err, apierrors.CodeNotFound)
}
