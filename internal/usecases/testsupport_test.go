package usecases

import (
	"context"
	"errors"
	"image/color"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	infra_repo "videotube/internal/infrastructure/repositories"
	"videotube/pkg/config"
	apierrors "videotube/pkg/errors"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// fakeStorage satisfies MediaStorage without touching any media host. Every
// upload yields a stable URL derived from the folder.
type fakeStorage struct {
	mu         sync.Mutex
	uploads    []string
	destroys   []string
	failFolder string
}

func (f *fakeStorage) Upload(ctx context.Context, localPath, folder string) (*repositories.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFolder != "" && f.failFolder == folder {
		return nil, errors.New("storage unavailable")
	}
	url := "https://cdn.test/" + folder + "/" + filepath.Base(localPath)
	f.uploads = append(f.uploads, url)
	return &repositories.UploadResult{URL: url, Duration: 42}, nil
}

func (f *fakeStorage) Destroy(ctx context.Context, assetURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroys = append(f.destroys, assetURL)
	return nil
}

// fakeQueue records enqueued cleanup jobs.
type fakeQueue struct {
	mu   sync.Mutex
	jobs []repositories.CleanupJob
}

func (f *fakeQueue) Enqueue(ctx context.Context, job repositories.CleanupJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.jobs)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	}
}

// writeTestImage creates a small real jpeg so image normalization succeeds.
func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.jpg")
	img := imaging.New(32, 32, color.White)
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("could not write test image: %v", err)
	}
	return path
}

func seedUser(t *testing.T, store *infra_repo.MemoryStore, username string) *entities.User {
	t.Helper()
	user := &entities.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    username + "@example.com",
		FullName: username,
	}
	if err := store.Users().Create(user); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedVideo(t *testing.T, store *infra_repo.MemoryStore, ownerID, title string, published bool) *entities.Video {
	t.Helper()
	video := &entities.Video{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		VideoFile:   "https://cdn.test/videos/" + title + ".mp4",
		Thumbnail:   "https://cdn.test/thumbnails/" + title + ".jpg",
		Duration:    120,
		IsPublished: published,
	}
	if err := store.Videos().Create(video); err != nil {
		t.Fatalf("seed video %s: %v", title, err)
	}
	return video
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var ae *apierrors.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if ae.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, ae.Code, ae.Message)
	}
}
