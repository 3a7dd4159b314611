package usecases

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"videotube/internal/domain/entities"
	infra_repo "videotube/internal/infrastructure/repositories"

	"github.com/google/uuid"
)

func TestSweepPlaylistRefs(t *testing.T) {
	t.Parallel()
	store := infra_repo.NewMemoryStore()
	owner := seedUser(t, store, "alice")
	video := seedVideo(t, store, owner.ID, "kept", true)

	playlist := &entities.Playlist{ID: uuid.NewString(), Name: "mix", Description: "d", OwnerID: owner.ID}
	if err := store.Playlists().Create(playlist); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.Playlists().AddVideo(playlist.ID, video.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	// A membership row pointing at a video that no longer exists.
	if err := store.Playlists().AddVideo(playlist.ID, "ghost-video"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	svc := NewCleanupService(store.Playlists(), t.TempDir())
	removed, err := svc.SweepPlaylistRefs()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed ref, got %d", removed)
	}

	detail, err := store.Playlists().Detail(playlist.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if detail.TotalVideos != 1 || detail.Videos[0].ID != video.ID {
		t.Fatalf("unexpected membership after sweep: %+v", detail.Videos)
	}
}

func TestSweepTempFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	stale := filepath.Join(dir, "stale.mp4")
	fresh := filepath.Join(dir, "fresh.mp4")
	for _, path := range []string{stale, fresh} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	old := time.Now().Add(-3 * time.Hour)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatalf("chtimes failed: %v", err)
	}

	store := infra_repo.NewMemoryStore()
	svc := NewCleanupService(store.Playlists(), dir)
	if err := svc.SweepTempFiles(time.Hour); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatal("stale file must be removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatalf("fresh file must survive: %v", err)
	}
}
