package usecases

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"videotube/internal/domain/repositories"
)

type CleanupService interface {
	// SweepPlaylistRefs removes playlist entries whose video is gone.
	SweepPlaylistRefs() (int64, error)

	// SweepTempFiles removes stale files from the upload staging directory.
	SweepTempFiles(maxAge time.Duration) error
}

type cleanupService struct {
	playlists repositories.PlaylistRepository
	tempDir   string
}

func NewCleanupService(playlists repositories.PlaylistRepository, tempDir string) CleanupService {
	return &cleanupService{playlists: playlists, tempDir: tempDir}
}

func (s *cleanupService) SweepPlaylistRefs() (int64, error) {
	removed, err := s.playlists.RemoveDanglingRefs()
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		slog.Info("removed dangling playlist refs", "count", removed)
	}
	return removed, nil
}

func (s *cleanupService) SweepTempFiles(maxAge time.Duration) error {
	entries, err := os.ReadDir(s.tempDir)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, entry := range entries {
		path := filepath.Join(s.tempDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			if err := os.RemoveAll(path); err != nil {
				slog.Warn("failed to remove stale temp file", "path", path, "error", err)
				continue
			}
			slog.Info("removed stale temp file", "path", path)
		}
	}
	return nil
}
