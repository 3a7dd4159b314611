package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"videotube/internal/domain/repositories"
	"videotube/pkg/helper"

	"github.com/google/uuid"
)

// LocalStorage keeps assets on disk under BasePath and serves them by
// relative URL. Used for development when no bucket is configured.
type LocalStorage struct {
	BasePath string
	BaseURL  string
}

func NewLocalStorage(basePath, baseURL string) *LocalStorage {
	return &LocalStorage{BasePath: basePath, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (l *LocalStorage) Upload(ctx context.Context, localPath, folder string) (*repositories.UploadResult, error) {
	defer os.Remove(localPath)

	name := uuid.NewString() + strings.ToLower(filepath.Ext(localPath))
	fullPath := filepath.Join(l.BasePath, folder, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, fmt.Errorf("could not create asset dir: %w", err)
	}

	src, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("could not open upload file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not create asset file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("could not write asset file: %w", err)
	}

	result := &repositories.UploadResult{
		URL: l.BaseURL + "/" + folder + "/" + name,
	}
	if helper.IsVideoFile(localPath) {
		if duration, err := helper.GetVideoDuration(fullPath); err == nil {
			result.Duration = duration
		}
	}
	return result, nil
}

func (l *LocalStorage) Destroy(ctx context.Context, assetURL string) error {
	rel := strings.TrimPrefix(assetURL, l.BaseURL+"/")
	return os.Remove(filepath.Join(l.BasePath, filepath.FromSlash(rel)))
}
