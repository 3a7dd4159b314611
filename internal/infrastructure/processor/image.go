package processor

import (
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
)

type ResizeOption struct {
	Width   int
	Height  int
	Quality int // 1-100
}

// Standard sizes for profile imagery. Videos thumbnails keep 16:9, avatars
// are square.
var (
	AvatarSize    = ResizeOption{Width: 400, Height: 400, Quality: 90}
	CoverSize     = ResizeOption{Width: 1280, Height: 360, Quality: 90}
	ThumbnailSize = ResizeOption{Width: 1280, Height: 720, Quality: 85}
)

// NormalizeImage fits the image into the given bounds (ratio preserved) and
// writes it next to the input as a jpeg. Returns the new local path.
func NormalizeImage(inputPath string, option ResizeOption) (string, error) {
	img, err := imaging.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("could not open image: %w", err)
	}

	resized := imaging.Fit(img, option.Width, option.Height, imaging.Lanczos)

	ext := filepath.Ext(inputPath)
	outputPath := inputPath[:len(inputPath)-len(ext)] + fmt.Sprintf("_%dx%d.jpg", option.Width, option.Height)
	if err := imaging.Save(resized, outputPath, imaging.JPEGQuality(option.Quality)); err != nil {
		return "", fmt.Errorf("could not save resized image: %w", err)
	}
	return outputPath, nil
}
