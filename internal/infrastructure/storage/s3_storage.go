package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"videotube/internal/domain/repositories"
	"videotube/pkg/helper"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Storage is the media-host adapter. Upload moves a local temp file to the
// bucket and returns its durable URL; the temp file is removed either way,
// matching the "local file is always consumed" contract.
type S3Storage struct {
	client     *s3.Client
	bucketName string
	region     string
}

func NewS3Storage(bucketName, region string) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("could not load AWS config: %w", err)
	}
	return &S3Storage{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		region:     region,
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, localPath, folder string) (*repositories.UploadResult, error) {
	defer os.Remove(localPath)

	file, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("could not open upload file: %w", err)
	}
	defer file.Close()

	key := folder + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(localPath))
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(helper.GetMimeTypeFromExtension(localPath)),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 upload failed: %w", err)
	}

	result := &repositories.UploadResult{
		URL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key),
	}
	if helper.IsVideoFile(localPath) {
		// Probe before the temp file disappears; a probe failure leaves
		// duration at zero rather than failing the upload.
		if duration, err := helper.GetVideoDuration(localPath); err == nil {
			result.Duration = duration
		}
	}
	return result, nil
}

func (s *S3Storage) Destroy(ctx context.Context, assetURL string) error {
	key, err := s.keyFromURL(assetURL)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) keyFromURL(assetURL string) (string, error) {
	parsed, err := url.Parse(assetURL)
	if err != nil {
		return "", fmt.Errorf("invalid asset url %q: %w", assetURL, err)
	}
	return strings.TrimPrefix(parsed.Path, "/"), nil
}
