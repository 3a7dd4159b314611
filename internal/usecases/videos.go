package usecases

import (
	"context"
	"log/slog"

	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	"videotube/internal/infrastructure/processor"
	"videotube/pkg/constants"
	apierrors "videotube/pkg/errors"
	"videotube/pkg/helper"

	"github.com/google/uuid"
)

type VideoService interface {
	Feed(params dto.FeedParams) (*dto.Page, error)
	Create(ctx context.Context, ownerID, title, description, videoPath, thumbnailPath string) (*entities.Video, error)
	Detail(videoID, viewerID string) (*dto.VideoDetail, error)
	Update(ctx context.Context, videoID, viewerID string, req dto.UpdateVideoRequest, thumbnailPath string) (*entities.Video, error)
	Delete(ctx context.Context, videoID, viewerID string) error
	TogglePublish(videoID, viewerID string) (bool, error)
}

type videoService struct {
	videos  repositories.VideoRepository
	users   repositories.UserRepository
	storage repositories.MediaStorage
	cleanup repositories.CleanupQueue
}

func NewVideoService(
	videos repositories.VideoRepository,
	users repositories.UserRepository,
	storage repositories.MediaStorage,
	cleanup repositories.CleanupQueue,
) VideoService {
	return &videoService{videos: videos, users: users, storage: storage, cleanup: cleanup}
}

func (s *videoService) Feed(params dto.FeedParams) (*dto.Page, error) {
	params.Page, params.Limit = normalizePage(params.Page, params.Limit)
	items, total, err := s.videos.Feed(params)
	if err != nil {
		return nil, apierrors.Internal(err)
	}
	return dto.NewPage(items, total, params.Page, params.Limit), nil
}

// Create uploads both assets and stores the video unpublished; it becomes
// visible in feeds only after an explicit publish toggle.
func (s *videoService) Create(ctx context.Context, ownerID, title, description, videoPath, thumbnailPath string) (*entities.Video, error) {
	if !helper.RequiredFields(title) {
		return nil, apierrors.Validation("title is required")
	}
	if videoPath == "" || thumbnailPath == "" {
		return nil, apierrors.Validation("video file and thumbnail are required")
	}
	if !helper.IsVideoFile(videoPath) {
		return nil, apierrors.Validation("unsupported video format")
	}
	if !helper.IsImageFile(thumbnailPath) {
		return nil, apierrors.Validation("thumbnail must be an image")
	}

	videoAsset, err := s.storage.Upload(ctx, videoPath, constants.FolderVideos)
	if err != nil {
		return nil, apierrors.Upstream("media host rejected the video upload", err)
	}

	thumbnailURL, err := s.uploadThumbnail(ctx, thumbnailPath)
	if err != nil {
		// The video asset is already durable; hand it to the cleanup queue
		// so the failed create leaves nothing behind.
		s.enqueueDestroy(ctx, videoAsset.URL)
		return nil, err
	}

	video := &entities.Video{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		VideoFile:   videoAsset.URL,
		Thumbnail:   thumbnailURL,
		Title:       title,
		Description: description,
		Duration:    videoAsset.Duration,
	}
	if err := s.videos.Create(video); err != nil {
		s.enqueueDestroy(ctx, videoAsset.URL)
		s.enqueueDestroy(ctx, thumbnailURL)
		return nil, apierrors.Internal(err)
	}
	return video, nil
}

func (s *videoService) uploadThumbnail(ctx context.Context, thumbnailPath string) (string, error) {
	normalized, err := processor.NormalizeImage(thumbnailPath, processor.ThumbnailSize)
	if err != nil {
		return "", apierrors.Validation("could not process thumbnail file")
	}
	result, err := s.storage.Upload(ctx, normalized, constants.FolderThumbnails)
	if err != nil {
		return "", apierrors.Upstream("media host rejected the thumbnail upload", err)
	}
	return result.URL, nil
}

func (s *videoService) Detail(videoID, viewerID string) (*dto.VideoDetail, error) {
	detail, err := s.videos.Detail(videoID, viewerID)
	if err != nil {
		return nil, lookupErr(err, "video")
	}
	// Unpublished videos exist only for their owner.
	if !detail.IsPublished && detail.Owner.ID != viewerID {
		return nil, apierrors.NotFound("video not found")
	}

	if viewerID != "" && viewerID != detail.Owner.ID {
		if err := s.videos.IncrementViews(videoID); err != nil {
			return nil, apierrors.Internal(err)
		}
		detail.Views++
		if err := s.users.TouchWatchHistory(viewerID, videoID); err != nil {
			return nil, apierrors.Internal(err)
		}
	}
	return detail, nil
}

func (s *videoService) Update(ctx context.Context, videoID, viewerID string, req dto.UpdateVideoRequest, thumbnailPath string) (*entities.Video, error) {
	video, err := s.videos.GetByID(videoID)
	if err != nil {
		return nil, lookupErr(err, "video")
	}
	if err := assertOwner(video.OwnerID, viewerID); err != nil {
		return nil, err
	}
	if !helper.AnyField(req.Title, req.Description) && thumbnailPath == "" {
		return nil, apierrors.Validation("nothing to update")
	}

	if thumbnailPath != "" {
		if !helper.IsImageFile(thumbnailPath) {
			return nil, apierrors.Validation("thumbnail must be an image")
		}
		thumbnailURL, err := s.uploadThumbnail(ctx, thumbnailPath)
		if err != nil {
			return nil, err
		}
		s.enqueueDestroy(ctx, video.Thumbnail)
		video.Thumbnail = thumbnailURL
	}
	if req.Title != "" {
		video.Title = req.Title
	}
	if req.Description != "" {
		video.Description = req.Description
	}

	if err := s.videos.Save(video); err != nil {
		return nil, apierrors.Internal(err)
	}
	return video, nil
}

// Delete removes the record and every dependent row in one transaction;
// asset destruction is deferred to the cleanup queue.
func (s *videoService) Delete(ctx context.Context, videoID, viewerID string) error {
	video, err := s.videos.GetByID(videoID)
	if err != nil {
		return lookupErr(err, "video")
	}
	if err := assertOwner(video.OwnerID, viewerID); err != nil {
		return err
	}

	if err := s.videos.Delete(videoID); err != nil {
		return apierrors.Internal(err)
	}

	s.enqueueDestroy(ctx, video.VideoFile)
	s.enqueueDestroy(ctx, video.Thumbnail)
	return nil
}

func (s *videoService) enqueueDestroy(ctx context.Context, assetURL string) {
	if assetURL == "" {
		return
	}
	err := s.cleanup.Enqueue(ctx, repositories.CleanupJob{
		Kind:     constants.JobDestroyAsset,
		AssetURL: assetURL,
	})
	if err != nil {
		// Best-effort by design: an orphaned asset is preferable to a
		// failed delete.
		slog.Error("could not enqueue asset cleanup", "asset", assetURL, "err", err)
	}
}

func (s *videoService) TogglePublish(videoID, viewerID string) (bool, error) {
	video, err := s.videos.GetByID(videoID)
	if err != nil {
		return false, lookupErr(err, "video")
	}
	if err := assertOwner(video.OwnerID, viewerID); err != nil {
		return false, err
	}

	video.IsPublished = !video.IsPublished
	if err := s.videos.Save(video); err != nil {
		return false, apierrors.Internal(err)
	}
	return video.IsPublished, nil
}
