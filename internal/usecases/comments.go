package usecases

import (
	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	apierrors "videotube/pkg/errors"
	"videotube/pkg/helper"

	"github.com/google/uuid"
)

type CommentService interface {
	List(videoID, viewerID string, page, limit int) (*dto.Page, error)
	Add(videoID, ownerID, content string) (*entities.Comment, error)
	Update(commentID, viewerID, content string) (*entities.Comment, error)
	Delete(commentID, viewerID string) error
}

type commentService struct {
	comments repositories.CommentRepository
	videos   repositories.VideoRepository
}

func NewCommentService(comments repositories.CommentRepository, videos repositories.VideoRepository) CommentService {
	return &commentService{comments: comments, videos: videos}
}

func (s *commentService) List(videoID, viewerID string, page, limit int) (*dto.Page, error) {
	if _, err := s.videos.GetByID(videoID); err != nil {
		return nil, lookupErr(err, "video")
	}

	page, limit = normalizePage(page, limit)
	items, total, err := s.comments.ListByVideo(videoID, viewerID, page, limit)
	if err != nil {
		return nil, apierrors.Internal(err)
	}
	return dto.NewPage(items, total, page, limit), nil
}

func (s *commentService) Add(videoID, ownerID, content string) (*entities.Comment, error) {
	if !helper.RequiredFields(content) {
		return nil, apierrors.Validation("comment content is required")
	}
	if _, err := s.videos.GetByID(videoID); err != nil {
		return nil, lookupErr(err, "video")
	}

	comment := &entities.Comment{
		ID:      uuid.NewString(),
		Content: content,
		VideoID: videoID,
		OwnerID: ownerID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, apierrors.Internal(err)
	}
	return comment, nil
}

func (s *commentService) Update(commentID, viewerID, content string) (*entities.Comment, error) {
	if !helper.RequiredFields(content) {
		return nil, apierrors.Validation("comment content is required")
	}

	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		return nil, lookupErr(err, "comment")
	}
	if err := assertOwner(comment.OwnerID, viewerID); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.comments.Save(comment); err != nil {
		return nil, apierrors.Internal(err)
	}
	return comment, nil
}

func (s *commentService) Delete(commentID, viewerID string) error {
	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		return lookupErr(err, "comment")
	}
	if err := assertOwner(comment.OwnerID, viewerID); err != nil {
		return err
	}
	if err := s.comments.Delete(commentID); err != nil {
		return apierrors.Internal(err)
	}
	return nil
}
