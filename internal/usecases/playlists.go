package usecases

import (
	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	apierrors "videotube/pkg/errors"
	"videotube/pkg/helper"

	"github.com/google/uuid"
)

type PlaylistService interface {
	Create(ownerID string, req dto.CreatePlaylistRequest) (*entities.Playlist, error)
	Get(playlistID string) (*dto.PlaylistDetail, error)
	Update(playlistID, viewerID string, req dto.UpdatePlaylistRequest) (*entities.Playlist, error)
	Delete(playlistID, viewerID string) error
	AddVideo(playlistID, videoID, viewerID string) (*dto.PlaylistDetail, error)
	RemoveVideo(playlistID, videoID, viewerID string) (*dto.PlaylistDetail, error)
	ListByUser(userID string) ([]dto.PlaylistDetail, error)
}

type playlistService struct {
	playlists repositories.PlaylistRepository
	videos    repositories.VideoRepository
	users     repositories.UserRepository
}

func NewPlaylistService(
	playlists repositories.PlaylistRepository,
	videos repositories.VideoRepository,
	users repositories.UserRepository,
) PlaylistService {
	return &playlistService{playlists: playlists, videos: videos, users: users}
}

func (s *playlistService) Create(ownerID string, req dto.CreatePlaylistRequest) (*entities.Playlist, error) {
	if !helper.RequiredFields(req.Name, req.Description) {
		return nil, apierrors.Validation("name and description are required")
	}

	playlist := &entities.Playlist{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	}
	if err := s.playlists.Create(playlist); err != nil {
		return nil, apierrors.Internal(err)
	}
	return playlist, nil
}

func (s *playlistService) Get(playlistID string) (*dto.PlaylistDetail, error) {
	detail, err := s.playlists.Detail(playlistID)
	if err != nil {
		return nil, lookupErr(err, "playlist")
	}
	return detail, nil
}

func (s *playlistService) Update(playlistID, viewerID string, req dto.UpdatePlaylistRequest) (*entities.Playlist, error) {
	if !helper.AnyField(req.Name, req.Description) {
		return nil, apierrors.Validation("name or description is required")
	}

	playlist, err := s.playlists.GetByID(playlistID)
	if err != nil {
		return nil, lookupErr(err, "playlist")
	}
	if err := assertOwner(playlist.OwnerID, viewerID); err != nil {
		return nil, err
	}

	if req.Name != "" {
		playlist.Name = req.Name
	}
	if req.Description != "" {
		playlist.Description = req.Description
	}
	if err := s.playlists.Save(playlist); err != nil {
		return nil, apierrors.Internal(err)
	}
	return playlist, nil
}

func (s *playlistService) Delete(playlistID, viewerID string) error {
	playlist, err := s.playlists.GetByID(playlistID)
	if err != nil {
		return lookupErr(err, "playlist")
	}
	if err := assertOwner(playlist.OwnerID, viewerID); err != nil {
		return err
	}
	if err := s.playlists.Delete(playlistID); err != nil {
		return apierrors.Internal(err)
	}
	return nil
}

func (s *playlistService) AddVideo(playlistID, videoID, viewerID string) (*dto.PlaylistDetail, error) {
	playlist, err := s.playlists.GetByID(playlistID)
	if err != nil {
		return nil, lookupErr(err, "playlist")
	}
	if err := assertOwner(playlist.OwnerID, viewerID); err != nil {
		return nil, err
	}
	if _, err := s.videos.GetByID(videoID); err != nil {
		return nil, lookupErr(err, "video")
	}

	if err := s.playlists.AddVideo(playlistID, videoID); err != nil {
		return nil, apierrors.Internal(err)
	}
	return s.Get(playlistID)
}

func (s *playlistService) RemoveVideo(playlistID, videoID, viewerID string) (*dto.PlaylistDetail, error) {
	playlist, err := s.playlists.GetByID(playlistID)
	if err != nil {
		return nil, lookupErr(err, "playlist")
	}
	if err := assertOwner(playlist.OwnerID, viewerID); err != nil {
		return nil, err
	}

	if err := s.playlists.RemoveVideo(playlistID, videoID); err != nil {
		return nil, apierrors.Internal(err)
	}
	return s.Get(playlistID)
}

func (s *playlistService) ListByUser(userID string) ([]dto.PlaylistDetail, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, lookupErr(err, "user")
	}
	playlists, err := s.playlists.ListByOwner(userID)
	if err != nil {
		return nil, apierrors.Internal(err)
	}
	return playlists, nil
}
