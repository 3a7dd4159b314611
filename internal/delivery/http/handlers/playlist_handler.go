package handlers

import (
	"videotube/internal/delivery/http/middleware"
	"videotube/internal/domain/dto"
	"videotube/internal/usecases"
	apierrors "videotube/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type PlaylistHandler struct {
	playlistService usecases.PlaylistService
}

func NewPlaylistHandler(playlistService usecases.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// Create
//
// @Summary      Create a playlist
// @Tags         Playlists
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreatePlaylistRequest true "Playlist fields"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /playlists [post]
func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return apierrors.HandleError(c, apierrors.Validation("invalid request body"))
	}

	playlist, err := h.playlistService.Create(middleware.Viewer(c), req)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return created(c, playlist, "playlist created")
}

// Get
//
// @Summary      Playlist detail
// @Description  Includes member videos with owner summaries and aggregate totals
// @Tags         Playlists
// @Produce      json
// @Param        playlistId  path  string true "Playlist ID"
// @Success      200  {object}  dto.APIResponse{data=dto.PlaylistDetail}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /playlists/{playlistId} [get]
func (h *PlaylistHandler) Get(c *fiber.Ctx) error {
	detail, err := h.playlistService.Get(c.Params("playlistId"))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, detail, "playlist fetched")
}

// Update
//
// @Summary      Update a playlist
// @Tags         Playlists
// @Accept       json
// @Produce      json
// @Param        playlistId  path  string                    true "Playlist ID"
// @Param        request     body  dto.UpdatePlaylistRequest true "Fields to update"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /playlists/{playlistId} [patch]
func (h *PlaylistHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return apierrors.HandleError(c, apierrors.Validation("invalid request body"))
	}

	playlist, err := h.playlistService.Update(c.Params("playlistId"), middleware.Viewer(c), req)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, playlist, "playlist updated")
}

// Delete
//
// @Summary      Delete a playlist
// @Tags         Playlists
// @Produce      json
// @Param        playlistId  path  string true "Playlist ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /playlists/{playlistId} [delete]
func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	if err := h.playlistService.Delete(c.Params("playlistId"), middleware.Viewer(c)); err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, nil, "playlist deleted")
}

// AddVideo
//
// @Summary      Add a video to a playlist
// @Tags         Playlists
// @Produce      json
// @Param        playlistId  path  string true "Playlist ID"
// @Param        videoId     path  string true "Video ID"
// @Success      200  {object}  dto.APIResponse{data=dto.PlaylistDetail}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /playlists/{playlistId}/videos/{videoId} [patch]
func (h *PlaylistHandler) AddVideo(c *fiber.Ctx) error {
	detail, err := h.playlistService.AddVideo(c.Params("playlistId"), c.Params("videoId"), middleware.Viewer(c))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, detail, "video added to playlist")
}

// RemoveVideo
//
// @Summary      Remove a video from a playlist
// @Tags         Playlists
// @Produce      json
// @Param        playlistId  path  string true "Playlist ID"
// @Param        videoId     path  string true "Video ID"
// @Success      200  {object}  dto.APIResponse{data=dto.PlaylistDetail}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /playlists/{playlistId}/videos/{videoId} [delete]
func (h *PlaylistHandler) RemoveVideo(c *fiber.Ctx) error {
	detail, err := h.playlistService.RemoveVideo(c.Params("playlistId"), c.Params("videoId"), middleware.Viewer(c))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, detail, "video removed from playlist")
}

// ListByUser
//
// @Summary      List a user's playlists
// @Tags         Playlists
// @Produce      json
// @Param        userId  path  string true "User ID"
// @Success      200  {object}  dto.APIResponse{data=[]dto.PlaylistDetail}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /playlists/user/{userId} [get]
func (h *PlaylistHandler) ListByUser(c *fiber.Ctx) error {
	playlists, err := h.playlistService.ListByUser(c.Params("userId"))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, playlists, "playlists fetched")
}
