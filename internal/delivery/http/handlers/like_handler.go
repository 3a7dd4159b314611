package handlers

import (
	"videotube/internal/delivery/http/middleware"
	"videotube/internal/usecases"
	apierrors "videotube/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type LikeHandler struct {
	likeService usecases.LikeService
}

func NewLikeHandler(likeService usecases.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleVideo
//
// @Summary      Toggle a video like
// @Tags         Likes
// @Produce      json
// @Param        videoId  path  string true "Video ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /likes/toggle/video/{videoId} [post]
func (h *LikeHandler) ToggleVideo(c *fiber.Ctx) error {
	liked, err := h.likeService.ToggleVideo(middleware.Viewer(c), c.Params("videoId"))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, fiber.Map{"liked": liked}, "video like toggled")
}

// ToggleComment
//
// @Summary      Toggle a comment like
// @Tags         Likes
// @Produce      json
// @Param        commentId  path  string true "Comment ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /likes/toggle/comment/{commentId} [post]
func (h *LikeHandler) ToggleComment(c *fiber.Ctx) error {
	liked, err := h.likeService.ToggleComment(middleware.Viewer(c), c.Params("commentId"))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, fiber.Map{"liked": liked}, "comment like toggled")
}

// ToggleTweet
//
// @Summary      Toggle a tweet like
// @Tags         Likes
// @Produce      json
// @Param        tweetId  path  string true "Tweet ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /likes/toggle/tweet/{tweetId} [post]
func (h *LikeHandler) ToggleTweet(c *fiber.Ctx) error {
	liked, err := h.likeService.ToggleTweet(middleware.Viewer(c), c.Params("tweetId"))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, fiber.Map{"liked": liked}, "tweet like toggled")
}

// LikedVideos
//
// @Summary      Videos the viewer has liked
// @Tags         Likes
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.VideoSummary}
// @Security     ApiKeyAuth
// @Router       /likes/videos [get]
func (h *LikeHandler) LikedVideos(c *fiber.Ctx) error {
	videos, err := h.likeService.LikedVideos(middleware.Viewer(c))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, videos, "liked videos fetched")
}
