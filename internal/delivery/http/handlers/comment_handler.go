package handlers

import (
	"videotube/internal/delivery/http/middleware"
	"videotube/internal/domain/dto"
	"videotube/internal/usecases"
	apierrors "videotube/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	commentService usecases.CommentService
}

func NewCommentHandler(commentService usecases.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List
//
// @Summary      List comments on a video
// @Tags         Comments
// @Produce      json
// @Param        videoId  path   string true  "Video ID"
// @Param        page     query  int    false "Page (1-based)"
// @Param        limit    query  int    false "Page size"
// @Success      200  {object}  dto.APIResponse{data=dto.Page}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /comments/video/{videoId} [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	page, err := h.commentService.List(
		c.Params("videoId"),
		middleware.Viewer(c),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 10),
	)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, page, "comments fetched")
}

// Add
//
// @Summary      Comment on a video
// @Tags         Comments
// @Accept       json
// @Produce      json
// @Param        videoId  path  string                 true "Video ID"
// @Param        request  body  dto.AddCommentRequest  true "Comment content"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /comments/video/{videoId} [post]
func (h *CommentHandler) Add(c *fiber.Ctx) error {
	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apierrors.HandleError(c, apierrors.Validation("invalid request body"))
	}

	comment, err := h.commentService.Add(c.Params("videoId"), middleware.Viewer(c), req.Content)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return created(c, comment, "comment added")
}

// Update
//
// @Summary      Edit a comment
// @Tags         Comments
// @Accept       json
// @Produce      json
// @Param        commentId  path  string                 true "Comment ID"
// @Param        request    body  dto.AddCommentRequest  true "New content"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /comments/{commentId} [patch]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apierrors.HandleError(c, apierrors.Validation("invalid request body"))
	}

	comment, err := h.commentService.Update(c.Params("commentId"), middleware.Viewer(c), req.Content)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, comment, "comment updated")
}

// Delete
//
// @Summary      Delete a comment
// @Tags         Comments
// @Produce      json
// @Param        commentId  path  string true "Comment ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	if err := h.commentService.Delete(c.Params("commentId"), middleware.Viewer(c)); err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, nil, "comment deleted")
}
