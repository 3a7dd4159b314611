package handlers

import (
	"videotube/internal/delivery/http/middleware"
	"videotube/internal/domain/dto"
	"videotube/internal/usecases"
	apierrors "videotube/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type TweetHandler struct {
	tweetService usecases.TweetService
}

func NewTweetHandler(tweetService usecases.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// Create
//
// @Summary      Post a tweet
// @Tags         Tweets
// @Accept       json
// @Produce      json
// @Param        request  body  dto.TweetRequest true "Tweet content"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /tweets [post]
func (h *TweetHandler) Create(c *fiber.Ctx) error {
	var req dto.TweetRequest
	if err := c.BodyParser(&req); err != nil {
		return apierrors.HandleError(c, apierrors.Validation("invalid request body"))
	}

	tweet, err := h.tweetService.Create(middleware.Viewer(c), req.Content)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return created(c, tweet, "tweet posted")
}

// ListByUser
//
// @Summary      List a user's tweets
// @Tags         Tweets
// @Produce      json
// @Param        userId  path  string true "User ID"
// @Success      200  {object}  dto.APIResponse{data=[]dto.TweetView}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tweets/user/{userId} [get]
func (h *TweetHandler) ListByUser(c *fiber.Ctx) error {
	tweets, err := h.tweetService.ListByUser(c.Params("userId"), middleware.Viewer(c))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, tweets, "tweets fetched")
}

// Update
//
// @Summary      Edit a tweet
// @Tags         Tweets
// @Accept       json
// @Produce      json
// @Param        tweetId  path  string           true "Tweet ID"
// @Param        request  body  dto.TweetRequest true "New content"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /tweets/{tweetId} [patch]
func (h *TweetHandler) Update(c *fiber.Ctx) error {
	var req dto.TweetRequest
	if err := c.BodyParser(&req); err != nil {
		return apierrors.HandleError(c, apierrors.Validation("invalid request body"))
	}

	tweet, err := h.tweetService.Update(c.Params("tweetId"), middleware.Viewer(c), req.Content)
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, tweet, "tweet updated")
}

// Delete
//
// @Summary      Delete a tweet
// @Tags         Tweets
// @Produce      json
// @Param        tweetId  path  string true "Tweet ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /tweets/{tweetId} [delete]
func (h *TweetHandler) Delete(c *fiber.Ctx) error {
	if err := h.tweetService.Delete(c.Params("tweetId"), middleware.Viewer(c)); err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, nil, "tweet deleted")
}
