package handlers

import (
	"videotube/internal/delivery/http/middleware"
	"videotube/internal/usecases"
	apierrors "videotube/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type SubscriptionHandler struct {
	subscriptionService usecases.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService usecases.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Toggle
//
// @Summary      Toggle a subscription
// @Description  Subscribes the viewer to the channel, or unsubscribes if already subscribed
// @Tags         Subscriptions
// @Produce      json
// @Param        channelId  path  string true "Channel (user) ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /subscriptions/channel/{channelId} [post]
func (h *SubscriptionHandler) Toggle(c *fiber.Ctx) error {
	subscribed, err := h.subscriptionService.Toggle(middleware.Viewer(c), c.Params("channelId"))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, fiber.Map{"subscribed": subscribed}, "subscription toggled")
}

// Subscribers
//
// @Summary      List a channel's subscribers
// @Tags         Subscriptions
// @Produce      json
// @Param        channelId  path  string true "Channel (user) ID"
// @Success      200  {object}  dto.APIResponse{data=[]dto.SubscriberView}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /subscriptions/channel/{channelId}/subscribers [get]
func (h *SubscriptionHandler) Subscribers(c *fiber.Ctx) error {
	subscribers, err := h.subscriptionService.Subscribers(c.Params("channelId"))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, subscribers, "subscribers fetched")
}

// Channels
//
// @Summary      List channels a user subscribes to
// @Tags         Subscriptions
// @Produce      json
// @Param        subscriberId  path  string true "Subscriber (user) ID"
// @Success      200  {object}  dto.APIResponse{data=[]dto.ChannelView}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /subscriptions/user/{subscriberId}/channels [get]
func (h *SubscriptionHandler) Channels(c *fiber.Ctx) error {
	channels, err := h.subscriptionService.Channels(c.Params("subscriberId"))
	if err != nil {
		return apierrors.HandleError(c, err)
	}
	return ok(c, channels, "subscribed channels fetched")
}
