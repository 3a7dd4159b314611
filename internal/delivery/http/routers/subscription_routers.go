package routers

import (
	"videotube/internal/delivery/http/handlers"
	"videotube/internal/delivery/http/middleware"
	infra_repo "videotube/internal/infrastructure/repositories"
	"videotube/internal/usecases"
	"videotube/pkg/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSubscriptionRoutes(app *fiber.App, cfg *config.Config, database *gorm.DB) {
	subscriptionRepo := infra_repo.NewSubscriptionRepository(database)
	userRepo := infra_repo.NewUserRepository(database)

	subscriptionService := usecases.NewSubscriptionService(subscriptionRepo, userRepo)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)

	requireAuth := middleware.RequireAuth(cfg.Auth)

	subscriptions := app.Group("/api/v1/subscriptions")
	subscriptions.Post("/channel/:channelId", requireAuth, subscriptionHandler.Toggle)
	subscriptions.Get("/channel/:channelId/subscribers", subscriptionHandler.Subscribers)
	subscriptions.Get("/user/:subscriberId/channels", subscriptionHandler.Channels)
}
