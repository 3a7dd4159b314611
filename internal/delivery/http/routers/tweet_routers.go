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

func SetupTweetRoutes(app *fiber.App, cfg *config.Config, database *gorm.DB) {
	tweetRepo := infra_repo.NewTweetRepository(database)
	userRepo := infra_repo.NewUserRepository(database)

	tweetService := usecases.NewTweetService(tweetRepo, userRepo)
	tweetHandler := handlers.NewTweetHandler(tweetService)

	requireAuth := middleware.RequireAuth(cfg.Auth)
	optionalAuth := middleware.OptionalAuth(cfg.Auth)

	tweets := app.Group("/api/v1/tweets")
	tweets.Post("/", requireAuth, tweetHandler.Create)
	tweets.Get("/user/:userId", optionalAuth, tweetHandler.ListByUser)
	tweets.Patch("/:tweetId", requireAuth, tweetHandler.Update)
	tweets.Delete("/:tweetId", requireAuth, tweetHandler.Delete)
}
