package routers

import (
	"videotube/internal/delivery/http/handlers"
	"videotube/internal/delivery/http/middleware"
	"videotube/internal/domain/repositories"
	infra_repo "videotube/internal/infrastructure/repositories"
	"videotube/internal/usecases"
	"videotube/pkg/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVideoRoutes(app *fiber.App, cfg *config.Config, database *gorm.DB, store repositories.MediaStorage, cleanup repositories.CleanupQueue) {
	videoRepo := infra_repo.NewVideoRepository(database)
	userRepo := infra_repo.NewUserRepository(database)

	videoService := usecases.NewVideoService(videoRepo, userRepo, store, cleanup)
	videoHandler := handlers.NewVideoHandler(videoService, cfg.Upload)

	requireAuth := middleware.RequireAuth(cfg.Auth)
	optionalAuth := middleware.OptionalAuth(cfg.Auth)

	videos := app.Group("/api/v1/videos")
	videos.Get("/", optionalAuth, videoHandler.Feed)
	videos.Post("/", requireAuth, videoHandler.Create)
	videos.Get("/:videoId", optionalAuth, videoHandler.Detail)
	videos.Patch("/:videoId", requireAuth, videoHandler.Update)
	videos.Delete("/:videoId", requireAuth, videoHandler.Delete)
	videos.Patch("/:videoId/toggle-publish", requireAuth, videoHandler.TogglePublish)
}
