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

func SetupCommentRoutes(app *fiber.App, cfg *config.Config, database *gorm.DB) {
	commentRepo := infra_repo.NewCommentRepository(database)
	videoRepo := infra_repo.NewVideoRepository(database)

	commentService := usecases.NewCommentService(commentRepo, videoRepo)
	commentHandler := handlers.NewCommentHandler(commentService)

	requireAuth := middleware.RequireAuth(cfg.Auth)
	optionalAuth := middleware.OptionalAuth(cfg.Auth)

	comments := app.Group("/api/v1/comments")
	comments.Get("/video/:videoId", optionalAuth, commentHandler.List)
	comments.Post("/video/:videoId", requireAuth, commentHandler.Add)
	comments.Patch("/:commentId", requireAuth, commentHandler.Update)
	comments.Delete("/:commentId", requireAuth, commentHandler.Delete)
}
