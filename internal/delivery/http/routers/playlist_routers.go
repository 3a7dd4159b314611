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

func SetupPlaylistRoutes(app *fiber.App, cfg *config.Config, database *gorm.DB) {
	playlistRepo := infra_repo.NewPlaylistRepository(database)
	videoRepo := infra_repo.NewVideoRepository(database)
	userRepo := infra_repo.NewUserRepository(database)

	playlistService := usecases.NewPlaylistService(playlistRepo, videoRepo, userRepo)
	playlistHandler := handlers.NewPlaylistHandler(playlistService)

	requireAuth := middleware.RequireAuth(cfg.Auth)

	playlists := app.Group("/api/v1/playlists")
	playlists.Post("/", requireAuth, playlistHandler.Create)
	playlists.Get("/user/:userId", playlistHandler.ListByUser)
	playlists.Get("/:playlistId", playlistHandler.Get)
	playlists.Patch("/:playlistId", requireAuth, playlistHandler.Update)
	playlists.Delete("/:playlistId", requireAuth, playlistHandler.Delete)
	playlists.Patch("/:playlistId/videos/:videoId", requireAuth, playlistHandler.AddVideo)
	playlists.Delete("/:playlistId/videos/:videoId", requireAuth, playlistHandler.RemoveVideo)
}
