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

func SetupLikeRoutes(app *fiber.App, cfg *config.Config, database *gorm.DB) {
	likeRepo := infra_repo.NewLikeRepository(database)
	videoRepo := infra_repo.NewVideoRepository(database)
	commentRepo := infra_repo.NewCommentRepository(database)
	tweetRepo := infra_repo.NewTweetRepository(database)

	likeService := usecases.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	likeHandler := handlers.NewLikeHandler(likeService)

	requireAuth := middleware.RequireAuth(cfg.Auth)

	likes := app.Group("/api/v1/likes", requireAuth)
	likes.Post("/toggle/video/:videoId", likeHandler.ToggleVideo)
	likes.Post("/toggle/comment/:commentId", likeHandler.ToggleComment)
	likes.Post("/toggle/tweet/:tweetId", likeHandler.ToggleTweet)
	likes.Get("/videos", likeHandler.LikedVideos)
}
