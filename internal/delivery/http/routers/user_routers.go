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

func SetupUserRoutes(app *fiber.App, cfg *config.Config, database *gorm.DB, store repositories.MediaStorage) {
	userRepo := infra_repo.NewUserRepository(database)

	userService := usecases.NewUserService(userRepo, store, cfg.Auth)
	userHandler := handlers.NewUserHandler(userService, cfg.Upload, cfg.Auth)

	requireAuth := middleware.RequireAuth(cfg.Auth)

	users := app.Group("/api/v1/users")
	users.Post("/register", userHandler.Register)
	users.Post("/login", userHandler.Login)
	users.Post("/refresh-token", userHandler.Refresh)
	users.Post("/logout", requireAuth, userHandler.Logout)
	users.Get("/me", requireAuth, userHandler.Me)
	users.Get("/history", requireAuth, userHandler.History)
}
