package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "videotube/docs"

	"videotube/internal/delivery/http/routers"
	"videotube/internal/domain/repositories"
	"videotube/internal/infrastructure/db"
	infra_queue "videotube/internal/infrastructure/queue"
	infra_repo "videotube/internal/infrastructure/repositories"
	"videotube/internal/infrastructure/storage"
	"videotube/internal/usecases"
	"videotube/pkg/config"
	consts "videotube/pkg/constants"

	_ "videotube/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
)

// @title        VideoTube API
// @version      1.0
// @description  Backend for a video sharing platform
// @BasePath     /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	database, err := db.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatalf("could not connect to postgres: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		log.Fatalf("could not obtain sql.DB: %v", err)
	}
	if os.Getenv("RUN_AUTO_MIGRATION") == "true" {
		goose.SetBaseFS(nil)
		if err := goose.Up(sqlDB, "."); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	} else if os.Getenv("DB_AUTO_MIGRATE") == "true" {
		// Dev-mode schema sync without goose bookkeeping.
		if err := db.AutoMigrate(database); err != nil {
			log.Fatalf("auto migration failed: %v", err)
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
	})

	store := newMediaStorage(cfg)
	cleanupQueue := infra_queue.NewRedisCleanupQueue(rdb)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxFileSize),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	routers.SetupUserRoutes(app, cfg, database, store)
	routers.SetupVideoRoutes(app, cfg, database, store, cleanupQueue)
	routers.SetupCommentRoutes(app, cfg, database)
	routers.SetupLikeRoutes(app, cfg, database)
	routers.SetupSubscriptionRoutes(app, cfg, database)
	routers.SetupPlaylistRoutes(app, cfg, database)
	routers.SetupTweetRoutes(app, cfg, database)

	// Health check
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cleanup queue consumer
	worker := infra_queue.NewWorker(rdb, store)
	go worker.Run(ctx)

	// Scheduled sweeps: dangling playlist refs and stale staged uploads
	cleanupService := usecases.NewCleanupService(infra_repo.NewPlaylistRepository(database), cfg.Upload.TempDir)
	scheduler := cron.New()
	scheduler.AddFunc("@hourly", func() {
		if _, err := cleanupService.SweepPlaylistRefs(); err != nil {
			log.Printf("playlist sweep failed: %v", err)
		}
	})
	scheduler.AddFunc("@every 30m", func() {
		if err := cleanupService.SweepTempFiles(2 * time.Hour); err != nil {
			log.Printf("temp file sweep failed: %v", err)
		}
	})
	scheduler.Start()

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown signal received, stopping server...")

	scheduler.Stop()
	cancel()

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShut()
	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
	log.Println("Server stopped cleanly")
}

// newMediaStorage picks the media backend: S3 by default, local disk when
// MEDIA_DRIVER=local.
func newMediaStorage(cfg *config.Config) repositories.MediaStorage {
	if os.Getenv("MEDIA_DRIVER") == "local" {
		return storage.NewLocalStorage("uploads", "/static")
	}
	s3Store, err := storage.NewS3Storage(cfg.Media.Bucket, cfg.Media.Region)
	if err != nil {
		log.Fatalf("could not initialize s3 storage: %v", err)
	}
	return s3Store
}
