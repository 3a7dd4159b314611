package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	infra_queue "videotube/internal/infrastructure/queue"
	"videotube/internal/infrastructure/storage"
	"videotube/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

// Standalone cleanup consumer. Run it separately when asset destroys should
// not share the API process.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
	})

	s3Store, err := storage.NewS3Storage(cfg.Media.Bucket, cfg.Media.Region)
	if err != nil {
		log.Fatalf("could not initialize s3 storage: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	log.Println("Cleanup worker started")
	infra_queue.NewWorker(rdb, s3Store).Run(ctx)
	log.Println("Cleanup worker stopped")
}
