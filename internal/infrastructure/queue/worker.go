package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"videotube/internal/domain/repositories"
	"videotube/pkg/constants"

	"github.com/go-redis/redis/v8"
)

const maxDestroyAttempts = 5

// Worker drains the cleanup queue and executes destroys against the media
// host. Failures requeue the job with a backoff until the attempt budget is
// spent; a dropped job is logged loudly rather than silently lost.
type Worker struct {
	rdb     *redis.Client
	storage repositories.MediaStorage
}

func NewWorker(rdb *redis.Client, storage repositories.MediaStorage) *Worker {
	return &Worker{rdb: rdb, storage: storage}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	for {
		val, err := w.rdb.BRPop(ctx, 5*time.Second, CleanupQueueKey).Result()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if err != redis.Nil {
				slog.Error("cleanup queue pop failed", "err", err)
				time.Sleep(time.Second)
			}
			continue
		}

		var job repositories.CleanupJob
		if err := json.Unmarshal([]byte(val[1]), &job); err != nil {
			slog.Error("cleanup job deserialize failed", "err", err)
			continue
		}
		w.process(ctx, job)
	}
}

func (w *Worker) process(ctx context.Context, job repositories.CleanupJob) {
	if job.Kind != constants.JobDestroyAsset {
		slog.Warn("unknown cleanup job kind", "kind", job.Kind)
		return
	}

	if err := w.storage.Destroy(ctx, job.AssetURL); err != nil {
		job.Attempts++
		if job.Attempts >= maxDestroyAttempts {
			slog.Error("dropping cleanup job after repeated failures",
				"asset", job.AssetURL, "attempts", job.Attempts, "err", err)
			return
		}
		slog.Warn("asset destroy failed, requeueing",
			"asset", job.AssetURL, "attempt", job.Attempts, "err", err)

		payload, merr := json.Marshal(job)
		if merr != nil {
			slog.Error("cleanup job serialize failed", "err", merr)
			return
		}
		if perr := w.rdb.LPush(ctx, CleanupQueueKey, payload).Err(); perr != nil {
			slog.Error("cleanup job requeue failed", "asset", job.AssetURL, "err", perr)
		}
		return
	}
	slog.Info("asset destroyed", "asset", job.AssetURL)
}
