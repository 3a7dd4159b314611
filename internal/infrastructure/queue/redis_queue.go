package queue

import (
	"context"
	"encoding/json"

	"videotube/internal/domain/repositories"

	"github.com/go-redis/redis/v8"
)

// CleanupQueueKey is the redis list carrying deferred media destroys.
const CleanupQueueKey = "media_cleanup_queue"

type RedisCleanupQueue struct {
	rdb *redis.Client
}

func NewRedisCleanupQueue(rdb *redis.Client) *RedisCleanupQueue {
	return &RedisCleanupQueue{rdb: rdb}
}

func (q *RedisCleanupQueue) Enqueue(ctx context.Context, job repositories.CleanupJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, CleanupQueueKey, payload).Err()
}
