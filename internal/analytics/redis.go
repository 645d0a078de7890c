package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mmisoft/ecom/internal/logging"
)

const (
	eventStream       = "analytics:events"
	userPropertiesKey = "analytics:user_properties"
)

// RedisRecorder appends events to a Redis stream consumed by the analytics
// pipeline. Failed writes are logged at warn and dropped.
type RedisRecorder struct {
	rdb *redis.Client
	log logging.Logger
}

func NewRedisRecorder(rdb *redis.Client, log logging.Logger) *RedisRecorder {
	return &RedisRecorder{rdb: rdb, log: log}
}

// NewRedisClient connects to addr and verifies connectivity.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (r *RedisRecorder) Event(ctx context.Context, name string, params map[string]string) {
	values := map[string]any{
		"id":    uuid.NewString(),
		"event": name,
		"ts":    time.Now().UnixMilli(),
	}
	for k, v := range params {
		values["param:"+k] = v
	}

	if err := r.rdb.XAdd(ctx, &redis.XAddArgs{Stream: eventStream, Values: values}).Err(); err != nil {
		r.log.Warn(ctx, "analytics event dropped", "event", name, "error", err)
	}
}

func (r *RedisRecorder) UserProperty(ctx context.Context, name, value string) {
	if err := r.rdb.HSet(ctx, userPropertiesKey, name, value).Err(); err != nil {
		r.log.Warn(ctx, "analytics user property dropped", "name", name, "error", err)
	}
}
