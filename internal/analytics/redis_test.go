package analytics

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/mmisoft/ecom/internal/logging"
)

func newTestRecorder(t *testing.T) (*RedisRecorder, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisRecorder(rdb, logging.NewDiscard()), mr
}

func TestRedisRecorder_Event(t *testing.T) {
	r, mr := newTestRecorder(t)

	r.Event(context.Background(), "login", map[string]string{"method": "email"})

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	msgs, err := rdb.XRange(context.Background(), eventStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "login", msgs[0].Values["event"])
	require.Equal(t, "email", msgs[0].Values["param:method"])
	require.NotEmpty(t, msgs[0].Values["id"])
}

func TestRedisRecorder_UserProperty(t *testing.T) {
	r, mr := newTestRecorder(t)

	r.UserProperty(context.Background(), "plan", "premium")

	got := mr.HGet(userPropertiesKey, "plan")
	require.Equal(t, "premium", got)
}

func TestRedisRecorder_FailureIsSwallowed(t *testing.T) {
	r, mr := newTestRecorder(t)
	mr.Close() // connection gone, both calls must still return

	r.Event(context.Background(), "login", nil)
	r.UserProperty(context.Background(), "plan", "basic")
}

func TestNewRedisClient_PingFails(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "127.0.0.1:1")
	require.Error(t, err)
}
