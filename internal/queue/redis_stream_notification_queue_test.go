package queue_test

import (
	"context"
	"testing"
	"time"

	"museum-ticketing/config"
	"museum-ticketing/internal/database"
	"museum-ticketing/internal/queue"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStreamQueue(t *testing.T, cfg *queue.RedisStreamQueueConfig) (queue.NotificationQueue, *redis.Client) {
	t.Helper()

	testCfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&testCfg.Redis)
	if err != nil {
		t.Skipf("test redis unavailable: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })

	require.NoError(t, rdb.Del(context.Background(), queue.StreamKey).Err())

	q, err := queue.NewRedisStreamNotificationQueue(rdb, t.Name(), cfg)
	require.NoError(t, err)
	return q, rdb
}

func TestRedisStreamQueue_PublishAndConsume(t *testing.T) {
	q, _ := setupStreamQueue(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := q.SubscribeTicketJobs(ctx)
	require.NoError(t, err)

	require.NoError(t, q.PublishTicketJob(ctx, &queue.TicketJob{BookingID: "A1B2C3D4"}))

	select {
	case msg := <-msgs:
		assert.Equal(t, "A1B2C3D4", msg.Data.BookingID)
		msg.Ack()
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for ticket job from stream")
	}
}

func TestRedisStreamQueue_NackRequeueRedeliversViaAutoClaim(t *testing.T) {
	q, _ := setupStreamQueue(t, &queue.RedisStreamQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 100 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := q.SubscribeTicketJobs(ctx)
	require.NoError(t, err)

	require.NoError(t, q.PublishTicketJob(ctx, &queue.TicketJob{BookingID: "A1B2C3D4"}))

	// 第一次投遞 Nack(requeue)：訊息留在 PEL
	select {
	case msg := <-msgs:
		msg.Nack(true)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first delivery")
	}

	// 超過 ClaimMinIdleTime 後 XAUTOCLAIM 應領回並重新投遞
	select {
	case msg := <-msgs:
		assert.Equal(t, "A1B2C3D4", msg.Data.BookingID)
		msg.Ack()
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for autoclaim redelivery")
	}
}

func TestRedisStreamQueue_AckRemovesFromPending(t *testing.T) {
	q, rdb := setupStreamQueue(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := q.SubscribeTicketJobs(ctx)
	require.NoError(t, err)

	require.NoError(t, q.PublishTicketJob(ctx, &queue.TicketJob{BookingID: "A1B2C3D4"}))

	select {
	case msg := <-msgs:
		msg.Ack()
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}

	pending, err := rdb.XPending(ctx, queue.StreamKey, queue.ConsumerGroupName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}
