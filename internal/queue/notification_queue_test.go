package queue_test

import (
	"context"
	"testing"
	"time"

	"museum-ticketing/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationQueue_PublishAndSubscribe(t *testing.T) {
	q := queue.NewNotificationQueue(10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := q.SubscribeTicketJobs(ctx)
	require.NoError(t, err)

	err = q.PublishTicketJob(ctx, &queue.TicketJob{BookingID: "A1B2C3D4"})
	require.NoError(t, err)

	select {
	case msg := <-msgs:
		assert.Equal(t, "A1B2C3D4", msg.Data.BookingID)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for ticket job")
	}
}

func TestNotificationQueue_NackRequeuesJob(t *testing.T) {
	q := queue.NewNotificationQueue(10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := q.SubscribeTicketJobs(ctx)
	require.NoError(t, err)

	require.NoError(t, q.PublishTicketJob(ctx, &queue.TicketJob{BookingID: "A1B2C3D4"}))

	// 第一次投遞 Nack(requeue) 後應重新投遞同一筆任務
	select {
	case msg := <-msgs:
		msg.Nack(true)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first delivery")
	}

	select {
	case msg := <-msgs:
		assert.Equal(t, "A1B2C3D4", msg.Data.BookingID)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for redelivery")
	}
}

func TestNotificationQueue_SubscribeStopsOnContextCancel(t *testing.T) {
	q := queue.NewNotificationQueue(10)

	ctx, cancel := context.WithCancel(context.Background())

	msgs, err := q.SubscribeTicketJobs(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-msgs:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
