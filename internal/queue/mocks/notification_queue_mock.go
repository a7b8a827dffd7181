package mocks

import (
	"context"

	"museum-ticketing/internal/queue"

	"github.com/stretchr/testify/mock"
)

type NotificationQueueMock struct {
	mock.Mock
}

func (m *NotificationQueueMock) PublishTicketJob(ctx context.Context, job *queue.TicketJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *NotificationQueueMock) SubscribeTicketJobs(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
