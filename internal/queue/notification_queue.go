package queue

import (
	"context"
)

// TicketJob 出票任務：只帶訂票編號，訂票記錄本身是唯一事實來源，
// 票隨時可由已提交的記錄重出。
type TicketJob struct {
	BookingID string `json:"booking_id"`
}

type Delivery struct {
	Data *TicketJob
	Ack  func()
	Nack func(requeue bool)
}

type NotificationQueue interface {
	// 發送出票任務到隊列
	PublishTicketJob(ctx context.Context, job *TicketJob) error
	// 訂閱出票任務隊列
	SubscribeTicketJobs(ctx context.Context) (<-chan Delivery, error)
}

type NotificationQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch chan *TicketJob
}

func NewNotificationQueue(bufferSize int) NotificationQueue {
	return &NotificationQueueImpl{
		ch: make(chan *TicketJob, bufferSize),
	}
}

func (q *NotificationQueueImpl) PublishTicketJob(ctx context.Context, job *TicketJob) error {
	q.ch <- job
	return nil
}

func (q *NotificationQueueImpl) SubscribeTicketJobs(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: job,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- job // 簡單模擬重回隊列
						}
					},
				}
			}
		}
	}()

	return out, nil
}
