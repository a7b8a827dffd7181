package worker

import (
	"context"
	"errors"
	"time"

	"museum-ticketing/internal/mail"
	"museum-ticketing/internal/queue"
	"museum-ticketing/internal/repository"
	"museum-ticketing/internal/ticket"
	"museum-ticketing/monitoring"
	apperrors "museum-ticketing/pkg/app_errors"
	"museum-ticketing/pkg/logger"

	"go.uber.org/zap"
)

// NotificationWorker 把「已提交的訂票」變成「寄到信箱的票」。
// 任何失敗都只影響這封信，不影響訂票記錄本身。
type NotificationWorker interface {
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	bookings   repository.BookingRepository
	queue      queue.NotificationQueue
	renderer   ticket.Renderer
	mailer     mail.Mailer
	jobTimeout time.Duration
}

const defaultJobTimeout = 30 * time.Second

func NewNotificationWorker(
	bookings repository.BookingRepository,
	notifyQueue queue.NotificationQueue,
	renderer ticket.Renderer,
	mailer mail.Mailer,
	jobTimeout time.Duration,
) NotificationWorker {
	if jobTimeout <= 0 {
		jobTimeout = defaultJobTimeout
	}
	return &NotificationWorkerImpl{
		bookings:   bookings,
		queue:      notifyQueue,
		renderer:   renderer,
		mailer:     mailer,
		jobTimeout: jobTimeout,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeTicketJobs(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			w.process(ctx, msg)
		}
	}()
	return nil
}

func (w *NotificationWorkerImpl) process(ctx context.Context, msg queue.Delivery) {
	log := logger.WithComponent("worker").With(zap.String("booking_id", msg.Data.BookingID))

	jobCtx, cancel := context.WithTimeout(ctx, w.jobTimeout)
	defer cancel()

	booking, err := w.bookings.FindByBookingID(jobCtx, msg.Data.BookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			// 查無此訂票代表任務已無意義，丟棄而非無限重試
			log.Warn("ticket job references unknown booking, discarding")
			monitoring.ObserveNotification(monitoring.NotifyDiscarded)
			msg.Ack()
			return
		}
		log.Error("failed to load booking for ticket job", zap.Error(err))
		msg.Nack(true)
		return
	}

	artifact, err := w.renderer.Render(booking)
	if err != nil {
		// 出票失敗是軟性錯誤：訂票仍然有效，留待重試
		log.Error("ticket render failed", zap.Error(err))
		monitoring.ObserveNotification(monitoring.NotifyRenderFailed)
		msg.Nack(true)
		return
	}

	if err := w.mailer.SendTicket(jobCtx, booking, artifact); err != nil {
		log.Error("ticket delivery failed", zap.String("email", booking.Email), zap.Error(err))
		monitoring.ObserveNotification(monitoring.NotifyDeliveryFailed)
		msg.Nack(true)
		return
	}

	log.Info("ticket delivered", zap.String("email", booking.Email))
	monitoring.ObserveNotification(monitoring.NotifySent)
	msg.Ack()
}
