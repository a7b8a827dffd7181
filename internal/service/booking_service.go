package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"museum-ticketing/internal/cache"
	"museum-ticketing/internal/model"
	"museum-ticketing/internal/queue"
	"museum-ticketing/internal/repository"
	"museum-ticketing/monitoring"
	apperrors "museum-ticketing/pkg/app_errors"
	"museum-ticketing/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BookingService interface {
	// OpenHold 通過容量查核後在 session 開一格 Hold，覆蓋先前的 Hold
	OpenHold(ctx context.Context, sessionID string, museumID uuid.UUID, req model.OpenHoldRequest) (*model.ReservationResult, error)
	CurrentHold(ctx context.Context, sessionID string) (*model.BookingHold, error)
	DiscardHold(ctx context.Context, sessionID string) error
	// Confirm 將 Hold 轉為已提交訂票：行鎖重查容量並寫入，之後派發出票任務
	Confirm(ctx context.Context, sessionID string, paymentMethod string) (*model.Booking, error)
	GetByBookingID(ctx context.Context, bookingID string) (*model.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]*model.Booking, error)
}

type BookingServiceImpl struct {
	pool        *pgxpool.Pool
	museumRepo  repository.MuseumRepository
	bookingRepo repository.BookingRepository
	capacity    CapacityService
	holdStore   cache.HoldStore
	notifyQueue queue.NotificationQueue
}

func NewBookingService(
	pool *pgxpool.Pool,
	museumRepo repository.MuseumRepository,
	bookingRepo repository.BookingRepository,
	capacity CapacityService,
	holdStore cache.HoldStore,
	notifyQueue queue.NotificationQueue,
) BookingService {
	return &BookingServiceImpl{
		pool:        pool,
		museumRepo:  museumRepo,
		bookingRepo: bookingRepo,
		capacity:    capacity,
		holdStore:   holdStore,
		notifyQueue: notifyQueue,
	}
}

// generateBookingRef 8 碼大寫十六進位訂票編號
func generateBookingRef() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

func (s *BookingServiceImpl) OpenHold(ctx context.Context, sessionID string, museumID uuid.UUID, req model.OpenHoldRequest) (*model.ReservationResult, error) {
	decision, err := s.capacity.Reserve(ctx, museumID, req.Date, req.Tickets)
	if err != nil {
		return nil, err
	}
	if !decision.Granted {
		// 不放行就不開 Hold
		return nil, apperrors.NewCapacityError(decision.Remaining)
	}

	hold := &model.BookingHold{
		UserID:     req.UserID,
		Email:      req.Email,
		MuseumID:   decision.Museum.ID,
		MuseumName: decision.Museum.Name,
		VisitDate:  req.Date,
		Tickets:    req.Tickets,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.holdStore.Put(ctx, sessionID, hold); err != nil {
		return nil, err
	}

	monitoring.ObserveHoldOpened()
	return &model.ReservationResult{
		Granted:   true,
		Remaining: decision.Remaining,
		Hold:      hold,
	}, nil
}

func (s *BookingServiceImpl) CurrentHold(ctx context.Context, sessionID string) (*model.BookingHold, error) {
	return s.holdStore.Get(ctx, sessionID)
}

func (s *BookingServiceImpl) DiscardHold(ctx context.Context, sessionID string) error {
	return s.holdStore.Delete(ctx, sessionID)
}

func (s *BookingServiceImpl) Confirm(ctx context.Context, sessionID string, paymentMethod string) (*model.Booking, error) {
	if paymentMethod == "" {
		return nil, apperrors.ErrInvalidInput
	}

	hold, err := s.holdStore.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 行鎖即同一館的序列化點；不同館互不阻塞
	museum, err := s.museumRepo.FindByIDWithLock(ctx, tx, hold.MuseumID)
	if err != nil {
		return nil, err
	}

	// 在鎖內重查：Hold 開啟後別的 session 可能已吃掉容量
	committed, err := s.bookingRepo.SumTicketsForDateTx(ctx, tx, museum.ID, hold.VisitDate)
	if err != nil {
		return nil, err
	}
	if committed+hold.Tickets > museum.MaxDailyCapacity {
		// 重查失敗 Hold 即作廢，使用者需換日期或減少張數
		if delErr := s.holdStore.Delete(context.Background(), sessionID); delErr != nil {
			logger.WithComponent("service").Warn("failed to discard hold after capacity recheck",
				zap.String("session_id", sessionID), zap.Error(delErr))
		}
		return nil, apperrors.NewCapacityError(museum.MaxDailyCapacity - committed)
	}

	bookingRef, err := generateBookingRef()
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		BookingID:     bookingRef,
		UserID:        hold.UserID,
		Email:         hold.Email,
		MuseumID:      museum.ID,
		MuseumName:    museum.Name,
		TourDate:      hold.VisitDate,
		Tickets:       hold.Tickets,
		BookingDate:   time.Now().UTC(),
		PaymentMethod: paymentMethod,
		PaymentStatus: model.PaymentStatusFor(paymentMethod),
	}

	created, err := s.bookingRepo.Create(ctx, tx, booking)
	if err != nil {
		return nil, err
	}

	// 提交失敗等同整筆放棄：容量未被消耗，重跑 Confirm 是安全的
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	monitoring.ObserveCommit(created.Tickets, time.Since(start))

	// 提交已完成，以下皆為軟性副作用，失敗不得影響訂票結果
	if err := s.holdStore.Delete(context.Background(), sessionID); err != nil {
		logger.WithComponent("service").Warn("failed to discard hold after commit",
			zap.String("session_id", sessionID), zap.Error(err))
	}

	job := &queue.TicketJob{BookingID: created.BookingID}
	if err := s.notifyQueue.PublishTicketJob(context.Background(), job); err != nil {
		// 票可以之後從訂票記錄重出，只記錄不回滾
		logger.WithComponent("service").Error("failed to publish ticket job",
			zap.String("booking_id", created.BookingID), zap.Error(err))
		monitoring.ObserveNotification(monitoring.NotifyDeliveryFailed)
	}

	return created, nil
}

func (s *BookingServiceImpl) GetByBookingID(ctx context.Context, bookingID string) (*model.Booking, error) {
	return s.bookingRepo.FindByBookingID(ctx, bookingID)
}

func (s *BookingServiceImpl) ListUserBookings(ctx context.Context, userID string) ([]*model.Booking, error) {
	return s.bookingRepo.ListByUserID(ctx, userID)
}
