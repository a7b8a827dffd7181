package service

import (
	"context"
	"time"

	"museum-ticketing/internal/model"
	"museum-ticketing/internal/repository"
	"museum-ticketing/monitoring"
	apperrors "museum-ticketing/pkg/app_errors"

	"github.com/google/uuid"
)

// CapacityService 容量帳：彙總已提交票數，判定該日還能放行多少張票。
// Reserve 本身只讀不寫；真正消耗容量的是 BookingService.Confirm 交易內的重查。
type CapacityService interface {
	Reserve(ctx context.Context, museumID uuid.UUID, tourDate string, tickets int) (*model.CapacityDecision, error)
	Remaining(ctx context.Context, museumID uuid.UUID, tourDate string) (int, error)
}

type CapacityServiceImpl struct {
	museumRepo  repository.MuseumRepository
	bookingRepo repository.BookingRepository
}

func NewCapacityService(museumRepo repository.MuseumRepository, bookingRepo repository.BookingRepository) CapacityService {
	return &CapacityServiceImpl{
		museumRepo:  museumRepo,
		bookingRepo: bookingRepo,
	}
}

func clampRemaining(capacity, committed int) int {
	remaining := capacity - committed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func validateTourDate(tourDate string) error {
	if _, err := time.Parse(model.DateLayout, tourDate); err != nil {
		return apperrors.ErrInvalidInput
	}
	return nil
}

func (s *CapacityServiceImpl) Reserve(ctx context.Context, museumID uuid.UUID, tourDate string, tickets int) (*model.CapacityDecision, error) {
	if tickets <= 0 {
		return nil, apperrors.ErrInvalidInput
	}
	if err := validateTourDate(tourDate); err != nil {
		return nil, err
	}

	// 查無館方是 NotFound，不是容量不足
	museum, err := s.museumRepo.FindByMuseumID(ctx, museumID)
	if err != nil {
		return nil, err
	}

	committed, err := s.bookingRepo.SumTicketsForDate(ctx, museum.ID, tourDate)
	if err != nil {
		return nil, err
	}

	granted := committed+tickets <= museum.MaxDailyCapacity
	remaining := committed
	if granted {
		remaining = committed + tickets
	}

	decision := &model.CapacityDecision{
		Granted:   granted,
		Remaining: clampRemaining(museum.MaxDailyCapacity, remaining),
		Museum:    museum,
	}

	if decision.Granted {
		monitoring.ObserveReservation(monitoring.OutcomeGranted)
	} else {
		monitoring.ObserveReservation(monitoring.OutcomeDenied)
	}

	return decision, nil
}

func (s *CapacityServiceImpl) Remaining(ctx context.Context, museumID uuid.UUID, tourDate string) (int, error) {
	if err := validateTourDate(tourDate); err != nil {
		return 0, err
	}

	museum, err := s.museumRepo.FindByMuseumID(ctx, museumID)
	if err != nil {
		return 0, err
	}

	committed, err := s.bookingRepo.SumTicketsForDate(ctx, museum.ID, tourDate)
	if err != nil {
		return 0, err
	}

	return clampRemaining(museum.MaxDailyCapacity, committed), nil
}
