package service

import (
	"context"

	"museum-ticketing/internal/model"
	"museum-ticketing/internal/repository"

	"github.com/google/uuid"
)

type MuseumService interface {
	List(ctx context.Context) ([]*model.Museum, error)
	GetByMuseumID(ctx context.Context, museumID uuid.UUID) (*model.Museum, error)
	Create(ctx context.Context, req model.CreateMuseumRequest) (*model.Museum, error)
	UpdateByMuseumID(ctx context.Context, museumID uuid.UUID, params model.UpdateMuseumParams) (*model.Museum, error)
	// Metrics 管理面板彙總數字
	Metrics(ctx context.Context) (*model.AdminMetrics, error)
}

type MuseumServiceImpl struct {
	repo        repository.MuseumRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
}

func NewMuseumService(
	repo repository.MuseumRepository,
	bookingRepo repository.BookingRepository,
	reviewRepo repository.ReviewRepository,
) MuseumService {
	return &MuseumServiceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *MuseumServiceImpl) List(ctx context.Context) ([]*model.Museum, error) {
	return s.repo.List(ctx)
}

func (s *MuseumServiceImpl) GetByMuseumID(ctx context.Context, museumID uuid.UUID) (*model.Museum, error) {
	return s.repo.FindByMuseumID(ctx, museumID)
}

func (s *MuseumServiceImpl) Create(ctx context.Context, req model.CreateMuseumRequest) (*model.Museum, error) {
	capacity := req.MaxDailyCapacity
	if capacity <= 0 {
		capacity = model.DefaultDailyCapacity
	}

	museum := &model.Museum{
		MuseumID:         uuid.New(),
		Name:             req.Name,
		Description:      req.Description,
		MuseumType:       req.MuseumType,
		City:             req.City,
		State:            req.State,
		MaxDailyCapacity: capacity,
	}

	return s.repo.Create(ctx, museum)
}

func (s *MuseumServiceImpl) UpdateByMuseumID(ctx context.Context, museumID uuid.UUID, params model.UpdateMuseumParams) (*model.Museum, error) {
	museum, err := s.repo.FindByMuseumID(ctx, museumID)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, museum.ID, params)
}

func (s *MuseumServiceImpl) Metrics(ctx context.Context) (*model.AdminMetrics, error) {
	museums, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	tickets, err := s.bookingRepo.SumTickets(ctx)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.CountReviews(ctx)
	if err != nil {
		return nil, err
	}

	feedback, err := s.reviewRepo.CountFeedback(ctx)
	if err != nil {
		return nil, err
	}

	return &model.AdminMetrics{
		Museums:     museums,
		Bookings:    bookings,
		TicketsSold: tickets,
		Reviews:     reviews,
		Feedback:    feedback,
	}, nil
}
