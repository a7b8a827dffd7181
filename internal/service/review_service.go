package service

import (
	"context"

	"museum-ticketing/internal/model"
	"museum-ticketing/internal/repository"
	apperrors "museum-ticketing/pkg/app_errors"

	"github.com/google/uuid"
)

// ReviewService 評論與回饋，寫入前先過訂票資格閘門
type ReviewService interface {
	// Authorize 曾有任一筆已提交訂票（含現場付款待付）即放行
	Authorize(ctx context.Context, userID string, museumID uuid.UUID) error
	SubmitReview(ctx context.Context, museumID uuid.UUID, req model.CreateReviewRequest) (*model.Review, error)
	SubmitFeedback(ctx context.Context, museumID uuid.UUID, req model.CreateFeedbackRequest) (*model.Feedback, error)
	ListMuseumReviews(ctx context.Context, museumID uuid.UUID) ([]*model.Review, error)
}

type ReviewServiceImpl struct {
	museumRepo  repository.MuseumRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
}

func NewReviewService(
	museumRepo repository.MuseumRepository,
	bookingRepo repository.BookingRepository,
	reviewRepo repository.ReviewRepository,
) ReviewService {
	return &ReviewServiceImpl{
		museumRepo:  museumRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
	}
}

// authorizeForMuseum 先確認館方存在再查資格，查無館方回 NotFound 而非資格不符
func (s *ReviewServiceImpl) authorizeForMuseum(ctx context.Context, userID string, museumID uuid.UUID) (*model.Museum, error) {
	museum, err := s.museumRepo.FindByMuseumID(ctx, museumID)
	if err != nil {
		return nil, err
	}

	eligible, err := s.bookingRepo.ExistsForUserAndMuseum(ctx, userID, museum.ID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, apperrors.ErrNotEligible
	}

	return museum, nil
}

func (s *ReviewServiceImpl) Authorize(ctx context.Context, userID string, museumID uuid.UUID) error {
	_, err := s.authorizeForMuseum(ctx, userID, museumID)
	return err
}

func (s *ReviewServiceImpl) SubmitReview(ctx context.Context, museumID uuid.UUID, req model.CreateReviewRequest) (*model.Review, error) {
	museum, err := s.authorizeForMuseum(ctx, req.UserID, museumID)
	if err != nil {
		return nil, err
	}

	review := &model.Review{
		UserID:     req.UserID,
		Email:      req.Email,
		MuseumID:   museum.ID,
		MuseumName: museum.Name,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	return s.reviewRepo.CreateReview(ctx, review)
}

func (s *ReviewServiceImpl) SubmitFeedback(ctx context.Context, museumID uuid.UUID, req model.CreateFeedbackRequest) (*model.Feedback, error) {
	museum, err := s.authorizeForMuseum(ctx, req.UserID, museumID)
	if err != nil {
		return nil, err
	}

	feedback := &model.Feedback{
		UserID:     req.UserID,
		Email:      req.Email,
		MuseumID:   museum.ID,
		MuseumName: museum.Name,
		Message:    req.Message,
	}

	return s.reviewRepo.CreateFeedback(ctx, feedback)
}

func (s *ReviewServiceImpl) ListMuseumReviews(ctx context.Context, museumID uuid.UUID) ([]*model.Review, error) {
	museum, err := s.museumRepo.FindByMuseumID(ctx, museumID)
	if err != nil {
		return nil, err
	}
	return s.reviewRepo.ListReviewsByMuseumID(ctx, museum.ID)
}
