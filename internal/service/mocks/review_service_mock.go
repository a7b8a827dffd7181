package mocks

import (
	"context"

	"museum-ticketing/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ReviewServiceMock struct {
	mock.Mock
}

func (m *ReviewServiceMock) Authorize(ctx context.Context, userID string, museumID uuid.UUID) error {
	args := m.Called(ctx, userID, museumID)
	return args.Error(0)
}

func (m *ReviewServiceMock) SubmitReview(ctx context.Context, museumID uuid.UUID, req model.CreateReviewRequest) (*model.Review, error) {
	args := m.Called(ctx, museumID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *ReviewServiceMock) SubmitFeedback(ctx context.Context, museumID uuid.UUID, req model.CreateFeedbackRequest) (*model.Feedback, error) {
	args := m.Called(ctx, museumID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *ReviewServiceMock) ListMuseumReviews(ctx context.Context, museumID uuid.UUID) ([]*model.Review, error) {
	args := m.Called(ctx, museumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Review), args.Error(1)
}
