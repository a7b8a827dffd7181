package mocks

import (
	"context"

	"museum-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type ReviewRepositoryMock struct {
	mock.Mock
}

func (m *ReviewRepositoryMock) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *ReviewRepositoryMock) CreateFeedback(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error) {
	args := m.Called(ctx, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *ReviewRepositoryMock) ListReviewsByMuseumID(ctx context.Context, museumID int) ([]*model.Review, error) {
	args := m.Called(ctx, museumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Review), args.Error(1)
}

func (m *ReviewRepositoryMock) CountReviews(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *ReviewRepositoryMock) CountFeedback(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
