package mocks

import (
	"context"

	"museum-ticketing/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CapacityServiceMock struct {
	mock.Mock
}

func (m *CapacityServiceMock) Reserve(ctx context.Context, museumID uuid.UUID, tourDate string, tickets int) (*model.CapacityDecision, error) {
	args := m.Called(ctx, museumID, tourDate, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CapacityDecision), args.Error(1)
}

func (m *CapacityServiceMock) Remaining(ctx context.Context, museumID uuid.UUID, tourDate string) (int, error) {
	args := m.Called(ctx, museumID, tourDate)
	return args.Int(0), args.Error(1)
}
