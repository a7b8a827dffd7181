package mocks

import (
	"context"

	"museum-ticketing/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MuseumServiceMock struct {
	mock.Mock
}

func (m *MuseumServiceMock) List(ctx context.Context) ([]*model.Museum, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Museum), args.Error(1)
}

func (m *MuseumServiceMock) GetByMuseumID(ctx context.Context, museumID uuid.UUID) (*model.Museum, error) {
	args := m.Called(ctx, museumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Museum), args.Error(1)
}

func (m *MuseumServiceMock) Create(ctx context.Context, req model.CreateMuseumRequest) (*model.Museum, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Museum), args.Error(1)
}

func (m *MuseumServiceMock) UpdateByMuseumID(ctx context.Context, museumID uuid.UUID, params model.UpdateMuseumParams) (*model.Museum, error) {
	args := m.Called(ctx, museumID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Museum), args.Error(1)
}

func (m *MuseumServiceMock) Metrics(ctx context.Context) (*model.AdminMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminMetrics), args.Error(1)
}
