package mocks

import (
	"context"

	"museum-ticketing/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MuseumRepositoryMock struct {
	mock.Mock
}

func (m *MuseumRepositoryMock) Create(ctx context.Context, museum *model.Museum) (*model.Museum, error) {
	args := m.Called(ctx, museum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Museum), args.Error(1)
}

func (m *MuseumRepositoryMock) List(ctx context.Context) ([]*model.Museum, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Museum), args.Error(1)
}

func (m *MuseumRepositoryMock) FindByID(ctx context.Context, id int) (*model.Museum, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Museum), args.Error(1)
}

func (m *MuseumRepositoryMock) FindByMuseumID(ctx context.Context, museumID uuid.UUID) (*model.Museum, error) {
	args := m.Called(ctx, museumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Museum), args.Error(1)
}

func (m *MuseumRepositoryMock) Update(ctx context.Context, id int, params model.UpdateMuseumParams) (*model.Museum, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Museum), args.Error(1)
}

func (m *MuseumRepositoryMock) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MuseumRepositoryMock) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Museum, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Museum), args.Error(1)
}
