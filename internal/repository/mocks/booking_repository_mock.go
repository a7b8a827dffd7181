package mocks

import (
	"context"

	"museum-ticketing/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type BookingRepositoryMock struct {
	mock.Mock
}

func (m *BookingRepositoryMock) FindByBookingID(ctx context.Context, bookingID string) (*model.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) ListByUserID(ctx context.Context, userID string) ([]*model.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) SumTicketsForDate(ctx context.Context, museumID int, tourDate string) (int, error) {
	args := m.Called(ctx, museumID, tourDate)
	return args.Int(0), args.Error(1)
}

func (m *BookingRepositoryMock) ExistsForUserAndMuseum(ctx context.Context, userID string, museumID int) (bool, error) {
	args := m.Called(ctx, userID, museumID)
	return args.Bool(0), args.Error(1)
}

func (m *BookingRepositoryMock) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *BookingRepositoryMock) SumTickets(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *BookingRepositoryMock) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error) {
	args := m.Called(ctx, tx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) SumTicketsForDateTx(ctx context.Context, tx pgx.Tx, museumID int, tourDate string) (int, error) {
	args := m.Called(ctx, tx, museumID, tourDate)
	return args.Int(0), args.Error(1)
}
