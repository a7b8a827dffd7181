package mocks

import (
	"context"

	"museum-ticketing/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type BookingServiceMock struct {
	mock.Mock
}

func (m *BookingServiceMock) OpenHold(ctx context.Context, sessionID string, museumID uuid.UUID, req model.OpenHoldRequest) (*model.ReservationResult, error) {
	args := m.Called(ctx, sessionID, museumID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReservationResult), args.Error(1)
}

func (m *BookingServiceMock) CurrentHold(ctx context.Context, sessionID string) (*model.BookingHold, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BookingHold), args.Error(1)
}

func (m *BookingServiceMock) DiscardHold(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *BookingServiceMock) Confirm(ctx context.Context, sessionID string, paymentMethod string) (*model.Booking, error) {
	args := m.Called(ctx, sessionID, paymentMethod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingServiceMock) GetByBookingID(ctx context.Context, bookingID string) (*model.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingServiceMock) ListUserBookings(ctx context.Context, userID string) ([]*model.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}
