package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	cachemocks "museum-ticketing/internal/cache/mocks"
	"museum-ticketing/internal/model"
	queuemocks "museum-ticketing/internal/queue/mocks"
	repomocks "museum-ticketing/internal/repository/mocks"
	"museum-ticketing/internal/service"
	servicemocks "museum-ticketing/internal/service/mocks"
	apperrors "museum-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceFixture struct {
	museumRepo  *repomocks.MuseumRepositoryMock
	bookingRepo *repomocks.BookingRepositoryMock
	capacity    *servicemocks.CapacityServiceMock
	holdStore   *cachemocks.HoldStoreMock
	notifyQueue *queuemocks.NotificationQueueMock
	svc         service.BookingService
}

func newBookingServiceFixture() *bookingServiceFixture {
	f := &bookingServiceFixture{
		museumRepo:  new(repomocks.MuseumRepositoryMock),
		bookingRepo: new(repomocks.BookingRepositoryMock),
		capacity:    new(servicemocks.CapacityServiceMock),
		holdStore:   new(cachemocks.HoldStoreMock),
		notifyQueue: new(queuemocks.NotificationQueueMock),
	}
	// Confirm 之外的路徑不碰 DB，pool 可為 nil
	f.svc = service.NewBookingService(nil, f.museumRepo, f.bookingRepo, f.capacity, f.holdStore, f.notifyQueue)
	return f
}

func TestBookingService_OpenHold(t *testing.T) {
	f := newBookingServiceFixture()

	museum := testMuseum(10)
	req := model.OpenHoldRequest{
		UserID:  "user-1",
		Email:   "visitor@example.com",
		Date:    "2026-09-15",
		Tickets: 4,
	}

	f.capacity.On("Reserve", mock.Anything, museum.MuseumID, "2026-09-15", 4).Return(&model.CapacityDecision{
		Granted:   true,
		Remaining: 6,
		Museum:    museum,
	}, nil)
	f.holdStore.On("Put", mock.Anything, "sess-1", mock.AnythingOfType("*model.BookingHold")).Return(nil)

	result, err := f.svc.OpenHold(context.Background(), "sess-1", museum.MuseumID, req)

	require.NoError(t, err)
	assert.True(t, result.Granted)
	assert.Equal(t, 6, result.Remaining)
	require.NotNil(t, result.Hold)
	assert.Equal(t, "user-1", result.Hold.UserID)
	assert.Equal(t, museum.ID, result.Hold.MuseumID)
	assert.Equal(t, museum.Name, result.Hold.MuseumName)
	assert.Equal(t, "2026-09-15", result.Hold.VisitDate)
	assert.Equal(t, 4, result.Hold.Tickets)
	f.holdStore.AssertExpectations(t)
}

func TestBookingService_OpenHold_DeniedCreatesNoHold(t *testing.T) {
	f := newBookingServiceFixture()

	museum := testMuseum(10)
	req := model.OpenHoldRequest{
		UserID:  "user-1",
		Email:   "visitor@example.com",
		Date:    "2026-09-15",
		Tickets: 4,
	}

	f.capacity.On("Reserve", mock.Anything, museum.MuseumID, "2026-09-15", 4).Return(&model.CapacityDecision{
		Granted:   false,
		Remaining: 2,
		Museum:    museum,
	}, nil)

	_, err := f.svc.OpenHold(context.Background(), "sess-1", museum.MuseumID, req)

	assert.True(t, errors.Is(err, apperrors.ErrCapacityExceeded))
	assert.Equal(t, 2, apperrors.RemainingFrom(err))
	// 未放行時不得在 session 留下任何 Hold
	f.holdStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_OpenHold_PropagatesReserveError(t *testing.T) {
	f := newBookingServiceFixture()

	museumID := uuid.New()
	req := model.OpenHoldRequest{
		UserID:  "user-1",
		Email:   "visitor@example.com",
		Date:    "2026-09-15",
		Tickets: 4,
	}

	f.capacity.On("Reserve", mock.Anything, museumID, "2026-09-15", 4).Return(nil, apperrors.ErrMuseumNotFound)

	_, err := f.svc.OpenHold(context.Background(), "sess-1", museumID, req)

	assert.True(t, errors.Is(err, apperrors.ErrMuseumNotFound))
}

func TestBookingService_CurrentHold(t *testing.T) {
	f := newBookingServiceFixture()

	hold := &model.BookingHold{
		UserID:    "user-1",
		MuseumID:  7,
		VisitDate: "2026-09-15",
		Tickets:   2,
		CreatedAt: time.Now().UTC(),
	}
	f.holdStore.On("Get", mock.Anything, "sess-1").Return(hold, nil)

	got, err := f.svc.CurrentHold(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, hold, got)
}

func TestBookingService_DiscardHold(t *testing.T) {
	f := newBookingServiceFixture()

	f.holdStore.On("Delete", mock.Anything, "sess-1").Return(nil)

	err := f.svc.DiscardHold(context.Background(), "sess-1")

	assert.NoError(t, err)
	f.holdStore.AssertExpectations(t)
}

func TestBookingService_Confirm_NoActiveHold(t *testing.T) {
	f := newBookingServiceFixture()

	f.holdStore.On("Get", mock.Anything, "sess-1").Return(nil, apperrors.ErrNoActiveHold)

	_, err := f.svc.Confirm(context.Background(), "sess-1", "Cash")

	assert.True(t, errors.Is(err, apperrors.ErrNoActiveHold))
}

func TestBookingService_Confirm_EmptyPaymentMethod(t *testing.T) {
	f := newBookingServiceFixture()

	_, err := f.svc.Confirm(context.Background(), "sess-1", "")

	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	f.holdStore.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestBookingService_GetByBookingID(t *testing.T) {
	f := newBookingServiceFixture()

	booking := &model.Booking{BookingID: "A1B2C3D4"}
	f.bookingRepo.On("FindByBookingID", mock.Anything, "A1B2C3D4").Return(booking, nil)

	got, err := f.svc.GetByBookingID(context.Background(), "A1B2C3D4")

	require.NoError(t, err)
	assert.Equal(t, booking, got)
}

func TestBookingService_GetByBookingID_NotFound(t *testing.T) {
	f := newBookingServiceFixture()

	f.bookingRepo.On("FindByBookingID", mock.Anything, "UNKNOWN1").Return(nil, apperrors.ErrBookingNotFound)

	_, err := f.svc.GetByBookingID(context.Background(), "UNKNOWN1")

	assert.True(t, errors.Is(err, apperrors.ErrBookingNotFound))
}

func TestBookingService_ListUserBookings(t *testing.T) {
	f := newBookingServiceFixture()

	bookings := []*model.Booking{
		{BookingID: "A1B2C3D4"},
		{BookingID: "E5F6A7B8"},
	}
	f.bookingRepo.On("ListByUserID", mock.Anything, "user-1").Return(bookings, nil)

	got, err := f.svc.ListUserBookings(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
