package mocks

import (
	"context"

	"museum-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type HoldStoreMock struct {
	mock.Mock
}

func (m *HoldStoreMock) Put(ctx context.Context, sessionID string, hold *model.BookingHold) error {
	args := m.Called(ctx, sessionID, hold)
	return args.Error(0)
}

func (m *HoldStoreMock) Get(ctx context.Context, sessionID string) (*model.BookingHold, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BookingHold), args.Error(1)
}

func (m *HoldStoreMock) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
