package model_test

import (
	"testing"
	"time"

	"museum-ticketing/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		expected model.PaymentStatus
	}{
		{"cash pays at the venue", "Cash", model.PaymentStatusPayAtVenue},
		{"credit card is paid immediately", "Credit Card", model.PaymentStatusPaid},
		{"upi is paid immediately", "UPI", model.PaymentStatusPaid},
		{"net banking is paid immediately", "Net Banking", model.PaymentStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.PaymentStatusFor(tt.method))
		})
	}
}

func TestPaymentStatus_IsValid(t *testing.T) {
	assert.True(t, model.PaymentStatusPaid.IsValid())
	assert.True(t, model.PaymentStatusPayAtVenue.IsValid())
	assert.False(t, model.PaymentStatus("Refunded").IsValid())
	assert.False(t, model.PaymentStatus("").IsValid())
}

func TestBooking_ToResponse(t *testing.T) {
	bookingDate := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	booking := &model.Booking{
		ID:            1,
		BookingID:     "A1B2C3D4",
		UserID:        "user-1",
		Email:         "visitor@example.com",
		MuseumID:      7,
		MuseumName:    "City Art Museum",
		TourDate:      "2026-09-15",
		Tickets:       2,
		BookingDate:   bookingDate,
		PaymentMethod: "Cash",
		PaymentStatus: model.PaymentStatusPayAtVenue,
	}

	resp := booking.ToResponse()

	assert.Equal(t, "A1B2C3D4", resp.BookingID)
	assert.Equal(t, "City Art Museum", resp.MuseumName)
	assert.Equal(t, "2026-09-15", resp.TourDate)
	assert.Equal(t, 2, resp.Tickets)
	assert.Equal(t, "Cash", resp.PaymentMethod)
	assert.Equal(t, "Pending (Pay at Venue)", resp.PaymentStatus)
	assert.Equal(t, "2026-09-01T10:30:00Z", resp.BookingDate)
}
