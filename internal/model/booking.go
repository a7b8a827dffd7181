package model

import "time"

// PaymentStatus 付款狀態類型
type PaymentStatus string

const (
	PaymentStatusPaid       PaymentStatus = "Paid"
	PaymentStatusPayAtVenue PaymentStatus = "Pending (Pay at Venue)"
)

// PaymentMethodCash 現場付款；其餘付款方式一律視為已付款
const PaymentMethodCash = "Cash"

// IsValid 驗證狀態是否有效
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPayAtVenue:
		return true
	}
	return false
}

// PaymentStatusFor 由付款方式決定付款狀態
func PaymentStatusFor(method string) PaymentStatus {
	if method == PaymentMethodCash {
		return PaymentStatusPayAtVenue
	}
	return PaymentStatusPaid
}

// Booking 已提交的訂票記錄；一旦寫入即不可變更
type Booking struct {
	ID            int           `json:"id" db:"id"`
	BookingID     string        `json:"booking_id" db:"booking_id"`
	UserID        string        `json:"user_id" db:"user_id"`
	Email         string        `json:"email" db:"email"`
	MuseumID      int           `json:"museum_id" db:"museum_id"`
	MuseumName    string        `json:"museum_name" db:"museum_name"`
	TourDate      string        `json:"tour_date" db:"tour_date"`
	Tickets       int           `json:"tickets" db:"tickets"`
	BookingDate   time.Time     `json:"booking_date" db:"booking_date"`
	PaymentMethod string        `json:"payment_method" db:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// ConfirmBookingRequest 付款確認請求
type ConfirmBookingRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// BookingResponse 訂票回應
type BookingResponse struct {
	BookingID     string `json:"booking_id"`
	MuseumName    string `json:"museum_name"`
	TourDate      string `json:"tour_date"`
	Tickets       int    `json:"tickets"`
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
	BookingDate   string `json:"booking_date"`
}

func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		BookingID:     b.BookingID,
		MuseumName:    b.MuseumName,
		TourDate:      b.TourDate,
		Tickets:       b.Tickets,
		PaymentMethod: b.PaymentMethod,
		PaymentStatus: string(b.PaymentStatus),
		BookingDate:   b.BookingDate.UTC().Format(time.RFC3339),
	}
}
