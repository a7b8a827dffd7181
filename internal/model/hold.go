package model

import "time"

// BookingHold 未付款的暫存預約，存活於單一 session；不佔用容量帳
type BookingHold struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	MuseumID   int       `json:"museum_id"`
	MuseumName string    `json:"museum_name"`
	VisitDate  string    `json:"visit_date"`
	Tickets    int       `json:"tickets"`
	CreatedAt  time.Time `json:"created_at"`
}

// OpenHoldRequest 開啟 Hold 請求
type OpenHoldRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Date    string `json:"date" binding:"required"`
	Tickets int    `json:"tickets" binding:"required,min=1"`
}

// CapacityDecision 容量帳的查核結果。
// 放行時 Remaining 已扣掉本次請求的張數；拒絕時為目前還可放行的張數（不為負）。
type CapacityDecision struct {
	Granted   bool    `json:"granted"`
	Remaining int     `json:"remaining"`
	Museum    *Museum `json:"-"`
}

// ReservationResult 開 Hold 的完整回應
type ReservationResult struct {
	Granted   bool         `json:"granted"`
	Remaining int          `json:"remaining"`
	Hold      *BookingHold `json:"hold"`
}
