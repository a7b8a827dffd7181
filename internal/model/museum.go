package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDailyCapacity 未設定每日容量時的預設值
const DefaultDailyCapacity = 1000

// DateLayout 參觀日期採日曆日，不帶時區
const DateLayout = "2006-01-02"

type Museum struct {
	ID               int       `json:"id" db:"id"`
	MuseumID         uuid.UUID `json:"museum_id" db:"museum_id"`
	Name             string    `json:"name" db:"name"`
	Description      *string   `json:"description,omitempty" db:"description"`
	MuseumType       *string   `json:"museum_type,omitempty" db:"museum_type"`
	City             *string   `json:"city,omitempty" db:"city"`
	State            *string   `json:"state,omitempty" db:"state"`
	MaxDailyCapacity int       `json:"max_daily_capacity" db:"max_daily_capacity"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateMuseumParams struct {
	Name             *string
	Description      *string
	MuseumType       *string
	City             *string
	State            *string
	MaxDailyCapacity *int
}

// CreateMuseumRequest 建立館方記錄請求；capacity 省略時套用預設值
type CreateMuseumRequest struct {
	Name             string  `json:"name" binding:"required"`
	Description      *string `json:"description"`
	MuseumType       *string `json:"museum_type"`
	City             *string `json:"city"`
	State            *string `json:"state"`
	MaxDailyCapacity int     `json:"max_daily_capacity" binding:"omitempty,min=1"`
}

// AdminMetrics 管理面板的彙總數字
type AdminMetrics struct {
	Museums     int `json:"museums"`
	Bookings    int `json:"bookings"`
	TicketsSold int `json:"tickets_sold"`
	Reviews     int `json:"reviews"`
	Feedback    int `json:"feedback"`
}
