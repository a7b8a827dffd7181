package model

import "time"

type Review struct {
	ID         int       `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Email      string    `json:"email" db:"email"`
	MuseumID   int       `json:"museum_id" db:"museum_id"`
	MuseumName string    `json:"museum_name" db:"museum_name"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type Feedback struct {
	ID         int       `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Email      string    `json:"email" db:"email"`
	MuseumID   int       `json:"museum_id" db:"museum_id"`
	MuseumName string    `json:"museum_name" db:"museum_name"`
	Message    string    `json:"message" db:"message"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateReviewRequest 發表評論請求，需通過訂票資格驗證
type CreateReviewRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// CreateFeedbackRequest 回饋館方請求，需通過訂票資格驗證
type CreateFeedbackRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
