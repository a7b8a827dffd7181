package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrMuseumNotFound      = errors.New("museum not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrNoActiveHold        = errors.New("no active booking hold")
	ErrCapacityExceeded    = errors.New("daily capacity exceeded")
	ErrNotEligible         = errors.New("no committed booking for this museum")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)

// CapacityError 帶有剩餘額度的容量不足錯誤，errors.Is 視同 ErrCapacityExceeded
type CapacityError struct {
	Remaining int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: only %d tickets remaining for this date", e.Remaining)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// NewCapacityError 剩餘額度不回傳負數，一律截斷為 0
func NewCapacityError(remaining int) *CapacityError {
	if remaining < 0 {
		remaining = 0
	}
	return &CapacityError{Remaining: remaining}
}

// RemainingFrom 從錯誤中取出剩餘額度；不是 CapacityError 時回傳 0
func RemainingFrom(err error) int {
	var capErr *CapacityError
	if errors.As(err, &capErr) {
		return capErr.Remaining
	}
	return 0
}
