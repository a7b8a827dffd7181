package handler

import (
	"errors"
	"net/http"

	"museum-ticketing/internal/model"
	"museum-ticketing/internal/service"
	apperrors "museum-ticketing/pkg/app_errors"
	"museum-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service  service.BookingService
	capacity service.CapacityService
}

func NewBookingHandler(bookingService service.BookingService, capacityService service.CapacityService) *BookingHandler {
	return &BookingHandler{service: bookingService, capacity: capacityService}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("museums/:museum_id/reserve", h.Reserve)
		router.GET("museums/:museum_id/capacity", h.RemainingCapacity)
		router.POST("bookings/confirm", h.Confirm)
		router.GET("bookings/:booking_id", h.GetBooking)
		router.GET("users/:user_id/bookings", h.ListUserBookings)
		router.GET("holds", h.CurrentHold)
		router.DELETE("holds", h.DiscardHold)
	}
}

func (h *BookingHandler) Reserve(c *gin.Context) {
	sessionID, ok := SessionID(c)
	if !ok {
		return
	}
	museumID, ok := MuseumIDParam(c)
	if !ok {
		return
	}

	var req model.OpenHoldRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.OpenHold(c, sessionID, museumID, req)
	if err != nil {
		h.handleBookingError(c, err, "Reserve")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) RemainingCapacity(c *gin.Context) {
	museumID, ok := MuseumIDParam(c)
	if !ok {
		return
	}

	date := c.Query("date")
	remaining, err := h.capacity.Remaining(c, museumID, date)
	if err != nil {
		h.handleBookingError(c, err, "RemainingCapacity")
		return
	}

	c.JSON(http.StatusOK, gin.H{"remaining": remaining})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	sessionID, ok := SessionID(c)
	if !ok {
		return
	}

	var req model.ConfirmBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	booking, err := h.service.Confirm(c, sessionID, req.PaymentMethod)
	if err != nil {
		h.handleBookingError(c, err, "Confirm")
		return
	}

	c.JSON(http.StatusCreated, booking.ToResponse())
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.service.GetByBookingID(c, c.Param("booking_id"))
	if err != nil {
		h.handleBookingError(c, err, "GetBooking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	bookings, err := h.service.ListUserBookings(c, c.Param("user_id"))
	if err != nil {
		h.handleBookingError(c, err, "ListUserBookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) CurrentHold(c *gin.Context) {
	sessionID, ok := SessionID(c)
	if !ok {
		return
	}

	hold, err := h.service.CurrentHold(c, sessionID)
	if err != nil {
		h.handleBookingError(c, err, "CurrentHold")
		return
	}

	c.JSON(http.StatusOK, hold)
}

func (h *BookingHandler) DiscardHold(c *gin.Context) {
	sessionID, ok := SessionID(c)
	if !ok {
		return
	}

	if err := h.service.DiscardHold(c, sessionID); err != nil {
		h.handleBookingError(c, err, "DiscardHold")
		return
	}

	c.Status(http.StatusNoContent)
}

// Helper functions

func (h *BookingHandler) handleBookingError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		log.Warn("Capacity exceeded")
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Capacity exceeded",
			"remaining": apperrors.RemainingFrom(err),
		})
	case errors.Is(err, apperrors.ErrNoActiveHold):
		log.Warn("No active hold")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No active booking hold",
		})
	case errors.Is(err, apperrors.ErrMuseumNotFound):
		log.Warn("Museum not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Museum not found",
		})
	case errors.Is(err, apperrors.ErrBookingNotFound):
		log.Warn("Booking not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
