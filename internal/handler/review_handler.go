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

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("museums/:museum_id/reviews", h.ListReviews)
		router.POST("museums/:museum_id/reviews", h.CreateReview)
		router.POST("museums/:museum_id/feedback", h.CreateFeedback)
	}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	museumID, ok := MuseumIDParam(c)
	if !ok {
		return
	}

	reviews, err := h.service.ListMuseumReviews(c, museumID)
	if err != nil {
		h.handleReviewError(c, err, "ListReviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	museumID, ok := MuseumIDParam(c)
	if !ok {
		return
	}

	var req model.CreateReviewRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	review, err := h.service.SubmitReview(c, museumID, req)
	if err != nil {
		h.handleReviewError(c, err, "CreateReview")
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) CreateFeedback(c *gin.Context) {
	museumID, ok := MuseumIDParam(c)
	if !ok {
		return
	}

	var req model.CreateFeedbackRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	feedback, err := h.service.SubmitFeedback(c, museumID, req)
	if err != nil {
		h.handleReviewError(c, err, "CreateFeedback")
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

func (h *ReviewHandler) handleReviewError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrNotEligible):
		log.Warn("Not eligible")
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You can only review or give feedback for museums you have booked",
		})
	case errors.Is(err, apperrors.ErrMuseumNotFound):
		log.Warn("Museum not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Museum not found",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
