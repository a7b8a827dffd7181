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

type MuseumHandler struct {
	service service.MuseumService
}

func NewMuseumHandler(museumService service.MuseumService) *MuseumHandler {
	return &MuseumHandler{service: museumService}
}

func (h *MuseumHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("museums", h.ListMuseums)
		router.GET("museums/:museum_id", h.GetMuseum)
		router.POST("museums", h.CreateMuseum)
		router.PUT("museums/:museum_id", h.UpdateMuseum)
		router.GET("admin/metrics", h.AdminMetrics)
	}
}

func (h *MuseumHandler) ListMuseums(c *gin.Context) {
	museums, err := h.service.List(c)
	if err != nil {
		h.handleMuseumError(c, err, "ListMuseums")
		return
	}

	c.JSON(http.StatusOK, museums)
}

func (h *MuseumHandler) GetMuseum(c *gin.Context) {
	museumID, ok := MuseumIDParam(c)
	if !ok {
		return
	}

	museum, err := h.service.GetByMuseumID(c, museumID)
	if err != nil {
		h.handleMuseumError(c, err, "GetMuseum")
		return
	}

	c.JSON(http.StatusOK, museum)
}

func (h *MuseumHandler) CreateMuseum(c *gin.Context) {
	var req model.CreateMuseumRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	museum, err := h.service.Create(c, req)
	if err != nil {
		h.handleMuseumError(c, err, "CreateMuseum")
		return
	}

	c.JSON(http.StatusCreated, museum)
}

type updateMuseumRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	MuseumType       *string `json:"museum_type"`
	City             *string `json:"city"`
	State            *string `json:"state"`
	MaxDailyCapacity *int    `json:"max_daily_capacity"`
}

func (h *MuseumHandler) UpdateMuseum(c *gin.Context) {
	museumID, ok := MuseumIDParam(c)
	if !ok {
		return
	}

	var req updateMuseumRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	museum, err := h.service.UpdateByMuseumID(c, museumID, model.UpdateMuseumParams{
		Name:             req.Name,
		Description:      req.Description,
		MuseumType:       req.MuseumType,
		City:             req.City,
		State:            req.State,
		MaxDailyCapacity: req.MaxDailyCapacity,
	})
	if err != nil {
		h.handleMuseumError(c, err, "UpdateMuseum")
		return
	}

	c.JSON(http.StatusOK, museum)
}

func (h *MuseumHandler) AdminMetrics(c *gin.Context) {
	metrics, err := h.service.Metrics(c)
	if err != nil {
		h.handleMuseumError(c, err, "AdminMetrics")
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *MuseumHandler) handleMuseumError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrMuseumNotFound):
		log.Warn("Museum not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Museum not found",
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
