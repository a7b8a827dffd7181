package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"museum-ticketing/internal/handler"
	"museum-ticketing/internal/model"
	servicemocks "museum-ticketing/internal/service/mocks"
	apperrors "museum-ticketing/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupReviewRouter(svc *servicemocks.ReviewServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewReviewHandler(svc).RegisterRoutes(router)
	return router
}

func TestReviewHandler_CreateReview(t *testing.T) {
	svc := new(servicemocks.ReviewServiceMock)
	router := setupReviewRouter(svc)

	museumID := uuid.New()
	svc.On("SubmitReview", mock.Anything, museumID, mock.AnythingOfType("model.CreateReviewRequest")).
		Return(&model.Review{
			ID:         1,
			UserID:     "user-1",
			MuseumName: "City Art Museum",
			Rating:     5,
			Comment:    "Great exhibits",
		}, nil)

	body := map[string]interface{}{
		"user_id": "user-1",
		"email":   "visitor@example.com",
		"rating":  5,
		"comment": "Great exhibits",
	}
	w := performJSON(router, http.MethodPost, "/api/v1/museums/"+museumID.String()+"/reviews", body, "")

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReviewHandler_CreateReview_NotEligible(t *testing.T) {
	svc := new(servicemocks.ReviewServiceMock)
	router := setupReviewRouter(svc)

	museumID := uuid.New()
	svc.On("SubmitReview", mock.Anything, museumID, mock.AnythingOfType("model.CreateReviewRequest")).
		Return(nil, apperrors.ErrNotEligible)

	body := map[string]interface{}{
		"user_id": "user-2",
		"email":   "other@example.com",
		"rating":  1,
		"comment": "Never visited",
	}
	w := performJSON(router, http.MethodPost, "/api/v1/museums/"+museumID.String()+"/reviews", body, "")

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "museums you have booked")
}

func TestReviewHandler_CreateReview_InvalidRating(t *testing.T) {
	svc := new(servicemocks.ReviewServiceMock)
	router := setupReviewRouter(svc)

	museumID := uuid.New()
	body := map[string]interface{}{
		"user_id": "user-1",
		"email":   "visitor@example.com",
		"rating":  9,
		"comment": "Out of range",
	}
	w := performJSON(router, http.MethodPost, "/api/v1/museums/"+museumID.String()+"/reviews", body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewHandler_CreateFeedback(t *testing.T) {
	svc := new(servicemocks.ReviewServiceMock)
	router := setupReviewRouter(svc)

	museumID := uuid.New()
	svc.On("SubmitFeedback", mock.Anything, museumID, mock.AnythingOfType("model.CreateFeedbackRequest")).
		Return(&model.Feedback{
			ID:         1,
			UserID:     "user-1",
			MuseumName: "City Art Museum",
			Message:    "Please extend opening hours",
		}, nil)

	body := map[string]interface{}{
		"user_id": "user-1",
		"email":   "visitor@example.com",
		"message": "Please extend opening hours",
	}
	w := performJSON(router, http.MethodPost, "/api/v1/museums/"+museumID.String()+"/feedback", body, "")

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReviewHandler_CreateFeedback_NotEligible(t *testing.T) {
	svc := new(servicemocks.ReviewServiceMock)
	router := setupReviewRouter(svc)

	museumID := uuid.New()
	svc.On("SubmitFeedback", mock.Anything, museumID, mock.AnythingOfType("model.CreateFeedbackRequest")).
		Return(nil, apperrors.ErrNotEligible)

	body := map[string]interface{}{
		"user_id": "user-2",
		"email":   "other@example.com",
		"message": "Feedback without booking",
	}
	w := performJSON(router, http.MethodPost, "/api/v1/museums/"+museumID.String()+"/feedback", body, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReviewHandler_ListReviews(t *testing.T) {
	svc := new(servicemocks.ReviewServiceMock)
	router := setupReviewRouter(svc)

	museumID := uuid.New()
	svc.On("ListMuseumReviews", mock.Anything, museumID).Return([]*model.Review{
		{ID: 1, Rating: 5},
		{ID: 2, Rating: 4},
	}, nil)

	w := performJSON(router, http.MethodGet, "/api/v1/museums/"+museumID.String()+"/reviews", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*model.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestReviewHandler_ListReviews_MuseumNotFound(t *testing.T) {
	svc := new(servicemocks.ReviewServiceMock)
	router := setupReviewRouter(svc)

	museumID := uuid.New()
	svc.On("ListMuseumReviews", mock.Anything, museumID).Return(nil, apperrors.ErrMuseumNotFound)

	w := performJSON(router, http.MethodGet, "/api/v1/museums/"+museumID.String()+"/reviews", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
