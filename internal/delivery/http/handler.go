package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutriscore/backend/internal/domain"
	"github.com/nutriscore/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	engine *usecase.Engine
}

// NewHandler creates a new HTTP handler.
func NewHandler(engine *usecase.Engine) *Handler {
	return &Handler{engine: engine}
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutriscore-backend",
		"version": "1.0.0",
	})
}

// scoreMealRequest is the body for POST /api/v1/meals/score.
type scoreMealRequest struct {
	Items []domain.FoodQuery `json:"items" binding:"required,min=1,dive"`
}

// ScoreMeal resolves and scores a meal of food queries.
func (h *Handler) ScoreMeal(c *gin.Context) {
	var req scoreMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.engine.ResolveAndScore(c.Request.Context(), req.Items)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrInvalidRequest):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// LookupBarcode resolves a single food by barcode, bypassing name matching.
func (h *Handler) LookupBarcode(c *gin.Context) {
	code := c.Param("code")

	record, err := h.engine.ResolveByBarcode(c.Request.Context(), code)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrInvalidRequest):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// targetsRequest is the body for POST /api/v1/targets.
type targetsRequest struct {
	Profile domain.PersonalProfile `json:"profile"`
	Goal    domain.Goal            `json:"goal"`
}

// CalculateTargets computes personalized daily macro targets.
func (h *Handler) CalculateTargets(c *gin.Context) {
	var req targetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targets, err := h.engine.Targets(req.Profile, req.Goal)
	if err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, targets)
}
