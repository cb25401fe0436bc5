package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
	"github.com/dhakad-labs/habitflow/internal/core/services"
)

type TrackerHandler struct {
	svc *services.TrackerService
}

func NewTrackerHandler(svc *services.TrackerService) *TrackerHandler {
	return &TrackerHandler{svc: svc}
}

type toggleCompletionRequest struct {
	HabitID string `json:"habit_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

type logSleepRequest struct {
	Date    string `json:"date" binding:"required"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
}

func (h *TrackerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/completions/toggle", h.Toggle)
	router.POST("/sleep", h.LogSleep)
}

func (h *TrackerHandler) Toggle(c *gin.Context) {
	var req toggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completed, err := h.svc.Toggle(c.Request.Context(), req.HabitID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHabitNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		case errors.Is(err, domain.ErrInvalidDateKey), errors.Is(err, domain.ErrFutureDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"habit_id":  req.HabitID,
		"date":      req.Date,
		"completed": completed,
	})
}

func (h *TrackerHandler) LogSleep(c *gin.Context) {
	var req logSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total, err := h.svc.LogSleep(c.Request.Context(), req.Date, req.Hours, req.Minutes)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":          req.Date,
		"sleep_minutes": total,
	})
}
