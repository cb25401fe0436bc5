package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
	"github.com/dhakad-labs/habitflow/internal/core/services"
)

type InsightHandler struct {
	svc *services.InsightService
}

func NewInsightHandler(svc *services.InsightService) *InsightHandler {
	return &InsightHandler{svc: svc}
}

func (h *InsightHandler) RegisterRoutes(r *gin.RouterGroup) {
	insights := r.Group("/insights")
	{
		insights.GET("", h.GetCached)
		insights.POST("/refresh", h.Refresh)
		insights.GET("/daily-tip", h.GetDailyTip)
	}
}

func (h *InsightHandler) GetCached(c *gin.Context) {
	bundle, lastRun, err := h.svc.Cached(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if bundle == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no insights generated yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"insights":     bundle,
		"generated_at": lastRun,
	})
}

func (h *InsightHandler) Refresh(c *gin.Context) {
	force := c.Query("force") == "true"

	if !force {
		stale, err := h.svc.Stale(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !stale {
			// Cooldown still active: serve the cached bundle instead of
			// hitting the generator again.
			bundle, _, err := h.svc.Cached(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			if bundle != nil {
				c.JSON(http.StatusOK, gin.H{"insights": bundle, "cached": true})
				return
			}
		}
	}

	bundle, err := h.svc.Refresh(c.Request.Context(), force)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoHabits):
			c.JSON(http.StatusBadRequest, gin.H{"error": "add some habits first"})
		case errors.Is(err, domain.ErrNoAPIKey):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "insights are not configured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh insights"})
		}
		return
	}
	if bundle == nil {
		// Nothing to analyse yet.
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": bundle})
}

func (h *InsightHandler) GetDailyTip(c *gin.Context) {
	tip := h.svc.DailyTip(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"tip": tip})
}
