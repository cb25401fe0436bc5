package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
	"github.com/dhakad-labs/habitflow/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats/weekly", h.GetWeeklyStats)
	r.GET("/stats/monthly", h.GetMonthlyStats)
	r.GET("/stats/monthly/habits/:id", h.GetHabitMonthlyStats)
	r.GET("/stats/overview", h.GetOverviewStats)
}

func (h *StatsHandler) GetWeeklyStats(c *gin.Context) {
	anchor := time.Now()

	if anchorStr := c.Query("anchor"); anchorStr != "" {
		parsed, err := domain.ParseDateKey(anchorStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anchor format, expected YYYY-MM-DD"})
			return
		}
		anchor = parsed
	}

	stats, err := h.svc.Weekly(c.Request.Context(), anchor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// parseYearMonth reads year/month query params, defaulting to the current
// month when both are absent.
func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if yearStr := c.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return 0, 0, false
		}
		year = y
	}

	if monthStr := c.Query("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected 1-12"})
			return 0, 0, false
		}
		month = time.Month(m)
	}

	return year, month, true
}

func (h *StatsHandler) GetMonthlyStats(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	stats, err := h.svc.Monthly(c.Request.Context(), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetHabitMonthlyStats(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	stats, err := h.svc.HabitMonthly(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetOverviewStats(c *gin.Context) {
	rng, ok := parseDateRange(c)
	if !ok {
		return
	}

	stats, err := h.svc.Overview(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// parseDateRange reads start_date/end_date query params. The default range
// covers the last 30 days.
func parseDateRange(c *gin.Context) (domain.DateRange, bool) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -29)
	var err error

	if endStr := c.Query("end_date"); endStr != "" {
		endDate, err = domain.ParseDateKey(endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date format, expected YYYY-MM-DD"})
			return domain.DateRange{}, false
		}
		startDate = endDate.AddDate(0, 0, -29)
	}

	if startStr := c.Query("start_date"); startStr != "" {
		startDate, err = domain.ParseDateKey(startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format, expected YYYY-MM-DD"})
			return domain.DateRange{}, false
		}
	}

	rng, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.DateRange{}, false
	}

	const maxRangeDays = 366
	if rng.Len() > maxRangeDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date range too large, max 1 year allowed"})
		return domain.DateRange{}, false
	}

	return rng, true
}
