package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

type ProfileHandler struct {
	repo domain.ProfileRepository
}

func NewProfileHandler(repo domain.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{repo: repo}
}

type updateProfileRequest struct {
	Name      string `json:"name" binding:"required"`
	Tagline   string `json:"tagline"`
	AvatarURL string `json:"avatar_url"`
}

type setThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)
	r.GET("/theme", h.GetTheme)
	r.PUT("/theme", h.SetTheme)
	r.GET("/quote", h.GetQuote)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.repo.LoadProfile(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := &domain.UserProfile{
		Name:      req.Name,
		Tagline:   req.Tagline,
		AvatarURL: req.AvatarURL,
	}
	if err := h.repo.SaveProfile(c.Request.Context(), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetTheme(c *gin.Context) {
	theme, err := h.repo.Theme(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *ProfileHandler) SetTheme(c *gin.Context) {
	var req setThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Theme != domain.ThemeLight && req.Theme != domain.ThemeDark {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be light or dark"})
		return
	}

	if err := h.repo.SetTheme(c.Request.Context(), req.Theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

func (h *ProfileHandler) GetQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": domain.QuoteForHour(time.Now().Hour())})
}
