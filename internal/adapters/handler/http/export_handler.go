package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhakad-labs/habitflow/internal/core/services"
)

type ExportHandler struct {
	svc *services.ReportService
}

func NewExportHandler(svc *services.ReportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

func (h *ExportHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/export/pdf", h.ExportPDF)
	r.GET("/export/csv", h.ExportCSV)
}

func (h *ExportHandler) ExportPDF(c *gin.Context) {
	rng, ok := parseDateRange(c)
	if !ok {
		return
	}

	filename, data, err := h.svc.Export(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rng, ok := parseDateRange(c)
	if !ok {
		return
	}

	filename, data, err := h.svc.ExportCSV(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
