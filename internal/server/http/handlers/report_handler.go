package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/butcherynv/posdesk/internal/server/http/dto"
	"github.com/butcherynv/posdesk/internal/usecase"
)

// ReportHandler serves the admin sales report.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// Report handles GET /api/report. The printable table is selected with
// ?format=text.
func (h *ReportHandler) Report(c *gin.Context) {
	view, err := h.facade.Report(c.Request.Context(), time.Now())
	if err != nil {
		writeError(c, err)
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, usecase.RenderReport(view))
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{
		Orders:         toOrderResponses(view.Orders),
		KgByMeatType:   view.KgByMeatType,
		TotalKilograms: view.TotalKilograms,
		GeneratedAt:    view.GeneratedAt,
	})
}
