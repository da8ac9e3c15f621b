package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/api/models"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/report"

	"github.com/gin-gonic/gin"
)

// DownloadReport handles GET /api/v1/analyses/:id/report.csv — the full trade
// table as a downloadable artifact.
func (h *AnalyzeHandler) DownloadReport(c *gin.Context) {
	a, ok := h.lookup(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteTrades(&buf, a.Result.Trades); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "REPORT_ERROR", Message: err.Error()},
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "tradeaudit_report.csv"))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
