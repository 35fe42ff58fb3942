package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/middleware"
)

// reportHandler serves owner-facing aggregations. Reports are an admin
// concern.
type reportHandler struct {
	reportingSvc portssvc.ReportingSvcFacade
	receiptSvc   portssvc.ReceiptSvcFacade
}

func registerReportRoutes(rg *gin.RouterGroup, reportingSvc portssvc.ReportingSvcFacade, receiptSvc portssvc.ReceiptSvcFacade) {
	h := &reportHandler{reportingSvc: reportingSvc, receiptSvc: receiptSvc}

	reports := rg.Group("/reports", middleware.RequireRoles(domain.RoleAdmin))
	{
		reports.GET("/sales", h.salesSummary)
		reports.GET("/sales/pdf", h.salesReportPDF)
		reports.GET("/outstanding", h.outstandingSummary)
	}
}

// parseRange reads the from/to date query parameters (YYYY-MM-DD). The
// range defaults to the last 30 days and "to" is exclusive at day
// granularity.
func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 1)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date, expected YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date, expected YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, true
}

// salesSummary godoc
// @Summary Sales summary
// @Description Aggregates sales per day within the date range.
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD, default 30 days ago)"
// @Param to query string false "End date inclusive (YYYY-MM-DD, default today)"
// @Success 200 {object} dto.SalesSummaryResponse
// @Security BearerAuth
// @Router /reports/sales [get]
func (h *reportHandler) salesSummary(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	summary, err := h.reportingSvc.SalesSummary(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// salesReportPDF godoc
// @Summary Sales report PDF
// @Description Renders the daily sales summary as a printable PDF.
// @Tags reports
// @Produce application/pdf
// @Param from query string false "Start date (YYYY-MM-DD, default 30 days ago)"
// @Param to query string false "End date inclusive (YYYY-MM-DD, default today)"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /reports/sales/pdf [get]
func (h *reportHandler) salesReportPDF(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	document, err := h.receiptSvc.RenderSalesReport(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sales-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", document)
}

// outstandingSummary godoc
// @Summary Outstanding ledger summary
// @Description Aggregates all unsettled installment entries: how much debt is open, how much has been collected on it and how much remains.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.OutstandingSummaryResponse
// @Security BearerAuth
// @Router /reports/outstanding [get]
func (h *reportHandler) outstandingSummary(c *gin.Context) {
	summary, err := h.reportingSvc.OutstandingLedgerSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
