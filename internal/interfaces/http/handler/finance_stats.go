package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	printingapp "github.com/studiosnap/backend/internal/application/printing"
	reportapp "github.com/studiosnap/backend/internal/application/report"
	domreport "github.com/studiosnap/backend/internal/domain/report"
)

// StatsQueryRequest selects the aggregation window for the stats endpoints.
type StatsQueryRequest struct {
	Range       string     `form:"range"`
	CustomStart *time.Time `form:"custom_start" time_format:"2006-01-02"`
	CustomEnd   *time.Time `form:"custom_end" time_format:"2006-01-02"`
}

func (r StatsQueryRequest) toQuery() reportapp.StatsQuery {
	return reportapp.StatsQuery{
		Range:       domreport.TimeRange(r.Range),
		CustomStart: r.CustomStart,
		CustomEnd:   r.CustomEnd,
	}
}

// GenerateReportRequest selects the window and branding for a PDF report.
type GenerateReportRequest struct {
	Range       string     `json:"range"`
	CustomStart *time.Time `json:"custom_start" time_format:"2006-01-02"`
	CustomEnd   *time.Time `json:"custom_end" time_format:"2006-01-02"`
	StudioName  string     `json:"studio_name"`
}

// FinanceStatsHandler handles the aggregated finance dashboard endpoints
type FinanceStatsHandler struct {
	BaseHandler
	stats     *reportapp.FinanceStatsService
	documents *printingapp.ReportDocumentService
}

// NewFinanceStatsHandler creates a new FinanceStatsHandler
func NewFinanceStatsHandler(stats *reportapp.FinanceStatsService, documents *printingapp.ReportDocumentService) *FinanceStatsHandler {
	return &FinanceStatsHandler{stats: stats, documents: documents}
}

// GetStats computes derived finance stats for the requested window
func (h *FinanceStatsHandler) GetStats(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req StatsQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stats, err := h.stats.Compute(c.Request.Context(), tenantID, req.toQuery())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}

// GetCharts returns chart-ready series derived from the stats
func (h *FinanceStatsHandler) GetCharts(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req StatsQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stats, err := h.stats.Compute(c.Request.Context(), tenantID, req.toQuery())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reportapp.BuildChartSeries(stats))
}

// Refresh recomputes the global stats picture immediately
func (h *FinanceStatsHandler) Refresh(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	stats, err := h.stats.Refresh(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}

// GenerateReport computes stats for the requested window and streams
// the rendered PDF back as a file download
func (h *FinanceStatsHandler) GenerateReport(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	query := reportapp.StatsQuery{
		Range:       domreport.TimeRange(req.Range),
		CustomStart: req.CustomStart,
		CustomEnd:   req.CustomEnd,
	}

	stats, err := h.stats.Compute(c.Request.Context(), tenantID, query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	payload := reportapp.BuildReportPayload(stats, req.StudioName)
	doc, err := h.documents.GeneratePDF(c.Request.Context(), payload)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Header("X-Page-Count", fmt.Sprintf("%d", doc.PageCount))
	c.Data(http.StatusOK, "application/pdf", doc.PDFData)
}

// RegisterRoutes registers the finance stats routes
func (h *FinanceStatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	finance := rg.Group("/finance")
	{
		finance.GET("/stats", h.GetStats)
		finance.GET("/stats/charts", h.GetCharts)
		finance.POST("/stats/refresh", h.Refresh)
		finance.POST("/stats/report", h.GenerateReport)
	}
}
