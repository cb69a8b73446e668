package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aqari/internal/domain"
	"aqari/internal/service"
	"aqari/internal/validator"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler handles dashboard aggregation and export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Kpis handles GET /api/v1/reports/kpis
// @Summary Portfolio KPIs
// @Description Headline dashboard numbers for the tenant's portfolio
// @Tags reports
// @Produce json
// @Success 200 {object} Response{data=domain.PortfolioKpis} "KPI block"
// @Security BearerAuth
// @Router /reports/kpis [get]
func (h *ReportHandler) Kpis(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	kpis, err := h.reportService.PortfolioKpis(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, kpis)
}

// PdcAging handles GET /api/v1/reports/pdc-aging
// @Summary Cheque aging report
// @Tags reports
// @Produce json
// @Param property_id query string false "Filter by property (UUID)"
// @Param date_from query string false "Window start (YYYY-MM-DD)"
// @Param date_to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} Response{data=[]domain.PdcAgingRow} "Aging buckets"
// @Security BearerAuth
// @Router /reports/pdc-aging [get]
func (h *ReportHandler) PdcAging(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, ok := parseReportFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.PdcAging(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// ComplianceOverview handles GET /api/v1/reports/compliance
// @Summary Compliance overview
// @Tags reports
// @Produce json
// @Param property_id query string false "Filter by property (UUID)"
// @Success 200 {object} Response{data=[]domain.ComplianceOverviewRow} "Per-requirement outcomes"
// @Security BearerAuth
// @Router /reports/compliance [get]
func (h *ReportHandler) ComplianceOverview(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, ok := parseReportFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.ComplianceOverview(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// ViolationSummary handles GET /api/v1/reports/violations
// @Summary Violation summary
// @Tags reports
// @Produce json
// @Param property_id query string false "Filter by property (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.ViolationSummaryRow,meta=PagMeta} "Per-property summary"
// @Security BearerAuth
// @Router /reports/violations [get]
func (h *ReportHandler) ViolationSummary(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, ok := parseReportFilters(c)
	if !ok {
		return
	}
	filters.Offset, filters.Limit = pagination(c)

	rows, total, err := h.reportService.ViolationSummary(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, rows, PagMeta{Total: total, Offset: filters.Offset, Limit: filters.Limit})
}

// ExportChequesCSV handles GET /api/v1/reports/cheques.csv
// @Summary Export the cheque register as CSV
// @Description BOM-prefixed CSV honoring the cheque listing filters
// @Tags reports
// @Produce text/csv
// @Param property_id query string false "Filter by property (UUID)"
// @Param status query string false "Filter by status"
// @Success 200 {string} string "CSV file"
// @Security BearerAuth
// @Router /reports/cheques.csv [get]
func (h *ReportHandler) ExportChequesCSV(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, ok := parsePdcFilters(c)
	if !ok {
		return
	}

	c.Header("Content-Type", csvContentType)
	c.Header("Content-Disposition", `attachment; filename="cheques.csv"`)
	if err := h.reportService.ExportChequesCSV(c.Request.Context(), c.Writer, tenantID, filters); err != nil {
		// Headers may already be out; all we can do is log.
		log.Printf("reportHandler.ExportChequesCSV: %v", err)
	}
}

// ExportComplianceCSV handles GET /api/v1/reports/compliance.csv
// @Summary Export the compliance overview as CSV
// @Tags reports
// @Produce text/csv
// @Param property_id query string false "Filter by property (UUID)"
// @Success 200 {string} string "CSV file"
// @Security BearerAuth
// @Router /reports/compliance.csv [get]
func (h *ReportHandler) ExportComplianceCSV(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, ok := parseReportFilters(c)
	if !ok {
		return
	}

	c.Header("Content-Type", csvContentType)
	c.Header("Content-Disposition", `attachment; filename="compliance.csv"`)
	if err := h.reportService.ExportComplianceCSV(c.Request.Context(), c.Writer, tenantID, filters); err != nil {
		log.Printf("reportHandler.ExportComplianceCSV: %v", err)
	}
}

// ExportViolationsCSV handles GET /api/v1/reports/violations.csv
// @Summary Export the violation summary as CSV
// @Tags reports
// @Produce text/csv
// @Param property_id query string false "Filter by property (UUID)"
// @Success 200 {string} string "CSV file"
// @Security BearerAuth
// @Router /reports/violations.csv [get]
func (h *ReportHandler) ExportViolationsCSV(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, ok := parseReportFilters(c)
	if !ok {
		return
	}

	c.Header("Content-Type", csvContentType)
	c.Header("Content-Disposition", `attachment; filename="violations.csv"`)
	if err := h.reportService.ExportViolationsCSV(c.Request.Context(), c.Writer, tenantID, filters); err != nil {
		log.Printf("reportHandler.ExportViolationsCSV: %v", err)
	}
}

// ExportChequesXLSX handles GET /api/v1/reports/cheques.xlsx
// @Summary Export the cheque register as a workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param property_id query string false "Filter by property (UUID)"
// @Param status query string false "Filter by status"
// @Success 200 {string} string "XLSX file"
// @Security BearerAuth
// @Router /reports/cheques.xlsx [get]
func (h *ReportHandler) ExportChequesXLSX(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, ok := parsePdcFilters(c)
	if !ok {
		return
	}

	f, err := h.reportService.ExportChequesXLSX(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="cheques.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("reportHandler.ExportChequesXLSX: %v", err)
	}
}

// ExportPortfolioXLSX handles GET /api/v1/reports/portfolio.xlsx
// @Summary Export the portfolio dashboard workbook
// @Description Multi-sheet workbook: KPIs, cheque aging, and the violation summary
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param property_id query string false "Filter by property (UUID)"
// @Success 200 {string} string "XLSX file"
// @Security BearerAuth
// @Router /reports/portfolio.xlsx [get]
func (h *ReportHandler) ExportPortfolioXLSX(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, ok := parseReportFilters(c)
	if !ok {
		return
	}

	f, err := h.reportService.ExportPortfolioXLSX(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="portfolio.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("reportHandler.ExportPortfolioXLSX: %v", err)
	}
}

// parseReportFilters reads the shared report filters from the query string.
func parseReportFilters(c *gin.Context) (domain.ReportFilters, bool) {
	var filters domain.ReportFilters

	if v := c.Query("property_id"); v != "" {
		filters.PropertyID = &v
	}
	if v := c.Query("date_from"); v != "" {
		d, err := time.Parse(validator.DateLayout, v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FILTER", "date_from must be YYYY-MM-DD")
			return filters, false
		}
		filters.DateFrom = &d
	}
	if v := c.Query("date_to"); v != "" {
		d, err := time.Parse(validator.DateLayout, v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FILTER", "date_to must be YYYY-MM-DD")
			return filters, false
		}
		filters.DateTo = &d
	}
	return filters, true
}
