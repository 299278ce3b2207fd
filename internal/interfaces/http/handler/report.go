package handler

import (
	ledgerapp "github.com/garment-erp/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles settlement reporting API endpoints
type ReportHandler struct {
	BaseHandler
	queryService *ledgerapp.LedgerQueryService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(queryService *ledgerapp.LedgerQueryService) *ReportHandler {
	return &ReportHandler{
		queryService: queryService,
	}
}

// Trend returns the monthly inflow/outflow series over the filtered entries.
// GET /ledger/reports/settlement-trend
func (h *ReportHandler) Trend(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter ledgerapp.ReconciliationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	series, err := h.queryService.Trend(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, series)
}

// Summary returns the aggregate totals over the filtered entries.
// GET /ledger/reports/settlement-summary
func (h *ReportHandler) Summary(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter ledgerapp.ReconciliationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.queryService.Summary(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// ArrearsOverview returns the arrears position grouped by partner class.
// An optional partner_type query narrows it to one class.
// GET /ledger/reports/arrears
func (h *ReportHandler) ArrearsOverview(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	overview, err := h.queryService.ArrearsOverview(c.Request.Context(), tenantID, c.Query("partner_type"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, overview)
}
