package handler

import (
	ledgerapp "github.com/garment-erp/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReconciliationHandler handles reconciliation entry API endpoints
type ReconciliationHandler struct {
	BaseHandler
	reconciliationService *ledgerapp.ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler
func NewReconciliationHandler(reconciliationService *ledgerapp.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{
		reconciliationService: reconciliationService,
	}
}

// RecordEntry appends a document line to a statement. When reconciled_at is
// present the entry is closed at creation time.
// POST /ledger/reconciliation/entries
func (h *ReconciliationHandler) RecordEntry(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req ledgerapp.RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.reconciliationService.RecordEntry(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, entry)
}

// GetByID retrieves one reconciliation entry.
// GET /ledger/reconciliation/entries/:id
func (h *ReconciliationHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	entry, err := h.reconciliationService.GetByID(c.Request.Context(), tenantID, entryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// Query returns the filtered page together with a summary over the whole
// filtered set, so totals stay correct regardless of paging.
// GET /ledger/reconciliation/entries
func (h *ReconciliationHandler) Query(c *gin.Context) {
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
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	result, err := h.reconciliationService.Query(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result, result.Total, filter.Page, filter.PageSize)
}

// Cancel reopens a batch of reconciled entries. Unknown IDs and entries
// that are already unreconciled are skipped silently.
// POST /ledger/reconciliation/entries/cancel
func (h *ReconciliationHandler) Cancel(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req ledgerapp.CancelEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entries, err := h.reconciliationService.Cancel(c.Request.Context(), tenantID, req.IDs)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entries)
}

// Reconcile closes a batch of pending entries as of the given date. Unknown
// IDs and entries that are already reconciled are skipped silently.
// POST /ledger/reconciliation/entries/reconcile
func (h *ReconciliationHandler) Reconcile(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req ledgerapp.ReconcileEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entries, err := h.reconciliationService.Reconcile(c.Request.Context(), tenantID, req.IDs, req.ReconciledAt.Time)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entries)
}
