package handler

import (
	ledgerapp "github.com/garment-erp/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartnerBalanceHandler handles partner balance API endpoints
type PartnerBalanceHandler struct {
	BaseHandler
	balanceService *ledgerapp.PartnerBalanceService
}

// NewPartnerBalanceHandler creates a new PartnerBalanceHandler
func NewPartnerBalanceHandler(balanceService *ledgerapp.PartnerBalanceService) *PartnerBalanceHandler {
	return &PartnerBalanceHandler{
		balanceService: balanceService,
	}
}

// UpsertObligation records a receivable or payable created by an upstream
// business document. The partner balance is created on first use.
// POST /ledger/partner-balances/obligations
func (h *PartnerBalanceHandler) UpsertObligation(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req ledgerapp.UpsertObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	balance, err := h.balanceService.UpsertObligation(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, balance)
}

// GetByPartner retrieves the running balance for one partner.
// GET /ledger/partner-balances/:partnerType/:partnerId
func (h *PartnerBalanceHandler) GetByPartner(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	partnerID, err := uuid.Parse(c.Param("partnerId"))
	if err != nil {
		h.BadRequest(c, "Invalid partner ID")
		return
	}

	balance, err := h.balanceService.GetByPartner(c.Request.Context(), tenantID, c.Param("partnerType"), partnerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, balance)
}

// List returns partner balances matching the filter, largest arrears first.
// GET /ledger/partner-balances
func (h *PartnerBalanceHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter ledgerapp.PartnerBalanceListFilter
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

	balances, total, err := h.balanceService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, balances, total, filter.Page, filter.PageSize)
}
