package handler

import (
	ledgerapp "github.com/garment-erp/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CashierAccountHandler handles cashier account API endpoints
type CashierAccountHandler struct {
	BaseHandler
	accountService *ledgerapp.CashierAccountService
}

// NewCashierAccountHandler creates a new CashierAccountHandler
func NewCashierAccountHandler(accountService *ledgerapp.CashierAccountService) *CashierAccountHandler {
	return &CashierAccountHandler{
		accountService: accountService,
	}
}

// Create registers a new cashier account.
// POST /ledger/cashier-accounts
func (h *CashierAccountHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req ledgerapp.CreateCashierAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, account)
}

// GetByID retrieves one cashier account.
// GET /ledger/cashier-accounts/:id
func (h *CashierAccountHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), tenantID, accountID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// List returns cashier accounts matching the filter.
// GET /ledger/cashier-accounts
func (h *CashierAccountHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter ledgerapp.CashierAccountListFilter
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

	accounts, total, err := h.accountService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, accounts, total, filter.Page, filter.PageSize)
}

// Adjust applies a signed balance adjustment to an account.
// POST /ledger/cashier-accounts/:id/adjust
func (h *CashierAccountHandler) Adjust(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	var req ledgerapp.AdjustCashierAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.Adjust(c.Request.Context(), tenantID, accountID, req.Delta)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// Delete removes a cashier account that has no recorded movements.
// DELETE /ledger/cashier-accounts/:id
func (h *CashierAccountHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), tenantID, accountID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
