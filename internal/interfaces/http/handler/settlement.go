package handler

import (
	ledgerapp "github.com/garment-erp/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// SettlementHandler handles payment recording API endpoints
type SettlementHandler struct {
	BaseHandler
	paymentService *ledgerapp.PaymentService
}

// NewSettlementHandler creates a new SettlementHandler
func NewSettlementHandler(paymentService *ledgerapp.PaymentService) *SettlementHandler {
	return &SettlementHandler{
		paymentService: paymentService,
	}
}

// RecordPayment settles an amount against a partner and moves it through a
// cashier account. Both aggregates are updated in one transaction; the
// response carries both so the caller can render them without a second read.
// POST /ledger/settlements/payments
func (h *SettlementHandler) RecordPayment(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req ledgerapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.paymentService.RecordPayment(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}
