package ledger

import (
	"time"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Cashier account DTOs
// =============================================================================

// CreateCashierAccountRequest represents a request to create a cashier account
type CreateCashierAccountRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=100"`
	Class          string          `json:"class" binding:"required,oneof=BANK WALLET CASH"`
	AccountNumber  string          `json:"account_number" binding:"max=100"`
	BankName       string          `json:"bank_name" binding:"max=100"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Remark         string          `json:"remark" binding:"max=500"`
}

// AdjustCashierAccountRequest represents a signed balance adjustment
type AdjustCashierAccountRequest struct {
	Delta decimal.Decimal `json:"delta" binding:"required"`
}

// CashierAccountResponse represents a cashier account in API responses
type CashierAccountResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Class            string          `json:"class"`
	AccountNumber    string          `json:"account_number"`
	BankName         string          `json:"bank_name"`
	InitialBalance   decimal.Decimal `json:"initial_balance"`
	CurrentBalance   decimal.Decimal `json:"current_balance"`
	TransactionCount int64           `json:"transaction_count"`
	Remark           string          `json:"remark"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CashierAccountListFilter represents filter options for the account list
type CashierAccountListFilter struct {
	Keyword  string `form:"keyword"`
	Class    string `form:"class" binding:"omitempty,oneof=BANK WALLET CASH"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCashierAccountResponse converts a domain CashierAccount to its response form
func ToCashierAccountResponse(a *ledger.CashierAccount) CashierAccountResponse {
	return CashierAccountResponse{
		ID:               a.ID,
		Name:             a.Name,
		Class:            a.Class.String(),
		AccountNumber:    a.AccountNumber,
		BankName:         a.BankName,
		InitialBalance:   a.InitialBalance,
		CurrentBalance:   a.CurrentBalance,
		TransactionCount: a.TransactionCount,
		Remark:           a.Remark,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// ToCashierAccountResponses converts a slice of domain accounts
func ToCashierAccountResponses(accounts []ledger.CashierAccount) []CashierAccountResponse {
	responses := make([]CashierAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToCashierAccountResponse(&accounts[i])
	}
	return responses
}

// =============================================================================
// Partner balance DTOs
// =============================================================================

// UpsertObligationRequest records a receivable/payable created by an upstream
// business document. Delta may be negative for returns.
type UpsertObligationRequest struct {
	PartnerID    uuid.UUID       `json:"partner_id" binding:"required"`
	PartnerName  string          `json:"partner_name" binding:"required,min=1,max=200"`
	PartnerType  string          `json:"partner_type" binding:"required,oneof=CUSTOMER FACTORY SUPPLIER"`
	Delta        decimal.Decimal `json:"delta" binding:"required"`
	DocumentDate Date            `json:"document_date" binding:"required"`
}

// PartnerBalanceResponse represents a partner balance in API responses
type PartnerBalanceResponse struct {
	ID                 uuid.UUID       `json:"id"`
	PartnerID          uuid.UUID       `json:"partner_id"`
	PartnerName        string          `json:"partner_name"`
	PartnerType        string          `json:"partner_type"`
	TotalDue           decimal.Decimal `json:"total_due"`
	SettledAmount      decimal.Decimal `json:"settled_amount"`
	Arrears            decimal.Decimal `json:"arrears"`
	LastDocumentDate   *Date           `json:"last_document_date"`
	LastSettlementDate *Date           `json:"last_settlement_date"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// PartnerBalanceListFilter represents filter options for partner balances
type PartnerBalanceListFilter struct {
	PartnerType string `form:"partner_type" binding:"omitempty,oneof=CUSTOMER FACTORY SUPPLIER"`
	Keyword     string `form:"keyword"`
	OnlyArrears bool   `form:"only_arrears"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToPartnerBalanceResponse converts a domain PartnerBalance to its response form
func ToPartnerBalanceResponse(b *ledger.PartnerBalance) PartnerBalanceResponse {
	return PartnerBalanceResponse{
		ID:                 b.ID,
		PartnerID:          b.PartnerID,
		PartnerName:        b.PartnerName,
		PartnerType:        b.PartnerType.String(),
		TotalDue:           b.TotalDue,
		SettledAmount:      b.SettledAmount,
		Arrears:            b.Arrears,
		LastDocumentDate:   NewDatePtr(b.LastDocumentDate),
		LastSettlementDate: NewDatePtr(b.LastSettlementDate),
		UpdatedAt:          b.UpdatedAt,
	}
}

// ToPartnerBalanceResponses converts a slice of domain balances
func ToPartnerBalanceResponses(balances []ledger.PartnerBalance) []PartnerBalanceResponse {
	responses := make([]PartnerBalanceResponse, len(balances))
	for i := range balances {
		responses[i] = ToPartnerBalanceResponse(&balances[i])
	}
	return responses
}

// =============================================================================
// Payment DTOs
// =============================================================================

// PaymentDirection indicates whether money flows into or out of the cashier account
type PaymentDirection string

const (
	// DirectionIncoming is a customer receipt: it credits the cashier account
	DirectionIncoming PaymentDirection = "INCOMING"
	// DirectionOutgoing is a factory/supplier payment: it debits the cashier account
	DirectionOutgoing PaymentDirection = "OUTGOING"
)

// IsValid returns true if the direction is valid
func (d PaymentDirection) IsValid() bool {
	return d == DirectionIncoming || d == DirectionOutgoing
}

// RecordPaymentRequest represents a settlement against a partner and a cashier account
type RecordPaymentRequest struct {
	PartnerID        uuid.UUID       `json:"partner_id" binding:"required"`
	PartnerName      string          `json:"partner_name" binding:"max=200"`
	PartnerType      string          `json:"partner_type" binding:"required,oneof=CUSTOMER FACTORY SUPPLIER"`
	CashierAccountID uuid.UUID       `json:"cashier_account_id" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Direction        string          `json:"direction" binding:"required,oneof=INCOMING OUTGOING"`
	SettledOn        Date            `json:"settled_on" binding:"required"`
	Reference        string          `json:"reference" binding:"max=100"`
}

// PaymentResult returns both updated aggregates so callers can render them
// without a second read.
type PaymentResult struct {
	PartnerBalance PartnerBalanceResponse `json:"partner_balance"`
	CashierAccount CashierAccountResponse `json:"cashier_account"`
}

// =============================================================================
// Reconciliation DTOs
// =============================================================================

// RecordEntryRequest represents a new reconciliation entry
type RecordEntryRequest struct {
	StatementNo  string          `json:"statement_no" binding:"required,min=1,max=100"`
	PartnerType  string          `json:"partner_type" binding:"required,oneof=CUSTOMER FACTORY SUPPLIER"`
	PartnerName  string          `json:"partner_name" binding:"required,min=1,max=200"`
	DocumentType string          `json:"document_type" binding:"required,oneof=SHIPMENT PURCHASE PROCESSING RETURN SETTLEMENT"`
	DocumentNo   string          `json:"document_no" binding:"required,min=1,max=100"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	StyleInfo    string          `json:"style_info" binding:"max=500"`
	ShipmentDate Date            `json:"shipment_date" binding:"required"`
	// ReconciledAt closes the entry under its statement at creation time.
	// Absent means the entry starts unreconciled.
	ReconciledAt *Date `json:"reconciled_at"`
}

// CancelEntriesRequest represents a best-effort batch cancellation
type CancelEntriesRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// ReconcileEntriesRequest closes a batch of pending entries under their
// statements as of the given date.
type ReconcileEntriesRequest struct {
	IDs          []uuid.UUID `json:"ids" binding:"required,min=1"`
	ReconciledAt Date        `json:"reconciled_at" binding:"required"`
}

// ReconciliationEntryResponse represents a reconciliation entry in API responses
type ReconciliationEntryResponse struct {
	ID           uuid.UUID       `json:"id"`
	StatementNo  string          `json:"statement_no"`
	PartnerType  string          `json:"partner_type"`
	PartnerName  string          `json:"partner_name"`
	DocumentType string          `json:"document_type"`
	DocumentNo   string          `json:"document_no"`
	Amount       decimal.Decimal `json:"amount"`
	StyleInfo    string          `json:"style_info"`
	ShipmentDate Date            `json:"shipment_date"`
	Status       string          `json:"status"`
	ReconciledAt *Date           `json:"reconciled_at"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ReconciliationListFilter represents filter options for reconciliation entries
type ReconciliationListFilter struct {
	PartnerType    string     `form:"partner_type" binding:"omitempty,oneof=CUSTOMER FACTORY SUPPLIER"`
	Status         string     `form:"status" binding:"omitempty,oneof=UNRECONCILED RECONCILED"`
	Keyword        string     `form:"keyword"`
	DocumentNo     string     `form:"document_no"`
	StyleKeyword   string     `form:"style"`
	StatementNo    string     `form:"statement_no"`
	ShipmentFrom   *time.Time `form:"shipment_from" time_format:"2006-01-02"`
	ShipmentTo     *time.Time `form:"shipment_to" time_format:"2006-01-02"`
	ReconciledFrom *time.Time `form:"reconciled_from" time_format:"2006-01-02"`
	ReconciledTo   *time.Time `form:"reconciled_to" time_format:"2006-01-02"`
	Page           int        `form:"page" binding:"omitempty,min=1"`
	PageSize       int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ReconciliationSummaryResponse aggregates the full filtered set regardless of paging
type ReconciliationSummaryResponse struct {
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ReconciledCount int64           `json:"reconciled_count"`
}

// ReconciliationQueryResult bundles the page, the total and the summary
type ReconciliationQueryResult struct {
	List    []ReconciliationEntryResponse `json:"list"`
	Total   int64                         `json:"total"`
	Summary ReconciliationSummaryResponse `json:"summary"`
}

// ToReconciliationEntryResponse converts a domain entry to its response form
func ToReconciliationEntryResponse(e *ledger.ReconciliationEntry) ReconciliationEntryResponse {
	return ReconciliationEntryResponse{
		ID:           e.ID,
		StatementNo:  e.StatementNo,
		PartnerType:  e.PartnerType.String(),
		PartnerName:  e.PartnerName,
		DocumentType: string(e.DocumentType),
		DocumentNo:   e.DocumentNo,
		Amount:       e.Amount,
		StyleInfo:    e.StyleInfo,
		ShipmentDate: NewDate(e.ShipmentDate),
		Status:       e.Status.String(),
		ReconciledAt: NewDatePtr(e.ReconciledAt),
		CreatedAt:    e.CreatedAt,
	}
}

// ToReconciliationEntryResponses converts a slice of domain entries
func ToReconciliationEntryResponses(entries []ledger.ReconciliationEntry) []ReconciliationEntryResponse {
	responses := make([]ReconciliationEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToReconciliationEntryResponse(&entries[i])
	}
	return responses
}

// =============================================================================
// Reporting DTOs
// =============================================================================

// MonthlyFlow is one month bucket of the settlement trend series
type MonthlyFlow struct {
	Period  string          `json:"period"` // YYYY-MM
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Net     decimal.Decimal `json:"net"`
}

// ArrearsOverviewResponse aggregates the arrears position for one partner class
type ArrearsOverviewResponse struct {
	PartnerType  string          `json:"partner_type"`
	PartnerCount int64           `json:"partner_count"`
	TotalDue     decimal.Decimal `json:"total_due"`
	TotalSettled decimal.Decimal `json:"total_settled"`
	TotalArrears decimal.Decimal `json:"total_arrears"`
}
