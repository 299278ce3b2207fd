package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashierAccountFilter holds query options for listing cashier accounts.
// Keyword matches name, account number, bank name and remark as a
// case-insensitive substring.
type CashierAccountFilter struct {
	Keyword  string
	Class    *AccountClass
	Page     int
	PageSize int
}

// CashierAccountRepository persists CashierAccount aggregates
type CashierAccountRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*CashierAccount, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter CashierAccountFilter) ([]CashierAccount, int64, error)
	Save(ctx context.Context, account *CashierAccount) error
	// SaveWithLock persists the account only if its stored version matches,
	// failing with a concurrency conflict otherwise.
	SaveWithLock(ctx context.Context, account *CashierAccount) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}

// PartnerBalanceFilter holds query options for listing partner balances
type PartnerBalanceFilter struct {
	PartnerType *PartnerType
	Keyword     string
	OnlyArrears bool
	Page        int
	PageSize    int
}

// ArrearsTotals aggregates the due/settled/arrears position for one partner class
type ArrearsTotals struct {
	PartnerType  PartnerType
	PartnerCount int64
	TotalDue     decimal.Decimal
	TotalSettled decimal.Decimal
	TotalArrears decimal.Decimal
}

// PartnerBalanceRepository persists PartnerBalance aggregates
type PartnerBalanceRepository interface {
	FindByPartnerForTenant(ctx context.Context, tenantID uuid.UUID, partnerType PartnerType, partnerID uuid.UUID) (*PartnerBalance, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter PartnerBalanceFilter) ([]PartnerBalance, int64, error)
	Save(ctx context.Context, balance *PartnerBalance) error
	SaveWithLock(ctx context.Context, balance *PartnerBalance) error
	// SumForTenant aggregates the due/settled/arrears totals for one partner class
	SumForTenant(ctx context.Context, tenantID uuid.UUID, partnerType PartnerType) (*ArrearsTotals, error)
}

// ReconciliationEntryFilter holds query options for reconciliation entries.
// All fields are optional; zero values are ignored.
type ReconciliationEntryFilter struct {
	PartnerType    *PartnerType
	Status         *ReconciliationStatus
	Keyword        string
	DocumentNo     string
	StyleKeyword   string
	StatementNo    string
	ShipmentFrom   *time.Time
	ShipmentTo     *time.Time
	ReconciledFrom *time.Time
	ReconciledTo   *time.Time
	Page           int
	PageSize       int
}

// ReconciliationSummary aggregates the full filtered entry set regardless of
// the pagination window
type ReconciliationSummary struct {
	TotalAmount     decimal.Decimal
	ReconciledCount int64
}

// ReconciliationEntryRepository persists ReconciliationEntry aggregates
type ReconciliationEntryRepository interface {
	Create(ctx context.Context, entry *ReconciliationEntry) error
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ReconciliationEntry, error)
	FindByIDsForTenant(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]ReconciliationEntry, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ReconciliationEntryFilter) ([]ReconciliationEntry, int64, error)
	Save(ctx context.Context, entry *ReconciliationEntry) error
	SaveWithLock(ctx context.Context, entry *ReconciliationEntry) error
	// Summarize computes the signed-amount total and reconciled count over
	// the whole filtered set, ignoring pagination.
	Summarize(ctx context.Context, tenantID uuid.UUID, filter ReconciliationEntryFilter) (*ReconciliationSummary, error)
}
