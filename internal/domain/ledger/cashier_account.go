package ledger

import (
	"strings"
	"time"

	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountClass represents the kind of store of funds behind a cashier account
type AccountClass string

const (
	// AccountClassBank represents a bank account
	AccountClassBank AccountClass = "BANK"
	// AccountClassWallet represents a digital wallet account (Alipay/WeChat)
	AccountClassWallet AccountClass = "WALLET"
	// AccountClassCash represents a physical cash drawer
	AccountClassCash AccountClass = "CASH"
)

// String returns the string representation of AccountClass
func (c AccountClass) String() string {
	return string(c)
}

// IsValid returns true if the account class is valid
func (c AccountClass) IsValid() bool {
	switch c {
	case AccountClassBank, AccountClassWallet, AccountClassCash:
		return true
	}
	return false
}

// CashierAccount is a named store of funds whose balance changes only through
// validated adjustments. TransactionCount tracks how many adjustments have
// been applied; an account with recorded transactions cannot be deleted.
type CashierAccount struct {
	shared.TenantAggregateRoot
	Name             string
	Class            AccountClass
	AccountNumber    string
	BankName         string
	InitialBalance   decimal.Decimal
	CurrentBalance   decimal.Decimal
	TransactionCount int64
	Remark           string
}

// NewCashierAccount creates a new cashier account.
// Bank accounts must carry a bank name; the initial balance cannot be negative.
func NewCashierAccount(
	tenantID uuid.UUID,
	name string,
	class AccountClass,
	accountNumber string,
	bankName string,
	initialBalance decimal.Decimal,
) (*CashierAccount, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Account name cannot be empty")
	}
	if !class.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid account class")
	}
	if class == AccountClassBank && strings.TrimSpace(bankName) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Bank name is required for bank accounts")
	}
	if initialBalance.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Initial balance cannot be negative")
	}

	return &CashierAccount{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Class:               class,
		AccountNumber:       accountNumber,
		BankName:            bankName,
		InitialBalance:      initialBalance.Round(2),
		CurrentBalance:      initialBalance.Round(2),
		TransactionCount:    0,
	}, nil
}

// Adjust applies a signed delta to the current balance. Positive deltas are
// receipts, negative deltas are payments. The resulting balance is rounded to
// 2 decimal places and the transaction count is incremented. This is the only
// path by which the balance may change.
func (a *CashierAccount) Adjust(delta decimal.Decimal) {
	a.CurrentBalance = a.CurrentBalance.Add(delta).Round(2)
	a.TransactionCount++
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// CanDelete returns true when the account has no recorded transactions
func (a *CashierAccount) CanDelete() bool {
	return a.TransactionCount == 0
}

// SetRemark updates the free-text remark on the account
func (a *CashierAccount) SetRemark(remark string) {
	a.Remark = remark
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}
