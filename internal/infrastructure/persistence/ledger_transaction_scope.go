package persistence

import (
	"context"

	appledger "github.com/garment-erp/backend/internal/application/ledger"
	"github.com/garment-erp/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations, so a payment
// that touches both a partner balance and a cashier account commits or rolls
// back as one unit.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// CashierAccounts returns the cashier account repository scoped to the current transaction.
func (r *gormTransactionalRepositories) CashierAccounts() ledger.CashierAccountRepository {
	return NewGormCashierAccountRepository(r.tx)
}

// PartnerBalances returns the partner balance repository scoped to the current transaction.
func (r *gormTransactionalRepositories) PartnerBalances() ledger.PartnerBalanceRepository {
	return NewGormPartnerBalanceRepository(r.tx)
}

// Entries returns the reconciliation entry repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Entries() ledger.ReconciliationEntryRepository {
	return NewGormReconciliationEntryRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appledger.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appledger.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
