package ledger

import (
	"context"

	"github.com/garment-erp/backend/internal/domain/ledger"
)

// TransactionScope provides transactional access to ledger repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically. PaymentService relies on this to keep the partner balance
// and the cashier account consistent: a failure in either mutation leaves
// both aggregates at their pre-call values.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all ledger repositories within
// a transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// CashierAccounts returns the cashier account repository scoped to the current transaction
	CashierAccounts() ledger.CashierAccountRepository
	// PartnerBalances returns the partner balance repository scoped to the current transaction
	PartnerBalances() ledger.PartnerBalanceRepository
	// Entries returns the reconciliation entry repository scoped to the current transaction
	Entries() ledger.ReconciliationEntryRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	accountRepo ledger.CashierAccountRepository
	balanceRepo ledger.PartnerBalanceRepository
	entryRepo   ledger.ReconciliationEntryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	accountRepo ledger.CashierAccountRepository,
	balanceRepo ledger.PartnerBalanceRepository,
	entryRepo ledger.ReconciliationEntryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		accountRepo: accountRepo,
		balanceRepo: balanceRepo,
		entryRepo:   entryRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CashierAccounts returns the cashier account repository.
func (s *NoOpTransactionScope) CashierAccounts() ledger.CashierAccountRepository {
	return s.accountRepo
}

// PartnerBalances returns the partner balance repository.
func (s *NoOpTransactionScope) PartnerBalances() ledger.PartnerBalanceRepository {
	return s.balanceRepo
}

// Entries returns the reconciliation entry repository.
func (s *NoOpTransactionScope) Entries() ledger.ReconciliationEntryRepository {
	return s.entryRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
