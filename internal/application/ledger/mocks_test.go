package ledger

import (
	"context"
	"time"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCashierAccountRepository is a mock implementation of CashierAccountRepository
type MockCashierAccountRepository struct {
	mock.Mock
}

func (m *MockCashierAccountRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.CashierAccount, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.CashierAccount), args.Error(1)
}

func (m *MockCashierAccountRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.CashierAccountFilter) ([]ledger.CashierAccount, int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]ledger.CashierAccount), args.Get(1).(int64), args.Error(2)
}

func (m *MockCashierAccountRepository) Save(ctx context.Context, account *ledger.CashierAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockCashierAccountRepository) SaveWithLock(ctx context.Context, account *ledger.CashierAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockCashierAccountRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

var _ ledger.CashierAccountRepository = (*MockCashierAccountRepository)(nil)

// MockPartnerBalanceRepository is a mock implementation of PartnerBalanceRepository
type MockPartnerBalanceRepository struct {
	mock.Mock
}

func (m *MockPartnerBalanceRepository) FindByPartnerForTenant(ctx context.Context, tenantID uuid.UUID, partnerType ledger.PartnerType, partnerID uuid.UUID) (*ledger.PartnerBalance, error) {
	args := m.Called(ctx, tenantID, partnerType, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.PartnerBalance), args.Error(1)
}

func (m *MockPartnerBalanceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.PartnerBalanceFilter) ([]ledger.PartnerBalance, int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]ledger.PartnerBalance), args.Get(1).(int64), args.Error(2)
}

func (m *MockPartnerBalanceRepository) Save(ctx context.Context, balance *ledger.PartnerBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockPartnerBalanceRepository) SaveWithLock(ctx context.Context, balance *ledger.PartnerBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockPartnerBalanceRepository) SumForTenant(ctx context.Context, tenantID uuid.UUID, partnerType ledger.PartnerType) (*ledger.ArrearsTotals, error) {
	args := m.Called(ctx, tenantID, partnerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.ArrearsTotals), args.Error(1)
}

var _ ledger.PartnerBalanceRepository = (*MockPartnerBalanceRepository)(nil)

// MockReconciliationEntryRepository is a mock implementation of ReconciliationEntryRepository
type MockReconciliationEntryRepository struct {
	mock.Mock
}

func (m *MockReconciliationEntryRepository) Create(ctx context.Context, entry *ledger.ReconciliationEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockReconciliationEntryRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.ReconciliationEntry, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.ReconciliationEntry), args.Error(1)
}

func (m *MockReconciliationEntryRepository) FindByIDsForTenant(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]ledger.ReconciliationEntry, error) {
	args := m.Called(ctx, tenantID, ids)
	return args.Get(0).([]ledger.ReconciliationEntry), args.Error(1)
}

func (m *MockReconciliationEntryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.ReconciliationEntryFilter) ([]ledger.ReconciliationEntry, int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]ledger.ReconciliationEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockReconciliationEntryRepository) Save(ctx context.Context, entry *ledger.ReconciliationEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockReconciliationEntryRepository) SaveWithLock(ctx context.Context, entry *ledger.ReconciliationEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockReconciliationEntryRepository) Summarize(ctx context.Context, tenantID uuid.UUID, filter ledger.ReconciliationEntryFilter) (*ledger.ReconciliationSummary, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.ReconciliationSummary), args.Error(1)
}

var _ ledger.ReconciliationEntryRepository = (*MockReconciliationEntryRepository)(nil)

// MockIdempotencyStore is a mock implementation of shared.IdempotencyStore
type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// =============================================================================
// Test Helper Functions
// =============================================================================

func newLedgerTestTenantID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}
