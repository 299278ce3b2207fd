package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func trendEntry(t *testing.T, tenantID uuid.UUID, day time.Time, amount decimal.Decimal) ledger.ReconciliationEntry {
	t.Helper()
	docType := ledger.DocumentTypeShipment
	if amount.IsNegative() {
		docType = ledger.DocumentTypeSettlement
	}
	entry, err := ledger.NewPendingEntry(tenantID, "ST-202505-001", ledger.PartnerTypeCustomer,
		"Evergreen Textiles", docType, "DOC-"+day.Format("20060102"), amount, day)
	require.NoError(t, err)
	return *entry
}

func TestLedgerQueryService_Trend_SingleBucket(t *testing.T) {
	entryRepo := new(MockReconciliationEntryRepository)
	service := NewLedgerQueryService(entryRepo, new(MockPartnerBalanceRepository))

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()
	entries := []ledger.ReconciliationEntry{
		trendEntry(t, tenantID, time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(48600)),
		trendEntry(t, tenantID, time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(-32000)),
	}

	entryRepo.On("FindAllForTenant", ctx, tenantID, mock.MatchedBy(func(f ledger.ReconciliationEntryFilter) bool {
		return f.PageSize == 0 // whole filtered set, not one page
	})).Return(entries, int64(2), nil)

	flows, err := service.Trend(ctx, tenantID, ReconciliationListFilter{})

	require.NoError(t, err)
	require.Len(t, flows, 1)
	assert.Equal(t, "2025-05", flows[0].Period)
	assert.True(t, flows[0].Inflow.Equal(decimal.NewFromInt(48600)))
	assert.True(t, flows[0].Outflow.Equal(decimal.NewFromInt(32000)))
	assert.True(t, flows[0].Net.Equal(decimal.NewFromInt(16600)))
	entryRepo.AssertExpectations(t)
}

func TestLedgerQueryService_Trend_SparseAscendingBuckets(t *testing.T) {
	entryRepo := new(MockReconciliationEntryRepository)
	service := NewLedgerQueryService(entryRepo, new(MockPartnerBalanceRepository))

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()
	// March and August only; the months between must not appear.
	entries := []ledger.ReconciliationEntry{
		trendEntry(t, tenantID, time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(700)),
		trendEntry(t, tenantID, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(500)),
		trendEntry(t, tenantID, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(-100)),
	}

	entryRepo.On("FindAllForTenant", ctx, tenantID, mock.AnythingOfType("ledger.ReconciliationEntryFilter")).
		Return(entries, int64(3), nil)

	flows, err := service.Trend(ctx, tenantID, ReconciliationListFilter{})

	require.NoError(t, err)
	require.Len(t, flows, 2)
	assert.Equal(t, "2025-03", flows[0].Period)
	assert.Equal(t, "2025-08", flows[1].Period)
	assert.True(t, flows[0].Net.Equal(decimal.NewFromInt(400)))
	assert.True(t, flows[1].Net.Equal(decimal.NewFromInt(700)))
}

func TestLedgerQueryService_Trend_Empty(t *testing.T) {
	entryRepo := new(MockReconciliationEntryRepository)
	service := NewLedgerQueryService(entryRepo, new(MockPartnerBalanceRepository))

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()

	entryRepo.On("FindAllForTenant", ctx, tenantID, mock.AnythingOfType("ledger.ReconciliationEntryFilter")).
		Return([]ledger.ReconciliationEntry{}, int64(0), nil)

	flows, err := service.Trend(ctx, tenantID, ReconciliationListFilter{})

	require.NoError(t, err)
	assert.Empty(t, flows)
}

func TestLedgerQueryService_Summary(t *testing.T) {
	entryRepo := new(MockReconciliationEntryRepository)
	service := NewLedgerQueryService(entryRepo, new(MockPartnerBalanceRepository))

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()

	entryRepo.On("Summarize", ctx, tenantID, mock.AnythingOfType("ledger.ReconciliationEntryFilter")).
		Return(&ledger.ReconciliationSummary{
			TotalAmount:     decimal.NewFromFloat(98765.43),
			ReconciledCount: 12,
		}, nil)

	summary, err := service.Summary(ctx, tenantID, ReconciliationListFilter{Status: "RECONCILED"})

	require.NoError(t, err)
	assert.True(t, summary.TotalAmount.Equal(decimal.NewFromFloat(98765.43)))
	assert.Equal(t, int64(12), summary.ReconciledCount)
}

func TestLedgerQueryService_ArrearsOverview_AllClasses(t *testing.T) {
	balanceRepo := new(MockPartnerBalanceRepository)
	service := NewLedgerQueryService(new(MockReconciliationEntryRepository), balanceRepo)

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()

	for _, pt := range []ledger.PartnerType{ledger.PartnerTypeCustomer, ledger.PartnerTypeFactory, ledger.PartnerTypeSupplier} {
		balanceRepo.On("SumForTenant", ctx, tenantID, pt).Return(&ledger.ArrearsTotals{
			PartnerType:  pt,
			PartnerCount: 2,
			TotalDue:     decimal.NewFromInt(1000),
			TotalSettled: decimal.NewFromInt(400),
			TotalArrears: decimal.NewFromInt(600),
		}, nil)
	}

	overview, err := service.ArrearsOverview(ctx, tenantID, "")

	require.NoError(t, err)
	require.Len(t, overview, 3)
	assert.Equal(t, "CUSTOMER", overview[0].PartnerType)
	assert.True(t, overview[0].TotalArrears.Equal(decimal.NewFromInt(600)))
	balanceRepo.AssertExpectations(t)
}

func TestLedgerQueryService_ArrearsOverview_SingleClass(t *testing.T) {
	balanceRepo := new(MockPartnerBalanceRepository)
	service := NewLedgerQueryService(new(MockReconciliationEntryRepository), balanceRepo)

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()

	balanceRepo.On("SumForTenant", ctx, tenantID, ledger.PartnerTypeFactory).Return(&ledger.ArrearsTotals{
		PartnerType:  ledger.PartnerTypeFactory,
		PartnerCount: 1,
		TotalDue:     decimal.NewFromInt(800),
		TotalSettled: decimal.NewFromInt(300),
		TotalArrears: decimal.NewFromInt(500),
	}, nil)

	overview, err := service.ArrearsOverview(ctx, tenantID, "FACTORY")

	require.NoError(t, err)
	require.Len(t, overview, 1)
	assert.Equal(t, "FACTORY", overview[0].PartnerType)
	balanceRepo.AssertExpectations(t)
}

func TestLedgerQueryService_ArrearsOverview_InvalidType(t *testing.T) {
	balanceRepo := new(MockPartnerBalanceRepository)
	service := NewLedgerQueryService(new(MockReconciliationEntryRepository), balanceRepo)

	overview, err := service.ArrearsOverview(context.Background(), newLedgerTestTenantID(), "BROKER")

	assert.Error(t, err)
	assert.Nil(t, overview)
	balanceRepo.AssertNotCalled(t, "SumForTenant")
}
