package ledger

import (
	"context"
	"sort"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerQueryService answers reporting queries over the reconciliation ledger
// and partner balances. It never mutates them.
type LedgerQueryService struct {
	entryRepo   ledger.ReconciliationEntryRepository
	balanceRepo ledger.PartnerBalanceRepository
}

// NewLedgerQueryService creates a new LedgerQueryService
func NewLedgerQueryService(
	entryRepo ledger.ReconciliationEntryRepository,
	balanceRepo ledger.PartnerBalanceRepository,
) *LedgerQueryService {
	return &LedgerQueryService{
		entryRepo:   entryRepo,
		balanceRepo: balanceRepo,
	}
}

// Trend groups the filtered reconciliation entries into monthly buckets by
// shipment date. Positive amounts count as inflow, negative as outflow.
// Buckets are returned in ascending chronological order; months with no
// matching entries are omitted.
func (s *LedgerQueryService) Trend(ctx context.Context, tenantID uuid.UUID, filter ReconciliationListFilter) ([]MonthlyFlow, error) {
	domainFilter, err := toEntryFilter(filter)
	if err != nil {
		return nil, err
	}
	// Bucketing needs the whole filtered set, not one page.
	domainFilter.Page = 0
	domainFilter.PageSize = 0

	entries, _, err := s.entryRepo.FindAllForTenant(ctx, tenantID, *domainFilter)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*MonthlyFlow)
	for i := range entries {
		period := entries[i].ShipmentDate.Format("2006-01")
		bucket, ok := buckets[period]
		if !ok {
			bucket = &MonthlyFlow{
				Period:  period,
				Inflow:  decimal.Zero,
				Outflow: decimal.Zero,
			}
			buckets[period] = bucket
		}
		amount := entries[i].Amount
		if amount.IsNegative() {
			bucket.Outflow = bucket.Outflow.Add(amount.Abs())
		} else {
			bucket.Inflow = bucket.Inflow.Add(amount)
		}
	}

	flows := make([]MonthlyFlow, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Net = bucket.Inflow.Sub(bucket.Outflow)
		flows = append(flows, *bucket)
	}
	// Lexical order of YYYY-MM is chronological order.
	sort.Slice(flows, func(i, j int) bool {
		return flows[i].Period < flows[j].Period
	})

	return flows, nil
}

// Summary aggregates the full filtered entry set regardless of pagination
func (s *LedgerQueryService) Summary(ctx context.Context, tenantID uuid.UUID, filter ReconciliationListFilter) (*ReconciliationSummaryResponse, error) {
	domainFilter, err := toEntryFilter(filter)
	if err != nil {
		return nil, err
	}

	summary, err := s.entryRepo.Summarize(ctx, tenantID, *domainFilter)
	if err != nil {
		return nil, err
	}

	return &ReconciliationSummaryResponse{
		TotalAmount:     summary.TotalAmount,
		ReconciledCount: summary.ReconciledCount,
	}, nil
}

// ArrearsOverview aggregates due/settled/arrears totals per partner class.
// When partnerType is empty, all classes are returned.
func (s *LedgerQueryService) ArrearsOverview(ctx context.Context, tenantID uuid.UUID, partnerType string) ([]ArrearsOverviewResponse, error) {
	types := []ledger.PartnerType{
		ledger.PartnerTypeCustomer,
		ledger.PartnerTypeFactory,
		ledger.PartnerTypeSupplier,
	}
	if partnerType != "" {
		pt := ledger.PartnerType(partnerType)
		if !pt.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid partner type")
		}
		types = []ledger.PartnerType{pt}
	}

	overview := make([]ArrearsOverviewResponse, 0, len(types))
	for _, pt := range types {
		totals, err := s.balanceRepo.SumForTenant(ctx, tenantID, pt)
		if err != nil {
			return nil, err
		}
		overview = append(overview, ArrearsOverviewResponse{
			PartnerType:  pt.String(),
			PartnerCount: totals.PartnerCount,
			TotalDue:     totals.TotalDue,
			TotalSettled: totals.TotalSettled,
			TotalArrears: totals.TotalArrears,
		})
	}

	return overview, nil
}
