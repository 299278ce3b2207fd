package ledger

import (
	"context"
	"time"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReconciliationService manages the statement reconciliation ledger
type ReconciliationService struct {
	entryRepo ledger.ReconciliationEntryRepository
}

// NewReconciliationService creates a new ReconciliationService
func NewReconciliationService(entryRepo ledger.ReconciliationEntryRepository) *ReconciliationService {
	return &ReconciliationService{
		entryRepo: entryRepo,
	}
}

// RecordEntry creates a reconciliation entry. When the request carries a
// reconciliation date the entry is closed under its statement at creation
// time; otherwise it starts unreconciled.
func (s *ReconciliationService) RecordEntry(ctx context.Context, tenantID uuid.UUID, req RecordEntryRequest) (*ReconciliationEntryResponse, error) {
	var entry *ledger.ReconciliationEntry
	var err error

	if req.ReconciledAt != nil {
		entry, err = ledger.NewReconciledEntry(
			tenantID, req.StatementNo,
			ledger.PartnerType(req.PartnerType), req.PartnerName,
			ledger.DocumentType(req.DocumentType), req.DocumentNo,
			req.Amount, req.ShipmentDate.Time, req.ReconciledAt.Time,
		)
	} else {
		entry, err = ledger.NewPendingEntry(
			tenantID, req.StatementNo,
			ledger.PartnerType(req.PartnerType), req.PartnerName,
			ledger.DocumentType(req.DocumentType), req.DocumentNo,
			req.Amount, req.ShipmentDate.Time,
		)
	}
	if err != nil {
		return nil, err
	}

	if req.StyleInfo != "" {
		entry.SetStyleInfo(req.StyleInfo)
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	response := ToReconciliationEntryResponse(entry)
	return &response, nil
}

// GetByID retrieves a reconciliation entry by ID
func (s *ReconciliationService) GetByID(ctx context.Context, tenantID, entryID uuid.UUID) (*ReconciliationEntryResponse, error) {
	entry, err := s.entryRepo.FindByIDForTenant(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Reconciliation entry not found")
	}

	response := ToReconciliationEntryResponse(entry)
	return &response, nil
}

// Cancel reverses reconciliation for a batch of entries. The batch is
// best-effort: unknown ids and entries that are not currently reconciled are
// skipped silently, and only the entries actually flipped back to
// unreconciled are returned. There is no cross-entry atomicity.
func (s *ReconciliationService) Cancel(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]ReconciliationEntryResponse, error) {
	if len(ids) == 0 {
		return []ReconciliationEntryResponse{}, nil
	}

	entries, err := s.entryRepo.FindByIDsForTenant(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}

	updated := make([]ReconciliationEntryResponse, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		if !entry.CancelReconciliation() {
			continue
		}
		if err := s.entryRepo.SaveWithLock(ctx, entry); err != nil {
			return nil, err
		}
		updated = append(updated, ToReconciliationEntryResponse(entry))
	}

	return updated, nil
}

// Reconcile closes a batch of entries under their statements as of the given
// date. Like Cancel the batch is best-effort: unknown ids and entries that
// are already reconciled are skipped silently, and only the entries actually
// closed are returned.
func (s *ReconciliationService) Reconcile(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID, reconciledAt time.Time) ([]ReconciliationEntryResponse, error) {
	if len(ids) == 0 {
		return []ReconciliationEntryResponse{}, nil
	}

	entries, err := s.entryRepo.FindByIDsForTenant(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}

	updated := make([]ReconciliationEntryResponse, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		if entry.IsReconciled() {
			continue
		}
		if err := entry.MarkReconciled(reconciledAt); err != nil {
			return nil, err
		}
		if err := s.entryRepo.SaveWithLock(ctx, entry); err != nil {
			return nil, err
		}
		updated = append(updated, ToReconciliationEntryResponse(entry))
	}

	return updated, nil
}

// Query retrieves a page of reconciliation entries together with a summary
// computed over the whole filtered set.
func (s *ReconciliationService) Query(ctx context.Context, tenantID uuid.UUID, filter ReconciliationListFilter) (*ReconciliationQueryResult, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter, err := toEntryFilter(filter)
	if err != nil {
		return nil, err
	}

	entries, total, err := s.entryRepo.FindAllForTenant(ctx, tenantID, *domainFilter)
	if err != nil {
		return nil, err
	}

	summary, err := s.entryRepo.Summarize(ctx, tenantID, *domainFilter)
	if err != nil {
		return nil, err
	}

	return &ReconciliationQueryResult{
		List:  ToReconciliationEntryResponses(entries),
		Total: total,
		Summary: ReconciliationSummaryResponse{
			TotalAmount:     summary.TotalAmount,
			ReconciledCount: summary.ReconciledCount,
		},
	}, nil
}

func toEntryFilter(filter ReconciliationListFilter) (*ledger.ReconciliationEntryFilter, error) {
	domainFilter := ledger.ReconciliationEntryFilter{
		Keyword:        filter.Keyword,
		DocumentNo:     filter.DocumentNo,
		StyleKeyword:   filter.StyleKeyword,
		StatementNo:    filter.StatementNo,
		ShipmentFrom:   filter.ShipmentFrom,
		ShipmentTo:     filter.ShipmentTo,
		ReconciledFrom: filter.ReconciledFrom,
		ReconciledTo:   filter.ReconciledTo,
		Page:           filter.Page,
		PageSize:       filter.PageSize,
	}
	if filter.PartnerType != "" {
		pt := ledger.PartnerType(filter.PartnerType)
		if !pt.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid partner type")
		}
		domainFilter.PartnerType = &pt
	}
	if filter.Status != "" {
		status := ledger.ReconciliationStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid reconciliation status")
		}
		domainFilter.Status = &status
	}
	return &domainFilter, nil
}
