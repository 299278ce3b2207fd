package ledger

import (
	"context"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerBalanceService tracks running payable/receivable positions per partner
type PartnerBalanceService struct {
	balanceRepo ledger.PartnerBalanceRepository
}

// NewPartnerBalanceService creates a new PartnerBalanceService
func NewPartnerBalanceService(balanceRepo ledger.PartnerBalanceRepository) *PartnerBalanceService {
	return &PartnerBalanceService{
		balanceRepo: balanceRepo,
	}
}

// UpsertObligation records a receivable/payable created by an upstream
// business document. Unknown partners get a zero-initialized record first.
func (s *PartnerBalanceService) UpsertObligation(ctx context.Context, tenantID uuid.UUID, req UpsertObligationRequest) (*PartnerBalanceResponse, error) {
	partnerType := ledger.PartnerType(req.PartnerType)
	if !partnerType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid partner type")
	}

	balance, err := s.balanceRepo.FindByPartnerForTenant(ctx, tenantID, partnerType, req.PartnerID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		balance, err = ledger.NewPartnerBalance(tenantID, req.PartnerID, req.PartnerName, partnerType)
		if err != nil {
			return nil, err
		}
		balance.AddObligation(req.Delta, req.DocumentDate.Time)
		if err := s.balanceRepo.Save(ctx, balance); err != nil {
			return nil, err
		}
	} else {
		balance.AddObligation(req.Delta, req.DocumentDate.Time)
		if err := s.balanceRepo.SaveWithLock(ctx, balance); err != nil {
			return nil, err
		}
	}

	response := ToPartnerBalanceResponse(balance)
	return &response, nil
}

// GetByPartner retrieves the balance record for one partner
func (s *PartnerBalanceService) GetByPartner(ctx context.Context, tenantID uuid.UUID, partnerType string, partnerID uuid.UUID) (*PartnerBalanceResponse, error) {
	pt := ledger.PartnerType(partnerType)
	if !pt.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid partner type")
	}

	balance, err := s.balanceRepo.FindByPartnerForTenant(ctx, tenantID, pt, partnerID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, shared.NewDomainError("PARTNER_NOT_FOUND", "Partner balance not found")
	}

	response := ToPartnerBalanceResponse(balance)
	return &response, nil
}

// List retrieves partner balances with filtering and pagination
func (s *PartnerBalanceService) List(ctx context.Context, tenantID uuid.UUID, filter PartnerBalanceListFilter) ([]PartnerBalanceResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := ledger.PartnerBalanceFilter{
		Keyword:     filter.Keyword,
		OnlyArrears: filter.OnlyArrears,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
	}
	if filter.PartnerType != "" {
		pt := ledger.PartnerType(filter.PartnerType)
		if !pt.IsValid() {
			return nil, 0, shared.NewDomainError("VALIDATION_ERROR", "Invalid partner type")
		}
		domainFilter.PartnerType = &pt
	}

	balances, total, err := s.balanceRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPartnerBalanceResponses(balances), total, nil
}
