package ledger

import (
	"context"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashierAccountService handles cashier account business operations
type CashierAccountService struct {
	accountRepo ledger.CashierAccountRepository
}

// NewCashierAccountService creates a new CashierAccountService
func NewCashierAccountService(accountRepo ledger.CashierAccountRepository) *CashierAccountService {
	return &CashierAccountService{
		accountRepo: accountRepo,
	}
}

// Create creates a new cashier account
func (s *CashierAccountService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCashierAccountRequest) (*CashierAccountResponse, error) {
	account, err := ledger.NewCashierAccount(
		tenantID,
		req.Name,
		ledger.AccountClass(req.Class),
		req.AccountNumber,
		req.BankName,
		req.InitialBalance,
	)
	if err != nil {
		return nil, err
	}

	if req.Remark != "" {
		account.SetRemark(req.Remark)
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	response := ToCashierAccountResponse(account)
	return &response, nil
}

// GetByID retrieves a cashier account by ID
func (s *CashierAccountService) GetByID(ctx context.Context, tenantID, accountID uuid.UUID) (*CashierAccountResponse, error) {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, shared.NewDomainError("ACCOUNT_NOT_FOUND", "Cashier account not found")
	}

	response := ToCashierAccountResponse(account)
	return &response, nil
}

// List retrieves cashier accounts with filtering and pagination
func (s *CashierAccountService) List(ctx context.Context, tenantID uuid.UUID, filter CashierAccountListFilter) ([]CashierAccountResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := ledger.CashierAccountFilter{
		Keyword:  filter.Keyword,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if filter.Class != "" {
		class := ledger.AccountClass(filter.Class)
		if !class.IsValid() {
			return nil, 0, shared.NewDomainError("VALIDATION_ERROR", "Invalid account class")
		}
		domainFilter.Class = &class
	}

	accounts, total, err := s.accountRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCashierAccountResponses(accounts), total, nil
}

// Adjust applies a signed delta to an account's balance. This is the only
// path by which a balance changes outside of PaymentService.
func (s *CashierAccountService) Adjust(ctx context.Context, tenantID, accountID uuid.UUID, delta decimal.Decimal) (*CashierAccountResponse, error) {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, shared.NewDomainError("ACCOUNT_NOT_FOUND", "Cashier account not found")
	}

	account.Adjust(delta)

	if err := s.accountRepo.SaveWithLock(ctx, account); err != nil {
		return nil, err
	}

	response := ToCashierAccountResponse(account)
	return &response, nil
}

// Delete removes a cashier account. Accounts with recorded transactions
// cannot be deleted.
func (s *CashierAccountService) Delete(ctx context.Context, tenantID, accountID uuid.UUID) error {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return shared.NewDomainError("ACCOUNT_NOT_FOUND", "Cashier account not found")
	}

	if !account.CanDelete() {
		return shared.NewDomainError("HAS_TRANSACTIONS", "Cannot delete an account with recorded transactions")
	}

	return s.accountRepo.DeleteForTenant(ctx, tenantID, accountID)
}
