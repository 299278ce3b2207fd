package ledger

import (
	"context"
	"testing"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAccount(t *testing.T, tenantID uuid.UUID, initial decimal.Decimal) *ledger.CashierAccount {
	t.Helper()
	account, err := ledger.NewCashierAccount(tenantID, "Corporate Account", ledger.AccountClassBank, "6222", "ICBC", initial)
	require.NoError(t, err)
	return account
}

func TestCashierAccountService_Create_Success(t *testing.T) {
	mockRepo := new(MockCashierAccountRepository)
	service := NewCashierAccountService(mockRepo)

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()

	mockRepo.On("Save", ctx, mock.AnythingOfType("*ledger.CashierAccount")).Return(nil)

	resp, err := service.Create(ctx, tenantID, CreateCashierAccountRequest{
		Name:           "Corporate Account",
		Class:          "BANK",
		AccountNumber:  "6222080012345678",
		BankName:       "ICBC",
		InitialBalance: decimal.NewFromInt(500000),
	})

	require.NoError(t, err)
	assert.Equal(t, "Corporate Account", resp.Name)
	assert.True(t, resp.CurrentBalance.Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, int64(0), resp.TransactionCount)
	mockRepo.AssertExpectations(t)
}

func TestCashierAccountService_Create_BankNameRequired(t *testing.T) {
	mockRepo := new(MockCashierAccountRepository)
	service := NewCashierAccountService(mockRepo)

	resp, err := service.Create(context.Background(), newLedgerTestTenantID(), CreateCashierAccountRequest{
		Name:  "Corporate Account",
		Class: "BANK",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestCashierAccountService_Adjust_Success(t *testing.T) {
	mockRepo := new(MockCashierAccountRepository)
	service := NewCashierAccountService(mockRepo)

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()
	accountID := uuid.New()
	account := createTestAccount(t, tenantID, decimal.NewFromInt(500000))

	mockRepo.On("FindByIDForTenant", ctx, tenantID, accountID).Return(account, nil)
	mockRepo.On("SaveWithLock", ctx, account).Return(nil)

	resp, err := service.Adjust(ctx, tenantID, accountID, decimal.NewFromFloat(128450.75))

	require.NoError(t, err)
	assert.True(t, resp.CurrentBalance.Equal(decimal.NewFromFloat(628450.75)))
	assert.Equal(t, int64(1), resp.TransactionCount)
	mockRepo.AssertExpectations(t)
}

func TestCashierAccountService_Adjust_AccountNotFound(t *testing.T) {
	mockRepo := new(MockCashierAccountRepository)
	service := NewCashierAccountService(mockRepo)

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()
	accountID := uuid.New()

	mockRepo.On("FindByIDForTenant", ctx, tenantID, accountID).Return(nil, nil)

	resp, err := service.Adjust(ctx, tenantID, accountID, decimal.NewFromInt(100))

	assert.Error(t, err)
	assert.Nil(t, resp)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestCashierAccountService_Delete_Success(t *testing.T) {
	mockRepo := new(MockCashierAccountRepository)
	service := NewCashierAccountService(mockRepo)

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()
	accountID := uuid.New()
	account := createTestAccount(t, tenantID, decimal.Zero)

	mockRepo.On("FindByIDForTenant", ctx, tenantID, accountID).Return(account, nil)
	mockRepo.On("DeleteForTenant", ctx, tenantID, accountID).Return(nil)

	err := service.Delete(ctx, tenantID, accountID)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCashierAccountService_Delete_HasTransactions(t *testing.T) {
	mockRepo := new(MockCashierAccountRepository)
	service := NewCashierAccountService(mockRepo)

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()
	accountID := uuid.New()
	account := createTestAccount(t, tenantID, decimal.Zero)
	account.Adjust(decimal.NewFromInt(100))

	mockRepo.On("FindByIDForTenant", ctx, tenantID, accountID).Return(account, nil)

	err := service.Delete(ctx, tenantID, accountID)

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "HAS_TRANSACTIONS", domainErr.Code)
	mockRepo.AssertNotCalled(t, "DeleteForTenant")
	mockRepo.AssertExpectations(t)
}

func TestCashierAccountService_List_InvalidClass(t *testing.T) {
	mockRepo := new(MockCashierAccountRepository)
	service := NewCashierAccountService(mockRepo)

	_, _, err := service.List(context.Background(), newLedgerTestTenantID(), CashierAccountListFilter{Class: "PAYPAL"})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "FindAllForTenant")
}

func TestCashierAccountService_List_DefaultsPagination(t *testing.T) {
	mockRepo := new(MockCashierAccountRepository)
	service := NewCashierAccountService(mockRepo)

	ctx := context.Background()
	tenantID := newLedgerTestTenantID()

	mockRepo.On("FindAllForTenant", ctx, tenantID, mock.MatchedBy(func(f ledger.CashierAccountFilter) bool {
		return f.Page == 1 && f.PageSize == 20
	})).Return([]ledger.CashierAccount{}, int64(0), nil)

	_, total, err := service.List(ctx, tenantID, CashierAccountListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	mockRepo.AssertExpectations(t)
}
