package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/garment-erp/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCashierAccountRepository implements CashierAccountRepository using GORM
type GormCashierAccountRepository struct {
	db *gorm.DB
}

// NewGormCashierAccountRepository creates a new GormCashierAccountRepository
func NewGormCashierAccountRepository(db *gorm.DB) *GormCashierAccountRepository {
	return &GormCashierAccountRepository{db: db}
}

// FindByIDForTenant finds a cashier account by ID within a tenant. A missing
// account is reported as nil without error; callers decide how to surface it.
func (r *GormCashierAccountRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.CashierAccount, error) {
	var model models.CashierAccountModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists cashier accounts with filtering and pagination
func (r *GormCashierAccountRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.CashierAccountFilter) ([]ledger.CashierAccount, int64, error) {
	var accountModels []models.CashierAccountModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.CashierAccountModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	query = query.Order("created_at ASC")

	if err := query.Find(&accountModels).Error; err != nil {
		return nil, 0, err
	}

	accounts := make([]ledger.CashierAccount, len(accountModels))
	for i := range accountModels {
		accounts[i] = *accountModels[i].ToDomain()
	}
	return accounts, total, nil
}

// Save creates or updates a cashier account
func (r *GormCashierAccountRepository) Save(ctx context.Context, account *ledger.CashierAccount) error {
	model := models.CashierAccountModelFromDomain(account)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking. The domain mutation already
// incremented the version, so the stored row must still carry the previous one.
func (r *GormCashierAccountRepository) SaveWithLock(ctx context.Context, account *ledger.CashierAccount) error {
	model := models.CashierAccountModelFromDomain(account)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("tenant_id = ? AND id = ? AND version = ?", account.TenantID, account.GetID(), account.Version-1).
		Save(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// DeleteForTenant deletes a cashier account within a tenant
func (r *GormCashierAccountRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CashierAccountModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormCashierAccountRepository) applyFilter(query *gorm.DB, filter ledger.CashierAccountFilter) *gorm.DB {
	if filter.Class != nil {
		query = query.Where("class = ?", string(*filter.Class))
	}

	if filter.Keyword != "" {
		pattern := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(account_number) LIKE ? OR LOWER(bank_name) LIKE ? OR LOWER(remark) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	return query
}

// Ensure GormCashierAccountRepository implements CashierAccountRepository
var _ ledger.CashierAccountRepository = (*GormCashierAccountRepository)(nil)
