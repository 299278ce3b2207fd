package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/garment-erp/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPartnerBalanceRepository implements PartnerBalanceRepository using GORM
type GormPartnerBalanceRepository struct {
	db *gorm.DB
}

// NewGormPartnerBalanceRepository creates a new GormPartnerBalanceRepository
func NewGormPartnerBalanceRepository(db *gorm.DB) *GormPartnerBalanceRepository {
	return &GormPartnerBalanceRepository{db: db}
}

// FindByPartnerForTenant finds the balance record for one partner.
// Returns (nil, nil) when no record exists yet; callers decide whether a
// missing partner is an error or a signal to create a zero-initialized record.
func (r *GormPartnerBalanceRepository) FindByPartnerForTenant(ctx context.Context, tenantID uuid.UUID, partnerType ledger.PartnerType, partnerID uuid.UUID) (*ledger.PartnerBalance, error) {
	var model models.PartnerBalanceModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND partner_type = ? AND partner_id = ?", tenantID, string(partnerType), partnerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists partner balances with filtering and pagination
func (r *GormPartnerBalanceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.PartnerBalanceFilter) ([]ledger.PartnerBalance, int64, error) {
	var balanceModels []models.PartnerBalanceModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.PartnerBalanceModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	// Largest arrears first so the collection worklist surfaces at the top
	query = query.Order("arrears DESC")

	if err := query.Find(&balanceModels).Error; err != nil {
		return nil, 0, err
	}

	balances := make([]ledger.PartnerBalance, len(balanceModels))
	for i := range balanceModels {
		balances[i] = *balanceModels[i].ToDomain()
	}
	return balances, total, nil
}

// Save creates or updates a partner balance
func (r *GormPartnerBalanceRepository) Save(ctx context.Context, balance *ledger.PartnerBalance) error {
	model := models.PartnerBalanceModelFromDomain(balance)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking. The domain mutation already
// incremented the version, so the stored row must still carry the previous one.
func (r *GormPartnerBalanceRepository) SaveWithLock(ctx context.Context, balance *ledger.PartnerBalance) error {
	model := models.PartnerBalanceModelFromDomain(balance)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("tenant_id = ? AND id = ? AND version = ?", balance.TenantID, balance.GetID(), balance.Version-1).
		Save(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// SumForTenant aggregates the due/settled/arrears totals for one partner class
func (r *GormPartnerBalanceRepository) SumForTenant(ctx context.Context, tenantID uuid.UUID, partnerType ledger.PartnerType) (*ledger.ArrearsTotals, error) {
	var row struct {
		PartnerCount int64
		TotalDue     decimal.Decimal
		TotalSettled decimal.Decimal
		TotalArrears decimal.Decimal
	}

	if err := r.db.WithContext(ctx).
		Model(&models.PartnerBalanceModel{}).
		Select(
			"COUNT(*) as partner_count, " +
				"COALESCE(SUM(total_due), 0) as total_due, " +
				"COALESCE(SUM(settled_amount), 0) as total_settled, " +
				"COALESCE(SUM(arrears), 0) as total_arrears",
		).
		Where("tenant_id = ? AND partner_type = ?", tenantID, string(partnerType)).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	return &ledger.ArrearsTotals{
		PartnerType:  partnerType,
		PartnerCount: row.PartnerCount,
		TotalDue:     row.TotalDue,
		TotalSettled: row.TotalSettled,
		TotalArrears: row.TotalArrears,
	}, nil
}

// applyFilter applies filter options to the query
func (r *GormPartnerBalanceRepository) applyFilter(query *gorm.DB, filter ledger.PartnerBalanceFilter) *gorm.DB {
	if filter.PartnerType != nil {
		query = query.Where("partner_type = ?", string(*filter.PartnerType))
	}

	if filter.Keyword != "" {
		pattern := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where("LOWER(partner_name) LIKE ?", pattern)
	}

	if filter.OnlyArrears {
		query = query.Where("arrears > 0")
	}

	return query
}

// Ensure GormPartnerBalanceRepository implements PartnerBalanceRepository
var _ ledger.PartnerBalanceRepository = (*GormPartnerBalanceRepository)(nil)
