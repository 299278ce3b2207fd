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

// GormReconciliationEntryRepository implements ReconciliationEntryRepository using GORM
type GormReconciliationEntryRepository struct {
	db *gorm.DB
}

// NewGormReconciliationEntryRepository creates a new GormReconciliationEntryRepository
func NewGormReconciliationEntryRepository(db *gorm.DB) *GormReconciliationEntryRepository {
	return &GormReconciliationEntryRepository{db: db}
}

// Create creates a new reconciliation entry
func (r *GormReconciliationEntryRepository) Create(ctx context.Context, entry *ledger.ReconciliationEntry) error {
	model := models.ReconciliationEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByIDForTenant finds a reconciliation entry by ID within a tenant. A
// missing entry is reported as nil without error.
func (r *GormReconciliationEntryRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.ReconciliationEntry, error) {
	var model models.ReconciliationEntryModel
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

// FindByIDsForTenant finds reconciliation entries by a set of IDs within a
// tenant. IDs that match no entry are silently absent from the result.
func (r *GormReconciliationEntryRepository) FindByIDsForTenant(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]ledger.ReconciliationEntry, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var entryModels []models.ReconciliationEntryModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	entries := make([]ledger.ReconciliationEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = *entryModels[i].ToDomain()
	}
	return entries, nil
}

// FindAllForTenant lists reconciliation entries with filtering and pagination
func (r *GormReconciliationEntryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.ReconciliationEntryFilter) ([]ledger.ReconciliationEntry, int64, error) {
	var entryModels []models.ReconciliationEntryModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ReconciliationEntryModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	// Most recent business documents first
	query = query.Order("shipment_date DESC, created_at DESC")

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]ledger.ReconciliationEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = *entryModels[i].ToDomain()
	}
	return entries, total, nil
}

// Save creates or updates a reconciliation entry
func (r *GormReconciliationEntryRepository) Save(ctx context.Context, entry *ledger.ReconciliationEntry) error {
	model := models.ReconciliationEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking. The domain mutation already
// incremented the version, so the stored row must still carry the previous one.
func (r *GormReconciliationEntryRepository) SaveWithLock(ctx context.Context, entry *ledger.ReconciliationEntry) error {
	model := models.ReconciliationEntryModelFromDomain(entry)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("tenant_id = ? AND id = ? AND version = ?", entry.TenantID, entry.GetID(), entry.Version-1).
		Save(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Summarize computes the signed-amount total and reconciled count over the
// whole filtered set, ignoring pagination
func (r *GormReconciliationEntryRepository) Summarize(ctx context.Context, tenantID uuid.UUID, filter ledger.ReconciliationEntryFilter) (*ledger.ReconciliationSummary, error) {
	var row struct {
		TotalAmount     decimal.Decimal
		ReconciledCount int64
	}

	query := r.db.WithContext(ctx).Model(&models.ReconciliationEntryModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.
		Select(
			"COALESCE(SUM(amount), 0) as total_amount, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) as reconciled_count",
			string(ledger.StatusReconciled),
		).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	return &ledger.ReconciliationSummary{
		TotalAmount:     row.TotalAmount,
		ReconciledCount: row.ReconciledCount,
	}, nil
}

// applyFilter applies filter options to the query
func (r *GormReconciliationEntryRepository) applyFilter(query *gorm.DB, filter ledger.ReconciliationEntryFilter) *gorm.DB {
	if filter.PartnerType != nil {
		query = query.Where("partner_type = ?", string(*filter.PartnerType))
	}

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	if filter.Keyword != "" {
		pattern := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where(
			"LOWER(partner_name) LIKE ? OR LOWER(document_no) LIKE ? OR LOWER(style_info) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if filter.DocumentNo != "" {
		query = query.Where("LOWER(document_no) LIKE ?", "%"+strings.ToLower(filter.DocumentNo)+"%")
	}

	if filter.StyleKeyword != "" {
		query = query.Where("LOWER(style_info) LIKE ?", "%"+strings.ToLower(filter.StyleKeyword)+"%")
	}

	if filter.StatementNo != "" {
		query = query.Where("statement_no = ?", filter.StatementNo)
	}

	if filter.ShipmentFrom != nil {
		query = query.Where("shipment_date >= ?", *filter.ShipmentFrom)
	}

	if filter.ShipmentTo != nil {
		query = query.Where("shipment_date <= ?", *filter.ShipmentTo)
	}

	if filter.ReconciledFrom != nil {
		query = query.Where("reconciled_at >= ?", *filter.ReconciledFrom)
	}

	if filter.ReconciledTo != nil {
		query = query.Where("reconciled_at <= ?", *filter.ReconciledTo)
	}

	return query
}

// Ensure GormReconciliationEntryRepository implements ReconciliationEntryRepository
var _ ledger.ReconciliationEntryRepository = (*GormReconciliationEntryRepository)(nil)
