package persistence

import (
	"github.com/garment-erp/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables backing the settlement ledger
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CashierAccountModel{},
		&models.PartnerBalanceModel{},
		&models.ReconciliationEntryModel{},
	)
}
