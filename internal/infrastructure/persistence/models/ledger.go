package models

import (
	"time"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashierAccountModel is the persistence model for the CashierAccount aggregate root.
type CashierAccountModel struct {
	TenantAggregateModel
	Name             string          `gorm:"type:varchar(100);not null"`
	Class            string          `gorm:"type:varchar(20);not null;index"`
	AccountNumber    string          `gorm:"type:varchar(50)"`
	BankName         string          `gorm:"type:varchar(100)"`
	InitialBalance   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CurrentBalance   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TransactionCount int64           `gorm:"not null;default:0"`
	Remark           string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CashierAccountModel) TableName() string {
	return "cashier_accounts"
}

// ToDomain converts the persistence model to a domain CashierAccount aggregate.
func (m *CashierAccountModel) ToDomain() *ledger.CashierAccount {
	account := &ledger.CashierAccount{
		Name:             m.Name,
		Class:            ledger.AccountClass(m.Class),
		AccountNumber:    m.AccountNumber,
		BankName:         m.BankName,
		InitialBalance:   m.InitialBalance,
		CurrentBalance:   m.CurrentBalance,
		TransactionCount: m.TransactionCount,
		Remark:           m.Remark,
	}
	m.PopulateTenantAggregateRoot(&account.TenantAggregateRoot)
	return account
}

// FromDomain populates the persistence model from a domain CashierAccount aggregate.
func (m *CashierAccountModel) FromDomain(a *ledger.CashierAccount) {
	m.FromDomainTenantAggregateRoot(a.TenantAggregateRoot)
	m.Name = a.Name
	m.Class = string(a.Class)
	m.AccountNumber = a.AccountNumber
	m.BankName = a.BankName
	m.InitialBalance = a.InitialBalance
	m.CurrentBalance = a.CurrentBalance
	m.TransactionCount = a.TransactionCount
	m.Remark = a.Remark
}

// CashierAccountModelFromDomain creates a new persistence model from a domain CashierAccount.
func CashierAccountModelFromDomain(a *ledger.CashierAccount) *CashierAccountModel {
	m := &CashierAccountModel{}
	m.FromDomain(a)
	return m
}

// PartnerBalanceModel is the persistence model for the PartnerBalance aggregate root.
// One row exists per (tenant, partner type, partner).
type PartnerBalanceModel struct {
	TenantAggregateModel
	PartnerID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_partner_balance_partner,priority:3"`
	PartnerName        string          `gorm:"type:varchar(100);not null"`
	PartnerType        string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_partner_balance_partner,priority:2"`
	TotalDue           decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	SettledAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Arrears            decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	LastDocumentDate   *time.Time
	LastSettlementDate *time.Time
}

// TableName returns the table name for GORM
func (PartnerBalanceModel) TableName() string {
	return "partner_balances"
}

// ToDomain converts the persistence model to a domain PartnerBalance aggregate.
func (m *PartnerBalanceModel) ToDomain() *ledger.PartnerBalance {
	balance := &ledger.PartnerBalance{
		PartnerID:          m.PartnerID,
		PartnerName:        m.PartnerName,
		PartnerType:        ledger.PartnerType(m.PartnerType),
		TotalDue:           m.TotalDue,
		SettledAmount:      m.SettledAmount,
		Arrears:            m.Arrears,
		LastDocumentDate:   m.LastDocumentDate,
		LastSettlementDate: m.LastSettlementDate,
	}
	m.PopulateTenantAggregateRoot(&balance.TenantAggregateRoot)
	return balance
}

// FromDomain populates the persistence model from a domain PartnerBalance aggregate.
func (m *PartnerBalanceModel) FromDomain(b *ledger.PartnerBalance) {
	m.FromDomainTenantAggregateRoot(b.TenantAggregateRoot)
	m.PartnerID = b.PartnerID
	m.PartnerName = b.PartnerName
	m.PartnerType = string(b.PartnerType)
	m.TotalDue = b.TotalDue
	m.SettledAmount = b.SettledAmount
	m.Arrears = b.Arrears
	m.LastDocumentDate = b.LastDocumentDate
	m.LastSettlementDate = b.LastSettlementDate
}

// PartnerBalanceModelFromDomain creates a new persistence model from a domain PartnerBalance.
func PartnerBalanceModelFromDomain(b *ledger.PartnerBalance) *PartnerBalanceModel {
	m := &PartnerBalanceModel{}
	m.FromDomain(b)
	return m
}

// ReconciliationEntryModel is the persistence model for the ReconciliationEntry aggregate root.
type ReconciliationEntryModel struct {
	TenantAggregateModel
	StatementNo  string          `gorm:"type:varchar(50);not null;index"`
	PartnerType  string          `gorm:"type:varchar(20);not null;index"`
	PartnerName  string          `gorm:"type:varchar(100);not null"`
	DocumentType string          `gorm:"type:varchar(20);not null"`
	DocumentNo   string          `gorm:"type:varchar(50);not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StyleInfo    string          `gorm:"type:varchar(200)"`
	ShipmentDate time.Time       `gorm:"not null;index"`
	Status       string          `gorm:"type:varchar(20);not null;index"`
	ReconciledAt *time.Time
}

// TableName returns the table name for GORM
func (ReconciliationEntryModel) TableName() string {
	return "reconciliation_entries"
}

// ToDomain converts the persistence model to a domain ReconciliationEntry aggregate.
func (m *ReconciliationEntryModel) ToDomain() *ledger.ReconciliationEntry {
	entry := &ledger.ReconciliationEntry{
		StatementNo:  m.StatementNo,
		PartnerType:  ledger.PartnerType(m.PartnerType),
		PartnerName:  m.PartnerName,
		DocumentType: ledger.DocumentType(m.DocumentType),
		DocumentNo:   m.DocumentNo,
		Amount:       m.Amount,
		StyleInfo:    m.StyleInfo,
		ShipmentDate: m.ShipmentDate,
		Status:       ledger.ReconciliationStatus(m.Status),
		ReconciledAt: m.ReconciledAt,
	}
	m.PopulateTenantAggregateRoot(&entry.TenantAggregateRoot)
	return entry
}

// FromDomain populates the persistence model from a domain ReconciliationEntry aggregate.
func (m *ReconciliationEntryModel) FromDomain(e *ledger.ReconciliationEntry) {
	m.FromDomainTenantAggregateRoot(e.TenantAggregateRoot)
	m.StatementNo = e.StatementNo
	m.PartnerType = string(e.PartnerType)
	m.PartnerName = e.PartnerName
	m.DocumentType = string(e.DocumentType)
	m.DocumentNo = e.DocumentNo
	m.Amount = e.Amount
	m.StyleInfo = e.StyleInfo
	m.ShipmentDate = e.ShipmentDate
	m.Status = string(e.Status)
	m.ReconciledAt = e.ReconciledAt
}

// ReconciliationEntryModelFromDomain creates a new persistence model from a domain ReconciliationEntry.
func ReconciliationEntryModelFromDomain(e *ledger.ReconciliationEntry) *ReconciliationEntryModel {
	m := &ReconciliationEntryModel{}
	m.FromDomain(e)
	return m
}
