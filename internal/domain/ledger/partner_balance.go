package ledger

import (
	"strings"
	"time"

	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartnerType represents the class of counterparty a balance belongs to
type PartnerType string

const (
	// PartnerTypeCustomer represents a customer with a receivable balance
	PartnerTypeCustomer PartnerType = "CUSTOMER"
	// PartnerTypeFactory represents an outsourced production factory with a payable balance
	PartnerTypeFactory PartnerType = "FACTORY"
	// PartnerTypeSupplier represents a material supplier with a payable balance
	PartnerTypeSupplier PartnerType = "SUPPLIER"
)

// String returns the string representation of PartnerType
func (t PartnerType) String() string {
	return string(t)
}

// IsValid returns true if the partner type is valid
func (t PartnerType) IsValid() bool {
	switch t {
	case PartnerTypeCustomer, PartnerTypeFactory, PartnerTypeSupplier:
		return true
	}
	return false
}

// IsPayable returns true for partner classes the business owes money to
func (t PartnerType) IsPayable() bool {
	return t == PartnerTypeFactory || t == PartnerTypeSupplier
}

// PartnerBalance tracks the running payable/receivable position for one
// counterparty. TotalDue accumulates obligations created by upstream business
// documents; SettledAmount accumulates payments/receipts. Arrears is always
// recomputed from those two fields, never mutated directly, so the invariant
// arrears == max(0, totalDue - settled) holds at every observation point.
type PartnerBalance struct {
	shared.TenantAggregateRoot
	PartnerID          uuid.UUID
	PartnerName        string
	PartnerType        PartnerType
	TotalDue           decimal.Decimal
	SettledAmount      decimal.Decimal
	Arrears            decimal.Decimal
	LastDocumentDate   *time.Time
	LastSettlementDate *time.Time
}

// NewPartnerBalance creates a zero-initialized balance record for a partner
func NewPartnerBalance(tenantID, partnerID uuid.UUID, partnerName string, partnerType PartnerType) (*PartnerBalance, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if partnerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Partner ID cannot be empty")
	}
	if strings.TrimSpace(partnerName) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Partner name cannot be empty")
	}
	if !partnerType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid partner type")
	}

	return &PartnerBalance{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PartnerID:           partnerID,
		PartnerName:         partnerName,
		PartnerType:         partnerType,
		TotalDue:            decimal.Zero,
		SettledAmount:       decimal.Zero,
		Arrears:             decimal.Zero,
	}, nil
}

// AddObligation records a new receivable/payable created by an upstream
// business document. The delta may be negative (e.g. a return reduces the
// amount due). Arrears is recomputed.
func (b *PartnerBalance) AddObligation(delta decimal.Decimal, documentDate time.Time) {
	b.TotalDue = b.TotalDue.Add(delta).Round(2)
	b.LastDocumentDate = &documentDate
	b.recompute()
}

// ApplySettlement records a payment/receipt against the partner's balance.
// The settlement date is caller-supplied so backdated entries keep their
// business date.
func (b *PartnerBalance) ApplySettlement(amount decimal.Decimal, settledOn time.Time) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("VALIDATION_ERROR", "Settlement amount must be positive")
	}
	b.SettledAmount = b.SettledAmount.Add(amount).Round(2)
	b.LastSettlementDate = &settledOn
	b.recompute()
	return nil
}

// recompute derives arrears from the due and settled totals, floored at zero
func (b *PartnerBalance) recompute() {
	arrears := b.TotalDue.Sub(b.SettledAmount)
	if arrears.IsNegative() {
		arrears = decimal.Zero
	}
	b.Arrears = arrears
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}
