package ledger

import (
	"strings"
	"time"

	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReconciliationStatus represents whether an entry has been matched to a statement
type ReconciliationStatus string

const (
	// StatusUnreconciled is the initial state for entries not yet matched to a statement
	StatusUnreconciled ReconciliationStatus = "UNRECONCILED"
	// StatusReconciled marks entries that have been settled under a statement
	StatusReconciled ReconciliationStatus = "RECONCILED"
)

// String returns the string representation of ReconciliationStatus
func (s ReconciliationStatus) String() string {
	return string(s)
}

// IsValid returns true if the status is valid
func (s ReconciliationStatus) IsValid() bool {
	return s == StatusUnreconciled || s == StatusReconciled
}

// DocumentType represents the kind of upstream business document that
// produced a reconciliation entry
type DocumentType string

const (
	// DocumentTypeShipment represents a customer shipment (obligation created)
	DocumentTypeShipment DocumentType = "SHIPMENT"
	// DocumentTypePurchase represents a material purchase order
	DocumentTypePurchase DocumentType = "PURCHASE"
	// DocumentTypeProcessing represents an outsourced processing order
	DocumentTypeProcessing DocumentType = "PROCESSING"
	// DocumentTypeReturn represents a sales/purchase return (negative amount)
	DocumentTypeReturn DocumentType = "RETURN"
	// DocumentTypeSettlement represents a settlement applied against the statement
	DocumentTypeSettlement DocumentType = "SETTLEMENT"
)

// IsValid returns true if the document type is valid
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeShipment, DocumentTypePurchase, DocumentTypeProcessing,
		DocumentTypeReturn, DocumentTypeSettlement:
		return true
	}
	return false
}

// ReconciliationEntry is one business-document-level row in the settlement
// ledger. Positive amounts create an obligation, negative amounts apply a
// settlement. Entries are grouped under a statement number.
//
// Invariant: ReconciledAt is present if and only if Status is RECONCILED.
type ReconciliationEntry struct {
	shared.TenantAggregateRoot
	StatementNo  string
	PartnerType  PartnerType
	PartnerName  string
	DocumentType DocumentType
	DocumentNo   string
	Amount       decimal.Decimal
	StyleInfo    string
	ShipmentDate time.Time
	Status       ReconciliationStatus
	ReconciledAt *time.Time
}

// NewPendingEntry creates an entry in the unreconciled state
func NewPendingEntry(
	tenantID uuid.UUID,
	statementNo string,
	partnerType PartnerType,
	partnerName string,
	documentType DocumentType,
	documentNo string,
	amount decimal.Decimal,
	shipmentDate time.Time,
) (*ReconciliationEntry, error) {
	entry, err := newEntry(tenantID, statementNo, partnerType, partnerName, documentType, documentNo, amount, shipmentDate)
	if err != nil {
		return nil, err
	}
	entry.Status = StatusUnreconciled
	return entry, nil
}

// NewReconciledEntry creates an entry that is reconciled at creation time,
// for statements closed synchronously when the entry is recorded.
func NewReconciledEntry(
	tenantID uuid.UUID,
	statementNo string,
	partnerType PartnerType,
	partnerName string,
	documentType DocumentType,
	documentNo string,
	amount decimal.Decimal,
	shipmentDate time.Time,
	reconciledAt time.Time,
) (*ReconciliationEntry, error) {
	entry, err := newEntry(tenantID, statementNo, partnerType, partnerName, documentType, documentNo, amount, shipmentDate)
	if err != nil {
		return nil, err
	}
	entry.Status = StatusReconciled
	entry.ReconciledAt = &reconciledAt
	return entry, nil
}

func newEntry(
	tenantID uuid.UUID,
	statementNo string,
	partnerType PartnerType,
	partnerName string,
	documentType DocumentType,
	documentNo string,
	amount decimal.Decimal,
	shipmentDate time.Time,
) (*ReconciliationEntry, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if strings.TrimSpace(statementNo) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Statement number cannot be empty")
	}
	if !partnerType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid partner type")
	}
	if strings.TrimSpace(partnerName) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Partner name cannot be empty")
	}
	if !documentType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid document type")
	}
	if strings.TrimSpace(documentNo) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Document number cannot be empty")
	}

	return &ReconciliationEntry{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		StatementNo:         statementNo,
		PartnerType:         partnerType,
		PartnerName:         partnerName,
		DocumentType:        documentType,
		DocumentNo:          documentNo,
		Amount:              amount.Round(2),
		ShipmentDate:        shipmentDate,
	}, nil
}

// SetStyleInfo attaches free-text style/reference info to the entry
func (e *ReconciliationEntry) SetStyleInfo(info string) {
	e.StyleInfo = info
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// MarkReconciled flips an unreconciled entry to reconciled as of the given date
func (e *ReconciliationEntry) MarkReconciled(reconciledAt time.Time) error {
	if e.Status == StatusReconciled {
		return shared.NewDomainError("INVALID_STATE", "Entry is already reconciled")
	}
	e.Status = StatusReconciled
	e.ReconciledAt = &reconciledAt
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// CancelReconciliation reverses a reconciliation: the status returns to
// unreconciled and the reconciliation date is cleared. Returns false when the
// entry is not currently reconciled; callers treat that as a silent skip, so
// cancelling twice is idempotent.
func (e *ReconciliationEntry) CancelReconciliation() bool {
	if e.Status != StatusReconciled {
		return false
	}
	e.Status = StatusUnreconciled
	e.ReconciledAt = nil
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return true
}

// IsReconciled returns true when the entry is matched to a statement
func (e *ReconciliationEntry) IsReconciled() bool {
	return e.Status == StatusReconciled
}
