package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPendingEntry(t *testing.T) {
	tenantID := uuid.New()
	shipped := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	t.Run("creates unreconciled entry successfully", func(t *testing.T) {
		entry, err := NewPendingEntry(tenantID, "ST-202405-001", PartnerTypeCustomer, "Evergreen Textiles",
			DocumentTypeShipment, "SH-20240520-003", decimal.NewFromFloat(12800.50), shipped)

		require.NoError(t, err)
		assert.Equal(t, StatusUnreconciled, entry.Status)
		assert.Nil(t, entry.ReconciledAt)
		assert.False(t, entry.IsReconciled())
		assert.True(t, entry.Amount.Equal(decimal.NewFromFloat(12800.50)))
	})

	t.Run("accepts negative amounts for returns", func(t *testing.T) {
		entry, err := NewPendingEntry(tenantID, "ST-202405-001", PartnerTypeCustomer, "Evergreen Textiles",
			DocumentTypeReturn, "RT-20240522-001", decimal.NewFromFloat(-300.25), shipped)

		require.NoError(t, err)
		assert.True(t, entry.Amount.IsNegative())
	})

	t.Run("fails with empty statement number", func(t *testing.T) {
		entry, err := NewPendingEntry(tenantID, " ", PartnerTypeCustomer, "Evergreen Textiles",
			DocumentTypeShipment, "SH-20240520-003", decimal.NewFromInt(100), shipped)

		assert.Error(t, err)
		assert.Nil(t, entry)
	})

	t.Run("fails with invalid document type", func(t *testing.T) {
		entry, err := NewPendingEntry(tenantID, "ST-202405-001", PartnerTypeCustomer, "Evergreen Textiles",
			DocumentType("INVOICE"), "SH-20240520-003", decimal.NewFromInt(100), shipped)

		assert.Error(t, err)
		assert.Nil(t, entry)
	})

	t.Run("fails with empty document number", func(t *testing.T) {
		entry, err := NewPendingEntry(tenantID, "ST-202405-001", PartnerTypeCustomer, "Evergreen Textiles",
			DocumentTypeShipment, "", decimal.NewFromInt(100), shipped)

		assert.Error(t, err)
		assert.Nil(t, entry)
	})
}

func TestNewReconciledEntry(t *testing.T) {
	tenantID := uuid.New()
	shipped := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	reconciled := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	entry, err := NewReconciledEntry(tenantID, "ST-202405-001", PartnerTypeFactory, "Hillside Mills",
		DocumentTypeProcessing, "PR-20240518-002", decimal.NewFromInt(5000), shipped, reconciled)

	require.NoError(t, err)
	assert.Equal(t, StatusReconciled, entry.Status)
	require.NotNil(t, entry.ReconciledAt)
	assert.True(t, entry.ReconciledAt.Equal(reconciled))
	assert.True(t, entry.IsReconciled())
}

func TestReconciliationEntry_MarkReconciled(t *testing.T) {
	tenantID := uuid.New()
	shipped := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	t.Run("marks pending entry reconciled", func(t *testing.T) {
		entry, err := NewPendingEntry(tenantID, "ST-202405-001", PartnerTypeCustomer, "Evergreen Textiles",
			DocumentTypeShipment, "SH-20240520-003", decimal.NewFromInt(100), shipped)
		require.NoError(t, err)
		reconciled := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

		err = entry.MarkReconciled(reconciled)

		require.NoError(t, err)
		assert.Equal(t, StatusReconciled, entry.Status)
		require.NotNil(t, entry.ReconciledAt)
		assert.True(t, entry.ReconciledAt.Equal(reconciled))
	})

	t.Run("fails when already reconciled", func(t *testing.T) {
		entry, err := NewReconciledEntry(tenantID, "ST-202405-001", PartnerTypeCustomer, "Evergreen Textiles",
			DocumentTypeShipment, "SH-20240520-003", decimal.NewFromInt(100), shipped, time.Now())
		require.NoError(t, err)

		err = entry.MarkReconciled(time.Now())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already reconciled")
	})
}

func TestReconciliationEntry_CancelReconciliation(t *testing.T) {
	tenantID := uuid.New()
	shipped := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	t.Run("cancels a reconciled entry", func(t *testing.T) {
		entry, err := NewReconciledEntry(tenantID, "ST-202405-001", PartnerTypeCustomer, "Evergreen Textiles",
			DocumentTypeShipment, "SH-20240520-003", decimal.NewFromInt(100), shipped, time.Now())
		require.NoError(t, err)

		changed := entry.CancelReconciliation()

		assert.True(t, changed)
		assert.Equal(t, StatusUnreconciled, entry.Status)
		assert.Nil(t, entry.ReconciledAt)
	})

	t.Run("skips an unreconciled entry", func(t *testing.T) {
		entry, err := NewPendingEntry(tenantID, "ST-202405-001", PartnerTypeCustomer, "Evergreen Textiles",
			DocumentTypeShipment, "SH-20240520-003", decimal.NewFromInt(100), shipped)
		require.NoError(t, err)

		changed := entry.CancelReconciliation()

		assert.False(t, changed)
		assert.Equal(t, StatusUnreconciled, entry.Status)
	})

	t.Run("cancelling twice is a no-op the second time", func(t *testing.T) {
		entry, err := NewReconciledEntry(tenantID, "ST-202405-001", PartnerTypeCustomer, "Evergreen Textiles",
			DocumentTypeShipment, "SH-20240520-003", decimal.NewFromInt(100), shipped, time.Now())
		require.NoError(t, err)

		assert.True(t, entry.CancelReconciliation())
		assert.False(t, entry.CancelReconciliation())
		assert.Equal(t, StatusUnreconciled, entry.Status)
		assert.Nil(t, entry.ReconciledAt)
	})
}

func TestReconciliationEntry_DateStatusInvariant(t *testing.T) {
	tenantID := uuid.New()
	shipped := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	entry, err := NewPendingEntry(tenantID, "ST-202405-001", PartnerTypeCustomer, "Evergreen Textiles",
		DocumentTypeShipment, "SH-20240520-003", decimal.NewFromInt(100), shipped)
	require.NoError(t, err)

	checkInvariant := func() {
		if entry.Status == StatusReconciled {
			assert.NotNil(t, entry.ReconciledAt)
		} else {
			assert.Nil(t, entry.ReconciledAt)
		}
	}

	checkInvariant()
	require.NoError(t, entry.MarkReconciled(time.Now()))
	checkInvariant()
	entry.CancelReconciliation()
	checkInvariant()
	require.NoError(t, entry.MarkReconciled(time.Now()))
	checkInvariant()
}
