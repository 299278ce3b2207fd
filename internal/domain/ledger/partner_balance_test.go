package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartnerBalance(t *testing.T) {
	tenantID := uuid.New()
	partnerID := uuid.New()

	t.Run("creates zero-initialized balance successfully", func(t *testing.T) {
		balance, err := NewPartnerBalance(tenantID, partnerID, "Evergreen Textiles", PartnerTypeCustomer)

		require.NoError(t, err)
		assert.Equal(t, partnerID, balance.PartnerID)
		assert.Equal(t, PartnerTypeCustomer, balance.PartnerType)
		assert.True(t, balance.TotalDue.IsZero())
		assert.True(t, balance.SettledAmount.IsZero())
		assert.True(t, balance.Arrears.IsZero())
		assert.Nil(t, balance.LastDocumentDate)
		assert.Nil(t, balance.LastSettlementDate)
	})

	t.Run("fails with empty partner name", func(t *testing.T) {
		balance, err := NewPartnerBalance(tenantID, partnerID, "", PartnerTypeFactory)

		assert.Error(t, err)
		assert.Nil(t, balance)
	})

	t.Run("fails with invalid partner type", func(t *testing.T) {
		balance, err := NewPartnerBalance(tenantID, partnerID, "Evergreen Textiles", PartnerType("BROKER"))

		assert.Error(t, err)
		assert.Nil(t, balance)
	})

	t.Run("fails with nil partner id", func(t *testing.T) {
		balance, err := NewPartnerBalance(tenantID, uuid.Nil, "Evergreen Textiles", PartnerTypeSupplier)

		assert.Error(t, err)
		assert.Nil(t, balance)
	})
}

func TestPartnerBalance_ArrearsInvariant(t *testing.T) {
	tenantID := uuid.New()

	assertInvariant := func(t *testing.T, b *PartnerBalance) {
		t.Helper()
		expected := b.TotalDue.Sub(b.SettledAmount)
		if expected.IsNegative() {
			expected = decimal.Zero
		}
		assert.True(t, b.Arrears.Equal(expected),
			"arrears %s, due %s, settled %s", b.Arrears, b.TotalDue, b.SettledAmount)
	}

	t.Run("holds across obligations and settlements", func(t *testing.T) {
		balance, err := NewPartnerBalance(tenantID, uuid.New(), "Evergreen Textiles", PartnerTypeCustomer)
		require.NoError(t, err)

		balance.AddObligation(decimal.NewFromFloat(1200.50), time.Now())
		assertInvariant(t, balance)
		assert.True(t, balance.Arrears.Equal(decimal.NewFromFloat(1200.50)))

		require.NoError(t, balance.ApplySettlement(decimal.NewFromInt(500), time.Now()))
		assertInvariant(t, balance)
		assert.True(t, balance.Arrears.Equal(decimal.NewFromFloat(700.50)))

		balance.AddObligation(decimal.NewFromFloat(-200.50), time.Now())
		assertInvariant(t, balance)
		assert.True(t, balance.Arrears.Equal(decimal.NewFromInt(500)))
	})

	t.Run("overpayment floors arrears at zero", func(t *testing.T) {
		balance, err := NewPartnerBalance(tenantID, uuid.New(), "Hillside Mills", PartnerTypeSupplier)
		require.NoError(t, err)

		balance.AddObligation(decimal.NewFromInt(300), time.Now())
		require.NoError(t, balance.ApplySettlement(decimal.NewFromInt(450), time.Now()))

		assert.True(t, balance.Arrears.IsZero())
		assert.True(t, balance.TotalDue.Equal(decimal.NewFromInt(300)))
		assert.True(t, balance.SettledAmount.Equal(decimal.NewFromInt(450)))
	})

	t.Run("settlement without prior obligation floors at zero", func(t *testing.T) {
		balance, err := NewPartnerBalance(tenantID, uuid.New(), "Hillside Mills", PartnerTypeFactory)
		require.NoError(t, err)

		require.NoError(t, balance.ApplySettlement(decimal.NewFromInt(100), time.Now()))

		assert.True(t, balance.Arrears.IsZero())
	})
}

func TestPartnerBalance_ApplySettlement(t *testing.T) {
	tenantID := uuid.New()

	t.Run("rejects zero amount", func(t *testing.T) {
		balance, err := NewPartnerBalance(tenantID, uuid.New(), "Evergreen Textiles", PartnerTypeCustomer)
		require.NoError(t, err)

		err = balance.ApplySettlement(decimal.Zero, time.Now())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		balance, err := NewPartnerBalance(tenantID, uuid.New(), "Evergreen Textiles", PartnerTypeCustomer)
		require.NoError(t, err)

		err = balance.ApplySettlement(decimal.NewFromInt(-10), time.Now())

		assert.Error(t, err)
	})

	t.Run("keeps a backdated settlement date", func(t *testing.T) {
		balance, err := NewPartnerBalance(tenantID, uuid.New(), "Evergreen Textiles", PartnerTypeCustomer)
		require.NoError(t, err)
		settledOn := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

		require.NoError(t, balance.ApplySettlement(decimal.NewFromInt(100), settledOn))

		require.NotNil(t, balance.LastSettlementDate)
		assert.True(t, balance.LastSettlementDate.Equal(settledOn))
	})
}

func TestPartnerType_IsPayable(t *testing.T) {
	assert.False(t, PartnerTypeCustomer.IsPayable())
	assert.True(t, PartnerTypeFactory.IsPayable())
	assert.True(t, PartnerTypeSupplier.IsPayable())
}
