package ledger

import (
	"context"
	"fmt"

	"github.com/garment-erp/backend/internal/domain/ledger"
	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentService orchestrates the composite settlement mutation: applying a
// settlement to a partner balance and adjusting a cashier account in one
// all-or-nothing unit. Both writes run inside a single TransactionScope so a
// failure in either leaves both aggregates untouched.
type PaymentService struct {
	scope            TransactionScope
	idempotencyStore shared.IdempotencyStore
	idempotencyCfg   shared.IdempotencyConfig
}

// NewPaymentService creates a new PaymentService. The idempotency store may
// be nil, in which case duplicate submission detection is disabled.
func NewPaymentService(
	scope TransactionScope,
	idempotencyStore shared.IdempotencyStore,
	idempotencyCfg shared.IdempotencyConfig,
) *PaymentService {
	return &PaymentService{
		scope:            scope,
		idempotencyStore: idempotencyStore,
		idempotencyCfg:   idempotencyCfg,
	}
}

// RecordPayment records a settlement against a partner and a cashier account.
// Incoming payments (customer receipts) credit the cashier account and
// auto-create the partner balance when absent. Outgoing payments
// (factory/supplier) debit the cashier account and require the partner
// balance to pre-exist.
func (s *PaymentService) RecordPayment(ctx context.Context, tenantID uuid.UUID, req RecordPaymentRequest) (*PaymentResult, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment amount must be positive")
	}

	direction := PaymentDirection(req.Direction)
	if !direction.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid payment direction")
	}

	partnerType := ledger.PartnerType(req.PartnerType)
	if !partnerType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid partner type")
	}
	if direction == DirectionIncoming && partnerType != ledger.PartnerTypeCustomer {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Incoming payments must come from a customer")
	}
	if direction == DirectionOutgoing && !partnerType.IsPayable() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Outgoing payments must go to a factory or supplier")
	}

	if err := s.checkDuplicate(ctx, tenantID, req.Reference); err != nil {
		return nil, err
	}

	var result *PaymentResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		account, err := repos.CashierAccounts().FindByIDForTenant(ctx, tenantID, req.CashierAccountID)
		if err != nil {
			return fmt.Errorf("failed to get cashier account: %w", err)
		}
		if account == nil {
			return shared.NewDomainError("ACCOUNT_NOT_FOUND", "Cashier account not found")
		}

		balance, err := repos.PartnerBalances().FindByPartnerForTenant(ctx, tenantID, partnerType, req.PartnerID)
		if err != nil {
			return fmt.Errorf("failed to get partner balance: %w", err)
		}

		newPartner := false
		if balance == nil {
			if direction == DirectionOutgoing {
				return shared.NewDomainError("PARTNER_NOT_FOUND", "Partner balance not found")
			}
			balance, err = ledger.NewPartnerBalance(tenantID, req.PartnerID, req.PartnerName, partnerType)
			if err != nil {
				return err
			}
			newPartner = true
		}

		if err := balance.ApplySettlement(req.Amount, req.SettledOn.Time); err != nil {
			return err
		}

		delta := req.Amount
		if direction == DirectionOutgoing {
			delta = delta.Neg()
		}
		account.Adjust(delta)

		if newPartner {
			if err := repos.PartnerBalances().Save(ctx, balance); err != nil {
				return fmt.Errorf("failed to save partner balance: %w", err)
			}
		} else {
			if err := repos.PartnerBalances().SaveWithLock(ctx, balance); err != nil {
				return fmt.Errorf("failed to save partner balance: %w", err)
			}
		}
		if err := repos.CashierAccounts().SaveWithLock(ctx, account); err != nil {
			return fmt.Errorf("failed to save cashier account: %w", err)
		}

		result = &PaymentResult{
			PartnerBalance: ToPartnerBalanceResponse(balance),
			CashierAccount: ToCashierAccountResponse(account),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.markProcessed(ctx, tenantID, req.Reference)
	return result, nil
}

// checkDuplicate rejects a submission whose client reference was already
// processed within the idempotency TTL.
func (s *PaymentService) checkDuplicate(ctx context.Context, tenantID uuid.UUID, reference string) error {
	if s.idempotencyStore == nil || !s.idempotencyCfg.Enabled || reference == "" {
		return nil
	}

	processed, err := s.idempotencyStore.IsProcessed(ctx, idempotencyKey(tenantID, reference))
	if err != nil {
		return fmt.Errorf("failed to check idempotency: %w", err)
	}
	if processed {
		return shared.NewDomainError("DUPLICATE_SUBMISSION", "A payment with this reference was already recorded")
	}
	return nil
}

// markProcessed records the reference after a successful payment. Failures
// here do not fail the payment; the worst case is a duplicate check miss.
func (s *PaymentService) markProcessed(ctx context.Context, tenantID uuid.UUID, reference string) {
	if s.idempotencyStore == nil || !s.idempotencyCfg.Enabled || reference == "" {
		return
	}
	_, _ = s.idempotencyStore.MarkProcessed(ctx, idempotencyKey(tenantID, reference), s.idempotencyCfg.TTL)
}

func idempotencyKey(tenantID uuid.UUID, reference string) string {
	return fmt.Sprintf("payment:%s:%s", tenantID, reference)
}
