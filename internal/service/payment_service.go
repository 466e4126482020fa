package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wookey-escrow/internal/adapter/storage/memory"
	"wookey-escrow/internal/core/domain"
	"wookey-escrow/internal/core/ports"
	"wookey-escrow/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService: the payment
// lifecycle state machine over the in-memory ledger.
type PaymentServiceImpl struct {
	ledger        ports.LedgerStore
	transferor    ports.TokenTransferor
	clock         ports.Clock
	journal       ports.JournalService
	escrowAccount string
	log           zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl. escrowAccount is
// the ledger's own account, the source of refund transfers.
func NewPaymentService(
	ledger ports.LedgerStore,
	transferor ports.TokenTransferor,
	clock ports.Clock,
	journal ports.JournalService,
	escrowAccount string,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		ledger:        ledger,
		transferor:    transferor,
		clock:         clock,
		journal:       journal,
		escrowAccount: escrowAccount,
		log:           log,
	}
}

// RegisterPayment creates a payment request in AWAIT_PAYMENT. The caller
// must be the buyer; the seller must be registered; the reconciliation
// key must not collide with any live payment.
func (s *PaymentServiceImpl) RegisterPayment(ctx context.Context, caller string, req ports.RegisterPaymentRequest) (*domain.Payment, error) {
	if err := requireCaller(caller, req.Buyer); err != nil {
		return nil, err
	}
	key, err := domain.ParseReconKey(req.ReconKeyHex)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if req.Quantity.Amount <= 0 {
		return nil, apperror.Validation("payment amount must be positive")
	}

	var out *domain.Payment
	err = s.ledger.Atomic(func() error {
		if !s.ledger.Sellers().Exists(req.Seller) {
			return apperror.ErrStoreNotRegistered(req.Seller)
		}
		if _, err := s.ledger.Payments().GetByReconKey(key); err == nil {
			return apperror.ErrDuplicateReconciliationKey()
		}

		now := s.clock.NowMs()
		p := &domain.Payment{
			ID:            s.ledger.Payments().NextID(),
			SellerAccount: req.Seller,
			BuyerAccount:  req.Buyer,
			ReconKey:      key,
			Amount:        req.Quantity,
			TokenContract: req.TokenContract,
			Status:        domain.PaymentStatusAwaiting,
			Created:       now,
			Updated:       now,
		}
		if err := s.ledger.Payments().Insert(p); err != nil {
			return apperror.InternalError(fmt.Errorf("insert payment: %w", err))
		}

		cp := *p
		out = &cp
		s.recordEvent(ctx, domain.EventPaymentRegistered, p)
		s.log.Info().
			Uint64("payment_id", p.ID).
			Str("seller", p.SellerAccount).
			Str("buyer", p.BuyerAccount).
			Str("quantity", p.Amount.String()).
			Msg("payment registered")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Fulfill transitions a payment to FULFILLED on a confirmed deposit and
// atomically credits the seller's balance for the deposited symbol.
// Fulfillment is exactly-once: a canceled or already-fulfilled payment
// rejects the deposit.
func (s *PaymentServiceImpl) Fulfill(ctx context.Context, key domain.ReconKey, deposited domain.Asset) (*domain.Payment, error) {
	var out *domain.Payment
	err := s.ledger.Atomic(func() error {
		p, err := s.ledger.Payments().GetByReconKey(key)
		if err != nil {
			return apperror.ErrPaymentNotFound()
		}
		switch p.Status {
		case domain.PaymentStatusCanceled:
			return apperror.ErrPaymentAlreadyCanceled()
		case domain.PaymentStatusFulfilled:
			return apperror.ErrPaymentAlreadyFulfilled()
		}

		p.Status = domain.PaymentStatusFulfilled
		p.Updated = s.clock.NowMs()
		if err := s.ledger.Payments().Update(p); err != nil {
			return apperror.InternalError(fmt.Errorf("update payment: %w", err))
		}
		if err := creditBalance(s.ledger.Balances(), p.SellerAccount, deposited, p.TokenContract); err != nil {
			return apperror.InternalError(fmt.Errorf("credit balance: %w", err))
		}

		cp := *p
		out = &cp
		s.recordEvent(ctx, domain.EventPaymentFulfilled, p)
		s.journal.Record(ctx, &domain.LedgerEvent{
			ID:        uuid.New(),
			Kind:      domain.EventBalanceCredited,
			Seller:    p.SellerAccount,
			Quantity:  deposited.String(),
			CreatedAt: time.Now().UTC(),
		})
		s.log.Info().
			Uint64("payment_id", p.ID).
			Str("seller", p.SellerAccount).
			Str("deposited", deposited.String()).
			Msg("payment fulfilled")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CancelPayment sets a payment to CANCELED. Only the seller named on the
// payment may cancel. Cancellation never touches balances; the contract
// does not gate it on the current status either, so canceling a
// fulfilled payment leaves the credited balance in place.
func (s *PaymentServiceImpl) CancelPayment(ctx context.Context, caller, seller, reconKeyHex string) (*domain.Payment, error) {
	if err := requireCaller(caller, seller); err != nil {
		return nil, err
	}
	key, err := domain.ParseReconKey(reconKeyHex)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	var out *domain.Payment
	err = s.ledger.Atomic(func() error {
		p, err := s.ledger.Payments().GetByReconKey(key)
		if err != nil {
			return apperror.ErrPaymentNotFound()
		}
		if p.SellerAccount != seller {
			return apperror.ErrNotPaymentSeller()
		}

		p.Status = domain.PaymentStatusCanceled
		if err := s.ledger.Payments().Update(p); err != nil {
			return apperror.InternalError(fmt.Errorf("update payment: %w", err))
		}

		cp := *p
		out = &cp
		s.recordEvent(ctx, domain.EventPaymentCanceled, p)
		s.log.Info().Uint64("payment_id", p.ID).Str("seller", seller).Msg("payment canceled")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RefundPayment sends the payment amount back to the buyer, marks the
// payment REFUNDED, and debits the seller's balance for the symbol.
// The contract refunds regardless of the payment's current status, so a
// refund of a never-fulfilled payment debits a balance that was never
// credited for it; the debit carries no floor check.
func (s *PaymentServiceImpl) RefundPayment(ctx context.Context, caller, seller, reconKeyHex string) (*domain.Payment, error) {
	if err := requireCaller(caller, seller); err != nil {
		return nil, err
	}
	key, err := domain.ParseReconKey(reconKeyHex)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	var out *domain.Payment
	err = s.ledger.Atomic(func() error {
		if !s.ledger.Sellers().Exists(seller) {
			return apperror.ErrStoreNotRegistered(seller)
		}
		p, err := s.ledger.Payments().GetByReconKey(key)
		if err != nil {
			return apperror.ErrPaymentNotFound()
		}
		// The balance must exist before the outbound transfer is issued:
		// transfers cannot be unwound, and a rejected call must leave no
		// effect at all.
		bal, err := s.ledger.Balances().Get(seller, p.Amount.Symbol.Code)
		if err != nil {
			return apperror.ErrBalanceNotFound()
		}

		if err := s.transferor.Transfer(ctx, p.TokenContract, s.escrowAccount, p.BuyerAccount, p.Amount, ""); err != nil {
			return apperror.ErrTransferFailed(err)
		}

		p.Status = domain.PaymentStatusRefunded
		if err := s.ledger.Payments().Update(p); err != nil {
			return apperror.InternalError(fmt.Errorf("update payment: %w", err))
		}
		bal.Amount -= p.Amount.Amount
		if err := s.ledger.Balances().Update(seller, bal); err != nil {
			return apperror.InternalError(fmt.Errorf("update balance: %w", err))
		}

		cp := *p
		out = &cp
		s.recordEvent(ctx, domain.EventPaymentRefunded, p)
		s.journal.Record(ctx, &domain.LedgerEvent{
			ID:        uuid.New(),
			Kind:      domain.EventBalanceDebited,
			Seller:    seller,
			Quantity:  p.Amount.String(),
			CreatedAt: time.Now().UTC(),
		})
		s.log.Info().
			Uint64("payment_id", p.ID).
			Str("seller", seller).
			Str("buyer", p.BuyerAccount).
			Str("quantity", p.Amount.String()).
			Msg("payment refunded")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByReconKey returns the payment carrying the key.
func (s *PaymentServiceImpl) GetByReconKey(ctx context.Context, reconKeyHex string) (*domain.Payment, error) {
	key, err := domain.ParseReconKey(reconKeyHex)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	var out *domain.Payment
	err = s.ledger.Atomic(func() error {
		p, err := s.ledger.Payments().GetByReconKey(key)
		if err != nil {
			if errors.Is(err, memory.ErrNotFound) {
				return apperror.ErrPaymentNotFound()
			}
			return apperror.InternalError(err)
		}
		cp := *p
		out = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListBySeller returns the seller's payments in insertion order.
func (s *PaymentServiceImpl) ListBySeller(ctx context.Context, seller string) []domain.Payment {
	var out []domain.Payment
	_ = s.ledger.Atomic(func() error {
		p, ok := s.ledger.Payments().FirstBySeller(seller)
		for ok {
			out = append(out, *p)
			p, ok = s.ledger.Payments().NextBySeller(p)
		}
		return nil
	})
	return out
}

// ClearPayments unconditionally drains the payment table regardless of
// state, emptying both secondary indexes. Administrative escape hatch.
func (s *PaymentServiceImpl) ClearPayments(ctx context.Context) (int, error) {
	removed := 0
	err := s.ledger.Atomic(func() error {
		for {
			first, ok := s.ledger.Payments().First()
			if !ok {
				return nil
			}
			if err := s.ledger.Payments().Remove(first.ID); err != nil {
				return apperror.InternalError(fmt.Errorf("drain payments: %w", err))
			}
			removed++
		}
	})
	if err != nil {
		return removed, err
	}
	s.log.Warn().Int("removed", removed).Msg("payment table cleared")
	return removed, nil
}

func (s *PaymentServiceImpl) recordEvent(ctx context.Context, kind domain.LedgerEventKind, p *domain.Payment) {
	id := p.ID
	s.journal.Record(ctx, &domain.LedgerEvent{
		ID:        uuid.New(),
		Kind:      kind,
		Seller:    p.SellerAccount,
		Buyer:     p.BuyerAccount,
		PaymentID: &id,
		ReconKey:  p.ReconKey.String(),
		Quantity:  p.Amount.String(),
		Status:    string(p.Status),
		CreatedAt: time.Now().UTC(),
	})
}

// creditBalance applies a confirmed deposit to the seller's balance for
// the deposited symbol, creating the record on first deposit with the
// payment's token contract reference.
func creditBalance(balances ports.BalanceStore, seller string, deposited domain.Asset, tokenContract string) error {
	bal, err := balances.Get(seller, deposited.Symbol.Code)
	if err != nil {
		return balances.Insert(seller, &domain.Balance{
			Symbol:        deposited.Symbol,
			TokenContract: tokenContract,
			Amount:        deposited.Amount,
		})
	}
	bal.Symbol = deposited.Symbol
	bal.Amount += deposited.Amount
	return balances.Update(seller, bal)
}
