package service

import (
	"context"
	"fmt"
	"time"

	"wookey-escrow/internal/core/domain"
	"wookey-escrow/internal/core/ports"
	"wookey-escrow/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BalanceServiceImpl implements ports.BalanceService: per-seller accrued
// balances and the withdrawal path.
type BalanceServiceImpl struct {
	ledger        ports.LedgerStore
	transferor    ports.TokenTransferor
	clock         ports.Clock
	journal       ports.JournalService
	reconciler    *PayoutReconciler
	escrowAccount string
	log           zerolog.Logger
}

// NewBalanceService creates a new BalanceServiceImpl.
func NewBalanceService(
	ledger ports.LedgerStore,
	transferor ports.TokenTransferor,
	clock ports.Clock,
	journal ports.JournalService,
	escrowAccount string,
	log zerolog.Logger,
) *BalanceServiceImpl {
	return &BalanceServiceImpl{
		ledger:        ledger,
		transferor:    transferor,
		clock:         clock,
		journal:       journal,
		reconciler:    NewPayoutReconciler(ledger.Payments()),
		escrowAccount: escrowAccount,
		log:           log,
	}
}

// Claim pays out the seller's full accrued balance for one symbol:
// transfer, zero the amount, reconcile the payment ledger against the
// previous claim watermark, advance lastClaim. A balance at or below
// zero makes the claim a silent no-op, not an error.
func (s *BalanceServiceImpl) Claim(ctx context.Context, caller, seller, symbolCode string) (*ports.ClaimResult, error) {
	if err := requireCaller(caller, seller); err != nil {
		return nil, err
	}

	result := &ports.ClaimResult{}
	err := s.ledger.Atomic(func() error {
		if !s.ledger.Sellers().Exists(seller) {
			return apperror.ErrStoreNotRegistered(seller)
		}
		bal, err := s.ledger.Balances().Get(seller, symbolCode)
		if err != nil {
			return apperror.ErrBalanceNotFound()
		}
		if bal.Amount <= 0 {
			result.Skipped = true
			bc := *bal
			result.Balance = &bc
			return nil
		}

		accrued := bal.Accrued()
		memo := fmt.Sprintf("%s payout", bal.Symbol.Code)
		if err := s.transferor.Transfer(ctx, bal.TokenContract, s.escrowAccount, seller, accrued, memo); err != nil {
			return apperror.ErrTransferFailed(err)
		}

		bal.Amount = 0
		now := s.clock.NowMs()
		marked := s.reconciler.MarkPaidOut(seller, bal.LastClaim, bal.Symbol)
		bal.LastClaim = now
		if err := s.ledger.Balances().Update(seller, bal); err != nil {
			return apperror.InternalError(fmt.Errorf("update balance: %w", err))
		}

		for _, p := range marked {
			id := p.ID
			s.journal.Record(ctx, &domain.LedgerEvent{
				ID:        uuid.New(),
				Kind:      domain.EventPaymentPaidOut,
				Seller:    seller,
				PaymentID: &id,
				ReconKey:  p.ReconKey.String(),
				Status:    string(p.Status),
				CreatedAt: time.Now().UTC(),
			})
		}
		s.journal.Record(ctx, &domain.LedgerEvent{
			ID:        uuid.New(),
			Kind:      domain.EventBalanceClaimed,
			Seller:    seller,
			Quantity:  accrued.String(),
			CreatedAt: time.Now().UTC(),
		})

		bc := *bal
		result.Balance = &bc
		result.Transferred = accrued
		result.PaidOut = len(marked)

		s.log.Info().
			Str("seller", seller).
			Str("claimed", accrued.String()).
			Int("paid_out", len(marked)).
			Msg("balance claimed")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetBalance returns the seller's balance for one symbol.
func (s *BalanceServiceImpl) GetBalance(ctx context.Context, seller, symbolCode string) (*domain.Balance, error) {
	var out *domain.Balance
	err := s.ledger.Atomic(func() error {
		bal, err := s.ledger.Balances().Get(seller, symbolCode)
		if err != nil {
			return apperror.ErrBalanceNotFound()
		}
		bc := *bal
		out = &bc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListBalances returns the seller's balances ordered by symbol.
func (s *BalanceServiceImpl) ListBalances(ctx context.Context, seller string) []domain.Balance {
	var out []domain.Balance
	_ = s.ledger.Atomic(func() error {
		for _, b := range s.ledger.Balances().List(seller) {
			out = append(out, *b)
		}
		return nil
	})
	return out
}

// ClearBalances drains one seller's balance partition. Administrative.
func (s *BalanceServiceImpl) ClearBalances(ctx context.Context, seller string) (int, error) {
	removed := 0
	err := s.ledger.Atomic(func() error {
		for {
			first, ok := s.ledger.Balances().First(seller)
			if !ok {
				return nil
			}
			if err := s.ledger.Balances().Remove(seller, first.Symbol.Code); err != nil {
				return apperror.InternalError(fmt.Errorf("drain balances: %w", err))
			}
			removed++
		}
	})
	if err != nil {
		return removed, err
	}
	s.log.Warn().Str("seller", seller).Int("removed", removed).Msg("balance partition cleared")
	return removed, nil
}
