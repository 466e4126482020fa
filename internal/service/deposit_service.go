package service

import (
	"context"
	"time"

	"wookey-escrow/internal/core/domain"
	"wookey-escrow/internal/core/ports"
	"wookey-escrow/pkg/apperror"

	"github.com/rs/zerolog"
)

// How long a processed transfer id stays in the dedupe store. Relays
// retry within minutes; a day of memory is plenty.
const dedupeTTL = 24 * time.Hour

// DepositServiceImpl implements ports.DepositService: the intake for
// confirmed inbound transfers reported by the chain relay.
type DepositServiceImpl struct {
	payments      ports.PaymentService
	dedupe        ports.DedupeStore
	escrowAccount string
	sentinelMemo  string
	log           zerolog.Logger
}

// NewDepositService creates a new DepositServiceImpl. sentinelMemo is
// the memo value that bypasses processing entirely (used for deliberate
// self-funding transfers).
func NewDepositService(
	payments ports.PaymentService,
	dedupe ports.DedupeStore,
	escrowAccount string,
	sentinelMemo string,
	log zerolog.Logger,
) *DepositServiceImpl {
	return &DepositServiceImpl{
		payments:      payments,
		dedupe:        dedupe,
		escrowAccount: escrowAccount,
		sentinelMemo:  sentinelMemo,
		log:           log,
	}
}

// OnDeposit handles one confirmed transfer notice. Self-transfers, the
// sentinel memo, and redelivered transfer ids are skipped without
// touching the ledger; anything else must carry a hex reconciliation
// key in the memo and fulfills the matching payment.
func (s *DepositServiceImpl) OnDeposit(ctx context.Context, notice ports.DepositNotice) (*ports.DepositResult, error) {
	if notice.From == s.escrowAccount {
		s.log.Debug().Str("transfer_id", notice.TransferID).Msg("ignoring self transfer")
		return &ports.DepositResult{Skipped: true, SkipReason: "self transfer"}, nil
	}
	if notice.Memo == s.sentinelMemo {
		s.log.Debug().Str("transfer_id", notice.TransferID).Msg("ignoring sentinel memo transfer")
		return &ports.DepositResult{Skipped: true, SkipReason: "sentinel memo"}, nil
	}

	if s.dedupe != nil && notice.TransferID != "" {
		isNew, err := s.dedupe.CheckAndSet(ctx, notice.TransferID, dedupeTTL)
		if err != nil {
			s.log.Warn().Err(err).Str("transfer_id", notice.TransferID).
				Msg("dedupe store error, processing anyway (degraded mode)")
		} else if !isNew {
			s.log.Info().Str("transfer_id", notice.TransferID).Msg("duplicate deposit delivery dropped")
			return &ports.DepositResult{Skipped: true, SkipReason: "duplicate delivery"}, nil
		}
	}

	key, err := domain.ParseReconKey(notice.Memo)
	if err != nil {
		return nil, apperror.Validation("deposit memo is not a reconciliation key: " + err.Error())
	}

	payment, err := s.payments.Fulfill(ctx, key, notice.Quantity)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transfer_id", notice.TransferID).
		Str("from", notice.From).
		Uint64("payment_id", payment.ID).
		Str("quantity", notice.Quantity.String()).
		Msg("deposit applied")
	return &ports.DepositResult{Payment: payment}, nil
}
