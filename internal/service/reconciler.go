package service

import (
	"wookey-escrow/internal/core/domain"
	"wookey-escrow/internal/core/ports"
)

// PayoutReconciler keeps the payment ledger consistent with balance
// claims. A claim zeroes a balance; the reconciler then walks the
// seller's payments and marks the ones covered by that claim as paid
// out, re-deriving the membership by scan instead of a stored link.
type PayoutReconciler struct {
	payments ports.PaymentStore
}

// NewPayoutReconciler creates a reconciler over the payment store.
func NewPayoutReconciler(payments ports.PaymentStore) *PayoutReconciler {
	return &PayoutReconciler{payments: payments}
}

// MarkPaidOut visits every payment of the seller in index order and
// marks each one created after the watermark, currently FULFILLED, and
// matching the claimed symbol as PAID_OUT with updated set to the
// watermark. The scan runs to index exhaustion: payments are indexed by
// seller only, not by symbol, so no early termination is sound.
//
// Must run inside the claim call's atomic section; the reconciler does
// no locking of its own.
func (r *PayoutReconciler) MarkPaidOut(seller string, since int64, symbol domain.Symbol) []*domain.Payment {
	var marked []*domain.Payment

	p, ok := r.payments.FirstBySeller(seller)
	for ok {
		if p.Created > since && p.Status == domain.PaymentStatusFulfilled && p.Amount.Symbol.Code == symbol.Code {
			p.Status = domain.PaymentStatusPaidOut
			p.Updated = since
			if err := r.payments.Update(p); err == nil {
				marked = append(marked, p)
			}
		}
		p, ok = r.payments.NextBySeller(p)
	}

	return marked
}
