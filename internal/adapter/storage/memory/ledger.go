package memory

import (
	"sync"

	"wookey-escrow/internal/core/ports"
)

// Ledger is the whole in-memory contract state: the seller registry, the
// payment table, and the balance partitions. The original contract runs
// inside a deterministic single-threaded executor; here one mutex stands
// in for that host. Every externally reachable mutating call runs
// start-to-finish under Atomic, and the tables themselves are
// unsynchronized.
type Ledger struct {
	mu       sync.Mutex
	sellers  *SellerTable
	payments *PaymentTable
	balances *BalanceTable
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		sellers:  NewSellerTable(),
		payments: NewPaymentTable(),
		balances: NewBalanceTable(),
	}
}

// Atomic runs fn under the ledger's call mutex. fn must validate before
// it mutates: an error return means the call was rejected and no effect
// of it is observable.
func (l *Ledger) Atomic(fn func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn()
}

// Sellers returns the registry table. Callers outside Atomic see a
// snapshot consistent with all prior completed calls.
func (l *Ledger) Sellers() ports.SellerStore { return l.sellers }

// Payments returns the payment table.
func (l *Ledger) Payments() ports.PaymentStore { return l.payments }

// Balances returns the balance partitions.
func (l *Ledger) Balances() ports.BalanceStore { return l.balances }

var _ ports.LedgerStore = (*Ledger)(nil)
