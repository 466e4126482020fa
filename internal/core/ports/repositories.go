package ports

import (
	"context"

	"wookey-escrow/internal/core/domain"

	"github.com/google/uuid"
)

// SellerStore is the registry table: one record per registered seller.
type SellerStore interface {
	Insert(s *domain.Seller) error
	Get(account string) (*domain.Seller, error)
	Remove(account string) error
	Exists(account string) bool
	First() (*domain.Seller, bool)
	List() []*domain.Seller
	Len() int
}

// PaymentStore is the payment table with its two secondary indexes:
// a unique index on reconciliation key and a non-unique, insertion-ordered
// index on seller account.
type PaymentStore interface {
	// NextID returns the next sequence number. Sequence numbers are
	// monotonic and never reused, even across bulk clears.
	NextID() uint64
	Insert(p *domain.Payment) error
	Get(id uint64) (*domain.Payment, error)
	// GetByReconKey returns the live payment carrying the key, or
	// ErrNotFound. At most one payment per key can be live.
	GetByReconKey(k domain.ReconKey) (*domain.Payment, error)
	// FirstBySeller returns the seller's oldest payment in insertion
	// order; NextBySeller returns the successor of p in that order.
	// Both report ok=false at index exhaustion.
	FirstBySeller(seller string) (*domain.Payment, bool)
	NextBySeller(p *domain.Payment) (*domain.Payment, bool)
	Update(p *domain.Payment) error
	Remove(id uint64) error
	First() (*domain.Payment, bool)
	Len() int
}

// BalanceStore holds per-seller balance partitions. A partition is an
// independent namespace keyed by symbol code; no record leaks across
// partitions.
type BalanceStore interface {
	Get(seller, symbolCode string) (*domain.Balance, error)
	Insert(seller string, b *domain.Balance) error
	Update(seller string, b *domain.Balance) error
	Remove(seller, symbolCode string) error
	Exists(seller, symbolCode string) bool
	First(seller string) (*domain.Balance, bool)
	List(seller string) []*domain.Balance
	Len(seller string) int
}

// LedgerStore is the whole in-memory contract state. Atomic serializes an
// external call against all others: the host model is a single writer, so
// every mutating entry point runs start-to-finish under one mutex and the
// individual tables carry no locking of their own.
type LedgerStore interface {
	Atomic(fn func() error) error
	Sellers() SellerStore
	Payments() PaymentStore
	Balances() BalanceStore
}

// AccountRepository defines persistence for API account credentials.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByName(ctx context.Context, name string) (*domain.Account, error)
	GetByAccessKey(ctx context.Context, accessKey string) (*domain.Account, error)
}

// JournalRepository defines persistence for the append-only ledger event
// journal.
type JournalRepository interface {
	Append(ctx context.Context, e *domain.LedgerEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.LedgerEvent, error)
	ListBySeller(ctx context.Context, seller string, limit int) ([]domain.LedgerEvent, error)
}

// AuditRepository defines persistence for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
