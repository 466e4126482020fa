package ports

import (
	"context"
	"time"

	"wookey-escrow/internal/core/domain"
)

// Clock supplies the ledger's notion of now, in unix milliseconds. The
// host chain stamps transactions; tests substitute a fixed clock.
type Clock interface {
	NowMs() int64
}

// TokenTransferor executes outbound value transfers on the host token
// system. A transfer either succeeds or the whole calling operation is
// aborted; there are no partial-transfer semantics.
type TokenTransferor interface {
	Transfer(ctx context.Context, tokenContract, from, to string, quantity domain.Asset, memo string) error
}

// DedupeStore remembers transfer ids already processed by the deposit
// intake, so redelivered notices are dropped before they reach the
// ledger.
type DedupeStore interface {
	// CheckAndSet returns true if the id is new, false if already seen.
	CheckAndSet(ctx context.Context, transferID string, ttl time.Duration) (bool, error)
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, account string, nonce string, ttl time.Duration) (bool, error)
}
