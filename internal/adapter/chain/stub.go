package chain

import (
	"context"
	"sync"

	"wookey-escrow/internal/core/domain"

	"github.com/rs/zerolog"
)

// StubTransfer records one transfer accepted by the stub.
type StubTransfer struct {
	TokenContract string
	From          string
	To            string
	Quantity      domain.Asset
	Memo          string
}

// Stub implements ports.TokenTransferor without a relay. Every transfer
// succeeds and is recorded; used in development mode and tests.
type Stub struct {
	mu        sync.Mutex
	transfers []StubTransfer
	log       zerolog.Logger
}

// NewStub creates a recording transferor.
func NewStub(log zerolog.Logger) *Stub {
	return &Stub{log: log}
}

// Transfer records the transfer and succeeds.
func (s *Stub) Transfer(ctx context.Context, tokenContract, from, to string, quantity domain.Asset, memo string) error {
	s.mu.Lock()
	s.transfers = append(s.transfers, StubTransfer{
		TokenContract: tokenContract,
		From:          from,
		To:            to,
		Quantity:      quantity,
		Memo:          memo,
	})
	s.mu.Unlock()

	s.log.Info().
		Str("token_contract", tokenContract).
		Str("from", from).
		Str("to", to).
		Str("quantity", quantity.String()).
		Str("memo", memo).
		Msg("stub transfer")

	return nil
}

// Transfers returns a copy of all recorded transfers.
func (s *Stub) Transfers() []StubTransfer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StubTransfer, len(s.transfers))
	copy(out, s.transfers)
	return out
}
