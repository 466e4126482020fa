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

// RegistryServiceImpl implements ports.RegistryService.
type RegistryServiceImpl struct {
	ledger  ports.LedgerStore
	clock   ports.Clock
	journal ports.JournalService
	log     zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(ledger ports.LedgerStore, clock ports.Clock, journal ports.JournalService, log zerolog.Logger) *RegistryServiceImpl {
	return &RegistryServiceImpl{ledger: ledger, clock: clock, journal: journal, log: log}
}

// RegisterStore registers a seller account. Registering an already
// registered seller is a no-op, not an error; the record stays as it was.
func (s *RegistryServiceImpl) RegisterStore(ctx context.Context, caller, seller string) (*domain.Seller, error) {
	if err := requireCaller(caller, seller); err != nil {
		return nil, err
	}

	var out *domain.Seller
	err := s.ledger.Atomic(func() error {
		if existing, err := s.ledger.Sellers().Get(seller); err == nil {
			cp := *existing
			out = &cp
			return nil
		}
		sl := &domain.Seller{Account: seller, RegisteredAt: s.clock.NowMs()}
		if err := s.ledger.Sellers().Insert(sl); err != nil {
			return apperror.InternalError(fmt.Errorf("insert seller: %w", err))
		}
		cp := *sl
		out = &cp
		s.journal.Record(ctx, &domain.LedgerEvent{
			ID:        uuid.New(),
			Kind:      domain.EventStoreRegistered,
			Seller:    seller,
			CreatedAt: time.Now().UTC(),
		})
		s.log.Info().Str("seller", seller).Msg("store registered")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnregisterStore deletes the seller record.
func (s *RegistryServiceImpl) UnregisterStore(ctx context.Context, caller, seller string) error {
	if err := requireCaller(caller, seller); err != nil {
		return err
	}

	return s.ledger.Atomic(func() error {
		if err := s.ledger.Sellers().Remove(seller); err != nil {
			if errors.Is(err, memory.ErrNotFound) {
				return apperror.ErrStoreNotRegistered(seller)
			}
			return apperror.InternalError(fmt.Errorf("remove seller: %w", err))
		}
		s.journal.Record(ctx, &domain.LedgerEvent{
			ID:        uuid.New(),
			Kind:      domain.EventStoreUnregistered,
			Seller:    seller,
			CreatedAt: time.Now().UTC(),
		})
		s.log.Info().Str("seller", seller).Msg("store unregistered")
		return nil
	})
}

// IsRegistered reports whether the seller currently holds a registry
// record. Consumed as a precondition gate by the payment and balance
// services.
func (s *RegistryServiceImpl) IsRegistered(seller string) bool {
	registered := false
	_ = s.ledger.Atomic(func() error {
		registered = s.ledger.Sellers().Exists(seller)
		return nil
	})
	return registered
}

// ListStores returns all registered sellers.
func (s *RegistryServiceImpl) ListStores(ctx context.Context) []domain.Seller {
	var out []domain.Seller
	_ = s.ledger.Atomic(func() error {
		for _, sl := range s.ledger.Sellers().List() {
			out = append(out, *sl)
		}
		return nil
	})
	return out
}

// ClearStores drains the registry, returning the number of records
// removed. Administrative escape hatch, not a lifecycle step.
func (s *RegistryServiceImpl) ClearStores(ctx context.Context) (int, error) {
	removed := 0
	err := s.ledger.Atomic(func() error {
		for {
			first, ok := s.ledger.Sellers().First()
			if !ok {
				return nil
			}
			if err := s.ledger.Sellers().Remove(first.Account); err != nil {
				return apperror.InternalError(fmt.Errorf("drain sellers: %w", err))
			}
			removed++
		}
	})
	if err != nil {
		return removed, err
	}
	s.log.Warn().Int("removed", removed).Msg("store registry cleared")
	return removed, nil
}

// requireCaller mirrors the chain's requireAuth: the executing principal
// must be the named account.
func requireCaller(caller, account string) error {
	if caller != account {
		return apperror.ErrUnauthorizedCaller(account)
	}
	return nil
}
