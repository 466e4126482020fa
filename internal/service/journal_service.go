package service

import (
	"context"

	"wookey-escrow/internal/core/domain"
	"wookey-escrow/internal/core/ports"

	"github.com/rs/zerolog"
)

type journalService struct {
	repo ports.JournalRepository
	log  zerolog.Logger
}

// NewJournalService creates a ledger event journal service. If repo is
// nil events are only logged; the in-memory ledger remains the source of
// truth either way, the journal is its durable operational record.
func NewJournalService(repo ports.JournalRepository, log zerolog.Logger) ports.JournalService {
	return &journalService{repo: repo, log: log}
}

// Record appends a ledger event asynchronously (fire-and-forget). The
// journal never blocks or fails a ledger call.
func (s *journalService) Record(ctx context.Context, e *domain.LedgerEvent) {
	go func() {
		s.log.Debug().
			Str("kind", string(e.Kind)).
			Str("seller", e.Seller).
			Str("quantity", e.Quantity).
			Msg("ledger event")

		if s.repo != nil {
			if err := s.repo.Append(context.Background(), e); err != nil {
				s.log.Warn().Err(err).Str("kind", string(e.Kind)).Msg("failed to persist ledger event")
			}
		}
	}()
}

// ListRecent returns the newest journal entries.
func (s *journalService) ListRecent(ctx context.Context, limit int) ([]domain.LedgerEvent, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.ListRecent(ctx, limit)
}
