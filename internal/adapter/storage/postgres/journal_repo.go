package postgres

import (
	"context"
	"fmt"

	"wookey-escrow/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// JournalRepo implements ports.JournalRepository on an append-only
// ledger_events table.
type JournalRepo struct {
	pool Pool
}

// NewJournalRepo creates a new JournalRepo.
func NewJournalRepo(pool Pool) *JournalRepo {
	return &JournalRepo{pool: pool}
}

// Append inserts one ledger event.
func (r *JournalRepo) Append(ctx context.Context, e *domain.LedgerEvent) error {
	query := `INSERT INTO ledger_events (id, kind, seller, buyer, payment_id, recon_key, quantity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Kind, e.Seller, e.Buyer,
		e.PaymentID, e.ReconKey, e.Quantity, e.Status,
		e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger event: %w", err)
	}
	return nil
}

// ListRecent returns the newest events, most recent first.
func (r *JournalRepo) ListRecent(ctx context.Context, limit int) ([]domain.LedgerEvent, error) {
	query := `SELECT id, kind, seller, buyer, payment_id, recon_key, quantity, status, created_at
		FROM ledger_events ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger events: %w", err)
	}
	return scanEvents(rows)
}

// ListBySeller returns the newest events for one seller, most recent first.
func (r *JournalRepo) ListBySeller(ctx context.Context, seller string, limit int) ([]domain.LedgerEvent, error) {
	query := `SELECT id, kind, seller, buyer, payment_id, recon_key, quantity, status, created_at
		FROM ledger_events WHERE seller = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, seller, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger events by seller: %w", err)
	}
	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]domain.LedgerEvent, error) {
	defer rows.Close()

	var events []domain.LedgerEvent
	for rows.Next() {
		var e domain.LedgerEvent
		if err := rows.Scan(
			&e.ID, &e.Kind, &e.Seller, &e.Buyer,
			&e.PaymentID, &e.ReconKey, &e.Quantity, &e.Status,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger events: %w", err)
	}
	return events, nil
}
