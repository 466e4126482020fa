package postgres

import (
	"context"
	"errors"
	"fmt"

	"wookey-escrow/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new account into the database.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, name, password_hash, access_key, secret_key_enc, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.PasswordHash,
		a.AccessKey, a.SecretKeyEnc, a.Role, a.Status,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by its UUID.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.getBy(ctx, "id", id)
}

// GetByName fetches an account by its chain account handle.
func (r *AccountRepo) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	return r.getBy(ctx, "name", name)
}

// GetByAccessKey fetches an account by its public access key.
func (r *AccountRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Account, error) {
	return r.getBy(ctx, "access_key", accessKey)
}

func (r *AccountRepo) getBy(ctx context.Context, column string, arg any) (*domain.Account, error) {
	query := `SELECT id, name, password_hash, access_key, secret_key_enc, role, status, created_at, updated_at
		FROM accounts WHERE ` + column + ` = $1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Name, &a.PasswordHash,
		&a.AccessKey, &a.SecretKeyEnc, &a.Role, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by %s: %w", column, err)
	}
	return a, nil
}
