package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"wookey-escrow/internal/core/domain"
	"wookey-escrow/internal/core/ports"
	"wookey-escrow/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	accountRepo ports.AccountRepository
	hashSvc     ports.HashService
	encSvc      ports.EncryptionService
	tokenSvc    ports.TokenService
	log         zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	accountRepo ports.AccountRepository,
	hashSvc ports.HashService,
	encSvc ports.EncryptionService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		hashSvc:     hashSvc,
		encSvc:      encSvc,
		tokenSvc:    tokenSvc,
		log:         log,
	}
}

// Register creates API credentials for a chain account handle.
// Returns the access_key and secret_key (plaintext shown only once).
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterAccountRequest) (*ports.RegisterAccountResponse, error) {
	account, accessKey, secretKey, err := s.newAccount(ctx, req.Name, req.Password, domain.AccountRoleMember)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}

	return &ports.RegisterAccountResponse{
		AccountID: account.ID,
		Name:      account.Name,
		AccessKey: accessKey,
		SecretKey: secretKey,
	}, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, name, password string) (string, time.Time, error) {
	account, err := s.accountRepo.GetByName(ctx, name)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find account: %w", err))
	}
	if account == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, account.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !account.IsActive() {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(account)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}

// EnsureAdmin seeds the bootstrap operator account on first startup.
// A no-op when the account already exists.
func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context, name, password string) error {
	existing, err := s.accountRepo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	account, accessKey, _, err := s.newAccount(ctx, name, password, domain.AccountRoleAdmin)
	if err != nil {
		return err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	s.log.Info().Str("account", name).Str("access_key", accessKey).Msg("seeded operator account")
	return nil
}

func (s *AuthServiceImpl) newAccount(ctx context.Context, name, password string, role domain.AccountRole) (*domain.Account, string, string, error) {
	existing, err := s.accountRepo.GetByName(ctx, name)
	if err != nil {
		return nil, "", "", apperror.InternalError(fmt.Errorf("check account name: %w", err))
	}
	if existing != nil {
		return nil, "", "", apperror.ErrAccountExists()
	}

	accessKey, err := generateRandomHex(32) // 64 hex chars
	if err != nil {
		return nil, "", "", apperror.InternalError(fmt.Errorf("generate access key: %w", err))
	}

	secretKey, err := generateRandomHex(32)
	if err != nil {
		return nil, "", "", apperror.InternalError(fmt.Errorf("generate secret key: %w", err))
	}

	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return nil, "", "", apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	secretKeyEnc, err := s.encSvc.Encrypt(secretKey)
	if err != nil {
		return nil, "", "", apperror.InternalError(fmt.Errorf("encrypt secret key: %w", err))
	}

	now := time.Now().UTC()
	return &domain.Account{
		ID:           uuid.New(),
		Name:         name,
		PasswordHash: passwordHash,
		AccessKey:    accessKey,
		SecretKeyEnc: secretKeyEnc,
		Role:         role,
		Status:       domain.AccountStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, accessKey, secretKey, nil
}

// generateRandomHex generates a random hex string of n bytes.
func generateRandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
