package ports

import (
	"context"
	"time"

	"wookey-escrow/internal/core/domain"

	"github.com/google/uuid"
)

// --- Ledger service ports ---

// RegistryService gates all payment and balance operations: a seller must
// be registered before anything else touches its records.
type RegistryService interface {
	// RegisterStore is idempotent: registering a registered seller is a
	// no-op, not an error. The caller must be the seller account itself.
	RegisterStore(ctx context.Context, caller, seller string) (*domain.Seller, error)
	// UnregisterStore deletes the seller record. Fails if absent.
	UnregisterStore(ctx context.Context, caller, seller string) error
	IsRegistered(seller string) bool
	ListStores(ctx context.Context) []domain.Seller
	// ClearStores drains the registry. Administrative.
	ClearStores(ctx context.Context) (int, error)
}

// RegisterPaymentRequest holds validated input for payment registration.
type RegisterPaymentRequest struct {
	Seller        string
	Buyer         string
	ReconKeyHex   string
	Quantity      domain.Asset
	TokenContract string
}

// PaymentService owns the payment lifecycle state machine.
type PaymentService interface {
	// RegisterPayment creates a payment in AWAIT_PAYMENT. The caller must
	// be the buyer; the seller must be registered; the reconciliation key
	// must not collide with a live payment.
	RegisterPayment(ctx context.Context, caller string, req RegisterPaymentRequest) (*domain.Payment, error)
	// CancelPayment sets CANCELED. The caller must be the seller named on
	// the payment. No balance effect.
	CancelPayment(ctx context.Context, caller, seller, reconKeyHex string) (*domain.Payment, error)
	// RefundPayment transfers the payment amount back to the buyer, sets
	// REFUNDED, and debits the seller's balance for the symbol.
	RefundPayment(ctx context.Context, caller, seller, reconKeyHex string) (*domain.Payment, error)
	// Fulfill is driven by a confirmed deposit: exactly-once transition to
	// FULFILLED plus an atomic balance credit for (seller, symbol).
	Fulfill(ctx context.Context, key domain.ReconKey, deposited domain.Asset) (*domain.Payment, error)
	GetByReconKey(ctx context.Context, reconKeyHex string) (*domain.Payment, error)
	ListBySeller(ctx context.Context, seller string) []domain.Payment
	// ClearPayments drains the table regardless of state. Administrative.
	ClearPayments(ctx context.Context) (int, error)
}

// ClaimResult reports the outcome of a balance claim.
type ClaimResult struct {
	Balance     *domain.Balance
	Transferred domain.Asset
	// Skipped is true when the accrued amount was <= 0 and the claim was
	// a silent no-op.
	Skipped bool
	// PaidOut is the number of payments the payout reconciler marked.
	PaidOut int
}

// BalanceService owns per-seller accrued balances.
type BalanceService interface {
	// Claim transfers the full accrued amount to the seller, zeroes the
	// balance, reconciles the payment ledger against the previous claim
	// watermark, and advances lastClaim.
	Claim(ctx context.Context, caller, seller, symbolCode string) (*ClaimResult, error)
	GetBalance(ctx context.Context, seller, symbolCode string) (*domain.Balance, error)
	ListBalances(ctx context.Context, seller string) []domain.Balance
	// ClearBalances drains one seller's partition. Administrative.
	ClearBalances(ctx context.Context, seller string) (int, error)
}

// DepositNotice is a confirmed inbound token transfer reported by the
// chain relay. Memo carries the hex reconciliation key.
type DepositNotice struct {
	TransferID string
	From       string
	To         string
	Quantity   domain.Asset
	Memo       string
}

// DepositResult reports how a deposit notice was handled.
type DepositResult struct {
	Payment *domain.Payment
	// Skipped is set when the notice was intentionally ignored
	// (self-transfer, sentinel memo, or duplicate delivery).
	Skipped    bool
	SkipReason string
}

// DepositService is the intake for confirmed deposits.
type DepositService interface {
	OnDeposit(ctx context.Context, notice DepositNotice) (*DepositResult, error)
}

// --- Auth service ports ---

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// HashService handles password hashing.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// EncryptionService handles AES-256-GCM encryption of secrets at rest.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(account *domain.Account) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID uuid.UUID
	Account   string
	Role      domain.AccountRole
}

// RegisterAccountRequest holds input for account registration.
type RegisterAccountRequest struct {
	Name     string
	Password string
}

// RegisterAccountResponse holds the registration result shown once.
type RegisterAccountResponse struct {
	AccountID uuid.UUID
	Name      string
	AccessKey string
	SecretKey string // Plaintext, shown only at registration
}

// AuthService defines account authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterAccountRequest) (*RegisterAccountResponse, error)
	Login(ctx context.Context, name, password string) (string, time.Time, error) // token, expiry
	// EnsureAdmin creates the bootstrap operator account if it does not
	// exist yet. Called once at startup.
	EnsureAdmin(ctx context.Context, name, password string) error
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// JournalService records ledger events durably, fire-and-forget.
type JournalService interface {
	Record(ctx context.Context, e *domain.LedgerEvent)
	ListRecent(ctx context.Context, limit int) ([]domain.LedgerEvent, error)
}
