package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountRole separates regular ledger participants from operators who
// may run the administrative bulk-clear endpoints.
type AccountRole string

const (
	AccountRoleMember AccountRole = "MEMBER"
	AccountRoleAdmin  AccountRole = "ADMIN"
)

// AccountStatus represents the state of an API account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// Account holds the API credentials behind a chain account handle. The
// ledger itself only ever sees the Name; the credential record is what
// lets the HTTP layer establish "the caller is this account" before a
// service enforces the authorization the contract expressed as
// requireAuth.
type Account struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"` // chain account handle, unique
	PasswordHash string        `json:"-"`
	AccessKey    string        `json:"access_key"`
	SecretKeyEnc string        `json:"-"` // AES-encrypted at rest
	Role         AccountRole   `json:"role"`
	Status       AccountStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// IsActive returns true if the account may authenticate.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// IsAdmin returns true if the account may call administrative endpoints.
func (a *Account) IsAdmin() bool {
	return a.Role == AccountRoleAdmin
}
