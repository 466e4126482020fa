package dto

import "wookey-escrow/internal/core/domain"

// RegisterAccountRequest is the request body for API account registration.
type RegisterAccountRequest struct {
	Name     string `json:"name" binding:"required,chain_account"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for account login.
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterAccountResponse is the response body for successful registration.
// SecretKey is shown exactly once.
type RegisterAccountResponse struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// RegisterStoreRequest is the request body for seller store registration.
type RegisterStoreRequest struct {
	Account string `json:"account" binding:"required,chain_account"`
}

// StoreResponse describes one registered seller store.
type StoreResponse struct {
	Account      string `json:"account"`
	RegisteredAt int64  `json:"registered_at"` // unix ms
}

// RegisterPaymentRequest is the request body for registering a pending
// payment. Quantity uses asset notation, e.g. "5.0000 XPR".
type RegisterPaymentRequest struct {
	Seller        string `json:"seller" binding:"required,chain_account"`
	ReconKey      string `json:"recon_key" binding:"required,recon_key"`
	Quantity      string `json:"quantity" binding:"required,max=32"`
	TokenContract string `json:"token_contract" binding:"required,chain_account"`
}

// CancelPaymentRequest is the request body for canceling a payment.
type CancelPaymentRequest struct {
	ReconKey string `json:"recon_key" binding:"required,recon_key"`
}

// RefundPaymentRequest is the request body for refunding a payment.
type RefundPaymentRequest struct {
	ReconKey string `json:"recon_key" binding:"required,recon_key"`
}

// PaymentResponse describes one payment row.
type PaymentResponse struct {
	ID            uint64 `json:"id"`
	Seller        string `json:"seller"`
	Buyer         string `json:"buyer,omitempty"`
	ReconKey      string `json:"recon_key"`
	Quantity      string `json:"quantity"`
	TokenContract string `json:"token_contract"`
	Status        string `json:"status"`
	Created       int64  `json:"created"` // unix ms
	Updated       int64  `json:"updated"` // unix ms
}

// PaymentFromDomain maps a domain payment to its response shape.
func PaymentFromDomain(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Seller:        p.SellerAccount,
		Buyer:         p.BuyerAccount,
		ReconKey:      p.ReconKey.String(),
		Quantity:      p.Amount.String(),
		TokenContract: p.TokenContract,
		Status:        string(p.Status),
		Created:       p.Created,
		Updated:       p.Updated,
	}
}

// DepositNoticeRequest is the request body posted by the chain watcher
// for each inbound escrow transfer.
type DepositNoticeRequest struct {
	TransferID string `json:"transfer_id" binding:"required,max=128"`
	From       string `json:"from" binding:"required,chain_account"`
	To         string `json:"to" binding:"required,chain_account"`
	Quantity   string `json:"quantity" binding:"required,max=32"`
	Memo       string `json:"memo" binding:"max=256"`
}

// DepositResponse reports what the intake did with a deposit notice.
type DepositResponse struct {
	Skipped    bool             `json:"skipped"`
	SkipReason string           `json:"skip_reason,omitempty"`
	Payment    *PaymentResponse `json:"payment,omitempty"`
}

// ClaimBalanceRequest is the request body for a seller payout claim.
type ClaimBalanceRequest struct {
	Symbol string `json:"symbol" binding:"required,min=1,max=7"`
}

// BalanceResponse describes one accrued balance row.
type BalanceResponse struct {
	Symbol        string `json:"symbol"`
	TokenContract string `json:"token_contract"`
	Amount        string `json:"amount"`     // asset notation
	LastClaim     int64  `json:"last_claim"` // unix ms
}

// BalanceFromDomain maps a domain balance to its response shape.
func BalanceFromDomain(b *domain.Balance) BalanceResponse {
	return BalanceResponse{
		Symbol:        b.Symbol.Code,
		TokenContract: b.TokenContract,
		Amount:        b.Accrued().String(),
		LastClaim:     b.LastClaim,
	}
}

// ClaimBalanceResponse reports the outcome of a payout claim. PaidOut
// is the number of payments the reconciler marked.
type ClaimBalanceResponse struct {
	Skipped     bool   `json:"skipped"`
	Transferred string `json:"transferred,omitempty"`
	PaidOut     int    `json:"paid_out"`
}

// ClearRequest is the request body for administrative bulk clears.
// Account scopes balance clears to one seller partition.
type ClearRequest struct {
	Account string `json:"account,omitempty" binding:"omitempty,chain_account"`
}

// JournalEntryResponse is one journal row in admin listings.
type JournalEntryResponse struct {
	Kind      string  `json:"kind"`
	Seller    string  `json:"seller,omitempty"`
	Buyer     string  `json:"buyer,omitempty"`
	PaymentID *uint64 `json:"payment_id,omitempty"`
	ReconKey  string  `json:"recon_key,omitempty"`
	Quantity  string  `json:"quantity,omitempty"`
	Status    string  `json:"status,omitempty"`
	CreatedAt string  `json:"created_at"`
}
