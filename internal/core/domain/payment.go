package domain

// PaymentStatus represents the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusAwaiting  PaymentStatus = "AWAIT_PAYMENT"
	PaymentStatusFulfilled PaymentStatus = "FULFILLED"
	PaymentStatusCanceled  PaymentStatus = "CANCELED"
	PaymentStatusPaidOut   PaymentStatus = "PAID_OUT"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Payment is a seller-issued payment request awaiting a buyer deposit.
// The ID is a ledger-issued sequence number, never reused. ReconKey is
// unique across live payments; SellerAccount is secondary-indexed in
// insertion order for payout reconciliation.
type Payment struct {
	ID            uint64        `json:"id"`
	SellerAccount string        `json:"seller"`
	BuyerAccount  string        `json:"buyer"`
	ReconKey      ReconKey      `json:"recon_key"`
	Amount        Asset         `json:"amount"`
	TokenContract string        `json:"token_contract"`
	Status        PaymentStatus `json:"status"`
	Created       int64         `json:"created"` // unix millis
	Updated       int64         `json:"updated"` // unix millis
}

// PrimaryKey implements the entity store record capability.
func (p *Payment) PrimaryKey() uint64 { return p.ID }

// IsTerminal reports whether the payment reached a final state.
func (p *Payment) IsTerminal() bool {
	switch p.Status {
	case PaymentStatusCanceled, PaymentStatusPaidOut, PaymentStatusRefunded:
		return true
	}
	return false
}

// CanFulfill reports whether a deposit may fulfill this payment.
// Fulfillment is exactly-once: a canceled or already-fulfilled payment
// rejects further deposits.
func (p *Payment) CanFulfill() bool {
	return p.Status != PaymentStatusCanceled && p.Status != PaymentStatusFulfilled
}
