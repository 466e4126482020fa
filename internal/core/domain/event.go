package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEventKind enumerates the state transitions recorded in the
// durable journal.
type LedgerEventKind string

const (
	EventPaymentRegistered LedgerEventKind = "PAYMENT_REGISTERED"
	EventPaymentFulfilled  LedgerEventKind = "PAYMENT_FULFILLED"
	EventPaymentCanceled   LedgerEventKind = "PAYMENT_CANCELED"
	EventPaymentRefunded   LedgerEventKind = "PAYMENT_REFUNDED"
	EventPaymentPaidOut    LedgerEventKind = "PAYMENT_PAID_OUT"
	EventBalanceCredited   LedgerEventKind = "BALANCE_CREDITED"
	EventBalanceClaimed    LedgerEventKind = "BALANCE_CLAIMED"
	EventBalanceDebited    LedgerEventKind = "BALANCE_DEBITED"
	EventStoreRegistered   LedgerEventKind = "STORE_REGISTERED"
	EventStoreUnregistered LedgerEventKind = "STORE_UNREGISTERED"
)

// LedgerEvent is one row of the append-only journal. The ledger state
// itself is in-memory; the journal is the durable operational record of
// every transition that mutated it.
type LedgerEvent struct {
	ID        uuid.UUID       `json:"id"`
	Kind      LedgerEventKind `json:"kind"`
	Seller    string          `json:"seller,omitempty"`
	Buyer     string          `json:"buyer,omitempty"`
	PaymentID *uint64         `json:"payment_id,omitempty"`
	ReconKey  string          `json:"recon_key,omitempty"` // hex
	Quantity  string          `json:"quantity,omitempty"`  // asset notation
	Status    string          `json:"status,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
