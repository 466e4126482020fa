package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionRegisterStore   AuditAction = "REGISTER_STORE"
	AuditActionUnregisterStore AuditAction = "UNREGISTER_STORE"
	AuditActionRegisterPayment AuditAction = "REGISTER_PAYMENT"
	AuditActionCancelPayment   AuditAction = "CANCEL_PAYMENT"
	AuditActionRefundPayment   AuditAction = "REFUND_PAYMENT"
	AuditActionDeposit         AuditAction = "DEPOSIT"
	AuditActionClaimBalance    AuditAction = "CLAIM_BALANCE"
	AuditActionRegister        AuditAction = "REGISTER"
	AuditActionLogin           AuditAction = "LOGIN"
	AuditActionAdminClear      AuditAction = "ADMIN_CLEAR"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Account      string      `json:"account,omitempty"` // caller account handle
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
