package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Every ledger error is fatal to the call that raised it: the whole
// request is rejected and no partial mutation is observable.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Store Registry (REG) ----

func ErrStoreNotRegistered(seller string) *AppError {
	return New("REG_001", fmt.Sprintf("Store %s is not registered", seller), http.StatusNotFound)
}

// ---- Payment Ledger (PAY) ----

func ErrPaymentNotFound() *AppError {
	return New("PAY_001", "Payment not found", http.StatusNotFound)
}

func ErrDuplicateReconciliationKey() *AppError {
	return New("PAY_002", "A payment with this reconciliation key already exists", http.StatusConflict)
}

func ErrPaymentAlreadyCanceled() *AppError {
	return New("PAY_003", "Payment has been previously canceled", http.StatusConflict)
}

func ErrPaymentAlreadyFulfilled() *AppError {
	return New("PAY_004", "Payment has been previously completed", http.StatusConflict)
}

func ErrNotPaymentSeller() *AppError {
	return New("PAY_005", "Caller is not the seller of this payment", http.StatusForbidden)
}

// ---- Balance Accrual Ledger (BAL) ----

func ErrBalanceNotFound() *AppError {
	return New("BAL_001", "Balance not found", http.StatusNotFound)
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidAccessKey() *AppError {
	return New("SEC_001", "Invalid access key", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

// ErrUnauthorizedCaller is the HTTP rendition of the host chain's
// requireAuth check: the executing principal is not the named account.
func ErrUnauthorizedCaller(account string) *AppError {
	return New("SEC_005", fmt.Sprintf("Caller is not authorized as %s", account), http.StatusForbidden)
}

func ErrAdminOnly() *AppError {
	return New("SEC_006", "Administrator privileges required", http.StatusForbidden)
}

// ---- Account Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrAccountExists() *AppError {
	return New("AUTH_002", "Account name already taken", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrTransferFailed(err error) *AppError {
	return Wrap("SYS_002", "Outbound token transfer failed", http.StatusBadGateway, err)
}

// Validation returns a VAL_001 validation error with a custom message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
