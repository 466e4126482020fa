package middleware

import (
	"encoding/json"
	"strings"
	"time"

	"wookey-escrow/internal/core/domain"
	"wookey-escrow/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// It maps HTTP methods and paths to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		action, resourceType := mapPathToAction(c.Request.URL.Path, c.Request.Method)
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Account:      CallerAccount(c),
			Action:       action,
			ResourceType: resourceType,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	switch {
	case path == "/api/v1/auth/register" && method == "POST":
		return domain.AuditActionRegister, "account"
	case path == "/api/v1/auth/login" && method == "POST":
		return domain.AuditActionLogin, "session"
	case path == "/api/v1/stores" && method == "POST":
		return domain.AuditActionRegisterStore, "store"
	case strings.HasPrefix(path, "/api/v1/stores/") && method == "DELETE":
		return domain.AuditActionUnregisterStore, "store"
	case path == "/api/v1/payments" && method == "POST":
		return domain.AuditActionRegisterPayment, "payment"
	case path == "/api/v1/payments/cancel" && method == "POST":
		return domain.AuditActionCancelPayment, "payment"
	case path == "/api/v1/payments/refund" && method == "POST":
		return domain.AuditActionRefundPayment, "payment"
	case path == "/api/v1/deposits" && method == "POST":
		return domain.AuditActionDeposit, "payment"
	case path == "/api/v1/balances/claim" && method == "POST":
		return domain.AuditActionClaimBalance, "balance"
	case strings.HasPrefix(path, "/api/v1/admin/clear/") && method == "POST":
		return domain.AuditActionAdminClear, strings.TrimPrefix(path, "/api/v1/admin/clear/")
	}
	return "", ""
}
