package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"wookey-escrow/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingAuditService struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func (s *capturingAuditService) Log(ctx context.Context, entry *domain.AuditLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

func (s *capturingAuditService) all() []*domain.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.AuditLog(nil), s.entries...)
}

func TestAuditLog_RecordsSuccessfulWrite(t *testing.T) {
	svc := &capturingAuditService{}

	router := gin.New()
	router.Use(AuditLog(svc))
	router.POST("/api/v1/balances/claim", func(c *gin.Context) {
		c.Set(CtxAccountName, "sellerstore")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/balances/claim", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	entries := svc.all()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AuditActionClaimBalance, entries[0].Action)
	assert.Equal(t, "sellerstore", entries[0].Account)
	assert.Equal(t, "balance", entries[0].ResourceType)
}

func TestAuditLog_SkipsReads(t *testing.T) {
	svc := &capturingAuditService{}

	router := gin.New()
	router.Use(AuditLog(svc))
	router.GET("/api/v1/payments", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Empty(t, svc.all())
}

func TestAuditLog_SkipsFailedWrites(t *testing.T) {
	svc := &capturingAuditService{}

	router := gin.New()
	router.Use(AuditLog(svc))
	router.POST("/api/v1/payments", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Empty(t, svc.all())
}

func TestAuditLog_MapsAdminClears(t *testing.T) {
	svc := &capturingAuditService{}

	router := gin.New()
	router.Use(AuditLog(svc))
	router.POST("/api/v1/admin/clear/payments", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"removed": 3})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/clear/payments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	entries := svc.all()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AuditActionAdminClear, entries[0].Action)
	assert.Equal(t, "payments", entries[0].ResourceType)
}
