package handler

import (
	"strconv"
	"time"

	"wookey-escrow/internal/adapter/http/dto"
	"wookey-escrow/internal/core/ports"
	"wookey-escrow/pkg/apperror"
	"wookey-escrow/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the operator-only bulk clear and journal
// endpoints.
type AdminHandler struct {
	registrySvc ports.RegistryService
	paymentSvc  ports.PaymentService
	balanceSvc  ports.BalanceService
	journalSvc  ports.JournalService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	registrySvc ports.RegistryService,
	paymentSvc ports.PaymentService,
	balanceSvc ports.BalanceService,
	journalSvc ports.JournalService,
) *AdminHandler {
	return &AdminHandler{
		registrySvc: registrySvc,
		paymentSvc:  paymentSvc,
		balanceSvc:  balanceSvc,
		journalSvc:  journalSvc,
	}
}

// ClearPayments handles POST /api/v1/admin/clear/payments.
func (h *AdminHandler) ClearPayments(c *gin.Context) {
	removed, err := h.paymentSvc.ClearPayments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"removed": removed})
}

// ClearStores handles POST /api/v1/admin/clear/stores.
func (h *AdminHandler) ClearStores(c *gin.Context) {
	removed, err := h.registrySvc.ClearStores(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"removed": removed})
}

// ClearBalances handles POST /api/v1/admin/clear/balances. The request
// names the seller whose balance partition is drained.
func (h *AdminHandler) ClearBalances(c *gin.Context) {
	var req dto.ClearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.Account == "" {
		response.Error(c, apperror.Validation("account is required"))
		return
	}

	removed, err := h.balanceSvc.ClearBalances(c.Request.Context(), req.Account)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"removed": removed})
}

// Journal handles GET /api/v1/admin/journal?limit=<n>.
func (h *AdminHandler) Journal(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			response.Error(c, apperror.Validation("limit must be between 1 and 1000"))
			return
		}
		limit = n
	}

	events, err := h.journalSvc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	items := make([]dto.JournalEntryResponse, 0, len(events))
	for _, e := range events {
		items = append(items, dto.JournalEntryResponse{
			Kind:      string(e.Kind),
			Seller:    e.Seller,
			Buyer:     e.Buyer,
			PaymentID: e.PaymentID,
			ReconKey:  e.ReconKey,
			Quantity:  e.Quantity,
			Status:    e.Status,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	response.OK(c, items)
}
