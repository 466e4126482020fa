package handler

import (
	"wookey-escrow/internal/adapter/http/dto"
	"wookey-escrow/internal/adapter/http/middleware"
	"wookey-escrow/internal/core/ports"
	"wookey-escrow/pkg/apperror"
	"wookey-escrow/pkg/response"

	"github.com/gin-gonic/gin"
)

// BalanceHandler handles accrued balance endpoints.
type BalanceHandler struct {
	balanceSvc ports.BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceSvc ports.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceSvc: balanceSvc}
}

// Claim handles POST /api/v1/balances/claim. The authenticated caller
// claims its own accrued balance for one symbol.
func (h *BalanceHandler) Claim(c *gin.Context) {
	var req dto.ClaimBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	caller := middleware.CallerAccount(c)
	result, err := h.balanceSvc.Claim(c.Request.Context(), caller, caller, req.Symbol)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ClaimBalanceResponse{Skipped: result.Skipped, PaidOut: result.PaidOut}
	if !result.Skipped {
		resp.Transferred = result.Transferred.String()
	}
	response.OK(c, resp)
}

// List handles GET /api/v1/balances?seller=<account>.
func (h *BalanceHandler) List(c *gin.Context) {
	seller := c.Query("seller")
	if seller == "" {
		seller = middleware.CallerAccount(c)
	}

	balances := h.balanceSvc.ListBalances(c.Request.Context(), seller)
	items := make([]dto.BalanceResponse, 0, len(balances))
	for i := range balances {
		items = append(items, dto.BalanceFromDomain(&balances[i]))
	}
	response.OK(c, items)
}

// Get handles GET /api/v1/balances/:symbol for the authenticated caller.
func (h *BalanceHandler) Get(c *gin.Context) {
	seller := middleware.CallerAccount(c)

	balance, err := h.balanceSvc.GetBalance(c.Request.Context(), seller, c.Param("symbol"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceFromDomain(balance))
}
