package handler

import (
	"wookey-escrow/internal/adapter/http/dto"
	"wookey-escrow/internal/core/domain"
	"wookey-escrow/internal/core/ports"
	"wookey-escrow/pkg/apperror"
	"wookey-escrow/pkg/response"

	"github.com/gin-gonic/gin"
)

// DepositHandler receives confirmed inbound transfer notices from the
// chain watcher.
type DepositHandler struct {
	depositSvc ports.DepositService
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(depositSvc ports.DepositService) *DepositHandler {
	return &DepositHandler{depositSvc: depositSvc}
}

// Notify handles POST /api/v1/deposits.
func (h *DepositHandler) Notify(c *gin.Context) {
	var req dto.DepositNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	quantity, err := domain.ParseAsset(req.Quantity)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.depositSvc.OnDeposit(c.Request.Context(), ports.DepositNotice{
		TransferID: req.TransferID,
		From:       req.From,
		To:         req.To,
		Quantity:   quantity,
		Memo:       req.Memo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.DepositResponse{
		Skipped:    result.Skipped,
		SkipReason: result.SkipReason,
	}
	if result.Payment != nil {
		p := dto.PaymentFromDomain(result.Payment)
		resp.Payment = &p
	}
	response.OK(c, resp)
}
