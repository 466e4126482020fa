package handler

import (
	"wookey-escrow/internal/adapter/http/dto"
	"wookey-escrow/internal/adapter/http/middleware"
	"wookey-escrow/internal/core/domain"
	"wookey-escrow/internal/core/ports"
	"wookey-escrow/pkg/apperror"
	"wookey-escrow/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment lifecycle endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// Register handles POST /api/v1/payments. The authenticated caller is
// the buyer.
func (h *PaymentHandler) Register(c *gin.Context) {
	var req dto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	quantity, err := domain.ParseAsset(req.Quantity)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	caller := middleware.CallerAccount(c)
	payment, err := h.paymentSvc.RegisterPayment(c.Request.Context(), caller, ports.RegisterPaymentRequest{
		Seller:        req.Seller,
		Buyer:         caller,
		ReconKeyHex:   req.ReconKey,
		Quantity:      quantity,
		TokenContract: req.TokenContract,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.PaymentFromDomain(payment))
}

// Cancel handles POST /api/v1/payments/cancel. The authenticated caller
// must be the seller named on the payment.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	var req dto.CancelPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	caller := middleware.CallerAccount(c)
	payment, err := h.paymentSvc.CancelPayment(c.Request.Context(), caller, caller, req.ReconKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PaymentFromDomain(payment))
}

// Refund handles POST /api/v1/payments/refund.
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req dto.RefundPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	caller := middleware.CallerAccount(c)
	payment, err := h.paymentSvc.RefundPayment(c.Request.Context(), caller, caller, req.ReconKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PaymentFromDomain(payment))
}

// GetByReconKey handles GET /api/v1/payments/:recon_key.
func (h *PaymentHandler) GetByReconKey(c *gin.Context) {
	payment, err := h.paymentSvc.GetByReconKey(c.Request.Context(), c.Param("recon_key"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PaymentFromDomain(payment))
}

// ListBySeller handles GET /api/v1/payments?seller=<account>.
func (h *PaymentHandler) ListBySeller(c *gin.Context) {
	seller := c.Query("seller")
	if seller == "" {
		seller = middleware.CallerAccount(c)
	}

	payments := h.paymentSvc.ListBySeller(c.Request.Context(), seller)
	items := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, dto.PaymentFromDomain(&payments[i]))
	}
	response.OK(c, items)
}
