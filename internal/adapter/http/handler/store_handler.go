package handler

import (
	"wookey-escrow/internal/adapter/http/dto"
	"wookey-escrow/internal/adapter/http/middleware"
	"wookey-escrow/internal/core/ports"
	"wookey-escrow/pkg/apperror"
	"wookey-escrow/pkg/response"

	"github.com/gin-gonic/gin"
)

// StoreHandler handles seller store registry endpoints.
type StoreHandler struct {
	registrySvc ports.RegistryService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(registrySvc ports.RegistryService) *StoreHandler {
	return &StoreHandler{registrySvc: registrySvc}
}

// Register handles POST /api/v1/stores.
func (h *StoreHandler) Register(c *gin.Context) {
	var req dto.RegisterStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	seller, err := h.registrySvc.RegisterStore(c.Request.Context(), middleware.CallerAccount(c), req.Account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.StoreResponse{
		Account:      seller.Account,
		RegisteredAt: seller.RegisteredAt,
	})
}

// Unregister handles DELETE /api/v1/stores/:account.
func (h *StoreHandler) Unregister(c *gin.Context) {
	account := c.Param("account")

	if err := h.registrySvc.UnregisterStore(c.Request.Context(), middleware.CallerAccount(c), account); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"account": account, "unregistered": true})
}

// List handles GET /api/v1/stores.
func (h *StoreHandler) List(c *gin.Context) {
	sellers := h.registrySvc.ListStores(c.Request.Context())

	items := make([]dto.StoreResponse, 0, len(sellers))
	for _, s := range sellers {
		items = append(items, dto.StoreResponse{
			Account:      s.Account,
			RegisteredAt: s.RegisteredAt,
		})
	}
	response.OK(c, items)
}
