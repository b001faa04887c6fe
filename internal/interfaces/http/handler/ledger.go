package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	studioapp "github.com/studiosnap/backend/internal/application/studio"
)

// LedgerEntryHandler handles manual ledger entry API endpoints
type LedgerEntryHandler struct {
	BaseHandler
	service *studioapp.LedgerEntryService
}

// NewLedgerEntryHandler creates a new LedgerEntryHandler
func NewLedgerEntryHandler(service *studioapp.LedgerEntryService) *LedgerEntryHandler {
	return &LedgerEntryHandler{service: service}
}

// Create records a ledger entry
func (h *LedgerEntryHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req studioapp.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, entry)
}

// GetByID retrieves a ledger entry
func (h *LedgerEntryHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	entry, err := h.service.GetByID(c.Request.Context(), tenantID, entryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// List returns a page of ledger entries
func (h *LedgerEntryHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter studioapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entries, total, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, entries, total, filter.Page, filter.PageSize)
}

// Update modifies a ledger entry
func (h *LedgerEntryHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	var req studioapp.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.service.Update(c.Request.Context(), tenantID, entryID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// Delete removes a ledger entry
func (h *LedgerEntryHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), tenantID, entryID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all ledger entry routes
func (h *LedgerEntryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	entries := rg.Group("/ledger-entries")
	{
		entries.GET("", h.List)
		entries.GET("/:id", h.GetByID)
		entries.POST("", h.Create)
		entries.PUT("/:id", h.Update)
		entries.DELETE("/:id", h.Delete)
	}
}

// ClosingBalanceHandler handles period closing balance API endpoints
type ClosingBalanceHandler struct {
	BaseHandler
	service *studioapp.ClosingBalanceService
}

// NewClosingBalanceHandler creates a new ClosingBalanceHandler
func NewClosingBalanceHandler(service *studioapp.ClosingBalanceService) *ClosingBalanceHandler {
	return &ClosingBalanceHandler{service: service}
}

// Create records a closing balance
func (h *ClosingBalanceHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req studioapp.CreateClosingBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	closing, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, closing)
}

// GetByID retrieves a closing balance
func (h *ClosingBalanceHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	closingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid closing balance ID format")
		return
	}

	closing, err := h.service.GetByID(c.Request.Context(), tenantID, closingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, closing)
}

// List returns a page of closing balances
func (h *ClosingBalanceHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter studioapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	closings, total, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, closings, total, filter.Page, filter.PageSize)
}

// Update modifies a closing balance
func (h *ClosingBalanceHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	closingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid closing balance ID format")
		return
	}

	var req studioapp.UpdateClosingBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	closing, err := h.service.Update(c.Request.Context(), tenantID, closingID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, closing)
}

// Delete removes a closing balance
func (h *ClosingBalanceHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	closingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid closing balance ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), tenantID, closingID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all closing balance routes
func (h *ClosingBalanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	closings := rg.Group("/closing-balances")
	{
		closings.GET("", h.List)
		closings.GET("/:id", h.GetByID)
		closings.POST("", h.Create)
		closings.PUT("/:id", h.Update)
		closings.DELETE("/:id", h.Delete)
	}
}
