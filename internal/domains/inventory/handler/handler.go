package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"freshstock-backend/internal/domains/inventory/model"
	"freshstock-backend/internal/domains/inventory/service"
	"freshstock-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates a new inventory handler.
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateBatch handles POST /batch
func (h *Handler) CreateBatch(c *gin.Context) {
	var req model.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	res, err := h.service.CreateBatch(c.Request.Context(), req)
	if err != nil {
		h.respondDomainError(c, err, "Failed to create batch")
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// GetBatchInventory handles GET /batch/:id
func (h *Handler) GetBatchInventory(c *gin.Context) {
	batchID, ok := h.parseID(c)
	if !ok {
		return
	}

	res, err := h.service.GetBatchInventory(c.Request.Context(), batchID)
	if err != nil {
		h.respondDomainError(c, err, "Failed to get batch inventory")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// UpdateBatchStockCount handles PUT /batch/:id
func (h *Handler) UpdateBatchStockCount(c *gin.Context) {
	batchID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.UpdateStockCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	res, err := h.service.UpdateBatchStockCount(c.Request.Context(), batchID, req)
	if err != nil {
		h.respondDomainError(c, err, "Failed to update batch stock count")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// DeliverUnits handles POST /batch/:id/deliver
func (h *Handler) DeliverUnits(c *gin.Context) {
	batchID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.UnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	res, err := h.service.DeliverUnits(c.Request.Context(), batchID, req)
	if err != nil {
		h.respondDomainError(c, err, "Failed to deliver units")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// WasteUnits handles POST /batch/:id/waste
func (h *Handler) WasteUnits(c *gin.Context) {
	batchID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.UnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	res, err := h.service.WasteUnits(c.Request.Context(), batchID, req)
	if err != nil {
		h.respondDomainError(c, err, "Failed to waste units")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// GetBatchLog handles GET /batch_log/:id
func (h *Handler) GetBatchLog(c *gin.Context) {
	batchID, ok := h.parseID(c)
	if !ok {
		return
	}

	res, err := h.service.GetBatchLog(c.Request.Context(), batchID)
	if err != nil {
		h.respondDomainError(c, err, "Failed to get batch log")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// GetProductInventory handles GET /product/:id
func (h *Handler) GetProductInventory(c *gin.Context) {
	productID, ok := h.parseID(c)
	if !ok {
		return
	}

	res, err := h.service.GetProductInventory(c.Request.Context(), productID)
	if err != nil {
		h.respondDomainError(c, err, "Failed to get product inventory")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// GetFreshness handles GET /freshness
func (h *Handler) GetFreshness(c *gin.Context) {
	res, err := h.service.GetFreshness(c.Request.Context())
	if err != nil {
		h.respondDomainError(c, err, "Failed to get freshness report")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// GetProducts handles GET /warehouse
func (h *Handler) GetProducts(c *gin.Context) {
	res, err := h.service.GetProducts(c.Request.Context())
	if err != nil {
		h.respondDomainError(c, err, "Failed to get warehouse view")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// parseID parses the :id path parameter. Responds 400 and returns
// ok=false when it is not an integer at all; out-of-range values
// (negative ids) flow through to the service's not-found path.
func (h *Handler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid id", c.Param("id"))
		return 0, false
	}
	return id, true
}

// respondDomainError maps domain errors to HTTP status codes.
func (h *Handler) respondDomainError(c *gin.Context, err error, message string) {
	switch {
	case model.IsNotFoundError(err):
		response.Error(c, http.StatusNotFound, message, err.Error())
	case model.IsInvalidInputError(err):
		response.Error(c, http.StatusBadRequest, message, err.Error())
	case model.IsInsufficientStockError(err):
		response.Error(c, http.StatusConflict, message, err.Error())
	case model.IsInvariantViolationError(err):
		// Logic bug, not a caller error.
		response.Error(c, http.StatusInternalServerError, message, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, message, err.Error())
	}
}
