package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ===================================
// REQUEST DTOs
// ===================================

// CreateBatchRequest is the payload for POST /batch.
type CreateBatchRequest struct {
	ProductName     string `json:"product_name" binding:"required"`
	Supplier        string `json:"supplier" binding:"required"`
	TotalStockCount int    `json:"total_stock_count" binding:"min=0"`
	ExpiryDate      string `json:"expiry_date" binding:"required"`
}

// Validate validates CreateBatchRequest.
func (req CreateBatchRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.ProductName, validation.Required),
		validation.Field(&req.Supplier, validation.Required),
		validation.Field(&req.TotalStockCount, validation.Min(0)),
		validation.Field(&req.ExpiryDate, validation.Required, validation.Date(DateFormat)),
	)
}

// UpdateStockCountRequest is the payload for PUT /batch/:id.
type UpdateStockCountRequest struct {
	NewStockCount int `json:"new_stock_count" binding:"min=0"`
}

// Validate validates UpdateStockCountRequest.
func (req UpdateStockCountRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.NewStockCount, validation.Min(0)),
	)
}

// UnitsRequest is the payload for the deliver and waste endpoints.
type UnitsRequest struct {
	Units int `json:"units" binding:"required,min=1"`
}

// Validate validates UnitsRequest.
func (req UnitsRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Units, validation.Required, validation.Min(1)),
	)
}

// ===================================
// RESPONSE DTOs
// ===================================

// BatchInventoryResponse is the per-batch summary returned by the batch
// lookup and mutation endpoints.
type BatchInventoryResponse struct {
	BatchID        int64  `json:"batch_id"`
	ProductName    string `json:"product_name"`
	RemainingUnits int    `json:"remaining_units"`
	ExpiryDate     string `json:"expiry_date"`
}

// ProductBatchResponse is one entry of a product-level inventory listing.
type ProductBatchResponse struct {
	BatchID        int64  `json:"batch_id"`
	ProductName    string `json:"product_name"`
	ProductID      int64  `json:"product_id"`
	RemainingUnits int    `json:"remaining_units"`
}

// BatchStockResponse is the (batch id, remaining units) pair used by the
// warehouse-wide product view.
type BatchStockResponse struct {
	BatchID        int64 `json:"batch_id"`
	RemainingUnits int   `json:"remaining_units"`
}

// BatchLogResponse is the audit log of one batch.
type BatchLogResponse struct {
	BatchID int64      `json:"batch_id"`
	Entries []LogEntry `json:"entries"`
}

// ===================================
// MAPPERS (Model <-> DTO)
// ===================================

// ToInventoryResponse converts a Batch to its summary DTO.
func (b *Batch) ToInventoryResponse() BatchInventoryResponse {
	return BatchInventoryResponse{
		BatchID:        b.ID,
		ProductName:    b.Product.ProductName,
		RemainingUnits: b.RemainingUnits,
		ExpiryDate:     b.ExpiryDate.Format(DateFormat),
	}
}

// ToLogResponse converts a Batch's audit log to its DTO.
func (b *Batch) ToLogResponse() BatchLogResponse {
	return BatchLogResponse{
		BatchID: b.ID,
		Entries: b.Log(),
	}
}
