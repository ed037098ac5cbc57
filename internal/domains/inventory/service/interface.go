package service

import (
	"context"

	"freshstock-backend/internal/domains/inventory/model"
)

// ServiceInterface is the inventory business-logic surface consumed by
// the HTTP handlers.
type ServiceInterface interface {
	// Batch lifecycle
	CreateBatch(ctx context.Context, req model.CreateBatchRequest) (*model.BatchInventoryResponse, error)
	UpdateBatchStockCount(ctx context.Context, batchID int64, req model.UpdateStockCountRequest) (*model.BatchInventoryResponse, error)
	DeliverUnits(ctx context.Context, batchID int64, req model.UnitsRequest) (*model.BatchInventoryResponse, error)
	WasteUnits(ctx context.Context, batchID int64, req model.UnitsRequest) (*model.BatchInventoryResponse, error)

	// Lookups and aggregation
	GetBatchInventory(ctx context.Context, batchID int64) (*model.BatchInventoryResponse, error)
	GetBatchLog(ctx context.Context, batchID int64) (*model.BatchLogResponse, error)
	GetProductInventory(ctx context.Context, productID int64) ([]model.ProductBatchResponse, error)
	GetFreshness(ctx context.Context) (map[string]map[model.Freshness]int, error)
	GetProducts(ctx context.Context) (map[string][]model.BatchStockResponse, error)
}
