package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"freshstock-backend/internal/domains/inventory/model"
)

// InventoryService serializes all access to one Warehouse aggregate.
// The aggregate itself is single-threaded by design; gin serves
// concurrently, so every operation here runs under the same mutex.
type InventoryService struct {
	mu        sync.Mutex
	warehouse *model.Warehouse
}

// NewService creates an inventory service around an empty warehouse.
func NewService() ServiceInterface {
	return NewServiceWithWarehouse(model.NewWarehouse())
}

// NewServiceWithWarehouse wraps an existing warehouse, letting callers
// inject a clocked warehouse under test.
func NewServiceWithWarehouse(w *model.Warehouse) ServiceInterface {
	return &InventoryService{warehouse: w}
}

// CreateBatch implements ServiceInterface.CreateBatch.
func (s *InventoryService) CreateBatch(ctx context.Context, req model.CreateBatchRequest) (*model.BatchInventoryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := model.NewProduct(req.ProductName, req.Supplier)
	batchID, err := s.warehouse.AddBatch(product, req.TotalStockCount, req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("batch_id", batchID).
		Str("product", req.ProductName).
		Str("supplier", req.Supplier).
		Int("total_stock_count", req.TotalStockCount).
		Str("expiry_date", req.ExpiryDate).
		Msg("batch added")

	return s.warehouse.GetBatchInventory(batchID)
}

// UpdateBatchStockCount implements ServiceInterface.UpdateBatchStockCount.
func (s *InventoryService) UpdateBatchStockCount(ctx context.Context, batchID int64, req model.UpdateStockCountRequest) (*model.BatchInventoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.warehouse.UpdateBatchStockCount(batchID, req.NewStockCount); err != nil {
		return nil, err
	}

	log.Info().
		Int64("batch_id", batchID).
		Int("new_stock_count", req.NewStockCount).
		Msg("batch stock count corrected")

	return s.warehouse.GetBatchInventory(batchID)
}

// DeliverUnits implements ServiceInterface.DeliverUnits.
func (s *InventoryService) DeliverUnits(ctx context.Context, batchID int64, req model.UnitsRequest) (*model.BatchInventoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.warehouse.GetBatchByID(batchID)
	if err != nil {
		return nil, err
	}
	if err := batch.Deliver(req.Units); err != nil {
		return nil, err
	}

	log.Info().
		Int64("batch_id", batchID).
		Int("units", req.Units).
		Int("remaining_units", batch.RemainingUnits).
		Msg("units delivered")

	return s.warehouse.GetBatchInventory(batchID)
}

// WasteUnits implements ServiceInterface.WasteUnits.
func (s *InventoryService) WasteUnits(ctx context.Context, batchID int64, req model.UnitsRequest) (*model.BatchInventoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.warehouse.GetBatchByID(batchID)
	if err != nil {
		return nil, err
	}
	if err := batch.Waste(req.Units); err != nil {
		return nil, err
	}

	log.Info().
		Int64("batch_id", batchID).
		Int("units", req.Units).
		Int("remaining_units", batch.RemainingUnits).
		Msg("units wasted")

	return s.warehouse.GetBatchInventory(batchID)
}

// GetBatchInventory implements ServiceInterface.GetBatchInventory.
func (s *InventoryService) GetBatchInventory(ctx context.Context, batchID int64) (*model.BatchInventoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.warehouse.GetBatchInventory(batchID)
}

// GetBatchLog implements ServiceInterface.GetBatchLog.
func (s *InventoryService) GetBatchLog(ctx context.Context, batchID int64) (*model.BatchLogResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.warehouse.GetBatchByID(batchID)
	if err != nil {
		return nil, err
	}
	res := batch.ToLogResponse()
	return &res, nil
}

// GetProductInventory implements ServiceInterface.GetProductInventory.
func (s *InventoryService) GetProductInventory(ctx context.Context, productID int64) ([]model.ProductBatchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.warehouse.GetProductInventory(productID)
}

// GetFreshness implements ServiceInterface.GetFreshness. The underlying
// evaluation can expire batches as a side effect of this read; the lock
// covers the mutation.
func (s *InventoryService) GetFreshness(ctx context.Context) (map[string]map[model.Freshness]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.warehouse.GetFreshness(), nil
}

// GetProducts implements ServiceInterface.GetProducts.
func (s *InventoryService) GetProducts(ctx context.Context) (map[string][]model.BatchStockResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.warehouse.GetProducts(), nil
}
