package model

import "time"

// Warehouse is the aggregate root owning every batch for one location.
// It indexes batches two ways, kept in lockstep: a structured index
// (product name, then supplier, then expiry date) for exact-key lookup,
// and a flat numeric-id index for direct lookup. Product identities are
// registered in a warehouse-scoped registry and assigned sequential ids
// starting at 0, as are batch ids; neither counter is shared across
// warehouse instances.
//
// The warehouse itself carries no locking. Callers serving it
// concurrently (the service layer does) must serialize all access.
type Warehouse struct {
	// byProduct is product name -> supplier -> expiry date -> batch.
	// Each level is created explicitly on first insert.
	byProduct map[string]map[string]map[string]*Batch
	byID      map[int64]*Batch

	productIDs   map[Product]int64
	productsByID map[int64]Product

	nextBatchID   int64
	nextProductID int64

	now func() time.Time
}

// NewWarehouse creates an empty warehouse using the wall clock.
func NewWarehouse() *Warehouse {
	return NewWarehouseWithClock(time.Now)
}

// NewWarehouseWithClock creates an empty warehouse with an injected
// clock, so tests can pin "today".
func NewWarehouseWithClock(now func() time.Time) *Warehouse {
	return &Warehouse{
		byProduct:    make(map[string]map[string]map[string]*Batch),
		byID:         make(map[int64]*Batch),
		productIDs:   make(map[Product]int64),
		productsByID: make(map[int64]Product),
		now:          now,
	}
}

// AddBatch registers the product if it is new, constructs a batch and
// inserts it into both indexes. Returns the new batch's id. Fails with
// an invalid-input error if the batch cannot be constructed (bad expiry
// date or negative stock count) or if a batch already occupies the
// (product, supplier, expiry date) key; nothing is registered or
// indexed on failure. The one-batch-per-key shape keeps both indexes
// covering the same set of batches; receiving more stock of an already
// indexed shipment is a stock-count correction, not a new batch.
func (w *Warehouse) AddBatch(product Product, totalStockCount int, expiryDate string) (int64, error) {
	batch, err := newBatch(w.nextBatchID, product, totalStockCount, expiryDate, w.now)
	if err != nil {
		return 0, err
	}

	expiryKey := batch.ExpiryDate.Format(DateFormat)
	if expiries, ok := w.byProduct[product.ProductName][product.Supplier]; ok {
		if _, exists := expiries[expiryKey]; exists {
			return 0, NewDuplicateBatchError(product.ProductName, product.Supplier, expiryKey)
		}
	}
	w.nextBatchID++

	if _, ok := w.productIDs[product]; !ok {
		id := w.nextProductID
		w.nextProductID++
		w.productIDs[product] = id
		w.productsByID[id] = product
	}

	suppliers, ok := w.byProduct[product.ProductName]
	if !ok {
		suppliers = make(map[string]map[string]*Batch)
		w.byProduct[product.ProductName] = suppliers
	}
	expiries, ok := suppliers[product.Supplier]
	if !ok {
		expiries = make(map[string]*Batch)
		suppliers[product.Supplier] = expiries
	}
	expiries[expiryKey] = batch
	w.byID[batch.ID] = batch

	return batch.ID, nil
}

// GetBatch resolves an exact (product name, supplier, expiry date) key
// in the structured index. The not-found error says which level of the
// key path was missing.
func (w *Warehouse) GetBatch(productName, supplier, expiryDate string) (*Batch, error) {
	suppliers, ok := w.byProduct[productName]
	if !ok {
		return nil, NewProductNotFoundError(productName)
	}
	expiries, ok := suppliers[supplier]
	if !ok {
		return nil, NewSupplierNotFoundError(productName, supplier)
	}
	batch, ok := expiries[expiryDate]
	if !ok {
		return nil, NewBatchNotFoundError(productName, supplier, expiryDate)
	}
	return batch, nil
}

// GetBatchByID resolves a batch by its numeric id.
func (w *Warehouse) GetBatchByID(batchID int64) (*Batch, error) {
	batch, ok := w.byID[batchID]
	if !ok {
		return nil, NewBatchIDNotFoundError(batchID)
	}
	return batch, nil
}

// GetBatchInventory resolves a batch and returns its summary.
func (w *Warehouse) GetBatchInventory(batchID int64) (*BatchInventoryResponse, error) {
	batch, err := w.GetBatchByID(batchID)
	if err != nil {
		return nil, err
	}
	summary := batch.ToInventoryResponse()
	return &summary, nil
}

// UpdateBatchStockCount resolves a batch and corrects its original
// stock count. Batch-level invalid-input errors propagate unchanged.
func (w *Warehouse) UpdateBatchStockCount(batchID int64, newCount int) error {
	batch, err := w.GetBatchByID(batchID)
	if err != nil {
		return err
	}
	return batch.UpdateTotalStockCount(newCount)
}

// GetProductInventory resolves a product id and returns one summary per
// batch carried under that product's name, across all suppliers.
func (w *Warehouse) GetProductInventory(productID int64) ([]ProductBatchResponse, error) {
	product, ok := w.productsByID[productID]
	if !ok {
		return nil, NewProductIDNotFoundError(productID)
	}

	entries := []ProductBatchResponse{}
	for _, expiries := range w.byProduct[product.ProductName] {
		for _, batch := range expiries {
			entries = append(entries, ProductBatchResponse{
				BatchID:        batch.ID,
				ProductName:    batch.Product.ProductName,
				ProductID:      productID,
				RemainingUnits: batch.RemainingUnits,
			})
		}
	}
	return entries, nil
}

// GetFreshness evaluates the freshness of every batch and accumulates
// units per category, grouped by product name: remaining units for
// FRESH and EXPIRING batches, undelivered (spoiled) units for EXPIRED
// ones.
//
// This is a read WITH side effects: evaluation can expire batches,
// zeroing their stock and appending to their logs. Callers that must
// not mutate should iterate Batch.Freshness() themselves.
func (w *Warehouse) GetFreshness() map[string]map[Freshness]int {
	report := make(map[string]map[Freshness]int)
	for productName := range w.byProduct {
		report[productName] = w.freshnessByProduct(productName)
	}
	return report
}

// GetProductFreshness is GetFreshness restricted to one product name.
func (w *Warehouse) GetProductFreshness(productName string) (map[Freshness]int, error) {
	if _, ok := w.byProduct[productName]; !ok {
		return nil, NewProductNotFoundError(productName)
	}
	return w.freshnessByProduct(productName), nil
}

func (w *Warehouse) freshnessByProduct(productName string) map[Freshness]int {
	totals := make(map[Freshness]int)
	for _, expiries := range w.byProduct[productName] {
		for _, batch := range expiries {
			freshness := batch.EvaluateFreshness()
			units := batch.RemainingUnits
			if freshness == FreshnessExpired {
				// Remaining is always 0 once expired; the number that
				// matters is the stock lost to expiry.
				units = batch.TotalStockCount - batch.DeliveredUnits
			}
			totals[freshness] += units
		}
	}
	return totals
}

// GetProducts returns every batch's (id, remaining units) grouped by
// product name, for an at-a-glance inventory view.
func (w *Warehouse) GetProducts() map[string][]BatchStockResponse {
	view := make(map[string][]BatchStockResponse)
	for productName, suppliers := range w.byProduct {
		for _, expiries := range suppliers {
			for _, batch := range expiries {
				view[productName] = append(view[productName], BatchStockResponse{
					BatchID:        batch.ID,
					RemainingUnits: batch.RemainingUnits,
				})
			}
		}
	}
	return view
}

// ProductID resolves the sequential id of a registered product.
func (w *Warehouse) ProductID(product Product) (int64, bool) {
	id, ok := w.productIDs[product]
	return id, ok
}
