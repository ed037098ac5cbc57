package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshstock-backend/internal/domains/inventory/model"
)

func newTestService() ServiceInterface {
	return NewServiceWithWarehouse(model.NewWarehouseWithClock(func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}))
}

func TestCreateBatchValidatesRequest(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateBatch(ctx, model.CreateBatchRequest{
		ProductName:     "",
		Supplier:        "LILYs",
		TotalStockCount: 100,
		ExpiryDate:      "2026-06-01",
	})
	require.Error(t, err)
	assert.True(t, model.IsInvalidInputError(err))

	_, err = svc.CreateBatch(ctx, model.CreateBatchRequest{
		ProductName:     "Chicken Satay",
		Supplier:        "LILYs",
		TotalStockCount: 100,
		ExpiryDate:      "2026-13-40",
	})
	require.Error(t, err)
	assert.True(t, model.IsInvalidInputError(err))
}

func TestCreateAndQueryThroughService(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateBatch(ctx, model.CreateBatchRequest{
		ProductName:     "Chicken Satay",
		Supplier:        "LILYs",
		TotalStockCount: 1000,
		ExpiryDate:      "2026-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), created.BatchID)

	delivered, err := svc.DeliverUnits(ctx, created.BatchID, model.UnitsRequest{Units: 200})
	require.NoError(t, err)
	assert.Equal(t, 800, delivered.RemainingUnits)

	logRes, err := svc.GetBatchLog(ctx, created.BatchID)
	require.NoError(t, err)
	assert.Len(t, logRes.Entries, 2)

	products, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products["Chicken Satay"], 1)
}

func TestConcurrentMutationsAreSerialized(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateBatch(ctx, model.CreateBatchRequest{
		ProductName:     "Chicken Satay",
		Supplier:        "LILYs",
		TotalStockCount: 1000,
		ExpiryDate:      "2026-06-01",
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.DeliverUnits(ctx, created.BatchID, model.UnitsRequest{Units: 5})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	res, err := svc.GetBatchInventory(ctx, created.BatchID)
	require.NoError(t, err)
	assert.Equal(t, 500, res.RemainingUnits)
}
