package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"freshstock-backend/internal/config"
	"freshstock-backend/internal/domains/inventory/model"

	inventoryHandler "freshstock-backend/internal/domains/inventory/handler"
	inventoryService "freshstock-backend/internal/domains/inventory/service"
)

// Container holds all application dependencies. Everything in it is a
// singleton living for the process lifetime: config, one warehouse-backed
// inventory service, and the HTTP handler on top of it.
type Container struct {
	Config *config.Config

	InventoryService inventoryService.ServiceInterface
	InventoryHandler *inventoryHandler.Handler
}

// NewContainer builds the dependency graph: config first, then the
// service layer, then the handlers on top of it.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	c := &Container{Config: cfg}

	c.InventoryService = inventoryService.NewService()
	c.InventoryHandler = inventoryHandler.NewHandler(c.InventoryService)

	if cfg.App.SeedDemo {
		seedDemoWarehouse(c.InventoryService)
	}

	return c, nil
}

// seedDemoWarehouse loads the canonical demo batches: two fresh lines
// and one that arrives already expired.
func seedDemoWarehouse(svc inventoryService.ServiceInterface) {
	ctx := context.Background()
	now := time.Now()

	seeds := []model.CreateBatchRequest{
		{ProductName: "Chicken Satay", Supplier: "LILYs", TotalStockCount: 1000, ExpiryDate: now.AddDate(0, 2, 0).Format(model.DateFormat)},
		{ProductName: "Pasta Pesto", Supplier: "Don Leone", TotalStockCount: 200, ExpiryDate: now.AddDate(0, 2, 9).Format(model.DateFormat)},
		{ProductName: "Ramen", Supplier: "IKOO", TotalStockCount: 500, ExpiryDate: now.AddDate(0, -1, 0).Format(model.DateFormat)},
	}

	for _, seed := range seeds {
		if _, err := svc.CreateBatch(ctx, seed); err != nil {
			log.Error().Err(err).Str("product", seed.ProductName).Msg("failed to seed demo batch")
		}
	}

	log.Info().Int("batches", len(seeds)).Msg("demo warehouse seeded")
}
