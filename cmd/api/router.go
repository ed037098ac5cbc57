package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freshstock-backend/internal/shared/middleware"
	"freshstock-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupInventoryRoutes(router, c)

	return router
}

// ========================================
// INVENTORY ROUTES
// ========================================
func setupInventoryRoutes(router *gin.Engine, c *container.Container) {
	h := c.InventoryHandler

	router.GET("/warehouse", h.GetProducts)
	router.GET("/freshness", h.GetFreshness)
	router.GET("/product/:id", h.GetProductInventory)
	router.GET("/batch_log/:id", h.GetBatchLog)

	batch := router.Group("/batch")
	{
		batch.POST("", h.CreateBatch)
		batch.GET("/:id", h.GetBatchInventory)
		batch.PUT("/:id", h.UpdateBatchStockCount)
		batch.POST("/:id/deliver", h.DeliverUnits)
		batch.POST("/:id/waste", h.WasteUnits)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"name":        c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}
