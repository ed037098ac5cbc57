package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshstock-backend/internal/domains/inventory/model"
	"freshstock-backend/internal/domains/inventory/service"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string      `json:"message"`
		Details interface{} `json:"details"`
	} `json:"error"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	warehouse := model.NewWarehouseWithClock(func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	})
	h := NewHandler(service.NewServiceWithWarehouse(warehouse))

	router := gin.New()
	router.GET("/warehouse", h.GetProducts)
	router.GET("/freshness", h.GetFreshness)
	router.GET("/product/:id", h.GetProductInventory)
	router.GET("/batch_log/:id", h.GetBatchLog)
	router.POST("/batch", h.CreateBatch)
	router.GET("/batch/:id", h.GetBatchInventory)
	router.PUT("/batch/:id", h.UpdateBatchStockCount)
	router.POST("/batch/:id/deliver", h.DeliverUnits)
	router.POST("/batch/:id/waste", h.WasteUnits)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func createBatch(t *testing.T, router *gin.Engine, name, supplier string, count int, expiry string) model.BatchInventoryResponse {
	t.Helper()

	rec, env := doJSON(t, router, http.MethodPost, "/batch", model.CreateBatchRequest{
		ProductName:     name,
		Supplier:        supplier,
		TotalStockCount: count,
		ExpiryDate:      expiry,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var res model.BatchInventoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	return res
}

func TestCreateBatch(t *testing.T) {
	router := newTestRouter()

	res := createBatch(t, router, "Chicken Satay", "LILYs", 1000, "2026-06-01")
	assert.Equal(t, int64(0), res.BatchID)
	assert.Equal(t, "Chicken Satay", res.ProductName)
	assert.Equal(t, 1000, res.RemainingUnits)
	assert.Equal(t, "2026-06-01", res.ExpiryDate)

	// Ids are sequential.
	res = createBatch(t, router, "Pasta Pesto", "Don Leone", 200, "2026-06-10")
	assert.Equal(t, int64(1), res.BatchID)
}

func TestCreateBatchInvalidBody(t *testing.T) {
	router := newTestRouter()

	rec, env := doJSON(t, router, http.MethodPost, "/batch", model.CreateBatchRequest{
		ProductName:     "Chicken Satay",
		Supplier:        "LILYs",
		TotalStockCount: 100,
		ExpiryDate:      "junk",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)

	rec, _ = doJSON(t, router, http.MethodPost, "/batch", map[string]interface{}{"supplier": "LILYs"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBatchInventory(t *testing.T) {
	router := newTestRouter()
	created := createBatch(t, router, "Chicken Satay", "LILYs", 1000, "2026-06-01")

	rec, env := doJSON(t, router, http.MethodGet, "/batch/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.BatchInventoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, created, res)
}

func TestGetBatchInventoryNotFound(t *testing.T) {
	router := newTestRouter()

	rec, env := doJSON(t, router, http.MethodGet, "/batch/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)

	rec, _ = doJSON(t, router, http.MethodGet, "/batch/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNegativeIDsAnswerNotFound(t *testing.T) {
	router := newTestRouter()
	createBatch(t, router, "Chicken Satay", "LILYs", 1000, "2026-06-01")

	rec, env := doJSON(t, router, http.MethodGet, "/batch/-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)

	rec, _ = doJSON(t, router, http.MethodGet, "/product/-5", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/batch_log/-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBatchStockCount(t *testing.T) {
	router := newTestRouter()
	createBatch(t, router, "Chicken Satay", "LILYs", 1000, "2026-06-01")

	rec, env := doJSON(t, router, http.MethodPut, "/batch/0", model.UpdateStockCountRequest{NewStockCount: 1500})
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.BatchInventoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 1500, res.RemainingUnits)
}

func TestUpdateBatchStockCountBelowDelivered(t *testing.T) {
	router := newTestRouter()
	createBatch(t, router, "Chicken Satay", "LILYs", 1000, "2026-06-01")

	rec, _ := doJSON(t, router, http.MethodPost, "/batch/0/deliver", model.UnitsRequest{Units: 400})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doJSON(t, router, http.MethodPut, "/batch/0", model.UpdateStockCountRequest{NewStockCount: 300})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)

	rec, env = doJSON(t, router, http.MethodPut, "/batch/42", model.UpdateStockCountRequest{NewStockCount: 300})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestDeliverUnits(t *testing.T) {
	router := newTestRouter()
	createBatch(t, router, "Chicken Satay", "LILYs", 1000, "2026-06-01")

	rec, env := doJSON(t, router, http.MethodPost, "/batch/0/deliver", model.UnitsRequest{Units: 200})
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.BatchInventoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 800, res.RemainingUnits)
}

func TestDeliverUnitsInsufficientStock(t *testing.T) {
	router := newTestRouter()
	createBatch(t, router, "Chicken Satay", "LILYs", 100, "2026-06-01")

	rec, env := doJSON(t, router, http.MethodPost, "/batch/0/deliver", model.UnitsRequest{Units: 500})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)

	// The failed delivery left the batch untouched.
	rec, env = doJSON(t, router, http.MethodGet, "/batch/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var res model.BatchInventoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 100, res.RemainingUnits)
}

func TestWasteUnits(t *testing.T) {
	router := newTestRouter()
	createBatch(t, router, "Chicken Satay", "LILYs", 1000, "2026-06-01")

	rec, env := doJSON(t, router, http.MethodPost, "/batch/0/waste", model.UnitsRequest{Units: 300})
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.BatchInventoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 700, res.RemainingUnits)
}

func TestGetBatchLog(t *testing.T) {
	router := newTestRouter()
	createBatch(t, router, "Chicken Satay", "LILYs", 1000, "2026-06-01")

	rec, _ := doJSON(t, router, http.MethodPost, "/batch/0/deliver", model.UnitsRequest{Units: 200})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doJSON(t, router, http.MethodGet, "/batch_log/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.BatchLogResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "NEW BATCH ADDED", res.Entries[0].Comment)
	assert.Equal(t, "200 units DELIVERED", res.Entries[1].Comment)

	rec, _ = doJSON(t, router, http.MethodGet, "/batch_log/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductInventory(t *testing.T) {
	router := newTestRouter()
	createBatch(t, router, "Chicken Satay", "LILYs", 1000, "2026-06-01")
	createBatch(t, router, "Chicken Satay", "LILYs", 400, "2026-07-01")

	rec, env := doJSON(t, router, http.MethodGet, "/product/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res []model.ProductBatchResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Len(t, res, 2)

	rec, _ = doJSON(t, router, http.MethodGet, "/product/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFreshness(t *testing.T) {
	router := newTestRouter()
	createBatch(t, router, "Chicken Satay", "LILYs", 1000, "2026-06-01")
	createBatch(t, router, "Pasta Pesto", "Don Leone", 200, "2026-06-10")
	createBatch(t, router, "Ramen", "IKOO", 500, "2026-01-05")

	rec, env := doJSON(t, router, http.MethodGet, "/freshness", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]map[model.Freshness]int
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, map[model.Freshness]int{model.FreshnessFresh: 1000}, res["Chicken Satay"])
	assert.Equal(t, map[model.Freshness]int{model.FreshnessFresh: 200}, res["Pasta Pesto"])
	assert.Equal(t, map[model.Freshness]int{model.FreshnessExpired: 500}, res["Ramen"])
}

func TestGetProducts(t *testing.T) {
	router := newTestRouter()
	createBatch(t, router, "Chicken Satay", "LILYs", 1000, "2026-06-01")
	createBatch(t, router, "Pasta Pesto", "Don Leone", 200, "2026-06-10")

	rec, env := doJSON(t, router, http.MethodGet, "/warehouse", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string][]model.BatchStockResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Len(t, res, 2)
	assert.Equal(t, []model.BatchStockResponse{{BatchID: 0, RemainingUnits: 1000}}, res["Chicken Satay"])
	assert.Equal(t, []model.BatchStockResponse{{BatchID: 1, RemainingUnits: 200}}, res["Pasta Pesto"])
}
