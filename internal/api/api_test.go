package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warelens/backend-go/internal/cache"
	"github.com/warelens/backend-go/internal/forecast"
	"github.com/warelens/backend-go/internal/repository/memory"
	"github.com/warelens/backend-go/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewDemoStore(time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC))
	noop := cache.NewNoopForecastCache()
	engine := forecast.NewEngine(forecast.DefaultOptions())

	forecasts := service.NewForecastService(store, engine, noop)
	services := &Services{
		Forecast:  forecasts,
		Inventory: service.NewInventoryService(store, noop),
		Orders:    service.NewOrderService(store, noop),
		Metrics:   service.NewMetricsService(forecasts, store),
		Store:     store,
	}
	return NewRouter(services, []string{"*"})
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestListInventory(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/inventory", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []struct {
			SKU string `json:"sku"`
		} `json:"items"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Items)
	assert.Equal(t, len(resp.Items), resp.Total)
}

func TestGetForecast(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/forecast/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Forecast    []int `json:"forecast"`
		StockStatus []struct {
			Week   int    `json:"week"`
			Status string `json:"status"`
		} `json:"stock_status"`
		Insights []string `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Forecast, 8)
	assert.Len(t, resp.StockStatus, 12)
	assert.NotEmpty(t, resp.Insights)
}

func TestGetForecast_UnknownItem(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/forecast/9999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateItemAndUpdateStock(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/v1/inventory",
		`{"name":"Desk Lamp","sku":"LMP-01","current_stock":30,"reorder_point":10,"unit_cost":12.5,"lead_time_days":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	rec = doRequest(router, http.MethodPut, "/api/v1/inventory/"+itoa(created.ID)+"/stock",
		`{"current_stock":55}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"current_stock":55`)

	rec = doRequest(router, http.MethodPut, "/api/v1/inventory/"+itoa(created.ID)+"/stock",
		`{"current_stock":-5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/v1/orders", `{"item_id":1,"quantity":100}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var order struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "pending", order.Status)

	rec = doRequest(router, http.MethodPut, "/api/v1/orders/"+itoa(order.ID)+"/status", `{"status":"ordered"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ordered"`)

	rec = doRequest(router, http.MethodPut, "/api/v1/orders/"+itoa(order.ID)+"/status", `{"status":"teleported"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/api/v1/orders/"+itoa(order.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/v1/orders/"+itoa(order.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardMetrics(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/dashboard/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var metrics struct {
		TotalItems  int `json:"total_items"`
		UrgentItems int `json:"urgent_items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics))
	assert.Positive(t, metrics.TotalItems)
	assert.Positive(t, metrics.UrgentItems)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
