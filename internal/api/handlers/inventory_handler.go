// internal/api/handlers/inventory_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/warelens/backend-go/internal/domain"
	"github.com/warelens/backend-go/internal/service"
)

type InventoryHandler struct {
	service *service.InventoryService
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type createItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	SKU          string  `json:"sku" binding:"required"`
	CurrentStock int     `json:"current_stock"`
	ReorderPoint int     `json:"reorder_point"`
	SafetyStock  int     `json:"safety_stock"`
	UnitCost     float64 `json:"unit_cost"`
	LeadTimeDays int     `json:"lead_time_days"`
	Category     string  `json:"category"`
	Supplier     string  `json:"supplier"`
}

type updateStockRequest struct {
	CurrentStock *int `json:"current_stock" binding:"required"`
}

type demandRecordRequest struct {
	Date     string `json:"date" binding:"required"`
	Quantity int    `json:"quantity"`
}

func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.service.Items(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.service.ItemByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	item := domain.InventoryItem{
		Name:         req.Name,
		SKU:          req.SKU,
		CurrentStock: req.CurrentStock,
		ReorderPoint: req.ReorderPoint,
		SafetyStock:  req.SafetyStock,
		UnitCost:     req.UnitCost,
		LeadTimeDays: req.LeadTimeDays,
		Category:     req.Category,
		Supplier:     req.Supplier,
	}

	if err := h.service.CreateItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentStock == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_stock is required"})
		return
	}

	if err := h.service.UpdateStock(c.Request.Context(), id, *req.CurrentStock); err != nil {
		respondError(c, err)
		return
	}

	item, err := h.service.ItemByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) History(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	records, err := h.service.DemandHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"total":   len(records),
	})
}

// AppendDemand records observed demand for one item. Dates are YYYY-MM-DD.
func (h *InventoryHandler) AppendDemand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var reqs []demandRecordRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	records := make([]domain.DemandRecord, 0, len(reqs))
	for _, r := range reqs {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD", "details": r.Date})
			return
		}
		records = append(records, domain.DemandRecord{ItemID: id, Date: date, Quantity: r.Quantity})
	}

	if err := h.service.AppendDemand(c.Request.Context(), records); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appended": len(records)})
}
