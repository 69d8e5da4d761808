// internal/domain/models.go
package domain

import "time"

// InventoryItem is a stocked warehouse item.
type InventoryItem struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	SKU          string    `json:"sku" db:"sku"`
	CurrentStock int       `json:"current_stock" db:"current_stock"`
	ReorderPoint int       `json:"reorder_point" db:"reorder_point"`
	SafetyStock  int       `json:"safety_stock" db:"safety_stock"`
	UnitCost     float64   `json:"unit_cost" db:"unit_cost"`
	LeadTimeDays int       `json:"lead_time_days" db:"lead_time_days"`
	Category     string    `json:"category" db:"category"`
	Supplier     string    `json:"supplier" db:"supplier"`
	LastUpdated  time.Time `json:"last_updated" db:"last_updated"`
}

// DemandRecord is one day of observed demand for an item. Records are
// append-only; history is never rewritten.
type DemandRecord struct {
	ID       int64     `json:"id" db:"id"`
	ItemID   int64     `json:"item_id" db:"item_id"`
	Date     time.Time `json:"date" db:"date"`
	Quantity int       `json:"quantity" db:"quantity"`
}

// Order is a purchase order against an item.
type Order struct {
	ID                   int64      `json:"id" db:"id"`
	ItemID               int64      `json:"item_id" db:"item_id"`
	Quantity             int        `json:"quantity" db:"quantity"`
	Status               string     `json:"status" db:"status"`
	OrderDate            time.Time  `json:"order_date" db:"order_date"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date" db:"expected_delivery_date"`
	Cost                 float64    `json:"cost" db:"cost"`
}

// WeekStatus is one week of the projected stock timeline. Week is the
// display numbering (1..12); Offset keeps the relative numbering, -4..-1
// for the reconstructed historical weeks and 0..7 for the future ones.
type WeekStatus struct {
	Week             int       `json:"week"`
	Offset           int       `json:"offset"`
	WeekStart        time.Time `json:"week_start"`
	WeekEnd          time.Time `json:"week_end"`
	ProjectedStock   int       `json:"projected_stock"`
	ForecastedDemand int       `json:"forecasted_demand"`
	IsHistorical     bool      `json:"is_historical"`
	Status           string    `json:"status"`
}

// ItemForecast is the full forecast result for one item: the demand
// statistics, the 8-week forecast, the classified 12-week timeline and the
// derived insights.
type ItemForecast struct {
	Item              InventoryItem `json:"item"`
	WeeklyDemand      float64       `json:"weekly_demand"`
	DemandVariability float64       `json:"demand_variability"`
	Forecast          []int         `json:"forecast"`
	StockStatus       []WeekStatus  `json:"stock_status"`
	Insights          []string      `json:"insights"`
}

// DashboardMetrics summarizes the inventory set for the dashboard header.
type DashboardMetrics struct {
	TotalItems    int `json:"total_items"`
	LowStockItems int `json:"low_stock_items"`
	UrgentItems   int `json:"urgent_items"`
	PendingOrders int `json:"pending_orders"`
}
