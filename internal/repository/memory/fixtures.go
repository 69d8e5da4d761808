// internal/repository/memory/fixtures.go
package memory

import (
	"context"
	"time"

	"github.com/warelens/backend-go/internal/domain"
)

// NewDemoStore returns a Store preloaded with the demo catalog and 12 weeks
// of synthetic demand. Used when the durable store is unreachable so the
// dashboard keeps serving with identical semantics.
func NewDemoStore(now time.Time) *Store {
	s := NewStore()
	ctx := context.Background()

	catalog := []struct {
		item    domain.InventoryItem
		perWeek int
	}{
		{domain.InventoryItem{Name: "USB-C Cable", SKU: "CBL-USBC-2M", CurrentStock: 45, ReorderPoint: 60, SafetyStock: 20, UnitCost: 3.50, LeadTimeDays: 14, Category: "Cables", Supplier: "Shenzen Cables Co"}, 12},
		{domain.InventoryItem{Name: "Bluetooth Speaker", SKU: "SPK-BT-MINI", CurrentStock: 234, ReorderPoint: 100, SafetyStock: 40, UnitCost: 18.90, LeadTimeDays: 30, Category: "Audio", Supplier: "SoundWorks Ltd"}, 3},
		{domain.InventoryItem{Name: "Wireless Mouse", SKU: "MSE-WL-BLK", CurrentStock: 160, ReorderPoint: 80, SafetyStock: 30, UnitCost: 7.25, LeadTimeDays: 21, Category: "Peripherals", Supplier: "ClickTech"}, 18},
		{domain.InventoryItem{Name: "HDMI Cable", SKU: "CBL-HDMI-1M", CurrentStock: 310, ReorderPoint: 120, SafetyStock: 50, UnitCost: 2.10, LeadTimeDays: 10, Category: "Cables", Supplier: "Shenzen Cables Co"}, 25},
		{domain.InventoryItem{Name: "Laptop Stand", SKU: "STD-ALU-15", CurrentStock: 58, ReorderPoint: 30, SafetyStock: 10, UnitCost: 12.40, LeadTimeDays: 25, Category: "Accessories", Supplier: "DeskGear"}, 6},
	}

	for _, entry := range catalog {
		item := entry.item
		_ = s.CreateItem(ctx, &item)

		var records []domain.DemandRecord
		for week := 1; week <= 12; week++ {
			records = append(records, domain.DemandRecord{
				ItemID:   item.ID,
				Date:     now.AddDate(0, 0, -7*week),
				Quantity: entry.perWeek,
			})
		}
		_ = s.AppendDemand(ctx, records)
	}

	return s
}
