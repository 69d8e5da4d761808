package domain

import "strings"

// Week statuses. A week is "order" when its projected stock breaches the
// reorder point, "low" only for the single week immediately before the first
// breach, and "enough" otherwise.
const (
	StatusEnough = "enough"
	StatusLow    = "low"
	StatusOrder  = "order"
)

// Order lifecycle statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusOrdered   = "ordered"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusOrdered:   true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

// ValidOrderStatus reports whether label is a known order status
// (case-insensitive).
func ValidOrderStatus(label string) bool {
	return orderStatuses[strings.ToLower(label)]
}
