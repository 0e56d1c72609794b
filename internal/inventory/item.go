// Package inventory is a file-backed stand-in for the upstream paged listing of
// warehouse stock. It loads inventory records, filters and sorts them, and slices
// them into pages that report their position the way the listing API does.
package inventory

import (
	"fmt"
	"strings"
	"time"
)

// Status is the stock state of an item.
type Status string

// Known item statuses.
const (
	StatusInStock    Status = "in_stock"
	StatusLowStock   Status = "low_stock"
	StatusOutOfStock Status = "out_of_stock"
	StatusInTransit  Status = "in_transit"
)

// ParseStatus normalizes s ("In Stock", "in-stock", "IN_STOCK") into a Status.
func ParseStatus(s string) (Status, error) {
	norm := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch Status(norm) {
	case StatusInStock, StatusLowStock, StatusOutOfStock, StatusInTransit:
		return Status(norm), nil
	default:
		return "", fmt.Errorf("unknown item status %q", s)
	}
}

// Item is one stock record of one warehouse.
type Item struct {
	SKU       string    `json:"sku"                 yaml:"sku"`
	Name      string    `json:"name"                yaml:"name"`
	Warehouse string    `json:"warehouse"           yaml:"warehouse"`
	Quantity  int       `json:"quantity"            yaml:"quantity"`
	Unit      string    `json:"unit,omitempty"      yaml:"unit,omitempty"`
	Status    Status    `json:"status"              yaml:"status"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
}

// Filter selects items by warehouse and status. Empty fields match everything.
type Filter struct {
	Warehouse string
	Status    Status
}

// Match reports whether item passes the filter. Warehouse comparison ignores case.
func (f Filter) Match(item Item) bool {
	if f.Warehouse != "" && !strings.EqualFold(f.Warehouse, item.Warehouse) {
		return false
	}
	if f.Status != "" && f.Status != item.Status {
		return false
	}
	return true
}

// Apply returns the items that pass the filter, preserving order.
func (f Filter) Apply(items []Item) []Item {
	if f == (Filter{}) {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}
