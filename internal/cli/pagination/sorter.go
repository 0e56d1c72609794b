package pagination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stockroom/pagenav/internal/inventory"
)

// Sorter defines the interface for sorting inventory items.
type Sorter interface {
	// Sort sorts items by the specified field and order.
	Sort(items []inventory.Item, field, order string) []inventory.Item
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns a list of valid field names for sorting.
	GetValidFields() []string
}

// ItemSorter implements Sorter for inventory.Item.
type ItemSorter struct {
	less map[string]func(a, b inventory.Item) bool
}

// NewItemSorter creates an ItemSorter with the supported sort fields.
func NewItemSorter() *ItemSorter {
	return &ItemSorter{
		less: map[string]func(a, b inventory.Item) bool{
			"sku":       func(a, b inventory.Item) bool { return a.SKU < b.SKU },
			"name":      func(a, b inventory.Item) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
			"warehouse": func(a, b inventory.Item) bool { return strings.ToLower(a.Warehouse) < strings.ToLower(b.Warehouse) },
			"quantity":  func(a, b inventory.Item) bool { return a.Quantity < b.Quantity },
			"status":    func(a, b inventory.Item) bool { return a.Status < b.Status },
			"updated":   func(a, b inventory.Item) bool { return a.UpdatedAt.Before(b.UpdatedAt) },
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *ItemSorter) IsValidField(field string) bool {
	_, ok := s.less[field]
	return ok
}

// GetValidFields returns all valid sort fields in alphabetical order.
func (s *ItemSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.less))
	for field := range s.less {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Validate returns ErrInvalidSortField when field is set but unknown.
func (s *ItemSorter) Validate(field string) error {
	if field == "" || s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
}

// Sort returns a sorted copy of items; the input is not modified.
// Unknown fields return the input unchanged. Equal elements keep their order.
func (s *ItemSorter) Sort(items []inventory.Item, field, order string) []inventory.Item {
	less, ok := s.less[field]
	if !ok {
		return items
	}

	sorted := make([]inventory.Item, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if order == SortOrderDesc {
			i, j = j, i
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}
