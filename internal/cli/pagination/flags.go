package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stockroom/pagenav/internal/pagerange"
)

// Defaults and validation limits.
const (
	DefaultPage      = 1
	MinPage          = 1
	DefaultPageSize  = 20
	MinPageSize      = 1
	MaxPageSize      = 1000
	DefaultDelta     = pagerange.DefaultDelta
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = errors.New("page-size must be between 1 and 1000")
	ErrInvalidDelta      = errors.New("delta must be >= 0")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'quantity:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// PaginationParams holds the page selection, window size and sort order of a listing request.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of items per page.
	PageSize int

	// Delta is the number of sibling pages shown on each side of the current page.
	Delta int

	// SortField is the item field to sort by (e.g., "quantity", "sku").
	SortField string

	// SortOrder is the sort direction: "asc" or "desc".
	SortOrder string
}

// NewPaginationParams creates a PaginationParams with default values.
func NewPaginationParams() *PaginationParams {
	return &PaginationParams{
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
		Delta:     DefaultDelta,
		SortField: DefaultSortField,
		SortOrder: DefaultSortOrder,
	}
}

// Validate checks that the parameters are within bounds.
func (p PaginationParams) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Delta < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDelta, p.Delta)
	}
	if p.SortOrder != SortOrderAsc && p.SortOrder != SortOrderDesc {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, p.SortOrder)
	}
	return nil
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "quantity", "quantity:desc", "sku:asc".
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// SetSort parses sortStr into the params.
func (p *PaginationParams) SetSort(sortStr string) error {
	field, order, err := ParseSort(sortStr)
	if err != nil {
		return err
	}
	p.SortField = field
	p.SortOrder = order
	return nil
}

// Offset returns the index of the first item of the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// CalculateTotalPages calculates the number of pages needed for totalItems.
func (p PaginationParams) CalculateTotalPages(totalItems int) int {
	if totalItems <= 0 || p.PageSize <= 0 {
		return 0
	}
	return (totalItems + p.PageSize - 1) / p.PageSize
}

// FlagSet is the set of pagination flags bound to a command.
type FlagSet struct {
	params *PaginationParams
	sort   string
}

// BindFlags registers --page, --page-size, --delta and --sort on cmd, using the
// current values of params as defaults.
func BindFlags(cmd *cobra.Command, params *PaginationParams) *FlagSet {
	fs := &FlagSet{params: params}
	cmd.Flags().IntVar(&params.Page, "page", params.Page, "page number to show (1-based)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", params.PageSize, "number of items per page (1-1000)")
	cmd.Flags().IntVar(&params.Delta, "delta", params.Delta, "number of sibling pages shown next to the current page")
	cmd.Flags().StringVar(&fs.sort, "sort", "", "sort by field[:asc|desc] (e.g. quantity:desc)")
	return fs
}

// Resolve parses the bound --sort value and validates the params.
func (fs *FlagSet) Resolve() (PaginationParams, error) {
	if err := fs.params.SetSort(fs.sort); err != nil {
		return PaginationParams{}, err
	}
	if err := fs.params.Validate(); err != nil {
		return PaginationParams{}, err
	}
	return *fs.params, nil
}
