package pagination

import (
	"github.com/stockroom/pagenav/internal/pagerange"
)

// PaginationMeta contains metadata about paginated results.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int               `json:"current_page" yaml:"current_page"`
	PageSize    int               `json:"page_size"    yaml:"page_size"`
	TotalPages  int               `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int               `json:"total_items"  yaml:"total_items"`
	HasPrevious bool              `json:"has_previous" yaml:"has_previous"`
	HasNext     bool              `json:"has_next"     yaml:"has_next"`
	Tokens      []pagerange.Token `json:"tokens"       yaml:"tokens"`
}

// NewPaginationMeta creates pagination metadata from parameters and total count.
// The current page is clamped into the existing pages, matching how listings
// answer requests past the end.
func NewPaginationMeta(params PaginationParams, totalCount int) PaginationMeta {
	totalPages := params.CalculateTotalPages(totalCount)

	state := pagerange.State{
		TotalPages:  totalPages,
		CurrentPage: params.Page,
		Delta:       params.Delta,
		StartAt:     pagerange.DefaultStartAt,
	}.Normalize()

	return PaginationMeta{
		CurrentPage: state.CurrentPage,
		PageSize:    params.PageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: state.HasPrevious(),
		HasNext:     state.HasNext(),
		Tokens:      pagerange.ComputeRange(state.CurrentPage, state.TotalPages, state.Delta),
	}
}
