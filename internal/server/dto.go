package server

import (
	"github.com/stockroom/pagenav/internal/cli/pagination"
	"github.com/stockroom/pagenav/internal/inventory"
	"github.com/stockroom/pagenav/internal/pagerange"
)

// RangeQuery selects the pagination controls to compute. Delta is capped so a
// response holds at most 2*delta+5 tokens whatever the total.
type RangeQuery struct {
	Current int  `form:"current" binding:"required,min=1"`
	Total   int  `form:"total"   binding:"min=0"`
	Delta   *int `form:"delta"   binding:"omitempty,min=0,max=1000"`
}

// ChangeRequest asks to move from Current to Requested. Requested is unconstrained;
// out-of-range requests are answered, not refused.
type ChangeRequest struct {
	Current   int `json:"current"   binding:"required,min=1"`
	Requested int `json:"requested"`
	Total     int `json:"total"     binding:"min=0"`
}

// ChangeResponse is the outcome of a ChangeRequest. Rejected requests report the
// unchanged current page.
type ChangeResponse = pagerange.Outcome

// ItemsQuery selects one page of the inventory listing.
type ItemsQuery struct {
	Page      int    `form:"page"      binding:"omitempty,min=1"`
	PageSize  int    `form:"pageSize"  binding:"omitempty,min=1,max=1000"`
	Delta     *int   `form:"delta"     binding:"omitempty,min=0,max=1000"`
	Sort      string `form:"sort"      binding:"omitempty,sortexpr"`
	Warehouse string `form:"warehouse"`
	Status    string `form:"status"    binding:"omitempty,itemstatus"`
}

// ItemsResponse is one page of items plus its pagination metadata.
type ItemsResponse struct {
	Data       []inventory.Item          `json:"data"`
	Pagination pagination.PaginationMeta `json:"pagination"`
}
