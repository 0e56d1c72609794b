package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stockroom/pagenav/internal/cli/pagination"
	"github.com/stockroom/pagenav/internal/inventory"
	"github.com/stockroom/pagenav/internal/pagerange"
)

// ItemLister returns the inventory the API pages over.
type ItemLister interface {
	ListItems() []inventory.Item
}

// StaticLister serves a fixed slice of items.
type StaticLister []inventory.Item

// ListItems implements ItemLister.
func (s StaticLister) ListItems() []inventory.Item {
	return s
}

// PaginationController answers range and page-change requests.
type PaginationController struct {
	Delta int
}

// GetRange returns the Layout for the queried position.
func (pc *PaginationController) GetRange(c *gin.Context) {
	var q RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delta := pc.Delta
	if q.Delta != nil {
		delta = *q.Delta
	}

	state := pagerange.NewState(q.Current, q.Total)
	state.Delta = delta
	c.JSON(http.StatusOK, pagerange.Compute(state))
}

// ChangePage validates a page change. Rejections are a normal answer, not an error.
func (pc *PaginationController) ChangePage(c *gin.Context) {
	var req ChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, _, err := pagerange.Answer(req.Current, req.Requested, req.Total)
	if err != nil && !errors.Is(err, pagerange.ErrRejected) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ItemController pages over the inventory listing.
type ItemController struct {
	Lister   ItemLister
	Sorter   pagination.Sorter
	PageSize int
	Delta    int
	Logger   zerolog.Logger
}

// GetItems returns one page of the filtered, sorted listing.
func (ic *ItemController) GetItems(c *gin.Context) {
	var q ItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := pagination.PaginationParams{
		Page:      pagination.DefaultPage,
		PageSize:  ic.PageSize,
		Delta:     ic.Delta,
		SortOrder: pagination.DefaultSortOrder,
	}
	if q.Page > 0 {
		params.Page = q.Page
	}
	if q.PageSize > 0 {
		params.PageSize = q.PageSize
	}
	if q.Delta != nil {
		params.Delta = *q.Delta
	}
	if err := params.SetSort(q.Sort); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := inventory.Filter{Warehouse: q.Warehouse}
	if q.Status != "" {
		// Already checked by the itemstatus validator.
		filter.Status, _ = inventory.ParseStatus(q.Status)
	}

	items := filter.Apply(ic.Lister.ListItems())
	items = ic.Sorter.Sort(items, params.SortField, params.SortOrder)
	page := inventory.Paginate(items, params.Page, params.PageSize)

	ic.Logger.Debug().
		Int("page", page.PageNumber).
		Int("total_pages", page.TotalPages).
		Int("total_items", page.TotalItems).
		Msg("listing page served")

	data := page.Items
	if data == nil {
		data = []inventory.Item{}
	}

	c.JSON(http.StatusOK, ItemsResponse{
		Data:       data,
		Pagination: pagination.NewPaginationMeta(params, page.TotalItems),
	})
}
