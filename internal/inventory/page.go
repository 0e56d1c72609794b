package inventory

import "github.com/stockroom/pagenav/internal/pagerange"

// Page is one slice of a listing together with its position.
type Page struct {
	Items      []Item `json:"items"      yaml:"items"`
	PageNumber int    `json:"pageNumber" yaml:"page_number"`
	PageSize   int    `json:"pageSize"   yaml:"page_size"`
	TotalPages int    `json:"totalPages" yaml:"total_pages"`
	TotalItems int    `json:"totalItems" yaml:"total_items"`
}

// Paginate returns page number page (1-based) of items with pageSize items per page.
// Requests past the end are clamped to the last page and requests below 1 to the first,
// so the returned PageNumber is always a page that exists (or 1 for an empty listing).
func Paginate(items []Item, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	return Page{
		Items:      items[start:end],
		PageNumber: page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// Listing reports the page position in the listing-response shape.
func (p Page) Listing() pagerange.ListingPage {
	return pagerange.ListingPage{TotalPages: p.TotalPages, PageNumber: p.PageNumber}
}
