package pagerange

// Source is an upstream paged listing that can describe its position.
type Source interface {
	PaginationState(delta int) State
}

// ListingPage is the page position reported by a paged listing response.
type ListingPage struct {
	TotalPages int `json:"totalPages" yaml:"total_pages"`
	PageNumber int `json:"pageNumber" yaml:"page_number"`
}

// PaginationState implements Source.
func (p ListingPage) PaginationState(delta int) State {
	s := NewState(p.PageNumber, p.TotalPages)
	s.Delta = delta
	return s.Normalize()
}

// SearchPagination is the page position reported by a search-index connector.
// CurrentRefinement is the 1-based page currently applied to the search.
type SearchPagination struct {
	NbPages           int `json:"nbPages"           yaml:"nb_pages"`
	CurrentRefinement int `json:"currentRefinement" yaml:"current_refinement"`
}

// PaginationState implements Source.
func (p SearchPagination) PaginationState(delta int) State {
	s := NewState(p.CurrentRefinement, p.NbPages)
	s.Delta = delta
	return s.Normalize()
}

// NavigatorFor returns a Navigator positioned where src currently is.
func NavigatorFor(src Source, delta int, opts ...Option) *Navigator {
	return NewNavigator(src.PaginationState(delta), opts...)
}
