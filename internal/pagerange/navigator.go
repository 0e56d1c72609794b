package pagerange

// ChangeFunc is notified with the page being left and the page requested.
type ChangeFunc func(current, requested int)

// RefineFunc asks the upstream source for a page. Callers translate it into a
// navigation, a listing fetch or a search-index refinement.
type RefineFunc func(page int)

// Option configures a Navigator.
type Option func(*Navigator)

// WithOnNext registers the callback fired for forward moves.
func WithOnNext(fn ChangeFunc) Option {
	return func(n *Navigator) { n.onNext = fn }
}

// WithOnPrevious registers the callback fired for backward moves.
func WithOnPrevious(fn ChangeFunc) Option {
	return func(n *Navigator) { n.onPrevious = fn }
}

// WithRefine registers the generic page-change callback.
func WithRefine(fn RefineFunc) Option {
	return func(n *Navigator) { n.refine = fn }
}

// Navigator owns the current page of one pagination control.
//
// Every move goes through RequestPageChange. An accepted move fires the direction
// callback, then the refine callback, and only then adopts the new page, so callbacks
// observe the page being left as the navigator's current page. Rejected moves fire
// nothing. A Navigator is not safe for concurrent use.
type Navigator struct {
	state      State
	onNext     ChangeFunc
	onPrevious ChangeFunc
	refine     RefineFunc
}

// NewNavigator returns a Navigator starting at the normalized state s.
func NewNavigator(s State, opts ...Option) *Navigator {
	n := &Navigator{state: s.Normalize()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// State returns the current state.
func (n *Navigator) State() State {
	return n.state
}

// Current returns the current page.
func (n *Navigator) Current() int {
	return n.state.CurrentPage
}

// Layout computes the controls for the current state.
func (n *Navigator) Layout() Layout {
	return Compute(n.state)
}

// GoTo moves to page and reports whether the move was accepted.
func (n *Navigator) GoTo(page int) bool {
	tr, err := RequestPageChange(n.state.CurrentPage, page, n.state.TotalPages)
	if err != nil {
		// ErrRejected is the only error; rejections are silent.
		return false
	}

	switch tr.Direction {
	case Next:
		if n.onNext != nil {
			n.onNext(tr.From, tr.NewPage)
		}
	case Previous:
		if n.onPrevious != nil {
			n.onPrevious(tr.From, tr.NewPage)
		}
	}
	if n.refine != nil {
		n.refine(tr.NewPage)
	}

	n.state.CurrentPage = tr.NewPage
	return true
}

// Next moves one page forward.
func (n *Navigator) Next() bool {
	return n.GoTo(n.state.CurrentPage + 1)
}

// Previous moves one page back.
func (n *Navigator) Previous() bool {
	return n.GoTo(n.state.CurrentPage - 1)
}

// First moves to page 1.
func (n *Navigator) First() bool {
	return n.GoTo(firstPage)
}

// Last moves to the last page.
func (n *Navigator) Last() bool {
	return n.GoTo(n.state.TotalPages)
}

// SetTotalPages replaces the page count after the upstream listing changed size.
// The current page is clamped silently; no callbacks fire.
func (n *Navigator) SetTotalPages(total int) {
	n.state.TotalPages = total
	n.state = n.state.Normalize()
}
