package pagerange

// Defaults applied by NewState and Normalize.
const (
	DefaultDelta   = 3
	DefaultStartAt = 1
)

// firstPage is the page every non-empty range starts with.
const firstPage = 1

// State is the input of one compute cycle. It is a plain value: nothing is retained
// between calls, and the owner of the current page decides when it changes.
type State struct {
	TotalPages  int `json:"totalPages"  yaml:"total_pages"`
	CurrentPage int `json:"currentPage" yaml:"current_page"`
	Delta       int `json:"delta"       yaml:"delta"`
	StartAt     int `json:"startAt"     yaml:"start_at"`
}

// NewState returns a State with the default delta and start page.
func NewState(current, total int) State {
	return State{
		TotalPages:  total,
		CurrentPage: current,
		Delta:       DefaultDelta,
		StartAt:     DefaultStartAt,
	}
}

// Normalize returns a copy of s with a non-negative delta, a positive start page and
// the current page clamped into [StartAt, TotalPages].
func (s State) Normalize() State {
	if s.Delta < 0 {
		s.Delta = 0
	}
	if s.StartAt < firstPage {
		s.StartAt = DefaultStartAt
	}
	if s.TotalPages < 0 {
		s.TotalPages = 0
	}
	upper := s.TotalPages
	if upper < s.StartAt {
		upper = s.StartAt
	}
	s.CurrentPage = clamp(s.CurrentPage, s.StartAt, upper)
	return s
}

// HasPrevious reports whether the "previous" control is enabled.
func (s State) HasPrevious() bool {
	return s.CurrentPage > firstPage
}

// HasNext reports whether the "next" control is enabled.
func (s State) HasNext() bool {
	return s.CurrentPage < s.TotalPages
}

// ComputeRange returns the page tokens to render for the given position.
//
// Page 1 and page total always bracket the sequence. Between them sits the window
// [current-delta, current+delta] clipped to [2, total-1]; gaps of two or more pages
// on either side collapse into a single ellipsis. A gap of exactly one page (the
// window starting at 3 or ending at total-2) is filled with that page instead of
// being skipped, so the numbers shown never jump without an ellipsis between them.
// Collections with at most one page produce no tokens.
//
// The window is clipped before it is added to current: any delta is accepted and the
// result holds at most total tokens.
func ComputeRange(current, total, delta int) []Token {
	if total <= firstPage {
		return []Token{}
	}
	if delta < 0 {
		delta = 0
	}
	current = clamp(current, firstPage, total)

	lo := max(firstPage+1, current-delta)
	hi := current + min(delta, total-1-current)

	tokens := make([]Token, 0, max(hi-lo+1, 0)+4) //nolint:mnd // first, last and two edge slots
	tokens = append(tokens, PageNumber(firstPage))

	switch {
	case lo > firstPage+2:
		tokens = append(tokens, Ellipsis())
	case lo == firstPage+2:
		tokens = append(tokens, PageNumber(firstPage+1))
	}

	for i := lo; i <= hi; i++ {
		tokens = append(tokens, PageNumber(i))
	}

	switch {
	case hi < total-2:
		tokens = append(tokens, Ellipsis())
	case hi == total-2:
		tokens = append(tokens, PageNumber(total-1))
	}

	return append(tokens, PageNumber(total))
}

// Control is the state of a previous/next control.
type Control struct {
	Page    int  `json:"page"    yaml:"page"`
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Button is a token together with its render state.
type Button struct {
	Token `yaml:",inline"`

	Current  bool `json:"current"  yaml:"current"`
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// Layout is everything a UI needs to draw pagination controls for one state.
type Layout struct {
	CurrentPage int      `json:"currentPage" yaml:"current_page"`
	TotalPages  int      `json:"totalPages"  yaml:"total_pages"`
	Previous    Control  `json:"previous"    yaml:"previous"`
	Next        Control  `json:"next"        yaml:"next"`
	Tokens      []Button `json:"tokens"      yaml:"tokens"`
}

// Compute builds the Layout for s. The enabled flags are derived in the same pass as
// the token range, so a layout never mixes the controls of two different pages.
func Compute(s State) Layout {
	s = s.Normalize()

	tokens := ComputeRange(s.CurrentPage, s.TotalPages, s.Delta)
	buttons := make([]Button, len(tokens))
	for i, t := range tokens {
		current := !t.IsEllipsis() && t.Page == s.CurrentPage
		buttons[i] = Button{
			Token:    t,
			Current:  current,
			Disabled: current || t.IsEllipsis(),
		}
	}

	return Layout{
		CurrentPage: s.CurrentPage,
		TotalPages:  s.TotalPages,
		Previous:    Control{Page: s.CurrentPage - 1, Enabled: s.HasPrevious()},
		Next:        Control{Page: s.CurrentPage + 1, Enabled: s.HasNext()},
		Tokens:      buttons,
	}
}

// Pages returns the numeric tokens of the layout in order.
func (l Layout) Pages() []int {
	pages := make([]int, 0, len(l.Tokens))
	for _, b := range l.Tokens {
		if !b.IsEllipsis() {
			pages = append(pages, b.Page)
		}
	}
	return pages
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
