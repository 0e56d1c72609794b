package pagerange

import (
	"fmt"
	"strconv"
)

// Kind distinguishes numeric page tokens from ellipsis placeholders.
type Kind int

const (
	// KindPage is a concrete, clickable page number.
	KindPage Kind = iota
	// KindEllipsis is an inert placeholder for a run of hidden pages.
	KindEllipsis
)

// EllipsisLabel is the label rendered for ellipsis tokens.
const EllipsisLabel = "…"

const (
	kindPageText     = "page"
	kindEllipsisText = "ellipsis"
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPage:
		return kindPageText
	case KindEllipsis:
		return kindEllipsisText
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindPage, KindEllipsis:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("invalid token kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case kindPageText:
		*k = KindPage
	case kindEllipsisText:
		*k = KindEllipsis
	default:
		return fmt.Errorf("invalid token kind %q", string(text))
	}
	return nil
}

// Token is one unit of pagination output: a page number or an ellipsis.
type Token struct {
	Kind Kind `json:"type"           yaml:"type"`
	Page int  `json:"page,omitempty" yaml:"page,omitempty"`
}

// PageNumber returns a numeric token for page n.
func PageNumber(n int) Token {
	return Token{Kind: KindPage, Page: n}
}

// Ellipsis returns an ellipsis token.
func Ellipsis() Token {
	return Token{Kind: KindEllipsis}
}

// IsEllipsis reports whether t is an ellipsis placeholder.
func (t Token) IsEllipsis() bool {
	return t.Kind == KindEllipsis
}

// Label returns the text a UI should render for the token.
func (t Token) Label() string {
	if t.IsEllipsis() {
		return EllipsisLabel
	}
	return strconv.Itoa(t.Page)
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return t.Label()
}
