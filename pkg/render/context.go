package render

import "github.com/andynu/bujo-pdf/pkg/errors"

// PageSet identifies one page inside a numbered sub-sequence, e.g.
// "Index 2 of 4". Pages outside a set carry no PageSet.
type PageSet struct {
	Index int // 1-based position within the set
	Count int // total pages in the set
	Label string
}

// Context is the immutable per-page identity bag read by layouts and
// navigation components. It is constructed once per page render and discarded
// when the page finishes; nothing mutates it after construction.
type Context struct {
	pageKey    string
	pageNumber int
	year       int
	weekNum    int // 0 = unset
	totalWeeks int // 0 = unset
	pageSet    *PageSet
	theme      Theme
	extra      map[string]any
}

// ContextOption configures optional Context fields.
type ContextOption func(*Context)

// WithWeek records the week number this page belongs to.
func WithWeek(n int) ContextOption {
	return func(c *Context) { c.weekNum = n }
}

// WithTotalWeeks records the year's week count, read by week navigation.
func WithTotalWeeks(n int) ContextOption {
	return func(c *Context) { c.totalWeeks = n }
}

// WithPageSet marks the page as member index of count in a named set.
func WithPageSet(index, count int, label string) ContextOption {
	return func(c *Context) { c.pageSet = &PageSet{Index: index, Count: count, Label: label} }
}

// WithTheme sets the active color table for this page.
func WithTheme(t Theme) ContextOption {
	return func(c *Context) { c.theme = t }
}

// WithValue attaches an extra named value retrievable via Value. This is the
// forward-compatible escape hatch for page-specific metadata the typed fields
// don't cover.
func WithValue(key string, v any) ContextOption {
	return func(c *Context) {
		if c.extra == nil {
			c.extra = make(map[string]any)
		}
		c.extra[key] = v
	}
}

// NewContext creates a render context. pageKey, pageNumber, and year are
// required; missing or nonsensical values are configuration errors.
func NewContext(pageKey string, pageNumber, year int, opts ...ContextOption) (*Context, error) {
	if pageKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "render context requires a page key")
	}
	if pageNumber < 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "page number must be at least 1, got %d", pageNumber)
	}
	if year == 0 {
		return nil, errors.New(errors.ErrCodeInvalidYear, "render context requires a year")
	}
	c := &Context{
		pageKey:    pageKey,
		pageNumber: pageNumber,
		year:       year,
		theme:      DefaultTheme(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PageKey returns the page's stable destination identifier, e.g. "week_17".
func (c *Context) PageKey() string { return c.pageKey }

// PageNumber returns the 1-based physical page number.
func (c *Context) PageNumber() int { return c.pageNumber }

// Year returns the planner year.
func (c *Context) Year() int { return c.year }

// Week returns the page's week number, if it has one.
func (c *Context) Week() (int, bool) { return c.weekNum, c.weekNum != 0 }

// TotalWeeks returns the year's week count, if recorded.
func (c *Context) TotalWeeks() (int, bool) { return c.totalWeeks, c.totalWeeks != 0 }

// PageSet returns the page's set membership, if any.
func (c *Context) PageSet() (PageSet, bool) {
	if c.pageSet == nil {
		return PageSet{}, false
	}
	return *c.pageSet, true
}

// Theme returns the active color table.
func (c *Context) Theme() Theme { return c.theme }

// Value returns an extra named value attached via WithValue.
func (c *Context) Value(key string) (any, bool) {
	v, ok := c.extra[key]
	return v, ok
}

// IsCurrentPage reports whether candidate names this very page. Navigation
// components use it to suppress self-links and switch to the "current"
// visual style.
func (c *Context) IsCurrentPage(candidate string) bool {
	return candidate == c.pageKey
}
