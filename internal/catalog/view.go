package catalog

import (
	"log"

	"github.com/meur/gamevault/internal/models"
)

// State is the load state of a View
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

// User-facing messages for the non-ready states
const (
	MsgLoading    = "Loading..."
	MsgLoadFailed = "Could not load the catalog."
	MsgNoResults  = "No posts found."
)

// View holds the catalog for one mount: the fetched list, the live query
// and filters, and the current page. Every input change reruns the full
// pipeline. A View is not safe for concurrent use.
type View struct {
	opts Options

	state   State
	items   []models.Item
	query   string
	filters models.Filters

	result []models.Item
	page   int

	// OnNavigate runs after every successful page change, e.g. to scroll
	// the viewport back to the top.
	OnNavigate func(page int)
}

// NewView returns a view in the loading state
func NewView(opts Options) *View {
	return &View{opts: opts, page: 1}
}

// SetItems stores the fetched list and starts again from the first page
func (v *View) SetItems(items []models.Item) {
	v.items = items
	v.state = StateReady
	v.recompute()
	v.page = 1
}

// Fail records a retrieval failure. The error is traced and swallowed.
func (v *View) Fail(err error) {
	log.Printf("catalog: failed to load items: %v", err)
	v.state = StateFailed
	v.items = nil
	v.result = nil
	v.page = 1
}

// SetQuery updates the free-text title query
func (v *View) SetQuery(q string) {
	v.query = q
	v.recompute()
}

// SetFilters replaces the sidebar configuration
func (v *View) SetFilters(f models.Filters) {
	v.filters = f
	v.recompute()
}

func (v *View) recompute() {
	prev := len(v.result)
	v.result = Apply(v.items, v.query, v.filters, v.opts)
	if len(v.result) != prev {
		v.page = 1
	}
}

// GoTo moves to page and reports whether it did. Pages outside
// [1, TotalPages] are ignored.
func (v *View) GoTo(page int) bool {
	if page < 1 || page > v.TotalPages() {
		return false
	}
	v.page = page
	if v.OnNavigate != nil {
		v.OnNavigate(page)
	}
	return true
}

// Next moves one page forward
func (v *View) Next() bool { return v.GoTo(v.page + 1) }

// Prev moves one page back
func (v *View) Prev() bool { return v.GoTo(v.page - 1) }

func (v *View) State() State { return v.state }
func (v *View) Query() string { return v.query }
func (v *View) Filters() models.Filters { return v.filters }
func (v *View) CurrentPage() int { return v.page }
func (v *View) TotalPages() int { return TotalPages(len(v.result)) }
func (v *View) Result() []models.Item { return v.result }
func (v *View) Visible() []models.Item { return PageSlice(v.result, v.page) }
func (v *View) Labels() []Label { return Labels(v.page, v.TotalPages()) }
func (v *View) HasPrev() bool { return v.page > 1 }
func (v *View) HasNext() bool { return v.page < v.TotalPages() }

// Empty reports a loaded view whose filters matched nothing
func (v *View) Empty() bool {
	return v.state == StateReady && len(v.result) == 0
}

// Message returns the text to show instead of the grid, or "" when the
// grid should be rendered.
func (v *View) Message() string {
	switch {
	case v.state == StateLoading:
		return MsgLoading
	case v.state == StateFailed:
		return MsgLoadFailed
	case v.Empty():
		return MsgNoResults
	}
	return ""
}
