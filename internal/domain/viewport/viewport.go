// Package viewport decides when a scrolled list should reveal more items.
package viewport

// BottomThreshold is how close (in pixels) to the bottom a scroll must get
const BottomThreshold = 200

// Metrics is one scroll measurement of the feed container
type Metrics struct {
	ScrollTop    float64 `json:"scrollTop"`
	ClientHeight float64 `json:"clientHeight"`
	ScrollHeight float64 `json:"scrollHeight"`
}

// NearBottom reports whether the visible area reaches within BottomThreshold of the end
func NearBottom(m Metrics) bool {
	return m.ScrollTop+m.ClientHeight >= m.ScrollHeight-BottomThreshold
}

// ShouldLoadMore is the pagination predicate for a scroll event
func ShouldLoadMore(m Metrics, remaining int, loading bool) bool {
	return NearBottom(m) && remaining > 0 && !loading
}

// Pager is a paginated list that can grow by one page
type Pager interface {
	Remaining() int
	Loading() bool
	LoadMore() bool
}

// Controller turns scroll events into page loads
type Controller struct {
	pager Pager
}

// NewController creates a controller for a pager
func NewController(p Pager) *Controller {
	return &Controller{pager: p}
}

// OnScroll handles one scroll event and reports whether a page was added.
// At most one page is added per event.
func (c *Controller) OnScroll(m Metrics) bool {
	if !ShouldLoadMore(m, c.pager.Remaining(), c.pager.Loading()) {
		return false
	}
	return c.pager.LoadMore()
}
