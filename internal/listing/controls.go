package listing

import "github.com/academyhall/booking-gateway/internal/domain"

// Controls is the stateful companion of the pure engine: it tracks the
// current page and filters for a caller and enforces the contract that
// changing any filter resets the page to 1. Paginate itself stays pure;
// the reset lives here, with the caller.
type Controls struct {
	page     int
	pageSize int
	filters  Filters
}

// NewControls starts at page 1 with no filters
func NewControls(pageSize int) *Controls {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &Controls{page: 1, pageSize: pageSize}
}

// SetStatus changes the status filter, resetting to page 1 on change
func (c *Controls) SetStatus(v string) {
	if c.filters.Status != v {
		c.filters.Status = v
		c.page = 1
	}
}

// SetAcademy changes the academy filter. The hall filter depends on the
// selected academy, so it is cleared together with the page reset.
func (c *Controls) SetAcademy(v string) {
	if c.filters.Academy != v {
		c.filters.Academy = v
		c.filters.Hall = domain.FilterAll
		c.page = 1
	}
}

// SetHall changes the hall filter, resetting to page 1 on change
func (c *Controls) SetHall(v string) {
	if c.filters.Hall != v {
		c.filters.Hall = v
		c.page = 1
	}
}

// SetSearch changes the free-text term, resetting to page 1 on change
func (c *Controls) SetSearch(v string) {
	if c.filters.Search != v {
		c.filters.Search = v
		c.page = 1
	}
}

// SetPage selects an explicit page. Values below 1 clamp to 1; going
// past the last page is allowed and simply yields an empty slice.
func (c *Controls) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	c.page = p
}

// Page returns the current 1-indexed page
func (c *Controls) Page() int {
	return c.page
}

// PageSize returns the fixed page size
func (c *Controls) PageSize() int {
	return c.pageSize
}

// Filters returns the current filter set
func (c *Controls) Filters() Filters {
	return c.filters
}
