package jobquery

import (
	"fmt"
	"math"
)

// Limits bounds the page size.
type Limits struct {
	Default int
	Max     int
}

var DefaultLimits = Limits{Default: 20, Max: 100}

// Window is a resolved page window.
type Window struct {
	Limit  int
	Offset int
	// Page is 1-based and derived from Offset when the caller paged by offset.
	Page int
	// OutOfRange marks a window that selects no rows: a page or offset
	// below the first row. The total is still counted.
	OutOfRange bool
}

// Selects reports whether the window can return rows from a result of total rows.
func (w Window) Selects(total int64) bool {
	return !w.OutOfRange && w.Offset >= 0 && int64(w.Offset) < total
}

// Pages returns the number of pages needed for total rows.
func (w Window) Pages(total int64) int {
	if w.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(w.Limit) - 1) / int64(w.Limit))
}

// ResolveWindow applies defaults and bounds to the limit, offset and page of req.
// Only the limit is rejected when out of bounds. A page or offset before the
// first row resolves to an OutOfRange window, and a page too large to
// address resolves to an offset past every result.
func ResolveWindow(req Request, limits Limits) (Window, error) {
	if limits.Default <= 0 {
		limits = DefaultLimits
	}
	w := Window{Limit: limits.Default}
	if req.Limit != nil {
		if *req.Limit < 1 || *req.Limit > limits.Max {
			return w, invalidParam(KeyLimit, fmt.Sprintf("must be between 1 and %d", limits.Max))
		}
		w.Limit = *req.Limit
	}
	if req.Offset != nil && req.Page != nil {
		return w, invalidParam(KeyPage, "cannot be combined with offset")
	}
	switch {
	case req.Page != nil:
		if *req.Page < 1 {
			return Window{Limit: w.Limit, OutOfRange: true}, nil
		}
		if *req.Page-1 > math.MaxInt/w.Limit {
			// Past any countable result; keep the requested page.
			return Window{Limit: w.Limit, Offset: math.MaxInt, Page: *req.Page}, nil
		}
		w.Offset = (*req.Page - 1) * w.Limit
	case req.Offset != nil:
		if *req.Offset < 0 {
			return Window{Limit: w.Limit, OutOfRange: true}, nil
		}
		w.Offset = *req.Offset
	}
	w.Page = w.Offset / w.Limit
	if w.Page < math.MaxInt {
		w.Page++
	}
	return w, nil
}
