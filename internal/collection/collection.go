// Package collection derives paginated, searchable and filterable views over an
// in-memory list of records fetched from a remote source.
package collection

import (
	"slices"
	"strings"
)

// DefaultItemsPerPage is the page size used when Options.ItemsPerPage is not positive.
const DefaultItemsPerPage = 10

// FilterAll is the filter value that matches every record.
const FilterAll = "all"

// Options configures a View for one kind of record.
type Options[T any] struct {
	ItemsPerPage int
	// Search reports whether a record matches a non-empty, lower-cased term.
	Search func(record T, term string) bool
	// Filter reports whether a record matches a filter value other than "all".
	Filter func(record T, value string) bool
	// Sorts maps a sort key to a comparator returning <0, 0 or >0.
	Sorts map[string]func(a, b T) int
}

// State is the interactive state owned by one screen.
type State struct {
	SearchTerm  string `json:"search"`
	FilterValue string `json:"filter"`
	SortKey     string `json:"sort,omitempty"`
	SortDesc    bool   `json:"desc,omitempty"`
	CurrentPage int    `json:"page"`
}

// Derived is the projection of the records and the state into renderable rows
// and pagination controls.
type Derived[T any] struct {
	Records       []T
	TotalMatching int
	TotalPages    int
	CurrentPage   int
	ItemsPerPage  int
	PageWindow    []int
	RangeStart    int
	RangeEnd      int
	HasPrevious   bool
	HasNext       bool
}

// View holds a fetched collection together with its State and keeps the
// derived projection up to date after every mutation.
// A View is not safe for concurrent use.
type View[T any] struct {
	items   []T
	opts    Options[T]
	state   State
	derived Derived[T]
}

// New creates a View over items. A nil slice behaves like an empty one.
func New[T any](items []T, opts Options[T]) *View[T] {
	if opts.ItemsPerPage <= 0 {
		opts.ItemsPerPage = DefaultItemsPerPage
	}
	v := &View[T]{
		items: items,
		opts:  opts,
		state: State{FilterValue: FilterAll, CurrentPage: 1},
	}
	v.recompute()
	return v
}

// SetItems replaces the collection, e.g. after a refetch. The current page is
// kept when it still exists.
func (v *View[T]) SetItems(items []T) {
	v.items = items
	v.recompute()
}

// SetSearchTerm replaces the search term and goes back to the first page.
func (v *View[T]) SetSearchTerm(term string) {
	v.state.SearchTerm = term
	v.state.CurrentPage = 1
	v.recompute()
}

// SetFilter replaces the filter value and goes back to the first page.
// An empty value is treated as "all".
func (v *View[T]) SetFilter(value string) {
	if value == "" {
		value = FilterAll
	}
	v.state.FilterValue = value
	v.state.CurrentPage = 1
	v.recompute()
}

// SetSort orders matching records by a configured sort key. Unknown keys are
// ignored. An empty key restores fetch order.
func (v *View[T]) SetSort(key string, desc bool) {
	if key != "" {
		if _, ok := v.opts.Sorts[key]; !ok {
			return
		}
	}
	v.state.SortKey = key
	v.state.SortDesc = desc
	v.state.CurrentPage = 1
	v.recompute()
}

// SetPage moves to page n. Pages outside [1, TotalPages] are ignored.
func (v *View[T]) SetPage(n int) {
	if n < 1 || n > v.derived.TotalPages {
		return
	}
	if n == v.state.CurrentPage {
		return
	}
	v.state.CurrentPage = n
	v.recompute()
}

// State returns a copy of the current interactive state.
func (v *View[T]) State() State {
	return v.state
}

// Derived returns the current projection. Callers must not modify the
// returned Records slice.
func (v *View[T]) Derived() Derived[T] {
	return v.derived
}

func (v *View[T]) recompute() {
	matching := v.match()
	perPage := v.opts.ItemsPerPage

	total := len(matching)
	totalPages := (total + perPage - 1) / perPage

	// currentPage stays in [1, max(1, totalPages)]
	page := v.state.CurrentPage
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	v.state.CurrentPage = page

	start := (page - 1) * perPage
	records := []T{}
	rangeStart, rangeEnd := 0, 0
	if start < total {
		end := min(start+perPage, total)
		records = matching[start:end]
		rangeStart, rangeEnd = start+1, end
	}

	v.derived = Derived[T]{
		Records:       records,
		TotalMatching: total,
		TotalPages:    totalPages,
		CurrentPage:   page,
		ItemsPerPage:  perPage,
		PageWindow:    PageWindow(page, totalPages),
		RangeStart:    rangeStart,
		RangeEnd:      rangeEnd,
		HasPrevious:   page > 1,
		HasNext:       page < totalPages,
	}
}

// match returns the records passing both the search and the filter, in fetch
// order unless a sort key is set.
func (v *View[T]) match() []T {
	term := strings.ToLower(v.state.SearchTerm)
	filter := v.state.FilterValue
	filterAll := filter == "" || strings.EqualFold(filter, FilterAll)

	matching := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if term != "" && v.opts.Search != nil && !v.opts.Search(item, term) {
			continue
		}
		if !filterAll && v.opts.Filter != nil && !v.opts.Filter(item, filter) {
			continue
		}
		matching = append(matching, item)
	}

	if cmp, ok := v.opts.Sorts[v.state.SortKey]; ok && v.state.SortKey != "" {
		if v.state.SortDesc {
			slices.SortStableFunc(matching, func(a, b T) int { return cmp(b, a) })
		} else {
			slices.SortStableFunc(matching, cmp)
		}
	}
	return matching
}

// PageWindow returns up to five contiguous page numbers centred on current,
// sliding to stay five wide near either end. It is empty when total is 0.
func PageWindow(current, total int) []int {
	const width = 5
	if total <= 0 {
		return []int{}
	}
	if total <= width {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	start := current - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > total {
		end = total
		start = end - width + 1
	}

	pages := make([]int, 0, width)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// ContainsFold reports whether field contains the lower-cased term,
// ignoring case. An empty field never matches.
func ContainsFold(field, lowerTerm string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), lowerTerm)
}
