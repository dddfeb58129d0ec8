package model

// ListQuery carries the view state of a list screen.
type ListQuery struct {
	Search string
	Filter string
	Page   int
	Sort   string
	Desc   bool
}

// Pagination describes the page of a list response.
type Pagination struct {
	CurrentPage int    `json:"current_page"`
	PerPage     int    `json:"per_page"`
	TotalItems  int    `json:"total_items"`
	TotalPages  int    `json:"total_pages"`
	PageWindow  []int  `json:"page_window"`
	RangeStart  int    `json:"range_start"`
	RangeEnd    int    `json:"range_end"`
	HasPrevious bool   `json:"has_previous"`
	HasNext     bool   `json:"has_next"`
	Search      string `json:"search"`
	Filter      string `json:"filter"`
	Sort        string `json:"sort,omitempty"`
}
