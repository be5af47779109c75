package service

import "math"

// Pagination is the envelope block returned alongside every paginated list.
// TotalPages is ceil(total/limit); an empty result set yields 0.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination builds the pagination block for a page of results
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
