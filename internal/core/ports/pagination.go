package ports

import (
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

const maxPageLimit = 100

// PageRequest carries 1-based pagination parameters.
type PageRequest struct {
	Page  int
	Limit int
}

// Validate rejects non-positive page or limit. Out-of-range pages are not
// an error; they yield an empty item set with correct totals.
func (p PageRequest) Validate() error {
	if p.Page < 1 {
		return domain.NewValidation("page", "must be at least 1")
	}
	if p.Limit < 1 {
		return domain.NewValidation("limit", "must be at least 1")
	}
	return nil
}

// Capped returns a copy with the limit clamped to the service-wide maximum.
func (p PageRequest) Capped() PageRequest {
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	return p
}

// Offset returns the number of rows to skip for this page.
func (p PageRequest) Offset() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Page is one bounded result set of a paged query.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewPage assembles a Page from raw query output, computing
// total_pages = ceil(total/limit).
func NewPage[T any](items []T, total int64, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}
}
