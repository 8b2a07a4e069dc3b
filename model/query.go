package model

import "time"

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListFilter carries the recognized list options of one request. Nil/empty
// members impose no constraint.
type ListFilter struct {
	IsActive        *bool
	Status          string
	Search          string
	Page            int
	Limit           int
	SortRate        Direction
	SortByCreatedAt Direction

	Authors    []string
	Categories []string
	Tags       []string
	Brands     []string

	PublishedFrom *time.Time
	PublishedTo   *time.Time
	ScheduledFrom *time.Time
	ScheduledTo   *time.Time

	PostID    string
	ProductID string
}

// Normalize applies pagination and sort defaults.
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.SortByCreatedAt != Asc {
		f.SortByCreatedAt = Desc
	}
	if f.SortRate != Desc {
		f.SortRate = Asc
	}
}

// Offset is the number of documents skipped before the requested page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	Count      int64 `json:"count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPage[T any](items []T, count int64, f ListFilter) *Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if f.Limit > 0 {
		pages = int((count + int64(f.Limit) - 1) / int64(f.Limit))
	}
	return &Page[T]{
		Items:      items,
		Count:      count,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: pages,
	}
}
