// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// DefaultPageNumber is used when the client does not ask for a page.
	DefaultPageNumber = 1

	// DefaultPageSize is used when the client does not ask for a page size.
	DefaultPageSize = 10

	// MaxPageSize caps the page size. Larger values are reduced, not rejected.
	MaxPageSize = 100
)

// PageRequest describes an offset page of a listing.
type PageRequest struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// NewPageRequest builds a PageRequest, clamping pageSize to [MaxPageSize].
func NewPageRequest(pageNumber, pageSize int) PageRequest {
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return PageRequest{
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
}

// DefaultPageRequest returns the first page with the default size.
func DefaultPageRequest() PageRequest {
	return NewPageRequest(DefaultPageNumber, DefaultPageSize)
}

// Offset returns the number of rows that precede the requested page.
func (p PageRequest) Offset() int {
	if p.PageNumber < 1 {
		return 0
	}

	return (p.PageNumber - 1) * p.Limit()
}

// Limit returns the effective number of rows on the page.
func (p PageRequest) Limit() int {
	if p.PageSize < 1 {
		return DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		return MaxPageSize
	}

	return p.PageSize
}

// Page is a bounded slice of an ordered collection plus the counters the
// client needs to navigate it.
type Page[T any] struct {
	Items       []T   `json:"items"`
	PageNumber  int   `json:"pageNumber"`
	PageSize    int   `json:"pageSize"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// NewPage wraps items of the requested page with counting metadata.
// TotalPages is ceil(totalCount / pageSize).
func NewPage[T any](items []T, totalCount int64, request PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}

	pageSize := request.Limit()

	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}

	return Page[T]{
		Items:       items,
		PageNumber:  request.PageNumber,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasPrevious: request.PageNumber > 1,
		HasNext:     request.PageNumber < totalPages,
	}
}

// MapPage converts the items of a page while keeping its metadata.
func MapPage[T, R any](page Page[T], mapFn func(T) R) Page[R] {
	items := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapFn(item))
	}

	return Page[R]{
		Items:       items,
		PageNumber:  page.PageNumber,
		PageSize:    page.PageSize,
		TotalCount:  page.TotalCount,
		TotalPages:  page.TotalPages,
		HasPrevious: page.HasPrevious,
		HasNext:     page.HasNext,
	}
}
