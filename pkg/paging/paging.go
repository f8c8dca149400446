package paging

import (
	"github.com/DFE-Digital/fips-v4/pkg/types"
)

const DefaultPageSize = 12

type Page struct {
	Items        []types.CatalogRecord `json:"items"`
	TotalPages   int                   `json:"totalPages"`
	CurrentPage  int                   `json:"currentPage"`
	TotalResults int                   `json:"totalResults"`
	HasNextPage  bool                  `json:"hasNextPage"`
	HasPrevPage  bool                  `json:"hasPrevPage"`
}

// Paginate returns one window of records. Page numbers below one are read as
// one, pages past the end are empty. A non-positive size uses DefaultPageSize.
func Paginate(records []types.CatalogRecord, pageNumber, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	total := len(records)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	items := make([]types.CatalogRecord, 0)
	if pageNumber <= totalPages {
		start := (pageNumber - 1) * pageSize
		end := min(start+pageSize, total)
		items = make([]types.CatalogRecord, end-start)
		copy(items, records[start:end])
	}

	return Page{
		Items:        items,
		TotalPages:   totalPages,
		CurrentPage:  pageNumber,
		TotalResults: total,
		HasNextPage:  pageNumber < totalPages,
		HasPrevPage:  pageNumber > 1,
	}
}
