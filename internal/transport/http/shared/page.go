package shared

import "hrdash/internal/domain/grid"

// PageMeta is the pagination state sent alongside a rendered view, without
// repeating the page's records.
type PageMeta struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
	StartIndex   int `json:"startIndex"`
	EndIndex     int `json:"endIndex"`
}

func MetaOf[T any](page grid.Page[T]) PageMeta {
	return PageMeta{
		CurrentPage:  page.CurrentPage,
		TotalPages:   page.TotalPages,
		TotalRecords: page.TotalRecords,
		StartIndex:   page.StartIndex,
		EndIndex:     page.EndIndex,
	}
}
