package grid

// Page is one slice of an ordered record set plus the navigation state the
// pagination controls need.
type Page[T any] struct {
	Records      []T `json:"records"`
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
	StartIndex   int `json:"startIndex"`
	EndIndex     int `json:"endIndex"`
}

// Paginate slices records into fixed-size pages and returns the requested one.
// TotalPages is at least 1 so an empty result renders as a single empty page,
// and the requested page is clamped into [1, TotalPages]. StartIndex/EndIndex
// are 1-based display positions ("Showing 26-50 of 173"); both are zero for an
// empty result.
func Paginate[T any](records []T, pageSize, page int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	p := Page[T]{
		Records:      records[start:end],
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: total,
	}
	if len(p.Records) > 0 {
		p.StartIndex = start + 1
		p.EndIndex = end
	}
	return p
}
