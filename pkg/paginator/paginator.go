package paginator

import "math"

// Adjust normalizes the pagination parameters to valid values.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset calculates the database offset for the current page.
func (p *PaginateQuery) Offset() int64 {
	return int64(p.Page-1) * p.Limit
}

// TotalPages calculates the total number of pages.
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

// ToResponse converts the paginator to the response format.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.CurrentPage < p.TotalPages(),
		HasPrev:     p.CurrentPage > 1,
	}
}
