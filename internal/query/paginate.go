package query

import "trainingdash/internal/domain"

// Paginate returns the 1-indexed page slice for the given params. A page past
// the end yields an empty slice, not an error; pages below 1 are treated as 1.
func Paginate[T any](records []T, p domain.PaginationParams) []T {
	if p.PageSize <= 0 {
		return []T{}
	}
	start := p.Offset()
	if start >= len(records) {
		return []T{}
	}
	end := start + p.PageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
