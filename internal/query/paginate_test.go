package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trainingdash/internal/domain"
)

func TestPaginate(t *testing.T) {
	records := make([]int, 25)
	for i := range records {
		records[i] = i
	}

	p := domain.PaginationParams{Page: 1, PageSize: 9}
	first := Paginate(records, p)
	assert.Len(t, first, 9)
	assert.Equal(t, 0, first[0])

	p.Page = 3
	last := Paginate(records, p)
	assert.Len(t, last, 7)
	assert.Equal(t, 18, last[0])

	assert.Equal(t, 3, p.TotalPages(len(records)))

	// A page past the end is an empty slice, not an error.
	p.Page = 4
	assert.Empty(t, Paginate(records, p))

	// Pages below 1 are treated as page 1.
	p.Page = 0
	assert.Len(t, Paginate(records, p), 9)

	assert.Empty(t, Paginate(records, domain.PaginationParams{Page: 1, PageSize: 0}))
	assert.Empty(t, Paginate([]int{}, domain.PaginationParams{Page: 1, PageSize: 9}))
}

func TestPaginate_ExactMultiple(t *testing.T) {
	records := make([]string, 18)
	p := domain.PaginationParams{Page: 2, PageSize: 9}
	assert.Len(t, Paginate(records, p), 9)
	assert.Equal(t, 2, p.TotalPages(len(records)))
	p.Page = 3
	assert.Empty(t, Paginate(records, p))
}
