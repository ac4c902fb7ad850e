package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"middle_page", 2, 10, 25, 3, true, true},
		{"last_page", 3, 10, 25, 3, false, true},
		{"first_of_many", 1, 10, 25, 3, true, false},
		{"exact_fit", 2, 5, 10, 2, false, true},
		{"empty", 1, 10, 0, 0, false, false},
		{"single_item", 1, 10, 1, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := paginationMeta(ListQuery{Page: tt.page, Limit: tt.limit}, tt.total)

			assert.Equal(t, tt.page, meta.CurrentPage)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.total, meta.TotalCount)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.wantNext, meta.HasNextPage)
			assert.Equal(t, tt.wantPrev, meta.HasPreviousPage)
		})
	}
}

func TestSortColumns_CoverEverySortField(t *testing.T) {
	for _, field := range sortFields {
		col, ok := sortColumns[field]
		assert.True(t, ok, "missing column mapping for %s", field)
		assert.NotEmpty(t, col)
	}
}
