package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sezikua/TruckTyres-GE/internal/model"
)

func TestNewPage(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		page       int
		limit      int
		totalItems int
		want       model.Page
	}

	tests := []testCase{
		{
			name:       "exact division",
			page:       1,
			limit:      10,
			totalItems: 30,
			want:       model.Page{Page: 1, Limit: 10, TotalItems: 30, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name:       "partial last page rounds up",
			page:       2,
			limit:      10,
			totalItems: 25,
			want:       model.Page{Page: 2, Limit: 10, TotalItems: 25, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			name:       "last page has no next",
			page:       3,
			limit:      10,
			totalItems: 25,
			want:       model.Page{Page: 3, Limit: 10, TotalItems: 25, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:       "zero items zero pages regardless of page",
			page:       4,
			limit:      10,
			totalItems: 0,
			want:       model.Page{Page: 4, Limit: 10, TotalItems: 0, TotalPages: 0, HasNext: false, HasPrev: true},
		},
		{
			name:       "page beyond range is legal",
			page:       9,
			limit:      30,
			totalItems: 31,
			want:       model.Page{Page: 9, Limit: 30, TotalItems: 31, TotalPages: 2, HasNext: false, HasPrev: true},
		},
		{
			name:       "limit clamped before division",
			page:       1,
			limit:      0,
			totalItems: 5,
			want:       model.Page{Page: 1, Limit: 1, TotalItems: 5, TotalPages: 5, HasNext: true, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewPage(nil, tt.page, tt.limit, tt.totalItems)

			tt.want.Items = []model.Product{}
			assert.Equal(t, &tt.want, got)
		})
	}
}

func TestNewPageInvariants(t *testing.T) {
	t.Parallel()

	for limit := 1; limit <= 7; limit++ {
		for total := 0; total <= 40; total++ {
			for page := 1; page <= 6; page++ {
				got := NewPage(nil, page, limit, total)

				wantPages := 0
				if total > 0 {
					wantPages = (total + limit - 1) / limit
				}

				assert.Equal(t, wantPages, got.TotalPages)
				assert.Equal(t, page < wantPages, got.HasNext)
				assert.Equal(t, page > 1, got.HasPrev)
			}
		}
	}
}
