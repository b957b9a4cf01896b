package model

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterSpec(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		query  url.Values
		assert func(t *testing.T, spec FilterSpec)
	}

	tests := []testCase{
		{
			name:  "empty query yields defaults and no constraints",
			query: url.Values{},
			assert: func(t *testing.T, spec FilterSpec) {
				assert.Empty(t, spec.Categories)
				assert.Empty(t, spec.Segments)
				assert.Empty(t, spec.SearchText)
				assert.Nil(t, spec.PriceMin)
				assert.Nil(t, spec.PriceMax)
				assert.Empty(t, spec.StockStatus)
				assert.Equal(t, DefaultPage, spec.Page)
				assert.Equal(t, DefaultLimit, spec.Limit)
			},
		},
		{
			name: "page and limit fall back on garbage",
			query: url.Values{
				"page":  []string{"abc"},
				"limit": []string{"-5"},
			},
			assert: func(t *testing.T, spec FilterSpec) {
				assert.Equal(t, DefaultPage, spec.Page)
				assert.Equal(t, DefaultLimit, spec.Limit)
			},
		},
		{
			name: "page and limit parsed when positive",
			query: url.Values{
				"page":  []string{"3"},
				"limit": []string{"10"},
			},
			assert: func(t *testing.T, spec FilterSpec) {
				assert.Equal(t, 3, spec.Page)
				assert.Equal(t, 10, spec.Limit)
			},
		},
		{
			name: "set fields are split, trimmed, deduplicated and sorted",
			query: url.Values{
				"categories": []string{" Tractor , Harvester,,Tractor "},
			},
			assert: func(t *testing.T, spec FilterSpec) {
				assert.Equal(t, []string{"Harvester", "Tractor"}, spec.Categories)
			},
		},
		{
			name: "singular category merges into the set",
			query: url.Values{
				"category":   []string{"Sprayer"},
				"categories": []string{"Tractor"},
			},
			assert: func(t *testing.T, spec FilterSpec) {
				assert.Equal(t, []string{"Sprayer", "Tractor"}, spec.Categories)
			},
		},
		{
			name: "unparseable price bounds are treated as absent",
			query: url.Values{
				"minPrice": []string{"cheap"},
				"maxPrice": []string{"120.50"},
			},
			assert: func(t *testing.T, spec FilterSpec) {
				assert.Nil(t, spec.PriceMin)
				require.NotNil(t, spec.PriceMax)
				assert.True(t, spec.PriceMax.Equal(decimal.RequireFromString("120.50")))
			},
		},
		{
			name: "warehouse sentinel all means unconstrained",
			query: url.Values{
				"warehouse": []string{"ALL"},
			},
			assert: func(t *testing.T, spec FilterSpec) {
				assert.Empty(t, spec.StockStatus)
			},
		},
		{
			name: "warehouse value is kept verbatim",
			query: url.Values{
				"warehouse": []string{"in stock"},
			},
			assert: func(t *testing.T, spec FilterSpec) {
				assert.Equal(t, StockInStock, spec.StockStatus)
			},
		},
		{
			name: "size and diameter trimmed",
			query: url.Values{
				"size":     []string{" 710/70R42 "},
				"diameter": []string{"42"},
			},
			assert: func(t *testing.T, spec FilterSpec) {
				assert.Equal(t, "710/70R42", spec.Size)
				assert.Equal(t, "42", spec.Diameter)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.assert(t, ParseFilterSpec(tt.query))
		})
	}
}

func TestStockStatusRank(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, StockInStock.Rank())
	assert.Equal(t, 1, StockOnOrder.Rank())
	assert.Equal(t, 2, StockOutOfStock.Rank())
	assert.Equal(t, 0, StockStatus("  In Stock ").Rank())
	assert.Equal(t, 3, StockStatus("discontinued").Rank())
	assert.Equal(t, 3, StockStatus("").Rank())
}
