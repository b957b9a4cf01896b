package directus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sezikua/TruckTyres-GE/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.Client(), srv.URL, "test-token", "Product")
}

func TestClientCount(t *testing.T) {
	t.Parallel()

	t.Run("serializes clauses and reads the meta total", func(t *testing.T) {
		t.Parallel()

		var gotQuery url.Values
		var gotAuth string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			gotAuth = r.Header.Get("Authorization")

			_, _ = w.Write([]byte(`{"data":[],"meta":{"total_count":37}}`))
		})

		clauses := []model.Clause{
			{Field: "Category", Op: model.OpIn, Values: []string{"Tractor", "Harvester"}},
			{Field: "warehouse", Op: model.OpEq, Values: []string{"in stock"}},
			{Or: []model.Clause{
				{Field: "product_name", Op: model.OpContains, Values: []string{"CEAT"}},
				{Field: "sku", Op: model.OpContains, Values: []string{"CEAT"}},
			}},
		}

		total, err := c.Count(context.Background(), clauses)
		require.NoError(t, err)
		assert.Equal(t, 37, total)

		assert.Equal(t, "Bearer test-token", gotAuth)
		assert.Equal(t, "Tractor,Harvester", gotQuery.Get("filter[Category][_in]"))
		assert.Equal(t, "in stock", gotQuery.Get("filter[warehouse][_eq]"))
		assert.Equal(t, "CEAT", gotQuery.Get("filter[_or][0][product_name][_icontains]"))
		assert.Equal(t, "CEAT", gotQuery.Get("filter[_or][1][sku][_icontains]"))
		assert.Equal(t, "0", gotQuery.Get("limit"))
		assert.Equal(t, "total_count", gotQuery.Get("meta"))
	})

	t.Run("missing meta total is an error", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[]}`))
		})

		_, err := c.Count(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "total_count")
	})
}

func TestClientFetch(t *testing.T) {
	t.Parallel()

	const body = `{"data":[{
		"id": 11,
		"sku": "FRX-380",
		"slug": "ceat-farmax-r85",
		"product_name": "CEAT Farmax",
		"model": "R85",
		"size": "380/85R24",
		"diameter": "24",
		"regular_price": "14500.00",
		"discount_price": "13900.00",
		"Category": "Tractor",
		"Segment": "Premium",
		"warehouse": "in stock"
	}]}`

	t.Run("positive limit sends page and limit", func(t *testing.T) {
		t.Parallel()

		var gotQuery url.Values
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			_, _ = w.Write([]byte(body))
		})

		products, err := c.Fetch(context.Background(), nil, 2, 30)
		require.NoError(t, err)
		require.Len(t, products, 1)

		assert.Equal(t, "2", gotQuery.Get("page"))
		assert.Equal(t, "30", gotQuery.Get("limit"))

		p := products[0]
		assert.Equal(t, int64(11), p.ID)
		assert.Equal(t, "CEAT Farmax", p.Name)
		assert.Equal(t, model.StockInStock, p.StockStatus)
		assert.True(t, p.RegularPrice.Equal(decimal.RequireFromString("14500")))
		require.NotNil(t, p.DiscountPrice)
		assert.True(t, p.DiscountPrice.Equal(decimal.RequireFromString("13900")))
	})

	t.Run("negative limit asks for every match without paging", func(t *testing.T) {
		t.Parallel()

		var gotQuery url.Values
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			_, _ = w.Write([]byte(`{"data":[]}`))
		})

		products, err := c.Fetch(context.Background(), nil, 1, -1)
		require.NoError(t, err)
		assert.Empty(t, products)

		assert.Equal(t, "-1", gotQuery.Get("limit"))
		assert.False(t, gotQuery.Has("page"))
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := c.Fetch(context.Background(), nil, 1, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestClientProductByID(t *testing.T) {
	t.Parallel()

	t.Run("hits the item endpoint", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"data":{"id":11,"product_name":"CEAT Farmax","regular_price":"14500"}}`))
		})

		p, err := c.ProductByID(context.Background(), 11)
		require.NoError(t, err)

		assert.Equal(t, "/items/Product/11", gotPath)
		assert.Equal(t, "CEAT Farmax", p.Name)
	})

	t.Run("store 404 maps to not found", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := c.ProductByID(context.Background(), 999)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("null data maps to not found", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":null}`))
		})

		_, err := c.ProductByID(context.Background(), 999)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}

func TestClientProductBySlug(t *testing.T) {
	t.Parallel()

	t.Run("filters by slug with limit one", func(t *testing.T) {
		t.Parallel()

		var gotQuery url.Values
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			_, _ = w.Write([]byte(`{"data":[{"id":11,"slug":"ceat-farmax-r85","product_name":"CEAT Farmax","regular_price":"14500"}]}`))
		})

		p, err := c.ProductBySlug(context.Background(), "ceat-farmax-r85")
		require.NoError(t, err)

		assert.Equal(t, "ceat-farmax-r85", gotQuery.Get("filter[slug][_eq]"))
		assert.Equal(t, "1", gotQuery.Get("limit"))
		assert.Equal(t, "ceat-farmax-r85", p.Slug)
	})

	t.Run("empty result maps to not found", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[]}`))
		})

		_, err := c.ProductBySlug(context.Background(), "no-such-slug")
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}

func TestClientFieldValues(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"data":[
			{"Category":"Tractor"},
			{"Category":" Harvester "},
			{"Category":"Tractor"},
			{"Category":""},
			{"Category":null}
		]}`))
	})

	values, err := c.FieldValues(context.Background(), "Category")
	require.NoError(t, err)

	assert.Equal(t, "Category", gotQuery.Get("fields"))
	assert.Equal(t, "-1", gotQuery.Get("limit"))
	assert.Equal(t, []string{"Harvester", "Tractor"}, values)
}

func TestEntityToModelDiscountGuard(t *testing.T) {
	t.Parallel()

	discount := func(s string) *string { return &s }

	type testCase struct {
		name     string
		regular  string
		discount *string
		want     bool
	}

	tests := []testCase{
		{name: "discount below regular kept", regular: "100", discount: discount("80"), want: true},
		{name: "discount above regular dropped", regular: "100", discount: discount("120"), want: false},
		{name: "zero discount dropped", regular: "100", discount: discount("0"), want: false},
		{name: "unparseable discount dropped", regular: "100", discount: discount("n/a"), want: false},
		{name: "no discount", regular: "100", discount: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := entityToModel(&productEntity{
				ID:            1,
				RegularPrice:  tt.regular,
				DiscountPrice: tt.discount,
			})

			if tt.want {
				assert.NotNil(t, p.DiscountPrice)
			} else {
				assert.Nil(t, p.DiscountPrice)
			}
		})
	}
}
