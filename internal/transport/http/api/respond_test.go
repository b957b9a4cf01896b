package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sezikua/TruckTyres-GE/internal/model"
)

func TestWriteError(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		err        error
		wantStatus int
	}

	tests := []testCase{
		{
			name:       "field error maps to bad request",
			err:        model.NewFieldError("phone", "required"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped invalid input maps to bad request",
			err:        fmt.Errorf("order.service.Submit: %w", model.NewFieldError("lastName", "required")),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "product not found maps to 404",
			err:        model.ErrProductNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "catalog unavailable maps to bad gateway",
			err:        fmt.Errorf("catalog.service.ListAll: %w", errors.Join(model.ErrCatalogUnavailable, errors.New("dial tcp"))),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "delivery failure maps to bad gateway",
			err:        &model.DeliveryError{Diagnostic: "chat not found"},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "service unavailable maps to 503",
			err:        model.ErrServiceUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unclassified error maps to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			WriteError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.err.Error()), rec.Body.String())
		})
	}
}
