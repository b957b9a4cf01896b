package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sezikua/TruckTyres-GE/internal/logger"
	"github.com/sezikua/TruckTyres-GE/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(r.Context(), "write response", logger.ErrorF(err))
	}
}

// WriteError maps the service error taxonomy onto HTTP statuses:
// client input errors are 400, missing products 404, upstream catalog
// or messaging failures 502, everything else 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	WriteJSON(w, r, statusOf(err), errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrCatalogUnavailable),
		errors.Is(err, model.ErrDeliveryFailed):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
