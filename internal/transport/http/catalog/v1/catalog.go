package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sezikua/TruckTyres-GE/internal/model"
	"github.com/sezikua/TruckTyres-GE/internal/transport/http/api"
)

type CatalogService interface {
	ListAll(ctx context.Context, spec model.FilterSpec) (*model.Page, error)
	ByCategory(ctx context.Context, name string, page, limit int) (*model.Page, error)
	BySegment(ctx context.Context, name string, page, limit int) (*model.Page, error)
	BySize(ctx context.Context, size string, page, limit int) (*model.Page, error)
	SimilarBySize(ctx context.Context, size string, excludeID int64, limit int) ([]model.Product, error)
	ProductByID(ctx context.Context, id int64) (*model.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Segments(ctx context.Context) ([]string, error)
}

type handler struct {
	svc CatalogService
}

func NewCatalogHandler(service CatalogService) *handler {
	return &handler{svc: service}
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	spec := model.ParseFilterSpec(r.URL.Query())

	page, err := h.svc.ListAll(r.Context(), spec)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, pageToResponse(page))
}

func (h *handler) ByCategory(w http.ResponseWriter, r *http.Request) {
	pg, limit := pageParams(r)

	page, err := h.svc.ByCategory(r.Context(), chi.URLParam(r, "category"), pg, limit)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, pageToResponse(page))
}

func (h *handler) BySegment(w http.ResponseWriter, r *http.Request) {
	pg, limit := pageParams(r)

	page, err := h.svc.BySegment(r.Context(), chi.URLParam(r, "segment"), pg, limit)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, pageToResponse(page))
}

func (h *handler) BySize(w http.ResponseWriter, r *http.Request) {
	pg, limit := pageParams(r)

	page, err := h.svc.BySize(r.Context(), chi.URLParam(r, "size"), pg, limit)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, pageToResponse(page))
}

func (h *handler) Similar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	excludeID, _ := strconv.ParseInt(q.Get("exclude"), 10, 64)
	limit, _ := strconv.Atoi(q.Get("limit"))

	products, err := h.svc.SimilarBySize(r.Context(), chi.URLParam(r, "size"), excludeID, limit)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, productsResponse{
		Data:  productsToViews(products),
		Total: len(products),
	})
}

func (h *handler) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, r, model.NewFieldError("id", "must be an integer"))
		return
	}

	p, err := h.svc.ProductByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, productResponse{Data: productToView(*p)})
}

func (h *handler) BySlug(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.ProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, productResponse{Data: productToView(*p)})
}

func (h *handler) Categories(w http.ResponseWriter, r *http.Request) {
	values, err := h.svc.Categories(r.Context())
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, valuesResponse{Data: values})
}

func (h *handler) Segments(w http.ResponseWriter, r *http.Request) {
	values, err := h.svc.Segments(r.Context())
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, valuesResponse{Data: values})
}

func pageParams(r *http.Request) (page, limit int) {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = model.DefaultPage
	}

	limit, err = strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = model.DefaultLimit
	}

	return page, limit
}
