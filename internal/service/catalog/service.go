package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sezikua/TruckTyres-GE/internal/logger"
	"github.com/sezikua/TruckTyres-GE/internal/model"
)

// CatalogStore is the external content store holding the products.
// Fetch with a negative limit retrieves every match.
type CatalogStore interface {
	Count(ctx context.Context, clauses []model.Clause) (int, error)
	Fetch(ctx context.Context, clauses []model.Clause, page, limit int) ([]model.Product, error)
	ProductByID(ctx context.Context, id int64) (*model.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	FieldValues(ctx context.Context, field string) ([]string, error)
}

type service struct {
	store        CatalogStore
	fetchTimeout time.Duration
	similarLimit int
}

func NewCatalogService(store CatalogStore, fetchTimeout time.Duration, similarLimit int) *service {
	if similarLimit < 1 {
		similarLimit = DefaultSimilarLimit
	}

	return &service{
		store:        store,
		fetchTimeout: fetchTimeout,
		similarLimit: similarLimit,
	}
}

// ListAll compiles the spec once and issues the count and data fetches
// concurrently against the same clause set, so the page metadata can
// never diverge from the items it describes.
func (svc *service) ListAll(ctx context.Context, spec model.FilterSpec) (*model.Page, error) {
	const op = "catalog.service.ListAll"
	log := logger.With(
		logger.Int("page", spec.Page),
		logger.Int("limit", spec.Limit),
	)

	clauses := CompileQuery(spec)

	ctx, cancel := context.WithTimeout(ctx, svc.fetchTimeout)
	defer cancel()

	var (
		total int
		items []model.Product
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		n, err := svc.store.Count(egCtx, clauses)
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	eg.Go(func() error {
		out, err := svc.store.Fetch(egCtx, clauses, spec.Page, spec.Limit)
		if err != nil {
			return err
		}
		items = out
		return nil
	})

	if err := eg.Wait(); err != nil {
		log.Error(ctx, "store fetch", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrCatalogUnavailable, err))
	}

	return NewPage(items, spec.Page, spec.Limit, total), nil
}

func (svc *service) ByCategory(ctx context.Context, name string, page, limit int) (*model.Page, error) {
	return svc.ListAll(ctx, model.FilterSpec{
		Categories: []string{name},
		Page:       pageOrDefault(page),
		Limit:      limitOrDefault(limit),
	})
}

func (svc *service) BySegment(ctx context.Context, name string, page, limit int) (*model.Page, error) {
	return svc.ListAll(ctx, model.FilterSpec{
		Segments: []string{name},
		Page:     pageOrDefault(page),
		Limit:    limitOrDefault(limit),
	})
}

func (svc *service) BySize(ctx context.Context, size string, page, limit int) (*model.Page, error) {
	return svc.ListAll(ctx, model.FilterSpec{
		Size:  size,
		Page:  pageOrDefault(page),
		Limit: limitOrDefault(limit),
	})
}

// SimilarBySize returns a bounded, unpaginated list of products
// sharing the given size, availability-first. The full match set is
// retrieved and ranked before the bound is applied.
func (svc *service) SimilarBySize(ctx context.Context, size string, excludeID int64, limit int) ([]model.Product, error) {
	const op = "catalog.service.SimilarBySize"
	log := logger.With(
		logger.String("size", size),
		logger.Int64("exclude_id", excludeID),
	)

	if limit < 1 {
		limit = svc.similarLimit
	}

	clauses := CompileQuery(model.FilterSpec{Size: size})

	ctx, cancel := context.WithTimeout(ctx, svc.fetchTimeout)
	defer cancel()

	products, err := svc.store.Fetch(ctx, clauses, 1, -1)
	if err != nil {
		log.Error(ctx, "store fetch", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrCatalogUnavailable, err))
	}

	return RankSimilar(products, excludeID, limit), nil
}

func (svc *service) ProductByID(ctx context.Context, id int64) (*model.Product, error) {
	const op = "catalog.service.ProductByID"
	log := logger.With(logger.Int64("product_id", id))

	ctx, cancel := context.WithTimeout(ctx, svc.fetchTimeout)
	defer cancel()

	p, err := svc.store.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Error(ctx, "store product by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrCatalogUnavailable, err))
	}

	return p, nil
}

func (svc *service) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	const op = "catalog.service.ProductBySlug"
	log := logger.With(logger.String("slug", slug))

	ctx, cancel := context.WithTimeout(ctx, svc.fetchTimeout)
	defer cancel()

	p, err := svc.store.ProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Error(ctx, "store product by slug", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrCatalogUnavailable, err))
	}

	return p, nil
}

func (svc *service) Categories(ctx context.Context) ([]string, error) {
	return svc.fieldValues(ctx, "catalog.service.Categories", fieldCategory)
}

func (svc *service) Segments(ctx context.Context) ([]string, error) {
	return svc.fieldValues(ctx, "catalog.service.Segments", fieldSegment)
}

func (svc *service) fieldValues(ctx context.Context, op, field string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.fetchTimeout)
	defer cancel()

	values, err := svc.store.FieldValues(ctx, field)
	if err != nil {
		logger.Error(ctx, "store field values",
			logger.String("field", field),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrCatalogUnavailable, err))
	}

	return values, nil
}

func pageOrDefault(page int) int {
	if page < 1 {
		return model.DefaultPage
	}
	return page
}

func limitOrDefault(limit int) int {
	if limit < 1 {
		return model.DefaultLimit
	}
	return limit
}
