package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/sezikua/TruckTyres-GE/internal/closer"
	"github.com/sezikua/TruckTyres-GE/internal/config"
	"github.com/sezikua/TruckTyres-GE/internal/logger"
	cataloghttp "github.com/sezikua/TruckTyres-GE/internal/transport/http/catalog/v1"
	"github.com/sezikua/TruckTyres-GE/internal/transport/http/health"
	orderhttp "github.com/sezikua/TruckTyres-GE/internal/transport/http/order/v1"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	catalogHandler := cataloghttp.NewCatalogHandler(a.di.CatalogService(ctx))
	orderHandler := orderhttp.NewOrderHandler(a.di.OrderService(ctx))

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", catalogHandler.List)
		r.Get("/products/{id:[0-9]+}", catalogHandler.ByID)
		r.Get("/products/slug/{slug}", catalogHandler.BySlug)
		r.Get("/products/category/{category}", catalogHandler.ByCategory)
		r.Get("/products/segment/{segment}", catalogHandler.BySegment)
		r.Get("/products/size/{size}", catalogHandler.BySize)
		r.Get("/products/similar/{size}", catalogHandler.Similar)
		r.Get("/categories", catalogHandler.Categories)
		r.Get("/segments", catalogHandler.Segments)

		r.Post("/order", orderHandler.Submit)
		r.Post("/contact", orderHandler.Contact)
		r.Post("/newsletter", orderHandler.Subscribe)
	})

	r.HandleFunc("/health", health.HealthCheck)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 storefront server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), // do not inherit cancellation from ctx
			config.C().Server.ShutdownTimeout(),
		)
		defer cancel()

		return a.server.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(),
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	if err := closer.CloseAll(ctx); err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
