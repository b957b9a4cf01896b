package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-telegram/bot"

	directus "github.com/sezikua/TruckTyres-GE/internal/client/http/directus"
	tgclient "github.com/sezikua/TruckTyres-GE/internal/client/http/telegram"
	"github.com/sezikua/TruckTyres-GE/internal/closer"
	"github.com/sezikua/TruckTyres-GE/internal/config"
	catalogsvc "github.com/sezikua/TruckTyres-GE/internal/service/catalog"
	ordersvc "github.com/sezikua/TruckTyres-GE/internal/service/order"
	cataloghttp "github.com/sezikua/TruckTyres-GE/internal/transport/http/catalog/v1"
	orderhttp "github.com/sezikua/TruckTyres-GE/internal/transport/http/order/v1"
)

type di struct {
	httpClient *http.Client
	store      catalogsvc.CatalogStore

	tgBot    *bot.Bot
	tgClient ordersvc.MessageSender

	catalogService cataloghttp.CatalogService
	orderService   orderhttp.OrderService

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) HTTPClient(_ context.Context) *http.Client {
	if d.httpClient == nil {
		d.httpClient = &http.Client{
			Timeout: config.C().Catalog.RequestTimeout(),
		}
		closer.AddNamed("Catalog HTTP Client",
			func(ctx context.Context) error {
				d.httpClient.CloseIdleConnections()
				return nil
			})
	}

	return d.httpClient
}

func (d *di) CatalogStore(ctx context.Context) catalogsvc.CatalogStore {
	if d.store == nil {
		cfg := config.C()

		d.store = directus.NewClient(
			d.HTTPClient(ctx),
			cfg.Catalog.BaseURL(),
			cfg.Catalog.Token(),
			cfg.Catalog.Collection(),
		)
	}

	return d.store
}

func (d *di) TelegramBot(_ context.Context) *bot.Bot {
	if d.tgBot == nil {
		b, err := bot.New(config.C().Telegram.BotToken())
		if err != nil {
			panic(fmt.Sprintf("failed to create telegram bot: %v\n", err))
		}
		closer.AddNamed("Telegram Bot",
			func(ctx context.Context) error {
				_, err := b.Close(ctx)
				return err
			})

		d.tgBot = b
	}

	return d.tgBot
}

func (d *di) MessageSender(ctx context.Context) ordersvc.MessageSender {
	if d.tgClient == nil {
		d.tgClient = tgclient.NewClient(
			d.TelegramBot(ctx),
			config.C().Telegram.ChatID(),
		)
	}

	return d.tgClient
}

func (d *di) CatalogService(ctx context.Context) cataloghttp.CatalogService {
	if d.catalogService == nil {
		d.catalogService = catalogsvc.NewCatalogService(
			d.CatalogStore(ctx),
			config.C().Catalog.RequestTimeout(),
			config.C().Catalog.SimilarLimit(),
		)
	}

	return d.catalogService
}

func (d *di) OrderService(ctx context.Context) orderhttp.OrderService {
	if d.orderService == nil {
		d.orderService = ordersvc.NewOrderService(
			d.MessageSender(ctx),
			config.C().Telegram.SendTimeout(),
		)
	}

	return d.orderService
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
