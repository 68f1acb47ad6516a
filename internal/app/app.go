package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/lefergusion/storefront/config"
	"github.com/lefergusion/storefront/internal/adapter/catalog"
	"github.com/lefergusion/storefront/internal/adapter/httphandler"
	"github.com/lefergusion/storefront/internal/adapter/kafka"
	"github.com/lefergusion/storefront/internal/core/domain"
	"github.com/lefergusion/storefront/internal/core/port"
	"github.com/lefergusion/storefront/internal/core/service"
	"github.com/lefergusion/storefront/internal/core/state"
	"github.com/lefergusion/storefront/pkg/schema"
)

type coreService struct {
	catalogSeeder   port.CatalogSeeder
	catalogReader   port.CatalogReader
	catalogSearcher port.CatalogSearcher
	cartEditor      port.CartEditor
	cartReader      port.CartReader
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	store      *state.Store
	events     port.ClientEventsProducer
	service    coreService
	loader     catalog.Loader
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStateCore()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initCatalogLoader()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStateCore() {
	app.store = state.NewStore()
	app.store.Subscribe(func(s domain.State) {
		slog.Debug("state published",
			"version", s.Version,
			"nVisible", len(s.Visible),
			"cartCount", domain.CartCount(s.Cart),
		)
	})
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	seedBrokers := app.cfg.Broker.SeedBrokers
	if len(seedBrokers) == 0 {
		slog.Info("no seed brokers configured, client events disabled")
		return
	}

	serde, err := schema.NewSerdeClientEventV1()
	if err != nil {
		app.fallDown(op, err)
	}

	topic := app.cfg.Broker.ClientEventsTopic
	eventsProducer, err := kafka.NewClientEventsProducer(
		kafka.ProducerClientOpt(app.ctx, seedBrokers, topic),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.events = eventsProducer
}

func (app *App) initCoreService() {
	s := service.New(app.store, app.events)
	app.service.catalogSeeder = s
	app.service.catalogReader = s
	app.service.catalogSearcher = s
	app.service.cartEditor = s
	app.service.cartReader = s
}

func (app *App) initCatalogLoader() {
	app.loader = catalog.NewLoader(
		app.cfg.Catalog.Source,
		app.cfg.Catalog.FetchTimeout,
		app.cfg.Catalog.FetchAttempts,
		app.service.catalogSeeder,
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.service.catalogReader)
	httphandler.RegisterSearch(mux, app.service.catalogSearcher)
	httphandler.RegisterCart(mux, app.service.cartEditor, app.service.cartReader)
	httphandler.RegisterCatalog(mux, app.loader)

	handler := httphandler.AllowJSON(mux)
	httpServer := httphandler.NewHTTPServer(addr, handler)
	app.httpServer = httpServer
}

// Run starts the http server and the initial catalog load. A failed
// load keeps the catalog empty instead of tearing the application
// down; browsing surfaces serve the empty case.
func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	go func() {
		if err := app.loader.Load(app.ctx); err != nil {
			slog.Error("initial catalog load failed", "err", err)
		}
	}()

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.events != nil {
		app.events.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
