package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayfront/internal/app/commands"
	"stayfront/internal/app/dto"
	hostingapp "stayfront/internal/app/handlers/hosting"
	listingsapp "stayfront/internal/app/handlers/listings"
	preferencesapp "stayfront/internal/app/handlers/preferences"
	searchapp "stayfront/internal/app/handlers/search"
	"stayfront/internal/app/middleware"
	appoutbox "stayfront/internal/app/outbox"
	"stayfront/internal/app/policies"
	"stayfront/internal/app/queries"
	"stayfront/internal/domain/hosting"
	"stayfront/internal/domain/locale"
	"stayfront/internal/infra/broker/kafka"
	"stayfront/internal/infra/config"
	mongodb "stayfront/internal/infra/db/mongo"
	ginserver "stayfront/internal/infra/http/gin"
	"stayfront/internal/infra/listingapi"
	"stayfront/internal/infra/obs"
	"stayfront/internal/infra/outbox"
	"stayfront/internal/infra/session"
	"stayfront/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using fallback configuration", "error", err)
		cfg = config.Defaults()
		cfg.Env = env
		cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	}

	app, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("application wiring failed", "error", err)
		os.Exit(1)
	}
	defer app.close(logger)

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, app.health, app.handlers)

	if app.worker != nil {
		go func() {
			if err := app.worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("outbox worker stopped", "error", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "preferences", cfg.PreferencesBackend, "publishing", cfg.Publishing())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	health   obs.HealthHandlers
	worker   *outbox.Worker
	closers  []func(context.Context) error
}

func buildApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) (*application, error) {
	app := &application{health: obs.HealthHandlers{Checks: map[string]obs.Check{}}}

	dict, err := locale.LoadDictionary()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	listingClient := listingapi.New(listingapi.Options{
		BaseURL:  cfg.ListingAPIURL,
		Timeout:  cfg.ListingAPITimeout,
		CacheTTL: cfg.ListingCacheTTL,
		Logger:   logger,
	})
	listingClient.Start()
	app.closers = append(app.closers, func(context.Context) error { listingClient.Stop(); return nil })

	var mongoClient *mongodb.Client
	if cfg.MongoURI != "" {
		mongoClient, err = mongodb.New(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		app.closers = append(app.closers, mongoClient.Close)
		app.health.Checks["mongo"] = mongoClient.Ping
	}

	var store policies.PreferenceStore = memory.NewPreferenceStore()
	if cfg.PreferencesBackend == config.PreferencesMongo {
		mongoStore, err := mongodb.NewPreferenceStore(ctx, mongoClient.DB)
		if err != nil {
			return nil, fmt.Errorf("preference store: %w", err)
		}
		store = mongoStore
	}

	registry := session.NewRegistry(store, cfg.SessionTTL, cfg.SessionCapacity, logger)
	go registry.Start()
	app.closers = append(app.closers, func(context.Context) error { registry.Stop(); return nil })

	var box appoutbox.Outbox = memory.NewOutbox(logger)
	if cfg.Publishing() {
		outboxStore, err := outbox.NewStore(ctx, mongoClient.DB)
		if err != nil {
			return nil, fmt.Errorf("outbox store: %w", err)
		}
		producer, err := kafka.NewProducer(kafka.Options{Brokers: cfg.KafkaBrokers, Logger: logger})
		if err != nil {
			return nil, fmt.Errorf("kafka producer: %w", err)
		}
		app.closers = append(app.closers, func(context.Context) error { return producer.Close() })
		box = outboxStore
		app.worker = &outbox.Worker{
			Store:       outboxStore,
			Producer:    producer,
			Interval:    cfg.OutboxPollInterval,
			TopicPrefix: cfg.KafkaTopicPrefix,
			Backoff:     cfg.RetryBackoff,
			Logger:      logger,
		}
	}

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler[listingsapp.GetHomepageQuery, dto.Homepage](queryBus, listingsapp.GetHomepageQuery{}.Key(),
		&listingsapp.GetHomepageHandler{Listings: listingClient, Logger: logger})
	queries.RegisterHandler[listingsapp.SearchResultsQuery, dto.Results](queryBus, listingsapp.SearchResultsQuery{}.Key(),
		&listingsapp.SearchResultsHandler{Listings: listingClient, Logger: logger})
	queries.RegisterHandler[listingsapp.GetRoomQuery, dto.Room](queryBus, listingsapp.GetRoomQuery{}.Key(),
		&listingsapp.GetRoomHandler{Listings: listingClient, Logger: logger})

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler[searchapp.SubmitSearchCommand, searchapp.SubmitResult](commandBus, searchapp.SubmitSearchCommand{}.Key(),
		&searchapp.SubmitSearchHandler{Visitors: registry, Outbox: box, Encoder: appoutbox.JSONEventEncoder{}})
	commands.RegisterHandler[preferencesapp.UpdatePreferencesCommand, dto.Preferences](commandBus, preferencesapp.UpdatePreferencesCommand{}.Key(),
		&preferencesapp.UpdatePreferencesHandler{Visitors: registry, Store: store, Outbox: box, Encoder: appoutbox.JSONEventEncoder{}})
	commands.RegisterHandler[hostingapp.SubmitIntentCommand, hosting.IntentSubmitted](commandBus, hostingapp.SubmitIntentCommand{}.Key(),
		&hostingapp.SubmitIntentHandler{Visitors: registry, Outbox: box, Encoder: appoutbox.JSONEventEncoder{}})

	commandBusWithMiddleware := middleware.ChainCommands(
		commandBus,
		middleware.CommandLogging(logger),
		middleware.OutboxFlush(box),
	)
	queryBusWithMiddleware := middleware.ChainQueries(queryBus, middleware.QueryLogging(logger))

	app.handlers = ginserver.Handlers{
		Pages: ginserver.PageHandler{
			Queries:    queryBusWithMiddleware,
			Visitors:   registry,
			Dictionary: dict,
		},
		SearchBar: ginserver.SearchBarHandler{
			Visitors:   registry,
			Dictionary: dict,
			Commands:   commandBusWithMiddleware,
		},
		Preferences: ginserver.PreferencesHandler{
			Visitors: registry,
			Commands: commandBusWithMiddleware,
		},
		Visitors: ginserver.VisitorMiddleware(cfg.SecureCookies),
	}
	return app, nil
}

func (a *application) close(logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			logger.Warn("shutdown step failed", "error", err)
		}
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
