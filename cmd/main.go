package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/wedloft/site-service/internal/app"
	"github.com/wedloft/site-service/internal/config"
	"github.com/wedloft/site-service/internal/entities"
	"github.com/wedloft/site-service/internal/generation"
	"github.com/wedloft/site-service/internal/handler"
	"github.com/wedloft/site-service/internal/postgres"
	"github.com/wedloft/site-service/internal/repo"
	"github.com/wedloft/site-service/internal/service"
	"github.com/wedloft/site-service/pkg/trm"
)

// @title           Wedding Site Order Service API
// @version         1.0
// @description     Order lifecycle and content generation HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	var store service.OrderStore
	switch conf.Storage.Driver {
	case "memory":
		store = repo.NewMemoryStore()
		logger.Info("using in-memory store")
	default:
		db, err := postgres.New(conf.Postgres)
		panicIfErr("failed to connect to db", err)
		defer db.Close()

		panicIfErr("failed to run migrations", postgres.RunMigrations(context.Background(), db))
		logger.Info("postgres connected")

		store = repo.NewPostgresStore(db, trm.NewManager(db))
	}

	generator := generation.NewClient(generation.Config{
		BaseURL:    conf.Generation.BaseURL,
		APIKey:     conf.Generation.APIKey,
		Model:      conf.Generation.Model,
		HTTPClient: &http.Client{Timeout: conf.Generation.Timeout},
	})

	orderService := service.NewOrderService(logger, store, generator)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	if conf.Env == "development" {
		app.SetStarters(demoSeeder{svc: orderService, logger: logger})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type orderCreator interface {
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
}

// demoSeeder provisions the well-known DEMO123 order so the wizard can be
// exercised locally without a storefront purchase.
type demoSeeder struct {
	svc    orderCreator
	logger *slog.Logger
}

func (s demoSeeder) Start(ctx context.Context) error {
	_, err := s.svc.CreateOrder(ctx, entities.OrderDraft{
		EtsyOrderID: "DEMO-001",
		AccessCode:  "DEMO123",
		Template:    entities.TemplateSageGreen,
		WeddingDetails: &entities.WeddingDetails{
			CoupleNames:   "Emma & Lucas",
			WeddingDate:   "2027-06-22",
			WeddingTime:   "16:00",
			Venue:         "Opera Castle",
			VenueAddress:  "123 Elegance Lane, Paris",
			GoogleMapsURL: "https://maps.google.com",
			LoveStory:     "From a shared glance to a lifetime of love.",
			Agenda: []entities.AgendaItem{
				{Time: "4:00 PM", Event: "Wedding Ceremony"},
				{Time: "5:30 PM", Event: "Cocktail Hour"},
				{Time: "7:00 PM", Event: "Dinner & Reception"},
			},
		},
	})
	if errors.Is(err, entities.ErrOrderExists) {
		return nil
	}
	if err == nil {
		s.logger.Info("demo order seeded", slog.String("access_code", "DEMO123"))
	}
	return err
}
