package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/stadiumbooking/config"
	"github.com/Domenick1991/stadiumbooking/internal/auth"
	"github.com/Domenick1991/stadiumbooking/internal/availability"
	"github.com/Domenick1991/stadiumbooking/internal/bootstrap"
	"github.com/Domenick1991/stadiumbooking/internal/cache"
	"github.com/Domenick1991/stadiumbooking/internal/kafka"
	"github.com/Domenick1991/stadiumbooking/internal/logger"
	"github.com/Domenick1991/stadiumbooking/internal/pricing"
	"github.com/Domenick1991/stadiumbooking/internal/repository"
	"github.com/Domenick1991/stadiumbooking/internal/service/booking"
	"github.com/Domenick1991/stadiumbooking/internal/service/catalog"
	"github.com/Domenick1991/stadiumbooking/internal/service/stats"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not read .env")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logrus.Fatalf("open store: %v", err)
	}
	defer store.Close()

	engine := availability.NewEngine()

	catalogOpts := []catalog.CatalogServiceOption{catalog.WithEngine(engine)}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.VenuesCacheTTL)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("redis unavailable, venue listings will not be cached")
		} else {
			catalogOpts = append(catalogOpts, catalog.WithCache(redisCache))
		}
	}

	bookingOpts := []booking.BookingServiceOption{
		booking.WithEngine(engine),
		booking.WithCalculator(pricing.NewCalculator(cfg.Booking.ServiceFeeRate)),
		booking.WithDurations(cfg.Booking.LedgerDurationHours, cfg.Booking.QuoteDurationHours),
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	services := bootstrap.Services{
		Catalog:  catalog.NewCatalogService(store.Catalog(), catalogOpts...),
		Bookings: booking.NewBookingService(store.Ledger(), store.Catalog(), bookingOpts...),
		Stats:    stats.NewStatsService(store.Catalog(), store.Ledger()),
		Auth:     auth.NewDemoAuthenticator(repository.DemoOwnerID),
	}

	if err := bootstrap.Run(ctx, cfg, services); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		pg, err := repository.NewPGStore(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	default:
		return repository.NewMemoryStore(repository.WithLatency(cfg.Storage.Latency())), nil
	}
}
