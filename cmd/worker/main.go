package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/stadiumbooking/config"
	"github.com/Domenick1991/stadiumbooking/internal/kafka"
	"github.com/Domenick1991/stadiumbooking/internal/logger"
	"github.com/Domenick1991/stadiumbooking/internal/notify"
	"github.com/Domenick1991/stadiumbooking/internal/repository"
	"github.com/Domenick1991/stadiumbooking/internal/service/booking"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The sweep needs the shared ledger, so the worker only runs against postgres.
	store, err := repository.NewPGStore(ctx, cfg.Database.DSN())
	if err != nil {
		logrus.Fatalf("connect postgres: %v", err)
	}
	defer store.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	bookingService := booking.NewBookingService(
		store.Ledger(),
		store.Catalog(),
		booking.WithProducer(producer, cfg.Kafka.BookingTopic),
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := notify.NewSender()

	go func() {
		if err := consumer.Consume(ctx, kafka.BookingEventHandler(sender.Send)); err != nil && ctx.Err() == nil {
			logrus.WithError(err).Error("consumer stopped")
		}
	}()

	sweep := time.NewTicker(time.Duration(cfg.Worker.CompletionSweepMinutes) * time.Minute)
	defer sweep.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweep.C:
			completed, err := bookingService.CompletePastBookings(ctx)
			if err != nil {
				logrus.WithError(err).Error("complete bookings")
				continue
			}
			if len(completed) > 0 {
				logrus.Infof("completed %d bookings", len(completed))
			}
		case s := <-sig:
			logrus.Infof("received signal %v, shutting down", s)
			return
		}
	}
}
