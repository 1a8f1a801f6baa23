package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/glossandgo/booking/api"
	"github.com/glossandgo/booking/config"
	"github.com/glossandgo/booking/internal/auth"
	"github.com/glossandgo/booking/internal/bootstrap"
	"github.com/glossandgo/booking/internal/cache"
	"github.com/glossandgo/booking/internal/kafka"
	"github.com/glossandgo/booking/internal/repository"
	"github.com/glossandgo/booking/internal/service/availability"
	"github.com/glossandgo/booking/internal/service/booking"
	"github.com/glossandgo/booking/internal/service/content"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if cfg.Database.Configured() {
		pool, err = pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
	} else {
		log.Println("database not configured, running in local-only mode")
	}

	store := cache.NewStore(cfg.Redis)

	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewProducer(cfg.Kafka)
		defer producer.Close()
	} else {
		log.Println("kafka brokers not configured, booking events will not be published")
	}

	slotRepo := repository.NewSlotRepository(pool, store)
	bookingRepo := repository.NewBookingRepository(pool, store)
	contentRepo := repository.NewContentRepository(pool, store)

	availabilitySvc := availability.NewAvailabilityService(slotRepo)
	contentSvc := content.NewContentService(contentRepo)
	authSvc := auth.NewService(cfg.Admin)

	// Assigning a nil *kafka.Producer directly would make the interface
	// non-nil and defeat the producer check in the service.
	var bookingProducer booking.Producer
	if producer != nil {
		bookingProducer = producer
	}
	bookingSvc := booking.NewBookingService(bookingRepo, slotRepo, bookingProducer, cfg.Kafka)

	handlers := bootstrap.Handlers{
		Slots:    api.NewSlotHandler(availabilitySvc),
		Bookings: api.NewBookingHandler(bookingSvc),
		Content:  api.NewContentHandler(contentSvc),
		Auth:     api.NewAuthHandler(authSvc),
	}

	if err := bootstrap.Run(ctx, cfg, authSvc, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
