package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/glossandgo/booking/config"
	"github.com/glossandgo/booking/internal/email"
	"github.com/glossandgo/booking/internal/kafka"
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

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("kafka brokers are not configured, nothing to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(cfg.Email)

	log.Printf("worker consuming %s", cfg.Kafka.NotificationsTopic)
	err = consumer.Consume(ctx, func(ctx context.Context, payload []byte) error {
		var event kafka.BookingEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			log.Printf("decode event error: %v", err)
			return nil
		}
		if event.Type != kafka.EventBookingCreated {
			return nil
		}
		return sender.SendBookingEmails(event)
	})
	if err != nil {
		log.Printf("consumer stopped: %v", err)
	}
}
