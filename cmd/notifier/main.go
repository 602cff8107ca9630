package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/RSO-team2/reservation-management/internal/config"
	kafkax "github.com/RSO-team2/reservation-management/internal/kafka"
	"github.com/RSO-team2/reservation-management/internal/notifier"
	"github.com/RSO-team2/reservation-management/internal/redisx"
	"github.com/RSO-team2/reservation-management/internal/reservations"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &notifier.Service{
		Dedup:       &redisx.Dedup{RDB: rdb, Service: "notifier"},
		ServiceName: cfg.ServiceName + "-notifier",
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.NotifierGroup, reservations.TopicReservationCreated, cfg.NotifierWorkers)

	go func() {
		log.Printf("notifier consumer started: group=%s topic=%s workers=%d",
			cfg.NotifierGroup, reservations.TopicReservationCreated, cfg.NotifierWorkers)
		if err := cons.Start(ctx, svc.HandleReservationCreated); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Println("shutting down notifier...")
	cancel()
}
