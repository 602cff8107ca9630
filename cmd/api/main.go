package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RSO-team2/reservation-management/internal/config"
	"github.com/RSO-team2/reservation-management/internal/httpx"
	kafkax "github.com/RSO-team2/reservation-management/internal/kafka"
	"github.com/RSO-team2/reservation-management/internal/postgres"
	"github.com/RSO-team2/reservation-management/internal/reservations"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Kafka producer for reservation.created
	prod := kafkax.NewProducer(cfg.KafkaBrokers, reservations.TopicReservationCreated, 1024)
	prod.Start(ctx)

	// Store & handler
	repo := &reservations.Repo{DB: db}
	router := httpx.NewRouter()
	rh := &httpx.ReservationsHandler{
		Store:    repo,
		Producer: prod,
		Service:  cfg.ServiceName,
	}
	rh.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // close inbox -> flush & close writer
	cancel()
	prod.WaitClosed() // drain
}
