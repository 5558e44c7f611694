package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Quadr1on/mantrigamugil/internal/config"
	"github.com/Quadr1on/mantrigamugil/internal/delivery/http/handlers"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/kafka"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/logger"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/metrics"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/migrate"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/postgres"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/postgres/repository"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/razorpay"
	orderusecase "github.com/Quadr1on/mantrigamugil/internal/usecase/order"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	if cfg.Razorpay.KeyID == "" || cfg.Razorpay.KeySecret == "" {
		log.Fatalf("razorpay credentials missing")
	}

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.OrderDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init order repo
	orderRepo := repository.NewDefaultOrderRepository(db)
	// Orphaned gateway orders log
	orphanLogger := logger.NewPGOrphanOrderLogger(db)

	// Payment gateway client
	gateway := razorpay.NewClient(cfg.Razorpay.BaseURL, cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	// Kafka order events
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	eventPublisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
	defer eventPublisher.Close()

	// Metrics
	orderMetrics := metrics.NewOrderMetrics()

	// Init order usecase
	uc := orderusecase.NewDefaultOrderUsecase(
		orderRepo,
		gateway,
		orphanLogger,
		eventPublisher,
		orderMetrics,
		orderusecase.Pricing{
			BookPrice:    cfg.Pricing.BookPrice,
			ShippingCost: cfg.Pricing.ShippingCost,
			Currency:     cfg.Pricing.Currency,
			BookTitle:    cfg.Pricing.BookTitle,
		},
	)

	server := handlers.NewServer(uc, cfg.AdminAPI.Token)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: server.Router,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		log.Printf("http server started on %s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}
