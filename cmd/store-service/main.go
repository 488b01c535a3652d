package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andreasstove999/sportsstore-go/internal/cart"
	"github.com/andreasstove999/sportsstore-go/internal/catalog"
	"github.com/andreasstove999/sportsstore-go/internal/checkout"
	"github.com/andreasstove999/sportsstore-go/internal/config"
	"github.com/andreasstove999/sportsstore-go/internal/db"
	"github.com/andreasstove999/sportsstore-go/internal/events"
	httpapi "github.com/andreasstove999/sportsstore-go/internal/http"
	"github.com/andreasstove999/sportsstore-go/internal/order"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[store-service] ", log.LstdFlags|log.Lshortfile)

	if err := db.RunMigrations(cfg.DBDSN, logger); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	database, err := db.Open(cfg.DBDSN)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer database.Close()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catalog.EnsurePopulated(seedCtx, database); err != nil {
		cancelSeed()
		logger.Fatalf("seed catalog: %v", err)
	}
	cancelSeed()

	productRepo := catalog.NewRepository(database)
	orderRepo := order.NewRepository(database)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	cartStore := cart.NewRedisStore(redisClient, cfg.CartTTL)

	rabbitConn, err := events.Dial(cfg.RabbitURL)
	if err != nil {
		logger.Fatalf("connect to rabbitmq: %v", err)
	}
	defer rabbitConn.Close()

	sequenceRepo := events.NewSequenceRepository(database)
	publisher, err := events.NewRabbitPublisher(rabbitConn, sequenceRepo)
	if err != nil {
		logger.Fatalf("create event publisher: %v", err)
	}

	checkoutSvc := checkout.NewService(orderRepo, publisher, logger)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:   logger,
		Timeout:  cfg.RequestTimeout,
		Products: productRepo,
		Carts:    cartStore,
		Orders:   orderRepo,
		Checkout: checkoutSvc,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("store-service listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Printf("publisher close error: %v", err)
	}
}
