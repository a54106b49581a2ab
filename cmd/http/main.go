package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"storefront/api/internal/config"
	"storefront/api/internal/handler"
	"storefront/api/internal/model"
	"storefront/api/internal/repository"
	"storefront/api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Setup Database
	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	fmt.Println("Connected to database")

	if err := repository.CreateSchema(ctx, dbPool); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	// 3. Setup Logic
	itemService := service.NewItemService(repository.NewItemRepository(dbPool))
	orderService := service.NewOrderService(repository.NewOrderRepository(dbPool))
	userService := service.NewUserService(repository.NewUserRepository(dbPool))

	h := handler.NewHandler(
		handler.NewResourceHandler[model.Item, model.ItemInput](itemService, "Item"),
		handler.NewResourceHandler[model.Order, model.OrderInput](orderService, "Order"),
		handler.NewResourceHandler[model.User, model.UserInput](userService, "User"),
	)

	// 4. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 5. Run Server with Graceful Shutdown
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fmt.Printf("Starting server on port %s\n", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		fmt.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	fmt.Println("Server exiting")
}
