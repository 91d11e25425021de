package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sakura-sushi/backend/internal/config"
	"github.com/sakura-sushi/backend/internal/handlers"
	"github.com/sakura-sushi/backend/internal/middleware"
	"github.com/sakura-sushi/backend/internal/repository"
	"github.com/sakura-sushi/backend/internal/service"
	"github.com/sakura-sushi/backend/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting sushi bar api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories
	menuRepo := repository.NewInMemoryMenuRepository()

	var orderRepo repository.OrderRepository
	if cfg.Store.OrdersFile != "" {
		log.Info("using file-backed order store", "path", cfg.Store.OrdersFile)
		orderRepo = repository.NewFileOrderRepository(cfg.Store.OrdersFile, log)
	} else {
		log.Info("using in-memory order store, orders are lost on restart")
		orderRepo = repository.NewInMemoryOrderRepository()
	}

	// Initialize services
	menuService := service.NewMenuService(menuRepo)
	orderService := service.NewOrderService(orderRepo)
	paymentService := service.NewPaymentService()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(orderService, log)
	menuHandler := handlers.NewMenuHandler(menuService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	paymentHandler := handlers.NewPaymentHandler(paymentService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.ServeHTTP)

		// Menu endpoints
		r.Get("/menu", menuHandler.ListItems)
		r.Get("/menu/{itemId}", menuHandler.GetItem)

		// Order endpoints
		r.Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders", orderHandler.ListOrders)
		r.Get("/orders/{orderId}", orderHandler.GetOrder)
		r.Patch("/orders/{orderId}/status", orderHandler.UpdateStatus)
		r.Delete("/orders/{orderId}", orderHandler.DeleteOrder)

		// Payment simulation
		r.Post("/payment/simulate", paymentHandler.Simulate)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Final flush so the file-backed store reflects the last state
	if err := orderRepo.Close(); err != nil {
		log.Error("failed to flush order store", "error", err)
	}

	log.Info("server stopped gracefully")
}
