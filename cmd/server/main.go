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

	"github.com/FulloMyself/tassel-shop-backend/internal/config"
	"github.com/FulloMyself/tassel-shop-backend/internal/handlers"
	"github.com/FulloMyself/tassel-shop-backend/internal/mail"
	"github.com/FulloMyself/tassel-shop-backend/internal/middleware"
	"github.com/FulloMyself/tassel-shop-backend/internal/service"
	"github.com/FulloMyself/tassel-shop-backend/internal/voucher"
	"github.com/FulloMyself/tassel-shop-backend/pkg/logger"
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

	log.Info("starting tassel shop email server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"smtp_host", cfg.SMTP.Host,
		"log_level", cfg.LogLevel,
	)

	// Voucher catalog: built-in seed unless a file is configured
	catalog := voucher.NewCatalog()
	if cfg.Voucher.File != "" {
		catalog, err = voucher.LoadFromFile(cfg.Voucher.File)
		if err != nil {
			log.Error("failed to load voucher file", "file", cfg.Voucher.File, "error", err)
			os.Exit(1)
		}
	}
	log.Info("voucher catalog loaded", "vouchers", catalog.Size())

	// Outbound mail: SMTP sender wrapped in the paired-send relay
	sender, err := mail.NewSMTPSender(cfg.SMTP)
	if err != nil {
		log.Error("failed to create smtp sender", "error", err)
		os.Exit(1)
	}
	relay := mail.NewRelay(sender, cfg, log)

	// Services
	orderService := service.NewOrderService(relay, log)
	giftService := service.NewGiftService(relay, log)
	bookingService := service.NewBookingService(relay, log)

	// Handlers
	healthHandler := handlers.NewHealthHandler(log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	giftHandler := handlers.NewGiftHandler(giftService, log)
	bookingHandler := handlers.NewBookingHandler(bookingService, log)
	voucherHandler := handlers.NewVoucherHandler(catalog, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS: only the storefront origins may call this API
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// Email relay endpoints
	r.Post("/send-order", orderHandler.SendOrder)
	r.Post("/send-gift-inquiry", giftHandler.SendGiftInquiry)
	r.Post("/send-massage-booking", bookingHandler.SendBooking)

	// Voucher endpoint
	r.Post("/api/validate-voucher", voucherHandler.ValidateVoucher)

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

	log.Info("server stopped gracefully")
}
