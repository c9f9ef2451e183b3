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

	"github.com/redis/go-redis/v9"

	"github.com/chemtai/portfolio/internal/config"
	"github.com/chemtai/portfolio/internal/handler"
	"github.com/chemtai/portfolio/internal/logging"
	"github.com/chemtai/portfolio/internal/mailer"
	"github.com/chemtai/portfolio/internal/repository"
	"github.com/chemtai/portfolio/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.App.LogLevel, cfg.IsDevelopment())

	ctx := context.Background()

	if cfg.Database.MigrateOnStart {
		if err := repository.Migrate(cfg.Database.URL); err != nil {
			logging.Fatal("migrations failed", "error", err)
		}
	}

	pool, err := repository.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	site := mailer.SiteInfo{
		SiteName:      cfg.App.SiteName,
		OwnerName:     cfg.App.OwnerName,
		OwnerTitle:    cfg.App.OwnerTitle,
		OwnerLocation: cfg.App.OwnerLocation,
		OwnerPhone:    cfg.App.OwnerPhone,
		AdminEmail:    cfg.SMTP.AdminEmail,
	}

	var sender mailer.Sender
	if cfg.SMTP.Host == "" {
		slog.Warn("MAIL_SERVER not set, emails will only be logged")
		sender = mailer.NewDevSender(site)
	} else {
		sender, err = mailer.NewSMTPSender(cfg.SMTP, site)
		if err != nil {
			logging.Fatal("failed to create smtp sender", "error", err)
		}
	}

	submissionRepo := repository.NewPgSubmissionRepository(pool)
	contactService := service.NewContactService(submissionRepo, sender)

	pages, err := handler.NewPages(handler.SiteInfo{
		Name:        cfg.App.SiteName,
		Description: cfg.App.SiteDescription,
		AdminEmail:  cfg.SMTP.AdminEmail,
		OwnerName:   cfg.App.OwnerName,
		OwnerTitle:  cfg.App.OwnerTitle,
	})
	if err != nil {
		logging.Fatal("failed to parse page templates", "error", err)
	}

	contactHandler := handler.NewContactHandler(contactService, pages)
	apiHandler := handler.NewAPIHandler(contactService)
	healthHandler := handler.NewHealthHandler(pool)

	// Rate-limit windows live in Redis when configured, otherwise in memory.
	var store handler.WindowStore
	if cfg.RateLimit.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RateLimit.RedisURL)
		if err != nil {
			logging.Fatal("invalid REDIS_URL", "error", err)
		}
		store = handler.NewRedisWindowStore(redis.NewClient(opt))
	} else {
		store = handler.NewMemoryWindowStore()
	}

	contactLimiter := handler.NewRateLimiter("contact", cfg.RateLimit.ContactPerMinute, store)
	contactLimiter.OnLimit = contactHandler.RateLimitExceeded
	apiLimiter := handler.NewRateLimiter("api", cfg.RateLimit.APIPerMinute, store)

	requireToken := handler.RequireToken(cfg.Admin.APIToken)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", pages.Home)
	mux.HandleFunc("GET /about", pages.About)
	mux.HandleFunc("GET /services", pages.Services)
	mux.HandleFunc("GET /resume", pages.Resume)
	mux.HandleFunc("GET /contact", contactHandler.Show)
	mux.Handle("POST /contact", contactLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))

	mux.HandleFunc("GET /api/health", healthHandler.Health)
	mux.Handle("GET /api/contact-messages/count",
		apiLimiter.Middleware(requireToken(http.HandlerFunc(apiHandler.Count))))
	mux.Handle("GET /api/contact-messages/list",
		apiLimiter.Middleware(requireToken(http.HandlerFunc(apiHandler.List))))
	mux.Handle("POST /api/contact-messages/{id}/mark-processed",
		apiLimiter.Middleware(requireToken(http.HandlerFunc(apiHandler.MarkProcessed))))

	// Everything else is a 404 page.
	mux.HandleFunc("/", pages.NotFound)

	root := handler.RequestID(
		handler.RequestLogger(
			handler.SecurityHeaders(
				handler.Recover(pages)(mux))))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
