// @title                      Portfolio Inbox API
// @version                    1.0
// @description                Contact form intake and admin inbox for the portfolio site.
// @BasePath                   /
// @securityDefinitions.apikey AdminPassword
// @in                         header
// @name                       admin-password
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/auth"
	"github.com/oggyb/portfolio-inbox/internal/cache"
	"github.com/oggyb/portfolio-inbox/internal/cache/redis"
	"github.com/oggyb/portfolio-inbox/internal/config"
	"github.com/oggyb/portfolio-inbox/internal/db/gormdb"
	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/handler"
	"github.com/oggyb/portfolio-inbox/internal/journal"
	"github.com/oggyb/portfolio-inbox/internal/logger"
	"github.com/oggyb/portfolio-inbox/internal/metrics"
	"github.com/oggyb/portfolio-inbox/internal/middleware"
	"github.com/oggyb/portfolio-inbox/internal/notify"
	"github.com/oggyb/portfolio-inbox/internal/reconcile"
	contactgorm "github.com/oggyb/portfolio-inbox/internal/repository/gorm/contact"
	contactmem "github.com/oggyb/portfolio-inbox/internal/repository/memory/contact"
	routes "github.com/oggyb/portfolio-inbox/internal/router"
	"github.com/oggyb/portfolio-inbox/internal/scheduler"
	"github.com/oggyb/portfolio-inbox/internal/server"
	"github.com/oggyb/portfolio-inbox/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Development: cfg.IsDevelopment(),
		LogFile:     cfg.App.LogFile,
		MaxSize:     50,
		MaxBackups:  5,
		MaxAge:      30,
		Compress:    true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	checks := map[string]handler.Pinger{"database": nil, "cache": nil}

	// Init DB. The API keeps serving when Postgres is down: submissions go to
	// the journal and admin reads serve demo data.
	var repo contact.Repository
	switch cfg.DB.Driver {
	case "memory":
		log.Warn("using in-memory contact store, data is not persisted")
		repo = contactmem.NewRepository()

	default:
		gdb, err := gormdb.New(cfg.PostgresDSN())
		if err != nil {
			log.Fatal("open database", zap.Error(err))
		}
		defer func() { _ = gdb.Close() }()

		pingCtx, cancel := context.WithTimeout(rootCtx, 5*time.Second)
		err = gdb.Ping(pingCtx)
		cancel()

		switch {
		case err != nil:
			log.Warn("database unreachable, starting in fallback mode", zap.Error(err))
		case cfg.DB.AutoMigrate:
			if err := contactgorm.Migrate(gdb); err != nil {
				log.Error("auto migrate", zap.Error(err))
			}
		}

		repo = contactgorm.NewRepository(gdb)
		checks["database"] = gdb
	}

	// Init cache. Redis is optional.
	var (
		statsCache cache.Cache
		rdb        *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		client := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

		pingCtx, cancel := context.WithTimeout(rootCtx, 2*time.Second)
		err := client.Ping(pingCtx)
		cancel()

		if err != nil {
			log.Warn("redis unreachable, running without cache", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			_ = client.Close()
		} else {
			defer func() { _ = client.Close() }()
			statsCache = client
			rdb = client.Redis()
			checks["cache"] = client
		}
	}

	// Fallback journal.
	jrnl, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		log.Fatal("open journal", zap.Error(err))
	}
	defer func() { _ = jrnl.Close() }()

	dispatcher, err := newDispatcher(cfg)
	if err != nil {
		log.Fatal("notification dispatcher", zap.Error(err))
	}

	gate, err := auth.NewGate(cfg.Admin.Password, cfg.Admin.PasswordHash)
	if err != nil {
		log.Fatal("admin gate", zap.Error(err))
	}

	limiterStore, err := middleware.NewLimiterStore(rdb)
	if err != nil {
		log.Fatal("rate limiter store", zap.Error(err))
	}
	submitLimit, err := middleware.RateLimit(limiterStore, cfg.API.RateLimitSubmit, log)
	if err != nil {
		log.Fatal("rate limiter", zap.String("rate", cfg.API.RateLimitSubmit), zap.Error(err))
	}

	// Services.
	intakeSvc := service.NewIntakeService(repo, jrnl, statsCache, m, log)
	adminSvc := service.NewAdminService(repo, dispatcher, statsCache, m, log, service.AdminConfig{
		StatsTTL:     cfg.Redis.StatsTTL,
		ReplySubject: cfg.Notify.ReplySubject,
	})

	// Journal replay.
	reconciler := reconcile.New(jrnl, repo, statsCache, m, log)
	cron := scheduler.NewSchedulerService(
		reconciler,
		cfg.Reconcile.Interval,
		cfg.Reconcile.BatchTimeout,
		log,
	)
	defer cron.Close()

	// HTTP dependencies & server wiring.
	deps := routes.AppDeps{
		Home:        handler.NewHomeHandler(cfg.App.Name, checks),
		Contact:     handler.NewContactHandler(intakeSvc),
		Admin:       handler.NewAdminHandler(adminSvc, cron, reconciler),
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		SubmitLimit: submitLimit,
		AdminGate:   middleware.AdminGate(gate, log),
	}

	srv := server.New(server.Options{
		Addr:           cfg.Addr(),
		AllowedOrigins: cfg.API.CORSAllowedOrigins,
		TrustProxy:     cfg.API.TrustProxy,
		Metrics:        m,
		Logger:         log,
	}, deps)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.Addr()), zap.String("env", cfg.App.Env))

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	if cfg.Reconcile.Enabled {
		if err := cron.Start(); err != nil {
			log.Error("start reconciler", zap.Error(err))
		}
	}

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Waits for an in-flight replay to finish or time out.
	if err := cron.Stop(); err != nil {
		log.Warn("stop reconciler", zap.Error(err))
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server graceful shutdown failed", zap.Error(err))
	}

	log.Info("shutdown complete")
}

func newDispatcher(cfg *config.Config) (notify.Dispatcher, error) {
	switch cfg.Notify.Driver {
	case "webhook":
		return notify.NewWebhookDispatcher(cfg.Notify.WebhookURL, cfg.Notify.WebhookKey, cfg.Notify.Timeout), nil
	case "none":
		return notify.NopDispatcher{}, nil
	default:
		return notify.NewSMTPDispatcher(notify.SMTPConfig{
			Addr:     cfg.Notify.SMTPAddr,
			Username: cfg.Notify.SMTPUser,
			Password: cfg.Notify.SMTPPassword,
			From:     cfg.SenderAddress(),
			Timeout:  cfg.Notify.Timeout,
		})
	}
}
