package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/config"
	"github.com/mamadbah2/greenthumb/internal/fixtures"
	"github.com/mamadbah2/greenthumb/internal/idgen"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/repository/mongodb"
	"github.com/mamadbah2/greenthumb/internal/repository/sheets"
	"github.com/mamadbah2/greenthumb/internal/scheduler"
	"github.com/mamadbah2/greenthumb/internal/server/handlers"
	"github.com/mamadbah2/greenthumb/internal/server/router"
	"github.com/mamadbah2/greenthumb/internal/service"
	reportingsvc "github.com/mamadbah2/greenthumb/internal/service/reporting"
	"github.com/mamadbah2/greenthumb/internal/store"
	"github.com/mamadbah2/greenthumb/pkg/clients/webhook"
	"github.com/mamadbah2/greenthumb/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	seed, err := fixtures.Load()
	if err != nil {
		baseLogger.Fatal("failed to load fixtures", zap.Error(err))
	}

	garden := service.New(service.Deps{
		Store:  store.New(seed),
		IDs:    idgen.NewULID(),
		Delay:  latency.New(cfg.Latency.Scale),
		Logger: baseLogger,
	})

	var archive mongodb.Repository
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		archive = mongoRepo
		baseLogger.Info("report archive enabled", zap.String("db", cfg.MongoDB.DBName))
	} else {
		baseLogger.Warn("mongodb uri missing, report archive disabled")
	}

	var sheet sheets.Repository
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, logger.Named(baseLogger, "repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		sheet = sheetsRepo
		baseLogger.Info("sheet export enabled")
	}

	var notifier webhook.Client
	if cfg.Notifier.WebhookURL != "" {
		notifier = webhook.NewClient(cfg.Notifier)
		baseLogger.Info("webhook notifier enabled")
	} else {
		baseLogger.Warn("webhook url missing, reminders will only be logged")
	}

	reportingSvc := reportingsvc.NewService(garden, archive, sheet, logger.Named(baseLogger, "svc.reporting"))
	gardenHandler := handlers.NewGardenHandler(garden, reportingSvc, logger.Named(baseLogger, "handlers.garden"))
	engine := router.New(gardenHandler, logger.Named(baseLogger, "router"))

	sched, err := scheduler.NewScheduler(cfg.Scheduler, reportingSvc, notifier, logger.Named(baseLogger, "scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
