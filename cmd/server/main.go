package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tapconnect/internal/catalog"
	"tapconnect/internal/config"
	"tapconnect/internal/infrastructure/logger"
	"tapconnect/internal/infrastructure/mailer"
	"tapconnect/internal/infrastructure/metrics"
	"tapconnect/internal/infrastructure/mysql"
	"tapconnect/internal/infrastructure/sqlite"
	"tapconnect/internal/order"
	"tapconnect/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	site, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		zapLogger.Fatal("loading catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	zapLogger.Info("catalog loaded",
		zap.String("brand", site.Brand),
		zap.Int("cardStyles", len(site.CardStyles)),
		zap.Int("plans", len(site.Pricing)),
	)

	db, err := openOrderStore(cfg)
	if err != nil {
		zapLogger.Fatal("opening order store", zap.String("store", cfg.Store.Kind), zap.Error(err))
	}
	if db != nil {
		defer db.Close()
	}
	zapLogger.Info("order store ready", zap.String("store", cfg.Store.Kind))

	mail := mailer.New(cfg.Mail, zapLogger)

	orderModule := order.NewModule(db, site, mail, cfg, zapLogger)
	metrics.WatchSessions(orderModule.Sessions.Len)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go orderModule.Sessions.Run(ctx, cfg.Session.SweepInterval)

	router := server.NewRouter(orderModule.Controller, zapLogger)
	srv := server.New(cfg.Server.Port, router, zapLogger)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zapLogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
		os.Exit(1)
	}

	zapLogger.Info("server stopped gracefully")
}

// openOrderStore returns nil for the log store, where orders are only logged.
func openOrderStore(cfg *config.Config) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.Store.Kind {
	case config.StoreMySQL:
		db, err := mysql.NewConnection(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := mysql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	case config.StoreSQLite:
		db, err := sqlite.NewConnection(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	case config.StoreLog:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown order store %q", cfg.Store.Kind)
	}
}
