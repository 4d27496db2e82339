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

	"embroidery/cmd"
	"embroidery/internal/adapters/out/postgres"
	"embroidery/internal/adapters/out/postgres/migrations"
	"embroidery/internal/adapters/out/redisstore"
	"embroidery/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	appLog := logger.New(logger.Options{
		ServiceName: "embroidery",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(cfg.DSN(), postgres.PoolOptions{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.DB.AutoMigrate {
		if err = migrations.Up(ctx, sqlDB); err != nil {
			return err
		}
		appLog.Info(ctx, "migrations applied")
	}

	redis, err := redisstore.New(ctx, redisstore.Options{
		URL:      cfg.Redis.URL,
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		return err
	}
	defer redis.Close()

	app, err := cmd.NewCompositionRoot(cfg, gormDB, redis, appLog)
	if err != nil {
		return err
	}

	jobs := app.CreateJobManager()
	if err = jobs.StartAll(); err != nil {
		return fmt.Errorf("starting jobs: %w", err)
	}

	e := app.CreateHTTPServer().Echo()
	if cfg.App.IsDev() {
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.ERROR)
	}

	serveErr := make(chan error, 1)
	go func() {
		appLog.Info(appLog.WithField(ctx, "port", cfg.App.Port), "http server listening")
		serveErr <- startWebServer(e, cfg.App.Port)
	}()

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		appLog.Info(context.Background(), "shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	jobs.StopAll(shutdownCtx)
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		err = errors.Join(err, shutdownErr)
	}
	return err
}

func startWebServer(e *echo.Echo, port string) error {
	err := e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
