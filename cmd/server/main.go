package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/rakadenta/pomodoro-backend/internal/config"
	"github.com/rakadenta/pomodoro-backend/internal/db"
	"github.com/rakadenta/pomodoro-backend/internal/events"
	"github.com/rakadenta/pomodoro-backend/internal/httpserver"
	"github.com/rakadenta/pomodoro-backend/internal/logging"
	"github.com/rakadenta/pomodoro-backend/internal/middleware"
	"github.com/rakadenta/pomodoro-backend/internal/models"
	"github.com/rakadenta/pomodoro-backend/internal/repo"
	"github.com/rakadenta/pomodoro-backend/internal/service"
	"github.com/rakadenta/pomodoro-backend/internal/tokens"
)

func main() {
	cfg := config.Load()
	cfg.MustValidate()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gormDB, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := gormDB.AutoMigrate(&models.User{}, &models.Task{}, &models.Setting{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	store := &repo.GormRepo{DB: gormDB}
	issuer := &tokens.Issuer{
		AccessSecret:  cfg.AccessSecret,
		RefreshSecret: cfg.RefreshSecret,
		AccessTTL:     cfg.AccessTTL,
		RefreshTTL:    cfg.RefreshTTL,
	}

	authSvc := &service.AuthService{
		Repo:       store,
		Tokens:     issuer,
		BcryptCost: cfg.BcryptCost,
		Producer:   producer,
	}
	taskSvc := &service.TaskService{Repo: store, Producer: producer}
	settingSvc := &service.SettingService{Repo: store}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		TaskHandler:    &httpserver.TaskHTTP{Svc: taskSvc},
		SettingHandler: &httpserver.SettingHTTP{Svc: settingSvc},
		AccessSecret:   cfg.AccessSecret,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = producer.Close()

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("server stopped")
}
