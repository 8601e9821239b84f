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

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/cloud-ru/feasibility-go/internal/api"
	"github.com/cloud-ru/feasibility-go/internal/config"
	"github.com/cloud-ru/feasibility-go/internal/logging"
	"github.com/cloud-ru/feasibility-go/internal/projection"
	"github.com/cloud-ru/feasibility-go/internal/storage"
	"github.com/cloud-ru/feasibility-go/internal/tools"
	"github.com/cloud-ru/feasibility-go/internal/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := logging.Setup(cfg.LogLevel, cfg.LogDirectory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx := context.Background()

	shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		log.WithError(err).Fatal("Не удалось инициализировать трейсинг")
	}

	store, err := storage.Open(ctx, cfg.DatabaseURL, cfg.StorageDir)
	if err != nil {
		log.WithError(err).Fatal("Не удалось открыть хранилище проектов")
	}
	defer store.Close()

	session := projection.NewSession(projection.New(cfg.EngineOptions()))
	registry := tools.Registry(cfg, tracing.Tracer, session)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.NewHandler(registry, session, store))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Сервер запущен")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Ошибка сервера")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Остановка сервера...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Сервер остановлен принудительно")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Warn("Ошибка остановки трейсинга")
	}
	log.Info("Сервер остановлен")
}
