package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/client/notification"
	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/infra"
	"github.com/s21platform/messenger-service/internal/pkg/tx"
	"github.com/s21platform/messenger-service/internal/pkg/validator"
	db "github.com/s21platform/messenger-service/internal/repository/postgres"
	"github.com/s21platform/messenger-service/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	notificationClient := notification.New(cfg)
	defer notificationClient.Close()

	vldtr := validator.New()

	handler := rest.New(dbRepo, notificationClient, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, cfg.Service.JWTSecret)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	rest.AttachRoutes(router, handler)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
