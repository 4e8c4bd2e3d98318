package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/config"
	"github.com/plusgraphics/backoffice/internal/i18n"
	"github.com/plusgraphics/backoffice/internal/logger"
	"github.com/plusgraphics/backoffice/internal/session"
	"github.com/plusgraphics/backoffice/internal/view"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// The backend client pulls the bearer token out of each request's
	// session, so one client serves every user.
	client := api.NewClient(cfg.Backend.BaseURL,
		api.WithTokenFunc(session.TokenFromContext))

	sessions := session.NewManager(cfg.Session, client)

	view.SetLangResolver(func(r *http.Request) string {
		if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
			return c.Value
		}
		return i18n.DetectLanguage(r.Header.Get("Accept-Language"))
	})

	app := NewApp(client, sessions, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("backend", cfg.Backend.BaseURL),
			zap.Bool("dev", cfg.App.Dev))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}
