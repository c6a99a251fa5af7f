package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mem "shelter/internal/adapters/storage/memory"
	"shelter/internal/config"
	"shelter/internal/domain/inquiries"
	"shelter/internal/domain/pets"
	"shelter/internal/platform/logger"
	"shelter/internal/router"
	"shelter/internal/seed"
)

// @title       Shelter API
// @version     1.0
// @description Pets and adoption inquiries for the animal shelter.
// @BasePath    /api/v1
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.New(logger.Options{}).Error("config error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	verifier, err := router.NewVerifier(cfg)
	if err != nil {
		log.Error("auth verifier error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
	if verifier == nil {
		log.Warn("authentication disabled: dev mode with X-Debug-* headers", nil)
	}

	petStore := mem.NewDatastore[pets.Pet]()
	inquiryStore := mem.NewDatastore[inquiries.Inquiry]()

	if err := seed.Load(context.Background(), cfg.Seed, seed.Stores{
		Pets:      petStore,
		Inquiries: inquiryStore,
	}, log); err != nil {
		log.Error("seed error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	h, err := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Policies:     cfg.Authentication.Policies,
		Logger:       log,
		Pets:         petStore,
		Inquiries:    inquiryStore,
	})
	if err != nil {
		log.Error("router error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("starting server", map[string]any{
			"addr":      cfg.Server.Addr,
			"auth_mode": string(cfg.Authentication.Mode),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
	}()

	<-done
	log.Info("shutting down", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]any{"err": err.Error()})
	}
}
