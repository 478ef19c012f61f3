package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/dipole-link/pkg/handlers/link"
	"github.com/de-tools/dipole-link/pkg/metrics"
	dipolemiddleware "github.com/de-tools/dipole-link/pkg/server/middleware"
	"github.com/de-tools/dipole-link/pkg/services/config"
	"github.com/de-tools/dipole-link/pkg/services/link"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Calculator link.Calculator
	Profiles   config.ProfileRegistry
	Metrics    *metrics.Registry
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the link budget API and the metrics endpoint.
func ConfigureRouter(config Config) http.Handler {
	deps := config.Dependencies
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewRegistry()
	}
	linkHandler := handlers.NewHandler(deps.Calculator, deps.Profiles, deps.Metrics)

	router := chi.NewRouter()

	router.Use(dipolemiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/link-budget", linkHandler.Calculate)
		r.Get("/profiles", linkHandler.ListProfiles)
		r.Get("/profiles/{profile}/link-budget", linkHandler.CalculateProfile)
	})
	router.Handle("/metrics", deps.Metrics.Handler())

	return router
}

func NewWebAPI(config Config) *WebAPI {
	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	logger := config.Dependencies.Logger

	return &WebAPI{
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: ConfigureRouter(config),
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
