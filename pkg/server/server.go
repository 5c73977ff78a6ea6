package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	assessmenthandler "github.com/risk-digest/risk-digest/pkg/handlers/assessment"
	chartshandler "github.com/risk-digest/risk-digest/pkg/handlers/charts"
	digesthandler "github.com/risk-digest/risk-digest/pkg/handlers/digest"
	pageshandler "github.com/risk-digest/risk-digest/pkg/handlers/pages"
	threatshandler "github.com/risk-digest/risk-digest/pkg/handlers/threats"
	toolshandler "github.com/risk-digest/risk-digest/pkg/handlers/tools"
	"github.com/risk-digest/risk-digest/pkg/models/api"
	riskdigestmiddleware "github.com/risk-digest/risk-digest/pkg/server/middleware"
	assessmentsvc "github.com/risk-digest/risk-digest/pkg/services/assessment"
	digestsvc "github.com/risk-digest/risk-digest/pkg/services/digest"
	"github.com/risk-digest/risk-digest/pkg/services/threatfeed"
	toolssvc "github.com/risk-digest/risk-digest/pkg/services/tools"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Digests    digestsvc.Service
	Assessment *assessmentsvc.Calculator
	Threats    threatfeed.Service
	Tools      toolssvc.Directory
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires every handler into the route tree. Parsing the
// embedded page templates is the only fallible step.
func ConfigureRouter(config Config) (*chi.Mux, error) {
	deps := config.Dependencies

	digestHandler := digesthandler.NewHandler(deps.Digests)
	assessmentHandler := assessmenthandler.NewHandler(deps.Assessment)
	threatsHandler := threatshandler.NewHandler(deps.Threats)
	toolsHandler := toolshandler.NewHandler(deps.Tools)
	chartsHandler := chartshandler.NewHandler(deps.Digests, deps.Assessment, deps.Threats, deps.Tools)
	pagesHandler, err := pageshandler.NewHandler(deps.Digests, deps.Threats)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	router.Use(riskdigestmiddleware.Logger(&deps.Logger))
	router.Use(riskdigestmiddleware.Metrics)
	router.Use(chimiddleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/digests", digestHandler.List)
		r.Get("/digests/latest", digestHandler.Latest)
		r.Get("/digests/{date}", digestHandler.Get)

		r.Get("/assessment/questions", assessmentHandler.Questions)
		r.Post("/assessment/score", assessmentHandler.Score)

		r.Get("/threats/recent", threatsHandler.Recent)
		r.Get("/threats/severity", threatsHandler.SeverityDistribution)
		r.Get("/threats/categories", threatsHandler.CategoryDistribution)

		r.Get("/tools", toolsHandler.List)
		r.Get("/tools/{id}", toolsHandler.Get)

		r.Post("/charts/posture", chartsHandler.Posture)
		r.Get("/charts/severity", chartsHandler.Severity)
		r.Get("/charts/categories", chartsHandler.Categories)
		r.Get("/charts/timeline", chartsHandler.Timeline)
		r.Get("/charts/tools", chartsHandler.ToolComparison)
	})

	router.Get("/", pagesHandler.Home)
	router.Get("/digest/{date}", pagesHandler.Digest)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.Health{Status: "ok"})
	})
	router.Handle("/metrics", promhttp.Handler())

	return router, nil
}

type WebAPI struct {
	logger *zerolog.Logger
	server *http.Server
}

func NewWebAPI(config Config) (*WebAPI, error) {
	router, err := ConfigureRouter(config)
	if err != nil {
		return nil, err
	}
	logger := config.Dependencies.Logger
	return &WebAPI{
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}, nil
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
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
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
