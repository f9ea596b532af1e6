package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/api/handler"
	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies reúne os serviços expostos pela API
type Dependencies struct {
	Reporter      reporting.Reporter
	Syncer        syncing.Syncer
	DailyJob      handler.DailyJob
	Authenticator authenticating.Authenticator
	Gatherer      prometheus.Gatherer
	Metrics       *metrics.Metrics
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, deps Dependencies) http.Handler {
	rt := router.New(
		router.WithInstrumentation(func(pattern string) func(http.Handler) http.Handler {
			return middleware.MetricsMiddleware(deps.Metrics, pattern)
		}),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(deps.Gatherer)...),
		router.WithRoutes(handler.Reports(deps.Reporter)...),
		router.WithRoutes(handler.MassSync(deps.Syncer)...),
		router.WithRoutes(handler.CronJobs(deps.DailyJob)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.CorsAllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
