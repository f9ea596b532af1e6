package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/infrastructure/history"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/evolution"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/twilio"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/scheduler"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
)

const (
	ProviderEvolution = "evolution"
	ProviderTwilio    = "twilio"
)

// App reúne os serviços montados a partir da configuração
type App struct {
	Conn      *postgres.Connection
	Registry  *prometheus.Registry
	Metrics   *metrics.Metrics
	Syncer    *syncing.Service
	Reporter  *reporting.Service
	DailySync *scheduler.DailySyncService
}

// New conecta ao PostgreSQL e monta as integrações, os casos de uso e o agendador
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	clientRepo := repository.NewClientRepository(conn)

	metaIntegrator := meta.New(cfg.Facebook, metaclient.NewClient(cfg.Facebook, m))
	googleIntegrator := googleads.New(cfg.GoogleAds, googleadsclient.NewClient(ctx, cfg.GoogleAds, m))

	syncer, err := syncing.NewService(cfg, clientRepo, []syncing.PlatformDeps{
		{Fetcher: metaIntegrator, Store: repository.NewFacebookCampaignRepository(conn)},
		{Fetcher: googleIntegrator, Store: repository.NewGoogleAdsCampaignRepository(conn)},
	}, m)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	sender, err := NewMessageSender(cfg.WhatsApp)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	reporter := reporting.NewService(syncer, clientRepo, sender, nil, m)
	dailySync := scheduler.NewDailySyncService(syncer, history.NewFileStore(cfg.DailySync.HistoryDir), cfg)

	return &App{
		Conn:      conn,
		Registry:  registry,
		Metrics:   m,
		Syncer:    syncer,
		Reporter:  reporter,
		DailySync: dailySync,
	}, nil
}

// NewMessageSender escolhe o gateway de WhatsApp configurado
func NewMessageSender(cfg config.WhatsApp) (integrator.MessageSender, error) {
	switch cfg.Provider {
	case "", ProviderEvolution:
		return evolution.NewClient(cfg), nil
	case ProviderTwilio:
		return twilio.NewClient(cfg), nil
	default:
		return nil, errors.Errorf("provedor de WhatsApp desconhecido: %q", cfg.Provider)
	}
}

func (a *App) Close() {
	if err := a.Conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
	}
}
