package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/api"
	"github.com/vfg2006/ads-report-api/internal/bootstrap"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer app.Close()

	if err := app.DailySync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da atualização diária")
	} else {
		logrus.Info("Agendador da atualização diária iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Reporter:      app.Reporter,
		Syncer:        app.Syncer,
		DailyJob:      app.DailySync,
		Authenticator: authenticating.NewService(cfg),
		Gatherer:      app.Registry,
		Metrics:       app.Metrics,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
