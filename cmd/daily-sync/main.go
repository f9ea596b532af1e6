// Command daily-sync executa uma vez a atualização diária de todos os clientes
// ativos e sai com código diferente de zero se a execução for abortada.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/history"
	"github.com/vfg2006/ads-report-api/internal/bootstrap"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	startedAt := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar configuração")
		recordAbort(config.DefaultHistoryDir, err, startedAt)
		return 1
	}

	log.Setup(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Erro ao inicializar a aplicação")
		recordAbort(cfg.DailySync.HistoryDir, err, startedAt)
		return 1
	}
	defer app.Close()

	report, err := app.DailySync.RunOnce(ctx)
	if err != nil {
		logrus.WithError(err).Error("Atualização diária abortada")
		return 1
	}

	logrus.WithFields(logrus.Fields{
		"execution_id":     report.ExecutionID,
		"duration_seconds": report.DurationSeconds,
	}).Info("Atualização diária finalizada")

	return 0
}

// recordAbort grava o registro de erro quando a execução nem chega ao agendador
func recordAbort(dir string, cause error, startedAt time.Time) {
	if dir == "" {
		dir = config.DefaultHistoryDir
	}

	if _, err := history.SaveFailure(history.NewFileStore(dir), cause, startedAt, time.Now()); err != nil {
		logrus.WithError(err).Error("Erro ao salvar histórico de erro")
	}
}
