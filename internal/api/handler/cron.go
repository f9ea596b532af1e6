package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

const CronJobTypeDaily = "daily"

// DailyJob é o agendador da atualização diária
type DailyJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// RunDailyJob dispara manualmente a atualização diária em segundo plano
func RunDailyJob(job DailyJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := job.TriggerManualSync(); err != nil {
			logger.WithError(err).Warn("cron: execução manual recusada")
			apiErrors.WriteDomainError(w, err)
			return
		}

		logger.Info("cron: atualização diária disparada manualmente")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    CronJobTypeDaily,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(job DailyJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			CronJobTypeDaily: job.GetStatus(),
		})
	})
}
