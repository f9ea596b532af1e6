package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

// SyncClient busca o período na plataforma, grava os registros novos e retorna o resultado
func SyncClient(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, ok := parseReportQuery(w, r)
		if !ok {
			return
		}
		logger.WithFields(query.fields()).Info("reports: sincronizando cliente")

		report, err := service.GenerateReport(r.Context(), query.ClientID, query.Platform, query.StartDate, query.EndDate)
		if err != nil && !errors.Is(err, domain.ErrNoData) {
			logger.WithFields(query.fields()).WithError(err).Error("reports: falha ao sincronizar cliente")
			apiErrors.WriteDomainError(w, err)
			return
		}

		message := fmt.Sprintf("%d novos registros salvos", report.Outcome.Saved)
		if errors.Is(err, domain.ErrNoData) {
			message = domain.ErrNoData.Error()
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": message,
			"fetched": len(report.Records),
			"report":  report,
		})
	})
}

// DownloadReport gera o CSV do período com todos os registros buscados
func DownloadReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, ok := parseReportQuery(w, r)
		if !ok {
			return
		}
		logger.WithFields(query.fields()).Info("reports: gerando CSV")

		report, err := service.GenerateReport(r.Context(), query.ClientID, query.Platform, query.StartDate, query.EndDate)
		if err != nil {
			logger.WithFields(query.fields()).WithError(err).Warn("reports: CSV não gerado")
			apiErrors.WriteDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
		if err := service.WriteCSV(w, report); err != nil {
			logger.WithFields(query.fields()).WithError(err).Error("reports: erro ao escrever CSV")
		}
	})
}

// SendWhatsApp envia o resumo do período para o grupo do cliente
func SendWhatsApp(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, ok := parseReportQuery(w, r)
		if !ok {
			return
		}
		logger.WithFields(query.fields()).Info("reports: enviando relatório via WhatsApp")

		delivery, err := service.SendWhatsApp(r.Context(), query.ClientID, query.Platform, query.StartDate, query.EndDate)
		if err != nil {
			logger.WithFields(query.fields()).WithError(err).Error("reports: falha no envio via WhatsApp")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":  "Relatório enviado com sucesso",
			"delivery": delivery,
		})
	})
}
