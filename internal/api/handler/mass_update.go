package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

type massUpdateRequest struct {
	Period int `json:"period"`
}

// MassUpdate ressincroniza todos os clientes ativos nos últimos 7, 15 ou 30 dias
func MassUpdate(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req massUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		logger.WithField("period", req.Period).Info("sync: iniciando atualização em massa")

		report, err := service.BulkResync(r.Context(), req.Period)
		if err != nil {
			logger.WithField("period", req.Period).WithError(err).Error("sync: atualização em massa falhou")
			if report == nil {
				apiErrors.WriteDomainError(w, err)
				return
			}
			apiErrors.WriteError(w, apiErrors.CodeFor(err), err.Error(), report)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}
