package handler

import (
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// reportQuery são os parâmetros comuns das rotas por cliente
type reportQuery struct {
	ClientID  int64
	Platform  domain.Platform
	StartDate time.Time
	EndDate   time.Time
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("Erro ao escrever resposta")
	}
}

// parseReportQuery lê :id, platform, start_date e end_date e confere o acesso do usuário ao cliente
func parseReportQuery(w http.ResponseWriter, r *http.Request) (*reportQuery, bool) {
	rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	clientID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || clientID <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "id do cliente inválido", map[string]string{"id": rawID})
		return nil, false
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || !claims.CanAccessClient(clientID) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a este cliente", nil)
		return nil, false
	}

	query := r.URL.Query()

	platform, err := domain.ParsePlatform(query.Get("platform"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return nil, false
	}

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
		return nil, false
	}

	if startDate.IsZero() || endDate.IsZero() {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date e end_date são obrigatórios", nil)
		return nil, false
	}

	return &reportQuery{
		ClientID:  clientID,
		Platform:  platform,
		StartDate: startDate,
		EndDate:   endDate,
	}, true
}

func (q *reportQuery) fields() log.Fields {
	return log.Fields{
		"client_id":  q.ClientID,
		"platform":   q.Platform,
		"start_date": q.StartDate.Format(time.DateOnly),
		"end_date":   q.EndDate.Format(time.DateOnly),
	}
}
