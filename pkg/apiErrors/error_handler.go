package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidPeriod       = "VAL_004" // Período fora dos valores aceitos
	ErrAccountNotSet       = "VAL_005" // Cliente sem conta na plataforma

	// Erros de recurso (4000-4999)
	ErrClientNotFound = "RES_001" // Cliente não encontrado
	ErrNoData         = "RES_002" // Nenhum dado no período
	ErrSyncInProgress = "RES_003" // Sincronização já em andamento

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrRateLimited       = "SRV_005" // Limite de requisições da plataforma
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidPeriod:         http.StatusBadRequest,
	ErrAccountNotSet:         http.StatusUnprocessableEntity,
	ErrClientNotFound:        http.StatusNotFound,
	ErrNoData:                http.StatusNotFound,
	ErrSyncInProgress:        http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
	ErrRateLimited:           http.StatusTooManyRequests,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP do código de erro
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// CodeFor traduz os erros de domínio para códigos da API
func CodeFor(err error) string {
	switch {
	case err == nil:
		return ErrInternalServer
	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidAccountID),
		errors.Is(err, domain.ErrUnsupportedPlatform):
		return ErrInvalidRequest
	case errors.Is(err, domain.ErrInvalidPeriod):
		return ErrInvalidPeriod
	case errors.Is(err, domain.ErrAccountNotConfigured):
		return ErrAccountNotSet
	case errors.Is(err, domain.ErrClientNotFound):
		return ErrClientNotFound
	case errors.Is(err, domain.ErrNoData):
		return ErrNoData
	case errors.Is(err, domain.ErrSyncInProgress):
		return ErrSyncInProgress
	case errors.Is(err, domain.ErrRateLimited):
		return ErrRateLimited
	case errors.Is(err, domain.ErrPlatformAuth),
		errors.Is(err, domain.ErrFetch):
		return ErrExternalService
	case errors.Is(err, domain.ErrDeliveryFailure):
		return ErrCommunication
	default:
		return ErrInternalServer
	}
}

// WriteDomainError escreve o erro com o código correspondente ao erro de domínio
func WriteDomainError(w http.ResponseWriter, err error) {
	WriteError(w, CodeFor(err), err.Error(), nil)
}
