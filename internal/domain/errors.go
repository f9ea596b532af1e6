package domain

import "errors"

var (
	// Erros de busca nas APIs das plataformas
	ErrInvalidDateRange = errors.New("período inválido")
	ErrInvalidAccountID = errors.New("identificador de conta inválido")
	ErrRateLimited      = errors.New("limite de requisições da plataforma atingido")
	ErrPlatformAuth     = errors.New("falha de autenticação na plataforma")
	ErrFetch            = errors.New("erro ao buscar dados da plataforma")

	// Erros de configuração de clientes
	ErrClientNotFound        = errors.New("cliente não encontrado")
	ErrAccountNotConfigured  = errors.New("conta da plataforma não configurada")
	ErrUnsupportedPlatform   = errors.New("plataforma inválida")
	ErrPlatformNotRegistered = errors.New("plataforma sem integração configurada")

	// Erros de persistência
	ErrAlreadyStored   = errors.New("registro já existe para a chave natural")
	ErrIncompleteKey   = errors.New("dados incompletos")
	ErrRecordPlatform  = errors.New("registro não pertence a esta plataforma")
	ErrInvalidPeriod   = errors.New("período de atualização inválido")
	ErrNoData          = errors.New("nenhum dado encontrado para o período selecionado")
	ErrUnsupported     = errors.New("operação não suportada")
	ErrSyncInProgress  = errors.New("sincronização já em andamento")
	ErrDeliveryFailure = errors.New("falha ao enviar mensagem")
)
