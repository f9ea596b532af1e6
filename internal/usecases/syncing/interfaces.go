package syncing

import (
	"context"
	"time"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

// Syncer sincroniza os registros diários de campanha das plataformas com a base local
type Syncer interface {
	// SyncOne busca, deduplica e grava o período de um cliente em uma plataforma
	SyncOne(ctx context.Context, client *domain.Client, platform domain.Platform, startDate, endDate time.Time) (*SyncResult, error)

	// BulkResync sincroniza todos os clientes ativos nos últimos 7, 15 ou 30 dias
	BulkResync(ctx context.Context, periodDays int) (*domain.SyncReport, error)

	// RunDaily sincroniza o dia anterior para todos os clientes ativos
	RunDaily(ctx context.Context) (*domain.SyncReport, error)

	// ResolveDeliveryRecords escolhe entre dados gravados e a API para o envio de relatórios
	ResolveDeliveryRecords(ctx context.Context, client *domain.Client, platform domain.Platform, startDate, endDate time.Time) (*DeliveryRecords, error)

	// ExistingInRange retorna os registros já gravados de um cliente no período
	ExistingInRange(ctx context.Context, client *domain.Client, platform domain.Platform, startDate, endDate time.Time) ([]domain.CampaignDayRecord, error)
}

// SyncResult é o resultado de uma sincronização de um cliente
type SyncResult struct {
	ClientID  int64                      `json:"client_id"`
	Platform  domain.Platform            `json:"platform"`
	AccountID string                     `json:"account_id"`
	StartDate string                     `json:"start_date"`
	EndDate   string                     `json:"end_date"`
	Fetched   []domain.CampaignDayRecord `json:"-"`
	Outcome   domain.BatchOutcome        `json:"outcome"`
}

type DeliverySource string

const (
	DeliverySourceAPI           DeliverySource = "api"
	DeliverySourceStore         DeliverySource = "store"
	DeliverySourceStoreFallback DeliverySource = "store_fallback"
)

// DeliveryRecords são os registros escolhidos para formatar um envio
type DeliveryRecords struct {
	Records []domain.CampaignDayRecord
	Source  DeliverySource
	Outcome *domain.BatchOutcome
}
