package syncing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// PlatformDeps liga o cliente da API de uma plataforma à sua tabela de registros
type PlatformDeps struct {
	Fetcher integrator.CampaignFetcher
	Store   repository.CampaignDayRepository
}

type pipeline struct {
	fetcher      integrator.CampaignFetcher
	oracle       *ExistenceOracle
	deduplicator *Deduplicator
	persister    *Persister
}

type Service struct {
	clientRepository     repository.ClientRepository
	pipelines            map[domain.Platform]*pipeline
	metrics              *metrics.Metrics
	maxConcurrentClients int
	requestDelay         time.Duration
	freshnessDays        int
	now                  func() time.Time
	newExecutionID       func() (string, error)
}

// NewService monta um pipeline por plataforma. Cliente da API e tabela precisam
// ser da mesma plataforma.
func NewService(
	cfg *config.Config,
	clientRepo repository.ClientRepository,
	platforms []PlatformDeps,
	m *metrics.Metrics,
) (*Service, error) {
	s := &Service{
		clientRepository:     clientRepo,
		pipelines:            make(map[domain.Platform]*pipeline, len(platforms)),
		metrics:              m,
		maxConcurrentClients: cfg.DailySync.MaxConcurrentClients,
		requestDelay:         cfg.DailySync.RequestDelay(),
		freshnessDays:        cfg.Delivery.FreshnessDays,
		now:                  time.Now,
		newExecutionID:       utils.GenerateID,
	}

	if s.maxConcurrentClients < 1 {
		s.maxConcurrentClients = 1
	}

	for _, deps := range platforms {
		platform := deps.Fetcher.Platform()
		if deps.Store.Platform() != platform {
			return nil, errors.Wrapf(domain.ErrRecordPlatform, "cliente %s com tabela %s", platform, deps.Store.Platform())
		}

		oracle := NewExistenceOracle(deps.Store, m)
		s.pipelines[platform] = &pipeline{
			fetcher:      deps.Fetcher,
			oracle:       oracle,
			deduplicator: NewDeduplicator(oracle),
			persister:    NewPersister(deps.Store, oracle, m),
		}
	}

	return s, nil
}

func (s *Service) pipelineFor(platform domain.Platform) (*pipeline, error) {
	p, ok := s.pipelines[platform]
	if !ok {
		return nil, errors.Wrapf(domain.ErrPlatformNotRegistered, "plataforma %s", platform)
	}
	return p, nil
}

func (s *Service) SyncOne(ctx context.Context, client *domain.Client, platform domain.Platform, startDate, endDate time.Time) (*SyncResult, error) {
	return s.syncOne(ctx, client, platform, startDate, endDate, domain.SyncModeOnDemand)
}

func (s *Service) syncOne(ctx context.Context, client *domain.Client, platform domain.Platform, startDate, endDate time.Time, mode domain.SyncMode) (*SyncResult, error) {
	started := s.now()

	p, err := s.pipelineFor(platform)
	if err != nil {
		return nil, err
	}

	accountID := client.AccountIDFor(platform)
	if accountID == "" {
		return nil, errors.Wrapf(domain.ErrAccountNotConfigured, "cliente %d sem conta %s", client.ID, platform.DisplayName())
	}

	result := &SyncResult{
		ClientID:  client.ID,
		Platform:  platform,
		AccountID: accountID,
		StartDate: startDate.Format(time.DateOnly),
		EndDate:   endDate.Format(time.DateOnly),
	}

	entry := logrus.WithFields(logrus.Fields{
		"client_id":  client.ID,
		"platform":   platform,
		"account_id": accountID,
		"start_date": result.StartDate,
		"end_date":   result.EndDate,
		"mode":       mode,
	})

	transition(entry, domain.SyncStateFetching)
	records, err := p.fetcher.FetchCampaignDays(ctx, accountID, startDate, endDate)
	if err != nil {
		s.metrics.RecordSyncRun(platform.String(), string(mode), "error", s.now().Sub(started))
		entry.WithError(err).Error("Erro ao buscar dados da plataforma")
		return nil, err
	}
	result.Fetched = records

	if len(records) == 0 {
		transition(entry, domain.SyncStateEmpty)
	} else {
		transition(entry, domain.SyncStateDeduplicating)
		newRecords := p.deduplicator.FilterNew(ctx, records, accountID)

		entry.WithFields(logrus.Fields{
			"fetched": len(records),
			"new":     len(newRecords),
		}).Info("Deduplicação concluída")

		if len(newRecords) == 0 {
			transition(entry, domain.SyncStateSkippedPersist)
			result.Outcome.Duplicates = len(records)
			result.Outcome.Total = len(records)
		} else {
			transition(entry, domain.SyncStatePersisting)
			outcome := p.persister.Save(ctx, newRecords)
			outcome.Duplicates += len(records) - len(newRecords)
			outcome.Total = len(records)
			result.Outcome = outcome
		}
	}

	// O timestamp registra que a conta foi consultada, mesmo sem dados novos
	transition(entry, domain.SyncStateTimestampUpdate)
	if err := s.clientRepository.UpdateLastSynced(ctx, client.ID, platform, s.now()); err != nil {
		entry.WithError(err).Error("Erro ao atualizar data da última sincronização")
	}

	transition(entry, domain.SyncStateDone)
	s.metrics.RecordSyncRun(platform.String(), string(mode), "success", s.now().Sub(started))

	return result, nil
}

func transition(entry *logrus.Entry, state domain.SyncState) {
	entry.WithField("state", state).Debug("Etapa da sincronização")
}

func (s *Service) BulkResync(ctx context.Context, periodDays int) (*domain.SyncReport, error) {
	if !domain.IsValidResyncPeriod(periodDays) {
		return nil, errors.Wrapf(domain.ErrInvalidPeriod, "período de %d dias", periodDays)
	}

	today := s.today()
	startDate := today.AddDate(0, 0, -periodDays)
	endDate := today.AddDate(0, 0, -1)

	report, err := s.runAll(ctx, domain.SyncModeBulk, startDate, endDate)
	if report != nil {
		report.Period = fmt.Sprintf("%d dias", periodDays)
	}
	return report, err
}

func (s *Service) RunDaily(ctx context.Context) (*domain.SyncReport, error) {
	yesterday := s.today().AddDate(0, 0, -1)

	report, err := s.runAll(ctx, domain.SyncModeDaily, yesterday, yesterday)
	if report != nil {
		report.Period = "ontem"
	}
	return report, err
}

func (s *Service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// runAll percorre as plataformas na ordem fixa. A falha ao listar clientes
// aborta a execução e devolve o relatório parcial junto com o erro.
func (s *Service) runAll(ctx context.Context, mode domain.SyncMode, startDate, endDate time.Time) (*domain.SyncReport, error) {
	executionID, err := s.newExecutionID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da execução")
	}

	report := domain.NewSyncReport(executionID, mode, startDate, endDate)
	report.StartedAt = s.now()

	entry := logrus.WithFields(logrus.Fields{
		"execution_id": executionID,
		"mode":         mode,
		"start_date":   report.StartDate,
		"end_date":     report.EndDate,
	})
	entry.Info("Iniciando sincronização de todos os clientes")

	finish := func() {
		report.FinishedAt = s.now()
		report.DurationSeconds = utils.RoundWithTwoDecimalPlace(report.FinishedAt.Sub(report.StartedAt).Seconds())
	}

	for _, platform := range domain.Platforms {
		if _, ok := s.pipelines[platform]; !ok {
			continue
		}

		clients, err := s.clientRepository.ListActiveClients(ctx, platform)
		if err != nil {
			finish()
			entry.WithError(err).WithField("platform", platform).Error("Erro ao listar clientes ativos")
			return report, errors.Wrapf(err, "erro ao listar clientes ativos do %s", platform.DisplayName())
		}

		entry.WithFields(logrus.Fields{
			"platform": platform,
			"clients":  len(clients),
		}).Info("Clientes ativos encontrados")

		summary := report.Summary(platform)
		for _, result := range s.syncClients(ctx, clients, platform, startDate, endDate, mode) {
			summary.Add(result)
		}

		entry.WithFields(logrus.Fields{
			"platform":   platform,
			"success":    summary.Success,
			"errors":     summary.Errors,
			"saved":      summary.Saved,
			"duplicates": summary.Duplicates,
		}).Info("Plataforma concluída")
	}

	finish()
	report.Success = true

	entry.WithField("duration_seconds", report.DurationSeconds).Info("Sincronização de todos os clientes concluída")

	return report, nil
}

// syncClients mantém os resultados na ordem dos clientes. Com um único worker
// os clientes são processados em sequência, com pausa entre as requisições.
func (s *Service) syncClients(ctx context.Context, clients []*domain.Client, platform domain.Platform, startDate, endDate time.Time, mode domain.SyncMode) []domain.ClientResult {
	results := make([]domain.ClientResult, len(clients))

	if s.maxConcurrentClients == 1 {
		for i, client := range clients {
			if i > 0 && !s.pause(ctx) {
				results[i] = canceledResult(client, ctx.Err())
				continue
			}
			results[i] = s.syncClient(ctx, client, platform, startDate, endDate, mode)
		}
		return results
	}

	semaphore := make(chan struct{}, s.maxConcurrentClients)
	var wg sync.WaitGroup

	for i, client := range clients {
		wg.Add(1)
		go func(i int, client *domain.Client) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				results[i] = canceledResult(client, ctx.Err())
				return
			}
			defer func() { <-semaphore }()

			results[i] = s.syncClient(ctx, client, platform, startDate, endDate, mode)
		}(i, client)
	}

	wg.Wait()
	return results
}

func (s *Service) pause(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if s.requestDelay <= 0 {
		return true
	}

	timer := time.NewTimer(s.requestDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func canceledResult(client *domain.Client, err error) domain.ClientResult {
	return domain.ClientResult{
		ClientID:   client.ID,
		ClientName: client.Name,
		Message:    fmt.Sprintf("Execução cancelada: %v", err),
	}
}

// syncClient isola qualquer falha do cliente, inclusive panic, no próprio resultado
func (s *Service) syncClient(ctx context.Context, client *domain.Client, platform domain.Platform, startDate, endDate time.Time, mode domain.SyncMode) (result domain.ClientResult) {
	result = domain.ClientResult{
		ClientID:   client.ID,
		ClientName: client.Name,
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"client_id": client.ID,
				"platform":  platform,
				"panic":     r,
			}).Error("Panic ao sincronizar cliente")
			result.Success = false
			result.Message = fmt.Sprintf("Erro interno: %v", r)
		}
	}()

	syncResult, err := s.syncOne(ctx, client, platform, startDate, endDate, mode)
	if err != nil {
		result.Message = err.Error()
		if errors.Is(err, domain.ErrAccountNotConfigured) {
			result.Message = fmt.Sprintf("%s não configurada", accountLabel(platform))
		}
		return result
	}

	outcome := syncResult.Outcome
	result.Success = true
	result.Outcome = &outcome
	result.NewRecords = outcome.Saved
	result.Warnings = outcome.Errors

	switch {
	case len(syncResult.Fetched) == 0:
		result.Message = "Nenhum dado encontrado no período"
	case outcome.HasWarnings():
		result.Message = fmt.Sprintf("%d novos registros salvos, %d com erro", outcome.Saved, outcome.Errors)
	default:
		result.Message = fmt.Sprintf("%d novos registros salvos", outcome.Saved)
	}

	return result
}

func accountLabel(platform domain.Platform) string {
	if platform == domain.PlatformGoogle {
		return "Customer ID Google"
	}
	return "Conta Facebook"
}

func (s *Service) ExistingInRange(ctx context.Context, client *domain.Client, platform domain.Platform, startDate, endDate time.Time) ([]domain.CampaignDayRecord, error) {
	p, err := s.pipelineFor(platform)
	if err != nil {
		return nil, err
	}

	accountID := client.AccountIDFor(platform)
	if accountID == "" {
		return nil, errors.Wrapf(domain.ErrAccountNotConfigured, "cliente %d sem conta %s", client.ID, platform.DisplayName())
	}

	return p.oracle.ExistingInRange(ctx, accountID, startDate, endDate)
}

// ResolveDeliveryRecords aplica a política de frescor apenas ao Google Ads.
// No Facebook os dados sempre vêm da API.
func (s *Service) ResolveDeliveryRecords(ctx context.Context, client *domain.Client, platform domain.Platform, startDate, endDate time.Time) (*DeliveryRecords, error) {
	p, err := s.pipelineFor(platform)
	if err != nil {
		return nil, err
	}

	accountID := client.AccountIDFor(platform)
	if accountID == "" {
		return nil, errors.Wrapf(domain.ErrAccountNotConfigured, "cliente %d sem conta %s", client.ID, platform.DisplayName())
	}

	if platform != domain.PlatformGoogle {
		records, err := p.fetcher.FetchCampaignDays(ctx, accountID, startDate, endDate)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, domain.ErrNoData
		}
		return &DeliveryRecords{Records: records, Source: DeliverySourceAPI}, nil
	}

	entry := logrus.WithFields(logrus.Fields{
		"client_id":  client.ID,
		"platform":   platform,
		"account_id": accountID,
	})

	stored, err := p.oracle.ExistingInRange(ctx, accountID, startDate, endDate)
	if err != nil {
		entry.WithError(err).Warn("Erro ao buscar dados gravados, consultando a API")
		stored = nil
	}

	if IsFresh(stored, endDate, s.freshnessDays) {
		entry.WithField("records", len(stored)).Info("Usando dados gravados recentes")
		return &DeliveryRecords{Records: stored, Source: DeliverySourceStore}, nil
	}

	syncResult, err := s.syncOne(ctx, client, platform, startDate, endDate, domain.SyncModeOnDemand)
	if err != nil {
		if len(stored) > 0 {
			entry.WithError(err).Warn("Erro na API, usando dados gravados desatualizados")
			return &DeliveryRecords{Records: stored, Source: DeliverySourceStoreFallback}, nil
		}
		return nil, err
	}

	if len(syncResult.Fetched) > 0 {
		return &DeliveryRecords{
			Records: syncResult.Fetched,
			Source:  DeliverySourceAPI,
			Outcome: &syncResult.Outcome,
		}, nil
	}

	if len(stored) > 0 {
		entry.Warn("API sem dados no período, usando dados gravados desatualizados")
		return &DeliveryRecords{Records: stored, Source: DeliverySourceStoreFallback}, nil
	}

	return nil, domain.ErrNoData
}

// IsFresh indica se algum registro está dentro dos últimos freshnessDays dias
// contados a partir da data final do período
func IsFresh(records []domain.CampaignDayRecord, endDate time.Time, freshnessDays int) bool {
	threshold := endDate.AddDate(0, 0, -freshnessDays).Format(time.DateOnly)

	for _, record := range records {
		if date := record.NaturalKey().Date; date != "" && date >= threshold {
			return true
		}
	}

	return false
}
