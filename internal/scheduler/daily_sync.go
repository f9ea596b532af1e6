package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/history"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/syncing"
)

// DailySyncConfig representa a configuração do agendador da atualização diária
type DailySyncConfig struct {
	CronSchedule         string
	MaxConcurrentClients int
	RequestDelaySeconds  int
	SyncEnabled          bool
}

// DailySyncService agenda e executa a atualização diária de todos os clientes ativos
type DailySyncService struct {
	scheduler           *gocron.Scheduler
	config              DailySyncConfig
	syncer              syncing.Syncer
	history             history.Store
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.SyncReport
	lastError           string
	now                 func() time.Time
}

// NewDailySyncService cria uma nova instância do serviço de atualização diária
func NewDailySyncService(
	syncer syncing.Syncer,
	historyStore history.Store,
	appConfig *config.Config,
) *DailySyncService {
	syncConfig := DailySyncConfig{
		CronSchedule:         appConfig.DailySync.CronSchedule,
		MaxConcurrentClients: appConfig.DailySync.MaxConcurrentClients,
		RequestDelaySeconds:  appConfig.DailySync.RequestDelaySeconds,
		SyncEnabled:          appConfig.DailySync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":          syncConfig.CronSchedule,
		"max_concurrent_clients": syncConfig.MaxConcurrentClients,
		"request_delay_seconds":  syncConfig.RequestDelaySeconds,
		"sync_enabled":           syncConfig.SyncEnabled,
	}).Info("Configuração da atualização diária carregada")

	return &DailySyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		syncer:    syncer,
		history:   historyStore,
		baseCtx:   context.Background(),
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *DailySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização diária desabilitada por configuração")
		return nil
	}

	s.baseCtx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da atualização diária")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunOnce(ctx); err != nil && err != domain.ErrSyncInProgress {
			logrus.WithError(err).Error("Atualização diária abortada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização diária: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da atualização diária")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa a atualização diária e grava o histórico. Retorna
// ErrSyncInProgress se outra execução estiver em andamento.
func (s *DailySyncService) RunOnce(ctx context.Context) (*domain.SyncReport, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização diária já em andamento, ignorando")
		return nil, domain.ErrSyncInProgress
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização diária para todos os clientes ativos")

	report, err := s.syncer.RunDaily(ctx)
	if err != nil {
		if _, saveErr := history.SaveFailure(s.history, err, startTime, s.now()); saveErr != nil {
			logrus.WithError(saveErr).Error("Erro ao salvar histórico de erro")
		}

		s.syncMutex.Lock()
		s.lastError = err.Error()
		s.syncMutex.Unlock()

		return report, err
	}

	if _, err := s.history.SaveReport(report); err != nil {
		logrus.WithError(err).Error("Erro ao salvar histórico da atualização diária")
	}

	s.syncMutex.Lock()
	s.lastReport = report
	s.lastError = ""
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	fields := logrus.Fields{"duration_seconds": report.DurationSeconds}
	for platform, summary := range report.Platforms {
		fields[string(platform)+"_success"] = summary.Success
		fields[string(platform)+"_errors"] = summary.Errors
		fields[string(platform)+"_saved"] = summary.Saved
	}
	logrus.WithFields(fields).Info("Atualização diária concluída")

	return report, nil
}

// TriggerManualSync inicia manualmente a atualização diária em segundo plano
func (s *DailySyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Atualização diária já em andamento, ignorando solicitação manual")
		return domain.ErrSyncInProgress
	}

	logrus.Info("Iniciando atualização diária manual")
	go func() {
		if _, err := s.RunOnce(s.baseCtx); err != nil && err != domain.ErrSyncInProgress {
			logrus.WithError(err).Error("Atualização diária manual abortada")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *DailySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":                s.config.SyncEnabled,
		"sync_cron":                   s.config.CronSchedule,
		"sync_max_concurrent_clients": s.config.MaxConcurrentClients,
		"sync_request_delay_s":        s.config.RequestDelaySeconds,
		"sync_running":                s.syncRunning,
		"last_sync_started_at":        s.lastSyncStartedAt,
		"last_sync_completed_at":      s.lastSyncCompletedAt,
	}

	if s.lastError != "" {
		status["last_error"] = s.lastError
	}

	if s.lastReport != nil {
		status["last_report"] = reportSummary(s.lastReport)
	} else if report := s.loadPersistedReport(); report != nil {
		// após reinício, o último relatório vem do histórico em disco
		summary := reportSummary(report)
		summary["source"] = "history"
		status["last_report"] = summary
	}

	return status
}

// loadPersistedReport procura o relatório de hoje e, se não houver, o de ontem
func (s *DailySyncService) loadPersistedReport() *domain.SyncReport {
	today := s.now()
	for _, day := range []time.Time{today, today.AddDate(0, 0, -1)} {
		report, err := s.history.LoadReport(day)
		if err == nil {
			return report
		}
		logrus.WithError(err).WithField("day", day.Format(time.DateOnly)).Debug("Histórico da atualização diária não encontrado")
	}
	return nil
}

func reportSummary(report *domain.SyncReport) map[string]any {
	summary := map[string]any{
		"execution_id":     report.ExecutionID,
		"start_date":       report.StartDate,
		"end_date":         report.EndDate,
		"duration_seconds": report.DurationSeconds,
	}
	for platform, p := range report.Platforms {
		summary[string(platform)] = map[string]int{
			"total":      p.Total,
			"success":    p.Success,
			"errors":     p.Errors,
			"saved":      p.Saved,
			"duplicates": p.Duplicates,
		}
	}
	return summary
}
