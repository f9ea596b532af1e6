package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/syncing"
)

type fakeSyncer struct {
	syncing.Syncer
	report  *domain.SyncReport
	err     error
	calls   int
	release chan struct{}
	started chan struct{}
}

func (f *fakeSyncer) RunDaily(context.Context) (*domain.SyncReport, error) {
	f.calls++
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.report, f.err
}

type fakeHistory struct {
	mu        sync.Mutex
	reports   []*domain.SyncReport
	errs      []domain.SyncErrorRecord
	persisted map[string]*domain.SyncReport
	loaded    []string
}

func (h *fakeHistory) SaveReport(report *domain.SyncReport) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reports = append(h.reports, report)
	return "daily_update.json", nil
}

func (h *fakeHistory) SaveError(record domain.SyncErrorRecord) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, record)
	return "daily_update_ERROR.json", nil
}

func (h *fakeHistory) LoadReport(day time.Time) (*domain.SyncReport, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := day.Format(time.DateOnly)
	h.loaded = append(h.loaded, key)
	if report, ok := h.persisted[key]; ok {
		return report, nil
	}
	return nil, errors.New("arquivo não encontrado")
}

func newDailyReport() *domain.SyncReport {
	yesterday := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	report := domain.NewSyncReport("exec01", domain.SyncModeDaily, yesterday, yesterday)
	report.Success = true
	report.DurationSeconds = 12
	report.Summary(domain.PlatformFacebook).Add(domain.ClientResult{
		ClientID: 1,
		Success:  true,
		Outcome:  &domain.BatchOutcome{Total: 4, Saved: 3, Duplicates: 1},
	})
	report.Summary(domain.PlatformGoogle).Add(domain.ClientResult{ClientID: 2, Message: "Customer ID Google não configurada"})
	return report
}

func newTestService(syncer syncing.Syncer, store *fakeHistory) *DailySyncService {
	cfg := &config.Config{DailySync: config.DailySync{CronSchedule: "0 6 * * *", Enabled: true, MaxConcurrentClients: 1}}
	s := NewDailySyncService(syncer, store, cfg)
	s.now = func() time.Time { return time.Date(2025, 1, 10, 6, 0, 0, 0, time.UTC) }
	return s
}

func TestDailySyncService_RunOnce(t *testing.T) {
	tests := []struct {
		name     string
		syncer   *fakeSyncer
		validate func(t *testing.T, s *DailySyncService, store *fakeHistory, report *domain.SyncReport, err error)
	}{
		{
			name:   "Execução completa grava o relatório no histórico",
			syncer: &fakeSyncer{report: newDailyReport()},
			validate: func(t *testing.T, s *DailySyncService, store *fakeHistory, report *domain.SyncReport, err error) {
				require.NoError(t, err)
				require.Len(t, store.reports, 1)
				assert.Empty(t, store.errs)
				assert.Equal(t, report, store.reports[0])

				status := s.GetStatus()
				assert.Equal(t, false, status["sync_running"])
				lastReport, ok := status["last_report"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "exec01", lastReport["execution_id"])
				assert.Equal(t, 3, lastReport["facebook"].(map[string]int)["saved"])
				assert.Equal(t, 1, lastReport["google"].(map[string]int)["errors"])
			},
		},
		{
			name:   "Execução abortada grava o registro de erro",
			syncer: &fakeSyncer{err: errors.New("erro ao listar clientes ativos do Facebook")},
			validate: func(t *testing.T, s *DailySyncService, store *fakeHistory, report *domain.SyncReport, err error) {
				require.Error(t, err)
				assert.Empty(t, store.reports)
				require.Len(t, store.errs, 1)
				assert.Equal(t, "erro ao listar clientes ativos do Facebook", store.errs[0].Error)
				assert.False(t, store.errs[0].Success)

				status := s.GetStatus()
				assert.Equal(t, "erro ao listar clientes ativos do Facebook", status["last_error"])
				assert.NotContains(t, status, "last_report")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeHistory{}
			s := newTestService(tt.syncer, store)

			report, err := s.RunOnce(context.Background())

			tt.validate(t, s, store, report, err)
		})
	}
}

func TestDailySyncService_RejectsOverlappingRuns(t *testing.T) {
	syncer := &fakeSyncer{
		report:  newDailyReport(),
		release: make(chan struct{}),
		started: make(chan struct{}),
	}
	store := &fakeHistory{}
	s := newTestService(syncer, store)

	done := make(chan error, 1)
	go func() {
		_, err := s.RunOnce(context.Background())
		done <- err
	}()

	<-syncer.started

	_, err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, domain.ErrSyncInProgress)
	assert.ErrorIs(t, s.TriggerManualSync(), domain.ErrSyncInProgress)
	assert.Equal(t, true, s.GetStatus()["sync_running"])

	close(syncer.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, syncer.calls)
	assert.Len(t, store.reports, 1)
}

func TestDailySyncService_StartDisabled(t *testing.T) {
	cfg := &config.Config{DailySync: config.DailySync{CronSchedule: "invalido", Enabled: false}}
	s := NewDailySyncService(&fakeSyncer{}, &fakeHistory{}, cfg)

	assert.NoError(t, s.Start(context.Background()))
}

func TestDailySyncService_StartInvalidCron(t *testing.T) {
	cfg := &config.Config{DailySync: config.DailySync{CronSchedule: "não é cron", Enabled: true}}
	s := NewDailySyncService(&fakeSyncer{}, &fakeHistory{}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, s.Start(ctx))
}

func TestDailySyncService_StatusFallsBackToHistory(t *testing.T) {
	persisted := newDailyReport()
	persisted.ExecutionID = "exec00"
	store := &fakeHistory{persisted: map[string]*domain.SyncReport{"2025-01-09": persisted}}
	s := newTestService(&fakeSyncer{}, store)

	status := s.GetStatus()

	require.Contains(t, status, "last_report")
	summary := status["last_report"].(map[string]any)
	assert.Equal(t, "exec00", summary["execution_id"])
	assert.Equal(t, "history", summary["source"])
	assert.Equal(t, 3, summary["facebook"].(map[string]int)["saved"])
	assert.Equal(t, []string{"2025-01-10", "2025-01-09"}, store.loaded)
}

func TestDailySyncService_StatusWithoutHistory(t *testing.T) {
	s := newTestService(&fakeSyncer{}, &fakeHistory{})

	assert.NotContains(t, s.GetStatus(), "last_report")
}
