package domain

import "time"

type SyncMode string

const (
	SyncModeOnDemand SyncMode = "on_demand"
	SyncModeBulk     SyncMode = "bulk"
	SyncModeDaily    SyncMode = "daily"
)

// SyncState são as etapas de uma execução de sincronização
type SyncState string

const (
	SyncStateFetching        SyncState = "FETCHING"
	SyncStateEmpty           SyncState = "EMPTY"
	SyncStateDeduplicating   SyncState = "DEDUPLICATING"
	SyncStateSkippedPersist  SyncState = "SKIPPED_PERSIST"
	SyncStatePersisting      SyncState = "PERSISTING"
	SyncStateTimestampUpdate SyncState = "TIMESTAMP_UPDATE"
	SyncStateDone            SyncState = "DONE"
)

// ValidResyncPeriods são as janelas aceitas pela atualização em massa
var ValidResyncPeriods = []int{7, 15, 30}

func IsValidResyncPeriod(days int) bool {
	for _, p := range ValidResyncPeriods {
		if p == days {
			return true
		}
	}
	return false
}

// ClientResult é o resultado de um cliente em uma execução em massa
type ClientResult struct {
	ClientID   int64         `json:"client_id"`
	ClientName string        `json:"client_name"`
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	NewRecords int           `json:"new_records"`
	Warnings   int           `json:"warnings,omitempty"`
	Outcome    *BatchOutcome `json:"outcome,omitempty"`
}

// PlatformSummary agrega os resultados de todos os clientes de uma plataforma
type PlatformSummary struct {
	Total        int            `json:"total"`
	Success      int            `json:"success"`
	Errors       int            `json:"errors"`
	Saved        int            `json:"saved"`
	Duplicates   int            `json:"duplicates"`
	RecordErrors int            `json:"record_errors"`
	Details      []ClientResult `json:"details"`
}

func (s *PlatformSummary) Add(result ClientResult) {
	s.Total++
	if result.Success {
		s.Success++
	} else {
		s.Errors++
	}
	if result.Outcome != nil {
		s.Saved += result.Outcome.Saved
		s.Duplicates += result.Outcome.Duplicates
		s.RecordErrors += result.Outcome.Errors
	}
	s.Details = append(s.Details, result)
}

// SyncReport é o relatório de uma atualização em massa ou da rotina diária
type SyncReport struct {
	ExecutionID     string                        `json:"execution_id"`
	Mode            SyncMode                      `json:"mode"`
	Period          string                        `json:"period"`
	StartDate       string                        `json:"start_date"`
	EndDate         string                        `json:"end_date"`
	StartedAt       time.Time                     `json:"started_at"`
	FinishedAt      time.Time                     `json:"finished_at"`
	DurationSeconds float64                       `json:"duration_seconds"`
	Success         bool                          `json:"success"`
	Platforms       map[Platform]*PlatformSummary `json:"platforms"`
}

func NewSyncReport(executionID string, mode SyncMode, start, end time.Time) *SyncReport {
	return &SyncReport{
		ExecutionID: executionID,
		Mode:        mode,
		StartDate:   start.Format(time.DateOnly),
		EndDate:     end.Format(time.DateOnly),
		Platforms:   make(map[Platform]*PlatformSummary),
	}
}

func (r *SyncReport) Summary(platform Platform) *PlatformSummary {
	summary, ok := r.Platforms[platform]
	if !ok {
		summary = &PlatformSummary{Details: []ClientResult{}}
		r.Platforms[platform] = summary
	}
	return summary
}

// SyncErrorRecord é gravado no histórico quando a execução é abortada
type SyncErrorRecord struct {
	Timestamp       time.Time `json:"timestamp"`
	Error           string    `json:"error"`
	DurationSeconds float64   `json:"duration_seconds"`
	Success         bool      `json:"success"`
}
