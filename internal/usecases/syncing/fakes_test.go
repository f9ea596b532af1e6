package syncing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

// memoryStore é uma tabela de registros em memória com falhas configuráveis
type memoryStore struct {
	mu         sync.Mutex
	platform   domain.Platform
	rows       []domain.CampaignDayRecord
	findErr    error
	rangeErr   error
	insertErrs map[string]error
	findCalls  int
}

func newMemoryStore(platform domain.Platform, rows ...domain.CampaignDayRecord) *memoryStore {
	return &memoryStore{
		platform:   platform,
		rows:       rows,
		insertErrs: map[string]error{},
	}
}

func (m *memoryStore) Platform() domain.Platform {
	return m.platform
}

func (m *memoryStore) FindByKey(_ context.Context, key domain.NaturalKey) (domain.CampaignDayRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}

	for _, row := range m.rows {
		if row.NaturalKey() == key {
			return row, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) FindByAccountAndRange(_ context.Context, accountID string, startDate, endDate time.Time) ([]domain.CampaignDayRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rangeErr != nil {
		return nil, m.rangeErr
	}

	start := startDate.Format(time.DateOnly)
	end := endDate.Format(time.DateOnly)

	var result []domain.CampaignDayRecord
	for _, row := range m.rows {
		key := row.NaturalKey()
		if key.AccountID == accountID && key.Date >= start && key.Date <= end {
			result = append(result, row)
		}
	}
	return result, nil
}

func (m *memoryStore) Insert(_ context.Context, record domain.CampaignDayRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.Platform() != m.platform {
		return domain.ErrRecordPlatform
	}
	if err, ok := m.insertErrs[record.NaturalKey().String()]; ok {
		return err
	}

	m.rows = append(m.rows, record)
	return nil
}

func (m *memoryStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type fetchCall struct {
	accountID string
	startDate time.Time
	endDate   time.Time
}

// scriptedFetcher responde por conta com registros, erro ou panic
type scriptedFetcher struct {
	mu       sync.Mutex
	platform domain.Platform
	records  map[string][]domain.CampaignDayRecord
	errs     map[string]error
	panics   map[string]bool
	calls    []fetchCall
}

func newScriptedFetcher(platform domain.Platform) *scriptedFetcher {
	return &scriptedFetcher{
		platform: platform,
		records:  map[string][]domain.CampaignDayRecord{},
		errs:     map[string]error{},
		panics:   map[string]bool{},
	}
}

func (f *scriptedFetcher) Platform() domain.Platform {
	return f.platform
}

func (f *scriptedFetcher) FetchCampaignDays(_ context.Context, accountID string, startDate, endDate time.Time) ([]domain.CampaignDayRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fetchCall{accountID: accountID, startDate: startDate, endDate: endDate})
	records, err, shouldPanic := f.records[accountID], f.errs[accountID], f.panics[accountID]
	f.mu.Unlock()

	if shouldPanic {
		panic("resposta inesperada da plataforma")
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}

func facebookDay(accountID, campaignID, date string) *domain.FacebookCampaignDay {
	return &domain.FacebookCampaignDay{
		AccountID:    accountID,
		CampaignID:   campaignID,
		CampaignName: "Campanha " + campaignID,
		DateStart:    date,
		Impressions:  100,
		Spend:        10.5,
	}
}

func googleDay(customerID, campaignID, date string) *domain.GoogleAdsCampaignDay {
	return &domain.GoogleAdsCampaignDay{
		CustomerID:   customerID,
		CampaignID:   campaignID,
		CampaignName: "Search " + campaignID,
		Day:          date,
		Clicks:       5,
		Cost:         12.3,
	}
}

var errStoreDown = errors.New("conexão com o banco perdida")
