package syncing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)

type serviceFixture struct {
	service       *Service
	clients       *mocks.MockClientRepository
	facebook      *scriptedFetcher
	google        *scriptedFetcher
	facebookStore *memoryStore
	googleStore   *memoryStore
}

func newServiceFixture(t *testing.T, maxConcurrent int) *serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &serviceFixture{
		clients:       mocks.NewMockClientRepository(ctrl),
		facebook:      newScriptedFetcher(domain.PlatformFacebook),
		google:        newScriptedFetcher(domain.PlatformGoogle),
		facebookStore: newMemoryStore(domain.PlatformFacebook),
		googleStore:   newMemoryStore(domain.PlatformGoogle),
	}

	cfg := &config.Config{
		DailySync: config.DailySync{MaxConcurrentClients: maxConcurrent},
		Delivery:  config.Delivery{FreshnessDays: 2},
	}

	service, err := NewService(cfg, f.clients, []PlatformDeps{
		{Fetcher: f.facebook, Store: f.facebookStore},
		{Fetcher: f.google, Store: f.googleStore},
	}, nil)
	require.NoError(t, err)

	service.now = func() time.Time { return fixedNow }
	service.newExecutionID = func() (string, error) { return "exec01", nil }
	f.service = service

	return f
}

func day(value string) time.Time {
	d, _ := time.Parse(time.DateOnly, value)
	return d
}

func TestNewService_RejectsMismatchedStore(t *testing.T) {
	_, err := NewService(&config.Config{}, nil, []PlatformDeps{
		{Fetcher: newScriptedFetcher(domain.PlatformFacebook), Store: newMemoryStore(domain.PlatformGoogle)},
	}, nil)

	assert.ErrorIs(t, err, domain.ErrRecordPlatform)
}

func TestSyncOne_NewThenDuplicate(t *testing.T) {
	f := newServiceFixture(t, 1)
	ctx := context.Background()
	client := &domain.Client{ID: 1, Name: "Loja Centro", FacebookAccountID: "act_1", FacebookEnabled: true}

	f.facebook.records["act_1"] = []domain.CampaignDayRecord{
		facebookDay("act_1", "c1", "2025-01-01"),
		facebookDay("act_1", "c2", "2025-01-01"),
		facebookDay("act_1", "c3", "2025-01-01"),
	}
	f.clients.EXPECT().UpdateLastSynced(gomock.Any(), int64(1), domain.PlatformFacebook, fixedNow).Return(nil).Times(2)

	first, err := f.service.SyncOne(ctx, client, domain.PlatformFacebook, day("2025-01-01"), day("2025-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 3, first.Outcome.Saved)
	assert.Equal(t, 0, first.Outcome.Duplicates)
	assert.Equal(t, 0, first.Outcome.Errors)

	stored, err := f.service.ExistingInRange(ctx, client, domain.PlatformFacebook, day("2025-01-01"), day("2025-01-01"))
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	second, err := f.service.SyncOne(ctx, client, domain.PlatformFacebook, day("2025-01-01"), day("2025-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 0, second.Outcome.Saved)
	assert.Equal(t, 3, second.Outcome.Duplicates)
	assert.Equal(t, 0, second.Outcome.Errors)
	assert.Len(t, second.Fetched, 3)
	assert.Equal(t, 3, f.facebookStore.count())
}

func TestSyncOne_EmptyFetchUpdatesTimestamp(t *testing.T) {
	f := newServiceFixture(t, 1)
	client := &domain.Client{ID: 2, GoogleCustomerID: "1234567890", GoogleEnabled: true}

	f.clients.EXPECT().UpdateLastSynced(gomock.Any(), int64(2), domain.PlatformGoogle, fixedNow).Return(nil).Times(1)

	result, err := f.service.SyncOne(context.Background(), client, domain.PlatformGoogle, day("2025-01-01"), day("2025-01-05"))

	require.NoError(t, err)
	assert.Equal(t, domain.BatchOutcome{}, result.Outcome)
	assert.Empty(t, result.Fetched)
	assert.Equal(t, 0, f.googleStore.findCalls)
}

func TestSyncOne_FetchErrorKeepsTimestamp(t *testing.T) {
	f := newServiceFixture(t, 1)
	client := &domain.Client{ID: 3, FacebookAccountID: "act_3"}
	f.facebook.errs["act_3"] = domain.ErrRateLimited

	_, err := f.service.SyncOne(context.Background(), client, domain.PlatformFacebook, day("2025-01-01"), day("2025-01-02"))

	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestSyncOne_AccountNotConfigured(t *testing.T) {
	f := newServiceFixture(t, 1)

	_, err := f.service.SyncOne(context.Background(), &domain.Client{ID: 4}, domain.PlatformGoogle, day("2025-01-01"), day("2025-01-02"))

	assert.ErrorIs(t, err, domain.ErrAccountNotConfigured)
	assert.Empty(t, f.google.calls)
}

func TestSyncOne_TimestampFailureDoesNotFailSync(t *testing.T) {
	f := newServiceFixture(t, 1)
	client := &domain.Client{ID: 5, FacebookAccountID: "act_5"}
	f.facebook.records["act_5"] = []domain.CampaignDayRecord{facebookDay("act_5", "c1", "2025-01-01")}
	f.clients.EXPECT().UpdateLastSynced(gomock.Any(), int64(5), domain.PlatformFacebook, gomock.Any()).Return(errStoreDown)

	result, err := f.service.SyncOne(context.Background(), client, domain.PlatformFacebook, day("2025-01-01"), day("2025-01-01"))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Outcome.Saved)
}

func TestBulkResync_IsolatesClientFailures(t *testing.T) {
	for _, workers := range []int{1, 3} {
		f := newServiceFixture(t, workers)

		clients := []*domain.Client{
			{ID: 1, Name: "A", FacebookAccountID: "act_a", FacebookEnabled: true},
			{ID: 2, Name: "B", FacebookAccountID: "act_b", FacebookEnabled: true},
			{ID: 3, Name: "C", FacebookAccountID: "act_c", FacebookEnabled: true},
			{ID: 4, Name: "D", FacebookEnabled: true},
		}
		f.facebook.records["act_a"] = []domain.CampaignDayRecord{facebookDay("act_a", "c1", "2025-01-05")}
		f.facebook.errs["act_b"] = errors.New("erro ao buscar dados do Facebook")
		f.facebook.records["act_c"] = []domain.CampaignDayRecord{
			facebookDay("act_c", "c1", "2025-01-05"),
			facebookDay("act_c", "c2", "2025-01-06"),
		}

		f.clients.EXPECT().ListActiveClients(gomock.Any(), domain.PlatformFacebook).Return(clients, nil)
		f.clients.EXPECT().ListActiveClients(gomock.Any(), domain.PlatformGoogle).Return(nil, nil)
		f.clients.EXPECT().UpdateLastSynced(gomock.Any(), gomock.Any(), domain.PlatformFacebook, gomock.Any()).Return(nil).Times(2)

		report, err := f.service.BulkResync(context.Background(), 7)
		require.NoError(t, err)

		assert.True(t, report.Success)
		assert.Equal(t, "2025-01-03", report.StartDate)
		assert.Equal(t, "2025-01-09", report.EndDate)
		assert.Equal(t, "exec01", report.ExecutionID)

		summary := report.Platforms[domain.PlatformFacebook]
		require.NotNil(t, summary)
		assert.Equal(t, 4, summary.Total)
		assert.Equal(t, 2, summary.Success)
		assert.Equal(t, 2, summary.Errors)
		assert.Equal(t, 3, summary.Saved)

		require.Len(t, summary.Details, 4)
		assert.Equal(t, []int64{1, 2, 3, 4}, []int64{
			summary.Details[0].ClientID, summary.Details[1].ClientID,
			summary.Details[2].ClientID, summary.Details[3].ClientID,
		})
		assert.True(t, summary.Details[0].Success)
		assert.False(t, summary.Details[1].Success)
		assert.Contains(t, summary.Details[1].Message, "erro ao buscar dados do Facebook")
		assert.True(t, summary.Details[2].Success)
		assert.Equal(t, 2, summary.Details[2].NewRecords)
		assert.Equal(t, "Conta Facebook não configurada", summary.Details[3].Message)

		assert.Equal(t, 0, report.Platforms[domain.PlatformGoogle].Total)
	}
}

func TestBulkResync_RecoversFromPanic(t *testing.T) {
	f := newServiceFixture(t, 1)

	clients := []*domain.Client{
		{ID: 1, Name: "A", GoogleCustomerID: "1111111111", GoogleEnabled: true},
		{ID: 2, Name: "B", GoogleCustomerID: "2222222222", GoogleEnabled: true},
	}
	f.google.panics["1111111111"] = true
	f.google.records["2222222222"] = []domain.CampaignDayRecord{googleDay("2222222222", "5", "2025-01-09")}

	f.clients.EXPECT().ListActiveClients(gomock.Any(), domain.PlatformFacebook).Return(nil, nil)
	f.clients.EXPECT().ListActiveClients(gomock.Any(), domain.PlatformGoogle).Return(clients, nil)
	f.clients.EXPECT().UpdateLastSynced(gomock.Any(), int64(2), domain.PlatformGoogle, gomock.Any()).Return(nil)

	report, err := f.service.BulkResync(context.Background(), 15)
	require.NoError(t, err)

	summary := report.Platforms[domain.PlatformGoogle]
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 1, summary.Success)
	assert.Contains(t, summary.Details[0].Message, "Erro interno")
}

func TestBulkResync_InvalidPeriod(t *testing.T) {
	f := newServiceFixture(t, 1)

	for _, period := range []int{0, 1, 10, 31, 90} {
		_, err := f.service.BulkResync(context.Background(), period)
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod, "período %d", period)
	}
}

func TestRunDaily_SyncsYesterday(t *testing.T) {
	f := newServiceFixture(t, 1)

	f.clients.EXPECT().ListActiveClients(gomock.Any(), domain.PlatformFacebook).
		Return([]*domain.Client{{ID: 1, FacebookAccountID: "act_1", FacebookEnabled: true}}, nil)
	f.clients.EXPECT().ListActiveClients(gomock.Any(), domain.PlatformGoogle).Return(nil, nil)
	f.clients.EXPECT().UpdateLastSynced(gomock.Any(), int64(1), domain.PlatformFacebook, gomock.Any()).Return(nil)

	report, err := f.service.RunDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.SyncModeDaily, report.Mode)
	assert.Equal(t, "2025-01-09", report.StartDate)
	assert.Equal(t, "2025-01-09", report.EndDate)
	require.Len(t, f.facebook.calls, 1)
	assert.Equal(t, "2025-01-09", f.facebook.calls[0].startDate.Format(time.DateOnly))
	assert.Equal(t, "2025-01-09", f.facebook.calls[0].endDate.Format(time.DateOnly))
}

func TestRunDaily_AbortsWhenClientListFails(t *testing.T) {
	f := newServiceFixture(t, 1)

	f.clients.EXPECT().ListActiveClients(gomock.Any(), domain.PlatformFacebook).Return(nil, errStoreDown)

	report, err := f.service.RunDaily(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
	require.NotNil(t, report)
	assert.False(t, report.Success)
}

func TestResolveDeliveryRecords(t *testing.T) {
	ctx := context.Background()
	client := &domain.Client{ID: 7, GoogleCustomerID: "1234567890", FacebookAccountID: "act_7"}
	start, end := day("2025-01-01"), day("2025-01-09")

	t.Run("dados gravados recentes dispensam a API", func(t *testing.T) {
		f := newServiceFixture(t, 1)
		f.googleStore.rows = []domain.CampaignDayRecord{googleDay("1234567890", "1", "2025-01-08")}

		result, err := f.service.ResolveDeliveryRecords(ctx, client, domain.PlatformGoogle, start, end)

		require.NoError(t, err)
		assert.Equal(t, DeliverySourceStore, result.Source)
		assert.Len(t, result.Records, 1)
		assert.Empty(t, f.google.calls)
	})

	t.Run("dados antigos e API com erro usam os dados gravados", func(t *testing.T) {
		f := newServiceFixture(t, 1)
		f.googleStore.rows = []domain.CampaignDayRecord{
			googleDay("1234567890", "1", "2025-01-04"),
			googleDay("1234567890", "2", "2025-01-04"),
		}
		f.google.errs["1234567890"] = domain.ErrFetch

		result, err := f.service.ResolveDeliveryRecords(ctx, client, domain.PlatformGoogle, start, end)

		require.NoError(t, err)
		assert.Equal(t, DeliverySourceStoreFallback, result.Source)
		assert.Len(t, result.Records, 2)
		assert.Len(t, f.google.calls, 1)
	})

	t.Run("dados antigos e API com dados usam a API e gravam", func(t *testing.T) {
		f := newServiceFixture(t, 1)
		f.googleStore.rows = []domain.CampaignDayRecord{googleDay("1234567890", "1", "2025-01-04")}
		f.google.records["1234567890"] = []domain.CampaignDayRecord{
			googleDay("1234567890", "1", "2025-01-04"),
			googleDay("1234567890", "1", "2025-01-09"),
		}
		f.clients.EXPECT().UpdateLastSynced(gomock.Any(), int64(7), domain.PlatformGoogle, gomock.Any()).Return(nil)

		result, err := f.service.ResolveDeliveryRecords(ctx, client, domain.PlatformGoogle, start, end)

		require.NoError(t, err)
		assert.Equal(t, DeliverySourceAPI, result.Source)
		assert.Len(t, result.Records, 2)
		require.NotNil(t, result.Outcome)
		assert.Equal(t, 1, result.Outcome.Saved)
		assert.Equal(t, 1, result.Outcome.Duplicates)
		assert.Equal(t, 2, f.googleStore.count())
	})

	t.Run("sem dados gravados e API com erro falha", func(t *testing.T) {
		f := newServiceFixture(t, 1)
		f.google.errs["1234567890"] = domain.ErrPlatformAuth

		_, err := f.service.ResolveDeliveryRecords(ctx, client, domain.PlatformGoogle, start, end)

		assert.ErrorIs(t, err, domain.ErrPlatformAuth)
	})

	t.Run("sem dados em nenhum lugar retorna ErrNoData", func(t *testing.T) {
		f := newServiceFixture(t, 1)
		f.clients.EXPECT().UpdateLastSynced(gomock.Any(), int64(7), domain.PlatformGoogle, gomock.Any()).Return(nil)

		_, err := f.service.ResolveDeliveryRecords(ctx, client, domain.PlatformGoogle, start, end)

		assert.ErrorIs(t, err, domain.ErrNoData)
	})

	t.Run("facebook sempre consulta a API", func(t *testing.T) {
		f := newServiceFixture(t, 1)
		f.facebookStore.rows = []domain.CampaignDayRecord{facebookDay("act_7", "c1", "2025-01-09")}
		f.facebook.records["act_7"] = []domain.CampaignDayRecord{
			facebookDay("act_7", "c1", "2025-01-09"),
			facebookDay("act_7", "c2", "2025-01-09"),
		}

		result, err := f.service.ResolveDeliveryRecords(ctx, client, domain.PlatformFacebook, start, end)

		require.NoError(t, err)
		assert.Equal(t, DeliverySourceAPI, result.Source)
		assert.Len(t, result.Records, 2)
	})
}

func TestIsFresh(t *testing.T) {
	end := day("2025-01-10")

	tests := []struct {
		name    string
		records []domain.CampaignDayRecord
		want    bool
	}{
		{"sem registros", nil, false},
		{"no limite", []domain.CampaignDayRecord{googleDay("1", "1", "2025-01-08")}, true},
		{"fora do limite", []domain.CampaignDayRecord{googleDay("1", "1", "2025-01-07")}, false},
		{"um recente basta", []domain.CampaignDayRecord{
			googleDay("1", "1", "2025-01-01"),
			googleDay("1", "2", "2025-01-10"),
		}, true},
		{"data vazia ignorada", []domain.CampaignDayRecord{googleDay("1", "1", "")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFresh(tt.records, end, 2))
		})
	}
}
