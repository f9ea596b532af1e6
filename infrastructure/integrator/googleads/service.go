package googleads

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator"
	googleadsdomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const (
	defaultMaxRangeDays = 90
	minCustomerIDDigits = 9
	micros              = 1_000_000
)

type GoogleAdsIntegrator struct {
	Client       googleadsclient.Client
	maxRangeDays int
	now          func() time.Time
}

var _ integrator.CampaignFetcher = (*GoogleAdsIntegrator)(nil)

func New(cfg config.GoogleAds, client googleadsclient.Client) *GoogleAdsIntegrator {
	maxRangeDays := cfg.MaxRangeDays
	if maxRangeDays <= 0 {
		maxRangeDays = defaultMaxRangeDays
	}

	return &GoogleAdsIntegrator{
		Client:       client,
		maxRangeDays: maxRangeDays,
		now:          time.Now,
	}
}

func (s *GoogleAdsIntegrator) Platform() domain.Platform {
	return domain.PlatformGoogle
}

func (s *GoogleAdsIntegrator) FetchCampaignDays(ctx context.Context, customerID string, startDate, endDate time.Time) ([]domain.CampaignDayRecord, error) {
	if err := integrator.ValidateDateRange(startDate, endDate, s.now(), s.maxRangeDays); err != nil {
		return nil, err
	}

	customerID, err := ValidateCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.Client.SearchCampaignDays(ctx, customerID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("googleads: failed to search campaign days")
		return nil, err
	}

	records := make([]domain.CampaignDayRecord, 0, len(rows))
	for i := range rows {
		records = append(records, FactoryCampaignDay(customerID, &rows[i]))
	}

	return records, nil
}

// ValidateCustomerID normaliza o customer id e exige ao menos 9 dígitos numéricos
func ValidateCustomerID(raw string) (string, error) {
	customerID := domain.NormalizeCustomerID(raw)

	if len(customerID) < minCustomerIDDigits {
		return "", errors.Wrapf(domain.ErrInvalidAccountID, "customer id %q deve ter pelo menos %d dígitos", customerID, minCustomerIDDigits)
	}

	for _, r := range customerID {
		if r < '0' || r > '9' {
			return "", errors.Wrapf(domain.ErrInvalidAccountID, "customer id %q deve conter apenas números", customerID)
		}
	}

	return customerID, nil
}

// FactoryCampaignDay converte uma linha da busca; valores monetários chegam em micros
func FactoryCampaignDay(customerID string, row *googleadsdomain.SearchRow) *domain.GoogleAdsCampaignDay {
	return &domain.GoogleAdsCampaignDay{
		CustomerID:       customerID,
		CampaignID:       strconv.FormatInt(int64(row.Campaign.ID), 10),
		CampaignName:     row.Campaign.Name,
		Day:              row.Segments.Date,
		Clicks:           int64(row.Metrics.Clicks),
		Conversions:      row.Metrics.Conversions,
		ConversionsValue: row.Metrics.ConversionsValue,
		CTR:              row.Metrics.CTR,
		AverageCPC:       row.Metrics.AverageCPC / micros,
		Impressions:      int64(row.Metrics.Impressions),
		Cost:             float64(row.Metrics.CostMicros) / micros,
	}
}
