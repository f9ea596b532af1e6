package meta

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const defaultMaxRangeDays = 60

type MetaIntegrator struct {
	Client       metaclient.Client
	maxRangeDays int
	now          func() time.Time
}

var _ integrator.CampaignFetcher = (*MetaIntegrator)(nil)

func New(cfg config.Facebook, client metaclient.Client) *MetaIntegrator {
	maxRangeDays := cfg.MaxRangeDays
	if maxRangeDays <= 0 {
		maxRangeDays = defaultMaxRangeDays
	}

	return &MetaIntegrator{
		Client:       client,
		maxRangeDays: maxRangeDays,
		now:          time.Now,
	}
}

func (s *MetaIntegrator) Platform() domain.Platform {
	return domain.PlatformFacebook
}

// FetchCampaignDays busca os insights diários por campanha. Os registros recebem o
// identificador de conta consultado para que a chave natural coincida com o cadastro.
func (s *MetaIntegrator) FetchCampaignDays(ctx context.Context, accountID string, startDate, endDate time.Time) ([]domain.CampaignDayRecord, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, errors.Wrap(domain.ErrInvalidAccountID, "conta do facebook vazia")
	}

	if err := integrator.ValidateDateRange(startDate, endDate, s.now(), s.maxRangeDays); err != nil {
		return nil, err
	}

	insights, err := s.Client.GetCampaignDailyInsights(ctx, accountID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign daily insights from API")
		return nil, err
	}

	records := make([]domain.CampaignDayRecord, 0, len(insights))
	for i := range insights {
		records = append(records, FactoryCampaignDay(accountID, &insights[i]))
	}

	return records, nil
}

func FactoryCampaignDay(accountID string, insight *metadomain.CampaignDailyInsight) *domain.FacebookCampaignDay {
	campaign := &domain.FacebookCampaignDay{
		AccountID:        accountID,
		CampaignID:       insight.CampaignID,
		CampaignName:     insight.CampaignName,
		DateStart:        insight.DateStart,
		Reach:            parseCount(insight.Reach),
		Impressions:      parseCount(insight.Impressions),
		Spend:            parseAmount(insight.Spend),
		InlineLinkClicks: parseCount(insight.InlineLinkClicks),
	}

	for _, action := range insight.Actions {
		value := parseCount(action.Value)

		switch action.ActionType {
		case metadomain.ActionLinkClick:
			campaign.LinkClicks = value
		case metadomain.ActionLandingPageView:
			campaign.LandingPageViews = value
		case metadomain.ActionAddToCart:
			campaign.AddToCart = value
		case metadomain.ActionInitiateCheckout:
			campaign.InitiateCheckout = value
		case metadomain.ActionLead:
			campaign.Leads = value
		case metadomain.ActionMessagingConversationStarted:
			campaign.MessagingConversationStarted = value
		case metadomain.ActionPurchase:
			campaign.Purchases = value
		case metadomain.ActionCustom:
			campaign.CustomConversions = value
		case metadomain.ActionCompleteRegistration:
			campaign.CompleteRegistration = value
		case metadomain.ActionLeadGrouped:
			campaign.LeadGrouped = value
		}
	}

	return campaign
}

// parseCount aceita valores como "12" e "12.0"
func parseCount(value string) int {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("insights: error converting count")
		return 0
	}

	return int(f)
}

func parseAmount(value string) float64 {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("insights: error converting spend to float")
		return 0
	}

	return f
}
