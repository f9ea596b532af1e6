package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const (
	insightsLimit = 1000
	// evita laço infinito se a API repetir o cursor
	maxPages = 100
)

var campaignInsightFields = []string{
	"account_id",
	"campaign_id",
	"campaign_name",
	"date_start",
	"reach",
	"impressions",
	"spend",
	"inline_link_clicks",
	"actions",
	"cost_per_action_type",
}

func (c *MetaClient) GetCampaignDailyInsights(ctx context.Context, accountID string, startDate, endDate time.Time) ([]metadomain.CampaignDailyInsight, error) {
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", strings.Join(campaignInsightFields, ","))
	params.Add("time_range", timeRange)
	params.Add("time_increment", "1")
	params.Add("level", "campaign")
	params.Add("limit", fmt.Sprint(insightsLimit))
	params.Add("access_token", c.cfg.AccessToken)

	next := fmt.Sprintf("%s/%s/insights?%s", strings.TrimRight(c.cfg.URL, "/"), accountID, params.Encode())

	insights := make([]metadomain.CampaignDailyInsight, 0)
	for page := 0; next != "" && page < maxPages; page++ {
		body, err := c.get(ctx, next)
		if err != nil {
			return nil, err
		}

		var response metadomain.CampaignInsightsResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, errors.Wrap(domain.ErrFetch, err.Error())
		}

		insights = append(insights, response.Data...)
		next = response.Paging.Next
	}

	if next != "" {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"paginas":    maxPages,
		}).Warn("Limite de páginas atingido com cursor pendente")
		return nil, errors.Wrapf(domain.ErrFetch, "limite de %d páginas atingido para a conta %s", maxPages, accountID)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"linhas":     len(insights),
	}).Debug("Insights diários de campanha recebidos do Meta")

	return insights, nil
}
