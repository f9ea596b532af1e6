package googleadsclient

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const maxPages = 100

const campaignDaysQuery = `SELECT
	campaign.id,
	campaign.name,
	campaign.status,
	segments.date,
	metrics.clicks,
	metrics.conversions,
	metrics.conversions_value,
	metrics.ctr,
	metrics.average_cpc,
	metrics.impressions,
	metrics.cost_micros
FROM campaign
WHERE segments.date BETWEEN '%s' AND '%s'
ORDER BY segments.date DESC`

func (c *GoogleAdsClient) SearchCampaignDays(ctx context.Context, customerID string, startDate, endDate time.Time) ([]googleadsdomain.SearchRow, error) {
	request := googleadsdomain.SearchRequest{
		Query: fmt.Sprintf(campaignDaysQuery, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly)),
	}

	rows := make([]googleadsdomain.SearchRow, 0)
	pending := true
	for page := 0; pending && page < maxPages; page++ {
		body, err := c.post(ctx, c.searchURL(customerID), request)
		if err != nil {
			return nil, err
		}

		var response googleadsdomain.SearchResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, errors.Wrap(domain.ErrFetch, err.Error())
		}

		rows = append(rows, response.Results...)
		request.PageToken = response.NextPageToken
		pending = response.NextPageToken != ""
	}

	if pending {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"paginas":     maxPages,
		}).Warn("Limite de páginas atingido com nextPageToken pendente")
		return nil, errors.Wrapf(domain.ErrFetch, "limite de %d páginas atingido para o cliente %s", maxPages, customerID)
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"linhas":      len(rows),
	}).Debug("Campanhas diárias recebidas do Google Ads")

	return rows, nil
}
