package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const apiName = "facebook"

type Client interface {
	GetCampaignDailyInsights(ctx context.Context, accountID string, startDate, endDate time.Time) ([]metadomain.CampaignDailyInsight, error)
}

type MetaClient struct {
	cfg         config.Facebook
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	metrics     *metrics.Metrics
}

func NewClient(cfg config.Facebook, m *metrics.Metrics) *MetaClient {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &MetaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 1),
		metrics:     m,
	}
}

// get executa um GET na Graph API respeitando o limite de requisições e
// converte respostas de erro nos erros de domínio.
func (c *MetaClient) get(ctx context.Context, url string) ([]byte, error) {
	// Wait só falha com o contexto cancelado ou prazo insuficiente
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: aguardando limite de requisições: %w", domain.ErrFetch, err)
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, errors.Wrap(domain.ErrFetch, err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordExternalAPICall(apiName, "network_error", time.Since(start))
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, errors.Wrap(domain.ErrFetch, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordExternalAPICall(apiName, "read_body", time.Since(start))
		return nil, errors.Wrap(domain.ErrFetch, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordExternalAPICall(apiName, fmt.Sprintf("error_%d", resp.StatusCode), time.Since(start))
		return nil, decodeError(resp.StatusCode, body)
	}

	c.metrics.RecordExternalAPICall(apiName, "success", time.Since(start))
	return body, nil
}

func decodeError(statusCode int, body []byte) error {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Code == 0 {
		if statusCode == http.StatusTooManyRequests {
			return errors.Wrapf(domain.ErrRateLimited, "status %d", statusCode)
		}
		return errors.Wrapf(domain.ErrFetch, "status %d", statusCode)
	}

	logrus.WithFields(logrus.Fields{
		"code":       errorResp.Error.Code,
		"subcode":    errorResp.Error.ErrorSubcode,
		"type":       errorResp.Error.Type,
		"fbtrace_id": errorResp.Error.FBTraceID,
	}).Warn("Erro retornado pela API do Meta")

	switch {
	case errorResp.IsRateLimited():
		return errors.Wrapf(domain.ErrRateLimited, "meta: %s (código %d)", errorResp.Error.Message, errorResp.Error.Code)
	case errorResp.IsTokenExpired():
		return errors.Wrapf(domain.ErrPlatformAuth, "meta: %s (código %d)", errorResp.Error.Message, errorResp.Error.Code)
	default:
		return errors.Wrapf(domain.ErrFetch, "meta: %s (código %d)", errorResp.Error.Message, errorResp.Error.Code)
	}
}
