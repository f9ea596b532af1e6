package googleadsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const apiName = "google_ads"

type Client interface {
	SearchCampaignDays(ctx context.Context, customerID string, startDate, endDate time.Time) ([]googleadsdomain.SearchRow, error)
}

type GoogleAdsClient struct {
	cfg         config.GoogleAds
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	metrics     *metrics.Metrics
}

// NewClient cria o cliente autenticado pelo refresh token configurado.
// A troca inicial do código OAuth acontece fora deste serviço.
func NewClient(ctx context.Context, cfg config.GoogleAds, m *metrics.Metrics) *GoogleAdsClient {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: cfg.TokenURL,
		},
		Scopes: []string{"https://www.googleapis.com/auth/adwords"},
	}

	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	httpClient := oauth2.NewClient(ctx, tokenSource)
	httpClient.Timeout = 60 * time.Second

	return NewClientWithHTTP(cfg, httpClient, m)
}

func NewClientWithHTTP(cfg config.GoogleAds, httpClient *http.Client, m *metrics.Metrics) *GoogleAdsClient {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &GoogleAdsClient{
		cfg:         cfg,
		httpClient:  httpClient,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 1),
		metrics:     m,
	}
}

func (c *GoogleAdsClient) searchURL(customerID string) string {
	return fmt.Sprintf("%s/%s/customers/%s/googleAds:search", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Version, customerID)
}

func (c *GoogleAdsClient) post(ctx context.Context, url string, payload any) ([]byte, error) {
	// Wait só falha com o contexto cancelado ou prazo insuficiente
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: aguardando limite de requisições: %w", domain.ErrFetch, err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(domain.ErrFetch, err.Error())
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, errors.Wrap(domain.ErrFetch, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if loginCustomerID := domain.NormalizeCustomerID(c.cfg.LoginCustomerID); loginCustomerID != "" {
		req.Header.Set("login-customer-id", loginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordExternalAPICall(apiName, "network_error", time.Since(start))
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, errors.Wrap(domain.ErrPlatformAuth, err.Error())
		}
		return nil, errors.Wrap(domain.ErrFetch, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordExternalAPICall(apiName, "read_body", time.Since(start))
		return nil, errors.Wrap(domain.ErrFetch, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordExternalAPICall(apiName, fmt.Sprintf("error_%d", resp.StatusCode), time.Since(start))
		return nil, decodeError(resp.StatusCode, respBody)
	}

	c.metrics.RecordExternalAPICall(apiName, "success", time.Since(start))
	return respBody, nil
}

func decodeError(statusCode int, body []byte) error {
	var errorResp googleadsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Code == 0 {
		errorResp.Error.Code = statusCode
	}

	logrus.WithFields(logrus.Fields{
		"code":   errorResp.Error.Code,
		"status": errorResp.Error.Status,
	}).Warn("Erro retornado pela API do Google Ads")

	switch {
	case errorResp.IsRateLimited():
		return errors.Wrapf(domain.ErrRateLimited, "google ads: %s", errorResp.Error.Message)
	case errorResp.IsUnauthenticated():
		return errors.Wrapf(domain.ErrPlatformAuth, "google ads: %s", errorResp.Error.Message)
	default:
		return errors.Wrapf(domain.ErrFetch, "google ads: %s (status %d)", errorResp.Error.Message, errorResp.Error.Code)
	}
}
