package evolution

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
	"github.com/vfg2006/ads-report-api/infrastructure/integrator"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type sendTextRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// Client envia mensagens pela Evolution API
type Client struct {
	baseURL    string
	instance   string
	apiKey     string
	httpClient *http.Client
}

var _ integrator.MessageSender = (*Client)(nil)

func NewClient(cfg config.WhatsApp) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.EvolutionURL, "/"),
		instance: cfg.EvolutionInstance,
		apiKey:   cfg.EvolutionToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) SendText(ctx context.Context, recipient, text string) error {
	number := utils.FormatBrazilianNumber(recipient)

	body, err := json.Marshal(sendTextRequest{Number: number, Text: text})
	if err != nil {
		return errors.Wrap(domain.ErrDeliveryFailure, err.Error())
	}

	url := fmt.Sprintf("%s/message/sendText/%s", c.baseURL, c.instance)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(domain.ErrDeliveryFailure, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro de conexão com a Evolution API")
		return errors.Wrap(domain.ErrDeliveryFailure, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"response":    string(respBody),
		}).Error("Evolution API recusou a mensagem")
		return errors.Wrapf(domain.ErrDeliveryFailure, "erro na API: %d", resp.StatusCode)
	}

	logrus.WithFields(logrus.Fields{
		"number":   number,
		"tamanho":  len(text),
		"instance": c.instance,
	}).Info("Mensagem enviada pela Evolution API")

	return nil
}
