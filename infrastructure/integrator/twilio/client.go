package twilio

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	twiliogo "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Client envia mensagens de WhatsApp pela API de mensagens da Twilio
type Client struct {
	api  messageCreator
	from string
}

var _ integrator.MessageSender = (*Client)(nil)

func NewClient(cfg config.WhatsApp) *Client {
	restClient := twiliogo.NewRestClientWithParams(twiliogo.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return &Client{
		api:  restClient.Api,
		from: whatsAppAddress(cfg.TwilioFrom),
	}
}

func (c *Client) SendText(_ context.Context, recipient, text string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsAppAddress("+" + utils.FormatBrazilianNumber(recipient)))
	params.SetFrom(c.from)
	params.SetBody(text)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		logrus.WithError(err).Error("Erro ao enviar mensagem pela Twilio")
		return errors.Wrap(domain.ErrDeliveryFailure, err.Error())
	}

	fields := logrus.Fields{"tamanho": len(text)}
	if resp != nil && resp.Sid != nil {
		fields["sid"] = *resp.Sid
	}
	logrus.WithFields(fields).Info("Mensagem enviada pela Twilio")

	return nil
}

func whatsAppAddress(number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
