package reporting

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
)

// Reporter gera relatórios sob demanda e envia resumos por WhatsApp
type Reporter interface {
	GenerateReport(ctx context.Context, clientID int64, platform domain.Platform, startDate, endDate time.Time) (*Report, error)
	WriteCSV(w io.Writer, report *Report) error
	SendWhatsApp(ctx context.Context, clientID int64, platform domain.Platform, startDate, endDate time.Time) (*Delivery, error)
}

// Report carrega todos os registros buscados na API, inclusive os que já estavam gravados
type Report struct {
	Client    *domain.Client             `json:"-"`
	Platform  domain.Platform            `json:"platform"`
	StartDate time.Time                  `json:"start_date"`
	EndDate   time.Time                  `json:"end_date"`
	Records   []domain.CampaignDayRecord `json:"-"`
	Existing  int                        `json:"existing_before"`
	Outcome   domain.BatchOutcome        `json:"outcome"`
	Filename  string                     `json:"filename"`
}

type Delivery struct {
	ClientID  int64                  `json:"client_id"`
	Platform  domain.Platform        `json:"platform"`
	Recipient string                 `json:"recipient"`
	Records   int                    `json:"records"`
	Source    syncing.DeliverySource `json:"source"`
	Message   string                 `json:"message"`
}

type Service struct {
	syncer           syncing.Syncer
	clientRepository repository.ClientRepository
	sender           integrator.MessageSender
	formatter        MessageFormatter
	exporter         *CSVExporter
	metrics          *metrics.Metrics
	now              func() time.Time
}

func NewService(
	syncer syncing.Syncer,
	clientRepo repository.ClientRepository,
	sender integrator.MessageSender,
	formatter MessageFormatter,
	m *metrics.Metrics,
) *Service {
	if formatter == nil {
		formatter = NewPortugueseFormatter()
	}

	return &Service{
		syncer:           syncer,
		clientRepository: clientRepo,
		sender:           sender,
		formatter:        formatter,
		exporter:         NewCSVExporter(),
		metrics:          m,
		now:              time.Now,
	}
}

func (s *Service) GenerateReport(ctx context.Context, clientID int64, platform domain.Platform, startDate, endDate time.Time) (*Report, error) {
	client, err := s.clientRepository.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	entry := logrus.WithFields(logrus.Fields{
		"client_id":  client.ID,
		"client":     client.Name,
		"platform":   platform,
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	})

	report := &Report{
		Client:    client,
		Platform:  platform,
		StartDate: startDate,
		EndDate:   endDate,
		Filename:  s.exporter.Filename(platform, client.Name, startDate, endDate),
	}

	existing, err := s.syncer.ExistingInRange(ctx, client, platform, startDate, endDate)
	if err != nil && !errors.Is(err, domain.ErrAccountNotConfigured) {
		entry.WithError(err).Warn("Erro ao contar registros já gravados no período")
	}
	report.Existing = len(existing)

	result, err := s.syncer.SyncOne(ctx, client, platform, startDate, endDate)
	if err != nil {
		return nil, err
	}

	report.Records = result.Fetched
	report.Outcome = result.Outcome

	entry.WithFields(logrus.Fields{
		"fetched":              len(result.Fetched),
		"existing_before":      report.Existing,
		"novos_salvos":         result.Outcome.Saved,
		"duplicados_ignorados": result.Outcome.Duplicates,
		"erros":                result.Outcome.Errors,
	}).Info("Relatório gerado")

	if len(result.Fetched) == 0 {
		return report, domain.ErrNoData
	}

	return report, nil
}

func (s *Service) WriteCSV(w io.Writer, report *Report) error {
	return s.exporter.Write(w, report.Platform, report.Records)
}

func (s *Service) SendWhatsApp(ctx context.Context, clientID int64, platform domain.Platform, startDate, endDate time.Time) (*Delivery, error) {
	client, err := s.clientRepository.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	recipient := strings.TrimSpace(client.WhatsAppGroup)
	if recipient == "" {
		return nil, errors.Wrapf(domain.ErrDeliveryFailure, "link do grupo WhatsApp não configurado para o cliente %s (%s)", client.Name, platform)
	}

	entry := logrus.WithFields(logrus.Fields{
		"client_id": client.ID,
		"client":    client.Name,
		"platform":  platform,
	})

	resolved, err := s.syncer.ResolveDeliveryRecords(ctx, client, platform, startDate, endDate)
	if err != nil {
		return nil, err
	}

	text := s.formatter.Format(client, platform, startDate, endDate, resolved.Records)

	entry.WithFields(logrus.Fields{
		"records":         len(resolved.Records),
		"source":          resolved.Source,
		"conversion_type": client.ConversionType,
		"chars":           len(text),
	}).Info("Enviando relatório via WhatsApp")

	if err := s.sender.SendText(ctx, recipient, text); err != nil {
		s.metrics.RecordDelivery(platform.String(), "error")
		entry.WithError(err).Error("Erro ao enviar via WhatsApp")
		return nil, errors.Wrap(domain.ErrDeliveryFailure, err.Error())
	}
	s.metrics.RecordDelivery(platform.String(), "success")

	s.markDelivered(ctx, entry, client, platform)

	return &Delivery{
		ClientID:  client.ID,
		Platform:  platform,
		Recipient: recipient,
		Records:   len(resolved.Records),
		Source:    resolved.Source,
		Message:   text,
	}, nil
}

// markDelivered registra o envio quando o cadastro de clientes oferece essa capacidade
func (s *Service) markDelivered(ctx context.Context, entry *logrus.Entry, client *domain.Client, platform domain.Platform) {
	marker, ok := s.clientRepository.(repository.DeliveryMarker)
	if !ok {
		entry.WithError(domain.ErrUnsupported).Debug("Cadastro de clientes não registra envios")
		return
	}

	if err := marker.MarkDelivered(ctx, client.ID, platform, s.now()); err != nil {
		entry.WithError(err).Warn("Erro ao atualizar último envio")
	}
}
