package integrator

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

//go:generate mockgen -source=integrator.go -destination=mocks/integrator_mock.go -package=mocks

// CampaignFetcher busca os registros diários de campanha de uma conta na API da plataforma
type CampaignFetcher interface {
	Platform() domain.Platform
	FetchCampaignDays(ctx context.Context, accountID string, startDate, endDate time.Time) ([]domain.CampaignDayRecord, error)
}

// MessageSender envia texto para um número ou grupo de WhatsApp
type MessageSender interface {
	SendText(ctx context.Context, recipient, text string) error
}

// ValidateDateRange rejeita períodos acima do limite da plataforma, invertidos
// ou terminando no futuro. Deve ser chamado antes de qualquer requisição.
func ValidateDateRange(startDate, endDate, now time.Time, maxDays int) error {
	start := truncateDay(startDate)
	end := truncateDay(endDate)

	if start.IsZero() || end.IsZero() {
		return errors.Wrap(domain.ErrInvalidDateRange, "datas não informadas")
	}

	if start.After(end) {
		return errors.Wrapf(domain.ErrInvalidDateRange, "data inicial %s posterior à final %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	if end.After(now) {
		return errors.Wrapf(domain.ErrInvalidDateRange, "data final %s no futuro", end.Format(time.DateOnly))
	}

	if days := int(end.Sub(start).Hours() / 24); days > maxDays {
		return errors.Wrapf(domain.ErrInvalidDateRange, "período de %d dias excede o máximo de %d", days, maxDays)
	}

	return nil
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
