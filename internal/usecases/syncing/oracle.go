package syncing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
)

// ExistenceOracle responde se uma chave natural já está gravada.
// Falhas de leitura são tratadas como ausência: preferimos um possível
// registro duplicado à perda silenciosa de dados.
type ExistenceOracle struct {
	store   repository.CampaignDayRepository
	metrics *metrics.Metrics
}

func NewExistenceOracle(store repository.CampaignDayRepository, m *metrics.Metrics) *ExistenceOracle {
	return &ExistenceOracle{
		store:   store,
		metrics: m,
	}
}

func (o *ExistenceOracle) Platform() domain.Platform {
	return o.store.Platform()
}

func (o *ExistenceOracle) Exists(ctx context.Context, key domain.NaturalKey) bool {
	record, err := o.store.FindByKey(ctx, key)
	if err != nil {
		o.metrics.RecordExistenceFailure(o.Platform().String())
		logrus.WithFields(logrus.Fields{
			"platform": o.Platform(),
			"key":      key.String(),
			"error":    err.Error(),
		}).Warn("Erro ao verificar registro existente, assumindo que não existe")
		return false
	}

	return record != nil
}

// ExistingInRange retorna os registros gravados da conta no período. Não é usado
// na deduplicação, que é sempre por chave exata.
func (o *ExistenceOracle) ExistingInRange(ctx context.Context, accountID string, startDate, endDate time.Time) ([]domain.CampaignDayRecord, error) {
	return o.store.FindByAccountAndRange(ctx, accountID, startDate, endDate)
}
