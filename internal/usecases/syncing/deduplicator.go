package syncing

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// Deduplicator separa os registros recém-buscados que ainda não estão gravados
type Deduplicator struct {
	oracle *ExistenceOracle
}

func NewDeduplicator(oracle *ExistenceOracle) *Deduplicator {
	return &Deduplicator{oracle: oracle}
}

// FilterNew mantém a ordem de entrada. A conta usada na consulta é a da
// plataforma informada; duplicatas dentro do próprio lote não são removidas.
// Registros com chave incompleta seguem adiante para o Persister contabilizá-los
// como erro.
func (d *Deduplicator) FilterNew(ctx context.Context, records []domain.CampaignDayRecord, platformAccountID string) []domain.CampaignDayRecord {
	if len(records) == 0 {
		return []domain.CampaignDayRecord{}
	}

	newRecords := make([]domain.CampaignDayRecord, 0, len(records))
	for _, record := range records {
		key := record.NaturalKey()
		if platformAccountID != "" {
			key.AccountID = platformAccountID
		}

		if !key.IsComplete() {
			newRecords = append(newRecords, record)
			continue
		}

		if d.oracle.Exists(ctx, key) {
			logrus.WithField("key", key.String()).Debug("Filtrado (já existe)")
			continue
		}

		newRecords = append(newRecords, record)
	}

	return newRecords
}
