package syncing

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
)

const incompleteDataMessage = "Dados incompletos"

// Persister grava registro a registro; a falha de um registro nunca interrompe o lote
type Persister struct {
	store   repository.CampaignDayRepository
	oracle  *ExistenceOracle
	metrics *metrics.Metrics
}

func NewPersister(store repository.CampaignDayRepository, oracle *ExistenceOracle, m *metrics.Metrics) *Persister {
	return &Persister{
		store:   store,
		oracle:  oracle,
		metrics: m,
	}
}

// Save valida a chave, verifica de novo a existência e insere cada registro.
// Entre a verificação e a inserção não há trava: execuções concorrentes para a
// mesma chave ainda podem gravar duas linhas quando não há índice único.
func (p *Persister) Save(ctx context.Context, records []domain.CampaignDayRecord) domain.BatchOutcome {
	outcome := domain.BatchOutcome{Total: len(records)}
	platform := p.store.Platform()
	conflicts := 0

	for _, record := range records {
		key := record.NaturalKey()

		if !key.IsComplete() {
			outcome.AddError(key, incompleteDataMessage)
			continue
		}

		if p.oracle.Exists(ctx, key) {
			outcome.Duplicates++
			logrus.WithField("key", key.String()).Debug("Dados já existem - Ignorando")
			continue
		}

		err := p.store.Insert(ctx, record)
		switch {
		case errors.Is(err, domain.ErrAlreadyStored):
			outcome.Duplicates++
			conflicts++
			logrus.WithField("key", key.String()).Warn("Inserção ignorada pelo banco: chave natural já gravada")
		case err != nil:
			outcome.AddError(key, err.Error())
			logrus.WithFields(logrus.Fields{
				"platform": platform,
				"key":      key.String(),
				"error":    err.Error(),
			}).Error("Erro ao salvar registro")
		default:
			outcome.Saved++
		}
	}

	// conflitos seguem contando como duplicados no lote, mas têm rótulo próprio na métrica
	p.metrics.RecordBatch(platform.String(), outcome.Saved, outcome.Duplicates-conflicts, outcome.Errors)
	p.metrics.RecordConflicts(platform.String(), conflicts)

	logrus.WithFields(logrus.Fields{
		"platform":             platform,
		"total_enviados":       outcome.Total,
		"novos_salvos":         outcome.Saved,
		"duplicados_ignorados": outcome.Duplicates,
		"conflitos_banco":      conflicts,
		"erros":                outcome.Errors,
	}).Info("Lote de persistência concluído")

	return outcome
}
