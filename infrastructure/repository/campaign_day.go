package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

//go:generate mockgen -source=campaign_day.go -destination=mocks/campaign_day_mock.go -package=mocks

// CampaignDayRepository é o armazenamento de registros diários de uma plataforma.
// Insert grava uma única linha; retorna domain.ErrAlreadyStored quando nenhuma
// linha foi escrita por já existir a chave natural.
type CampaignDayRepository interface {
	Platform() domain.Platform
	FindByKey(ctx context.Context, key domain.NaturalKey) (domain.CampaignDayRecord, error)
	FindByAccountAndRange(ctx context.Context, accountID string, startDate, endDate time.Time) ([]domain.CampaignDayRecord, error)
	Insert(ctx context.Context, record domain.CampaignDayRecord) error
}

const uniqueViolation = "23505"

func checkInsertResult(result sql.Result, err error) error {
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code == uniqueViolation {
				return domain.ErrAlreadyStored
			}
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrAlreadyStored
	}

	return nil
}
