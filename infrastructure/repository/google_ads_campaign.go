package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const (
	googleAdsCampaignsTable = "relatorio_google_ads"
)

var googleAdsCampaignColumns = []string{
	"customer_id",
	"campaign_id",
	"nome_campanha",
	"dia",
	"clicks",
	"conversions",
	"conversions_value",
	"ctr",
	"average_cpc",
	"impressions",
	"cost",
}

type googleAdsCampaignRepository struct {
	conn postgres.Queryer
}

func NewGoogleAdsCampaignRepository(conn postgres.Queryer) CampaignDayRepository {
	return &googleAdsCampaignRepository{
		conn: conn,
	}
}

func (r *googleAdsCampaignRepository) Platform() domain.Platform {
	return domain.PlatformGoogle
}

func (r *googleAdsCampaignRepository) FindByKey(ctx context.Context, key domain.NaturalKey) (domain.CampaignDayRecord, error) {
	query, args, err := squirrel.
		Select(append([]string{"id"}, googleAdsCampaignColumns...)...).
		From(googleAdsCampaignsTable).
		Where(squirrel.Eq{
			"customer_id": key.AccountID,
			"campaign_id": key.CampaignID,
			"dia":         key.Date,
		}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanGoogleAdsCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha do google ads: %w", err)
	}

	return record, nil
}

func (r *googleAdsCampaignRepository) FindByAccountAndRange(ctx context.Context, customerID string, startDate, endDate time.Time) ([]domain.CampaignDayRecord, error) {
	query, args, err := squirrel.
		Select(append([]string{"id"}, googleAdsCampaignColumns...)...).
		From(googleAdsCampaignsTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.GtOrEq{"dia": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"dia": endDate.Format(time.DateOnly)}).
		OrderBy("dia ASC", "campaign_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.CampaignDayRecord, 0)
	for rows.Next() {
		record, err := scanGoogleAdsCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas do google ads: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *googleAdsCampaignRepository) Insert(ctx context.Context, record domain.CampaignDayRecord) error {
	campaign, ok := record.(*domain.GoogleAdsCampaignDay)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrRecordPlatform, record.Platform())
	}

	query, args, err := squirrel.
		Insert(googleAdsCampaignsTable).
		Columns(googleAdsCampaignColumns...).
		Values(
			campaign.CustomerID,
			campaign.CampaignID,
			campaign.CampaignName,
			campaign.Day,
			campaign.Clicks,
			campaign.Conversions,
			campaign.ConversionsValue,
			campaign.CTR,
			campaign.AverageCPC,
			campaign.Impressions,
			campaign.Cost,
		).
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return checkInsertResult(r.conn.ExecContext(ctx, query, args...))
}

func scanGoogleAdsCampaign(row rowScanner) (*domain.GoogleAdsCampaignDay, error) {
	c := &domain.GoogleAdsCampaignDay{}
	var day time.Time

	err := row.Scan(
		&c.ID,
		&c.CustomerID,
		&c.CampaignID,
		&c.CampaignName,
		&day,
		&c.Clicks,
		&c.Conversions,
		&c.ConversionsValue,
		&c.CTR,
		&c.AverageCPC,
		&c.Impressions,
		&c.Cost,
	)
	if err != nil {
		return nil, err
	}
	c.Day = day.Format(time.DateOnly)

	return c, nil
}
