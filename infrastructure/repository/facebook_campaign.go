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
	facebookCampaignsTable = "relatorio_fb_campaigns"
)

var facebookCampaignColumns = []string{
	"account_id",
	"campaign_id",
	"campaign_name",
	"date_start",
	"reach",
	"impressions",
	"spend",
	"inline_link_clicks",
	"link_click",
	"landing_page_view",
	"offsite_conversion_fb_pixel_add_to_cart",
	"offsite_conversion_fb_pixel_initiate_checkout",
	"offsite_conversion_fb_pixel_lead",
	"onsite_conversion_messaging_conversation_started_7d",
	"offsite_conversion_fb_pixel_purchase",
	"offsite_conversion_fb_pixel_custom",
	"offsite_conversion_fb_pixel_complete_registration",
	"onsite_conversion_lead_grouped",
}

type facebookCampaignRepository struct {
	conn postgres.Queryer
}

func NewFacebookCampaignRepository(conn postgres.Queryer) CampaignDayRepository {
	return &facebookCampaignRepository{
		conn: conn,
	}
}

func (r *facebookCampaignRepository) Platform() domain.Platform {
	return domain.PlatformFacebook
}

func (r *facebookCampaignRepository) FindByKey(ctx context.Context, key domain.NaturalKey) (domain.CampaignDayRecord, error) {
	query, args, err := squirrel.
		Select(append([]string{"id"}, facebookCampaignColumns...)...).
		From(facebookCampaignsTable).
		Where(squirrel.Eq{
			"account_id":  key.AccountID,
			"campaign_id": key.CampaignID,
			"date_start":  key.Date,
		}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanFacebookCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha do facebook: %w", err)
	}

	return record, nil
}

func (r *facebookCampaignRepository) FindByAccountAndRange(ctx context.Context, accountID string, startDate, endDate time.Time) ([]domain.CampaignDayRecord, error) {
	query, args, err := squirrel.
		Select(append([]string{"id"}, facebookCampaignColumns...)...).
		From(facebookCampaignsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.GtOrEq{"date_start": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date_start": endDate.Format(time.DateOnly)}).
		OrderBy("date_start ASC", "campaign_id ASC").
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
		record, err := scanFacebookCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas do facebook: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *facebookCampaignRepository) Insert(ctx context.Context, record domain.CampaignDayRecord) error {
	campaign, ok := record.(*domain.FacebookCampaignDay)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrRecordPlatform, record.Platform())
	}

	query, args, err := squirrel.
		Insert(facebookCampaignsTable).
		Columns(facebookCampaignColumns...).
		Values(
			campaign.AccountID,
			campaign.CampaignID,
			campaign.CampaignName,
			campaign.DateStart,
			campaign.Reach,
			campaign.Impressions,
			campaign.Spend,
			campaign.InlineLinkClicks,
			campaign.LinkClicks,
			campaign.LandingPageViews,
			campaign.AddToCart,
			campaign.InitiateCheckout,
			campaign.Leads,
			campaign.MessagingConversationStarted,
			campaign.Purchases,
			campaign.CustomConversions,
			campaign.CompleteRegistration,
			campaign.LeadGrouped,
		).
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return checkInsertResult(r.conn.ExecContext(ctx, query, args...))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFacebookCampaign(row rowScanner) (*domain.FacebookCampaignDay, error) {
	c := &domain.FacebookCampaignDay{}
	var dateStart time.Time

	err := row.Scan(
		&c.ID,
		&c.AccountID,
		&c.CampaignID,
		&c.CampaignName,
		&dateStart,
		&c.Reach,
		&c.Impressions,
		&c.Spend,
		&c.InlineLinkClicks,
		&c.LinkClicks,
		&c.LandingPageViews,
		&c.AddToCart,
		&c.InitiateCheckout,
		&c.Leads,
		&c.MessagingConversationStarted,
		&c.Purchases,
		&c.CustomConversions,
		&c.CompleteRegistration,
		&c.LeadGrouped,
	)
	if err != nil {
		return nil, err
	}
	c.DateStart = dateStart.Format(time.DateOnly)

	return c, nil
}
