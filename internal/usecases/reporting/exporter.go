package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

var (
	facebookColumns = []string{
		"account_id", "campaign_id", "campaign_name", "date_start",
		"reach", "impressions", "spend", "inline_link_clicks",
		"link_click", "landing_page_view", "offsite_conversion_fb_pixel_add_to_cart",
		"offsite_conversion_fb_pixel_initiate_checkout", "offsite_conversion_fb_pixel_lead",
		"onsite_conversion_messaging_conversation_started_7d", "offsite_conversion_fb_pixel_purchase",
		"offsite_conversion_fb_pixel_custom", "offsite_conversion_fb_pixel_complete_registration",
		"onsite_conversion_lead_grouped", "id",
	}

	googleAdsColumns = []string{
		"id_google", "campaign_id", "nome_campanha", "dia", "clicks", "conversions",
		"conversions_value", "ctr", "average_cpc", "impressions", "cost",
	}

	unsafeFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}_\-. ]+`)
)

// CSVExporter escreve os registros no layout de colunas de cada plataforma
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Filename segue o padrão relatorio_<plataforma>_<cliente>_<inicio>_<fim>.csv
func (e *CSVExporter) Filename(platform domain.Platform, clientName string, startDate, endDate time.Time) string {
	prefix := "facebook"
	if platform == domain.PlatformGoogle {
		prefix = "google_ads"
	}

	name := unsafeFilenameChars.ReplaceAllString(clientName, "")
	return fmt.Sprintf("relatorio_%s_%s_%s_%s.csv", prefix, name, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))
}

// Write não escreve nada, nem o cabeçalho, quando não há registros
func (e *CSVExporter) Write(w io.Writer, platform domain.Platform, records []domain.CampaignDayRecord) error {
	if len(records) == 0 {
		return nil
	}

	writer := csv.NewWriter(w)

	header := facebookColumns
	if platform == domain.PlatformGoogle {
		header = googleAdsColumns
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho do CSV")
	}

	for _, record := range records {
		row, err := csvRow(platform, record)
		if err != nil {
			return err
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	return writer.Error()
}

func csvRow(platform domain.Platform, record domain.CampaignDayRecord) ([]string, error) {
	switch r := record.(type) {
	case *domain.FacebookCampaignDay:
		if platform != domain.PlatformFacebook {
			break
		}
		return []string{
			r.AccountID, r.CampaignID, r.CampaignName, r.DateStart,
			strconv.Itoa(r.Reach), strconv.Itoa(r.Impressions), formatFloat(r.Spend), strconv.Itoa(r.InlineLinkClicks),
			strconv.Itoa(r.LinkClicks), strconv.Itoa(r.LandingPageViews), strconv.Itoa(r.AddToCart),
			strconv.Itoa(r.InitiateCheckout), strconv.Itoa(r.Leads),
			strconv.Itoa(r.MessagingConversationStarted), strconv.Itoa(r.Purchases),
			strconv.Itoa(r.CustomConversions), strconv.Itoa(r.CompleteRegistration),
			strconv.Itoa(r.LeadGrouped), r.CampaignID,
		}, nil
	case *domain.GoogleAdsCampaignDay:
		if platform != domain.PlatformGoogle {
			break
		}
		return []string{
			r.CustomerID, r.CampaignID, r.CampaignName, r.Day, strconv.FormatInt(r.Clicks, 10), formatFloat(r.Conversions),
			formatFloat(r.ConversionsValue), formatFloat(r.CTR), formatFloat(r.AverageCPC),
			strconv.FormatInt(r.Impressions, 10), formatFloat(r.Cost),
		}, nil
	}

	return nil, errors.Wrapf(domain.ErrRecordPlatform, "registro %s no relatório %s", record.Platform(), platform)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
