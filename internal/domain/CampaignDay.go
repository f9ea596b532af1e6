package domain

import (
	"fmt"
	"strings"
	"time"
)

// NaturalKey identifica de forma única um registro de campanha por dia.
// AccountID é o act_ do Facebook ou o customer_id do Google Ads.
type NaturalKey struct {
	AccountID  string `json:"account_id"`
	CampaignID string `json:"campaign_id"`
	Date       string `json:"date"`
}

func (k NaturalKey) IsComplete() bool {
	return strings.TrimSpace(k.AccountID) != "" &&
		strings.TrimSpace(k.CampaignID) != "" &&
		strings.TrimSpace(k.Date) != ""
}

func (k NaturalKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.AccountID, k.CampaignID, k.Date)
}

// CampaignDayRecord é a linha diária de uma campanha, independente da plataforma
type CampaignDayRecord interface {
	Platform() Platform
	NaturalKey() NaturalKey
	// RecordDate retorna a data do registro; zero se a data for inválida
	RecordDate() time.Time
	CampaignLabel() string
}

// FacebookCampaignDay representa uma linha de insights diários de campanha do Facebook
type FacebookCampaignDay struct {
	ID                           int64     `json:"id,omitempty"`
	AccountID                    string    `json:"account_id"`
	CampaignID                   string    `json:"campaign_id"`
	CampaignName                 string    `json:"campaign_name"`
	DateStart                    string    `json:"date_start"`
	Reach                        int       `json:"reach"`
	Impressions                  int       `json:"impressions"`
	Spend                        float64   `json:"spend"`
	InlineLinkClicks             int       `json:"inline_link_clicks"`
	LinkClicks                   int       `json:"link_click"`
	LandingPageViews             int       `json:"landing_page_view"`
	AddToCart                    int       `json:"add_to_cart"`
	InitiateCheckout             int       `json:"initiate_checkout"`
	Leads                        int       `json:"lead"`
	MessagingConversationStarted int       `json:"messaging_conversation_started_7d"`
	Purchases                    int       `json:"purchase"`
	CustomConversions            int       `json:"custom"`
	CompleteRegistration         int       `json:"complete_registration"`
	LeadGrouped                  int       `json:"lead_grouped"`
	CreatedAt                    time.Time `json:"created_at,omitempty"`
}

func (r *FacebookCampaignDay) Platform() Platform {
	return PlatformFacebook
}

func (r *FacebookCampaignDay) NaturalKey() NaturalKey {
	return NaturalKey{AccountID: r.AccountID, CampaignID: r.CampaignID, Date: r.DateStart}
}

func (r *FacebookCampaignDay) RecordDate() time.Time {
	return parseDay(r.DateStart)
}

func (r *FacebookCampaignDay) CampaignLabel() string {
	return r.CampaignName
}

// GoogleAdsCampaignDay representa uma linha diária de campanha do Google Ads
type GoogleAdsCampaignDay struct {
	ID               int64     `json:"id,omitempty"`
	CustomerID       string    `json:"customer_id"`
	CampaignID       string    `json:"campaign_id"`
	CampaignName     string    `json:"campaign_name"`
	Day              string    `json:"day"`
	Clicks           int64     `json:"clicks"`
	Conversions      float64   `json:"conversions"`
	ConversionsValue float64   `json:"conversions_value"`
	CTR              float64   `json:"ctr"`
	AverageCPC       float64   `json:"average_cpc"`
	Impressions      int64     `json:"impressions"`
	Cost             float64   `json:"cost"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

func (r *GoogleAdsCampaignDay) Platform() Platform {
	return PlatformGoogle
}

func (r *GoogleAdsCampaignDay) NaturalKey() NaturalKey {
	return NaturalKey{AccountID: r.CustomerID, CampaignID: r.CampaignID, Date: r.Day}
}

func (r *GoogleAdsCampaignDay) RecordDate() time.Time {
	return parseDay(r.Day)
}

func (r *GoogleAdsCampaignDay) CampaignLabel() string {
	return r.CampaignName
}

func parseDay(value string) time.Time {
	day, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}
	}
	return day
}
