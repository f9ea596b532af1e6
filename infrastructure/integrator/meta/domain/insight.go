package metadomain

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// CampaignDailyInsight é uma linha de /insights com level=campaign e time_increment=1
type CampaignDailyInsight struct {
	AccountID        string   `json:"account_id"`
	CampaignID       string   `json:"campaign_id"`
	CampaignName     string   `json:"campaign_name"`
	DateStart        string   `json:"date_start"`
	DateStop         string   `json:"date_stop"`
	Reach            string   `json:"reach"`
	Impressions      string   `json:"impressions"`
	Spend            string   `json:"spend"`
	InlineLinkClicks string   `json:"inline_link_clicks"`
	Actions          []Action `json:"actions"`
	CostPerActions   []Action `json:"cost_per_action_type"`
}

type CampaignInsightsResponse struct {
	Data   []CampaignDailyInsight `json:"data"`
	Paging Paging                 `json:"paging"`
}

// Tipos de ação mapeados para os contadores fixos de conversão
const (
	ActionLinkClick                    = "link_click"
	ActionLandingPageView              = "landing_page_view"
	ActionAddToCart                    = "offsite_conversion.fb_pixel_add_to_cart"
	ActionInitiateCheckout             = "offsite_conversion.fb_pixel_initiate_checkout"
	ActionLead                         = "offsite_conversion.fb_pixel_lead"
	ActionMessagingConversationStarted = "onsite_conversion.messaging_conversation_started_7d"
	ActionPurchase                     = "offsite_conversion.fb_pixel_purchase"
	ActionCustom                       = "offsite_conversion.fb_pixel_custom"
	ActionCompleteRegistration         = "offsite_conversion.fb_pixel_complete_registration"
	ActionLeadGrouped                  = "onsite_conversion.lead_grouped"
)
