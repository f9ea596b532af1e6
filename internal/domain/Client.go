package domain

import (
	"strings"
	"time"
)

const (
	ConversionTypeLeads   = "leads"
	ConversionTypeCompras = "compras"
)

// Client é a configuração de um anunciante. O núcleo de sincronização só altera
// os campos de última sincronização.
type Client struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	FacebookAccountID  string     `json:"facebook_account_id"`
	GoogleCustomerID   string     `json:"google_customer_id"`
	FacebookEnabled    bool       `json:"facebook_enabled"`
	GoogleEnabled      bool       `json:"google_enabled"`
	WhatsAppGroup      string     `json:"whatsapp_group"`
	ConversionType     string     `json:"conversion_type"`
	LastFacebookSyncAt *time.Time `json:"last_facebook_sync_at"`
	LastGoogleSyncAt   *time.Time `json:"last_google_sync_at"`
	LastWhatsAppSentAt *time.Time `json:"last_whatsapp_sent_at"`
	CreatedAt          time.Time  `json:"created_at"`
}

// AccountIDFor retorna o identificador da conta do cliente na plataforma
func (c *Client) AccountIDFor(platform Platform) string {
	switch platform {
	case PlatformFacebook:
		return strings.TrimSpace(c.FacebookAccountID)
	case PlatformGoogle:
		return strings.TrimSpace(c.GoogleCustomerID)
	default:
		return ""
	}
}

func (c *Client) IsActiveOn(platform Platform) bool {
	switch platform {
	case PlatformFacebook:
		return c.FacebookEnabled
	case PlatformGoogle:
		return c.GoogleEnabled
	default:
		return false
	}
}

func (c *Client) LastSyncedAt(platform Platform) *time.Time {
	switch platform {
	case PlatformFacebook:
		return c.LastFacebookSyncAt
	case PlatformGoogle:
		return c.LastGoogleSyncAt
	default:
		return nil
	}
}

// NormalizeConversionType reduz os valores livres cadastrados para leads ou compras
func NormalizeConversionType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "compras", "compra", "purchase", "ecommerce":
		return ConversionTypeCompras
	default:
		return ConversionTypeLeads
	}
}

var customerIDReplacer = strings.NewReplacer("-", "", "\n", "", "\r", "", " ", "")

// NormalizeCustomerID remove separadores e quebras de linha do customer id do Google Ads
func NormalizeCustomerID(raw string) string {
	return customerIDReplacer.Replace(strings.TrimSpace(raw))
}
