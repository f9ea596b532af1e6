package reporting

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vfg2006/ads-report-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MessageFormatter monta o texto enviado ao grupo do cliente. Recebe sempre o
// conjunto completo de registros do período, não apenas os novos.
type MessageFormatter interface {
	Format(client *domain.Client, platform domain.Platform, startDate, endDate time.Time, records []domain.CampaignDayRecord) string
}

// PortugueseFormatter formata valores em R$ e números com separador de milhar brasileiro
type PortugueseFormatter struct {
	printer *message.Printer
}

func NewPortugueseFormatter() *PortugueseFormatter {
	return &PortugueseFormatter{printer: message.NewPrinter(language.BrazilianPortuguese)}
}

func (f *PortugueseFormatter) Format(client *domain.Client, platform domain.Platform, startDate, endDate time.Time, records []domain.CampaignDayRecord) string {
	if len(records) == 0 {
		return f.emptyMessage(client.Name, platform, startDate, endDate)
	}

	if platform == domain.PlatformGoogle {
		return f.googleAdsMessage(client.Name, startDate, endDate, records)
	}

	if domain.NormalizeConversionType(client.ConversionType) == domain.ConversionTypeCompras {
		return f.purchasesMessage(client.Name, startDate, endDate, records)
	}
	return f.leadsMessage(client.Name, startDate, endDate, records)
}

func (f *PortugueseFormatter) emptyMessage(name string, platform domain.Platform, startDate, endDate time.Time) string {
	title := "Facebook Ads"
	if platform == domain.PlatformGoogle {
		title = "Google Ads"
	}

	return fmt.Sprintf("📊 *%s*\n🎯 *%s*\n📅 *Período:* %s a %s\n\n❌ *Nenhum dado encontrado para este período*",
		name, title, formatDate(startDate), formatDate(endDate))
}

type metaTotals struct {
	impressions      int
	clicks           int
	spend            float64
	landingPageViews int
	linkClicks       int
	leads            int
	conversations    int
	registrations    int
	purchases        int
	addToCart        int
	initiateCheckout int
	hasFollowers     bool
}

func sumMeta(records []domain.CampaignDayRecord) metaTotals {
	var t metaTotals
	for _, record := range records {
		day, ok := record.(*domain.FacebookCampaignDay)
		if !ok {
			continue
		}

		name := strings.ToLower(day.CampaignName)
		if strings.Contains(name, "seguidor") {
			t.hasFollowers = true
		}

		t.impressions += day.Impressions
		t.clicks += day.InlineLinkClicks
		t.spend += day.Spend
		t.landingPageViews += day.LandingPageViews
		t.linkClicks += day.LinkClicks
		t.leads += day.Leads
		t.conversations += day.MessagingConversationStarted
		t.registrations += day.CompleteRegistration
		t.purchases += day.Purchases
		t.addToCart += day.AddToCart
		t.initiateCheckout += day.InitiateCheckout
	}
	return t
}

func (f *PortugueseFormatter) leadsMessage(name string, startDate, endDate time.Time, records []domain.CampaignDayRecord) string {
	t := sumMeta(records)
	totalLeads := t.leads + t.conversations + t.registrations

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *%s*\n🎯 *Meta Ads*\n📅 *Período de análise:* %s à %s\n\n", name, formatDate(startDate), formatDate(endDate))
	b.WriteString("*Desempenho Geral:*\n")
	fmt.Fprintf(&b, "👁️ Total de Impressões: %s\n", f.number(t.impressions))
	fmt.Fprintf(&b, "🖱️ Cliques nos anúncios: %s\n", f.number(t.clicks))
	fmt.Fprintf(&b, "🌐 Visitas ao Site: %s\n", f.number(t.landingPageViews))
	fmt.Fprintf(&b, "💰 Total Investido: %s\n", f.currency(t.spend))
	fmt.Fprintf(&b, "💸 Custo por Clique: %s\n", f.ratioOr(t.spend, t.clicks, "N/A"))
	fmt.Fprintf(&b, "📋 Total de Leads Gerados: %s\n", f.number(totalLeads))
	fmt.Fprintf(&b, "💵 Custo por Lead: %s", f.ratioOr(t.spend, totalLeads, "N/A"))

	if t.hasFollowers {
		fmt.Fprintf(&b, "\n👥 Novos Seguidores: %s", f.number(t.linkClicks))
	}

	return b.String()
}

func (f *PortugueseFormatter) purchasesMessage(name string, startDate, endDate time.Time, records []domain.CampaignDayRecord) string {
	t := sumMeta(records)

	cpc := 0.0
	if t.clicks > 0 {
		cpc = t.spend / float64(t.clicks)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *%s*\n🎯 *Meta Ads*\n📅 *Período de análise:* %s a %s\n\n", name, formatDate(startDate), formatDate(endDate))
	b.WriteString("*Desempenho Geral:*\n")
	fmt.Fprintf(&b, "👀 Impressões: %s\n", f.number(t.impressions))
	fmt.Fprintf(&b, "📈 Cliques nos anúncios: %s\n", f.number(t.clicks))
	fmt.Fprintf(&b, "📊 Custo por Clique: %s\n", f.currency(cpc))
	fmt.Fprintf(&b, "💵 Total Investido: %s\n", f.currency(t.spend))
	fmt.Fprintf(&b, "🙋 Compras: %s\n", f.number(t.purchases))
	fmt.Fprintf(&b, "👉🏻 Custo por Compra: %s\n", f.ratioOr(t.spend, t.purchases, "–"))
	fmt.Fprintf(&b, "🛒 Carrinhos Abandonados: %s\n", f.number(t.addToCart))
	fmt.Fprintf(&b, "🪪 Checkout Iniciados: %s\n", f.number(t.initiateCheckout))
	fmt.Fprintf(&b, "🙋 Leads Recebidos: %s", f.number(t.leads))

	return b.String()
}

func (f *PortugueseFormatter) googleAdsMessage(name string, startDate, endDate time.Time, records []domain.CampaignDayRecord) string {
	var (
		impressions, clicks int64
		cost, value         float64
		conversions         float64
		ctrSum, cpcSum      float64
		rows                int
	)

	for _, record := range records {
		day, ok := record.(*domain.GoogleAdsCampaignDay)
		if !ok {
			continue
		}
		rows++
		impressions += day.Impressions
		clicks += day.Clicks
		cost += day.Cost
		conversions += day.Conversions
		value += day.ConversionsValue
		ctrSum += day.CTR
		cpcSum += day.AverageCPC
	}

	var ctr, cpc float64
	if rows > 0 {
		ctr = ctrSum / float64(rows) * 100
		cpc = cpcSum / float64(rows)
	}

	totalConversions := int(math.Round(conversions))

	ctrText := "N/A"
	if ctr > 0 {
		ctrText = f.printer.Sprintf("%.2f%%", ctr)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *%s*\n🎯 *Google Ads*\n📅 *Período de análise:* %s à %s\n\n", name, formatDate(startDate), formatDate(endDate))
	b.WriteString("*Desempenho Geral:*\n")
	fmt.Fprintf(&b, "👁️ Total de Impressões: %s\n", f.number(int(impressions)))
	fmt.Fprintf(&b, "🖱️ Cliques nos anúncios: %s\n", f.number(int(clicks)))
	fmt.Fprintf(&b, "📊 Taxa de Cliques (CTR): %s\n", ctrText)
	fmt.Fprintf(&b, "💰 Total Investido: %s\n", f.currency(cost))
	fmt.Fprintf(&b, "💸 Custo por Clique (CPC): %s\n", f.positiveCurrencyOr(cpc, "N/A"))
	fmt.Fprintf(&b, "🎯 Total de Conversões: %s\n", f.number(totalConversions))
	fmt.Fprintf(&b, "💵 Custo por Conversão: %s\n", f.ratioOr(cost, totalConversions, "N/A"))
	fmt.Fprintf(&b, "💎 Valor das Conversões: %s", f.positiveCurrencyOr(value, "N/A"))

	return b.String()
}

func (f *PortugueseFormatter) number(value int) string {
	return f.printer.Sprintf("%d", value)
}

func (f *PortugueseFormatter) currency(value float64) string {
	return f.printer.Sprintf("R$ %.2f", value)
}

func (f *PortugueseFormatter) positiveCurrencyOr(value float64, fallback string) string {
	if value <= 0 {
		return fallback
	}
	return f.currency(value)
}

func (f *PortugueseFormatter) ratioOr(total float64, count int, fallback string) string {
	if count <= 0 || total <= 0 {
		return fallback
	}
	return f.currency(total / float64(count))
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
