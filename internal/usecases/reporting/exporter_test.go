package reporting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

func TestCSVExporter_Filename(t *testing.T) {
	e := NewCSVExporter()

	assert.Equal(t, "relatorio_facebook_Ótica Centro_2025-01-01_2025-01-07.csv",
		e.Filename(domain.PlatformFacebook, "Ótica Centro", date("2025-01-01"), date("2025-01-07")))
	assert.Equal(t, "relatorio_google_ads_LojaABC_2025-01-01_2025-01-07.csv",
		e.Filename(domain.PlatformGoogle, "Loja/ABC\"", date("2025-01-01"), date("2025-01-07")))
}

func TestCSVExporter_Write(t *testing.T) {
	e := NewCSVExporter()

	t.Run("facebook", func(t *testing.T) {
		var buf bytes.Buffer
		records := []domain.CampaignDayRecord{
			&domain.FacebookCampaignDay{
				AccountID: "act_1", CampaignID: "c1", CampaignName: "Leads, Janeiro", DateStart: "2025-01-01",
				Reach: 10, Impressions: 20, Spend: 1.5, Leads: 2,
			},
		}

		require.NoError(t, e.Write(&buf, domain.PlatformFacebook, records))

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)
		assert.True(t, bytes.HasPrefix(lines[0], []byte("account_id,campaign_id,campaign_name,date_start")))
		assert.Equal(t, `act_1,c1,"Leads, Janeiro",2025-01-01,10,20,1.5,0,0,0,0,0,2,0,0,0,0,0,c1`, string(lines[1]))
	})

	t.Run("google ads", func(t *testing.T) {
		var buf bytes.Buffer
		records := []domain.CampaignDayRecord{
			&domain.GoogleAdsCampaignDay{
				CustomerID: "1234567890", CampaignID: "99", CampaignName: "Search", Day: "2025-01-02",
				Clicks: 5, Conversions: 1, CTR: 0.1, AverageCPC: 0.75, Impressions: 50, Cost: 3.75,
			},
		}

		require.NoError(t, e.Write(&buf, domain.PlatformGoogle, records))

		assert.Equal(t,
			"id_google,campaign_id,nome_campanha,dia,clicks,conversions,conversions_value,ctr,average_cpc,impressions,cost\n"+
				"1234567890,99,Search,2025-01-02,5,1,0,0.1,0.75,50,3.75\n",
			buf.String())
	})

	t.Run("sem registros", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, e.Write(&buf, domain.PlatformFacebook, nil))
		assert.Empty(t, buf.String())
	})

	t.Run("plataforma trocada", func(t *testing.T) {
		var buf bytes.Buffer
		err := e.Write(&buf, domain.PlatformGoogle, []domain.CampaignDayRecord{&domain.FacebookCampaignDay{}})
		assert.ErrorIs(t, err, domain.ErrRecordPlatform)
	})
}
