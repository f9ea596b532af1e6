package evolution

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

func TestSendText(t *testing.T) {
	var received sendTextRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/message/sendText/relatorios", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(config.WhatsApp{EvolutionURL: server.URL + "/", EvolutionInstance: "relatorios", EvolutionToken: "secret"})

	err := client.SendText(context.Background(), "(48) 9931-9622", "olá")
	require.NoError(t, err)
	assert.Equal(t, "5548999319622", received.Number)
	assert.Equal(t, "olá", received.Text)
}

func TestSendText_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(config.WhatsApp{EvolutionURL: server.URL, EvolutionInstance: "x"})

	err := client.SendText(context.Background(), "48999319622", "olá")
	assert.ErrorIs(t, err, domain.ErrDeliveryFailure)
}
