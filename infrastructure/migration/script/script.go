package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/config"
)

type naturalKeyIndex struct {
	Table   string
	Name    string
	Columns string
}

var naturalKeyIndexes = []naturalKeyIndex{
	{Table: "relatorio_fb_campaigns", Name: "relatorio_fb_campaigns_natural_key", Columns: "account_id, campaign_id, date_start"},
	{Table: "relatorio_google_ads", Name: "relatorio_google_ads_natural_key", Columns: "customer_id, campaign_id, dia"},
}

const schema = `
CREATE TABLE IF NOT EXISTS relatorio_cadastro_clientes (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	act_fb TEXT,
	id_google TEXT,
	roda_facebook TEXT,
	roda_google TEXT,
	link_grupo TEXT,
	tipo_conversao TEXT,
	ultimo_relatorio_fb TIMESTAMPTZ,
	ultimo_relatorio_google TIMESTAMPTZ,
	ultimo_envio_whatsapp TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS relatorio_fb_campaigns (
	id BIGSERIAL PRIMARY KEY,
	account_id TEXT NOT NULL,
	campaign_id TEXT NOT NULL,
	campaign_name TEXT,
	date_start DATE NOT NULL,
	reach INTEGER NOT NULL DEFAULT 0,
	impressions INTEGER NOT NULL DEFAULT 0,
	spend NUMERIC(14,2) NOT NULL DEFAULT 0,
	inline_link_clicks INTEGER NOT NULL DEFAULT 0,
	link_click INTEGER NOT NULL DEFAULT 0,
	landing_page_view INTEGER NOT NULL DEFAULT 0,
	offsite_conversion_fb_pixel_add_to_cart INTEGER NOT NULL DEFAULT 0,
	offsite_conversion_fb_pixel_initiate_checkout INTEGER NOT NULL DEFAULT 0,
	offsite_conversion_fb_pixel_lead INTEGER NOT NULL DEFAULT 0,
	onsite_conversion_messaging_conversation_started_7d INTEGER NOT NULL DEFAULT 0,
	offsite_conversion_fb_pixel_purchase INTEGER NOT NULL DEFAULT 0,
	offsite_conversion_fb_pixel_custom INTEGER NOT NULL DEFAULT 0,
	offsite_conversion_fb_pixel_complete_registration INTEGER NOT NULL DEFAULT 0,
	onsite_conversion_lead_grouped INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS relatorio_google_ads (
	id BIGSERIAL PRIMARY KEY,
	customer_id TEXT NOT NULL,
	campaign_id TEXT NOT NULL,
	nome_campanha TEXT,
	dia DATE NOT NULL,
	clicks BIGINT NOT NULL DEFAULT 0,
	conversions DOUBLE PRECISION NOT NULL DEFAULT 0,
	conversions_value DOUBLE PRECISION NOT NULL DEFAULT 0,
	ctr DOUBLE PRECISION NOT NULL DEFAULT 0,
	average_cpc DOUBLE PRECISION NOT NULL DEFAULT 0,
	impressions BIGINT NOT NULL DEFAULT 0,
	cost DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stdout)
	logrus.Info("Iniciando script de migração...")
}

// addNaturalKeyIndex cria o índice único da chave natural. Se já existirem
// linhas duplicadas o índice não é criado e as duplicatas são reportadas.
func addNaturalKeyIndex(ctx context.Context, db *sql.DB, idx naturalKeyIndex) error {
	var exists bool
	err := db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_indexes WHERE tablename = $1 AND indexname = $2)",
		idx.Table, idx.Name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("erro ao verificar índice existente: %w", err)
	}

	if exists {
		logrus.WithField("index", idx.Name).Info("Índice da chave natural já existe")
		return nil
	}

	var duplicates int
	err = db.QueryRowContext(ctx, fmt.Sprintf(
		"SELECT COUNT(*) FROM (SELECT 1 FROM %s GROUP BY %s HAVING COUNT(*) > 1) d",
		idx.Table, idx.Columns,
	)).Scan(&duplicates)
	if err != nil {
		return fmt.Errorf("erro ao contar duplicatas: %w", err)
	}

	if duplicates > 0 {
		logrus.WithFields(logrus.Fields{
			"table":      idx.Table,
			"duplicadas": duplicates,
		}).Warn("Existem chaves naturais duplicadas; índice único não foi criado")
		return nil
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf(
		"CREATE UNIQUE INDEX %s ON %s (%s)",
		idx.Name, idx.Table, idx.Columns,
	))
	if err != nil {
		return fmt.Errorf("erro ao criar índice único: %w", err)
	}

	logrus.WithField("index", idx.Name).Info("Índice único da chave natural criado com sucesso")
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logrus.Info("Conectando ao banco de dados...")
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logrus.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		logrus.Fatalf("ERRO ao criar tabelas: %v", err)
	}

	for _, idx := range naturalKeyIndexes {
		if err := addNaturalKeyIndex(ctx, db, idx); err != nil {
			logrus.Fatalf("ERRO ao preparar índice %s: %v", idx.Name, err)
		}
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
