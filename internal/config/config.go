package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Facebook  Facebook  `mapstructure:",squash"`
	GoogleAds GoogleAds `mapstructure:",squash"`
	WhatsApp  WhatsApp  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	DailySync DailySync `mapstructure:",squash"`
	Delivery  Delivery  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Facebook struct {
	BaseURL           string  `mapstructure:"facebook_base_url"`
	URL               string  `mapstructure:"-"`
	Version           string  `mapstructure:"facebook_version"`
	AccessToken       string  `mapstructure:"facebook_access_token"`
	MaxRangeDays      int     `mapstructure:"facebook_max_range_days"`
	RequestsPerSecond float64 `mapstructure:"facebook_requests_per_second"`
}

type GoogleAds struct {
	BaseURL           string  `mapstructure:"google_ads_base_url"`
	Version           string  `mapstructure:"google_ads_version"`
	DeveloperToken    string  `mapstructure:"google_ads_developer_token"`
	ClientID          string  `mapstructure:"google_ads_client_id"`
	ClientSecret      string  `mapstructure:"google_ads_client_secret"`
	RefreshToken      string  `mapstructure:"google_ads_refresh_token"`
	LoginCustomerID   string  `mapstructure:"google_ads_login_customer_id"`
	TokenURL          string  `mapstructure:"google_ads_token_url"`
	MaxRangeDays      int     `mapstructure:"google_ads_max_range_days"`
	RequestsPerSecond float64 `mapstructure:"google_ads_requests_per_second"`
}

type WhatsApp struct {
	Provider          string `mapstructure:"whatsapp_provider"`
	EvolutionURL      string `mapstructure:"evolution_api_url"`
	EvolutionInstance string `mapstructure:"evolution_instance"`
	EvolutionToken    string `mapstructure:"evolution_api_key"`
	TwilioAccountSID  string `mapstructure:"twilio_account_sid"`
	TwilioAuthToken   string `mapstructure:"twilio_auth_token"`
	TwilioFrom        string `mapstructure:"twilio_whatsapp_from"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type DailySync struct {
	CronSchedule         string `mapstructure:"daily_sync_cron"`
	Enabled              bool   `mapstructure:"daily_sync_enabled"`
	HistoryDir           string `mapstructure:"daily_sync_history_dir"`
	MaxConcurrentClients int    `mapstructure:"daily_sync_max_concurrent_clients"`
	RequestDelaySeconds  int    `mapstructure:"daily_sync_request_delay_seconds"`
}

type Delivery struct {
	FreshnessDays int `mapstructure:"delivery_freshness_days"`
}

// DefaultHistoryDir também é usado quando a própria configuração falha ao carregar
const DefaultHistoryDir = "logs/history"

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_report?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("FACEBOOK_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("FACEBOOK_VERSION", "v22.0")
	viper.SetDefault("FACEBOOK_ACCESS_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("FACEBOOK_MAX_RANGE_DAYS", 60)
	viper.SetDefault("FACEBOOK_REQUESTS_PER_SECOND", 2)

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_MAX_RANGE_DAYS", 90)
	viper.SetDefault("GOOGLE_ADS_REQUESTS_PER_SECOND", 1)

	viper.SetDefault("WHATSAPP_PROVIDER", "evolution")
	viper.SetDefault("EVOLUTION_API_URL", "http://localhost:8080")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Rotina diária
	viper.SetDefault("DAILY_SYNC_CRON", "0 6 * * *")           // Todos os dias às 6h da manhã
	viper.SetDefault("DAILY_SYNC_ENABLED", false)              // Habilitar atualização diária
	viper.SetDefault("DAILY_SYNC_HISTORY_DIR", DefaultHistoryDir) // Diretório do histórico de execuções
	viper.SetDefault("DAILY_SYNC_MAX_CONCURRENT_CLIENTS", 1)   // 1 = sequencial
	viper.SetDefault("DAILY_SYNC_REQUEST_DELAY_SECONDS", 0)    // Pausa entre clientes

	viper.SetDefault("DELIVERY_FRESHNESS_DAYS", 2)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Facebook.URL = fmt.Sprintf("%s/%s", strings.TrimRight(config.Facebook.BaseURL, "/"), config.Facebook.Version)
	config.WhatsApp.Provider = strings.ToLower(strings.TrimSpace(config.WhatsApp.Provider))

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// RequestDelay é a pausa entre clientes nas execuções em massa
func (c DailySync) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelaySeconds) * time.Second
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
