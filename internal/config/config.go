package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Mops          Mops          `mapstructure:",squash"`
	Twse          Twse          `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	WatchlistSync WatchlistSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Mops struct {
	BaseURL            string `mapstructure:"mops_base_url"`
	RequestTimeoutSecs int    `mapstructure:"mops_request_timeout_seconds"`
	RequestDelayMillis int    `mapstructure:"mops_request_delay_milliseconds"`
}

type Twse struct {
	BaseURL            string `mapstructure:"twse_base_url"`
	RequestTimeoutSecs int    `mapstructure:"twse_request_timeout_seconds"`
}

type Auth struct {
	Secret     string `mapstructure:"auth_secret"`
	APIKeyHash string `mapstructure:"auth_api_key_hash"` // bcrypt hash of the accepted API key
	TokenTTL   int    `mapstructure:"auth_token_ttl_minutes"`
}

type WatchlistSync struct {
	CronSchedule string `mapstructure:"watchlist_sync_cron"`
	Enabled      bool   `mapstructure:"watchlist_sync_enabled"`
	CompanyIDs   string `mapstructure:"watchlist_sync_company_ids"` // comma separated
	YearLookback int    `mapstructure:"watchlist_sync_year_lookback"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/revenue")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MOPS_BASE_URL", "https://mops.twse.com.tw/nas/t21/sii")
	viper.SetDefault("MOPS_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("MOPS_REQUEST_DELAY_MILLISECONDS", 0)

	viper.SetDefault("TWSE_BASE_URL", "https://www.twse.com.tw")
	viper.SetDefault("TWSE_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_API_KEY_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 1440)

	viper.SetDefault("WATCHLIST_SYNC_CRON", "0 7 10 * *") // day 10, after MOPS publication
	viper.SetDefault("WATCHLIST_SYNC_ENABLED", false)
	viper.SetDefault("WATCHLIST_SYNC_COMPANY_IDS", "")
	viper.SetDefault("WATCHLIST_SYNC_YEAR_LOOKBACK", 1)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("no .env readable by viper, relying on environment: ", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads .env via godotenv from the usual locations
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from: ", location)
			return
		}
	}

	logrus.Info("no .env file found, using process environment")
}
