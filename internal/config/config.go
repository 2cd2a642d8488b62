package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/fbar/internal/constants"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Year           int            `mapstructure:"year"`
	ConversionRate string         `mapstructure:"conversion_rate"`
	Token          string         `mapstructure:"token"`
	IncludeClosed  bool           `mapstructure:"include_closed"`
	Source         SourceConfig   `mapstructure:"source"`
	Database       DatabaseConfig `mapstructure:"database"`
	YNAB           YNABConfig     `mapstructure:"ynab"`
	Currency       CurrencyConfig `mapstructure:"currency"`
	Log            LogConfig      `mapstructure:"log"`
	ConfigPath     string         `mapstructure:"-"`
}

type SourceConfig struct {
	Kind     string `mapstructure:"kind"`
	BudgetID string `mapstructure:"budget_id"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type YNABConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CurrencyConfig struct {
	Source    Currency `mapstructure:"source"`
	Reporting Currency `mapstructure:"reporting"`
}

type Currency struct {
	Code   string `mapstructure:"code"`
	Symbol string `mapstructure:"symbol"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		IncludeClosed: true,
		Source:        SourceConfig{Kind: constants.SourceYNAB},
		Database:      DatabaseConfig{Path: ""},
		YNAB: YNABConfig{
			BaseURL: constants.DefaultYNABBaseURL,
			Timeout: 15 * time.Second,
		},
		Currency: CurrencyConfig{
			Source:    Currency{Code: "EUR", Symbol: "€"},
			Reporting: Currency{Code: "USD", Symbol: "$"},
		},
		Log: LogConfig{Level: "warn"},
	}
}

// SetDefaults registers every key with v so that environment variables are
// picked up by Unmarshal even when the config file omits the key.
func SetDefaults(v *viper.Viper) {
	def := NewDefault()

	v.SetDefault("year", 0)
	v.SetDefault("conversion_rate", "")
	v.SetDefault("token", "")
	v.SetDefault("include_closed", def.IncludeClosed)
	v.SetDefault("source.kind", def.Source.Kind)
	v.SetDefault("source.budget_id", def.Source.BudgetID)
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("ynab.base_url", def.YNAB.BaseURL)
	v.SetDefault("ynab.timeout", def.YNAB.Timeout.String())
	v.SetDefault("currency.source.code", def.Currency.Source.Code)
	v.SetDefault("currency.source.symbol", def.Currency.Source.Symbol)
	v.SetDefault("currency.reporting.code", def.Currency.Reporting.Code)
	v.SetDefault("currency.reporting.symbol", def.Currency.Reporting.Symbol)
	v.SetDefault("log.level", def.Log.Level)
}

// Load decodes v into a Config. It does not validate.
func Load(v *viper.Viper) (*Config, error) {
	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}

// Rate returns the parsed conversion rate. It is zero when the configured
// value is not a valid decimal.
func (c *Config) Rate() decimal.Decimal {
	rate, err := decimal.NewFromString(strings.TrimSpace(c.ConversionRate))
	if err != nil {
		return decimal.Zero
	}
	return rate
}
