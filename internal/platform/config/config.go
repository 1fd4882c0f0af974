package config

import (
	"log"
	"strings"

	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	ReferenceCurrency     string
	DefaultVendorDiscount decimal.Decimal

	RateLimit          string   `mapstructure:"RATE_LIMIT"` // ulule limiter format, e.g. "100-M"
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	PosthogAPIKey   string // empty disables usage events
	PosthogEndpoint string
}

// Pricing returns the pricing policy threaded into the valuation services.
func (c *Config) Pricing() domain.Pricing {
	return domain.Pricing{
		ReferenceCurrency:     c.ReferenceCurrency,
		DefaultVendorDiscount: c.DefaultVendorDiscount,
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("REFERENCE_CURRENCY", domain.DefaultReferenceCurrency)
	v.SetDefault("DEFAULT_VENDOR_DISCOUNT", "0")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.ReferenceCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("REFERENCE_CURRENCY")))
	if len(cfg.ReferenceCurrency) != 3 {
		log.Printf("Warning: Invalid REFERENCE_CURRENCY ('%s'). Defaulting to %s.\n", cfg.ReferenceCurrency, domain.DefaultReferenceCurrency)
		cfg.ReferenceCurrency = domain.DefaultReferenceCurrency
	}

	discountStr := v.GetString("DEFAULT_VENDOR_DISCOUNT")
	discount, err := decimal.NewFromString(discountStr)
	if err != nil || discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		if discountStr != "" {
			log.Printf("Warning: Invalid value for DEFAULT_VENDOR_DISCOUNT ('%s'). Defaulting to 0.\n", discountStr)
		}
		discount = decimal.Zero
	}
	cfg.DefaultVendorDiscount = discount

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}
