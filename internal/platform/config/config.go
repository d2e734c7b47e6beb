package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	LogLevel       slog.Level
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret          string
	JWTIssuer          string
	RateLimit          string
	CORSAllowedOrigins []string
	MaxUploadBytes     int64

	PostHogAPIKey   string
	PostHogEndpoint string

	// DetailCurrencyFromStatement reports transaction detail amounts in the
	// statement currency instead of EUR.
	DetailCurrencyFromStatement bool
}

// HistoryEnabled reports whether conversion history is persisted.
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

// AuthEnabled reports whether the HTTP API requires a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// flagKeys maps command line flag names onto configuration keys.
var flagKeys = map[string]string{
	"port":                           "PORT",
	"log-level":                      "LOG_LEVEL",
	"pgsql-url":                      "PGSQL_URL",
	"migrations-path":                "MIGRATIONS_PATH",
	"rate-limit":                     "RATE_LIMIT",
	"detail-currency-from-statement": "DETAIL_CURRENCY_FROM_STATEMENT",
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Flags present in flags override the environment.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "statement-converter")
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("DETAIL_CURRENCY_FROM_STATEMENT", false)

	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		Port:                        v.GetString("PORT"),
		IsProduction:                v.GetBool("IS_PRODUCTION"),
		DatabaseURL:                 v.GetString("PGSQL_URL"),
		EnableDBCheck:               v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:              v.GetString("MIGRATIONS_PATH"),
		JWTSecret:                   v.GetString("JWT_SECRET"),
		JWTIssuer:                   v.GetString("JWT_ISSUER"),
		RateLimit:                   v.GetString("RATE_LIMIT"),
		MaxUploadBytes:              v.GetInt64("MAX_UPLOAD_BYTES"),
		PostHogAPIKey:               v.GetString("POSTHOG_API_KEY"),
		PostHogEndpoint:             v.GetString("POSTHOG_ENDPOINT"),
		DetailCurrencyFromStatement: v.GetBool("DETAIL_CURRENCY_FROM_STATEMENT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT not set. Defaulting to %s\n", cfg.Port)
	}

	level, err := parseLogLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}

	if cfg.IsProduction && cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set in production. The conversion API is unauthenticated.")
	}

	return cfg, nil
}

func parseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", value, err)
	}
	return level, nil
}
