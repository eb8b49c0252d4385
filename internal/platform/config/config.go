package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/journal_posting/internal/core/identifier"
	"github.com/SscSPs/journal_posting/pkg/database"
)

const (
	DriverPostgres = database.DriverPostgres
	DriverSQLite   = database.DriverSQLite
)

// Config holds application configuration.
type Config struct {
	DatabaseDriver     string
	DatabaseURL        string
	SQLitePath         string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	RunMigrations      bool
	IdentifierScheme   identifier.Scheme
	DefaultActor       string
	LogLevel           slog.Level
	JWTSecret          string
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "journal.db")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("IDENTIFIER_SCHEME", string(identifier.SchemeNameDerived))
	viper.SetDefault("DEFAULT_ACTOR", "default_user")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseDriver: strings.ToLower(strings.TrimSpace(viper.GetString("DATABASE_DRIVER"))),
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		SQLitePath:     viper.GetString("SQLITE_PATH"),
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  viper.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:  viper.GetBool("RUN_MIGRATIONS"),
		DefaultActor:   strings.TrimSpace(viper.GetString("DEFAULT_ACTOR")),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		RateLimit:      viper.GetString("RATE_LIMIT"),
	}

	switch cfg.DatabaseDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when DATABASE_DRIVER is %s", DriverPostgres)
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set when DATABASE_DRIVER is %s", DriverSQLite)
		}
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	scheme, err := identifier.ParseScheme(viper.GetString("IDENTIFIER_SCHEME"))
	if err != nil {
		return nil, fmt.Errorf("invalid IDENTIFIER_SCHEME: %w", err)
	}
	cfg.IdentifierScheme = scheme

	if cfg.DefaultActor == "" {
		cfg.DefaultActor = "default_user"
		log.Printf("Warning: DEFAULT_ACTOR is empty. Defaulting to %s\n", cfg.DefaultActor)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(viper.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Actors are taken from the X-Actor header.")
	}

	return cfg, nil
}
