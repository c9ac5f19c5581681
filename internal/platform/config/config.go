package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StorageBackend string
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	CORSAllowedOrigins []string
	RateLimit          string

	// DashboardConversionWorkers bounds the per-expense conversions that run concurrently.
	DashboardConversionWorkers int
	DefaultDisplayCurrency     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_BACKEND", StoragePostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "expense-tracker")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("DASHBOARD_CONVERSION_WORKERS", 8)
	v.SetDefault("DEFAULT_DISPLAY_CURRENCY", domain.FallbackDisplayCurrency)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:                v.GetString("PGSQL_URL"),
		Port:                       v.GetString("PORT"),
		IsProduction:               v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:              v.GetBool("ENABLE_DB_CHECK"),
		StorageBackend:             strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		MigrationsPath:             v.GetString("MIGRATIONS_PATH"),
		JWTSecret:                  v.GetString("JWT_SECRET"),
		JWTIssuer:                  v.GetString("JWT_ISSUER"),
		RateLimit:                  v.GetString("RATE_LIMIT"),
		DashboardConversionWorkers: v.GetInt("DASHBOARD_CONVERSION_WORKERS"),
		DefaultDisplayCurrency:     strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_DISPLAY_CURRENCY"))),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	switch cfg.StorageBackend {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORAGE_BACKEND is %q", StoragePostgres)
		}
	case StorageMemory:
	default:
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.DashboardConversionWorkers < 1 {
		log.Printf("Warning: invalid DASHBOARD_CONVERSION_WORKERS (%d). Defaulting to 1.\n", cfg.DashboardConversionWorkers)
		cfg.DashboardConversionWorkers = 1
	}

	if len(cfg.DefaultDisplayCurrency) != 3 {
		return nil, fmt.Errorf("DEFAULT_DISPLAY_CURRENCY must be a 3-letter code, got %q", cfg.DefaultDisplayCurrency)
	}

	return cfg, nil
}
