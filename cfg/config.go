package cfg

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AmadeusConfig holds the live provider credentials. Both values empty means
// the app runs in mock-only mode.
type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

func (a AmadeusConfig) Configured() bool {
	return a.ClientID != "" && a.ClientSecret != ""
}

type ObservabilityConfig struct {
	OTLPEndpoint string
	ServiceName  string
	Environment  string
}

type Config struct {
	AppEnv        string
	AppPort       string
	Postgres      PostgresConfig
	Amadeus       AmadeusConfig
	Observability ObservabilityConfig
	MigrationsDir string
}

func Load() (*Config, error) {
	var errs []error

	// .env is a development convenience; the process env is authoritative
	_ = godotenv.Load()

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)

	pgHost := mustEnv("POSTGRES_HOST", &errs)
	pgPort := mustEnv("POSTGRES_PORT", &errs)
	pgUser := mustEnv("POSTGRES_USER", &errs)
	pgPassword := mustEnv("POSTGRES_PASSWORD", &errs)
	pgDBName := mustEnv("POSTGRES_DB", &errs)
	pgSSLMode := optEnv("POSTGRES_SSLMODE", "disable")

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		Postgres: PostgresConfig{
			Host:     pgHost,
			Port:     pgPort,
			User:     pgUser,
			Password: pgPassword,
			DBName:   pgDBName,
			SSLMode:  pgSSLMode,
		},
		Amadeus: AmadeusConfig{
			ClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
			ClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
			BaseURL:      optEnv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),
			ServiceName:  optEnv("OTEL_SERVICE_NAME", "farefinder"),
			Environment:  appEnv,
		},
		MigrationsDir: optEnv("MIGRATIONS_DIR", "db/migrations"),
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func optEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
