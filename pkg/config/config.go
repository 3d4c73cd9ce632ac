package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Upstream UpstreamConfig
	Catalog  CatalogConfig
	Sessions SessionConfig
	Export   ExportConfig
	CORS     CORSConfig
	Log      LogConfig
}

// UpstreamConfig points at the public marathon platform API.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CatalogConfig tunes the event catalog loader.
type CatalogConfig struct {
	// WindowMonths is how far ahead the future-events window reaches.
	WindowMonths int
	// ZoneID is the reference zone passed to the forDates endpoint.
	ZoneID string
}

// SessionConfig governs viewer session lifetime.
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// ExportConfig toggles the schedule export endpoint.
type ExportConfig struct {
	Enabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Upstream = UpstreamConfig{
		BaseURL: strings.TrimRight(v.GetString("UPSTREAM_BASE_URL"), "/"),
		Timeout: parseDuration(v.GetString("UPSTREAM_TIMEOUT"), 15*time.Second),
	}

	cfg.Catalog = CatalogConfig{
		WindowMonths: v.GetInt("CATALOG_WINDOW_MONTHS"),
		ZoneID:       v.GetString("CATALOG_ZONE_ID"),
	}
	if cfg.Catalog.WindowMonths <= 0 {
		cfg.Catalog.WindowMonths = 6
	}

	cfg.Sessions = SessionConfig{
		TTL:           parseDuration(v.GetString("SESSION_TTL"), 2*time.Hour),
		SweepInterval: parseDuration(v.GetString("SESSION_SWEEP_INTERVAL"), 10*time.Minute),
	}

	cfg.Export = ExportConfig{Enabled: v.GetBool("ENABLE_SCHEDULE_EXPORT")}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("UPSTREAM_BASE_URL", "https://oengus.io/api")
	v.SetDefault("UPSTREAM_TIMEOUT", "15s")

	v.SetDefault("CATALOG_WINDOW_MONTHS", 6)
	v.SetDefault("CATALOG_ZONE_ID", "Asia/Tokyo")

	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "10m")

	v.SetDefault("ENABLE_SCHEDULE_EXPORT", true)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
