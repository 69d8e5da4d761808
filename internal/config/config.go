// internal/config/config.go
package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Forecast ForecastConfig
	Ingest   IngestConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CacheConfig struct {
	Enabled            bool
	RedisURL           string
	RedisHost          string
	RedisPort          string
	RedisPassword      string
	RedisDB            int
	ForecastTTLSeconds int
}

// ForecastConfig carries the tunables of the forecasting core. The two
// upstream dashboard variants disagreed on whether a neutral "healthy"
// insight is emitted; EmitHealthyInsight makes that a deployment choice.
type ForecastConfig struct {
	HighDemandThreshold float64
	OverstockMultiplier float64
	EmitHealthyInsight  bool
}

type IngestConfig struct {
	DriveFolderID       string
	CredentialsJSON     string
	PollIntervalSeconds int
	DownloadDir         string
	ArchiveEnabled      bool
	ArchiveEndpoint     string
	ArchiveAccessKey    string
	ArchiveSecretKey    string
	ArchiveBucket       string
	ArchiveRegion       string
}

// Load reads configuration from the environment (and .env when present).
// It returns a fresh Config on every call; there is no package-level state.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_MODE", "debug")
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "warelens")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_HOST", "127.0.0.1")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_FORECAST_TTL_SECONDS", 60)
	v.SetDefault("FORECAST_HIGH_DEMAND_THRESHOLD", 50.0)
	v.SetDefault("FORECAST_OVERSTOCK_MULTIPLIER", 4.0)
	v.SetDefault("FORECAST_EMIT_HEALTHY_INSIGHT", true)
	v.SetDefault("INGEST_DRIVE_FOLDER_ID", "")
	v.SetDefault("INGEST_CREDENTIALS_JSON", "")
	v.SetDefault("INGEST_POLL_INTERVAL_SECONDS", 300)
	v.SetDefault("INGEST_DOWNLOAD_DIR", "./data/ingest")
	v.SetDefault("INGEST_ARCHIVE_ENABLED", false)
	v.SetDefault("INGEST_ARCHIVE_ENDPOINT", "")
	v.SetDefault("INGEST_ARCHIVE_ACCESS_KEY", "")
	v.SetDefault("INGEST_ARCHIVE_SECRET_KEY", "")
	v.SetDefault("INGEST_ARCHIVE_BUCKET", "")
	v.SetDefault("INGEST_ARCHIVE_REGION", "")

	v.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			Mode:           v.GetString("SERVER_MODE"),
			ReadTimeout:    v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:   v.GetInt("SERVER_WRITE_TIMEOUT"),
			AllowedOrigins: v.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Cache: CacheConfig{
			Enabled:            v.GetBool("CACHE_ENABLED"),
			RedisURL:           v.GetString("REDIS_URL"),
			RedisHost:          v.GetString("REDIS_HOST"),
			RedisPort:          v.GetString("REDIS_PORT"),
			RedisPassword:      v.GetString("REDIS_PASSWORD"),
			RedisDB:            v.GetInt("REDIS_DB"),
			ForecastTTLSeconds: v.GetInt("CACHE_FORECAST_TTL_SECONDS"),
		},
		Forecast: ForecastConfig{
			HighDemandThreshold: v.GetFloat64("FORECAST_HIGH_DEMAND_THRESHOLD"),
			OverstockMultiplier: v.GetFloat64("FORECAST_OVERSTOCK_MULTIPLIER"),
			EmitHealthyInsight:  v.GetBool("FORECAST_EMIT_HEALTHY_INSIGHT"),
		},
		Ingest: IngestConfig{
			DriveFolderID:       v.GetString("INGEST_DRIVE_FOLDER_ID"),
			CredentialsJSON:     v.GetString("INGEST_CREDENTIALS_JSON"),
			PollIntervalSeconds: v.GetInt("INGEST_POLL_INTERVAL_SECONDS"),
			DownloadDir:         v.GetString("INGEST_DOWNLOAD_DIR"),
			ArchiveEnabled:      v.GetBool("INGEST_ARCHIVE_ENABLED"),
			ArchiveEndpoint:     v.GetString("INGEST_ARCHIVE_ENDPOINT"),
			ArchiveAccessKey:    v.GetString("INGEST_ARCHIVE_ACCESS_KEY"),
			ArchiveSecretKey:    v.GetString("INGEST_ARCHIVE_SECRET_KEY"),
			ArchiveBucket:       v.GetString("INGEST_ARCHIVE_BUCKET"),
			ArchiveRegion:       v.GetString("INGEST_ARCHIVE_REGION"),
		},
	}
}
